package database

import (
	"gorm.io/gorm"

	"wellness_backend/internals/configs"
	evalModel "wellness_backend/internals/features/evaluations/evaluations/model"
	activityModel "wellness_backend/internals/features/programs/activities/model"
	cohortModel "wellness_backend/internals/features/programs/cohorts/model"
	domainModel "wellness_backend/internals/features/programs/domains/model"
	participantModel "wellness_backend/internals/features/programs/participants/model"
	sessionModel "wellness_backend/internals/features/programs/sessions/model"
	snapshotModel "wellness_backend/internals/features/reports/snapshots/model"
)

// Models lists every table owned by the service, parents first.
func Models() []any {
	return []any{
		&cohortModel.CohortModel{},
		&participantModel.ParticipantModel{},
		&activityModel.ActivityModel{},
		&domainModel.DomainModel{},
		&sessionModel.SessionModel{},
		&sessionModel.AttendanceModel{},
		&evalModel.EvaluationModel{},
		&snapshotModel.ReportSnapshotModel{},
	}
}

func Migrate(db *gorm.DB) error {
	configs.Log.Info("running auto-migrate...")
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}
	configs.Log.Info("auto-migrate done")
	return nil
}
