package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wellness_backend/internals/configs"
	evalModel "wellness_backend/internals/features/evaluations/evaluations/model"
	activityModel "wellness_backend/internals/features/programs/activities/model"
	cohortModel "wellness_backend/internals/features/programs/cohorts/model"
	participantModel "wellness_backend/internals/features/programs/participants/model"
	"wellness_backend/internals/features/programs/sessions/dto"
	"wellness_backend/internals/features/programs/sessions/model"
	helper "wellness_backend/internals/helpers"
	"wellness_backend/internals/helpers/dbtime"
)

type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// ListFilter narrows List. Zero values are ignored.
type ListFilter struct {
	CohortID   *uuid.UUID
	ActivityID *uuid.UUID
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

/* ===================== lookups ===================== */

func requireRow(tx *gorm.DB, m any, column string, id uuid.UUID, what string) error {
	var n int64
	if err := tx.Model(m).Where(column+" = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %s not found", helper.ErrValidation, what, id)
	}
	return nil
}

func cohortMembers(tx *gorm.DB, cohortID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := tx.Model(&participantModel.ParticipantModel{}).
		Where("participant_cohort_id = ?", cohortID).
		Order("participant_name ASC").
		Pluck("participant_id", &ids).Error
	return ids, err
}

func upsertAttendance(tx *gorm.DB, rows []model.AttendanceModel) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_session_id"},
			{Name: "attendance_participant_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"attendance_present", "attendance_updated_at"}),
	}).Create(&rows).Error
}

/* ===================== Create ===================== */

// Create stores the session and one attendance row per cohort member.
func (s *Service) Create(ctx context.Context, req dto.CreateSessionRequest) (model.SessionModel, []model.AttendanceModel, error) {
	date, err := dbtime.ParseDate(req.SessionDate)
	if err != nil {
		return model.SessionModel{}, nil, fmt.Errorf("%w: invalid session_date", helper.ErrValidation)
	}

	var (
		session    model.SessionModel
		attendance []model.AttendanceModel
	)
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &cohortModel.CohortModel{}, "cohort_id", req.SessionCohortID, "cohort"); err != nil {
			return err
		}
		if err := requireRow(tx, &activityModel.ActivityModel{}, "activity_id", req.SessionActivityID, "activity"); err != nil {
			return err
		}

		session = model.SessionModel{
			SessionName:       strings.TrimSpace(req.SessionName),
			SessionDate:       date,
			SessionCohortID:   req.SessionCohortID,
			SessionActivityID: req.SessionActivityID,
			SessionNotes:      req.SessionNotes,
		}
		if err := tx.Create(&session).Error; err != nil {
			return err
		}

		members, err := cohortMembers(tx, req.SessionCohortID)
		if err != nil {
			return err
		}
		attendance, err = BuildAttendance(session.SessionID, members, req.ParticipantIDs, nil)
		if err != nil {
			return err
		}
		return upsertAttendance(tx, attendance)
	})
	if err != nil {
		return model.SessionModel{}, nil, err
	}
	return session, attendance, nil
}

/* ===================== Read ===================== */

func (s *Service) Get(ctx context.Context, id uuid.UUID) (model.SessionModel, []model.AttendanceModel, error) {
	db := s.DB.WithContext(ctx)
	var session model.SessionModel
	if err := db.First(&session, "session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return session, nil, fmt.Errorf("%w: session %s", helper.ErrNotFound, id)
		}
		return session, nil, err
	}
	var attendance []model.AttendanceModel
	if err := db.Where("attendance_session_id = ?", id).Find(&attendance).Error; err != nil {
		return session, nil, err
	}
	return session, attendance, nil
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]model.SessionModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&model.SessionModel{})
	if f.CohortID != nil {
		q = q.Where("session_cohort_id = ?", *f.CohortID)
	}
	if f.ActivityID != nil {
		q = q.Where("session_activity_id = ?", *f.ActivityID)
	}
	if f.From != nil {
		q = q.Where("session_date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("session_date <= ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.SessionModel
	q = q.Order("session_date DESC, session_name ASC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

/* ===================== Update ===================== */

// Update edits the session. When ParticipantIDs is set the attendance of
// every member and previous attendee is rewritten.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req dto.UpdateSessionRequest) (model.SessionModel, []model.AttendanceModel, error) {
	var (
		session    model.SessionModel
		attendance []model.AttendanceModel
	)
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&session, "session_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: session %s", helper.ErrNotFound, id)
			}
			return err
		}

		if req.SessionName != nil {
			session.SessionName = strings.TrimSpace(*req.SessionName)
		}
		if req.SessionDate != nil {
			d, err := dbtime.ParseDate(*req.SessionDate)
			if err != nil {
				return fmt.Errorf("%w: invalid session_date", helper.ErrValidation)
			}
			session.SessionDate = d
		}
		if req.SessionActivityID != nil {
			if err := requireRow(tx, &activityModel.ActivityModel{}, "activity_id", *req.SessionActivityID, "activity"); err != nil {
				return err
			}
			session.SessionActivityID = *req.SessionActivityID
		}
		if req.SessionNotes != nil {
			session.SessionNotes = req.SessionNotes
		}
		if err := tx.Save(&session).Error; err != nil {
			return err
		}

		var existing []model.AttendanceModel
		if err := tx.Where("attendance_session_id = ?", id).Find(&existing).Error; err != nil {
			return err
		}
		if req.ParticipantIDs == nil {
			attendance = existing
			return nil
		}

		members, err := cohortMembers(tx, session.SessionCohortID)
		if err != nil {
			return err
		}
		attendance, err = BuildAttendance(session.SessionID, members, *req.ParticipantIDs, existing)
		if err != nil {
			return err
		}
		return upsertAttendance(tx, attendance)
	})
	if err != nil {
		return model.SessionModel{}, nil, err
	}
	return session, attendance, nil
}

/* ===================== Delete ===================== */

// Delete removes the session with its attendance and evaluations in one
// transaction.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.SessionModel{}, "session_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: session %s", helper.ErrNotFound, id)
		}
		if err := tx.Where("attendance_session_id = ?", id).Delete(&model.AttendanceModel{}).Error; err != nil {
			return err
		}
		evals := tx.Where("evaluation_session_id = ?", id).Delete(&evalModel.EvaluationModel{})
		if evals.Error != nil {
			return evals.Error
		}
		configs.Log.WithField("session_id", id).Infof("session deleted with %d evaluations", evals.RowsAffected)
		return nil
	})
}
