package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"wellness_backend/internals/constants"
	evalModel "wellness_backend/internals/features/evaluations/evaluations/model"
	activityModel "wellness_backend/internals/features/programs/activities/model"
	cohortModel "wellness_backend/internals/features/programs/cohorts/model"
	participantModel "wellness_backend/internals/features/programs/participants/model"
	sessionModel "wellness_backend/internals/features/programs/sessions/model"
	"wellness_backend/internals/features/reports/aggregation"
	helper "wellness_backend/internals/helpers"
)

// GormStore reads report inputs from Postgres.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) GetCohort(ctx context.Context, id uuid.UUID) (cohortModel.CohortModel, error) {
	var m cohortModel.CohortModel
	if err := s.DB.WithContext(ctx).First(&m, "cohort_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return m, fmt.Errorf("%w: cohort %s", helper.ErrNotFound, id)
		}
		return m, err
	}
	return m, nil
}

func (s *GormStore) ListCohorts(ctx context.Context, ids []uuid.UUID) ([]cohortModel.CohortModel, error) {
	q := s.DB.WithContext(ctx).Order("cohort_name ASC")
	if len(ids) > 0 {
		q = q.Where("cohort_id IN ?", ids)
	}
	var rows []cohortModel.CohortModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormStore) GetParticipant(ctx context.Context, id uuid.UUID) (participantModel.ParticipantModel, error) {
	var m participantModel.ParticipantModel
	if err := s.DB.WithContext(ctx).First(&m, "participant_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return m, fmt.Errorf("%w: participant %s", helper.ErrNotFound, id)
		}
		return m, err
	}
	return m, nil
}

func (s *GormStore) ListParticipantsByCohort(ctx context.Context, cohortID uuid.UUID, participantType string) ([]participantModel.ParticipantModel, error) {
	q := s.DB.WithContext(ctx).Where("participant_cohort_id = ?", cohortID)
	if participantType != "" {
		q = q.Where("participant_type = ?", participantType)
	}
	var rows []participantModel.ParticipantModel
	if err := q.Order("participant_name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormStore) ListSessions(ctx context.Context, cohortID uuid.UUID, start, end time.Time) ([]sessionModel.SessionModel, error) {
	var rows []sessionModel.SessionModel
	err := s.DB.WithContext(ctx).
		Where("session_cohort_id = ? AND session_date BETWEEN ? AND ?", cohortID, start, end).
		Order("session_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

type attendanceRow struct {
	SessionID     uuid.UUID
	SessionDate   time.Time
	ParticipantID uuid.UUID
	Present       bool
}

func toRecords(rows []attendanceRow) []AttendanceRecord {
	out := make([]AttendanceRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, AttendanceRecord(r))
	}
	return out
}

func (s *GormStore) attendanceQuery(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx).
		Table("attendance AS a").
		Select(`a.attendance_session_id AS session_id,
			s.session_date AS session_date,
			a.attendance_participant_id AS participant_id,
			a.attendance_present AS present`).
		Joins("JOIN sessions s ON s.session_id = a.attendance_session_id AND s.session_deleted_at IS NULL")
}

func (s *GormStore) ListAttendance(ctx context.Context, sessionIDs []uuid.UUID) ([]AttendanceRecord, error) {
	if len(sessionIDs) == 0 {
		return nil, nil
	}
	var rows []attendanceRow
	if err := s.attendanceQuery(ctx).Where("a.attendance_session_id IN ?", sessionIDs).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toRecords(rows), nil
}

func (s *GormStore) ListParticipantAttendance(ctx context.Context, participantID uuid.UUID, start, end time.Time) ([]AttendanceRecord, error) {
	var rows []attendanceRow
	err := s.attendanceQuery(ctx).
		Where("a.attendance_participant_id = ? AND s.session_date BETWEEN ? AND ?", participantID, start, end).
		Order("s.session_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toRecords(rows), nil
}

type evaluationRow struct {
	EvaluationID    uuid.UUID
	CohortID        uuid.UUID
	SessionID       uuid.UUID
	ActivityID      uuid.UUID
	ParticipantID   uuid.UUID
	Domains         datatypes.JSONSlice[evalModel.DomainSnapshot]
	SessionName     string
	SessionDate     time.Time
	ParticipantName string
	ParticipantType string
}

func (r evaluationRow) toAggregation() aggregation.Evaluation {
	e := aggregation.Evaluation{
		ID:              r.EvaluationID,
		CohortID:        r.CohortID,
		SessionID:       r.SessionID,
		SessionName:     r.SessionName,
		SessionDate:     r.SessionDate,
		ParticipantID:   r.ParticipantID,
		ParticipantName: r.ParticipantName,
		ParticipantType: r.ParticipantType,
		ActivityID:      r.ActivityID,
		Domains:         make([]aggregation.DomainScore, 0, len(r.Domains)),
	}
	for _, d := range r.Domains {
		params := make([]constants.HappinessParameter, 0, len(d.HappinessParameters))
		for _, p := range d.HappinessParameters {
			if hp := constants.HappinessParameter(p); hp.Valid() {
				params = append(params, hp)
			}
		}
		e.Domains = append(e.Domains, aggregation.DomainScore{
			DomainID:            d.DomainID,
			Name:                d.Name,
			Category:            d.Category,
			Average:             d.Average,
			HappinessParameters: params,
		})
	}
	return e
}

// ListEvaluations joins each evaluation with its session and participant.
// Soft-deleted participants still contribute their history.
func (s *GormStore) ListEvaluations(ctx context.Context, q EvaluationQuery) ([]aggregation.Evaluation, error) {
	tx := s.DB.WithContext(ctx).
		Table("evaluations AS e").
		Select(`e.evaluation_id AS evaluation_id,
			e.evaluation_cohort_id AS cohort_id,
			e.evaluation_session_id AS session_id,
			e.evaluation_activity_id AS activity_id,
			e.evaluation_participant_id AS participant_id,
			e.evaluation_domains AS domains,
			s.session_name AS session_name,
			s.session_date AS session_date,
			p.participant_name AS participant_name,
			p.participant_type AS participant_type`).
		Joins("JOIN sessions s ON s.session_id = e.evaluation_session_id AND s.session_deleted_at IS NULL").
		Joins("JOIN participants p ON p.participant_id = e.evaluation_participant_id").
		Where("e.evaluation_deleted_at IS NULL").
		Where("s.session_date BETWEEN ? AND ?", q.Start, q.End)

	if q.CohortID != nil {
		tx = tx.Where("e.evaluation_cohort_id = ?", *q.CohortID)
	}
	if q.ParticipantID != nil {
		tx = tx.Where("e.evaluation_participant_id = ?", *q.ParticipantID)
	}
	if q.ParticipantType != "" {
		tx = tx.Where("p.participant_type = ?", q.ParticipantType)
	}

	var rows []evaluationRow
	if err := tx.Order("s.session_date ASC, e.evaluation_created_at ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]aggregation.Evaluation, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toAggregation())
	}
	return out, nil
}

var countModels = map[Entity]any{
	EntityParticipants: &participantModel.ParticipantModel{},
	EntityActivities:   &activityModel.ActivityModel{},
	EntityCohorts:      &cohortModel.CohortModel{},
	EntitySessions:     &sessionModel.SessionModel{},
	EntityEvaluations:  &evalModel.EvaluationModel{},
}

// Count counts live rows.
func (s *GormStore) Count(ctx context.Context, e Entity) (int64, error) {
	m, ok := countModels[e]
	if !ok {
		return 0, fmt.Errorf("unknown entity %q", e)
	}
	var n int64
	err := s.DB.WithContext(ctx).Model(m).Count(&n).Error
	return n, err
}
