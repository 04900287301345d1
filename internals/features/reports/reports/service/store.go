package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	cohortModel "wellness_backend/internals/features/programs/cohorts/model"
	participantModel "wellness_backend/internals/features/programs/participants/model"
	sessionModel "wellness_backend/internals/features/programs/sessions/model"
	"wellness_backend/internals/features/reports/aggregation"
)

// EvaluationQuery selects evaluations whose session date lies in
// [Start, End]. Nil ids and an empty ParticipantType match everything.
type EvaluationQuery struct {
	CohortID        *uuid.UUID
	ParticipantID   *uuid.UUID
	Start           time.Time
	End             time.Time
	ParticipantType string
}

type AttendanceRecord struct {
	SessionID     uuid.UUID
	SessionDate   time.Time
	ParticipantID uuid.UUID
	Present       bool
}

// Entity names a countable table for the dashboard.
type Entity string

const (
	EntityParticipants Entity = "participants"
	EntityCohorts      Entity = "cohorts"
	EntityActivities   Entity = "activities"
	EntitySessions     Entity = "sessions"
	EntityEvaluations  Entity = "evaluations"
)

// Store is everything the report builders read. Implementations return
// helper.ErrNotFound (wrapped) for missing cohorts and participants.
type Store interface {
	GetCohort(ctx context.Context, id uuid.UUID) (cohortModel.CohortModel, error)
	// ListCohorts returns all cohorts when ids is empty.
	ListCohorts(ctx context.Context, ids []uuid.UUID) ([]cohortModel.CohortModel, error)
	GetParticipant(ctx context.Context, id uuid.UUID) (participantModel.ParticipantModel, error)
	ListParticipantsByCohort(ctx context.Context, cohortID uuid.UUID, participantType string) ([]participantModel.ParticipantModel, error)
	ListSessions(ctx context.Context, cohortID uuid.UUID, start, end time.Time) ([]sessionModel.SessionModel, error)
	ListAttendance(ctx context.Context, sessionIDs []uuid.UUID) ([]AttendanceRecord, error)
	ListParticipantAttendance(ctx context.Context, participantID uuid.UUID, start, end time.Time) ([]AttendanceRecord, error)
	ListEvaluations(ctx context.Context, q EvaluationQuery) ([]aggregation.Evaluation, error)
	Count(ctx context.Context, e Entity) (int64, error)
}
