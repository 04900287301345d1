package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness_backend/internals/constants"
	cohortModel "wellness_backend/internals/features/programs/cohorts/model"
	participantModel "wellness_backend/internals/features/programs/participants/model"
	sessionModel "wellness_backend/internals/features/programs/sessions/model"
	"wellness_backend/internals/features/reports/aggregation"
	reports "wellness_backend/internals/features/reports/reports/service"
	helper "wellness_backend/internals/helpers"
	"wellness_backend/internals/helpers/dbtime"
)

type stubStore struct {
	cohorts  []cohortModel.CohortModel
	counts   map[reports.Entity]int64
	evals    []aggregation.Evaluation
	countErr error
}

func (s *stubStore) GetCohort(context.Context, uuid.UUID) (cohortModel.CohortModel, error) {
	return cohortModel.CohortModel{}, nil
}
func (s *stubStore) ListCohorts(context.Context, []uuid.UUID) ([]cohortModel.CohortModel, error) {
	return s.cohorts, nil
}
func (s *stubStore) GetParticipant(context.Context, uuid.UUID) (participantModel.ParticipantModel, error) {
	return participantModel.ParticipantModel{}, nil
}
func (s *stubStore) ListParticipantsByCohort(context.Context, uuid.UUID, string) ([]participantModel.ParticipantModel, error) {
	return nil, nil
}
func (s *stubStore) ListSessions(context.Context, uuid.UUID, time.Time, time.Time) ([]sessionModel.SessionModel, error) {
	return nil, nil
}
func (s *stubStore) ListAttendance(context.Context, []uuid.UUID) ([]reports.AttendanceRecord, error) {
	return nil, nil
}
func (s *stubStore) ListParticipantAttendance(context.Context, uuid.UUID, time.Time, time.Time) ([]reports.AttendanceRecord, error) {
	return nil, nil
}
func (s *stubStore) ListEvaluations(context.Context, reports.EvaluationQuery) ([]aggregation.Evaluation, error) {
	return s.evals, nil
}
func (s *stubStore) Count(_ context.Context, e reports.Entity) (int64, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	return s.counts[e], nil
}

func eval(cohort, session uuid.UUID, date time.Time, participant string, domains ...aggregation.DomainScore) aggregation.Evaluation {
	return aggregation.Evaluation{
		ID:              uuid.New(),
		CohortID:        cohort,
		SessionID:       session,
		SessionDate:     date,
		ParticipantID:   uuid.NewSHA1(uuid.NameSpaceOID, []byte(participant)),
		ParticipantName: participant,
		Domains:         domains,
	}
}

func domain(name string, avg float64) aggregation.DomainScore {
	return aggregation.DomainScore{
		DomainID:            uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)),
		Name:                name,
		Average:             avg,
		HappinessParameters: []constants.HappinessParameter{constants.PositiveEmotions},
	}
}

func cohort(name, center string) cohortModel.CohortModel {
	return cohortModel.CohortModel{CohortID: uuid.New(), CohortName: name, CohortCenter: center}
}

func TestBuildDashboard(t *testing.T) {
	north, south, east, west, central := cohort("Alpha", "North"), cohort("Beta", "South"),
		cohort("Gamma", "East"), cohort("Delta", "West"), cohort("Omega", "Central")
	d := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	store := &stubStore{
		cohorts: []cohortModel.CohortModel{north, south, east, west, central},
		counts: map[reports.Entity]int64{
			reports.EntityParticipants: 6,
			reports.EntityCohorts:      5,
			reports.EntityActivities:   3,
			reports.EntitySessions:     8,
			reports.EntityEvaluations:  20,
		},
		evals: []aggregation.Evaluation{
			eval(north.CohortID, uuid.New(), d, "Ana", domain("Creativity", 9), domain("Attention", 7)),
			eval(north.CohortID, uuid.New(), d, "Budi", domain("Creativity", 3)),
			eval(south.CohortID, uuid.New(), d, "Citra", domain("Creativity", 6), domain("Memory", 2)),
			eval(east.CohortID, uuid.New(), d, "Dewi", domain("Focus", 5), domain("Balance", 8)),
			eval(west.CohortID, uuid.New(), d, "Eko", domain("Creativity", 1)),
			eval(central.CohortID, uuid.New(), d, "Fajar", domain("Memory", 2)),
		},
	}

	rng := dbtime.DateRange{Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), End: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)}
	out, err := NewService(store).Build(context.Background(), rng)
	require.NoError(t, err)

	assert.Equal(t, int64(6), out.Counts.Participants)
	assert.Equal(t, int64(20), out.Counts.Evaluations)
	assert.Equal(t, "2024-01-01", out.Range.StartDate)

	require.Len(t, out.TopPerformers, constants.TopPerformersN)
	assert.Equal(t, "Ana", out.TopPerformers[0].ParticipantName)
	assert.Equal(t, 8.0, out.TopPerformers[0].Average)
	assert.Equal(t, "Dewi", out.TopPerformers[1].ParticipantName)
	require.Len(t, out.BottomPerformers, constants.TopPerformersN)
	assert.Equal(t, "Eko", out.BottomPerformers[0].ParticipantName)

	// East 6.5, North (9+7+3)/3, South 4, Central 2; West (1) falls off.
	require.Len(t, out.TopCenters, constants.TopCentersN)
	assert.Equal(t, east.CohortID, out.TopCenters[0].CohortID)
	assert.Equal(t, "Gamma", out.TopCenters[0].CohortName)
	assert.Equal(t, "East", out.TopCenters[0].CohortCenter)
	assert.Equal(t, 6.5, out.TopCenters[0].Average)
	assert.Equal(t, 1, out.TopCenters[0].NumberOfSessions)
	assert.Equal(t, north.CohortID, out.TopCenters[1].CohortID)
	assert.Equal(t, 6.33, out.TopCenters[1].Average)
	assert.Equal(t, south.CohortID, out.TopCenters[2].CohortID)
	assert.Equal(t, central.CohortID, out.TopCenters[3].CohortID)
	for _, c := range out.TopCenters {
		assert.NotEqual(t, west.CohortID, c.CohortID)
	}

	require.Len(t, out.HappinessParameterAverages, 4)
	assert.NotNil(t, out.HappinessParameterAverages[0].Average)
	require.NotNil(t, out.AverageScore)
}

func TestBuildDashboardCentersCountSessionsPerCohort(t *testing.T) {
	north := cohort("Alpha", "North")
	d := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	store := &stubStore{
		cohorts: []cohortModel.CohortModel{north},
		evals: []aggregation.Evaluation{
			eval(north.CohortID, uuid.New(), d, "Ana", domain("Creativity", 8)),
			eval(north.CohortID, uuid.New(), d.AddDate(0, 0, 7), "Ana", domain("Creativity", 4)),
		},
	}

	out, err := NewService(store).Build(context.Background(), dbtime.DateRange{})
	require.NoError(t, err)
	require.Len(t, out.TopCenters, 1)
	assert.Equal(t, 2, out.TopCenters[0].NumberOfSessions)
	assert.Equal(t, 6.0, out.TopCenters[0].Average)
}

func TestBuildDashboardRejectsBackwardsRange(t *testing.T) {
	rng := dbtime.DateRange{Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), End: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	_, err := NewService(&stubStore{countErr: errors.New("must not be called")}).Build(context.Background(), rng)
	assert.ErrorIs(t, err, helper.ErrValidation)
}

func TestBuildDashboardEmpty(t *testing.T) {
	out, err := NewService(&stubStore{}).Build(context.Background(), dbtime.DateRange{})
	require.NoError(t, err)
	assert.Empty(t, out.TopPerformers)
	assert.Empty(t, out.TopCenters)
	assert.Nil(t, out.AverageScore)
	for _, p := range out.HappinessParameterAverages {
		assert.Nil(t, p.Average)
	}
}

func TestBuildDashboardCountFailure(t *testing.T) {
	boom := errors.New("db down")
	_, err := NewService(&stubStore{countErr: boom}).Build(context.Background(), dbtime.DateRange{})
	assert.ErrorIs(t, err, boom)
}
