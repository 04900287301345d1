package controller

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cohortModel "wellness_backend/internals/features/programs/cohorts/model"
	participantModel "wellness_backend/internals/features/programs/participants/model"
	sessionModel "wellness_backend/internals/features/programs/sessions/model"
	"wellness_backend/internals/features/reports/aggregation"
	"wellness_backend/internals/features/reports/reports/service"
	helper "wellness_backend/internals/helpers"
)

// emptyStore knows no cohorts or participants.
type emptyStore struct{}

func (emptyStore) GetCohort(context.Context, uuid.UUID) (cohortModel.CohortModel, error) {
	return cohortModel.CohortModel{}, fmt.Errorf("%w: cohort", helper.ErrNotFound)
}
func (emptyStore) ListCohorts(context.Context, []uuid.UUID) ([]cohortModel.CohortModel, error) {
	return nil, nil
}
func (emptyStore) GetParticipant(context.Context, uuid.UUID) (participantModel.ParticipantModel, error) {
	return participantModel.ParticipantModel{}, fmt.Errorf("%w: participant", helper.ErrNotFound)
}
func (emptyStore) ListParticipantsByCohort(context.Context, uuid.UUID, string) ([]participantModel.ParticipantModel, error) {
	return nil, nil
}
func (emptyStore) ListSessions(context.Context, uuid.UUID, time.Time, time.Time) ([]sessionModel.SessionModel, error) {
	return nil, nil
}
func (emptyStore) ListAttendance(context.Context, []uuid.UUID) ([]service.AttendanceRecord, error) {
	return nil, nil
}
func (emptyStore) ListParticipantAttendance(context.Context, uuid.UUID, time.Time, time.Time) ([]service.AttendanceRecord, error) {
	return nil, nil
}
func (emptyStore) ListEvaluations(context.Context, service.EvaluationQuery) ([]aggregation.Evaluation, error) {
	return nil, nil
}
func (emptyStore) Count(context.Context, service.Entity) (int64, error) {
	return 0, nil
}

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	ctl := &ReportController{Svc: service.NewService(emptyStore{})}
	app.Get("/reports/cohorts/:id", ctl.Cohort)
	app.Get("/reports/participants/:id", ctl.Participant)
	app.Get("/reports/comparison", ctl.Comparison)
	return app
}

func TestReportQueryValidation(t *testing.T) {
	app := newTestApp()
	id := uuid.NewString()

	cases := []struct {
		name string
		url  string
		want int
	}{
		{"missing range", "/reports/cohorts/" + id, fiber.StatusBadRequest},
		{"bad date", "/reports/cohorts/" + id + "?start_date=2024-13-01&end_date=2024-12-31", fiber.StatusBadRequest},
		{"backwards range", "/reports/cohorts/" + id + "?start_date=2024-06-01&end_date=2024-01-01", fiber.StatusBadRequest},
		{"bad participant type", "/reports/cohorts/" + id + "?start_date=2024-01-01&end_date=2024-12-31&participant_type=Adult", fiber.StatusBadRequest},
		{"bad id", "/reports/participants/nope?start_date=2024-01-01&end_date=2024-12-31", fiber.StatusBadRequest},
		{"bad cohort_ids", "/reports/comparison?start_date=2024-01-01&end_date=2024-12-31&cohort_ids=x", fiber.StatusBadRequest},
		{"unknown cohort", "/reports/cohorts/" + id + "?start_date=2024-01-01&end_date=2024-12-31", fiber.StatusNotFound},
		{"unknown participant", "/reports/participants/" + id + "?start_date=2024-01-01&end_date=2024-12-31", fiber.StatusNotFound},
		{"no cohorts", "/reports/comparison?start_date=2024-01-01&end_date=2024-12-31", fiber.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tc.url, nil))
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}
