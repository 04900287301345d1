package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness_backend/internals/helpers/dbtime"
)

func TestDashboardRange(t *testing.T) {
	var got dbtime.DateRange
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		rng, err := dashboardRange(c)
		if err != nil {
			return err
		}
		got = rng
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, programEpoch, got.Start)
	assert.Equal(t, dbtime.TodayInProgram(), got.End)

	resp, err = app.Test(httptest.NewRequest("GET", "/?start_date=2024-01-01&end_date=2024-03-31", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "2024-03-31", got.End.Format(dbtime.DateLayout))

	resp, err = app.Test(httptest.NewRequest("GET", "/?start_date=2024-01-01", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
