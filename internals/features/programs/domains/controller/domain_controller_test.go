package controller

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	helper "wellness_backend/internals/helpers"
)

func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	ctl := NewDomainController(db)
	app.Post("/domains", ctl.Create)
	app.Get("/domains/:id", ctl.GetByID)
	return app, mock
}

func TestCreateDomainValidation(t *testing.T) {
	app, _ := newTestApp(t)

	cases := []struct {
		name string
		body string
	}{
		{"bad category", `{"domain_name":"Creativity","domain_category":"Other","domain_happiness_parameters":["PositiveEmotions"]}`},
		{"no parameters", `{"domain_name":"Creativity","domain_category":"General","domain_happiness_parameters":[]}`},
		{"unknown parameter", `{"domain_name":"Creativity","domain_category":"General","domain_happiness_parameters":["Joy"]}`},
		{"broken json", `{"domain_name":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/domains", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestGetDomain(t *testing.T) {
	app, mock := newTestApp(t)
	id := uuid.New()

	rows := sqlmock.NewRows([]string{"domain_id", "domain_name", "domain_category", "domain_sub_topics", "domain_happiness_parameters"}).
		AddRow(id.String(), "Creativity", "General", []byte(`[{"content":"Drawing"}]`), "{PositiveEmotions,EngagementPurpose}")
	mock.ExpectQuery(`SELECT \* FROM "domains"`).WillReturnRows(rows)

	resp, err := app.Test(httptest.NewRequest("GET", "/domains/"+id.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"domain_name":"Creativity"`)
	assert.Contains(t, string(body), `"Drawing"`)
	assert.Contains(t, string(body), `"EngagementPurpose"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDomainNotFound(t *testing.T) {
	app, mock := newTestApp(t)
	mock.ExpectQuery(`SELECT \* FROM "domains"`).WillReturnRows(sqlmock.NewRows([]string{"domain_id"}))

	resp, err := app.Test(httptest.NewRequest("GET", "/domains/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/domains/not-a-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
