package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"wellness_backend/internals/features/programs/sessions/dto"
	helper "wellness_backend/internals/helpers"
)

func newMockService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return NewService(db), mock
}

func TestDeleteCascades(t *testing.T) {
	svc, mock := newMockService(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "sessions" SET "session_deleted_at"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "attendance"`).WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(`UPDATE "evaluations" SET "evaluation_deleted_at"`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	require.NoError(t, svc.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMissingSessionRollsBack(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "sessions" SET "session_deleted_at"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, helper.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRejectsUnknownCohort(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "cohorts"`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	_, _, err := svc.Create(context.Background(), dto.CreateSessionRequest{
		SessionName:       "Week 1",
		SessionDate:       "2024-03-01",
		SessionCohortID:   uuid.New(),
		SessionActivityID: uuid.New(),
	})
	assert.ErrorIs(t, err, helper.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRejectsBadDate(t *testing.T) {
	svc, _ := newMockService(t)
	_, _, err := svc.Create(context.Background(), dto.CreateSessionRequest{SessionName: "x", SessionDate: "2024-02-30"})
	assert.ErrorIs(t, err, helper.ErrValidation)
}
