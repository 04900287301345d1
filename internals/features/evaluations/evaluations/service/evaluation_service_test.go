package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"wellness_backend/internals/features/evaluations/evaluations/dto"
	"wellness_backend/internals/features/evaluations/evaluations/model"
	domainModel "wellness_backend/internals/features/programs/domains/model"
	domainService "wellness_backend/internals/features/programs/domains/service"
	helper "wellness_backend/internals/helpers"
)

func TestSnapshotDomainsCopiesCatalog(t *testing.T) {
	creativity := domainModel.DomainModel{
		DomainID:                  uuid.New(),
		DomainName:                "Creativity",
		DomainCategory:            "General",
		DomainHappinessParameters: pq.StringArray{"PositiveEmotions"},
	}
	cat := domainService.NewCatalog([]domainModel.DomainModel{creativity})
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	snaps, err := snapshotDomains([]NormalizedDomain{{DomainID: creativity.DomainID, Average: 6}}, cat, nil, now)
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, "Creativity", snaps[0].Name)
	assert.Equal(t, []string{"PositiveEmotions"}, snaps[0].HappinessParameters)
	assert.Equal(t, 6.0, snaps[0].Average)
	assert.Equal(t, now, snaps[0].SnapshotAt)

	_, err = snapshotDomains([]NormalizedDomain{{DomainID: uuid.New(), Average: 1}}, cat, nil, now)
	assert.ErrorIs(t, err, helper.ErrValidation)
}

func TestSnapshotDomainsKeepsPriorMapping(t *testing.T) {
	id := uuid.New()
	old := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	prior := map[uuid.UUID]model.DomainSnapshot{
		id: {DomainID: id, Name: "Creativity", HappinessParameters: []string{"SocialBelonging"}, Average: 2, SnapshotAt: old},
	}

	snaps, err := snapshotDomains([]NormalizedDomain{{DomainID: id, Average: 7}}, domainService.NewCatalog(nil), prior, time.Now())
	require.NoError(t, err)
	assert.Equal(t, []string{"SocialBelonging"}, snaps[0].HappinessParameters)
	assert.Equal(t, 7.0, snaps[0].Average)
	assert.Equal(t, old, snaps[0].SnapshotAt)
}

func TestSubmitRejectsUnscored(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	zero := 0.0
	_, err = NewService(db).Submit(context.Background(), dto.SubmitEvaluationRequest{
		CohortID:      uuid.New(),
		SessionID:     uuid.New(),
		ActivityID:    uuid.New(),
		ParticipantID: uuid.New(),
		Domains:       []dto.DomainInput{{DomainID: uuid.New(), SubTopics: []dto.SubTopicInput{{Content: "a", Score: &zero}}}},
	})
	assert.ErrorIs(t, err, helper.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitRejectsSessionFromOtherCohort(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	cohort, session := uuid.New(), uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "cohorts"`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT "session_id","session_cohort_id" FROM "sessions"`).
		WillReturnRows(sqlmock.NewRows([]string{"session_id", "session_cohort_id"}).AddRow(session.String(), uuid.NewString()))
	mock.ExpectRollback()

	five := 5.0
	_, err = NewService(db).Submit(context.Background(), dto.SubmitEvaluationRequest{
		CohortID:      cohort,
		SessionID:     session,
		ActivityID:    uuid.New(),
		ParticipantID: uuid.New(),
		Domains:       []dto.DomainInput{{DomainID: uuid.New(), SubTopics: []dto.SubTopicInput{{Content: "a", Score: &five}}}},
	})
	assert.ErrorIs(t, err, helper.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}
