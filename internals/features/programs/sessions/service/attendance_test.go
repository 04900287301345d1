package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness_backend/internals/features/programs/sessions/model"
	helper "wellness_backend/internals/helpers"
)

func TestBuildAttendanceOnCreate(t *testing.T) {
	session := uuid.New()
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	rows, err := BuildAttendance(session, []uuid.UUID{a, b, c}, []uuid.UUID{c, a}, nil)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	present := map[uuid.UUID]bool{}
	for _, r := range rows {
		assert.Equal(t, session, r.AttendanceSessionID)
		present[r.AttendanceParticipantID] = r.AttendancePresent
	}
	assert.Equal(t, map[uuid.UUID]bool{a: true, b: false, c: true}, present)
}

func TestBuildAttendanceOnEdit(t *testing.T) {
	session := uuid.New()
	stay, moved, joined := uuid.New(), uuid.New(), uuid.New()
	existing := []model.AttendanceModel{
		{AttendanceID: uuid.New(), AttendanceSessionID: session, AttendanceParticipantID: stay, AttendancePresent: true},
		{AttendanceID: uuid.New(), AttendanceSessionID: session, AttendanceParticipantID: moved, AttendancePresent: true},
	}

	rows, err := BuildAttendance(session, []uuid.UUID{stay, joined}, []uuid.UUID{moved, joined}, existing)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, existing[0].AttendanceID, rows[0].AttendanceID)
	assert.False(t, rows[0].AttendancePresent)
	assert.True(t, rows[1].AttendancePresent)
	assert.Equal(t, joined, rows[2].AttendanceParticipantID)
	assert.True(t, rows[2].AttendancePresent)
}

func TestBuildAttendanceRejectsOutsider(t *testing.T) {
	_, err := BuildAttendance(uuid.New(), []uuid.UUID{uuid.New()}, []uuid.UUID{uuid.New()}, nil)
	assert.ErrorIs(t, err, helper.ErrValidation)
}
