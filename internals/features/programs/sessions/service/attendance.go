package service

import (
	"fmt"

	"github.com/google/uuid"

	"wellness_backend/internals/features/programs/sessions/model"
	helper "wellness_backend/internals/helpers"
)

// BuildAttendance derives one row per participant for a session. Every
// current cohort member gets a row, and so does anyone who already had one
// (a participant moved to another cohort keeps their history). Present is
// true exactly for the ids in present. Existing rows keep their ids so an
// upsert updates them in place.
func BuildAttendance(sessionID uuid.UUID, members []uuid.UUID, present []uuid.UUID, existing []model.AttendanceModel) ([]model.AttendanceModel, error) {
	known := make(map[uuid.UUID]int, len(members)+len(existing))
	out := make([]model.AttendanceModel, 0, len(members)+len(existing))

	for _, a := range existing {
		if _, dup := known[a.AttendanceParticipantID]; dup {
			continue
		}
		a.AttendancePresent = false
		known[a.AttendanceParticipantID] = len(out)
		out = append(out, a)
	}
	for _, id := range members {
		if _, ok := known[id]; ok {
			continue
		}
		known[id] = len(out)
		out = append(out, model.AttendanceModel{
			AttendanceSessionID:     sessionID,
			AttendanceParticipantID: id,
		})
	}

	for _, id := range present {
		i, ok := known[id]
		if !ok {
			return nil, fmt.Errorf("%w: participant %s is not a member of the session's cohort", helper.ErrValidation, id)
		}
		out[i].AttendancePresent = true
	}
	return out, nil
}
