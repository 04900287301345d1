package dto

import (
	"time"

	"github.com/google/uuid"

	"wellness_backend/internals/features/programs/sessions/model"
	"wellness_backend/internals/helpers/dbtime"
)

/* ===== Requests ===== */

// CreateSessionRequest.ParticipantIDs lists the cohort members who attended.
type CreateSessionRequest struct {
	SessionName       string      `json:"session_name" validate:"required,min=2,max=150"`
	SessionDate       string      `json:"session_date" validate:"required,datetime=2006-01-02"`
	SessionCohortID   uuid.UUID   `json:"session_cohort_id" validate:"required"`
	SessionActivityID uuid.UUID   `json:"session_activity_id" validate:"required"`
	SessionNotes      *string     `json:"session_notes"`
	ParticipantIDs    []uuid.UUID `json:"participant_ids" validate:"omitempty,unique"`
}

type UpdateSessionRequest struct {
	SessionName       *string      `json:"session_name" validate:"omitempty,min=2,max=150"`
	SessionDate       *string      `json:"session_date" validate:"omitempty,datetime=2006-01-02"`
	SessionActivityID *uuid.UUID   `json:"session_activity_id"`
	SessionNotes      *string      `json:"session_notes"`
	ParticipantIDs    *[]uuid.UUID `json:"participant_ids"`
}

/* ===== Responses ===== */

type AttendanceItem struct {
	ParticipantID uuid.UUID `json:"participant_id"`
	Present       bool      `json:"present"`
}

type SessionResponse struct {
	SessionID         uuid.UUID        `json:"session_id"`
	SessionName       string           `json:"session_name"`
	SessionDate       string           `json:"session_date"`
	SessionCohortID   uuid.UUID        `json:"session_cohort_id"`
	SessionActivityID uuid.UUID        `json:"session_activity_id"`
	SessionNotes      *string          `json:"session_notes,omitempty"`
	PresentCount      int              `json:"present_count"`
	Attendance        []AttendanceItem `json:"attendance,omitempty"`
	SessionCreatedAt  time.Time        `json:"session_created_at"`
	SessionUpdatedAt  time.Time        `json:"session_updated_at"`
}

func FromModel(m model.SessionModel, attendance []model.AttendanceModel) SessionResponse {
	out := SessionResponse{
		SessionID:         m.SessionID,
		SessionName:       m.SessionName,
		SessionDate:       m.SessionDate.Format(dbtime.DateLayout),
		SessionCohortID:   m.SessionCohortID,
		SessionActivityID: m.SessionActivityID,
		SessionNotes:      m.SessionNotes,
		SessionCreatedAt:  m.SessionCreatedAt,
		SessionUpdatedAt:  m.SessionUpdatedAt,
	}
	for _, a := range attendance {
		out.Attendance = append(out.Attendance, AttendanceItem{ParticipantID: a.AttendanceParticipantID, Present: a.AttendancePresent})
		if a.AttendancePresent {
			out.PresentCount++
		}
	}
	return out
}
