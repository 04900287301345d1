package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"wellness_backend/internals/features/programs/participants/model"
	"wellness_backend/internals/helpers/dbtime"
)

/* ===== Requests ===== */

type CreateParticipantRequest struct {
	ParticipantName        string    `json:"participant_name" validate:"required,min=2,max=150"`
	ParticipantGender      string    `json:"participant_gender" validate:"required,oneof=Male Female Other"`
	ParticipantType        string    `json:"participant_type" validate:"required,oneof=General SpecialNeed"`
	ParticipantDateOfBirth *string   `json:"participant_date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	ParticipantCohortID    uuid.UUID `json:"participant_cohort_id" validate:"required"`
}

func (r CreateParticipantRequest) ToModel() model.ParticipantModel {
	return model.ParticipantModel{
		ParticipantName:        strings.TrimSpace(r.ParticipantName),
		ParticipantGender:      r.ParticipantGender,
		ParticipantType:        r.ParticipantType,
		ParticipantDateOfBirth: parseDOB(r.ParticipantDateOfBirth),
		ParticipantCohortID:    r.ParticipantCohortID,
	}
}

type UpdateParticipantRequest struct {
	ParticipantName        *string    `json:"participant_name" validate:"omitempty,min=2,max=150"`
	ParticipantGender      *string    `json:"participant_gender" validate:"omitempty,oneof=Male Female Other"`
	ParticipantType        *string    `json:"participant_type" validate:"omitempty,oneof=General SpecialNeed"`
	ParticipantDateOfBirth *string    `json:"participant_date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	ParticipantCohortID    *uuid.UUID `json:"participant_cohort_id"`
}

// Apply copies set fields onto m. Moving a participant to another cohort
// leaves their evaluations and attendance where they are.
func (r UpdateParticipantRequest) Apply(m *model.ParticipantModel) {
	if r.ParticipantName != nil {
		m.ParticipantName = strings.TrimSpace(*r.ParticipantName)
	}
	if r.ParticipantGender != nil {
		m.ParticipantGender = *r.ParticipantGender
	}
	if r.ParticipantType != nil {
		m.ParticipantType = *r.ParticipantType
	}
	if r.ParticipantDateOfBirth != nil {
		m.ParticipantDateOfBirth = parseDOB(r.ParticipantDateOfBirth)
	}
	if r.ParticipantCohortID != nil {
		m.ParticipantCohortID = *r.ParticipantCohortID
	}
}

func parseDOB(s *string) *time.Time {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	t, err := dbtime.ParseDate(*s)
	if err != nil {
		return nil
	}
	return &t
}

/* ===== Response ===== */

type ParticipantResponse struct {
	ParticipantID          uuid.UUID `json:"participant_id"`
	ParticipantName        string    `json:"participant_name"`
	ParticipantGender      string    `json:"participant_gender"`
	ParticipantType        string    `json:"participant_type"`
	ParticipantDateOfBirth *string   `json:"participant_date_of_birth,omitempty"`
	ParticipantAge         *int      `json:"participant_age,omitempty"`
	ParticipantCohortID    uuid.UUID `json:"participant_cohort_id"`
	ParticipantCreatedAt   time.Time `json:"participant_created_at"`
	ParticipantUpdatedAt   time.Time `json:"participant_updated_at"`
}

func FromModel(m model.ParticipantModel) ParticipantResponse {
	out := ParticipantResponse{
		ParticipantID:        m.ParticipantID,
		ParticipantName:      m.ParticipantName,
		ParticipantGender:    m.ParticipantGender,
		ParticipantType:      m.ParticipantType,
		ParticipantCohortID:  m.ParticipantCohortID,
		ParticipantCreatedAt: m.ParticipantCreatedAt,
		ParticipantUpdatedAt: m.ParticipantUpdatedAt,
	}
	if m.ParticipantDateOfBirth != nil {
		s := m.ParticipantDateOfBirth.Format(dbtime.DateLayout)
		age := dbtime.AgeAt(*m.ParticipantDateOfBirth, dbtime.TodayInProgram())
		out.ParticipantDateOfBirth = &s
		out.ParticipantAge = &age
	}
	return out
}

func FromModels(list []model.ParticipantModel) []ParticipantResponse {
	out := make([]ParticipantResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
