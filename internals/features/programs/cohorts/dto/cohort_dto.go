package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"wellness_backend/internals/features/programs/cohorts/model"
	"wellness_backend/internals/helpers/dbtime"
)

type CreateCohortRequest struct {
	CohortName        string  `json:"cohort_name" validate:"required,min=2,max=150"`
	CohortCenter      string  `json:"cohort_center" validate:"omitempty,max=150"`
	CohortDescription *string `json:"cohort_description"`
	CohortStartDate   *string `json:"cohort_start_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r CreateCohortRequest) ToModel() model.CohortModel {
	m := model.CohortModel{
		CohortName:        strings.TrimSpace(r.CohortName),
		CohortCenter:      strings.TrimSpace(r.CohortCenter),
		CohortDescription: r.CohortDescription,
	}
	m.CohortStartDate = parseOptionalDate(r.CohortStartDate)
	return m
}

type UpdateCohortRequest struct {
	CohortName        *string `json:"cohort_name" validate:"omitempty,min=2,max=150"`
	CohortCenter      *string `json:"cohort_center" validate:"omitempty,max=150"`
	CohortDescription *string `json:"cohort_description"`
	CohortStartDate   *string `json:"cohort_start_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r UpdateCohortRequest) Apply(m *model.CohortModel) {
	if r.CohortName != nil {
		m.CohortName = strings.TrimSpace(*r.CohortName)
	}
	if r.CohortCenter != nil {
		m.CohortCenter = strings.TrimSpace(*r.CohortCenter)
	}
	if r.CohortDescription != nil {
		m.CohortDescription = r.CohortDescription
	}
	if r.CohortStartDate != nil {
		m.CohortStartDate = parseOptionalDate(r.CohortStartDate)
	}
}

// validator has already checked the layout.
func parseOptionalDate(s *string) *time.Time {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	t, err := dbtime.ParseDate(*s)
	if err != nil {
		return nil
	}
	return &t
}

type CohortResponse struct {
	CohortID          uuid.UUID `json:"cohort_id"`
	CohortName        string    `json:"cohort_name"`
	CohortCenter      string    `json:"cohort_center"`
	CohortDescription *string   `json:"cohort_description,omitempty"`
	CohortStartDate   *string   `json:"cohort_start_date,omitempty"`
	ParticipantCount  *int64    `json:"participant_count,omitempty"`
	CohortCreatedAt   time.Time `json:"cohort_created_at"`
	CohortUpdatedAt   time.Time `json:"cohort_updated_at"`
}

func FromModel(m model.CohortModel) CohortResponse {
	out := CohortResponse{
		CohortID:          m.CohortID,
		CohortName:        m.CohortName,
		CohortCenter:      m.CohortCenter,
		CohortDescription: m.CohortDescription,
		CohortCreatedAt:   m.CohortCreatedAt,
		CohortUpdatedAt:   m.CohortUpdatedAt,
	}
	if m.CohortStartDate != nil {
		s := m.CohortStartDate.Format(dbtime.DateLayout)
		out.CohortStartDate = &s
	}
	return out
}
