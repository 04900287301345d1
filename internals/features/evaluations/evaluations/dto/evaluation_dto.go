package dto

import (
	"time"

	"github.com/google/uuid"

	"wellness_backend/internals/features/evaluations/evaluations/model"
)

/* =========================
   Requests
========================= */

// SubTopicInput.Score is nil when the item was not answered. Nil and 0 are
// both treated as unscored.
type SubTopicInput struct {
	Content string   `json:"content" validate:"max=255"`
	Score   *float64 `json:"score" validate:"omitempty,gte=0,lte=10"`
}

type DomainInput struct {
	DomainID  uuid.UUID       `json:"domain_id" validate:"required"`
	SubTopics []SubTopicInput `json:"sub_topics" validate:"dive"`
}

type SubmitEvaluationRequest struct {
	CohortID      uuid.UUID     `json:"cohort_id" validate:"required"`
	SessionID     uuid.UUID     `json:"session_id" validate:"required"`
	ActivityID    uuid.UUID     `json:"activity_id" validate:"required"`
	ParticipantID uuid.UUID     `json:"participant_id" validate:"required"`
	Domains       []DomainInput `json:"domains" validate:"required,min=1,dive"`
}

// EditEvaluationRequest replaces the scored domains; references stay fixed.
type EditEvaluationRequest struct {
	Domains []DomainInput `json:"domains" validate:"required,min=1,dive"`
}

/* =========================
   Response
========================= */

type EvaluationResponse struct {
	EvaluationID  uuid.UUID              `json:"evaluation_id"`
	CohortID      uuid.UUID              `json:"cohort_id"`
	SessionID     uuid.UUID              `json:"session_id"`
	ActivityID    uuid.UUID              `json:"activity_id"`
	ParticipantID uuid.UUID              `json:"participant_id"`
	Domains       []model.DomainSnapshot `json:"domains"`
	GrandAverage  float64                `json:"grand_average"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

func FromModel(m model.EvaluationModel) EvaluationResponse {
	domains := []model.DomainSnapshot(m.EvaluationDomains)
	if domains == nil {
		domains = []model.DomainSnapshot{}
	}
	return EvaluationResponse{
		EvaluationID:  m.EvaluationID,
		CohortID:      m.EvaluationCohortID,
		SessionID:     m.EvaluationSessionID,
		ActivityID:    m.EvaluationActivityID,
		ParticipantID: m.EvaluationParticipantID,
		Domains:       domains,
		GrandAverage:  m.EvaluationGrandAverage,
		CreatedAt:     m.EvaluationCreatedAt,
		UpdatedAt:     m.EvaluationUpdatedAt,
	}
}

func FromModels(list []model.EvaluationModel) []EvaluationResponse {
	out := make([]EvaluationResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
