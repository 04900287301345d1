package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"wellness_backend/internals/features/programs/domains/model"
)

/* =========================
   Requests
========================= */

type CreateDomainRequest struct {
	DomainName                string   `json:"domain_name" validate:"required,min=2,max=120"`
	DomainCategory            string   `json:"domain_category" validate:"required,oneof=General SpecialNeed"`
	DomainSubTopics           []string `json:"domain_sub_topics" validate:"omitempty,dive,required"`
	DomainHappinessParameters []string `json:"domain_happiness_parameters" validate:"required,min=1,unique,dive,oneof=PositiveEmotions SocialBelonging EngagementPurpose SatisfactionWithProgram"`
}

func (r CreateDomainRequest) ToModel() model.DomainModel {
	return model.DomainModel{
		DomainName:                strings.TrimSpace(r.DomainName),
		DomainCategory:            r.DomainCategory,
		DomainSubTopics:           toSubTopics(r.DomainSubTopics),
		DomainHappinessParameters: pq.StringArray(r.DomainHappinessParameters),
	}
}

type UpdateDomainRequest struct {
	DomainName                *string   `json:"domain_name" validate:"omitempty,min=2,max=120"`
	DomainCategory            *string   `json:"domain_category" validate:"omitempty,oneof=General SpecialNeed"`
	DomainSubTopics           *[]string `json:"domain_sub_topics" validate:"omitempty,dive,required"`
	DomainHappinessParameters *[]string `json:"domain_happiness_parameters" validate:"omitempty,min=1,unique,dive,oneof=PositiveEmotions SocialBelonging EngagementPurpose SatisfactionWithProgram"`
}

// Apply copies the set fields onto m.
func (r UpdateDomainRequest) Apply(m *model.DomainModel) {
	if r.DomainName != nil {
		m.DomainName = strings.TrimSpace(*r.DomainName)
	}
	if r.DomainCategory != nil {
		m.DomainCategory = *r.DomainCategory
	}
	if r.DomainSubTopics != nil {
		m.DomainSubTopics = toSubTopics(*r.DomainSubTopics)
	}
	if r.DomainHappinessParameters != nil {
		m.DomainHappinessParameters = pq.StringArray(*r.DomainHappinessParameters)
	}
}

func toSubTopics(in []string) []model.SubTopic {
	out := make([]model.SubTopic, 0, len(in))
	for _, s := range in {
		out = append(out, model.SubTopic{Content: strings.TrimSpace(s)})
	}
	return out
}

/* =========================
   Response
========================= */

type DomainResponse struct {
	DomainID                  uuid.UUID `json:"domain_id"`
	DomainName                string    `json:"domain_name"`
	DomainCategory            string    `json:"domain_category"`
	DomainSubTopics           []string  `json:"domain_sub_topics"`
	DomainHappinessParameters []string  `json:"domain_happiness_parameters"`
	DomainCreatedAt           time.Time `json:"domain_created_at"`
	DomainUpdatedAt           time.Time `json:"domain_updated_at"`
}

func FromModel(m model.DomainModel) DomainResponse {
	subs := make([]string, 0, len(m.DomainSubTopics))
	for _, s := range m.DomainSubTopics {
		subs = append(subs, s.Content)
	}
	params := []string(m.DomainHappinessParameters)
	if params == nil {
		params = []string{}
	}
	return DomainResponse{
		DomainID:                  m.DomainID,
		DomainName:                m.DomainName,
		DomainCategory:            m.DomainCategory,
		DomainSubTopics:           subs,
		DomainHappinessParameters: params,
		DomainCreatedAt:           m.DomainCreatedAt,
		DomainUpdatedAt:           m.DomainUpdatedAt,
	}
}

func FromModels(list []model.DomainModel) []DomainResponse {
	out := make([]DomainResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
