package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"wellness_backend/internals/constants"
)

type SubTopic struct {
	Content string `json:"content"`
}

// DomainModel is one catalog entry. Evaluations copy name, category and
// happiness parameters at write time; edits here never reach old evaluations.
type DomainModel struct {
	DomainID                  uuid.UUID                     `gorm:"column:domain_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"domain_id"`
	DomainName                string                        `gorm:"column:domain_name;type:varchar(120);not null;uniqueIndex:uq_domains_name" json:"domain_name"`
	DomainCategory            string                        `gorm:"column:domain_category;type:varchar(20);not null;index" json:"domain_category"`
	DomainSubTopics           datatypes.JSONSlice[SubTopic] `gorm:"column:domain_sub_topics;type:jsonb" json:"domain_sub_topics"`
	DomainHappinessParameters pq.StringArray                `gorm:"column:domain_happiness_parameters;type:text[]" json:"domain_happiness_parameters"`

	DomainCreatedAt time.Time      `gorm:"column:domain_created_at;autoCreateTime" json:"domain_created_at"`
	DomainUpdatedAt time.Time      `gorm:"column:domain_updated_at;autoUpdateTime" json:"domain_updated_at"`
	DomainDeletedAt gorm.DeletedAt `gorm:"column:domain_deleted_at;index" json:"-"`
}

func (DomainModel) TableName() string {
	return "domains"
}

// Parameters drops values outside the fixed enum.
func (m DomainModel) Parameters() []constants.HappinessParameter {
	out := make([]constants.HappinessParameter, 0, len(m.DomainHappinessParameters))
	for _, s := range m.DomainHappinessParameters {
		if p := constants.HappinessParameter(s); p.Valid() {
			out = append(out, p)
		}
	}
	return out
}
