package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SubTopicScore struct {
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// DomainSnapshot is a catalog entry frozen at the moment the evaluation was
// written, with the scores given for it. Reports read parameters from here,
// never from the live catalog.
type DomainSnapshot struct {
	DomainID            uuid.UUID       `json:"domain_id"`
	Name                string          `json:"name"`
	Category            string          `json:"category"`
	SubTopics           []SubTopicScore `json:"sub_topics"`
	Average             float64         `json:"average"`
	HappinessParameters []string        `json:"happiness_parameters"`
	SnapshotAt          time.Time       `json:"snapshot_at"`
}

type EvaluationModel struct {
	EvaluationID            uuid.UUID                           `gorm:"column:evaluation_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"evaluation_id"`
	EvaluationCohortID      uuid.UUID                           `gorm:"column:evaluation_cohort_id;type:uuid;not null;index" json:"evaluation_cohort_id"`
	EvaluationSessionID     uuid.UUID                           `gorm:"column:evaluation_session_id;type:uuid;not null;index" json:"evaluation_session_id"`
	EvaluationActivityID    uuid.UUID                           `gorm:"column:evaluation_activity_id;type:uuid;not null" json:"evaluation_activity_id"`
	EvaluationParticipantID uuid.UUID                           `gorm:"column:evaluation_participant_id;type:uuid;not null;index" json:"evaluation_participant_id"`
	EvaluationDomains       datatypes.JSONSlice[DomainSnapshot] `gorm:"column:evaluation_domains;type:jsonb;not null" json:"evaluation_domains"`
	EvaluationGrandAverage  float64                             `gorm:"column:evaluation_grand_average;type:numeric(5,2);not null" json:"evaluation_grand_average"`

	EvaluationCreatedAt time.Time      `gorm:"column:evaluation_created_at;autoCreateTime" json:"evaluation_created_at"`
	EvaluationUpdatedAt time.Time      `gorm:"column:evaluation_updated_at;autoUpdateTime" json:"evaluation_updated_at"`
	EvaluationDeletedAt gorm.DeletedAt `gorm:"column:evaluation_deleted_at;index" json:"-"`
}

func (EvaluationModel) TableName() string {
	return "evaluations"
}
