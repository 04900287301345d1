package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CohortModel is a group of participants attending sessions at one center.
type CohortModel struct {
	CohortID          uuid.UUID  `gorm:"column:cohort_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"cohort_id"`
	CohortName        string     `gorm:"column:cohort_name;type:varchar(150);not null;uniqueIndex:uq_cohorts_name" json:"cohort_name"`
	CohortCenter      string     `gorm:"column:cohort_center;type:varchar(150)" json:"cohort_center"`
	CohortDescription *string    `gorm:"column:cohort_description;type:text" json:"cohort_description,omitempty"`
	CohortStartDate   *time.Time `gorm:"column:cohort_start_date;type:date" json:"cohort_start_date,omitempty"`

	CohortCreatedAt time.Time      `gorm:"column:cohort_created_at;autoCreateTime" json:"cohort_created_at"`
	CohortUpdatedAt time.Time      `gorm:"column:cohort_updated_at;autoUpdateTime" json:"cohort_updated_at"`
	CohortDeletedAt gorm.DeletedAt `gorm:"column:cohort_deleted_at;index" json:"-"`
}

func (CohortModel) TableName() string {
	return "cohorts"
}
