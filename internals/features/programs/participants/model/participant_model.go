package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ParticipantModel struct {
	ParticipantID          uuid.UUID  `gorm:"column:participant_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"participant_id"`
	ParticipantName        string     `gorm:"column:participant_name;type:varchar(150);not null" json:"participant_name"`
	ParticipantGender      string     `gorm:"column:participant_gender;type:varchar(10);not null" json:"participant_gender"`
	ParticipantType        string     `gorm:"column:participant_type;type:varchar(20);not null;index" json:"participant_type"`
	ParticipantDateOfBirth *time.Time `gorm:"column:participant_date_of_birth;type:date" json:"participant_date_of_birth,omitempty"`
	ParticipantCohortID    uuid.UUID  `gorm:"column:participant_cohort_id;type:uuid;not null;index" json:"participant_cohort_id"`

	ParticipantCreatedAt time.Time      `gorm:"column:participant_created_at;autoCreateTime" json:"participant_created_at"`
	ParticipantUpdatedAt time.Time      `gorm:"column:participant_updated_at;autoUpdateTime" json:"participant_updated_at"`
	ParticipantDeletedAt gorm.DeletedAt `gorm:"column:participant_deleted_at;index" json:"-"`
}

func (ParticipantModel) TableName() string {
	return "participants"
}
