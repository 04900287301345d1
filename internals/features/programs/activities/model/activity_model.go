package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityModel struct {
	ActivityID          uuid.UUID `gorm:"column:activity_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"activity_id"`
	ActivityName        string    `gorm:"column:activity_name;type:varchar(150);not null;uniqueIndex:uq_activities_name" json:"activity_name"`
	ActivityDescription *string   `gorm:"column:activity_description;type:text" json:"activity_description,omitempty"`
	ActivityIsActive    bool      `gorm:"column:activity_is_active;not null" json:"activity_is_active"`

	ActivityCreatedAt time.Time      `gorm:"column:activity_created_at;autoCreateTime" json:"activity_created_at"`
	ActivityUpdatedAt time.Time      `gorm:"column:activity_updated_at;autoUpdateTime" json:"activity_updated_at"`
	ActivityDeletedAt gorm.DeletedAt `gorm:"column:activity_deleted_at;index" json:"-"`
}

func (ActivityModel) TableName() string {
	return "activities"
}
