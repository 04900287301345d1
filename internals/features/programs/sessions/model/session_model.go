package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionModel is one dated occurrence of an activity for a cohort.
type SessionModel struct {
	SessionID         uuid.UUID `gorm:"column:session_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"session_id"`
	SessionName       string    `gorm:"column:session_name;type:varchar(150);not null" json:"session_name"`
	SessionDate       time.Time `gorm:"column:session_date;type:date;not null;index:idx_sessions_cohort_date,priority:2" json:"session_date"`
	SessionCohortID   uuid.UUID `gorm:"column:session_cohort_id;type:uuid;not null;index:idx_sessions_cohort_date,priority:1" json:"session_cohort_id"`
	SessionActivityID uuid.UUID `gorm:"column:session_activity_id;type:uuid;not null;index" json:"session_activity_id"`
	SessionNotes      *string   `gorm:"column:session_notes;type:text" json:"session_notes,omitempty"`

	SessionCreatedAt time.Time      `gorm:"column:session_created_at;autoCreateTime" json:"session_created_at"`
	SessionUpdatedAt time.Time      `gorm:"column:session_updated_at;autoUpdateTime" json:"session_updated_at"`
	SessionDeletedAt gorm.DeletedAt `gorm:"column:session_deleted_at;index" json:"-"`
}

func (SessionModel) TableName() string {
	return "sessions"
}

// AttendanceModel records whether a cohort member was present at a session.
// Rows are hard-deleted with their session.
type AttendanceModel struct {
	AttendanceID            uuid.UUID `gorm:"column:attendance_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"attendance_id"`
	AttendanceSessionID     uuid.UUID `gorm:"column:attendance_session_id;type:uuid;not null;uniqueIndex:uq_attendance_session_participant,priority:1" json:"attendance_session_id"`
	AttendanceParticipantID uuid.UUID `gorm:"column:attendance_participant_id;type:uuid;not null;uniqueIndex:uq_attendance_session_participant,priority:2;index" json:"attendance_participant_id"`
	AttendancePresent       bool      `gorm:"column:attendance_present;not null" json:"attendance_present"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`
}

func (AttendanceModel) TableName() string {
	return "attendance"
}
