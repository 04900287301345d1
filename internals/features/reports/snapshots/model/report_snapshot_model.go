package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const (
	KindCohort      = "cohort"
	KindParticipant = "participant"
	KindComparison  = "comparison"
	KindDashboard   = "dashboard"
)

// ReportSnapshotModel is an exported report: the computed JSON frozen at
// creation time together with the query that produced it.
type ReportSnapshotModel struct {
	ReportSnapshotID              uuid.UUID      `gorm:"column:report_snapshot_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"report_snapshot_id"`
	ReportSnapshotKind            string         `gorm:"column:report_snapshot_kind;type:varchar(20);not null;index:idx_report_snapshots_subject,priority:1" json:"report_snapshot_kind"`
	ReportSnapshotSubjectID       *uuid.UUID     `gorm:"column:report_snapshot_subject_id;type:uuid;index:idx_report_snapshots_subject,priority:2" json:"report_snapshot_subject_id,omitempty"`
	ReportSnapshotCohortIDs       pq.StringArray `gorm:"column:report_snapshot_cohort_ids;type:text[]" json:"report_snapshot_cohort_ids,omitempty"`
	ReportSnapshotStartDate       time.Time      `gorm:"column:report_snapshot_start_date;type:date;not null" json:"report_snapshot_start_date"`
	ReportSnapshotEndDate         time.Time      `gorm:"column:report_snapshot_end_date;type:date;not null" json:"report_snapshot_end_date"`
	ReportSnapshotParticipantType string         `gorm:"column:report_snapshot_participant_type;type:varchar(20)" json:"report_snapshot_participant_type,omitempty"`
	ReportSnapshotPayload         datatypes.JSON `gorm:"column:report_snapshot_payload;type:jsonb;not null" json:"report_snapshot_payload"`

	ReportSnapshotCreatedAt time.Time `gorm:"column:report_snapshot_created_at;autoCreateTime" json:"report_snapshot_created_at"`
	ReportSnapshotExpiresAt time.Time `gorm:"column:report_snapshot_expires_at;not null;index" json:"report_snapshot_expires_at"`
}

func (ReportSnapshotModel) TableName() string {
	return "report_snapshots"
}
