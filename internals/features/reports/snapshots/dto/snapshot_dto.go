package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"wellness_backend/internals/features/reports/snapshots/model"
	"wellness_backend/internals/helpers/dbtime"
)

// CreateSnapshotRequest. SubjectID is the cohort or participant for those
// kinds; CohortIDs narrows a comparison.
type CreateSnapshotRequest struct {
	Kind            string      `json:"kind" validate:"required,oneof=cohort participant comparison dashboard"`
	SubjectID       *uuid.UUID  `json:"subject_id" validate:"required_if=Kind cohort,required_if=Kind participant"`
	CohortIDs       []uuid.UUID `json:"cohort_ids" validate:"omitempty,unique"`
	StartDate       string      `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate         string      `json:"end_date" validate:"required,datetime=2006-01-02"`
	ParticipantType string      `json:"participant_type" validate:"omitempty,oneof=General SpecialNeed"`
}

// SnapshotSummary is a list row; it leaves the payload out.
type SnapshotSummary struct {
	ID              uuid.UUID  `json:"report_snapshot_id"`
	Kind            string     `json:"kind"`
	SubjectID       *uuid.UUID `json:"subject_id,omitempty"`
	CohortIDs       []string   `json:"cohort_ids,omitempty"`
	StartDate       string     `json:"start_date"`
	EndDate         string     `json:"end_date"`
	ParticipantType string     `json:"participant_type,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	ExpiresAt       time.Time  `json:"expires_at"`
}

type SnapshotResponse struct {
	SnapshotSummary
	Payload json.RawMessage `json:"payload"`
}

func SummaryFromModel(m model.ReportSnapshotModel) SnapshotSummary {
	return SnapshotSummary{
		ID:              m.ReportSnapshotID,
		Kind:            m.ReportSnapshotKind,
		SubjectID:       m.ReportSnapshotSubjectID,
		CohortIDs:       []string(m.ReportSnapshotCohortIDs),
		StartDate:       m.ReportSnapshotStartDate.Format(dbtime.DateLayout),
		EndDate:         m.ReportSnapshotEndDate.Format(dbtime.DateLayout),
		ParticipantType: m.ReportSnapshotParticipantType,
		CreatedAt:       m.ReportSnapshotCreatedAt,
		ExpiresAt:       m.ReportSnapshotExpiresAt,
	}
}

func FromModel(m model.ReportSnapshotModel) SnapshotResponse {
	return SnapshotResponse{SnapshotSummary: SummaryFromModel(m), Payload: json.RawMessage(m.ReportSnapshotPayload)}
}

func SummariesFromModels(rows []model.ReportSnapshotModel) []SnapshotSummary {
	out := make([]SnapshotSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, SummaryFromModel(r))
	}
	return out
}
