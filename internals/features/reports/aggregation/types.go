// Package aggregation turns normalized evaluations into session, participant,
// cohort and happiness-parameter rollups. It does no I/O; callers load records
// and hand them in as plain values.
package aggregation

import (
	"time"

	"github.com/google/uuid"

	"wellness_backend/internals/constants"
)

// DomainScore is the per-domain part of a normalized evaluation as the
// aggregation engine sees it. HappinessParameters is the snapshot taken when
// the evaluation was written, not the current catalog mapping.
type DomainScore struct {
	DomainID            uuid.UUID
	Name                string
	Category            string
	Average             float64
	HappinessParameters []constants.HappinessParameter
}

// Evaluation is one participant's scored record for one session.
type Evaluation struct {
	ID              uuid.UUID
	CohortID        uuid.UUID
	SessionID       uuid.UUID
	SessionName     string
	SessionDate     time.Time
	ParticipantID   uuid.UUID
	ParticipantName string
	ParticipantType string
	ActivityID      uuid.UUID
	Domains         []DomainScore
}

// Level selects which domain-level average feeds the happiness parameters.
type Level int

const (
	// LevelCohort uses center averages (session means averaged over sessions).
	LevelCohort Level = iota
	// LevelParticipant uses participant-domain averages.
	LevelParticipant
)

func (l Level) String() string {
	switch l {
	case LevelCohort:
		return "cohort"
	case LevelParticipant:
		return "participant"
	default:
		return "unknown"
	}
}

// ParticipantDomainKey identifies one participant's scores for one domain.
type ParticipantDomainKey struct {
	ParticipantID uuid.UUID
	Domain        string
}
