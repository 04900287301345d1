package dto

import (
	"github.com/google/uuid"

	reportDTO "wellness_backend/internals/features/reports/reports/dto"
)

type Counts struct {
	Participants int64 `json:"participants"`
	Cohorts      int64 `json:"cohorts"`
	Activities   int64 `json:"activities"`
	Sessions     int64 `json:"sessions"`
	Evaluations  int64 `json:"evaluations"`
}

type Performer struct {
	ParticipantID   uuid.UUID `json:"participant_id"`
	ParticipantName string    `json:"participant_name"`
	Average         float64   `json:"average"`
}

// Center is one cohort ranked by its overall average.
type Center struct {
	CohortID         uuid.UUID `json:"cohort_id"`
	CohortName       string    `json:"cohort_name"`
	CohortCenter     string    `json:"cohort_center"`
	Average          float64   `json:"average"`
	NumberOfSessions int       `json:"number_of_sessions"`
}

type Dashboard struct {
	Range                      reportDTO.ReportRange        `json:"range"`
	Counts                     Counts                       `json:"counts"`
	TopPerformers              []Performer                  `json:"top_performers"`
	BottomPerformers           []Performer                  `json:"bottom_performers"`
	TopCenters                 []Center                     `json:"top_centers"`
	HappinessParameterAverages []reportDTO.ParameterAverage `json:"happiness_parameter_averages"`
	AverageScore               *float64                     `json:"average_score"`
}
