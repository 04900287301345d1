package dto

import (
	"github.com/google/uuid"

	"wellness_backend/internals/features/reports/aggregation"
	"wellness_backend/internals/helpers/dbtime"
)

/* =========================
   Shared pieces
========================= */

type ReportRange struct {
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	ParticipantType string `json:"participant_type,omitempty"`
}

type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ParameterAverage.Average is null when no tagged domain had a score.
type ParameterAverage struct {
	Parameter string   `json:"parameter"`
	Average   *float64 `json:"average"`
	Domains   int      `json:"domains"`
}

type QuarterHappiness struct {
	Quarter                    int                `json:"quarter"`
	Start                      string             `json:"start"`
	End                        string             `json:"end"`
	HappinessParameterAverages []ParameterAverage `json:"happiness_parameter_averages"`
}

type DomainAverage struct {
	Domain  string  `json:"domain"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type CohortSummary struct {
	CohortID     uuid.UUID `json:"cohort_id"`
	CohortName   string    `json:"cohort_name"`
	CohortCenter string    `json:"cohort_center,omitempty"`
}

func nullable(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}

func FromParameterAverages(in []aggregation.ParameterAverage) []ParameterAverage {
	out := make([]ParameterAverage, 0, len(in))
	for _, p := range in {
		out = append(out, ParameterAverage{
			Parameter: string(p.Parameter),
			Average:   nullable(p.Average, p.Valid),
			Domains:   p.Domains,
		})
	}
	return out
}

// FromQuarters renders windows as dates. The exclusive end of a non-final
// bucket is shown as-is; it equals the next bucket's start.
func FromQuarters(in []aggregation.QuarterResult) []QuarterHappiness {
	out := make([]QuarterHappiness, 0, len(in))
	for _, q := range in {
		out = append(out, QuarterHappiness{
			Quarter:                    q.Quarter,
			Start:                      q.Start.Format(dbtime.DateLayout),
			End:                        q.End.Format(dbtime.DateLayout),
			HappinessParameterAverages: FromParameterAverages(q.Happiness),
		})
	}
	return out
}

func FromDomainAverages(in []aggregation.DomainAverage) []DomainAverage {
	out := make([]DomainAverage, 0, len(in))
	for _, d := range in {
		out = append(out, DomainAverage{Domain: d.Domain, Average: d.Average, Count: d.Count})
	}
	return out
}

/* =========================
   Cohort report
========================= */

type AttendanceRow struct {
	ParticipantID   uuid.UUID `json:"participant_id"`
	ParticipantName string    `json:"participant_name"`
	Present         int       `json:"present"`
	TotalSessions   int       `json:"total_sessions"`
	Percentage      float64   `json:"percentage"`
}

type GraphDetail struct {
	DomainName       string  `json:"domain_name"`
	CenterAverage    float64 `json:"center_average"`
	NumberOfSessions int     `json:"number_of_sessions"`
}

type ParticipantDomainScore struct {
	Domain        string    `json:"domain"`
	Score         float64   `json:"score"`
	Participant   string    `json:"participant"`
	ParticipantID uuid.UUID `json:"participant_id"`
}

type CohortReport struct {
	Cohort                              CohortSummary            `json:"cohort"`
	Range                               ReportRange              `json:"range"`
	Attendance                          []AttendanceRow          `json:"attendance"`
	TotalAttendance                     int                      `json:"total_attendance"`
	TotalNumberOfSessions               int                      `json:"total_number_of_sessions"`
	GraphDetails                        []GraphDetail            `json:"graph_details"`
	ParticipantDomainScores             []ParticipantDomainScore `json:"participant_domain_scores"`
	AverageForCohort                    *float64                 `json:"average_for_cohort"`
	GenderData                          []LabelCount             `json:"gender_data"`
	ParticipantTypeData                 []LabelCount             `json:"participant_type_data"`
	AgeData                             []LabelCount             `json:"age_data"`
	HappinessParameterAverages          []ParameterAverage       `json:"happiness_parameter_averages"`
	QuarterlyHappinessParameterAverages []QuarterHappiness       `json:"quarterly_happiness_parameter_averages"`
}

func FromCenterAverages(in []aggregation.CenterAverage) []GraphDetail {
	out := make([]GraphDetail, 0, len(in))
	for _, c := range in {
		out = append(out, GraphDetail{DomainName: c.Domain, CenterAverage: c.Average, NumberOfSessions: c.NumberOfSessions})
	}
	return out
}

func FromParticipantDomains(in []aggregation.ParticipantDomainScores) []ParticipantDomainScore {
	var out []ParticipantDomainScore
	for _, p := range in {
		for _, d := range p.Domains {
			out = append(out, ParticipantDomainScore{
				Domain:        d.Domain,
				Score:         d.Average,
				Participant:   p.ParticipantName,
				ParticipantID: p.ParticipantID,
			})
		}
	}
	if out == nil {
		out = []ParticipantDomainScore{}
	}
	return out
}

/* =========================
   Participant report
========================= */

type ParticipantSummary struct {
	ParticipantID   uuid.UUID `json:"participant_id"`
	ParticipantName string    `json:"participant_name"`
	Gender          string    `json:"gender"`
	ParticipantType string    `json:"participant_type"`
	Age             *int      `json:"age,omitempty"`
}

type ParticipantAttendance struct {
	Present       int     `json:"present"`
	TotalSessions int     `json:"total_sessions"`
	Percentage    float64 `json:"percentage"`
}

type DomainScore struct {
	Domain   string  `json:"domain"`
	Score    float64 `json:"score"`
	Sessions int     `json:"sessions"`
}

type TrendPoint struct {
	SessionID   uuid.UUID `json:"session_id"`
	SessionName string    `json:"session_name"`
	Date        string    `json:"date"`
	Score       float64   `json:"score"`
}

type DomainTrend struct {
	Domain string       `json:"domain"`
	Points []TrendPoint `json:"points"`
}

type ParticipantReport struct {
	Participant                         ParticipantSummary    `json:"participant"`
	Cohort                              *CohortSummary        `json:"cohort"`
	Range                               ReportRange           `json:"range"`
	Attendance                          ParticipantAttendance `json:"attendance"`
	DomainScores                        []DomainScore         `json:"domain_scores"`
	AverageScore                        *float64              `json:"average_score"`
	DomainTrends                        []DomainTrend         `json:"domain_trends"`
	HappinessParameterAverages          []ParameterAverage    `json:"happiness_parameter_averages"`
	QuarterlyHappinessParameterAverages []QuarterHappiness    `json:"quarterly_happiness_parameter_averages"`
}

func FromDomainScores(in []aggregation.DomainAverage) []DomainScore {
	out := make([]DomainScore, 0, len(in))
	for _, d := range in {
		out = append(out, DomainScore{Domain: d.Domain, Score: d.Average, Sessions: d.Count})
	}
	return out
}

func FromTrends(in []aggregation.DomainTrend) []DomainTrend {
	out := make([]DomainTrend, 0, len(in))
	for _, t := range in {
		dt := DomainTrend{Domain: t.Domain, Points: make([]TrendPoint, 0, len(t.Points))}
		for _, p := range t.Points {
			dt.Points = append(dt.Points, TrendPoint{
				SessionID:   p.SessionID,
				SessionName: p.SessionName,
				Date:        p.SessionDate.Format(dbtime.DateLayout),
				Score:       p.Score,
			})
		}
		out = append(out, dt)
	}
	return out
}

/* =========================
   Comparison report
========================= */

type CohortComparison struct {
	Cohort                     CohortSummary      `json:"cohort"`
	AverageForCohort           *float64           `json:"average_for_cohort"`
	NumberOfSessions           int                `json:"number_of_sessions"`
	DomainAverages             []DomainAverage    `json:"domain_averages"`
	HappinessParameterAverages []ParameterAverage `json:"happiness_parameter_averages"`
}

type RankedCohort struct {
	Cohort  CohortSummary `json:"cohort"`
	Average float64       `json:"average"`
}

type ComparisonReport struct {
	Range                      ReportRange        `json:"range"`
	Cohorts                    []CohortComparison `json:"cohorts"`
	DomainAverages             []DomainAverage    `json:"domain_averages"`
	HappinessParameterAverages []ParameterAverage `json:"happiness_parameter_averages"`
	TopCohorts                 []RankedCohort     `json:"top_cohorts"`
	BottomCohorts              []RankedCohort     `json:"bottom_cohorts"`
}
