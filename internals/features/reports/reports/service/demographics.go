package service

import (
	"time"

	"github.com/google/uuid"

	"wellness_backend/internals/constants"
	participantModel "wellness_backend/internals/features/programs/participants/model"
	sessionModel "wellness_backend/internals/features/programs/sessions/model"
	"wellness_backend/internals/features/reports/aggregation"
	"wellness_backend/internals/features/reports/reports/dto"
	"wellness_backend/internals/helpers/dbtime"
)

const AgeUnknown = "unknown"

// AgeBuckets is the fixed order of age_data labels.
var AgeBuckets = []string{"<18", "18-30", "31-45", "46-60", "60+", AgeUnknown}

var genderLabels = []string{constants.GenderMale, constants.GenderFemale, constants.GenderOther}

// AgeBucket places a participant by their age on date at.
func AgeBucket(dob *time.Time, at time.Time) string {
	if dob == nil || dob.After(at) {
		return AgeUnknown
	}
	age := dbtime.AgeAt(*dob, at)
	switch {
	case age < 18:
		return "<18"
	case age <= 30:
		return "18-30"
	case age <= 45:
		return "31-45"
	case age <= 60:
		return "46-60"
	default:
		return "60+"
	}
}

// countLabels always lists every fixed label, then any other label seen in
// first-seen order.
func countLabels(fixed []string, labels []string) []dto.LabelCount {
	idx := make(map[string]int, len(fixed))
	out := make([]dto.LabelCount, 0, len(fixed))
	for _, f := range fixed {
		idx[f] = len(out)
		out = append(out, dto.LabelCount{Label: f})
	}
	for _, l := range labels {
		i, ok := idx[l]
		if !ok {
			i = len(out)
			idx[l] = i
			out = append(out, dto.LabelCount{Label: l})
		}
		out[i].Count++
	}
	return out
}

func GenderBreakdown(ps []participantModel.ParticipantModel) []dto.LabelCount {
	labels := make([]string, 0, len(ps))
	for _, p := range ps {
		labels = append(labels, p.ParticipantGender)
	}
	return countLabels(genderLabels, labels)
}

func TypeBreakdown(ps []participantModel.ParticipantModel) []dto.LabelCount {
	labels := make([]string, 0, len(ps))
	for _, p := range ps {
		labels = append(labels, p.ParticipantType)
	}
	return countLabels(constants.AllCategories, labels)
}

func AgeBreakdown(ps []participantModel.ParticipantModel, at time.Time) []dto.LabelCount {
	labels := make([]string, 0, len(ps))
	for _, p := range ps {
		labels = append(labels, AgeBucket(p.ParticipantDateOfBirth, at))
	}
	return countLabels(AgeBuckets, labels)
}

func percentage(present, total int) float64 {
	if total == 0 {
		return 0
	}
	return aggregation.Round2(float64(present) / float64(total) * 100)
}

// CohortAttendance counts, for every participant, the sessions in range they
// were marked present at. Every participant is measured against all sessions
// of the range. The second value is the sum of present marks.
func CohortAttendance(ps []participantModel.ParticipantModel, sessions []sessionModel.SessionModel, records []AttendanceRecord) ([]dto.AttendanceRow, int) {
	inRange := make(map[uuid.UUID]bool, len(sessions))
	for _, s := range sessions {
		inRange[s.SessionID] = true
	}
	present := make(map[uuid.UUID]int, len(ps))
	for _, r := range records {
		if r.Present && inRange[r.SessionID] {
			present[r.ParticipantID]++
		}
	}

	rows := make([]dto.AttendanceRow, 0, len(ps))
	total := 0
	for _, p := range ps {
		n := present[p.ParticipantID]
		total += n
		rows = append(rows, dto.AttendanceRow{
			ParticipantID:   p.ParticipantID,
			ParticipantName: p.ParticipantName,
			Present:         n,
			TotalSessions:   len(sessions),
			Percentage:      percentage(n, len(sessions)),
		})
	}
	return rows, total
}

// ParticipantAttendance measures a participant against the sessions they
// had an attendance row for.
func ParticipantAttendance(records []AttendanceRecord) dto.ParticipantAttendance {
	seen := make(map[uuid.UUID]bool, len(records))
	out := dto.ParticipantAttendance{}
	for _, r := range records {
		if seen[r.SessionID] {
			continue
		}
		seen[r.SessionID] = true
		out.TotalSessions++
		if r.Present {
			out.Present++
		}
	}
	out.Percentage = percentage(out.Present, out.TotalSessions)
	return out
}
