package aggregation

import (
	"time"

	"github.com/google/uuid"
)

// TrendPoint is one session's merged score for a domain.
type TrendPoint struct {
	SessionID   uuid.UUID
	SessionName string
	SessionDate time.Time
	Score       float64
}

type DomainTrend struct {
	Domain string
	Points []TrendPoint
}

// DomainTrends lists, per domain, the participant's score in every session
// that scored it, in session order. Domains keep first-seen order.
func DomainTrends(groups []SessionGroup, participantID uuid.UUID) []DomainTrend {
	idx := make(map[string]int)
	var out []DomainTrend

	for _, g := range groups {
		for _, p := range g.Participants {
			if p.ParticipantID != participantID {
				continue
			}
			for _, d := range p.Domains {
				i, ok := idx[d.Name]
				if !ok {
					i = len(out)
					idx[d.Name] = i
					out = append(out, DomainTrend{Domain: d.Name})
				}
				out[i].Points = append(out[i].Points, TrendPoint{
					SessionID:   g.SessionID,
					SessionName: g.SessionName,
					SessionDate: g.SessionDate,
					Score:       d.Average,
				})
			}
		}
	}
	return out
}
