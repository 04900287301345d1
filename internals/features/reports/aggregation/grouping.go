package aggregation

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"wellness_backend/internals/constants"
)

// MergedDomain is a domain after duplicate entries for the same participant
// and session were folded into one running mean.
type MergedDomain struct {
	DomainID            uuid.UUID
	Name                string
	Category            string
	Average             float64
	HappinessParameters []constants.HappinessParameter
}

// MergedEvaluation is the single record kept per (session, participant).
type MergedEvaluation struct {
	SessionID       uuid.UUID
	ParticipantID   uuid.UUID
	ParticipantName string
	ParticipantType string
	Domains         []MergedDomain
}

// SessionGroup holds every merged evaluation of one session.
type SessionGroup struct {
	SessionID    uuid.UUID
	SessionName  string
	SessionDate  time.Time
	Participants []MergedEvaluation
}

// Filter restricts evaluations before grouping. Zero values disable a bound.
// End is inclusive when EndInclusive is set, exclusive otherwise.
type Filter struct {
	Start           time.Time
	End             time.Time
	EndInclusive    bool
	ParticipantType string
}

func (f Filter) match(e Evaluation) bool {
	if !f.Start.IsZero() && e.SessionDate.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() {
		if f.EndInclusive && e.SessionDate.After(f.End) {
			return false
		}
		if !f.EndInclusive && !e.SessionDate.Before(f.End) {
			return false
		}
	}
	if f.ParticipantType != "" && e.ParticipantType != f.ParticipantType {
		return false
	}
	return true
}

// FilterEvaluations returns the evaluations matching f, input order kept.
func FilterEvaluations(evals []Evaluation, f Filter) []Evaluation {
	out := make([]Evaluation, 0, len(evals))
	for _, e := range evals {
		if f.match(e) {
			out = append(out, e)
		}
	}
	return out
}

/* ===================== accumulators ===================== */

// domainKey matches domains by catalog id; legacy entries without an id fall
// back to the name.
type domainKey struct {
	id   uuid.UUID
	name string
}

func keyOf(d DomainScore) domainKey {
	if d.DomainID == uuid.Nil {
		return domainKey{name: d.Name}
	}
	return domainKey{id: d.DomainID}
}

type domainAccumulator struct {
	first  DomainScore
	params []constants.HappinessParameter
	total  float64
	count  int
}

func (a *domainAccumulator) add(d DomainScore) {
	a.total += d.Average
	a.count++
	for _, p := range d.HappinessParameters {
		if !slices.Contains(a.params, p) {
			a.params = append(a.params, p)
		}
	}
}

func (a *domainAccumulator) result() MergedDomain {
	return MergedDomain{
		DomainID:            a.first.DomainID,
		Name:                a.first.Name,
		Category:            a.first.Category,
		Average:             Round2(a.total / float64(a.count)),
		HappinessParameters: a.params,
	}
}

type participantAccumulator struct {
	id      uuid.UUID
	name    string
	ptype   string
	order   []domainKey
	domains map[domainKey]*domainAccumulator
}

func (p *participantAccumulator) add(e Evaluation) {
	for _, d := range e.Domains {
		k := keyOf(d)
		acc, ok := p.domains[k]
		if !ok {
			acc = &domainAccumulator{first: d}
			p.domains[k] = acc
			p.order = append(p.order, k)
		}
		acc.add(d)
	}
}

type sessionAccumulator struct {
	id           uuid.UUID
	name         string
	date         time.Time
	order        []uuid.UUID
	participants map[uuid.UUID]*participantAccumulator
}

/* ===================== grouping ===================== */

// GroupBySession groups evaluations by session, then by participant, merging
// a participant's repeated domains inside a session into one running mean.
// Sessions come back ordered by date; participants and domains keep the order
// they were first seen in. Bookkeeping stays in the accumulators and never
// reaches the returned values.
func GroupBySession(evals []Evaluation) []SessionGroup {
	if len(evals) == 0 {
		return nil
	}

	sessions := make(map[uuid.UUID]*sessionAccumulator)
	var order []uuid.UUID

	for _, e := range evals {
		s, ok := sessions[e.SessionID]
		if !ok {
			s = &sessionAccumulator{
				id:           e.SessionID,
				name:         e.SessionName,
				date:         e.SessionDate,
				participants: make(map[uuid.UUID]*participantAccumulator),
			}
			sessions[e.SessionID] = s
			order = append(order, e.SessionID)
		}

		p, ok := s.participants[e.ParticipantID]
		if !ok {
			p = &participantAccumulator{
				id:      e.ParticipantID,
				name:    e.ParticipantName,
				ptype:   e.ParticipantType,
				domains: make(map[domainKey]*domainAccumulator),
			}
			s.participants[e.ParticipantID] = p
			s.order = append(s.order, e.ParticipantID)
		}
		p.add(e)
	}

	out := make([]SessionGroup, 0, len(order))
	for _, id := range order {
		s := sessions[id]
		g := SessionGroup{
			SessionID:    s.id,
			SessionName:  s.name,
			SessionDate:  s.date,
			Participants: make([]MergedEvaluation, 0, len(s.order)),
		}
		for _, pid := range s.order {
			p := s.participants[pid]
			m := MergedEvaluation{
				SessionID:       s.id,
				ParticipantID:   p.id,
				ParticipantName: p.name,
				ParticipantType: p.ptype,
				Domains:         make([]MergedDomain, 0, len(p.order)),
			}
			for _, k := range p.order {
				m.Domains = append(m.Domains, p.domains[k].result())
			}
			g.Participants = append(g.Participants, m)
		}
		out = append(out, g)
	}

	slices.SortStableFunc(out, func(a, b SessionGroup) int {
		return a.SessionDate.Compare(b.SessionDate)
	})
	return out
}
