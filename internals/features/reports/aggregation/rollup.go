package aggregation

import (
	"time"

	"github.com/google/uuid"
)

// DomainAverage is a two-stage mean for one domain name. Count is the number
// of groups (sessions or participants) that contributed a value.
type DomainAverage struct {
	Domain  string
	Average float64
	Count   int
}

// ParticipantDomainScores is one participant's per-domain average across
// the sessions they were evaluated in.
type ParticipantDomainScores struct {
	ParticipantID   uuid.UUID
	ParticipantName string
	Domains         []DomainAverage
}

// Overall is the mean of the participant's domain averages.
func (p ParticipantDomainScores) Overall() (float64, bool) {
	vals := make([]float64, 0, len(p.Domains))
	for _, d := range p.Domains {
		vals = append(vals, d.Average)
	}
	return mean2(vals)
}

// SessionDomainScores is one session's per-domain average across the
// participants evaluated in it.
type SessionDomainScores struct {
	SessionID   uuid.UUID
	SessionName string
	SessionDate time.Time
	Domains     []DomainAverage
}

// CenterAverage is a domain's session averages averaged over the sessions
// that scored it.
type CenterAverage struct {
	Domain           string
	Average          float64
	NumberOfSessions int
}

// buckets keeps insertion order so rollups are deterministic.
type buckets[K comparable] struct {
	keys   []K
	values map[K][]float64
}

func newBuckets[K comparable]() *buckets[K] {
	return &buckets[K]{values: make(map[K][]float64)}
}

func (b *buckets[K]) add(k K, v float64) {
	if _, ok := b.values[k]; !ok {
		b.keys = append(b.keys, k)
	}
	b.values[k] = append(b.values[k], v)
}

func (b *buckets[K]) each(fn func(k K, avg float64, n int)) {
	for _, k := range b.keys {
		vals := b.values[k]
		if avg, ok := mean2(vals); ok {
			fn(k, avg, len(vals))
		}
	}
}

// ParticipantDomainAverages averages each participant's domain scores over
// their sessions. Participants keep first-seen order.
func ParticipantDomainAverages(groups []SessionGroup) []ParticipantDomainScores {
	type entry struct {
		name    string
		domains *buckets[string]
	}
	byParticipant := make(map[uuid.UUID]*entry)
	var order []uuid.UUID

	for _, g := range groups {
		for _, p := range g.Participants {
			e, ok := byParticipant[p.ParticipantID]
			if !ok {
				e = &entry{name: p.ParticipantName, domains: newBuckets[string]()}
				byParticipant[p.ParticipantID] = e
				order = append(order, p.ParticipantID)
			}
			for _, d := range p.Domains {
				e.domains.add(d.Name, d.Average)
			}
		}
	}

	out := make([]ParticipantDomainScores, 0, len(order))
	for _, id := range order {
		e := byParticipant[id]
		ps := ParticipantDomainScores{ParticipantID: id, ParticipantName: e.name}
		e.domains.each(func(domain string, avg float64, n int) {
			ps.Domains = append(ps.Domains, DomainAverage{Domain: domain, Average: avg, Count: n})
		})
		out = append(out, ps)
	}
	return out
}

// SessionDomainAverages averages each session's domain scores over the
// participants evaluated in that session.
func SessionDomainAverages(groups []SessionGroup) []SessionDomainScores {
	out := make([]SessionDomainScores, 0, len(groups))
	for _, g := range groups {
		b := newBuckets[string]()
		for _, p := range g.Participants {
			for _, d := range p.Domains {
				b.add(d.Name, d.Average)
			}
		}
		s := SessionDomainScores{SessionID: g.SessionID, SessionName: g.SessionName, SessionDate: g.SessionDate}
		b.each(func(domain string, avg float64, n int) {
			s.Domains = append(s.Domains, DomainAverage{Domain: domain, Average: avg, Count: n})
		})
		out = append(out, s)
	}
	return out
}

// CenterAverages averages session-domain averages across sessions. A session
// that never scored a domain is not part of that domain's denominator.
func CenterAverages(sessions []SessionDomainScores) []CenterAverage {
	b := newBuckets[string]()
	for _, s := range sessions {
		for _, d := range s.Domains {
			b.add(d.Domain, d.Average)
		}
	}
	var out []CenterAverage
	b.each(func(domain string, avg float64, n int) {
		out = append(out, CenterAverage{Domain: domain, Average: avg, NumberOfSessions: n})
	})
	return out
}

// OverallAverage is the single cohort score: every (participant, domain)
// pair is averaged over sessions, then those pair averages are averaged.
func OverallAverage(groups []SessionGroup) (float64, bool) {
	b := newBuckets[ParticipantDomainKey]()
	for _, g := range groups {
		for _, p := range g.Participants {
			for _, d := range p.Domains {
				b.add(ParticipantDomainKey{ParticipantID: p.ParticipantID, Domain: d.Name}, d.Average)
			}
		}
	}
	var perKey []float64
	b.each(func(_ ParticipantDomainKey, avg float64, _ int) {
		perKey = append(perKey, avg)
	})
	return mean2(perKey)
}

// DomainAveragesAcross averages per-domain values of several groups, e.g.
// participant-domain averages of many participants or center averages of
// many cohorts.
func DomainAveragesAcross(sets [][]DomainAverage) []DomainAverage {
	b := newBuckets[string]()
	for _, set := range sets {
		for _, d := range set {
			b.add(d.Domain, d.Average)
		}
	}
	var out []DomainAverage
	b.each(func(domain string, avg float64, n int) {
		out = append(out, DomainAverage{Domain: domain, Average: avg, Count: n})
	})
	return out
}

// CenterAsDomainAverages converts center averages to the common shape.
func CenterAsDomainAverages(centers []CenterAverage) []DomainAverage {
	out := make([]DomainAverage, 0, len(centers))
	for _, c := range centers {
		out = append(out, DomainAverage{Domain: c.Domain, Average: c.Average, Count: c.NumberOfSessions})
	}
	return out
}
