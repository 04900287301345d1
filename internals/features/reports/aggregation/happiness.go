package aggregation

import (
	"slices"

	"wellness_backend/internals/constants"
)

// ParameterMap maps a domain name to the happiness parameters it was tagged
// with in the evaluations being aggregated.
type ParameterMap map[string][]constants.HappinessParameter

func (m ParameterMap) add(domain string, params []constants.HappinessParameter) {
	cur := m[domain]
	for _, p := range params {
		if !slices.Contains(cur, p) {
			cur = append(cur, p)
		}
	}
	m[domain] = cur
}

// Merge folds other into m.
func (m ParameterMap) Merge(other ParameterMap) {
	for domain, params := range other {
		m.add(domain, params)
	}
}

// BuildParameterMap scans the snapshots carried by the merged evaluations.
// Domains whose snapshots carry no parameter map to an empty set.
func BuildParameterMap(groups []SessionGroup) ParameterMap {
	m := make(ParameterMap)
	for _, g := range groups {
		for _, p := range g.Participants {
			for _, d := range p.Domains {
				m.add(d.Name, d.HappinessParameters)
			}
		}
	}
	return m
}

// ParameterAverage is one happiness parameter's score. Valid is false when
// no domain tagged with the parameter had a score.
type ParameterAverage struct {
	Parameter constants.HappinessParameter
	Average   float64
	Valid     bool
	Domains   int
}

// HappinessAverages averages, for every parameter, the domain-level averages
// of the domains tagged with it. All four parameters are always returned in
// constants.AllHappinessParameters order.
func HappinessAverages(domains []DomainAverage, pm ParameterMap) []ParameterAverage {
	values := make(map[constants.HappinessParameter][]float64, len(constants.AllHappinessParameters))
	for _, d := range domains {
		for _, p := range pm[d.Domain] {
			values[p] = append(values[p], d.Average)
		}
	}

	out := make([]ParameterAverage, 0, len(constants.AllHappinessParameters))
	for _, p := range constants.AllHappinessParameters {
		pa := ParameterAverage{Parameter: p, Domains: len(values[p])}
		if avg, ok := mean2(values[p]); ok {
			pa.Average = avg
			pa.Valid = true
		}
		out = append(out, pa)
	}
	return out
}
