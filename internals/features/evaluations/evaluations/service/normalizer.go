package service

import (
	"github.com/google/uuid"

	"wellness_backend/internals/features/evaluations/evaluations/dto"
	"wellness_backend/internals/features/evaluations/evaluations/model"
	"wellness_backend/internals/features/reports/aggregation"
)

// NormalizedDomain is a domain that kept at least one scored sub-topic.
type NormalizedDomain struct {
	DomainID  uuid.UUID
	SubTopics []model.SubTopicScore
	Average   float64
}

// NormalizeDomains drops unscored sub-topics (nil or 0) and domains left
// empty, then averages what remains. Both averages are rounded to 2 dp; the
// grand average is the mean of the rounded domain averages, 0 when nothing
// was scored.
func NormalizeDomains(in []dto.DomainInput) ([]NormalizedDomain, float64) {
	out := make([]NormalizedDomain, 0, len(in))
	averages := make([]float64, 0, len(in))

	for _, d := range in {
		kept := make([]model.SubTopicScore, 0, len(d.SubTopics))
		scores := make([]float64, 0, len(d.SubTopics))
		for _, st := range d.SubTopics {
			if st.Score == nil || *st.Score == 0 {
				continue
			}
			kept = append(kept, model.SubTopicScore{Content: st.Content, Score: *st.Score})
			scores = append(scores, *st.Score)
		}
		avg, ok := aggregation.Mean(scores)
		if !ok {
			continue
		}
		avg = aggregation.Round2(avg)
		out = append(out, NormalizedDomain{DomainID: d.DomainID, SubTopics: kept, Average: avg})
		averages = append(averages, avg)
	}

	grand, ok := aggregation.Mean(averages)
	if !ok {
		return out, 0
	}
	return out, aggregation.Round2(grand)
}
