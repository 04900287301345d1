package aggregation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness_backend/internals/constants"
)

func TestHappinessAverages(t *testing.T) {
	pm := ParameterMap{
		"Creativity":   {constants.PositiveEmotions, constants.EngagementPurpose},
		"Motor Skills": {constants.PositiveEmotions},
	}
	domains := []DomainAverage{
		{Domain: "Creativity", Average: 6},
		{Domain: "Motor Skills", Average: 4},
		{Domain: "Unmapped", Average: 1},
	}

	out := HappinessAverages(domains, pm)
	require.Len(t, out, len(constants.AllHappinessParameters))
	for i, p := range constants.AllHappinessParameters {
		assert.Equal(t, p, out[i].Parameter)
	}

	pe := paramAvg(out, constants.PositiveEmotions)
	assert.True(t, pe.Valid)
	assert.InDelta(t, 5.0, pe.Average, 0.001)
	assert.Equal(t, 2, pe.Domains)

	ep := paramAvg(out, constants.EngagementPurpose)
	assert.True(t, ep.Valid)
	assert.InDelta(t, 6.0, ep.Average, 0.001)

	sb := paramAvg(out, constants.SocialBelonging)
	assert.False(t, sb.Valid)
	assert.Zero(t, sb.Domains)
}

func TestBuildParameterMap(t *testing.T) {
	groups := GroupBySession([]Evaluation{
		eval("s1", "ana", "2024-01-01", dom("Creativity", 6, constants.PositiveEmotions)),
		eval("s2", "ben", "2024-01-08", dom("Creativity", 4, constants.SocialBelonging)),
		eval("s2", "ben", "2024-01-08", dom("Attention", 4)),
	})

	pm := BuildParameterMap(groups)
	assert.ElementsMatch(t, []constants.HappinessParameter{constants.PositiveEmotions, constants.SocialBelonging}, pm["Creativity"])
	assert.Empty(t, pm["Attention"])

	other := ParameterMap{"Attention": {constants.EngagementPurpose}}
	pm.Merge(other)
	assert.Equal(t, []constants.HappinessParameter{constants.EngagementPurpose}, pm["Attention"])
}
