package aggregation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticipantDomainAverages(t *testing.T) {
	groups := GroupBySession([]Evaluation{
		eval("s1", "ana", "2024-01-01", dom("Creativity", 6)),
		eval("s2", "ana", "2024-01-08", dom("Creativity", 4), dom("Attention", 3)),
		eval("s2", "ben", "2024-01-08", dom("Creativity", 9)),
	})

	scores := ParticipantDomainAverages(groups)
	require.Len(t, scores, 2)

	ana := scores[0]
	creativity, ok := domainAvg(ana.Domains, "Creativity")
	require.True(t, ok)
	assert.InDelta(t, 5.0, creativity, 0.001)
	assert.Equal(t, 2, ana.Domains[0].Count)

	attention, ok := domainAvg(ana.Domains, "Attention")
	require.True(t, ok)
	assert.InDelta(t, 3.0, attention, 0.001)

	overall, ok := ana.Overall()
	require.True(t, ok)
	assert.InDelta(t, 4.0, overall, 0.001)
}

func TestSessionAndCenterAverages(t *testing.T) {
	groups := GroupBySession([]Evaluation{
		eval("s1", "ana", "2024-01-01", dom("Creativity", 6), dom("Motor Skills", 2)),
		eval("s1", "ben", "2024-01-01", dom("Creativity", 8)),
		eval("s2", "ana", "2024-01-08", dom("Creativity", 4)),
	})

	sessions := SessionDomainAverages(groups)
	require.Len(t, sessions, 2)
	s1, _ := domainAvg(sessions[0].Domains, "Creativity")
	assert.InDelta(t, 7.0, s1, 0.001)

	centers := CenterAverages(sessions)
	require.Len(t, centers, 2)

	assert.Equal(t, "Creativity", centers[0].Domain)
	assert.InDelta(t, 5.5, centers[0].Average, 0.001)
	assert.Equal(t, 2, centers[0].NumberOfSessions)

	// s2 never scored Motor Skills, so it is not in the denominator.
	assert.Equal(t, "Motor Skills", centers[1].Domain)
	assert.InDelta(t, 2.0, centers[1].Average, 0.001)
	assert.Equal(t, 1, centers[1].NumberOfSessions)
}

func TestOverallAverage(t *testing.T) {
	t.Run("mean of participant-domain means", func(t *testing.T) {
		groups := GroupBySession([]Evaluation{
			eval("s1", "ana", "2024-01-01", dom("Creativity", 6)),
			eval("s2", "ana", "2024-01-08", dom("Creativity", 4)),
			eval("s1", "ben", "2024-01-01", dom("Creativity", 8)),
		})
		avg, ok := OverallAverage(groups)
		require.True(t, ok)
		// ana: 5, ben: 8
		assert.InDelta(t, 6.5, avg, 0.001)
	})

	t.Run("participants sharing a name stay apart", func(t *testing.T) {
		twin := eval("s1", "ana", "2024-01-01", dom("Creativity", 2))
		twin.ParticipantID = testID("participant-other-ana")
		groups := GroupBySession([]Evaluation{
			eval("s1", "ana", "2024-01-01", dom("Creativity", 6)),
			eval("s2", "ana", "2024-01-08", dom("Creativity", 6)),
			twin,
		})
		avg, ok := OverallAverage(groups)
		require.True(t, ok)
		// keyed by name this would be (6+6+2)/3; keyed by id it is (6+2)/2
		assert.InDelta(t, 4.0, avg, 0.001)
	})

	t.Run("empty", func(t *testing.T) {
		avg, ok := OverallAverage(nil)
		assert.False(t, ok)
		assert.Zero(t, avg)
	})
}

func TestMean(t *testing.T) {
	avg, ok := Mean([]float64{1, math.NaN(), 3, math.Inf(1)})
	require.True(t, ok)
	assert.InDelta(t, 2.0, avg, 0.0001)

	_, ok = Mean(nil)
	assert.False(t, ok)

	assert.InDelta(t, 2.35, Round2(2.346), 0.0001)
	assert.InDelta(t, 6.67, Round2(20.0/3), 0.0001)
}

func TestDomainAveragesAcross(t *testing.T) {
	out := DomainAveragesAcross([][]DomainAverage{
		{{Domain: "Creativity", Average: 6}, {Domain: "Attention", Average: 3}},
		{{Domain: "Creativity", Average: 4}},
	})
	require.Len(t, out, 2)
	assert.InDelta(t, 5.0, out[0].Average, 0.001)
	assert.Equal(t, 2, out[0].Count)
	assert.InDelta(t, 3.0, out[1].Average, 0.001)
	assert.Equal(t, 1, out[1].Count)
}
