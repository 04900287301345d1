package aggregation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness_backend/internals/constants"
)

func TestSplitQuarters(t *testing.T) {
	t.Run("range over a year gives four contiguous buckets", func(t *testing.T) {
		start := day("2023-01-01")
		end := day("2024-06-30").Add(17 * time.Second)

		ws := SplitQuarters(start, end)
		require.Len(t, ws, 4)

		assert.Equal(t, start, ws[0].Start)
		for i := 1; i < len(ws); i++ {
			assert.Equal(t, ws[i-1].End, ws[i].Start, "bucket %d must start where %d ends", i+1, i)
			assert.Equal(t, i+1, ws[i].Quarter)
		}
		assert.Equal(t, end, ws[3].End)
		assert.True(t, ws[3].Last)
		assert.False(t, ws[0].Last)

		q := end.Sub(start) / 4
		assert.Equal(t, q, ws[0].End.Sub(ws[0].Start))
		assert.GreaterOrEqual(t, ws[3].End.Sub(ws[3].Start), q)
	})

	t.Run("exactly one year stays one bucket", func(t *testing.T) {
		start := day("2023-01-01")
		ws := SplitQuarters(start, start.Add(QuarterlyThreshold))
		require.Len(t, ws, 1)
		assert.Equal(t, 1, ws[0].Quarter)
		assert.True(t, ws[0].Last)
	})

	t.Run("short range", func(t *testing.T) {
		ws := SplitQuarters(day("2024-01-01"), day("2024-03-31"))
		require.Len(t, ws, 1)
		assert.Equal(t, day("2024-01-01"), ws[0].Start)
		assert.Equal(t, day("2024-03-31"), ws[0].End)
	})
}

func TestRunQuarterly(t *testing.T) {
	evals := []Evaluation{
		eval("s1", "ana", "2023-01-15", dom("Creativity", 8, constants.PositiveEmotions)),
		eval("s2", "ana", "2024-12-31", dom("Creativity", 2, constants.PositiveEmotions)),
	}

	out := RunQuarterly(evals, day("2023-01-01"), day("2024-12-31"), "", LevelCohort)
	require.Len(t, out, 4)

	first := paramAvg(out[0].Happiness, constants.PositiveEmotions)
	assert.True(t, first.Valid)
	assert.InDelta(t, 8.0, first.Average, 0.001)

	assert.False(t, paramAvg(out[1].Happiness, constants.PositiveEmotions).Valid)

	// the last bucket includes the end date itself
	last := paramAvg(out[3].Happiness, constants.PositiveEmotions)
	assert.True(t, last.Valid)
	assert.InDelta(t, 2.0, last.Average, 0.001)
}
