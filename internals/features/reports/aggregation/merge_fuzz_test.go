package aggregation

import (
	"math"
	"testing"
)

// FuzzMergeOrder checks that folding the same domain entries in a different
// order ends at the same average.
func FuzzMergeOrder(f *testing.F) {
	f.Add(6.0, 4.0, 5.0)
	f.Add(1.0, 10.0, 3.33)
	f.Add(2.5, 2.5, 2.5)

	f.Fuzz(func(t *testing.T, a, b, c float64) {
		for _, v := range []float64{a, b, c} {
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 10 {
				t.Skip("score out of range")
			}
		}

		forward := GroupBySession([]Evaluation{
			eval("s1", "ana", "2024-01-01", dom("Creativity", a)),
			eval("s1", "ana", "2024-01-01", dom("Creativity", b)),
			eval("s1", "ana", "2024-01-01", dom("Creativity", c)),
		})
		backward := GroupBySession([]Evaluation{
			eval("s1", "ana", "2024-01-01", dom("Creativity", c)),
			eval("s1", "ana", "2024-01-01", dom("Creativity", b)),
			eval("s1", "ana", "2024-01-01", dom("Creativity", a)),
		})

		got := forward[0].Participants[0].Domains[0].Average
		want := backward[0].Participants[0].Domains[0].Average
		if math.Abs(got-want) > 0.01 {
			t.Fatalf("order dependent merge: %v vs %v", got, want)
		}
	})
}
