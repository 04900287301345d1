package aggregation

import "time"

// QuarterlyThreshold is the range length above which a window is split into
// four buckets.
const QuarterlyThreshold = 365 * 24 * time.Hour

// Window is one quarterly bucket. Start is inclusive; End is exclusive except
// for the final bucket, which ends exactly at the requested end date.
type Window struct {
	Quarter int
	Start   time.Time
	End     time.Time
	Last    bool
}

// Filter selects the evaluations that fall inside the window.
func (w Window) Filter(participantType string) Filter {
	return Filter{Start: w.Start, End: w.End, EndInclusive: w.Last, ParticipantType: participantType}
}

// SplitQuarters returns four equal buckets when end-start exceeds a year and
// a single bucket covering the whole range otherwise. The last bucket absorbs
// the remainder of the integer division.
func SplitQuarters(start, end time.Time) []Window {
	total := end.Sub(start)
	if total <= QuarterlyThreshold {
		return []Window{{Quarter: 1, Start: start, End: end, Last: true}}
	}

	q := total / 4
	out := make([]Window, 0, 4)
	for i := 0; i < 4; i++ {
		w := Window{
			Quarter: i + 1,
			Start:   start.Add(time.Duration(i) * q),
			End:     start.Add(time.Duration(i+1) * q),
		}
		if i == 3 {
			w.End = end
			w.Last = true
		}
		out = append(out, w)
	}
	return out
}
