package aggregation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type scored struct {
	name string
	avg  float64
}

func TestRanking(t *testing.T) {
	items := []scored{{"a", 5}, {"b", 9}, {"c", 5}, {"d", 1}, {"e", 7}}
	score := func(s scored) float64 { return s.avg }

	top := TopN(items, 3, score)
	assert.Equal(t, []scored{{"b", 9}, {"e", 7}, {"a", 5}}, top)

	bottom := BottomN(items, 3, score)
	assert.Equal(t, []scored{{"d", 1}, {"a", 5}, {"c", 5}}, bottom)

	assert.Len(t, TopN(items, 10, score), len(items))
	assert.Empty(t, TopN(items, 0, score))
	assert.Empty(t, BottomN([]scored{}, 3, score))

	// input untouched
	assert.Equal(t, "a", items[0].name)
}
