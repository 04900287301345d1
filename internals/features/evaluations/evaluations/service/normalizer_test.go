package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness_backend/internals/features/evaluations/evaluations/dto"
)

func scores(vals ...float64) []dto.SubTopicInput {
	out := make([]dto.SubTopicInput, 0, len(vals))
	for i := range vals {
		v := vals[i]
		out = append(out, dto.SubTopicInput{Content: "item", Score: &v})
	}
	return out
}

func TestNormalizeDomainsWorkedExample(t *testing.T) {
	creativity, attention := uuid.New(), uuid.New()

	domains, grand := NormalizeDomains([]dto.DomainInput{
		{DomainID: creativity, SubTopics: scores(5, 6, 7)},
		{DomainID: attention, SubTopics: scores(4, 4)},
	})

	require.Len(t, domains, 2)
	assert.Equal(t, creativity, domains[0].DomainID)
	assert.Equal(t, 6.0, domains[0].Average)
	assert.Equal(t, 4.0, domains[1].Average)
	assert.Equal(t, 5.0, grand)
}

func TestNormalizeDomainsDropsUnscored(t *testing.T) {
	kept, emptied := uuid.New(), uuid.New()
	in := []dto.DomainInput{
		{DomainID: kept, SubTopics: append(scores(0, 3), dto.SubTopicInput{Content: "skipped"})},
		{DomainID: emptied, SubTopics: append(scores(0), dto.SubTopicInput{Content: "unset"})},
		{DomainID: uuid.New()},
	}

	domains, grand := NormalizeDomains(in)

	require.Len(t, domains, 1)
	assert.Equal(t, kept, domains[0].DomainID)
	assert.Len(t, domains[0].SubTopics, 1)
	assert.Equal(t, 3.0, domains[0].Average)
	assert.Equal(t, 3.0, grand)
}

func TestNormalizeDomainsRounding(t *testing.T) {
	domains, grand := NormalizeDomains([]dto.DomainInput{
		{DomainID: uuid.New(), SubTopics: scores(1, 2, 2)},
		{DomainID: uuid.New(), SubTopics: scores(3)},
		{DomainID: uuid.New(), SubTopics: scores(2)},
	})

	require.Len(t, domains, 3)
	assert.Equal(t, 1.67, domains[0].Average)
	assert.Equal(t, 2.22, grand)
}

func TestNormalizeDomainsEmpty(t *testing.T) {
	domains, grand := NormalizeDomains([]dto.DomainInput{{DomainID: uuid.New(), SubTopics: scores(0, 0)}})
	assert.Empty(t, domains)
	assert.Equal(t, 0.0, grand)

	domains, grand = NormalizeDomains(nil)
	assert.Empty(t, domains)
	assert.Equal(t, 0.0, grand)
}
