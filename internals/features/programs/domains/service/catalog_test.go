package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness_backend/internals/constants"
	"wellness_backend/internals/features/programs/domains/model"
)

func TestCatalogLookup(t *testing.T) {
	creativity := model.DomainModel{
		DomainID:                  uuid.New(),
		DomainName:                "Creativity",
		DomainCategory:            constants.CategoryGeneral,
		DomainHappinessParameters: pq.StringArray{"PositiveEmotions", "EngagementPurpose", "bogus"},
	}
	c := NewCatalog([]model.DomainModel{creativity})

	got, ok := c.ByID(creativity.DomainID)
	require.True(t, ok)
	assert.Equal(t, "Creativity", got.DomainName)

	assert.Equal(t,
		[]constants.HappinessParameter{constants.PositiveEmotions, constants.EngagementPurpose},
		c.HappinessParameters("Creativity"),
	)

	missing := c.HappinessParameters("Juggling")
	assert.NotNil(t, missing)
	assert.Empty(t, missing)
	assert.Equal(t, 1, c.Len())
}
