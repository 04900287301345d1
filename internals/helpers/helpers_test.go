package helper

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestToFiberError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", fmt.Errorf("%w: cohort_id is required", ErrValidation), fiber.StatusBadRequest},
		{"not found", fmt.Errorf("%w: cohort", ErrNotFound), fiber.StatusNotFound},
		{"gorm not found", gorm.ErrRecordNotFound, fiber.StatusNotFound},
		{"fiber error passes through", fiber.NewError(fiber.StatusConflict, "dup"), fiber.StatusConflict},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var fe *fiber.Error
			require.ErrorAs(t, ToFiberError(tc.err), &fe)
			assert.Equal(t, tc.code, fe.Code)
		})
	}

	assert.NoError(t, ToFiberError(nil))
}

func TestParseUUIDList(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	ids, err := ParseUUIDList(a.String() + ", " + b.String() + ",")
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, ids)

	ids, err = ParseUUIDList("")
	require.NoError(t, err)
	assert.Nil(t, ids)

	_, err = ParseUUIDList("nope")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestResolvePaging(t *testing.T) {
	app := fiber.New()
	var got Paging
	app.Get("/", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return nil
	})

	_, err := app.Test(httptest.NewRequest("GET", "/?page=3&per_page=500", nil))
	require.NoError(t, err)
	assert.Equal(t, Paging{Page: 3, PerPage: 100, Offset: 200, Limit: 100}, got)

	p := BuildPagination(250, got, 50)
	assert.Equal(t, 3, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
}
