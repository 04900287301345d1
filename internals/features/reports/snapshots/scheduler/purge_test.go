package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingPurger struct {
	calls int
	n     int64
	err   error
}

func (p *countingPurger) Purge(context.Context) (int64, error) {
	p.calls++
	return p.n, p.err
}

func TestRunPurge(t *testing.T) {
	ok := &countingPurger{n: 3}
	RunPurge(context.Background(), ok)
	assert.Equal(t, 1, ok.calls)

	failing := &countingPurger{err: errors.New("db gone")}
	assert.NotPanics(t, func() { RunPurge(context.Background(), failing) })
	assert.Equal(t, 1, failing.calls)
}

func TestNewPurgeCron(t *testing.T) {
	c, err := NewPurgeCron("0 3 * * *", &countingPurger{})
	require.NoError(t, err)
	require.Len(t, c.Entries(), 1)

	_, err = NewPurgeCron("every tuesday", &countingPurger{})
	assert.Error(t, err)
}
