package dataset

import (
	"context"
	"errors"
	"testing"

	"github.com/farxc/contract_consumption/internal/logger"
	"github.com/stretchr/testify/assert"
)

type countingSource struct {
	loads int
	err   error
}

func (s *countingSource) Load(ctx context.Context) (*Snapshot, error) {
	s.loads++
	if s.err != nil {
		return nil, s.err
	}
	payments := NewTable([]string{ColBeneficiary, ColContract, ColAmount})
	commitments := NewTable([]string{ColDocumentRef, ColTotalAmount})
	return newSnapshot(payments, commitments), nil
}

func TestCacheLoadsAtMostOnce(t *testing.T) {
	source := &countingSource{}
	cache := NewCache(source, logger.New("error"))

	first, err := cache.Get(context.Background())
	assert.NoError(t, err)

	second, err := cache.Get(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, 1, source.loads)
	assert.Same(t, first, second)
}

func TestCacheInvalidateForcesReload(t *testing.T) {
	source := &countingSource{}
	cache := NewCache(source, logger.New("error"))

	first, err := cache.Get(context.Background())
	assert.NoError(t, err)

	cache.Invalidate()

	second, err := cache.Get(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, 2, source.loads)
	assert.NotSame(t, first, second)
}

// A failed load is not memoized: the next read retries the source.
func TestCacheDoesNotMemoizeFailures(t *testing.T) {
	source := &countingSource{err: errors.New("source unavailable")}
	cache := NewCache(source, logger.New("error"))

	_, err := cache.Get(context.Background())
	assert.Error(t, err)

	source.err = nil
	snap, err := cache.Get(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, snap)
	assert.Equal(t, 2, source.loads)
}
