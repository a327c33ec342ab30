//go:build unit

package catalog_test

import (
	"testing"
	"time"

	"turnera/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	s, err := catalog.NewService(uuid.New(), "  Corte  ", nil, 0, 150000)
	require.NoError(t, err)
	assert.Equal(t, "Corte", s.Name())
	assert.Zero(t, s.DurationMin())

	_, err = catalog.NewService(uuid.New(), "", nil, 30, 0)
	assert.ErrorIs(t, err, catalog.ErrServiceNameRequired)
	_, err = catalog.NewService(uuid.New(), "Corte", nil, -1, 0)
	assert.ErrorIs(t, err, catalog.ErrNegativeDuration)
	_, err = catalog.NewService(uuid.New(), "Corte", nil, 30, -5)
	assert.ErrorIs(t, err, catalog.ErrNegativePrice)
}

func TestNewSlot(t *testing.T) {
	local := time.FixedZone("ART", -3*60*60)
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, local)

	s, err := catalog.NewSlot(uuid.New(), start, 30, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, s.Start().Location())
	assert.Equal(t, 12, s.Start().Hour())

	_, err = catalog.NewSlot(uuid.New(), time.Time{}, 30, 1, 0)
	assert.ErrorIs(t, err, catalog.ErrStartRequired)
	_, err = catalog.NewSlot(uuid.New(), start, 30, 0, 0)
	assert.ErrorIs(t, err, catalog.ErrInvalidCapacity)
}

func TestRestoreSlot(t *testing.T) {
	id := uuid.New()
	start := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	s, err := catalog.RestoreSlot(id, uuid.New(), start, 30, 2, 500)
	require.NoError(t, err)
	assert.Equal(t, id, s.ID())
	assert.NoError(t, s.Holds(2))
	assert.ErrorIs(t, s.Holds(3), catalog.ErrBelowReserved)

	_, err = catalog.RestoreSlot(id, uuid.New(), start, 30, 0, 500)
	assert.ErrorIs(t, err, catalog.ErrInvalidCapacity)
}
