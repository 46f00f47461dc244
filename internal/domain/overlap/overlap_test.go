package overlap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/southernMD/railway-reservation/internal/domain/error"
)

func TestHasOverlap(t *testing.T) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	t.Run("Empty interval set never overlaps", func(t *testing.T) {
		got, err := HasOverlap(at(0), at(2), nil)
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("Disjoint before existing interval", func(t *testing.T) {
		got, err := HasOverlap(at(0), at(1), []Interval{{Start: at(2), End: at(4)}})
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("Disjoint after existing interval", func(t *testing.T) {
		got, err := HasOverlap(at(5), at(7), []Interval{{Start: at(2), End: at(4)}})
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("Partial overlap at the front", func(t *testing.T) {
		got, err := HasOverlap(at(1), at(3), []Interval{{Start: at(2), End: at(4)}})
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("Partial overlap at the back", func(t *testing.T) {
		got, err := HasOverlap(at(3), at(5), []Interval{{Start: at(2), End: at(4)}})
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("Candidate fully contains existing", func(t *testing.T) {
		got, err := HasOverlap(at(1), at(5), []Interval{{Start: at(2), End: at(4)}})
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("Candidate fully inside existing", func(t *testing.T) {
		got, err := HasOverlap(at(2), at(3), []Interval{{Start: at(1), End: at(5)}})
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("Touching end to start counts as overlap", func(t *testing.T) {
		got, err := HasOverlap(at(0), at(2), []Interval{{Start: at(2), End: at(4)}})
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("Touching start to end counts as overlap", func(t *testing.T) {
		got, err := HasOverlap(at(4), at(6), []Interval{{Start: at(2), End: at(4)}})
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("Identical intervals overlap", func(t *testing.T) {
		got, err := HasOverlap(at(2), at(4), []Interval{{Start: at(2), End: at(4)}})
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("Only the first matching interval matters", func(t *testing.T) {
		got, err := HasOverlap(at(3), at(5), []Interval{
			{Start: at(0), End: at(1)},
			{Start: at(4), End: at(6)},
			{Start: at(8), End: at(9)},
		})
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("Inverted candidate is rejected", func(t *testing.T) {
		_, err := HasOverlap(at(4), at(2), nil)
		require.Error(t, err)
		assert.True(t, errs.IsInvalidIntervalError(err))
	})

	t.Run("Zero candidate boundary is rejected", func(t *testing.T) {
		_, err := HasOverlap(time.Time{}, at(2), nil)
		require.Error(t, err)
		assert.True(t, errs.IsInvalidIntervalError(err))
	})

	t.Run("Inverted existing interval is rejected", func(t *testing.T) {
		_, err := HasOverlap(at(0), at(2), []Interval{{Start: at(4), End: at(2)}})
		require.Error(t, err)
		assert.True(t, errs.IsInvalidIntervalError(err))
	})

	t.Run("Zero boundary in existing interval is rejected", func(t *testing.T) {
		_, err := HasOverlap(at(0), at(2), []Interval{{Start: at(1), End: time.Time{}}})
		require.Error(t, err)
		assert.True(t, errs.IsInvalidIntervalError(err))
	})
}
