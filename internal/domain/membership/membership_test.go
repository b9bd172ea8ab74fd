package membership

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMembership(t *testing.T) {
	now := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)

	t.Run("creates enabled and open-ended", func(t *testing.T) {
		m, err := NewMembership(1, 42, 150000, nil, now)
		require.NoError(t, err)

		assert.True(t, m.Enabled())
		assert.Nil(t, m.EndsAt())
		assert.Equal(t, now, m.StartsAt())
		assert.Equal(t, int64(150000), m.ValueCents())
		assert.Contains(t, m.SID(), "mem_")
	})

	t.Run("rejects end in the past", func(t *testing.T) {
		past := now.Add(-time.Hour)
		_, err := NewMembership(1, 42, 150000, &past, now)
		assert.Error(t, err)
	})

	t.Run("rejects a negative value", func(t *testing.T) {
		_, err := NewMembership(1, 42, -100, nil, now)
		assert.Error(t, err)
	})

	t.Run("a free membership is allowed", func(t *testing.T) {
		m, err := NewMembership(1, 42, 0, nil, now)
		require.NoError(t, err)
		assert.Zero(t, m.ValueCents())
	})

	t.Run("rejects missing IDs", func(t *testing.T) {
		_, err := NewMembership(0, 42, 150000, nil, now)
		assert.Error(t, err)

		_, err = NewMembership(1, 0, 150000, nil, now)
		assert.Error(t, err)
	})
}

func TestMembershipCoversAt(t *testing.T) {
	start := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(30 * 24 * time.Hour)

	m, err := NewMembership(1, 42, 150000, &end, start)
	require.NoError(t, err)

	assert.True(t, m.CoversAt(start))
	assert.True(t, m.CoversAt(end))
	assert.True(t, m.CoversAt(start.Add(15*24*time.Hour)))
	assert.False(t, m.CoversAt(start.Add(-time.Second)))
	assert.False(t, m.CoversAt(end.Add(time.Second)))

	m.SetEnabled(false, start.Add(time.Hour))
	assert.False(t, m.CoversAt(start.Add(2*time.Hour)))

	m.SetEnabled(true, start.Add(3*time.Hour))
	assert.True(t, m.CoversAt(start.Add(4*time.Hour)))
}

func TestMembershipSetEnabledIdempotent(t *testing.T) {
	now := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)
	m, err := NewMembership(1, 42, 150000, nil, now)
	require.NoError(t, err)

	m.SetEnabled(true, now.Add(time.Hour))
	assert.Equal(t, now, m.UpdatedAt())

	m.SetEnabled(false, now.Add(2*time.Hour))
	assert.Equal(t, now.Add(2*time.Hour), m.UpdatedAt())
}
