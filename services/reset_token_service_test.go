package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTokenStore(t *testing.T) {
	store := NewMemoryTokenStore()
	data := ResetTokenData{UserID: 1, Email: "roilux.woods@gmail.com"}

	require.NoError(t, store.Put("tok", data, 30*time.Minute))

	got, err := store.Get("tok")
	require.NoError(t, err)
	assert.Equal(t, data, *got)

	t.Run("unknown token", func(t *testing.T) {
		_, err := store.Get("missing")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete("tok"))
		_, err := store.Get("tok")
		assert.ErrorIs(t, err, ErrTokenInvalid)

		// Deleting an absent token is not an error.
		assert.NoError(t, store.Delete("tok"))
	})
}

func TestMemoryTokenStoreExpiry(t *testing.T) {
	store := NewMemoryTokenStore()
	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	require.NoError(t, store.Put("tok", ResetTokenData{UserID: 1}, 30*time.Minute))

	current = current.Add(29 * time.Minute)
	_, err := store.Get("tok")
	assert.NoError(t, err)

	current = current.Add(time.Minute)
	_, err = store.Get("tok")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	// Expired tokens are evicted on access.
	store.mu.Lock()
	_, ok := store.tokens["tok"]
	store.mu.Unlock()
	assert.False(t, ok)
}
