package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestManager_TokenLifecycle(t *testing.T) {
	m := NewManager(NewMemoryStore(), zap.NewNop())

	_, ok := m.Token()
	require.False(t, ok, "fresh manager must have no token")

	require.NoError(t, m.SetPair("abc", "def"))

	token, ok := m.Token()
	require.True(t, ok)
	assert.Equal(t, "abc", token)

	m.Clear()
	_, ok = m.Token()
	assert.False(t, ok)
}

func TestManager_SetPairPersistsBothTokens(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(store, zap.NewNop())
	require.NoError(t, m.SetPair("abc", "def"))

	access, err := store.Get(KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "abc", access)

	refresh, err := store.Get(KeyRefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "def", refresh)
}

func TestManager_HandleUnauthorized(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(store, zap.NewNop())
	require.NoError(t, m.SetPair("abc", "def"))

	fired := 0
	m.SetOnUnauthorized(func() { fired++ })

	m.HandleUnauthorized()

	assert.Equal(t, 1, fired, "hook must fire")
	_, ok := m.Token()
	assert.False(t, ok, "credential must be cleared")
	refresh, _ := store.Get(KeyRefreshToken)
	assert.Empty(t, refresh)
}

func TestManager_HandleUnauthorizedWithoutHook(t *testing.T) {
	m := NewManager(NewMemoryStore(), zap.NewNop())
	require.NoError(t, m.SetPair("abc", "def"))
	// Must not panic when no hook is registered.
	m.HandleUnauthorized()
	_, ok := m.Token()
	assert.False(t, ok)
}

func TestManager_ExpiresAt(t *testing.T) {
	m := NewManager(NewMemoryStore(), zap.NewNop())

	assert.True(t, m.ExpiresAt().IsZero(), "no token means zero time")

	require.NoError(t, m.SetPair("not-a-jwt", ""))
	assert.True(t, m.ExpiresAt().IsZero(), "opaque token means zero time")

	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "reader",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	require.NoError(t, m.SetPair(signed, ""))

	assert.WithinDuration(t, exp, m.ExpiresAt(), time.Second)
}
