package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcalendar/internal/session"
)

func TestLogin_PersistsTokenPair(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/member/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "login carries no bearer token")
		w.Write([]byte(`{"data":{"accessToken":"abc","refreshToken":"def"}}`))
	}))

	require.NoError(t, env.client.Login(context.Background(), "reader", "password1"))

	access, err := env.store.Get(session.KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "abc", access)
	refresh, err := env.store.Get(session.KeyRefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "def", refresh)
}

func TestLogin_FailureLeavesPriorSession(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"닉네임 또는 비밀번호가 올바르지 않습니다."}`))
	}))
	require.NoError(t, env.sess.SetPair("old", "old-refresh"))

	err := env.client.Login(context.Background(), "reader", "wrong")
	require.Error(t, err)

	token, ok := env.sess.Token()
	require.True(t, ok, "failed login must not touch the prior session")
	assert.Equal(t, "old", token)
}

func TestLogin_401IsOrdinaryRejection(t *testing.T) {
	const message = "닉네임 또는 비밀번호가 올바르지 않습니다."
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"` + message + `"}`))
	}))
	require.NoError(t, env.sess.SetPair("old", "old-refresh"))
	hookFired := false
	env.sess.SetOnUnauthorized(func() { hookFired = true })

	err := env.client.Login(context.Background(), "reader", "wrong")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized, "a rejected login is not an expired session")
	assert.Equal(t, message, ServerMessage(err))

	token, ok := env.sess.Token()
	require.True(t, ok, "a rejected login must leave the prior session untouched")
	assert.Equal(t, "old", token)
	refresh, _ := env.store.Get(session.KeyRefreshToken)
	assert.Equal(t, "old-refresh", refresh)
	assert.False(t, hookFired, "login failure must not fire the unauthorized hook")
}

func TestLogout_ClearsLocallyEvenWhenServerFails(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	require.NoError(t, env.sess.SetPair("abc", "def"))
	env.srv.Close() // server unreachable

	env.client.Logout(context.Background())

	_, ok := env.sess.Token()
	assert.False(t, ok, "local logout must not be blocked by network state")
	refresh, _ := env.store.Get(session.KeyRefreshToken)
	assert.Empty(t, refresh)
}

func TestLogout_CallsServerWhenReachable(t *testing.T) {
	var path string
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte(`{"data":null}`))
	}))
	require.NoError(t, env.sess.SetPair("abc", "def"))

	env.client.Logout(context.Background())

	assert.Equal(t, "/member/logout", path)
	_, ok := env.sess.Token()
	assert.False(t, ok)
}
