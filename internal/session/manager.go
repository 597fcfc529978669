package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Manager owns the process-wide session: it is the single reader/writer of
// the credential store and the single place the expired-session policy
// lives. Screens never touch the store directly.
type Manager struct {
	logger *zap.Logger
	store  Store

	mu             sync.Mutex
	onUnauthorized func()
}

// NewManager wraps a credential store.
func NewManager(store Store, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{logger: logger, store: store}
}

// SetOnUnauthorized registers the hook fired when the server reports the
// credential invalid. The front end uses it to route to the login screen.
func (m *Manager) SetOnUnauthorized(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onUnauthorized = fn
}

// Token returns the persisted access token. The second result is false when
// no member is logged in.
func (m *Manager) Token() (string, bool) {
	token, err := m.store.Get(KeyAccessToken)
	if err != nil {
		m.logger.Warn("credential read failed", zap.Error(err))
		return "", false
	}
	return token, token != ""
}

// SetPair persists both tokens of a fresh login.
func (m *Manager) SetPair(access, refresh string) error {
	if err := m.store.Set(KeyAccessToken, access); err != nil {
		return err
	}
	return m.store.Set(KeyRefreshToken, refresh)
}

// Clear deletes the locally stored credentials. Store errors are logged but
// never propagated: local logout must not be blockable.
func (m *Manager) Clear() {
	if err := m.store.Delete(KeyAccessToken); err != nil {
		m.logger.Warn("access token delete failed", zap.Error(err))
	}
	if err := m.store.Delete(KeyRefreshToken); err != nil {
		m.logger.Warn("refresh token delete failed", zap.Error(err))
	}
}

// HandleUnauthorized applies the uniform 401 policy: destroy the session
// and notify the front end, regardless of which call tripped it.
func (m *Manager) HandleUnauthorized() {
	m.Clear()
	m.mu.Lock()
	fn := m.onUnauthorized
	m.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// ExpiresAt peeks at the exp claim of the stored access token without
// verifying the signature; verification is the server's job. The zero time
// is returned when no token is stored or the token is not a JWT.
func (m *Manager) ExpiresAt() time.Time {
	token, ok := m.Token()
	if !ok {
		return time.Time{}
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
