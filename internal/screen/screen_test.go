package screen

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"

	"bookcalendar/internal/api"
	"bookcalendar/internal/session"
)

// fakeNav records navigation so tests can assert routing.
type fakeNav struct {
	mu       sync.Mutex
	replaced []string
	pushed   []string
}

func (n *fakeNav) Replace(route string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.replaced = append(n.replaced, route)
}

func (n *fakeNav) Push(route string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pushed = append(n.pushed, route)
}

func (n *fakeNav) lastReplaced() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.replaced) == 0 {
		return ""
	}
	return n.replaced[len(n.replaced)-1]
}

// fakeAlert records every alert shown.
type fakeAlert struct {
	mu     sync.Mutex
	shown  []string
	titles []string
}

func (a *fakeAlert) Alert(title, message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.titles = append(a.titles, title)
	a.shown = append(a.shown, message)
}

func (a *fakeAlert) last() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.shown) == 0 {
		return ""
	}
	return a.shown[len(a.shown)-1]
}

func (a *fakeAlert) lastTitle() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.titles) == 0 {
		return ""
	}
	return a.titles[len(a.titles)-1]
}

func (a *fakeAlert) count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.shown)
}

// screenEnv wires a screen test the way cmd/app wires the real screens,
// including the unauthorized hook that lands on the login route.
type screenEnv struct {
	sess   *session.Manager
	client *api.Client
	nav    *fakeNav
	alert  *fakeAlert
	calls  *atomic.Int32
}

func newScreenEnv(t *testing.T, handler http.HandlerFunc) *screenEnv {
	t.Helper()
	env := &screenEnv{
		nav:   &fakeNav{},
		alert: &fakeAlert{},
		calls: &atomic.Int32{},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	env.sess = session.NewManager(session.NewMemoryStore(), zap.NewNop())
	env.sess.SetOnUnauthorized(func() { env.nav.Replace(RouteLogin) })
	env.client = api.New(srv.URL, 0, env.sess, zap.NewNop())
	return env
}

func (e *screenEnv) login(t *testing.T) {
	t.Helper()
	if err := e.sess.SetPair("test-token", "test-refresh"); err != nil {
		t.Fatalf("seed session: %v", err)
	}
}

func jsonOK(w http.ResponseWriter, data string) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"data":` + data + `}`))
}

func jsonFail(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"message":"` + message + `"}`))
}
