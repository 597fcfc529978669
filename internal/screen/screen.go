// Package screen holds the view-models behind each app screen: input
// validation before any network call, in-flight guards against double
// submits, optimistic updates with rollback, and the mapping of API
// failures to user-visible alerts.
package screen

import (
	"errors"

	"go.uber.org/zap"

	"bookcalendar/internal/api"
	"bookcalendar/internal/session"
)

// Routes of the front end. A 401 anywhere lands on RouteLogin.
const (
	RouteLogin        = "/login"
	RouteSignup       = "/signup"
	RouteMain         = "/main"
	RouteBook         = "/book"
	RouteBookRegister = "/bookregister"
	RouteCommunity    = "/community"
	RouteMyPage       = "/mypage"
	RouteCart         = "/cart"
)

// Navigator abstracts the navigation stack of the hosting front end.
type Navigator interface {
	// Replace swaps the current screen.
	Replace(route string)
	// Push stacks a new screen.
	Push(route string)
}

// Alerter shows a modal alert with localized text.
type Alerter interface {
	Alert(title, message string)
}

// base carries the collaborators every screen shares.
type base struct {
	logger *zap.Logger
	sess   *session.Manager
	api    *api.Client
	nav    Navigator
	alert  Alerter
}

func newBase(logger *zap.Logger, sess *session.Manager, client *api.Client, nav Navigator, alert Alerter) base {
	if logger == nil {
		logger = zap.NewNop()
	}
	return base{logger: logger, sess: sess, api: client, nav: nav, alert: alert}
}

// requireSession is the no-token guard: without a credential the screen
// routes to login and must not issue the call.
func (b *base) requireSession() bool {
	if _, ok := b.sess.Token(); ok {
		return true
	}
	b.alert.Alert("로그인 필요", "서비스 이용을 위해 로그인이 필요합니다.")
	b.nav.Replace(RouteLogin)
	return false
}

// fail maps an API error to the alert the user sees. fallback is the
// per-action generic failure message. Navigation on 401 already happened
// through the session manager hook; only the standard message is shown.
func (b *base) fail(err error, fallback string) {
	switch {
	case errors.Is(err, api.ErrUnauthorized), errors.Is(err, api.ErrNoSession):
		b.alert.Alert("인증 오류", "로그인이 만료되었습니다. 다시 로그인해주세요.")
	case errors.Is(err, api.ErrNetwork):
		b.alert.Alert("오류", "네트워크에 연결할 수 없습니다.")
	default:
		if msg := api.ServerMessage(err); msg != "" {
			b.alert.Alert("실패", msg)
			return
		}
		b.alert.Alert("오류", fallback)
	}
}
