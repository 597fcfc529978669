package screen

import (
	"context"

	"go.uber.org/zap"

	"bookcalendar/internal/api"
	"bookcalendar/internal/domain"
	"bookcalendar/internal/session"
)

// Auth drives the login and signup screens.
type Auth struct {
	base
}

func NewAuth(logger *zap.Logger, sess *session.Manager, client *api.Client, nav Navigator, alert Alerter) *Auth {
	return &Auth{base: newBase(logger, sess, client, nav, alert)}
}

// Login validates the form, exchanges credentials for a token pair and
// moves to the main screen. A failure leaves any prior session untouched.
func (a *Auth) Login(ctx context.Context, nickName, password string) bool {
	if nickName == "" || password == "" {
		a.alert.Alert("입력 오류", "닉네임과 비밀번호를 입력하세요")
		return false
	}
	if err := a.api.Login(ctx, nickName, password); err != nil {
		a.logger.Warn("login failed", zap.Error(err))
		a.fail(err, "로그인에 실패했습니다. 다시 확인해주세요.")
		return false
	}
	a.nav.Replace(RouteMain)
	return true
}

// Signup validates that every field was filled and registers the member.
func (a *Auth) Signup(ctx context.Context, req domain.RegisterRequest) bool {
	if req.NickName == "" || req.Password == "" || req.PhoneNumber == "" ||
		req.Genre == "" || req.Job == "" || req.Birth == "" {
		a.alert.Alert("입력 오류", "모든 항목을 입력해주세요.")
		return false
	}
	if err := a.api.Register(ctx, req); err != nil {
		a.fail(err, "회원가입에 실패했습니다. 다시 시도해주세요.")
		return false
	}
	a.alert.Alert("회원가입 완료", "로그인 화면으로 이동합니다.")
	a.nav.Replace(RouteLogin)
	return true
}

// Logout tells the server best-effort, always clears the device session
// and lands on the login screen.
func (a *Auth) Logout(ctx context.Context) {
	a.api.Logout(ctx)
	a.nav.Replace(RouteLogin)
}
