package api

import (
	"context"

	"bookcalendar/internal/domain"
)

// Login exchanges credentials for a token pair and persists it. A failed
// login leaves any previously stored session untouched.
func (c *Client) Login(ctx context.Context, nickName, password string) error {
	var pair domain.TokenPair
	req := domain.LoginRequest{NickName: nickName, Password: password}
	if err := c.postOpen(ctx, "/member/login", req, &pair); err != nil {
		return err
	}
	return c.session.SetPair(pair.AccessToken, pair.RefreshToken)
}

// Register signs up a new member. No session is involved.
func (c *Client) Register(ctx context.Context, req domain.RegisterRequest) error {
	return c.postOpen(ctx, "/member/register", req, nil)
}

// Logout tells the server best-effort and then unconditionally deletes the
// local credentials. Network state never blocks a local logout.
func (c *Client) Logout(ctx context.Context) {
	if err := c.post(ctx, "/member/logout", nil, nil); err != nil {
		c.logger.Warn("server logout failed, clearing locally anyway")
	}
	c.session.Clear()
}
