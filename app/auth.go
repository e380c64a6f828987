package app

import (
	"context"
	"errors"

	"github.com/gahanad/Blogsy-website-front/services"
)

// ErrPasswordMismatch is a client-side check; no request is made.
var ErrPasswordMismatch = errors.New("passwords do not match")

// LoginPage is the entry screen. A successful login routes to the feed.
type LoginPage struct {
	auth *services.AuthService
}

func NewLoginPage(auth *services.AuthService) *LoginPage {
	return &LoginPage{auth: auth}
}

func (p *LoginPage) Submit(ctx context.Context, email, password string) (Route, error) {
	if _, err := p.auth.Login(ctx, services.LoginRequest{Email: email, Password: password}); err != nil {
		return RouteNone, err
	}
	return RouteFeed, nil
}

// RegisterPage creates an account and routes to login; the fresh session is
// stored but the user still confirms their credentials once.
type RegisterPage struct {
	auth *services.AuthService
}

func NewRegisterPage(auth *services.AuthService) *RegisterPage {
	return &RegisterPage{auth: auth}
}

func (p *RegisterPage) Submit(ctx context.Context, username, email, password, password2 string) (Route, error) {
	if password != password2 {
		return RouteNone, ErrPasswordMismatch
	}
	req := services.RegisterRequest{Username: username, Email: email, Password: password}
	if _, err := p.auth.Register(ctx, req); err != nil {
		return RouteNone, err
	}
	return RouteLogin, nil
}

// ForgotPasswordPage asks for a reset link and routes back to login.
type ForgotPasswordPage struct {
	auth *services.AuthService
}

func NewForgotPasswordPage(auth *services.AuthService) *ForgotPasswordPage {
	return &ForgotPasswordPage{auth: auth}
}

func (p *ForgotPasswordPage) Submit(ctx context.Context, email string) (string, Route, error) {
	message, err := p.auth.ForgotPassword(ctx, email)
	if err != nil {
		return "", RouteNone, err
	}
	return message, RouteLogin, nil
}

// ResetPasswordPage consumes a reset token and routes back to login.
type ResetPasswordPage struct {
	auth *services.AuthService
}

func NewResetPasswordPage(auth *services.AuthService) *ResetPasswordPage {
	return &ResetPasswordPage{auth: auth}
}

func (p *ResetPasswordPage) Submit(ctx context.Context, token, password, confirm string) (string, Route, error) {
	if password != confirm {
		return "", RouteNone, ErrPasswordMismatch
	}
	message, err := p.auth.ResetPassword(ctx, token, password)
	if err != nil {
		return "", RouteNone, err
	}
	return message, RouteLogin, nil
}
