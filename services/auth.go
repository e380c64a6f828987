package services

import (
	"context"
	"net/http"

	"github.com/gahanad/Blogsy-website-front/api"
	"github.com/gahanad/Blogsy-website-front/models"
	"github.com/gahanad/Blogsy-website-front/session"
)

// AuthResponse is what /auth/login and /auth/register return.
type AuthResponse struct {
	Token   string      `json:"token"`
	User    models.User `json:"user"`
	Message string      `json:"message,omitempty"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthService owns the auth endpoints and the session lifecycle around them.
type AuthService struct {
	client *api.Client
	store  *session.Store
}

func NewAuthService(client *api.Client, store *session.Store) *AuthService {
	return &AuthService{client: client, store: store}
}

// Register creates an account and persists the returned session.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := s.client.Do(ctx, http.MethodPost, "/auth/register", req, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Token != "" {
		if err := s.store.Save(session.Session{Token: resp.Token, User: resp.User}); err != nil {
			return nil, err
		}
	}
	return &resp, nil
}

// Login authenticates and persists the returned session.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := s.client.Do(ctx, http.MethodPost, "/auth/login", req, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Token != "" {
		if err := s.store.Save(session.Session{Token: resp.Token, User: resp.User}); err != nil {
			return nil, err
		}
	}
	return &resp, nil
}

// ForgotPassword asks the backend to issue a reset link for the email.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	body := map[string]string{"email": email}
	if err := s.client.Do(ctx, http.MethodPost, "/auth/forgotpassword", body, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ResetPassword consumes a reset token.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	body := map[string]string{"password": newPassword}
	if err := s.client.Do(ctx, http.MethodPut, "/auth/resetpassword/"+token, body, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Logout clears the session. There is no backend call to make: the token is
// simply forgotten.
func (s *AuthService) Logout() {
	s.store.Clear()
}

// CurrentUser reads the stored session snapshot. No network involved; the
// authoritative profile lives behind UserService.GetCurrentUserProfile.
func (s *AuthService) CurrentUser() *session.Session {
	return s.store.Current()
}
