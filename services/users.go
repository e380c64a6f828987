package services

import (
	"context"
	"net/http"

	"github.com/gahanad/Blogsy-website-front/api"
	"github.com/gahanad/Blogsy-website-front/models"
)

// ProfileUpdate is a partial profile edit: nil fields are left untouched by
// the backend.
type ProfileUpdate struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}

// Empty reports whether the update would change nothing.
func (u ProfileUpdate) Empty() bool {
	return u.Username == nil && u.Email == nil && u.Bio == nil && u.Avatar == nil
}

type UserService struct {
	client *api.Client
}

func NewUserService(client *api.Client) *UserService {
	return &UserService{client: client}
}

// GetCurrentUserProfile fetches the authoritative profile of the logged-in
// user, as opposed to the cached session snapshot.
func (s *UserService) GetCurrentUserProfile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.client.Do(ctx, http.MethodGet, "/users/profile/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.client.Do(ctx, http.MethodGet, "/users/username/"+username, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserProfile sends only the changed fields and returns the server's
// copy, which replaces any local one wholesale.
func (s *UserService) UpdateUserProfile(ctx context.Context, update ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := s.client.Do(ctx, http.MethodPut, "/users/me", update, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Follow(ctx context.Context, userID string) error {
	return s.client.Do(ctx, http.MethodPut, "/users/"+userID+"/follow", struct{}{}, nil, nil)
}

func (s *UserService) Unfollow(ctx context.Context, userID string) error {
	return s.client.Do(ctx, http.MethodPut, "/users/"+userID+"/unfollow", struct{}{}, nil, nil)
}
