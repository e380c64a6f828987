package app

import (
	"context"
	"sync"

	"github.com/gahanad/Blogsy-website-front/api"
	"github.com/gahanad/Blogsy-website-front/models"
	"github.com/gahanad/Blogsy-website-front/services"
)

// SettingsPage edits the viewer's profile. It loads the authoritative
// profile, diffs user edits against that snapshot, and submits only the
// fields that changed.
type SettingsPage struct {
	users *services.UserService

	mu       sync.Mutex
	closed   bool
	state    State
	errMsg   string
	snapshot *models.User
}

func NewSettingsPage(users *services.UserService) *SettingsPage {
	return &SettingsPage{users: users, state: StateLoading}
}

func (p *SettingsPage) Load(ctx context.Context) error {
	user, err := p.users.GetCurrentUserProfile(ctx)
	if err != nil {
		p.mu.Lock()
		if !p.closed {
			p.state = StateFailed
			p.errMsg = api.UserMessage(err, "Failed to load profile data.")
		}
		p.mu.Unlock()
		return err
	}
	p.mu.Lock()
	if !p.closed {
		p.snapshot = user
		p.state = StateReady
	}
	p.mu.Unlock()
	return nil
}

// Submit computes the changed-field diff against the loaded snapshot and
// sends only that. Nothing changed means no network call at all. On success
// the server's copy replaces the snapshot wholesale.
func (p *SettingsPage) Submit(ctx context.Context, username, email, bio, avatar string) (*models.User, error) {
	p.mu.Lock()
	if p.state != StateReady || p.snapshot == nil {
		p.mu.Unlock()
		return nil, ErrNotReady
	}
	var update services.ProfileUpdate
	if username != p.snapshot.Username {
		update.Username = &username
	}
	if email != p.snapshot.Email {
		update.Email = &email
	}
	if bio != p.snapshot.Bio {
		update.Bio = &bio
	}
	if avatar != p.snapshot.Avatar {
		update.Avatar = &avatar
	}
	current := *p.snapshot
	p.mu.Unlock()

	if update.Empty() {
		return &current, nil
	}

	updated, err := p.users.UpdateUserProfile(ctx, update)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	if !p.closed {
		p.snapshot = updated
	}
	p.mu.Unlock()
	return updated, nil
}

func (p *SettingsPage) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
}

func (p *SettingsPage) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *SettingsPage) ErrMsg() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMsg
}

func (p *SettingsPage) Current() *models.User {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.snapshot == nil {
		return nil
	}
	copied := *p.snapshot
	return &copied
}
