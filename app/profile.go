package app

import (
	"context"
	"errors"
	"sync"

	"github.com/gahanad/Blogsy-website-front/api"
	"github.com/gahanad/Blogsy-website-front/models"
	"github.com/gahanad/Blogsy-website-front/services"
)

// ErrOwnProfile means the action only makes sense on someone else's profile.
var ErrOwnProfile = errors.New("action not available on your own profile")

// ProfilePage shows another user's profile (or your own) with their posts,
// follow/unfollow, and a way to start a conversation.
type ProfilePage struct {
	auth  *services.AuthService
	users *services.UserService
	posts *services.PostService
	msgs  *services.MessageService

	username string

	mu        sync.Mutex
	closed    bool
	state     State
	errMsg    string
	profile   *models.User
	userPosts []models.Post
	viewerID  string
}

func NewProfilePage(auth *services.AuthService, users *services.UserService, posts *services.PostService, msgs *services.MessageService, username string) *ProfilePage {
	return &ProfilePage{auth: auth, users: users, posts: posts, msgs: msgs, username: username, state: StateLoading}
}

// Load resolves the profile by username and lists that user's posts. The
// viewer comes from the session snapshot, not from a profile fetch.
func (p *ProfilePage) Load(ctx context.Context) error {
	profile, err := p.users.GetUserByUsername(ctx, p.username)
	if err != nil {
		p.fail(err)
		return err
	}
	userPosts, err := p.posts.GetPostsByUser(ctx, profile.ID)
	if err != nil {
		p.fail(err)
		return err
	}

	viewerID := ""
	if sess := p.auth.CurrentUser(); sess != nil {
		viewerID = sess.User.ID
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.profile = profile
	p.userPosts = userPosts
	p.viewerID = viewerID
	p.state = StateReady
	return nil
}

// ToggleFollow follows or unfollows depending on the viewer's current
// membership in the profile's follower list, then flips the local copy. The
// mutating call's outcome decides; nothing is flipped on failure.
func (p *ProfilePage) ToggleFollow(ctx context.Context) error {
	p.mu.Lock()
	if p.state != StateReady || p.profile == nil {
		p.mu.Unlock()
		return ErrNotReady
	}
	if p.viewerID == "" || p.viewerID == p.profile.ID {
		p.mu.Unlock()
		return ErrOwnProfile
	}
	profileID := p.profile.ID
	following := contains(p.profile.Followers, p.viewerID)
	p.mu.Unlock()

	var err error
	if following {
		err = p.users.Unfollow(ctx, profileID)
	} else {
		err = p.users.Follow(ctx, profileID)
	}
	if err != nil {
		return err
	}

	p.mu.Lock()
	if !p.closed && p.profile != nil {
		p.profile.Followers = toggleMembership(p.profile.Followers, p.viewerID)
	}
	p.mu.Unlock()
	return nil
}

// StartConversation finds or creates the conversation with the profile's
// owner, opens it with a greeting, and returns where to go.
func (p *ProfilePage) StartConversation(ctx context.Context) (Route, error) {
	p.mu.Lock()
	if p.state != StateReady || p.profile == nil {
		p.mu.Unlock()
		return RouteNone, ErrNotReady
	}
	if p.viewerID == "" || p.viewerID == p.profile.ID {
		p.mu.Unlock()
		return RouteNone, ErrOwnProfile
	}
	recipientID := p.profile.ID
	p.mu.Unlock()

	started, err := p.msgs.CreateConversationAndSendMessage(ctx, recipientID, "Hello!")
	if err != nil {
		return RouteNone, err
	}
	return RouteConversation(started.ConversationID), nil
}

func (p *ProfilePage) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
}

func (p *ProfilePage) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *ProfilePage) ErrMsg() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMsg
}

func (p *ProfilePage) Profile() *models.User {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.profile == nil {
		return nil
	}
	copied := *p.profile
	return &copied
}

func (p *ProfilePage) UserPosts() []models.Post {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Post{}, p.userPosts...)
}

// IsOwn reports whether the viewer is looking at their own profile.
func (p *ProfilePage) IsOwn() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.profile != nil && p.viewerID != "" && p.viewerID == p.profile.ID
}

func (p *ProfilePage) fail(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.state = StateFailed
	if api.KindOf(err) == api.KindNotFound {
		p.errMsg = "User not found."
		return
	}
	p.errMsg = api.UserMessage(err, "Failed to load profile. Please try again.")
}
