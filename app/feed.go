package app

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/gahanad/Blogsy-website-front/api"
	"github.com/gahanad/Blogsy-website-front/models"
	"github.com/gahanad/Blogsy-website-front/services"
)

var (
	// ErrEmptyPost means title or content was blank; no request was made.
	ErrEmptyPost = errors.New("please enter both title and content to proceed")
	// ErrEmptyComment means the comment text was blank; no request was made.
	ErrEmptyComment = errors.New("comment cannot be empty")
	// ErrNotReady means an action fired outside the ready state.
	ErrNotReady = errors.New("page is not ready")
)

// FeedPage drives the home screen: the viewer's profile summary plus the
// post feed, with post creation and like toggling.
type FeedPage struct {
	auth  *services.AuthService
	users *services.UserService
	posts *services.PostService

	mu     sync.Mutex
	closed bool
	state  State
	errMsg string
	user   *models.User
	feed   []models.Post
}

func NewFeedPage(auth *services.AuthService, users *services.UserService, posts *services.PostService) *FeedPage {
	return &FeedPage{auth: auth, users: users, posts: posts, state: StateLoading}
}

// Load fetches the viewer's profile and the feed. Both must land before the
// page leaves the loading state; either failure parks it in the error state.
func (p *FeedPage) Load(ctx context.Context) error {
	user, err := p.users.GetCurrentUserProfile(ctx)
	if err != nil {
		p.fail(err)
		return err
	}
	feed, err := p.posts.GetAllPosts(ctx)
	if err != nil {
		p.fail(err)
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.user = user
	p.feed = feed
	p.state = StateReady
	return nil
}

// SubmitPost validates, publishes, prepends the server's copy, and refreshes
// the profile so postsCount catches up. Blank title or content short-circuits
// before any network call.
func (p *FeedPage) SubmitPost(ctx context.Context, title, content string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return ErrEmptyPost
	}
	p.mu.Lock()
	if p.state != StateReady {
		p.mu.Unlock()
		return ErrNotReady
	}
	p.mu.Unlock()

	post, err := p.posts.CreatePost(ctx, title, content)
	if err != nil {
		return err
	}

	p.mu.Lock()
	if !p.closed && !p.hasPost(post.ID) {
		if post.Likes == nil {
			post.Likes = []string{}
		}
		if post.Comments == nil {
			post.Comments = []models.Comment{}
		}
		p.feed = append([]models.Post{*post}, p.feed...)
	}
	p.mu.Unlock()

	// Refresh the profile so the posts counter reflects the new post. A
	// failure here leaves the stale counter; the post itself already landed.
	if user, err := p.users.GetCurrentUserProfile(ctx); err == nil {
		p.mu.Lock()
		if !p.closed {
			p.user = user
		}
		p.mu.Unlock()
	}
	return nil
}

// ToggleLike flips the viewer's membership in the post's like set before the
// backend call and reverts the flip if the call fails.
func (p *FeedPage) ToggleLike(ctx context.Context, postID string) error {
	p.mu.Lock()
	if p.state != StateReady || p.user == nil {
		p.mu.Unlock()
		return ErrNotReady
	}
	viewerID := p.user.ID
	if !p.flipLike(postID, viewerID) {
		p.mu.Unlock()
		return ErrNotReady
	}
	p.mu.Unlock()

	if err := p.posts.LikePost(ctx, postID); err != nil {
		p.mu.Lock()
		if !p.closed {
			p.flipLike(postID, viewerID)
		}
		p.mu.Unlock()
		return err
	}
	return nil
}

// Comment posts a comment and appends the server's copy to the post. Blank
// text short-circuits before any network call.
func (p *FeedPage) Comment(ctx context.Context, postID, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyComment
	}
	p.mu.Lock()
	if p.state != StateReady {
		p.mu.Unlock()
		return ErrNotReady
	}
	p.mu.Unlock()

	comment, err := p.posts.CommentPost(ctx, postID, text)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	for i := range p.feed {
		if p.feed[i].ID == postID {
			p.feed[i].Comments = append(p.feed[i].Comments, *comment)
			break
		}
	}
	return nil
}

// Logout forgets the session and routes back to login.
func (p *FeedPage) Logout() Route {
	p.auth.Logout()
	return RouteLogin
}

// Search routes to a profile lookup for a non-empty query.
func (p *FeedPage) Search(query string) (Route, bool) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return RouteNone, false
	}
	return RouteProfile(trimmed), true
}

// Close makes any in-flight completion inert: results that land afterwards
// mutate nothing.
func (p *FeedPage) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
}

func (p *FeedPage) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *FeedPage) ErrMsg() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMsg
}

func (p *FeedPage) User() *models.User {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.user == nil {
		return nil
	}
	copied := *p.user
	return &copied
}

func (p *FeedPage) Posts() []models.Post {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Post{}, p.feed...)
}

func (p *FeedPage) fail(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.state = StateFailed
	p.errMsg = api.UserMessage(err, "Failed to load data. Please try again.")
}

// hasPost guards against double-prepending the same post. Callers hold mu.
func (p *FeedPage) hasPost(id string) bool {
	for _, post := range p.feed {
		if post.ID == id {
			return true
		}
	}
	return false
}

// flipLike toggles viewerID in the likes of the given post. Callers hold mu.
func (p *FeedPage) flipLike(postID, viewerID string) bool {
	for i := range p.feed {
		if p.feed[i].ID == postID {
			p.feed[i].Likes = toggleMembership(p.feed[i].Likes, viewerID)
			return true
		}
	}
	return false
}
