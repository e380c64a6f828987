package app

import (
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gahanad/Blogsy-website-front/api"
	"github.com/gahanad/Blogsy-website-front/models"
	"github.com/gahanad/Blogsy-website-front/services"
	"github.com/gahanad/Blogsy-website-front/session"
)

// env is a page-test fixture: a scripted gin backend behind a real HTTP
// client, with per-route call counters so tests can assert which requests
// fired and, just as often, which did not.
type env struct {
	router *gin.Engine
	store  *session.Store

	auth  *services.AuthService
	users *services.UserService
	posts *services.PostService
	msgs  *services.MessageService

	mu    sync.Mutex
	calls map[string]int
}

func newEnv(t *testing.T) *env {
	gin.SetMode(gin.TestMode)
	e := &env{router: gin.New(), calls: map[string]int{}}
	e.router.Use(func(c *gin.Context) {
		e.mu.Lock()
		e.calls[c.Request.Method+" "+c.FullPath()]++
		e.mu.Unlock()
	})

	srv := httptest.NewServer(e.router)
	t.Cleanup(srv.Close)

	e.store = session.NewStore("")
	client := api.NewClient(srv.URL, e.store)
	e.auth = services.NewAuthService(client, e.store)
	e.users = services.NewUserService(client)
	e.posts = services.NewPostService(client)
	e.msgs = services.NewMessageService(client)
	return e
}

// stub registers a fixed JSON response for a route.
func (e *env) stub(method, path string, status int, payload interface{}) {
	e.router.Handle(method, path, func(c *gin.Context) {
		c.JSON(status, payload)
	})
}

func (e *env) count(method, path string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls[method+" "+path]
}

func (e *env) login(t *testing.T, user models.User) {
	if err := e.store.Save(session.Session{Token: "test-token", User: user}); err != nil {
		t.Fatal(err)
	}
}

func viewer() models.User {
	return models.User{ID: "viewer-1", Username: "alice", Email: "alice@example.com"}
}

func feedPost(id string, likes ...string) models.Post {
	if likes == nil {
		likes = []string{}
	}
	return models.Post{
		ID:       id,
		Author:   models.User{ID: "author-1", Username: "bob"},
		Title:    "title " + id,
		Content:  "content " + id,
		Likes:    likes,
		Comments: []models.Comment{},
	}
}
