package devserver

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gahanad/Blogsy-website-front/api"
	"github.com/gahanad/Blogsy-website-front/models"
	"github.com/gahanad/Blogsy-website-front/services"
	"github.com/gahanad/Blogsy-website-front/session"
)

// newClientStack runs the devserver behind a real HTTP listener and builds
// the full client stack against it.
func newClientStack(t *testing.T) (*services.AuthService, *services.UserService, *services.PostService, *services.MessageService) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	store := session.NewStore("")
	client := api.NewClient(ts.URL, store)
	return services.NewAuthService(client, store),
		services.NewUserService(client),
		services.NewPostService(client),
		services.NewMessageService(client)
}

// The whole surface, end to end through the real client: register, log in,
// publish, like, follow, message, mark read.
func TestClientServerRoundTrip(t *testing.T) {
	ctx := context.Background()
	auth, users, posts, msgs := newClientStack(t)

	_, err := auth.Register(ctx, services.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "password123",
	})
	require.NoError(t, err)
	aliceSession := auth.CurrentUser()
	require.NotNil(t, aliceSession)
	alice := aliceSession.User

	post, err := posts.CreatePost(ctx, "hello", "first post")
	require.NoError(t, err)
	assert.Equal(t, "alice", post.Author.Username)

	// Second account takes over the shared session store.
	_, err = auth.Register(ctx, services.RegisterRequest{
		Username: "bob", Email: "bob@example.com", Password: "password123",
	})
	require.NoError(t, err)
	bob := auth.CurrentUser().User

	feed, err := posts.GetAllPosts(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 1)

	require.NoError(t, posts.LikePost(ctx, post.ID))
	feed, err = posts.GetAllPosts(ctx)
	require.NoError(t, err)
	assert.Contains(t, feed[0].Likes, bob.ID)

	require.NoError(t, users.Follow(ctx, alice.ID))
	profile, err := users.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Contains(t, profile.Followers, bob.ID)

	started, err := msgs.CreateConversationAndSendMessage(ctx, alice.ID, "Hello!")
	require.NoError(t, err)
	assert.Equal(t, "Hello!", started.Message.Content)
	assert.Equal(t, bob.ID, started.Message.Sender.ID.String())

	// Back as alice: the conversation is there, readable, markable.
	_, err = auth.Login(ctx, services.LoginRequest{Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	conversations, err := msgs.GetUserConversations(ctx)
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, started.ConversationID, conversations[0].ID)

	page, err := msgs.GetConversationMessages(ctx, started.ConversationID, 1, 20)
	require.NoError(t, err)
	require.Len(t, page.Messages, 1)
	assert.Equal(t, "bob", page.Messages[0].Sender.Username)

	require.NoError(t, msgs.MarkMessagesAsRead(ctx, started.ConversationID))

	reply, err := msgs.SendMessage(ctx, started.ConversationID, "hi bob")
	require.NoError(t, err)
	assert.Equal(t, "alice", reply.Sender.Username)

	// Profile edits flow through the update endpoint.
	bio := "it me"
	updated, err := users.UpdateUserProfile(ctx, services.ProfileUpdate{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "it me", updated.Bio)
	assert.Equal(t, 1, updated.PostsCount)
}

func TestSeedProducesLoadableAccounts(t *testing.T) {
	srv := newTestServer(t)
	require.NoError(t, srv.Seed(5, 2))

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	store := session.NewStore("")
	client := api.NewClient(ts.URL, store)
	auth := services.NewAuthService(client, store)
	posts := services.NewPostService(client)
	msgs := services.NewMessageService(client)

	var seeded models.User
	require.NoError(t, srv.db.Order("created_at").First(&seeded).Error)

	ctx := context.Background()
	_, err := auth.Login(ctx, services.LoginRequest{Email: seeded.Email, Password: SeedPassword})
	require.NoError(t, err)

	feed, err := posts.GetAllPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, feed, 10)
	for _, post := range feed {
		assert.NotEmpty(t, post.Author.Username)
	}

	// Seeded conversations belong to real members, so listing them works.
	_, err = msgs.GetUserConversations(ctx)
	assert.NoError(t, err)
}
