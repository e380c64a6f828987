package app

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gahanad/Blogsy-website-front/models"
)

func stubMessagesPage(e *env, messages []models.Message) {
	e.stub(http.MethodGet, "/api/messages/conversations/:id/messages", http.StatusOK, gin.H{
		"messages":      messages,
		"currentPage":   1,
		"totalPages":    1,
		"totalMessages": len(messages),
	})
}

func TestConversationLoadMarksRead(t *testing.T) {
	e := newEnv(t)
	e.login(t, viewer())
	stubMessagesPage(e, []models.Message{
		{ID: "m1", Sender: models.Sender{ID: "other-1", Username: "bob"}, Content: "hi"},
	})
	e.stub(http.MethodPut, "/api/messages/conversations/:id/read", http.StatusOK, gin.H{"message": "ok"})

	page := NewConversationPage(e.auth, e.msgs, "c1")
	require.NoError(t, page.Load(context.Background()))

	assert.Equal(t, StateReady, page.State())
	assert.Equal(t, 1, page.Total())
	assert.Equal(t, 1, e.count(http.MethodPut, "/api/messages/conversations/:id/read"))
}

func TestConversationLoadSkipsMarkReadWithoutSession(t *testing.T) {
	e := newEnv(t)
	stubMessagesPage(e, nil)
	e.stub(http.MethodPut, "/api/messages/conversations/:id/read", http.StatusOK, gin.H{"message": "ok"})

	page := NewConversationPage(e.auth, e.msgs, "c1")
	require.NoError(t, page.Load(context.Background()))

	assert.Equal(t, 0, e.count(http.MethodPut, "/api/messages/conversations/:id/read"))
}

func TestConversationLoadSurvivesMarkReadFailure(t *testing.T) {
	e := newEnv(t)
	e.login(t, viewer())
	stubMessagesPage(e, nil)
	e.stub(http.MethodPut, "/api/messages/conversations/:id/read", http.StatusInternalServerError, gin.H{"message": "boom"})

	page := NewConversationPage(e.auth, e.msgs, "c1")
	require.NoError(t, page.Load(context.Background()))
	assert.Equal(t, StateReady, page.State())
}

func TestConversationSendAppends(t *testing.T) {
	e := newEnv(t)
	e.login(t, viewer())
	stubMessagesPage(e, []models.Message{
		{ID: "m1", Sender: models.Sender{ID: "other-1"}, Content: "hi"},
	})
	e.stub(http.MethodPut, "/api/messages/conversations/:id/read", http.StatusOK, gin.H{"message": "ok"})
	e.stub(http.MethodPost, "/api/messages/conversations/:id/messages", http.StatusCreated, gin.H{
		"message": models.Message{ID: "m2", Sender: models.Sender{ID: "viewer-1", Username: "alice"}, Content: "hello"},
	})

	page := NewConversationPage(e.auth, e.msgs, "c1")
	require.NoError(t, page.Load(context.Background()))
	require.NoError(t, page.Send(context.Background(), "hello"))

	messages := page.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, "m2", messages[1].ID)
	assert.Equal(t, 2, page.Total())
	assert.True(t, page.Mine(messages[1]))
	assert.False(t, page.Mine(messages[0]))
}

func TestConversationSendDropsBlank(t *testing.T) {
	e := newEnv(t)
	e.login(t, viewer())
	stubMessagesPage(e, nil)
	e.stub(http.MethodPut, "/api/messages/conversations/:id/read", http.StatusOK, gin.H{"message": "ok"})
	e.stub(http.MethodPost, "/api/messages/conversations/:id/messages", http.StatusCreated, gin.H{})

	page := NewConversationPage(e.auth, e.msgs, "c1")
	require.NoError(t, page.Load(context.Background()))

	require.NoError(t, page.Send(context.Background(), "   "))
	assert.Equal(t, 0, e.count(http.MethodPost, "/api/messages/conversations/:id/messages"))
}

func TestConversationLoadNotFound(t *testing.T) {
	e := newEnv(t)
	e.login(t, viewer())
	e.stub(http.MethodGet, "/api/messages/conversations/:id/messages", http.StatusNotFound, gin.H{"message": "Conversation not found"})

	page := NewConversationPage(e.auth, e.msgs, "ghost")
	require.Error(t, page.Load(context.Background()))
	assert.Equal(t, StateFailed, page.State())
	assert.Equal(t, "Conversation not found", page.ErrMsg())
}
