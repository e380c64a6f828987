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

func conversationWith(id, username string) models.Conversation {
	return models.Conversation{
		ID: id,
		Participants: []models.Sender{
			{ID: "viewer-1", Username: "alice"},
			{ID: models.ID(username + "-id"), Username: username},
		},
	}
}

func TestConversationsLoad(t *testing.T) {
	e := newEnv(t)
	e.login(t, viewer())
	e.stub(http.MethodGet, "/api/messages/conversations", http.StatusOK, gin.H{
		"conversations": []models.Conversation{conversationWith("c1", "bob"), conversationWith("c2", "carol")},
	})

	page := NewConversationsPage(e.msgs)
	require.NoError(t, page.Load(context.Background()))

	assert.Equal(t, StateReady, page.State())
	assert.Len(t, page.Conversations(), 2)
	assert.Equal(t, RouteConversation("c1"), page.Open("c1"))
}

func TestConversationsDeleteDropsAfterConfirm(t *testing.T) {
	e := newEnv(t)
	e.login(t, viewer())
	e.stub(http.MethodGet, "/api/messages/conversations", http.StatusOK, gin.H{
		"conversations": []models.Conversation{conversationWith("c1", "bob"), conversationWith("c2", "carol")},
	})
	e.stub(http.MethodPut, "/api/messages/conversations/:id/delete", http.StatusOK, gin.H{"message": "ok"})

	page := NewConversationsPage(e.msgs)
	require.NoError(t, page.Load(context.Background()))
	require.NoError(t, page.Delete(context.Background(), "c1"))

	conversations := page.Conversations()
	require.Len(t, conversations, 1)
	assert.Equal(t, "c2", conversations[0].ID)
}

func TestConversationsDeleteKeepsListOnFailure(t *testing.T) {
	e := newEnv(t)
	e.login(t, viewer())
	e.stub(http.MethodGet, "/api/messages/conversations", http.StatusOK, gin.H{
		"conversations": []models.Conversation{conversationWith("c1", "bob")},
	})
	e.stub(http.MethodPut, "/api/messages/conversations/:id/delete", http.StatusForbidden, gin.H{"message": "Not a participant"})

	page := NewConversationsPage(e.msgs)
	require.NoError(t, page.Load(context.Background()))

	require.Error(t, page.Delete(context.Background(), "c1"))
	assert.Len(t, page.Conversations(), 1)
}
