package services

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gahanad/Blogsy-website-front/api"
	"github.com/gahanad/Blogsy-website-front/models"
)

// MessagesPage is one page of a conversation's history.
type MessagesPage struct {
	Messages      []models.Message `json:"messages"`
	CurrentPage   int              `json:"currentPage"`
	TotalPages    int              `json:"totalPages"`
	TotalMessages int              `json:"totalMessages"`
}

// ConversationStart is the find-or-create response.
type ConversationStart struct {
	ConversationID string         `json:"conversationId"`
	Message        models.Message `json:"message"`
}

type MessageService struct {
	client *api.Client
}

func NewMessageService(client *api.Client) *MessageService {
	return &MessageService{client: client}
}

func (s *MessageService) GetUserConversations(ctx context.Context) ([]models.Conversation, error) {
	var resp struct {
		Conversations []models.Conversation `json:"conversations"`
	}
	if err := s.client.Do(ctx, http.MethodGet, "/messages/conversations", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Conversations, nil
}

// GetConversationMessages fetches one page of history. Sender ids decode
// through models.ID, so they come out as strings no matter how the backend
// encodes them.
func (s *MessageService) GetConversationMessages(ctx context.Context, conversationID string, page, limit int) (*MessagesPage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var resp MessagesPage
	path := "/messages/conversations/" + conversationID + "/messages"
	if err := s.client.Do(ctx, http.MethodGet, path, nil, query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateConversationAndSendMessage finds or creates the conversation with the
// recipient and delivers the first message in one call.
func (s *MessageService) CreateConversationAndSendMessage(ctx context.Context, recipientID, content string) (*ConversationStart, error) {
	var resp ConversationStart
	body := map[string]string{"recipientId": recipientID, "content": content}
	if err := s.client.Do(ctx, http.MethodPost, "/messages/conversations", body, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *MessageService) SendMessage(ctx context.Context, conversationID, content string) (*models.Message, error) {
	var resp struct {
		Message models.Message `json:"message"`
	}
	body := map[string]string{"content": content}
	path := "/messages/conversations/" + conversationID + "/messages"
	if err := s.client.Do(ctx, http.MethodPost, path, body, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Message, nil
}

func (s *MessageService) MarkMessagesAsRead(ctx context.Context, conversationID string) error {
	path := "/messages/conversations/" + conversationID + "/read"
	return s.client.Do(ctx, http.MethodPut, path, nil, nil, nil)
}

func (s *MessageService) SoftDeleteConversation(ctx context.Context, conversationID string) error {
	path := "/messages/conversations/" + conversationID + "/delete"
	return s.client.Do(ctx, http.MethodPut, path, nil, nil, nil)
}
