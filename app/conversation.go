package app

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/gahanad/Blogsy-website-front/api"
	"github.com/gahanad/Blogsy-website-front/models"
	"github.com/gahanad/Blogsy-website-front/services"
)

const messagesPageSize = 20

// ConversationPage shows one conversation's history and sends messages into
// it. Opening the page marks the history read, but only under an
// authenticated session.
type ConversationPage struct {
	auth *services.AuthService
	msgs *services.MessageService

	conversationID string

	mu       sync.Mutex
	closed   bool
	state    State
	errMsg   string
	messages []models.Message
	total    int
	viewerID string
}

func NewConversationPage(auth *services.AuthService, msgs *services.MessageService, conversationID string) *ConversationPage {
	return &ConversationPage{auth: auth, msgs: msgs, conversationID: conversationID, state: StateLoading}
}

// Load fetches the first page of messages and then marks the conversation
// read. Callers should route 403/404 failures back to the conversation list.
func (p *ConversationPage) Load(ctx context.Context) error {
	page, err := p.msgs.GetConversationMessages(ctx, p.conversationID, 1, messagesPageSize)
	if err != nil {
		p.mu.Lock()
		if !p.closed {
			p.state = StateFailed
			p.errMsg = api.UserMessage(err, "Failed to load messages. Please try again.")
		}
		p.mu.Unlock()
		return err
	}

	// Gate on the authenticated session, not on any persisted marker.
	if sess := p.auth.CurrentUser(); sess != nil {
		if err := p.msgs.MarkMessagesAsRead(ctx, p.conversationID); err != nil {
			log.Printf("mark as read failed for conversation %s: %v", p.conversationID, err)
		}
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
	p.messages = page.Messages
	p.total = page.TotalMessages
	p.viewerID = viewerID
	p.state = StateReady
	return nil
}

// Send delivers a message and appends the server's copy to the local
// history. Blank content is dropped without a network call.
func (p *ConversationPage) Send(ctx context.Context, content string) error {
	if strings.TrimSpace(content) == "" {
		return nil
	}
	p.mu.Lock()
	if p.state != StateReady {
		p.mu.Unlock()
		return ErrNotReady
	}
	p.mu.Unlock()

	msg, err := p.msgs.SendMessage(ctx, p.conversationID, content)
	if err != nil {
		return err
	}

	p.mu.Lock()
	if !p.closed {
		p.messages = append(p.messages, *msg)
		p.total++
	}
	p.mu.Unlock()
	return nil
}

func (p *ConversationPage) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
}

func (p *ConversationPage) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *ConversationPage) ErrMsg() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMsg
}

func (p *ConversationPage) Messages() []models.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Message{}, p.messages...)
}

func (p *ConversationPage) Total() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}

// Mine reports whether the message was sent by the viewer, for rendering
// sides of the thread.
func (p *ConversationPage) Mine(msg models.Message) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.viewerID != "" && msg.Sender.ID.String() == p.viewerID
}
