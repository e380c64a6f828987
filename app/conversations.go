package app

import (
	"context"
	"sync"

	"github.com/gahanad/Blogsy-website-front/api"
	"github.com/gahanad/Blogsy-website-front/models"
	"github.com/gahanad/Blogsy-website-front/services"
)

// ConversationsPage lists the viewer's conversations.
type ConversationsPage struct {
	msgs *services.MessageService

	mu            sync.Mutex
	closed        bool
	state         State
	errMsg        string
	conversations []models.Conversation
}

func NewConversationsPage(msgs *services.MessageService) *ConversationsPage {
	return &ConversationsPage{msgs: msgs, state: StateLoading}
}

func (p *ConversationsPage) Load(ctx context.Context) error {
	conversations, err := p.msgs.GetUserConversations(ctx)
	if err != nil {
		p.mu.Lock()
		if !p.closed {
			p.state = StateFailed
			p.errMsg = api.UserMessage(err, "Failed to load conversations.")
		}
		p.mu.Unlock()
		return err
	}
	p.mu.Lock()
	if !p.closed {
		p.conversations = conversations
		p.state = StateReady
	}
	p.mu.Unlock()
	return nil
}

// Open routes into a conversation from the list.
func (p *ConversationsPage) Open(conversationID string) Route {
	return RouteConversation(conversationID)
}

// Delete soft-deletes the conversation for the viewer and drops it from the
// local list once the backend confirms.
func (p *ConversationsPage) Delete(ctx context.Context, conversationID string) error {
	if err := p.msgs.SoftDeleteConversation(ctx, conversationID); err != nil {
		return err
	}
	p.mu.Lock()
	if !p.closed {
		kept := p.conversations[:0:0]
		for _, c := range p.conversations {
			if c.ID != conversationID {
				kept = append(kept, c)
			}
		}
		p.conversations = kept
	}
	p.mu.Unlock()
	return nil
}

func (p *ConversationsPage) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
}

func (p *ConversationsPage) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *ConversationsPage) ErrMsg() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMsg
}

func (p *ConversationsPage) Conversations() []models.Conversation {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Conversation{}, p.conversations...)
}
