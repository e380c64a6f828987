package devserver

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gahanad/Blogsy-website-front/models"
)

func (s *Server) listConversations(c *gin.Context) {
	var memberships []models.ConversationMember
	if err := s.db.Where("user_id = ? AND deleted = ?", viewerID(c), false).Find(&memberships).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get conversations"})
		return
	}

	conversations := make([]models.Conversation, 0, len(memberships))
	for _, m := range memberships {
		var conv models.Conversation
		if err := s.db.First(&conv, "id = ?", m.ConversationID).Error; err != nil {
			continue
		}
		conversations = append(conversations, s.conversationDTO(conv))
	}
	sort.Slice(conversations, func(i, j int) bool {
		return conversations[i].UpdatedAt.After(conversations[j].UpdatedAt)
	})
	c.JSON(http.StatusOK, gin.H{"conversations": conversations})
}

// startConversation finds or creates the conversation with the recipient and
// delivers the first message.
func (s *Server) startConversation(c *gin.Context) {
	var req struct {
		RecipientID string `json:"recipientId" binding:"required"`
		Content     string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Recipient and content are required"})
		return
	}
	if req.RecipientID == viewerID(c) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "You cannot message yourself"})
		return
	}
	var recipient models.User
	if err := s.db.First(&recipient, "id = ?", req.RecipientID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Recipient not found"})
		return
	}

	key := pairKey(viewerID(c), req.RecipientID)
	var conv models.Conversation
	err := s.db.First(&conv, "pair_key = ?", key).Error
	if err != nil {
		conv = models.Conversation{ID: uuid.NewString(), PairKey: key}
		if err := s.db.Create(&conv).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create conversation"})
			return
		}
		s.db.Create(&models.ConversationMember{ConversationID: conv.ID, UserID: viewerID(c)})
		s.db.Create(&models.ConversationMember{ConversationID: conv.ID, UserID: req.RecipientID})
	} else {
		// A fresh message resurfaces the conversation for both sides.
		s.db.Model(&models.ConversationMember{}).
			Where("conversation_id = ?", conv.ID).Update("deleted", false)
	}

	msg, err := s.appendMessage(conv.ID, viewerID(c), req.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send message"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"conversationId": conv.ID, "message": msg})
}

func (s *Server) listMessages(c *gin.Context) {
	conv, member, ok := s.requireMembership(c)
	if !ok {
		return
	}
	_ = member

	page := 1
	limit := 20
	if parsed, err := strconv.Atoi(c.Query("page")); err == nil && parsed > 0 {
		page = parsed
	}
	if parsed, err := strconv.Atoi(c.Query("limit")); err == nil && parsed > 0 && parsed <= 100 {
		limit = parsed
	}

	var total int64
	s.db.Model(&models.Message{}).Where("conversation_id = ?", conv.ID).Count(&total)

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages < 1 {
		totalPages = 1
	}

	// Page 1 is the most recent window; messages within a page run oldest
	// to newest.
	var rows []models.Message
	s.db.Where("conversation_id = ?", conv.ID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows)

	messages := make([]models.Message, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		messages = append(messages, s.messageDTO(rows[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"messages":      messages,
		"currentPage":   page,
		"totalPages":    totalPages,
		"totalMessages": total,
	})
}

func (s *Server) sendMessage(c *gin.Context) {
	conv, _, ok := s.requireMembership(c)
	if !ok {
		return
	}

	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Message content is required"})
		return
	}

	msg, err := s.appendMessage(conv.ID, viewerID(c), req.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send message"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

func (s *Server) markRead(c *gin.Context) {
	conv, _, ok := s.requireMembership(c)
	if !ok {
		return
	}
	err := s.db.Model(&models.Message{}).
		Where("conversation_id = ? AND sender_id <> ?", conv.ID, viewerID(c)).
		Update("read", true).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to mark messages as read"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Messages marked as read"})
}

func (s *Server) deleteConversation(c *gin.Context) {
	_, member, ok := s.requireMembership(c)
	if !ok {
		return
	}
	if err := s.db.Model(member).Update("deleted", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete conversation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conversation deleted"})
}

// requireMembership resolves the :id conversation and checks the viewer is a
// participant. It writes the error response itself: 404 for a missing
// conversation, 403 for a non-participant.
func (s *Server) requireMembership(c *gin.Context) (*models.Conversation, *models.ConversationMember, bool) {
	var conv models.Conversation
	if err := s.db.First(&conv, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Conversation not found"})
		return nil, nil, false
	}
	var member models.ConversationMember
	if err := s.db.First(&member, "conversation_id = ? AND user_id = ?", conv.ID, viewerID(c)).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not a participant of this conversation"})
		return nil, nil, false
	}
	return &conv, &member, true
}

func (s *Server) appendMessage(conversationID, senderID, content string) (models.Message, error) {
	msg := models.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return models.Message{}, err
	}
	s.db.Model(&models.Conversation{}).Where("id = ?", conversationID).Update("updated_at", time.Now())
	return s.messageDTO(msg), nil
}

func (s *Server) conversationDTO(conv models.Conversation) models.Conversation {
	conv.Participants = []models.Sender{}
	var members []models.ConversationMember
	s.db.Where("conversation_id = ?", conv.ID).Find(&members)
	for _, m := range members {
		var u models.User
		if err := s.db.First(&u, "id = ?", m.UserID).Error; err == nil {
			conv.Participants = append(conv.Participants, senderDTO(u))
		}
	}

	var last models.Message
	if err := s.db.Where("conversation_id = ?", conv.ID).Order("created_at DESC").First(&last).Error; err == nil {
		full := s.messageDTO(last)
		conv.LastMessage = &full
	}
	return conv
}

func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return strings.Join([]string{a, b}, ":")
}
