package models

import (
	"encoding/json"
	"time"
)

// ID decodes from either a JSON string or a JSON number. The backend is not
// consistent about the native type of embedded user ids, so every consumer
// sees a string.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}

// Sender is the trimmed profile embedded in messages and participant lists.
type Sender struct {
	ID             ID     `json:"_id"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

type Message struct {
	ID             string    `gorm:"primaryKey;size:36" json:"_id"`
	ConversationID string    `gorm:"size:36;index" json:"conversation"`
	SenderID       string    `gorm:"size:36;index" json:"-"`
	Sender         Sender    `gorm:"-" json:"sender"`
	Content        string    `gorm:"type:text" json:"content"`
	Read           bool      `gorm:"default:false" json:"-"`
	CreatedAt      time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (Message) TableName() string {
	return "messages"
}

type Conversation struct {
	ID           string    `gorm:"primaryKey;size:36" json:"_id"`
	PairKey      string    `gorm:"size:80;uniqueIndex" json:"-"`
	Participants []Sender  `gorm:"-" json:"participants"`
	LastMessage  *Message  `gorm:"-" json:"lastMessage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// ConversationMember holds per-participant state, including the soft-delete
// flag that hides a conversation from one side only.
type ConversationMember struct {
	ID             int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ConversationID string `gorm:"size:36;index:conv_member,unique" json:"conversation_id"`
	UserID         string `gorm:"size:36;index:conv_member,unique" json:"user_id"`
	Deleted        bool   `gorm:"default:false" json:"deleted"`
}

func (ConversationMember) TableName() string {
	return "conversation_members"
}
