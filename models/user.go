package models

import "time"

// User is the profile shape the backend serves. The same struct backs the
// devserver's users table, so it carries both json and gorm tags.
type User struct {
	ID         string    `gorm:"primaryKey;size:36" json:"_id"`
	Username   string    `gorm:"size:60;uniqueIndex" json:"username"`
	Email      string    `gorm:"size:255;uniqueIndex" json:"email"`
	Password   string    `gorm:"size:255" json:"-"`
	Avatar     string    `gorm:"size:512" json:"avatar,omitempty"`
	Bio        string    `gorm:"size:255" json:"bio,omitempty"`
	Followers  []string  `gorm:"-" json:"followers"`
	Following  []string  `gorm:"-" json:"following"`
	PostsCount int       `gorm:"-" json:"postsCount"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// Follow stores one edge of the follower graph.
type Follow struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FollowerID  string    `gorm:"size:36;index:follow_pair,unique" json:"follower_id"`
	FollowingID string    `gorm:"size:36;index:follow_pair,unique" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}

// PasswordReset is a single-use token issued by forgotpassword.
type PasswordReset struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"size:36;index" json:"user_id"`
	Token     string    `gorm:"size:64;uniqueIndex" json:"token"`
	Used      bool      `gorm:"default:false" json:"used"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PasswordReset) TableName() string {
	return "password_resets"
}
