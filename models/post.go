package models

import "time"

// Post as served by the backend: the author is embedded, likes is the list
// of user ids that currently like the post.
type Post struct {
	ID        string    `gorm:"primaryKey;size:36" json:"_id"`
	AuthorID  string    `gorm:"size:36;index" json:"-"`
	Author    User      `gorm:"-" json:"author"`
	Title     string    `gorm:"size:255" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	Image     string    `gorm:"size:512" json:"image,omitempty"`
	Likes     []string  `gorm:"-" json:"likes"`
	Comments  []Comment `gorm:"-" json:"comments"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Post) TableName() string {
	return "posts"
}

type Comment struct {
	ID        string    `gorm:"primaryKey;size:36" json:"_id"`
	PostID    string    `gorm:"size:36;index" json:"-"`
	UserID    string    `gorm:"size:36" json:"-"`
	User      User      `gorm:"-" json:"user"`
	Text      string    `gorm:"type:text" json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Comment) TableName() string {
	return "comments"
}

// PostLike is the membership row behind Post.Likes.
type PostLike struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID    string    `gorm:"size:36;index:post_like_pair,unique" json:"post_id"`
	UserID    string    `gorm:"size:36;index:post_like_pair,unique" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PostLike) TableName() string {
	return "post_likes"
}
