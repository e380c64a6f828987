package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gahanad/Blogsy-website-front/models"
)

func (s *Server) listPosts(c *gin.Context) {
	var rows []models.Post
	if err := s.db.Order("created_at DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get posts"})
		return
	}
	posts := make([]models.Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, s.postDTO(row))
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (s *Server) createPost(c *gin.Context) {
	var req struct {
		Title   string `json:"title" binding:"required"`
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and content are required"})
		return
	}

	post := models.Post{
		ID:       uuid.NewString(),
		AuthorID: viewerID(c),
		Title:    req.Title,
		Content:  req.Content,
	}
	if err := s.db.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create post"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"post": s.postDTO(post)})
}

// likePost toggles the viewer's like: present removes it, absent adds it.
func (s *Server) likePost(c *gin.Context) {
	postID := c.Param("id")
	var post models.Post
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return
	}

	var like models.PostLike
	err := s.db.First(&like, "post_id = ? AND user_id = ?", postID, viewerID(c)).Error
	if err == nil {
		s.db.Delete(&like)
	} else {
		s.db.Create(&models.PostLike{PostID: postID, UserID: viewerID(c)})
	}

	full := s.postDTO(post)
	c.JSON(http.StatusOK, gin.H{"message": "Post like toggled", "likes": full.Likes})
}

func (s *Server) commentPost(c *gin.Context) {
	postID := c.Param("id")
	var post models.Post
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return
	}

	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Comment text is required"})
		return
	}

	comment := models.Comment{
		ID:     uuid.NewString(),
		PostID: postID,
		UserID: viewerID(c),
		Text:   req.Text,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add comment"})
		return
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", comment.UserID).Error; err == nil {
		user.Password = ""
		comment.User = user
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

func (s *Server) postsByUser(c *gin.Context) {
	var rows []models.Post
	if err := s.db.Where("author_id = ?", c.Param("id")).Order("created_at DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get posts"})
		return
	}
	posts := make([]models.Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, s.postDTO(row))
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}
