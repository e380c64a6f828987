package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gahanad/Blogsy-website-front/models"
)

func (s *Server) currentProfile(c *gin.Context) {
	var user models.User
	if err := s.db.First(&user, "id = ?", viewerID(c)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, s.userDTO(user))
}

func (s *Server) updateProfile(c *gin.Context) {
	var req struct {
		Username *string `json:"username"`
		Email    *string `json:"email"`
		Bio      *string `json:"bio"`
		Avatar   *string `json:"avatar"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", viewerID(c)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	updates := map[string]interface{}{}
	if req.Username != nil && *req.Username != user.Username {
		var taken int64
		s.db.Model(&models.User{}).Where("username = ? AND id <> ?", *req.Username, user.ID).Count(&taken)
		if taken > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username already taken"})
			return
		}
		updates["username"] = *req.Username
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
	}

	s.db.First(&user, "id = ?", user.ID)
	c.JSON(http.StatusOK, s.userDTO(user))
}

func (s *Server) userByUsername(c *gin.Context) {
	var user models.User
	if err := s.db.First(&user, "username = ?", c.Param("username")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, s.userDTO(user))
}

func (s *Server) follow(c *gin.Context) {
	targetID := c.Param("id")
	if targetID == viewerID(c) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "You cannot follow yourself"})
		return
	}
	var target models.User
	if err := s.db.First(&target, "id = ?", targetID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	edge := models.Follow{FollowerID: viewerID(c), FollowingID: targetID}
	if err := s.db.Where("follower_id = ? AND following_id = ?", edge.FollowerID, edge.FollowingID).
		FirstOrCreate(&edge).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User followed"})
}

func (s *Server) unfollow(c *gin.Context) {
	targetID := c.Param("id")
	var target models.User
	if err := s.db.First(&target, "id = ?", targetID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if err := s.db.Where("follower_id = ? AND following_id = ?", viewerID(c), targetID).
		Delete(&models.Follow{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User unfollowed"})
}
