// Package devserver is a local stand-in for the Blogsy backend. It serves
// the same REST surface the client consumes, backed by sqlite, so the app
// and the integration tests can run without the real service.
package devserver

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gorm.io/driver/sqlite"

	"github.com/gahanad/Blogsy-website-front/models"
)

type Server struct {
	db     *gorm.DB
	secret []byte
}

// New opens the sqlite database and migrates the schema.
func New(dbPath, jwtSecret string) (*Server, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.PasswordReset{},
		&models.Post{},
		&models.Comment{},
		&models.PostLike{},
		&models.Conversation{},
		&models.ConversationMember{},
		&models.Message{},
	)
	if err != nil {
		return nil, err
	}
	return &Server{db: db, secret: []byte(jwtSecret)}, nil
}

// Router wires every endpoint the client knows about, plus /metrics.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(PrometheusMiddleware("devserver"))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.POST("/auth/register", s.register)
		api.POST("/auth/login", s.login)
		api.POST("/auth/forgotpassword", s.forgotPassword)
		api.PUT("/auth/resetpassword/:token", s.resetPassword)
	}

	authed := api.Group("", s.requireAuth())
	{
		authed.GET("/users/profile/me", s.currentProfile)
		authed.PUT("/users/me", s.updateProfile)
		authed.GET("/users/username/:username", s.userByUsername)
		authed.PUT("/users/:id/follow", s.follow)
		authed.PUT("/users/:id/unfollow", s.unfollow)

		authed.GET("/posts/", s.listPosts)
		authed.POST("/posts/", s.createPost)
		authed.PUT("/posts/:id/like", s.likePost)
		authed.PUT("/posts/:id/comment", s.commentPost)
		authed.GET("/posts/user/:id", s.postsByUser)

		authed.GET("/messages/conversations", s.listConversations)
		authed.POST("/messages/conversations", s.startConversation)
		authed.GET("/messages/conversations/:id/messages", s.listMessages)
		authed.POST("/messages/conversations/:id/messages", s.sendMessage)
		authed.PUT("/messages/conversations/:id/read", s.markRead)
		authed.PUT("/messages/conversations/:id/delete", s.deleteConversation)
	}

	return router
}
