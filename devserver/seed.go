package devserver

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/gahanad/Blogsy-website-front/models"
)

// SeedPassword is the password every generated account gets.
const SeedPassword = "password123"

// Seed fills the database with fake users, posts, likes, follows, and a few
// conversations, so the app has something to show against a fresh database.
func (s *Server) Seed(userCount, postsPerUser int) error {
	hash, err := hashPassword(SeedPassword)
	if err != nil {
		return err
	}

	users := make([]models.User, 0, userCount)
	for i := 0; i < userCount; i++ {
		user := models.User{
			ID:       uuid.NewString(),
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Email:    fmt.Sprintf("%d.%s", i, gofakeit.Email()),
			Password: hash,
			Bio:      gofakeit.Sentence(8),
			Avatar:   gofakeit.ImageURL(128, 128),
		}
		if err := s.db.Create(&user).Error; err != nil {
			return err
		}
		users = append(users, user)
	}

	for _, user := range users {
		for j := 0; j < postsPerUser; j++ {
			post := models.Post{
				ID:        uuid.NewString(),
				AuthorID:  user.ID,
				Title:     gofakeit.Sentence(3),
				Content:   gofakeit.Paragraph(1, 3, 12, " "),
				CreatedAt: time.Now().Add(-time.Duration(rand.Intn(72)) * time.Hour),
			}
			if err := s.db.Create(&post).Error; err != nil {
				return err
			}
			for _, other := range users {
				if other.ID != user.ID && rand.Intn(3) == 0 {
					s.db.Create(&models.PostLike{PostID: post.ID, UserID: other.ID})
				}
			}
		}
		for _, other := range users {
			if other.ID != user.ID && rand.Intn(4) == 0 {
				s.db.Create(&models.Follow{FollowerID: user.ID, FollowingID: other.ID})
			}
		}
	}

	// A couple of conversations between the first few users.
	for i := 0; i+1 < len(users) && i < 3; i++ {
		a, b := users[i], users[i+1]
		conv := models.Conversation{ID: uuid.NewString(), PairKey: pairKey(a.ID, b.ID)}
		if err := s.db.Create(&conv).Error; err != nil {
			return err
		}
		s.db.Create(&models.ConversationMember{ConversationID: conv.ID, UserID: a.ID})
		s.db.Create(&models.ConversationMember{ConversationID: conv.ID, UserID: b.ID})
		for j := 0; j < 5; j++ {
			sender := a.ID
			if j%2 == 1 {
				sender = b.ID
			}
			if _, err := s.appendMessage(conv.ID, sender, gofakeit.HipsterSentence(6)); err != nil {
				return err
			}
		}
	}

	log.Printf("seeded %d users with %d posts each", len(users), postsPerUser)
	return nil
}
