package devserver

import "github.com/gahanad/Blogsy-website-front/models"

// userDTO fills the derived fields the backend serves alongside the stored
// row: follower/following id lists and the post counter.
func (s *Server) userDTO(u models.User) models.User {
	u.Password = ""
	u.Followers = []string{}
	u.Following = []string{}

	var edges []models.Follow
	s.db.Where("following_id = ?", u.ID).Order("id").Find(&edges)
	for _, e := range edges {
		u.Followers = append(u.Followers, e.FollowerID)
	}
	edges = nil
	s.db.Where("follower_id = ?", u.ID).Order("id").Find(&edges)
	for _, e := range edges {
		u.Following = append(u.Following, e.FollowingID)
	}

	var count int64
	s.db.Model(&models.Post{}).Where("author_id = ?", u.ID).Count(&count)
	u.PostsCount = int(count)
	return u
}

func (s *Server) postDTO(p models.Post) models.Post {
	var author models.User
	if err := s.db.First(&author, "id = ?", p.AuthorID).Error; err == nil {
		p.Author = s.userDTO(author)
	}

	p.Likes = []string{}
	var likes []models.PostLike
	s.db.Where("post_id = ?", p.ID).Order("id").Find(&likes)
	for _, l := range likes {
		p.Likes = append(p.Likes, l.UserID)
	}

	p.Comments = []models.Comment{}
	var comments []models.Comment
	s.db.Where("post_id = ?", p.ID).Order("created_at").Find(&comments)
	for i := range comments {
		var u models.User
		if err := s.db.First(&u, "id = ?", comments[i].UserID).Error; err == nil {
			u.Password = ""
			comments[i].User = u
		}
	}
	p.Comments = comments
	return p
}

func senderDTO(u models.User) models.Sender {
	return models.Sender{
		ID:             models.ID(u.ID),
		Username:       u.Username,
		ProfilePicture: u.Avatar,
	}
}

func (s *Server) messageDTO(m models.Message) models.Message {
	var u models.User
	if err := s.db.First(&u, "id = ?", m.SenderID).Error; err == nil {
		m.Sender = senderDTO(u)
	}
	return m
}
