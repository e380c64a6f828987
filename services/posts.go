package services

import (
	"context"
	"net/http"

	"github.com/gahanad/Blogsy-website-front/api"
	"github.com/gahanad/Blogsy-website-front/models"
)

type PostService struct {
	client *api.Client
}

func NewPostService(client *api.Client) *PostService {
	return &PostService{client: client}
}

// GetAllPosts lists the whole feed, newest first.
func (s *PostService) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	var resp struct {
		Posts []models.Post `json:"posts"`
	}
	if err := s.client.Do(ctx, http.MethodGet, "/posts/", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Posts, nil
}

// CreatePost publishes a post and returns the server's copy.
func (s *PostService) CreatePost(ctx context.Context, title, content string) (*models.Post, error) {
	var resp struct {
		Post models.Post `json:"post"`
	}
	body := map[string]string{"title": title, "content": content}
	if err := s.client.Do(ctx, http.MethodPost, "/posts/", body, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Post, nil
}

// LikePost toggles the viewer's like on the post. The toggle semantics are
// the server's; callers flip their local copy optimistically.
func (s *PostService) LikePost(ctx context.Context, postID string) error {
	return s.client.Do(ctx, http.MethodPut, "/posts/"+postID+"/like", struct{}{}, nil, nil)
}

func (s *PostService) CommentPost(ctx context.Context, postID, text string) (*models.Comment, error) {
	var resp struct {
		Comment models.Comment `json:"comment"`
	}
	body := map[string]string{"text": text}
	if err := s.client.Do(ctx, http.MethodPut, "/posts/"+postID+"/comment", body, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Comment, nil
}

func (s *PostService) GetPostsByUser(ctx context.Context, userID string) ([]models.Post, error) {
	var resp struct {
		Posts []models.Post `json:"posts"`
	}
	if err := s.client.Do(ctx, http.MethodGet, "/posts/user/"+userID, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Posts, nil
}
