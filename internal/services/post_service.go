package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/snapgram/backend/internal/apperr"
	"github.com/snapgram/backend/internal/models"
	"github.com/snapgram/backend/internal/repositories"
)

// PostService manages posts and their embedded likes and comments.
// Author name and avatar are denormalized onto posts and comments at
// write time, so later profile edits do not retroactively change
// already-created records.
type PostService struct {
	posts repositories.PostRepository
	users repositories.UserRepository
}

// NewPostService creates a new PostService
func NewPostService(posts repositories.PostRepository, users repositories.UserRepository) *PostService {
	return &PostService{posts: posts, users: users}
}

// CreatePost validates the request, captures the author's name and
// avatar into the post, and inserts it. The store assigns the id and
// creation timestamp. The post id is also recorded on the author's
// document, best effort.
func (s *PostService) CreatePost(ctx context.Context, req models.CreatePostRequest, author models.User) (*models.Post, error) {
	var missing []string
	if author.UID == "" {
		missing = append(missing, "user_id")
	}
	if author.Name == "" {
		missing = append(missing, "username")
	}
	if req.ImageURL == "" {
		missing = append(missing, "image_url")
	}
	if len(missing) > 0 {
		return nil, apperr.NewValidation("missing required fields", missing...)
	}

	post := &models.Post{
		UserID:     author.UID,
		Username:   author.Name,
		UserAvatar: author.Image,
		ImageURL:   req.ImageURL,
		Caption:    req.Caption,
		Location:   req.Location,
		Likes:      []string{},
		Comments:   []models.Comment{},
	}

	if err := s.posts.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	if err := s.users.AddPost(ctx, author.UID, post.ID.Hex()); err != nil {
		log.Printf("failed to record post %s on user %s: %v", post.ID.Hex(), author.UID, err)
	}

	return post, nil
}

// ListPosts returns every post, newest first.
func (s *PostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return s.posts.GetAllPosts(ctx)
}

// ListPostsByUser returns the posts owned by userID in store-native
// order.
func (s *PostService) ListPostsByUser(ctx context.Context, userID string) ([]models.Post, error) {
	return s.posts.GetPostsByUserID(ctx, userID)
}

// GetPost returns one post by id.
func (s *PostService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	return s.posts.GetPostByID(ctx, postID)
}

// ToggleLike adds userID to the post's likes set when absent and
// removes it when present. The read and the write are separate store
// operations; concurrent toggles by the same user can race and the
// last write wins.
func (s *PostService) ToggleLike(ctx context.Context, postID, userID string) error {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}
	for _, id := range post.Likes {
		if id == userID {
			return s.posts.RemoveLike(ctx, postID, userID)
		}
	}
	return s.posts.AddLike(ctx, postID, userID)
}

// AddComment appends a comment to the post. The comment id is
// generated here from the current time and a random suffix; comments
// are never edited or removed.
func (s *PostService) AddComment(ctx context.Context, postID, text string, author models.User) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperr.NewValidation("comment text must not be empty", "text")
	}

	if _, err := s.posts.GetPostByID(ctx, postID); err != nil {
		return nil, err
	}

	now := time.Now()
	comment := models.Comment{
		ID:        fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8]),
		UserID:    author.UID,
		Username:  author.Name,
		Text:      text,
		CreatedAt: now,
	}

	if err := s.posts.AppendComment(ctx, postID, comment); err != nil {
		return nil, err
	}
	return &comment, nil
}
