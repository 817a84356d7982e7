package feedview

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/snapgram/backend/internal/models"
)

// PostOps is the slice of the post service the feed store drives.
type PostOps interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	ToggleLike(ctx context.Context, postID, userID string) error
	AddComment(ctx context.Context, postID, text string, author models.User) (*models.Comment, error)
}

// Store holds the feed snapshot for one surface. The mutex stands in
// for the single UI thread: mutations on one store are serialized, so
// a client cannot race its own toggles.
type Store struct {
	mu    sync.Mutex
	svc   PostOps
	posts []models.Post
}

// NewStore creates an empty feed store over the post service.
func NewStore(svc PostOps) *Store {
	return &Store{svc: svc}
}

// Load replaces the snapshot with authoritative state.
func (s *Store) Load(ctx context.Context) error {
	posts, err := s.svc.ListPosts(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.posts = posts
	s.mu.Unlock()
	return nil
}

// Posts returns a copy of the current snapshot.
func (s *Store) Posts() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// ToggleLike flips userID's membership in the post's like set locally,
// then issues the service call. On failure the snapshot is reloaded
// from the service so the view converges back to the store.
func (s *Store) ToggleLike(ctx context.Context, postID, userID string) Mutation {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applyLikeToggle(postID, userID)

	if err := s.svc.ToggleLike(ctx, postID, userID); err != nil {
		s.reload(ctx)
		return rolledBack(err)
	}
	return confirmed()
}

// AddComment appends an optimistic placeholder comment locally, then
// issues the service call. On success the snapshot is refetched so the
// server-canonical comment replaces the placeholder; on failure the
// snapshot is reloaded and the placeholder disappears.
func (s *Store) AddComment(ctx context.Context, postID, text string, author models.User) Mutation {
	s.mu.Lock()
	defer s.mu.Unlock()

	placeholder := models.Comment{
		ID:        fmt.Sprintf("temp-%d", time.Now().UnixMilli()),
		UserID:    author.UID,
		Username:  author.Name,
		Text:      text,
		CreatedAt: time.Now(),
	}
	s.applyComment(postID, placeholder)

	if _, err := s.svc.AddComment(ctx, postID, text, author); err != nil {
		s.reload(ctx)
		return rolledBack(err)
	}

	s.reload(ctx)
	return confirmed()
}

func (s *Store) applyLikeToggle(postID, userID string) {
	for i := range s.posts {
		if s.posts[i].ID.Hex() != postID {
			continue
		}
		likes := s.posts[i].Likes
		for j, id := range likes {
			if id == userID {
				s.posts[i].Likes = append(likes[:j:j], likes[j+1:]...)
				return
			}
		}
		s.posts[i].Likes = append(likes, userID)
		return
	}
}

func (s *Store) applyComment(postID string, comment models.Comment) {
	for i := range s.posts {
		if s.posts[i].ID.Hex() == postID {
			s.posts[i].Comments = append(s.posts[i].Comments, comment)
			return
		}
	}
}

// reload refreshes the snapshot in place, keeping the current one when
// the authoritative read itself fails. Callers hold the mutex.
func (s *Store) reload(ctx context.Context) {
	posts, err := s.svc.ListPosts(ctx)
	if err != nil {
		log.Printf("feed reload failed, keeping stale snapshot: %v", err)
		return
	}
	s.posts = posts
}
