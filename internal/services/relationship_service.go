package services

import (
	"context"
	"log"

	"github.com/snapgram/backend/internal/apperr"
	"github.com/snapgram/backend/internal/models"
	"github.com/snapgram/backend/internal/repositories"
)

// RelationshipService manages directed follow edges between users.
// An edge is stored redundantly as membership in both endpoints'
// following/followers sets, written as two independent idempotent set
// mutations. The writes are not transactional: a failure between them
// leaves a transient asymmetric edge that heals only when the
// operation is retried.
type RelationshipService struct {
	users repositories.UserRepository
}

// NewRelationshipService creates a new RelationshipService
func NewRelationshipService(users repositories.UserRepository) *RelationshipService {
	return &RelationshipService{users: users}
}

// Follow records that actorID follows targetID. Self-follows are
// rejected. The actor-side write goes first; if it fails the target
// side is never touched.
func (s *RelationshipService) Follow(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return apperr.NewInvalidOperation("you cannot follow yourself")
	}
	if err := s.users.AddFollowing(ctx, actorID, targetID); err != nil {
		return err
	}
	return s.users.AddFollower(ctx, targetID, actorID)
}

// Unfollow removes the edge from actorID to targetID, with the same
// two-write partial-failure caveat as Follow.
func (s *RelationshipService) Unfollow(ctx context.Context, actorID, targetID string) error {
	if err := s.users.RemoveFollowing(ctx, actorID, targetID); err != nil {
		return err
	}
	return s.users.RemoveFollower(ctx, targetID, actorID)
}

// IsFollowing reports whether actorID follows targetID according to
// the actor's stored following set. Any read failure is reported as
// not following.
func (s *RelationshipService) IsFollowing(ctx context.Context, actorID, targetID string) bool {
	user, err := s.users.GetUser(ctx, actorID)
	if err != nil {
		return false
	}
	for _, id := range user.Following {
		if id == targetID {
			return true
		}
	}
	return false
}

// FollowersCount returns the number of followers of userID, or 0 when
// the user record is absent or unreadable.
func (s *RelationshipService) FollowersCount(ctx context.Context, userID string) int {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return 0
	}
	return len(user.Followers)
}

// FollowingCount returns the number of users userID follows, or 0
// when the user record is absent or unreadable.
func (s *RelationshipService) FollowingCount(ctx context.Context, userID string) int {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return 0
	}
	return len(user.Following)
}

// ListFollowers resolves each follower id of userID to a full user
// snapshot. Ids that fail to resolve are skipped.
func (s *RelationshipService) ListFollowers(ctx context.Context, userID string) []models.User {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil
	}
	return s.resolve(ctx, user.Followers)
}

// ListFollowing resolves each followed id of userID to a full user
// snapshot. Ids that fail to resolve are skipped.
func (s *RelationshipService) ListFollowing(ctx context.Context, userID string) []models.User {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil
	}
	return s.resolve(ctx, user.Following)
}

func (s *RelationshipService) resolve(ctx context.Context, ids []string) []models.User {
	resolved := make([]models.User, 0, len(ids))
	for _, id := range ids {
		u, err := s.users.GetUser(ctx, id)
		if err != nil {
			if !apperr.IsNotFound(err) {
				log.Printf("skipping unresolvable user %s: %v", id, err)
			}
			continue
		}
		resolved = append(resolved, *u)
	}
	return resolved
}
