package services

import (
	"context"
	"testing"

	"github.com/snapgram/backend/internal/apperr"
)

func TestFollowCreatesMirroredEdge(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo(newTestUser("u1", "alice"), newTestUser("u2", "bob"))
	svc := NewRelationshipService(repo)

	before := svc.FollowersCount(ctx, "u2")

	if err := svc.Follow(ctx, "u1", "u2"); err != nil {
		t.Fatalf("follow: %v", err)
	}

	if !svc.IsFollowing(ctx, "u1", "u2") {
		t.Error("expected u1 to be following u2")
	}
	if got := svc.FollowersCount(ctx, "u2"); got != before+1 {
		t.Errorf("expected follower count %d, got %d", before+1, got)
	}
	if got := svc.FollowingCount(ctx, "u1"); got != 1 {
		t.Errorf("expected following count 1, got %d", got)
	}
}

func TestFollowIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo(newTestUser("u1", "alice"), newTestUser("u2", "bob"))
	svc := NewRelationshipService(repo)

	for i := 0; i < 3; i++ {
		if err := svc.Follow(ctx, "u1", "u2"); err != nil {
			t.Fatalf("follow attempt %d: %v", i, err)
		}
	}

	if got := svc.FollowersCount(ctx, "u2"); got != 1 {
		t.Errorf("expected follower count 1 after repeated follows, got %d", got)
	}
}

func TestSelfFollowRejected(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo(newTestUser("u1", "alice"))
	svc := NewRelationshipService(repo)

	err := svc.Follow(ctx, "u1", "u1")
	if !apperr.IsInvalidOperation(err) {
		t.Fatalf("expected invalid operation error, got %v", err)
	}
	if got := svc.FollowersCount(ctx, "u1"); got != 0 {
		t.Errorf("self-follow must not change state, follower count %d", got)
	}
	if got := svc.FollowingCount(ctx, "u1"); got != 0 {
		t.Errorf("self-follow must not change state, following count %d", got)
	}
}

func TestFollowUnfollowRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo(newTestUser("u1", "alice"), newTestUser("u2", "bob"))
	svc := NewRelationshipService(repo)

	if err := svc.Follow(ctx, "u1", "u2"); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if got := svc.FollowersCount(ctx, "u2"); got != 1 {
		t.Fatalf("expected follower count 1, got %d", got)
	}
	if got := svc.FollowingCount(ctx, "u1"); got != 1 {
		t.Fatalf("expected following count 1, got %d", got)
	}

	if err := svc.Unfollow(ctx, "u1", "u2"); err != nil {
		t.Fatalf("unfollow: %v", err)
	}
	if got := svc.FollowersCount(ctx, "u2"); got != 0 {
		t.Errorf("expected follower count back to 0, got %d", got)
	}
	if got := svc.FollowingCount(ctx, "u1"); got != 0 {
		t.Errorf("expected following count back to 0, got %d", got)
	}
	if svc.IsFollowing(ctx, "u1", "u2") {
		t.Error("expected u1 not to be following u2 after unfollow")
	}
}

func TestFollowMissingTargetFails(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo(newTestUser("u1", "alice"))
	svc := NewRelationshipService(repo)

	err := svc.Follow(ctx, "u1", "ghost")
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestIsFollowingFailsOpen(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo(newTestUser("u1", "alice"), newTestUser("u2", "bob"))
	svc := NewRelationshipService(repo)

	if err := svc.Follow(ctx, "u1", "u2"); err != nil {
		t.Fatalf("follow: %v", err)
	}

	repo.brokenReads["u1"] = true
	if svc.IsFollowing(ctx, "u1", "u2") {
		t.Error("expected false when the actor's record is unreadable")
	}
	if got := svc.FollowingCount(ctx, "u1"); got != 0 {
		t.Errorf("expected count 0 when unreadable, got %d", got)
	}
}

func TestCountsZeroForMissingUser(t *testing.T) {
	ctx := context.Background()
	svc := NewRelationshipService(newFakeUserRepo())

	if got := svc.FollowersCount(ctx, "nobody"); got != 0 {
		t.Errorf("expected 0 followers for missing user, got %d", got)
	}
	if got := svc.FollowingCount(ctx, "nobody"); got != 0 {
		t.Errorf("expected 0 following for missing user, got %d", got)
	}
}

func TestListFollowersSkipsUnresolvable(t *testing.T) {
	ctx := context.Background()
	alice := newTestUser("u1", "alice")
	alice.Followers = []string{"u2", "ghost", "u3"}
	repo := newFakeUserRepo(alice, newTestUser("u2", "bob"), newTestUser("u3", "carol"))
	svc := NewRelationshipService(repo)

	followers := svc.ListFollowers(ctx, "u1")
	if len(followers) != 2 {
		t.Fatalf("expected 2 resolvable followers, got %d", len(followers))
	}
	if followers[0].UID != "u2" || followers[1].UID != "u3" {
		t.Errorf("unexpected followers %q and %q", followers[0].UID, followers[1].UID)
	}
}

func TestListFollowingResolvesSnapshots(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo(newTestUser("u1", "alice"), newTestUser("u2", "bob"))
	svc := NewRelationshipService(repo)

	if err := svc.Follow(ctx, "u1", "u2"); err != nil {
		t.Fatalf("follow: %v", err)
	}

	following := svc.ListFollowing(ctx, "u1")
	if len(following) != 1 {
		t.Fatalf("expected 1 followed user, got %d", len(following))
	}
	if following[0].UID != "u2" || following[0].Name != "bob" {
		t.Errorf("expected bob's snapshot, got %+v", following[0])
	}
}
