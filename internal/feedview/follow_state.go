package feedview

import (
	"context"
	"sync"
)

// RelationshipOps is the slice of the relationship service a profile
// surface drives.
type RelationshipOps interface {
	Follow(ctx context.Context, actorID, targetID string) error
	Unfollow(ctx context.Context, actorID, targetID string) error
	IsFollowing(ctx context.Context, actorID, targetID string) bool
	FollowersCount(ctx context.Context, userID string) int
}

// FollowState tracks whether the viewer follows a profile and the
// profile's follower count, applying follow toggles optimistically.
type FollowState struct {
	mu        sync.Mutex
	svc       RelationshipOps
	viewerID  string
	profileID string
	following bool
	followers int
}

// NewFollowState creates follow-button state for viewerID looking at
// profileID.
func NewFollowState(svc RelationshipOps, viewerID, profileID string) *FollowState {
	return &FollowState{svc: svc, viewerID: viewerID, profileID: profileID}
}

// Load refreshes the follow flag and follower count from the service.
func (f *FollowState) Load(ctx context.Context) {
	following := f.svc.IsFollowing(ctx, f.viewerID, f.profileID)
	followers := f.svc.FollowersCount(ctx, f.profileID)
	f.mu.Lock()
	f.following = following
	f.followers = followers
	f.mu.Unlock()
}

// Following reports the locally visible follow flag.
func (f *FollowState) Following() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.following
}

// Followers reports the locally visible follower count.
func (f *FollowState) Followers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.followers
}

// Toggle flips the follow flag and adjusts the follower count locally,
// then issues the follow or unfollow call. On failure both values are
// reloaded from the service.
func (f *FollowState) Toggle(ctx context.Context) Mutation {
	f.mu.Lock()
	defer f.mu.Unlock()

	wasFollowing := f.following
	if wasFollowing {
		f.following = false
		f.followers--
	} else {
		f.following = true
		f.followers++
	}

	var err error
	if wasFollowing {
		err = f.svc.Unfollow(ctx, f.viewerID, f.profileID)
	} else {
		err = f.svc.Follow(ctx, f.viewerID, f.profileID)
	}
	if err != nil {
		f.following = f.svc.IsFollowing(ctx, f.viewerID, f.profileID)
		f.followers = f.svc.FollowersCount(ctx, f.profileID)
		return rolledBack(err)
	}
	return confirmed()
}
