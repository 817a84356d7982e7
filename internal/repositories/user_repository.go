package repositories

import (
	"context"
	"errors"

	"github.com/snapgram/backend/internal/apperr"
	"github.com/snapgram/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines the interface for user document operations.
// Follow edges are stored as mirrored membership in the followers and
// following arrays of the two endpoint documents; the Add/Remove
// methods below are idempotent set mutations on one side of an edge.
type UserRepository interface {
	GetUser(ctx context.Context, uid string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateProfile(ctx context.Context, uid, name, image string) error
	AddFollowing(ctx context.Context, uid, targetID string) error
	RemoveFollowing(ctx context.Context, uid, targetID string) error
	AddFollower(ctx context.Context, uid, followerID string) error
	RemoveFollower(ctx context.Context, uid, followerID string) error
	AddPost(ctx context.Context, uid, postID string) error
}

// MongoUserRepository implements UserRepository for MongoDB
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new MongoUserRepository
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{collection: db.Collection("users")}
}

// GetUser retrieves a user document by UID
func (r *MongoUserRepository) GetUser(ctx context.Context, uid string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": uid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NewNotFound("user", uid)
		}
		return nil, apperr.NewTransient("get user", err)
	}
	return &user, nil
}

// CreateUser inserts a new user document
func (r *MongoUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		return apperr.NewTransient("create user", err)
	}
	return nil
}

// UpdateProfile updates the mutable profile fields of a user document.
// Posts created before the update keep their denormalized author name
// and avatar.
func (r *MongoUserRepository) UpdateProfile(ctx context.Context, uid, name, image string) error {
	update := bson.M{"$set": bson.M{"name": name, "image": image}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": uid}, update)
	if err != nil {
		return apperr.NewTransient("update profile", err)
	}
	if res.MatchedCount == 0 {
		return apperr.NewNotFound("user", uid)
	}
	return nil
}

// AddFollowing adds targetID to the user's following set ($addToSet,
// a no-op when already present)
func (r *MongoUserRepository) AddFollowing(ctx context.Context, uid, targetID string) error {
	return r.mutateSet(ctx, uid, "$addToSet", "following", targetID, "add following")
}

// RemoveFollowing removes targetID from the user's following set
func (r *MongoUserRepository) RemoveFollowing(ctx context.Context, uid, targetID string) error {
	return r.mutateSet(ctx, uid, "$pull", "following", targetID, "remove following")
}

// AddFollower adds followerID to the user's followers set
func (r *MongoUserRepository) AddFollower(ctx context.Context, uid, followerID string) error {
	return r.mutateSet(ctx, uid, "$addToSet", "followers", followerID, "add follower")
}

// RemoveFollower removes followerID from the user's followers set
func (r *MongoUserRepository) RemoveFollower(ctx context.Context, uid, followerID string) error {
	return r.mutateSet(ctx, uid, "$pull", "followers", followerID, "remove follower")
}

// AddPost records an owned post id on the user document
func (r *MongoUserRepository) AddPost(ctx context.Context, uid, postID string) error {
	return r.mutateSet(ctx, uid, "$addToSet", "posts", postID, "add post")
}

func (r *MongoUserRepository) mutateSet(ctx context.Context, uid, op, field, value, opName string) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": uid}, bson.M{op: bson.M{field: value}})
	if err != nil {
		return apperr.NewTransient(opName, err)
	}
	if res.MatchedCount == 0 {
		return apperr.NewNotFound("user", uid)
	}
	return nil
}
