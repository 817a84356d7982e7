package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/snapgram/backend/internal/apperr"
	"github.com/snapgram/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostRepository defines the interface for post document operations
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, id string) (*models.Post, error)
	GetPostsByUserID(ctx context.Context, userID string) ([]models.Post, error)
	GetAllPosts(ctx context.Context) ([]models.Post, error)
	AddLike(ctx context.Context, postID, userID string) error
	RemoveLike(ctx context.Context, postID, userID string) error
	AppendComment(ctx context.Context, postID string, comment models.Comment) error
}

// MongoPostRepository implements PostRepository for MongoDB
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection("posts")}
}

// CreatePost inserts a new post with a store-assigned id and creation
// timestamp
func (r *MongoPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	if _, err := r.collection.InsertOne(ctx, post); err != nil {
		return apperr.NewTransient("create post", err)
	}
	return nil
}

// GetPostByID retrieves a post by ID
func (r *MongoPostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NewNotFound("post", id)
	}

	var post models.Post
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NewNotFound("post", id)
		}
		return nil, apperr.NewTransient("get post", err)
	}
	return &post, nil
}

// GetPostsByUserID retrieves all posts owned by a user
func (r *MongoPostRepository) GetPostsByUserID(ctx context.Context, userID string) ([]models.Post, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, apperr.NewTransient("list posts by user", err)
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, apperr.NewTransient("list posts by user", err)
	}
	return posts, nil
}

// GetAllPosts retrieves every post ordered by creation time, newest
// first
func (r *MongoPostRepository) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, apperr.NewTransient("list posts", err)
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, apperr.NewTransient("list posts", err)
	}
	return posts, nil
}

// AddLike adds userID to the post's likes set ($addToSet keeps the
// set duplicate-free)
func (r *MongoPostRepository) AddLike(ctx context.Context, postID, userID string) error {
	return r.mutate(ctx, postID, bson.M{"$addToSet": bson.M{"likes": userID}}, "add like")
}

// RemoveLike removes userID from the post's likes set
func (r *MongoPostRepository) RemoveLike(ctx context.Context, postID, userID string) error {
	return r.mutate(ctx, postID, bson.M{"$pull": bson.M{"likes": userID}}, "remove like")
}

// AppendComment appends a comment to the post's comment sequence
func (r *MongoPostRepository) AppendComment(ctx context.Context, postID string, comment models.Comment) error {
	return r.mutate(ctx, postID, bson.M{"$push": bson.M{"comments": comment}}, "append comment")
}

func (r *MongoPostRepository) mutate(ctx context.Context, postID string, update bson.M, opName string) error {
	objID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return apperr.NewNotFound("post", postID)
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return apperr.NewTransient(opName, err)
	}
	if res.MatchedCount == 0 {
		return apperr.NewNotFound("post", postID)
	}
	return nil
}
