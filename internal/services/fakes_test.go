package services

import (
	"context"
	"sort"
	"time"

	"github.com/snapgram/backend/internal/apperr"
	"github.com/snapgram/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUserRepo is an in-memory UserRepository with the same set
// semantics as the Mongo implementation. brokenReads marks uids whose
// reads fail with a transient error; writeErr fails the next write.
type fakeUserRepo struct {
	users       map[string]*models.User
	brokenReads map[string]bool
	writeErr    error
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{
		users:       make(map[string]*models.User),
		brokenReads: make(map[string]bool),
	}
	for _, u := range users {
		repo.users[u.UID] = u
	}
	return repo
}

func postCreateReq() models.CreatePostRequest {
	return models.CreatePostRequest{ImageURL: "https://img.example.com/p.jpg", Caption: "hi"}
}

func newTestUser(uid, name string) *models.User {
	return &models.User{
		UID:       uid,
		Name:      name,
		Email:     uid + "@example.com",
		Followers: []string{},
		Following: []string{},
		Posts:     []string{},
	}
}

func (r *fakeUserRepo) GetUser(ctx context.Context, uid string) (*models.User, error) {
	if r.brokenReads[uid] {
		return nil, apperr.NewTransient("get user", context.DeadlineExceeded)
	}
	user, ok := r.users[uid]
	if !ok {
		return nil, apperr.NewNotFound("user", uid)
	}
	clone := *user
	clone.Followers = append([]string(nil), user.Followers...)
	clone.Following = append([]string(nil), user.Following...)
	clone.Posts = append([]string(nil), user.Posts...)
	return &clone, nil
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *models.User) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	r.users[user.UID] = user
	return nil
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, uid, name, image string) error {
	user, ok := r.users[uid]
	if !ok {
		return apperr.NewNotFound("user", uid)
	}
	user.Name = name
	user.Image = image
	return nil
}

func (r *fakeUserRepo) AddFollowing(ctx context.Context, uid, targetID string) error {
	return r.addToSet(uid, targetID, func(u *models.User) *[]string { return &u.Following })
}

func (r *fakeUserRepo) RemoveFollowing(ctx context.Context, uid, targetID string) error {
	return r.pull(uid, targetID, func(u *models.User) *[]string { return &u.Following })
}

func (r *fakeUserRepo) AddFollower(ctx context.Context, uid, followerID string) error {
	return r.addToSet(uid, followerID, func(u *models.User) *[]string { return &u.Followers })
}

func (r *fakeUserRepo) RemoveFollower(ctx context.Context, uid, followerID string) error {
	return r.pull(uid, followerID, func(u *models.User) *[]string { return &u.Followers })
}

func (r *fakeUserRepo) AddPost(ctx context.Context, uid, postID string) error {
	return r.addToSet(uid, postID, func(u *models.User) *[]string { return &u.Posts })
}

func (r *fakeUserRepo) addToSet(uid, value string, field func(*models.User) *[]string) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	user, ok := r.users[uid]
	if !ok {
		return apperr.NewNotFound("user", uid)
	}
	set := field(user)
	for _, existing := range *set {
		if existing == value {
			return nil
		}
	}
	*set = append(*set, value)
	return nil
}

func (r *fakeUserRepo) pull(uid, value string, field func(*models.User) *[]string) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	user, ok := r.users[uid]
	if !ok {
		return apperr.NewNotFound("user", uid)
	}
	set := field(user)
	for i, existing := range *set {
		if existing == value {
			*set = append((*set)[:i], (*set)[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakePostRepo is an in-memory PostRepository. GetAllPosts emulates
// the store's ordered query by sorting on creation time, newest first.
type fakePostRepo struct {
	posts     map[string]*models.Post
	createSeq int
	writeErr  error
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*models.Post)}
}

// seed inserts a post with a fixed creation time, bypassing CreatePost
func (r *fakePostRepo) seed(userID string, createdAt time.Time) *models.Post {
	post := &models.Post{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		ImageURL:  "https://img.example.com/p.jpg",
		Likes:     []string{},
		Comments:  []models.Comment{},
		CreatedAt: createdAt,
	}
	r.posts[post.ID.Hex()] = post
	return post
}

func (r *fakePostRepo) CreatePost(ctx context.Context, post *models.Post) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	post.ID = primitive.NewObjectID()
	r.createSeq++
	post.CreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(r.createSeq) * time.Second)
	clone := *post
	r.posts[post.ID.Hex()] = &clone
	return nil
}

func (r *fakePostRepo) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, apperr.NewNotFound("post", id)
	}
	clone := *post
	clone.Likes = append([]string(nil), post.Likes...)
	clone.Comments = append([]models.Comment(nil), post.Comments...)
	return &clone, nil
}

func (r *fakePostRepo) GetPostsByUserID(ctx context.Context, userID string) ([]models.Post, error) {
	var out []models.Post
	for _, post := range r.posts {
		if post.UserID == userID {
			out = append(out, *post)
		}
	}
	return out, nil
}

func (r *fakePostRepo) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	out := make([]models.Post, 0, len(r.posts))
	for _, post := range r.posts {
		out = append(out, *post)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakePostRepo) AddLike(ctx context.Context, postID, userID string) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	post, ok := r.posts[postID]
	if !ok {
		return apperr.NewNotFound("post", postID)
	}
	for _, id := range post.Likes {
		if id == userID {
			return nil
		}
	}
	post.Likes = append(post.Likes, userID)
	return nil
}

func (r *fakePostRepo) RemoveLike(ctx context.Context, postID, userID string) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	post, ok := r.posts[postID]
	if !ok {
		return apperr.NewNotFound("post", postID)
	}
	for i, id := range post.Likes {
		if id == userID {
			post.Likes = append(post.Likes[:i], post.Likes[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakePostRepo) AppendComment(ctx context.Context, postID string, comment models.Comment) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	post, ok := r.posts[postID]
	if !ok {
		return apperr.NewNotFound("post", postID)
	}
	post.Comments = append(post.Comments, comment)
	return nil
}
