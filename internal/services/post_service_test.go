package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rdSoftInc/DevConnect/internal/models"
	"github.com/rdSoftInc/DevConnect/internal/repository"
	"github.com/rdSoftInc/DevConnect/internal/services"
	"github.com/rdSoftInc/DevConnect/internal/testutil"
	"github.com/rdSoftInc/DevConnect/internal/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateAndListPosts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID := f.register(t, "Ada", "ada@example.com")

	if _, err := f.posts.Create(ctx, userID, "   "); services.KindOf(err) != services.KindValidation {
		t.Fatalf("blank text: err = %v, want validation error", err)
	}

	first, err := f.posts.Create(ctx, userID, "first")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.Name != "Ada" || first.Avatar == "" {
		t.Errorf("author snapshot = %q/%q", first.Name, first.Avatar)
	}
	f.advance(time.Minute)
	second, err := f.posts.Create(ctx, userID, "second")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	posts, err := f.posts.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(posts) != 2 || posts[0].ID != second.ID {
		t.Errorf("List = %+v, want newest first", posts)
	}

	if _, err := f.posts.Create(ctx, uuid.NewString(), "ghost"); !errors.Is(err, services.ErrUserNotFound) {
		t.Errorf("missing author: err = %v, want ErrUserNotFound", err)
	}
}

func TestDeletePost(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := f.register(t, "Ada", "ada@example.com")
	other := f.register(t, "Bob", "bob@example.com")

	post, err := f.posts.Create(ctx, author, "hello")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	err = f.posts.Delete(ctx, other, post.ID)
	if !errors.Is(err, services.ErrNotAuthorized) {
		t.Fatalf("non-author delete: err = %v, want ErrNotAuthorized", err)
	}

	err = f.posts.Delete(ctx, author, uuid.NewString())
	if !errors.Is(err, services.ErrPostNotFound) {
		t.Fatalf("missing post: err = %v, want ErrPostNotFound", err)
	}
	if errors.Is(err, services.ErrNotAuthorized) {
		t.Fatal("missing post reported as not authorized")
	}

	if err := f.posts.Delete(ctx, author, "bogus"); !errors.Is(err, repository.ErrInvalidID) {
		t.Errorf("malformed id: err = %v, want ErrInvalidID", err)
	}

	if err := f.posts.Delete(ctx, author, post.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := f.posts.GetByID(ctx, post.ID); !errors.Is(err, services.ErrPostNotFound) {
		t.Errorf("after delete: err = %v, want ErrPostNotFound", err)
	}
}

func TestLikeAndUnlike(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := f.register(t, "Ada", "ada@example.com")
	fan := f.register(t, "Bob", "bob@example.com")

	post, err := f.posts.Create(ctx, author, "like me")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := f.posts.Unlike(ctx, fan, post.ID); !errors.Is(err, services.ErrNotLiked) {
		t.Errorf("unlike before like: err = %v, want ErrNotLiked", err)
	}

	likes, err := f.posts.Like(ctx, fan, post.ID)
	if err != nil {
		t.Fatalf("Like: %v", err)
	}
	if len(likes) != 1 || likes[0].User != fan {
		t.Fatalf("likes = %+v", likes)
	}
	likes, err = f.posts.Like(ctx, author, post.ID)
	if err != nil {
		t.Fatalf("Like: %v", err)
	}
	if len(likes) != 2 || likes[0].User != author {
		t.Fatalf("likes = %+v, want newest first", likes)
	}

	if _, err := f.posts.Like(ctx, fan, post.ID); !errors.Is(err, services.ErrAlreadyLiked) {
		t.Fatalf("second like: err = %v, want ErrAlreadyLiked", err)
	}
	stored, err := f.posts.GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(stored.Likes) != 2 {
		t.Errorf("like count after double like = %d, want 2", len(stored.Likes))
	}

	likes, err = f.posts.Unlike(ctx, fan, post.ID)
	if err != nil {
		t.Fatalf("Unlike: %v", err)
	}
	if len(likes) != 1 || likes[0].User != author {
		t.Errorf("likes after unlike = %+v", likes)
	}
}

func TestComments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := f.register(t, "Ada", "ada@example.com")
	commenter := f.register(t, "Bob", "bob@example.com")

	post, err := f.posts.Create(ctx, author, "discuss")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := f.posts.AddComment(ctx, commenter, post.ID, ""); services.KindOf(err) != services.KindValidation {
		t.Errorf("empty comment: err = %v, want validation error", err)
	}

	if _, err := f.posts.AddComment(ctx, commenter, post.ID, "first!"); err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	comments, err := f.posts.AddComment(ctx, author, post.ID, "thanks")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if len(comments) != 2 || comments[0].Text != "thanks" || comments[1].Name != "Bob" {
		t.Fatalf("comments = %+v, want newest first with author snapshot", comments)
	}

	if _, err := f.posts.RemoveComment(ctx, author, post.ID, uuid.NewString()); !errors.Is(err, services.ErrCommentNotFound) {
		t.Errorf("unknown comment: err = %v, want ErrCommentNotFound", err)
	}
	if _, err := f.posts.RemoveComment(ctx, author, post.ID, comments[1].ID); !errors.Is(err, services.ErrNotAuthorized) {
		t.Errorf("someone else's comment: err = %v, want ErrNotAuthorized", err)
	}

	comments, err = f.posts.RemoveComment(ctx, commenter, post.ID, comments[1].ID)
	if err != nil {
		t.Fatalf("RemoveComment: %v", err)
	}
	if len(comments) != 1 || comments[0].Text != "thanks" {
		t.Errorf("comments after removal = %+v", comments)
	}
}

// deletingPostRepository removes each post right after handing it out, so the
// caller's write lands on a row that no longer exists.
type deletingPostRepository struct {
	repository.PostRepository
}

func (r deletingPostRepository) FindByID(ctx context.Context, id string) (*models.Post, error) {
	post, err := r.PostRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.PostRepository.Delete(ctx, id); err != nil {
		return nil, err
	}
	return post, nil
}

func TestWritesRacingDeleteReportNotFound(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	users := repository.NewUserRepository(db)
	posts := repository.NewPostRepository(db)
	tokens := utils.NewTokenManager("test-secret", time.Hour, nil)
	auth := services.NewAuthService(users, tokens, bcrypt.MinCost, nil)

	token, err := auth.Register(ctx, services.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	userID, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	plain := services.NewPostService(posts, users, nil)
	racing := services.NewPostService(deletingPostRepository{posts}, users, nil)

	tests := []struct {
		name string
		op   func(postID string) error
	}{
		{"like", func(postID string) error {
			_, err := racing.Like(ctx, userID, postID)
			return err
		}},
		{"comment", func(postID string) error {
			_, err := racing.AddComment(ctx, userID, postID, "late")
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post, err := plain.Create(ctx, userID, "short-lived")
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if err := tt.op(post.ID); !errors.Is(err, services.ErrPostNotFound) {
				t.Fatalf("err = %v, want ErrPostNotFound", err)
			}
			if _, err := plain.GetByID(ctx, post.ID); !errors.Is(err, services.ErrPostNotFound) {
				t.Errorf("deleted post is back: err = %v", err)
			}
		})
	}
}
