package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rdSoftInc/DevConnect/internal/models"
	"github.com/rdSoftInc/DevConnect/internal/repository"
	"github.com/rdSoftInc/DevConnect/internal/testutil"

	"github.com/google/uuid"
)

func createUser(t *testing.T, repo repository.UserRepository, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "Test User", Email: email, Password: "hash", Date: time.Now()}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUserRepository(testutil.NewDB(t))

	user := createUser(t, repo, "a@example.com")
	if _, err := uuid.Parse(user.ID); err != nil {
		t.Fatalf("generated id %q is not a uuid", user.ID)
	}

	got, err := repo.FindByEmail(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("FindByEmail id = %q, want %q", got.ID, user.ID)
	}

	dup := &models.User{Name: "Other", Email: "a@example.com", Password: "hash"}
	if err := repo.Create(ctx, dup); !errors.Is(err, repository.ErrDuplicate) {
		t.Errorf("duplicate email: err = %v, want ErrDuplicate", err)
	}

	if _, err := repo.FindByID(ctx, "not-an-id"); !errors.Is(err, repository.ErrInvalidID) {
		t.Errorf("malformed id: err = %v, want ErrInvalidID", err)
	}
	if _, err := repo.FindByID(ctx, uuid.NewString()); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("unknown id: err = %v, want ErrNotFound", err)
	}

	if err := repo.Delete(ctx, user.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.FindByID(ctx, user.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("after delete: err = %v, want ErrNotFound", err)
	}
}

func TestProfileRepository(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	users := repository.NewUserRepository(db)
	profiles := repository.NewProfileRepository(db)

	user := createUser(t, users, "p@example.com")
	profile := &models.Profile{
		UserID: user.ID,
		Status: "Developer",
		Skills: []string{"Go", "SQL"},
		Social: models.Social{Twitter: "https://twitter.com/p"},
		Date:   time.Now(),
	}
	if err := profiles.Save(ctx, profile); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := profiles.FindByUserID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByUserID: %v", err)
	}
	if got.User == nil || got.User.Name != "Test User" {
		t.Fatalf("owner not loaded: %+v", got.User)
	}
	if got.User.Email != "" {
		t.Errorf("owner email leaked: %q", got.User.Email)
	}
	if len(got.Skills) != 2 || got.Skills[0] != "Go" {
		t.Errorf("skills = %v", got.Skills)
	}
	if got.Social.Twitter != "https://twitter.com/p" {
		t.Errorf("social = %+v", got.Social)
	}
	if got.Experience == nil || got.Education == nil {
		t.Error("empty lists should load as empty slices")
	}

	got.Skills = []string{"Rust"}
	if err := profiles.Save(ctx, got); err != nil {
		t.Fatalf("Save update: %v", err)
	}
	if got.User == nil {
		t.Error("Save dropped the loaded owner")
	}

	updated, err := profiles.FindByUserID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByUserID: %v", err)
	}
	if len(updated.Skills) != 1 || updated.Skills[0] != "Rust" {
		t.Errorf("skills after update = %v, want [Rust]", updated.Skills)
	}

	all, err := profiles.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("List returned %d profiles, want 1", len(all))
	}

	if err := profiles.DeleteByUserID(ctx, user.ID); err != nil {
		t.Fatalf("DeleteByUserID: %v", err)
	}
	if _, err := profiles.FindByUserID(ctx, user.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("after delete: err = %v, want ErrNotFound", err)
	}
}

func TestPostRepository(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	users := repository.NewUserRepository(db)
	posts := repository.NewPostRepository(db)

	user := createUser(t, users, "post@example.com")
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	older := &models.Post{UserID: user.ID, Text: "first", Date: base}
	newer := &models.Post{UserID: user.ID, Text: "second", Date: base.Add(time.Hour)}
	for _, p := range []*models.Post{older, newer} {
		if err := posts.Create(ctx, p); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	list, err := posts.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].ID != newer.ID {
		t.Fatalf("List not newest first: %+v", list)
	}

	older.Likes = []models.Like{{User: user.ID}}
	older.Comments = []models.Comment{{ID: uuid.NewString(), User: user.ID, Text: "hi"}}
	if err := posts.Save(ctx, older); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := posts.FindByID(ctx, older.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if !got.HasLike(user.ID) {
		t.Error("like not persisted")
	}
	if got.FindComment(older.Comments[0].ID) != 0 {
		t.Error("comment not persisted")
	}

	if err := posts.Delete(ctx, older.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := posts.Delete(ctx, older.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
	if _, err := posts.FindByID(ctx, "123"); !errors.Is(err, repository.ErrInvalidID) {
		t.Errorf("malformed id: err = %v, want ErrInvalidID", err)
	}
}

func TestSaveDoesNotResurrectDeletedPost(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	users := repository.NewUserRepository(db)
	posts := repository.NewPostRepository(db)

	user := createUser(t, users, "stale@example.com")
	post := &models.Post{UserID: user.ID, Text: "soon gone", Date: time.Now()}
	if err := posts.Create(ctx, post); err != nil {
		t.Fatalf("Create: %v", err)
	}

	stale, err := posts.FindByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if err := posts.Delete(ctx, post.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	stale.Likes = append(stale.Likes, models.Like{User: user.ID})
	if err := posts.Save(ctx, stale); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("Save after delete: err = %v, want ErrNotFound", err)
	}
	if _, err := posts.FindByID(ctx, post.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("post came back after a stale save: err = %v", err)
	}
}

func TestSaveDoesNotResurrectDeletedProfile(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	users := repository.NewUserRepository(db)
	profiles := repository.NewProfileRepository(db)

	user := createUser(t, users, "gone@example.com")
	if err := profiles.Save(ctx, &models.Profile{UserID: user.ID, Status: "Developer", Skills: []string{"Go"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	stale, err := profiles.FindByUserID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByUserID: %v", err)
	}
	if err := profiles.DeleteByUserID(ctx, user.ID); err != nil {
		t.Fatalf("DeleteByUserID: %v", err)
	}

	stale.Experience = append(stale.Experience, models.Experience{ID: uuid.NewString(), Title: "Dev", Company: "A"})
	if err := profiles.Save(ctx, stale); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("Save after delete: err = %v, want ErrNotFound", err)
	}
	if _, err := profiles.FindByUserID(ctx, user.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("profile came back after a stale save: err = %v", err)
	}
}

func TestSaveUnchangedPost(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	users := repository.NewUserRepository(db)
	posts := repository.NewPostRepository(db)

	user := createUser(t, users, "same@example.com")
	post := &models.Post{UserID: user.ID, Text: "as is", Date: time.Now()}
	if err := posts.Create(ctx, post); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := posts.Save(ctx, post); err != nil {
		t.Errorf("Save without changes: %v", err)
	}
}
