package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/rdSoftInc/DevConnect/internal/repository"
	"github.com/rdSoftInc/DevConnect/internal/services"
	"github.com/rdSoftInc/DevConnect/internal/testutil"
	"github.com/rdSoftInc/DevConnect/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	tokens   *utils.TokenManager
	users    repository.UserRepository
	auth     services.AuthService
	profiles services.ProfileService
	posts    services.PostService
	now      func() time.Time
	advance  func(time.Duration)
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	now, advance := testutil.Clock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))

	users := repository.NewUserRepository(db)
	tokens := utils.NewTokenManager("test-secret", time.Hour, now)
	return &fixture{
		tokens:   tokens,
		users:    users,
		auth:     services.NewAuthService(users, tokens, bcrypt.MinCost, now),
		profiles: services.NewProfileService(repository.NewProfileRepository(db), users, now),
		posts:    services.NewPostService(repository.NewPostRepository(db), users, now),
		now:      now,
		advance:  advance,
	}
}

// register creates an account and returns its user id.
func (f *fixture) register(t *testing.T, name, email string) string {
	t.Helper()
	token, err := f.auth.Register(context.Background(), services.RegisterInput{
		Name:     name,
		Email:    email,
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register %s: %v", email, err)
	}
	userID, err := f.tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	return userID
}
