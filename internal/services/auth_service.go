package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rdSoftInc/DevConnect/internal/models"
	"github.com/rdSoftInc/DevConnect/internal/repository"
	"github.com/rdSoftInc/DevConnect/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer signs identity tokens
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// RegisterInput registration payload, already validated by the transport layer
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthService registration, login and current-user lookups
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	CurrentUser(ctx context.Context, userID string) (*models.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	tokens     TokenIssuer
	bcryptCost int
	now        func() time.Time
}

// NewAuthService creates an AuthService
func NewAuthService(userRepo repository.UserRepository, tokens TokenIssuer, bcryptCost int, now func() time.Time) AuthService {
	if now == nil {
		now = time.Now
	}
	return &authService{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		now:        now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user and returns a token for it
func (s *authService) Register(ctx context.Context, input RegisterInput) (string, error) {
	email := normalizeEmail(input.Email)

	_, err := s.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return "", ErrUserExists
	case !errors.Is(err, repository.ErrNotFound):
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:     strings.TrimSpace(input.Name),
		Email:    email,
		Password: string(hash),
		Avatar:   utils.GravatarURL(email),
		Date:     s.now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, repository.ErrDuplicate) {
			return "", ErrUserExists
		}
		return "", err
	}

	return s.tokens.Issue(user.ID)
}

// Login checks the credentials and returns a token
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID)
}

// CurrentUser returns the user a token was issued to. The user may have been
// deleted since.
func (s *authService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, lookupError(err, ErrUserNotFound)
	}
	return user, nil
}
