package services

import (
	"context"
	"strings"
	"time"

	"github.com/rdSoftInc/DevConnect/internal/models"
	"github.com/rdSoftInc/DevConnect/internal/repository"

	"github.com/google/uuid"
)

// PostService post, like and comment operations
type PostService interface {
	Create(ctx context.Context, userID, text string) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Delete(ctx context.Context, userID, postID string) error
	Like(ctx context.Context, userID, postID string) ([]models.Like, error)
	Unlike(ctx context.Context, userID, postID string) ([]models.Like, error)
	AddComment(ctx context.Context, userID, postID, text string) ([]models.Comment, error)
	RemoveComment(ctx context.Context, userID, postID, commentID string) ([]models.Comment, error)
}

type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

// NewPostService creates a PostService
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, now func() time.Time) PostService {
	if now == nil {
		now = time.Now
	}
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
		now:      now,
	}
}

func requireText(text string) error {
	if strings.TrimSpace(text) == "" {
		return NewValidationError(FieldError{Field: "text", Msg: "Text is required"})
	}
	return nil
}

// author loads the user whose name and avatar get copied onto new content.
func (s *postService) author(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, lookupError(err, ErrUserNotFound)
	}
	return user, nil
}

// Create publishes a post as userID
func (s *postService) Create(ctx context.Context, userID, text string) (*models.Post, error) {
	if err := requireText(text); err != nil {
		return nil, err
	}
	user, err := s.author(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID:   user.ID,
		Text:     text,
		Name:     user.Name,
		Avatar:   user.Avatar,
		Likes:    []models.Like{},
		Comments: []models.Comment{},
		Date:     s.now(),
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// List returns every post, newest first
func (s *postService) List(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.List(ctx)
}

// GetByID returns one post
func (s *postService) GetByID(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, ErrPostNotFound)
	}
	return post, nil
}

// Delete removes a post the caller authored
func (s *postService) Delete(ctx context.Context, userID, postID string) error {
	post, err := s.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if err := requireOwner(post.UserID, userID); err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, post.ID); err != nil {
		return lookupError(err, ErrPostNotFound)
	}
	return nil
}

// Like adds the caller to the front of the like list
func (s *postService) Like(ctx context.Context, userID, postID string) ([]models.Like, error) {
	post, err := s.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.HasLike(userID) {
		return nil, ErrAlreadyLiked
	}

	post.Likes = append([]models.Like{{User: userID}}, post.Likes...)
	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, lookupError(err, ErrPostNotFound)
	}
	return post.Likes, nil
}

// Unlike removes the caller from the like list
func (s *postService) Unlike(ctx context.Context, userID, postID string) ([]models.Like, error) {
	post, err := s.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !post.HasLike(userID) {
		return nil, ErrNotLiked
	}

	likes := make([]models.Like, 0, len(post.Likes)-1)
	for _, like := range post.Likes {
		if like.User != userID {
			likes = append(likes, like)
		}
	}
	post.Likes = likes
	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, lookupError(err, ErrPostNotFound)
	}
	return post.Likes, nil
}

// AddComment prepends a comment by the caller
func (s *postService) AddComment(ctx context.Context, userID, postID, text string) ([]models.Comment, error) {
	if err := requireText(text); err != nil {
		return nil, err
	}
	user, err := s.author(ctx, userID)
	if err != nil {
		return nil, err
	}
	post, err := s.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		ID:     uuid.NewString(),
		User:   user.ID,
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
		Date:   s.now(),
	}
	post.Comments = append([]models.Comment{comment}, post.Comments...)
	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, lookupError(err, ErrPostNotFound)
	}
	return post.Comments, nil
}

// RemoveComment deletes a comment the caller authored
func (s *postService) RemoveComment(ctx context.Context, userID, postID, commentID string) ([]models.Comment, error) {
	post, err := s.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	idx := post.FindComment(commentID)
	if idx < 0 {
		return nil, ErrCommentNotFound
	}
	if err := requireOwner(post.Comments[idx].User, userID); err != nil {
		return nil, err
	}

	post.Comments = append(post.Comments[:idx], post.Comments[idx+1:]...)
	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, lookupError(err, ErrPostNotFound)
	}
	return post.Comments, nil
}
