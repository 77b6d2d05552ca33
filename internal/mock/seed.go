package mock

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/rdSoftInc/DevConnect/internal/repository"
	"github.com/rdSoftInc/DevConnect/internal/services"
)

// Seeder loads Users through the same services the API uses.
type Seeder struct {
	Auth     services.AuthService
	Users    repository.UserRepository
	Profiles services.ProfileService
	Posts    services.PostService
}

// Seed creates every demo account that does not exist yet, with its profile
// and posts, and has each new account like the others' posts. Existing
// accounts are left alone so the command can be re-run.
func (s *Seeder) Seed(ctx context.Context) error {
	var created []string
	var postIDs []string

	for _, demo := range Users {
		_, err := s.Auth.Register(ctx, demo.Account)
		if errors.Is(err, services.ErrUserExists) {
			log.Printf("skipping %s: already registered", demo.Account.Email)
			continue
		}
		if err != nil {
			return fmt.Errorf("register %s: %w", demo.Account.Email, err)
		}

		user, err := s.Users.FindByEmail(ctx, demo.Account.Email)
		if err != nil {
			return fmt.Errorf("find %s: %w", demo.Account.Email, err)
		}

		if _, err := s.Profiles.Upsert(ctx, user.ID, demo.Profile); err != nil {
			return fmt.Errorf("profile for %s: %w", demo.Account.Email, err)
		}
		for _, exp := range demo.Experience {
			if _, err := s.Profiles.AddExperience(ctx, user.ID, exp); err != nil {
				return fmt.Errorf("experience for %s: %w", demo.Account.Email, err)
			}
		}
		for _, edu := range demo.Education {
			if _, err := s.Profiles.AddEducation(ctx, user.ID, edu); err != nil {
				return fmt.Errorf("education for %s: %w", demo.Account.Email, err)
			}
		}
		for _, text := range demo.Posts {
			post, err := s.Posts.Create(ctx, user.ID, text)
			if err != nil {
				return fmt.Errorf("post for %s: %w", demo.Account.Email, err)
			}
			postIDs = append(postIDs, post.ID)
		}

		created = append(created, user.ID)
		log.Printf("seeded %s", demo.Account.Email)
	}

	for _, userID := range created {
		for _, postID := range postIDs {
			post, err := s.Posts.GetByID(ctx, postID)
			if err != nil {
				return err
			}
			if post.UserID == userID {
				continue
			}
			if _, err := s.Posts.Like(ctx, userID, postID); err != nil {
				return fmt.Errorf("like %s: %w", postID, err)
			}
		}
	}
	return nil
}
