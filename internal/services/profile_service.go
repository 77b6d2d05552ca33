package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rdSoftInc/DevConnect/internal/models"
	"github.com/rdSoftInc/DevConnect/internal/repository"

	"github.com/google/uuid"
)

// ProfileInput profile submission. Empty scalar fields leave the stored value
// alone; Skills and Social always replace what is stored.
type ProfileInput struct {
	Company        string
	Website        string
	Location       string
	Bio            string
	Status         string
	GithubUsername string
	Skills         []string
	Social         models.Social
}

// ProfileService profile operations. Mutations always act on the caller's own
// profile, looked up by the caller's user id.
type ProfileService interface {
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Upsert(ctx context.Context, userID string, input ProfileInput) (*models.Profile, error)
	DeleteAccount(ctx context.Context, userID string) error
	AddExperience(ctx context.Context, userID string, exp models.Experience) (*models.Profile, error)
	RemoveExperience(ctx context.Context, userID, expID string) (*models.Profile, error)
	AddEducation(ctx context.Context, userID string, edu models.Education) (*models.Profile, error)
	RemoveEducation(ctx context.Context, userID, eduID string) (*models.Profile, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	now         func() time.Time
}

// NewProfileService creates a ProfileService
func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository, now func() time.Time) ProfileService {
	if now == nil {
		now = time.Now
	}
	return &profileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		now:         now,
	}
}

// GetByUserID returns the profile owned by userID
func (s *profileService) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, lookupError(err, ErrProfileNotFound)
	}
	return profile, nil
}

// List returns every profile
func (s *profileService) List(ctx context.Context) ([]models.Profile, error) {
	return s.profileRepo.List(ctx)
}

// Upsert creates the caller's profile or overwrites the submitted fields
func (s *profileService) Upsert(ctx context.Context, userID string, input ProfileInput) (*models.Profile, error) {
	skills := cleanSkills(input.Skills)
	var fields []FieldError
	if strings.TrimSpace(input.Status) == "" {
		fields = append(fields, FieldError{Field: "status", Msg: "Status is required"})
	}
	if len(skills) == 0 {
		fields = append(fields, FieldError{Field: "skills", Msg: "Skills is required"})
	}
	if len(fields) > 0 {
		return nil, NewValidationError(fields...)
	}

	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrNotFound):
		if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
			return nil, lookupError(err, ErrUserNotFound)
		}
		profile = &models.Profile{
			UserID:     userID,
			Experience: []models.Experience{},
			Education:  []models.Education{},
			Date:       s.now(),
		}
	default:
		return nil, err
	}

	setIfPresent(&profile.Company, input.Company)
	setIfPresent(&profile.Website, input.Website)
	setIfPresent(&profile.Location, input.Location)
	setIfPresent(&profile.Bio, input.Bio)
	setIfPresent(&profile.Status, input.Status)
	setIfPresent(&profile.GithubUsername, input.GithubUsername)
	profile.Skills = skills
	profile.Social = input.Social

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, lookupError(err, ErrProfileNotFound)
	}
	return s.GetByUserID(ctx, userID)
}

// DeleteAccount removes the caller's profile and then the user
func (s *profileService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.profileRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, userID)
}

// AddExperience prepends a job to the caller's profile
func (s *profileService) AddExperience(ctx context.Context, userID string, exp models.Experience) (*models.Profile, error) {
	var fields []FieldError
	if strings.TrimSpace(exp.Title) == "" {
		fields = append(fields, FieldError{Field: "title", Msg: "Title is required"})
	}
	if strings.TrimSpace(exp.Company) == "" {
		fields = append(fields, FieldError{Field: "company", Msg: "Company is required"})
	}
	if exp.From.IsZero() {
		fields = append(fields, FieldError{Field: "from", Msg: "From date is required"})
	}
	if len(fields) > 0 {
		return nil, NewValidationError(fields...)
	}

	profile, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	exp.ID = uuid.NewString()
	profile.Experience = append([]models.Experience{exp}, profile.Experience...)
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, lookupError(err, ErrProfileNotFound)
	}
	return profile, nil
}

// RemoveExperience deletes one job from the caller's profile
func (s *profileService) RemoveExperience(ctx context.Context, userID, expID string) (*models.Profile, error) {
	profile, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, exp := range profile.Experience {
		if exp.ID == expID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrExperienceNotFound
	}

	profile.Experience = append(profile.Experience[:idx], profile.Experience[idx+1:]...)
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, lookupError(err, ErrProfileNotFound)
	}
	return profile, nil
}

// AddEducation prepends a school to the caller's profile
func (s *profileService) AddEducation(ctx context.Context, userID string, edu models.Education) (*models.Profile, error) {
	var fields []FieldError
	if strings.TrimSpace(edu.School) == "" {
		fields = append(fields, FieldError{Field: "school", Msg: "School is required"})
	}
	if strings.TrimSpace(edu.Degree) == "" {
		fields = append(fields, FieldError{Field: "degree", Msg: "Degree is required"})
	}
	if strings.TrimSpace(edu.FieldOfStudy) == "" {
		fields = append(fields, FieldError{Field: "fieldofstudy", Msg: "Field of study is required"})
	}
	if edu.From.IsZero() {
		fields = append(fields, FieldError{Field: "from", Msg: "From date is required"})
	}
	if len(fields) > 0 {
		return nil, NewValidationError(fields...)
	}

	profile, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	edu.ID = uuid.NewString()
	profile.Education = append([]models.Education{edu}, profile.Education...)
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, lookupError(err, ErrProfileNotFound)
	}
	return profile, nil
}

// RemoveEducation deletes one school from the caller's profile
func (s *profileService) RemoveEducation(ctx context.Context, userID, eduID string) (*models.Profile, error) {
	profile, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, edu := range profile.Education {
		if edu.ID == eduID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrEducationNotFound
	}

	profile.Education = append(profile.Education[:idx], profile.Education[idx+1:]...)
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, lookupError(err, ErrProfileNotFound)
	}
	return profile, nil
}

func setIfPresent(dst *string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*dst = v
	}
}

// cleanSkills trims entries and drops empty ones, keeping order.
func cleanSkills(skills []string) []string {
	cleaned := make([]string, 0, len(skills))
	for _, skill := range skills {
		if skill = strings.TrimSpace(skill); skill != "" {
			cleaned = append(cleaned, skill)
		}
	}
	return cleaned
}
