package repository

import (
	"context"

	"github.com/rdSoftInc/DevConnect/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository profile persistence
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Save(ctx context.Context, profile *models.Profile) error
	DeleteByUserID(ctx context.Context, userID string) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a ProfileRepository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// withOwner loads the owning user's public fields only.
func withOwner(db *gorm.DB) *gorm.DB {
	return db.Preload("User", func(tx *gorm.DB) *gorm.DB {
		return tx.Select("id", "name", "avatar")
	})
}

// FindByUserID finds the profile owned by userID
func (r *profileRepository) FindByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	if err := checkID(userID); err != nil {
		return nil, err
	}
	var profile models.Profile
	if err := withOwner(r.db.WithContext(ctx)).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

// List returns every profile
func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	profiles := []models.Profile{}
	if err := withOwner(r.db.WithContext(ctx)).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "date"}}).
		Find(&profiles).Error; err != nil {
		return nil, translate(err)
	}
	return profiles, nil
}

// Save inserts the profile, or overwrites the stored document when it has an id.
// A profile deleted since it was read is not re-created; Save reports
// ErrNotFound instead. The preloaded owner is never written back.
func (r *profileRepository) Save(ctx context.Context, profile *models.Profile) error {
	owner := profile.User
	profile.User = nil
	defer func() { profile.User = owner }()

	if profile.ID == "" {
		return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(profile).Error)
	}
	if err := checkID(profile.ID); err != nil {
		return err
	}
	return overwrite(r.db.WithContext(ctx), profile)
}

// DeleteByUserID removes the profile owned by userID, if any
func (r *profileRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if err := checkID(userID); err != nil {
		return err
	}
	return translate(r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Profile{}).Error)
}
