package repositories

import (
	"context"
	"errors"

	"vedang.dev/configs/configsdatabase"
	"vedang.dev/models"

	"gorm.io/gorm"
)

// IProfileRepository reads and writes the owner profile. The profile is a
// singleton by convention: GetProfile always returns the first row by id.
type IProfileRepository interface {
	GetProfile() (*models.Profile, error)
	CreateProfile(ctx context.Context, profile *models.Profile) error
	UpdateProfile(ctx context.Context, id uint, data map[string]interface{}) error
}

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository() IProfileRepository {
	return &ProfileRepository{db: configsdatabase.GetDB()}
}

// GetProfile returns the first profile row, or ErrNotFound when none exists.
func (r *ProfileRepository) GetProfile() (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Order("id ASC").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) CreateProfile(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *ProfileRepository) UpdateProfile(ctx context.Context, id uint, data map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.Profile{}).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
