package repositories

import (
	"context"
	"errors"

	"vedang.dev/configs/configsdatabase"
	"vedang.dev/models"

	"gorm.io/gorm"
)

// IResumeRepository is the data access surface for resumes. The singleton
// active-flag invariant itself lives in ResumeService; this layer only
// supplies the building blocks it runs inside a transaction.
type IResumeRepository interface {
	GetAllResumes() ([]models.Resume, error)
	FindResumeByID(id uint) (*models.Resume, error)
	FindActiveResume() (*models.Resume, error)
	SaveResume(ctx context.Context, tx *gorm.DB, resume *models.Resume) error
	DeactivateOthers(ctx context.Context, tx *gorm.DB, exceptID uint) error
	DeleteResume(ctx context.Context, id uint) error
}

type ResumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository() IResumeRepository {
	return &ResumeRepository{db: configsdatabase.GetDB()}
}

func (r *ResumeRepository) GetAllResumes() ([]models.Resume, error) {
	var resumes []models.Resume
	err := r.db.Order("uploaded_at DESC").Find(&resumes).Error
	return resumes, err
}

func (r *ResumeRepository) FindResumeByID(id uint) (*models.Resume, error) {
	var resume models.Resume
	err := r.db.First(&resume, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

// FindActiveResume returns the newest resume marked active, or ErrNotFound.
func (r *ResumeRepository) FindActiveResume() (*models.Resume, error) {
	var resume models.Resume
	err := r.db.Where("is_active = ?", true).Order("uploaded_at DESC").First(&resume).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

// SaveResume upserts the row inside the given transaction handle.
func (r *ResumeRepository) SaveResume(ctx context.Context, tx *gorm.DB, resume *models.Resume) error {
	return tx.WithContext(ctx).Save(resume).Error
}

// DeactivateOthers clears is_active on every row except the given one.
// exceptID 0 clears every row (used before inserting a new active resume).
func (r *ResumeRepository) DeactivateOthers(ctx context.Context, tx *gorm.DB, exceptID uint) error {
	query := tx.WithContext(ctx).Model(&models.Resume{}).Where("is_active = ?", true)
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}
	return query.Update("is_active", false).Error
}

func (r *ResumeRepository) DeleteResume(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Resume{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
