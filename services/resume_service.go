package services

import (
	"context"

	"vedang.dev/configs/configsdatabase"
	"vedang.dev/configs/configslog"
	"vedang.dev/models"
	"vedang.dev/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ResumeServiceError is the typed error for resume operations.
type ResumeServiceError string

func (e ResumeServiceError) Error() string { return string(e) }

const (
	ErrResumeNotFound     ResumeServiceError = "resume not found"
	ErrNoActiveResume     ResumeServiceError = "no active resume"
	ErrResumeInvalidInput ResumeServiceError = "invalid resume input"
)

// IResumeService owns the singleton-active invariant: after any save with
// IsActive set, exactly one resume row is active.
type IResumeService interface {
	GetActiveResume(ctx context.Context) (*models.Resume, error)
	GetAllResumes(ctx context.Context) ([]models.Resume, error)
	GetResumeByID(ctx context.Context, id uint) (*models.Resume, error)
	SaveResume(ctx context.Context, resume *models.Resume) error
	DeleteResume(ctx context.Context, id uint) error
}

type ResumeService struct {
	repo repositories.IResumeRepository
	db   *gorm.DB // transaction scope for the activation rule
}

func NewResumeService() IResumeService {
	return &ResumeService{
		repo: repositories.NewResumeRepository(),
		db:   configsdatabase.GetDB(),
	}
}

func (s *ResumeService) GetActiveResume(ctx context.Context) (*models.Resume, error) {
	resume, err := s.repo.FindActiveResume()
	if err == repositories.ErrNotFound {
		return nil, ErrNoActiveResume
	}
	return resume, err
}

func (s *ResumeService) GetAllResumes(ctx context.Context) ([]models.Resume, error) {
	return s.repo.GetAllResumes()
}

func (s *ResumeService) GetResumeByID(ctx context.Context, id uint) (*models.Resume, error) {
	resume, err := s.repo.FindResumeByID(id)
	if err == repositories.ErrNotFound {
		return nil, ErrResumeNotFound
	}
	return resume, err
}

// SaveResume persists the row. When it is marked active, every other row's
// flag is cleared inside the same transaction, so concurrent activations
// cannot leave zero or two active rows. Saving an inactive row touches
// nothing else.
func (s *ResumeService) SaveResume(ctx context.Context, resume *models.Resume) error {
	if resume.File == "" {
		return ErrResumeInvalidInput
	}

	if !resume.IsActive {
		return s.repo.SaveResume(ctx, s.db, resume)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.DeactivateOthers(ctx, tx, resume.ID); err != nil {
			return err
		}
		return s.repo.SaveResume(ctx, tx, resume)
	})
	if err != nil {
		configslog.Log.Error("Resume activation failed", zap.Uint("id", resume.ID), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Resume %d saved as the active resume", resume.ID)
	return nil
}

func (s *ResumeService) DeleteResume(ctx context.Context, id uint) error {
	err := s.repo.DeleteResume(ctx, id)
	if err == repositories.ErrNotFound {
		return ErrResumeNotFound
	}
	return err
}
