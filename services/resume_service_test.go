package services

import (
	"context"
	"sync"
	"testing"

	"vedang.dev/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func countActiveResumes(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Resume{}).Where("is_active = ?", true).Count(&n).Error)
	return n
}

func TestSaveResumeKeepsExactlyOneActive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewResumeService()
	ctx := context.Background()

	first := &models.Resume{Title: "Resume 2024", File: "portfolio/documents/resume-2024.pdf", IsActive: true}
	require.NoError(t, svc.SaveResume(ctx, first))
	assert.EqualValues(t, 1, countActiveResumes(t, db))

	second := &models.Resume{Title: "Resume 2025", File: "portfolio/documents/resume-2025.pdf", IsActive: true}
	require.NoError(t, svc.SaveResume(ctx, second))

	assert.EqualValues(t, 1, countActiveResumes(t, db))
	active, err := svc.GetActiveResume(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)

	var reloaded models.Resume
	require.NoError(t, db.First(&reloaded, first.ID).Error)
	assert.False(t, reloaded.IsActive)
}

func TestSaveResumeInactiveLeavesActiveAlone(t *testing.T) {
	db := setupTestDB(t)
	svc := NewResumeService()
	ctx := context.Background()

	active := &models.Resume{File: "portfolio/documents/a.pdf", IsActive: true}
	require.NoError(t, svc.SaveResume(ctx, active))

	archived := &models.Resume{File: "portfolio/documents/b.pdf", IsActive: false}
	require.NoError(t, svc.SaveResume(ctx, archived))

	assert.EqualValues(t, 1, countActiveResumes(t, db))
	current, err := svc.GetActiveResume(ctx)
	require.NoError(t, err)
	assert.Equal(t, active.ID, current.ID)

	// The false flag must survive the INSERT itself; a column default would
	// otherwise overwrite it and leave two active rows.
	var stored models.Resume
	require.NoError(t, db.First(&stored, archived.ID).Error)
	assert.False(t, stored.IsActive)
}

func TestSaveResumeReactivatesOlderUpload(t *testing.T) {
	db := setupTestDB(t)
	svc := NewResumeService()
	ctx := context.Background()

	old := &models.Resume{File: "portfolio/documents/old.pdf", IsActive: true}
	require.NoError(t, svc.SaveResume(ctx, old))
	newer := &models.Resume{File: "portfolio/documents/new.pdf", IsActive: true}
	require.NoError(t, svc.SaveResume(ctx, newer))

	old.IsActive = true
	require.NoError(t, svc.SaveResume(ctx, old))

	assert.EqualValues(t, 1, countActiveResumes(t, db))
	active, err := svc.GetActiveResume(ctx)
	require.NoError(t, err)
	assert.Equal(t, old.ID, active.ID)
}

func TestSaveResumeConcurrentActivations(t *testing.T) {
	db := setupTestDB(t)
	svc := NewResumeService()
	ctx := context.Background()

	first := &models.Resume{File: "portfolio/documents/first.pdf", IsActive: true}
	second := &models.Resume{File: "portfolio/documents/second.pdf", IsActive: true}

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for _, r := range []*models.Resume{first, second} {
		wg.Add(1)
		go func(r *models.Resume) {
			defer wg.Done()
			errs <- svc.SaveResume(ctx, r)
		}(r)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	// Whichever activation commits last wins; the transaction must never
	// leave zero or two active rows.
	assert.EqualValues(t, 1, countActiveResumes(t, db))
	active, err := svc.GetActiveResume(ctx)
	require.NoError(t, err)
	assert.Contains(t, []uint{first.ID, second.ID}, active.ID)
}

func TestSaveResumeRejectsMissingFile(t *testing.T) {
	setupTestDB(t)
	svc := NewResumeService()

	err := svc.SaveResume(context.Background(), &models.Resume{Title: "No file"})
	assert.ErrorIs(t, err, ErrResumeInvalidInput)
}

func TestGetActiveResumeWhenNoneExists(t *testing.T) {
	setupTestDB(t)
	svc := NewResumeService()

	_, err := svc.GetActiveResume(context.Background())
	assert.ErrorIs(t, err, ErrNoActiveResume)
}
