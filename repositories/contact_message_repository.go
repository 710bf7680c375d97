package repositories

import (
	"context"

	"vedang.dev/configs/configsdatabase"
	"vedang.dev/models"
	"vedang.dev/pkg/queryparams"

	"gorm.io/gorm"
)

// IContactMessageRepository is the data access surface for visitor messages.
type IContactMessageRepository interface {
	CreateMessage(ctx context.Context, msg *models.ContactMessage) error
	GetAllMessagesPaginated(params queryparams.ListParams) ([]models.ContactMessage, int64, error)
	FindMessageByID(id uint) (*models.ContactMessage, error)
	SetRead(ctx context.Context, id uint, read bool) error
	CountUnread() (int64, error)
	DeleteMessage(ctx context.Context, id uint) error
}

type ContactMessageRepository struct {
	base *BaseRepository[models.ContactMessage]
	db   *gorm.DB
}

func NewContactMessageRepository() IContactMessageRepository {
	db := configsdatabase.GetDB()
	base := NewBaseRepository[models.ContactMessage](db)
	base.SetAllowedSortColumns([]string{"created_at", "is_read", "id"})
	return &ContactMessageRepository{base: base, db: db}
}

func (r *ContactMessageRepository) CreateMessage(ctx context.Context, msg *models.ContactMessage) error {
	return r.base.Create(ctx, msg)
}

func (r *ContactMessageRepository) GetAllMessagesPaginated(params queryparams.ListParams) ([]models.ContactMessage, int64, error) {
	return r.base.GetAll(params)
}

func (r *ContactMessageRepository) FindMessageByID(id uint) (*models.ContactMessage, error) {
	return r.base.FindByID(id)
}

func (r *ContactMessageRepository) SetRead(ctx context.Context, id uint, read bool) error {
	return r.base.Update(ctx, id, map[string]interface{}{"is_read": read})
}

func (r *ContactMessageRepository) CountUnread() (int64, error) {
	var count int64
	err := r.db.Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&count).Error
	return count, err
}

func (r *ContactMessageRepository) DeleteMessage(ctx context.Context, id uint) error {
	return r.base.Delete(ctx, id)
}
