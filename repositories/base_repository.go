package repositories

import (
	"context"
	"errors"
	"strings"

	"vedang.dev/pkg/queryparams"

	"gorm.io/gorm"
)

// ErrNotFound is the repository-level not-found sentinel. Repositories map
// gorm.ErrRecordNotFound onto it so services never import gorm for the check.
var ErrNotFound = errors.New("record not found")

// IBaseRepository is the generic CRUD surface shared by the entity
// repositories. Entity repositories embed or delegate to it and add their
// own query methods on top.
type IBaseRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(id uint) (*T, error)
	Update(ctx context.Context, id uint, data map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	GetCount() (int64, error)
	GetAll(params queryparams.ListParams) ([]T, int64, error)
}

// BaseRepository implements IBaseRepository for any GORM model.
type BaseRepository[T any] struct {
	db                 *gorm.DB
	allowedSortColumns map[string]bool
	defaultSortColumn  string
}

// NewBaseRepository creates a base repository with created_at as the default
// sort column.
func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{
		db:                 db,
		allowedSortColumns: map[string]bool{"id": true, "created_at": true},
		defaultSortColumn:  "created_at",
	}
}

// SetAllowedSortColumns replaces the whitelist of sortable columns. The first
// entry becomes the default sort column.
func (r *BaseRepository[T]) SetAllowedSortColumns(columns []string) {
	allowed := make(map[string]bool, len(columns))
	for _, c := range columns {
		allowed[c] = true
	}
	r.allowedSortColumns = allowed
	if len(columns) > 0 {
		r.defaultSortColumn = columns[0]
	}
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *BaseRepository[T]) FindByID(id uint) (*T, error) {
	var entity T
	err := r.db.First(&entity, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *BaseRepository[T]) Update(ctx context.Context, id uint, data map[string]interface{}) error {
	var entity T
	result := r.db.WithContext(ctx).Model(&entity).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BaseRepository[T]) Delete(ctx context.Context, id uint) error {
	var entity T
	result := r.db.WithContext(ctx).Delete(&entity, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BaseRepository[T]) GetCount() (int64, error) {
	var entity T
	var count int64
	err := r.db.Model(&entity).Count(&count).Error
	return count, err
}

// GetAll lists entities with pagination and whitelisted sorting.
func (r *BaseRepository[T]) GetAll(params queryparams.ListParams) ([]T, int64, error) {
	var entity T
	var results []T
	var totalCount int64

	query := r.db.Model(&entity)
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return results, 0, nil
	}

	sortBy := params.SortBy
	if !r.allowedSortColumns[sortBy] {
		sortBy = r.defaultSortColumn
	}
	orderBy := strings.ToLower(params.OrderBy)
	if orderBy != "asc" && orderBy != "desc" {
		orderBy = queryparams.DefaultOrderBy
	}

	err := query.
		Order(sortBy + " " + orderBy).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&results).Error
	return results, totalCount, err
}
