package repositories

import (
	"context"
	"errors"
	"strings"

	"vedang.dev/configs/configsdatabase"
	"vedang.dev/models"
	"vedang.dev/pkg/queryparams"

	"gorm.io/gorm"
)

// SkillDefaultOrder is the ordering applied to every skill listing.
const SkillDefaultOrder = "proficiency DESC, name ASC"

// ISkillRepository is the data access surface for skills.
//
// Name matching deliberately differs per method: FindByExactName is
// case-sensitive (upsert key), FindByNameFold is case-insensitive exact
// (facet filter), FindBySubstring is case-insensitive substring (bulk
// attachment). Do not unify them.
type ISkillRepository interface {
	GetAllSkills() ([]models.Skill, error)
	GetAllSkillsPaginated(params queryparams.ListParams) ([]models.Skill, int64, error)
	FindFeaturedSkills(limit int) ([]models.Skill, error)
	FindLinkedSkills() ([]models.Skill, error)
	FindSkillByID(id uint) (*models.Skill, error)
	FindByExactName(name string) (*models.Skill, error)
	FindBySubstring(name string) (*models.Skill, error)
	CreateSkill(ctx context.Context, skill *models.Skill) error
	SaveSkill(ctx context.Context, skill *models.Skill) error
	UpdateSkill(ctx context.Context, id uint, data map[string]interface{}) error
	DeleteSkill(ctx context.Context, id uint) error
}

type SkillRepository struct {
	base *BaseRepository[models.Skill]
	db   *gorm.DB
}

func NewSkillRepository() ISkillRepository {
	db := configsdatabase.GetDB()
	base := NewBaseRepository[models.Skill](db)
	base.SetAllowedSortColumns([]string{"proficiency", "name", "category", "created_at", "id"})
	return &SkillRepository{base: base, db: db}
}

func (r *SkillRepository) GetAllSkills() ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.Order(SkillDefaultOrder).Find(&skills).Error
	return skills, err
}

func (r *SkillRepository) GetAllSkillsPaginated(params queryparams.ListParams) ([]models.Skill, int64, error) {
	return r.base.GetAll(params)
}

func (r *SkillRepository) FindFeaturedSkills(limit int) ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.Where("is_featured = ?", true).Order(SkillDefaultOrder).Limit(limit).Find(&skills).Error
	return skills, err
}

// FindLinkedSkills returns skills attached to at least one project. These are
// the technology facet options on the projects page.
func (r *SkillRepository) FindLinkedSkills() ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.
		Where("id IN (?)", r.db.Table("project_technologies").Select("skill_id")).
		Order(SkillDefaultOrder).
		Find(&skills).Error
	return skills, err
}

func (r *SkillRepository) FindSkillByID(id uint) (*models.Skill, error) {
	return r.base.FindByID(id)
}

// FindByExactName matches the name exactly, case-sensitively.
func (r *SkillRepository) FindByExactName(name string) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.Where("name = ?", name).First(&skill).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// FindBySubstring returns the first skill (by id) whose name contains the
// given text, case-insensitively.
func (r *SkillRepository) FindBySubstring(name string) (*models.Skill, error) {
	var skill models.Skill
	pattern := "%" + strings.ToLower(name) + "%"
	err := r.db.Where("LOWER(name) LIKE ?", pattern).Order("id ASC").First(&skill).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepository) CreateSkill(ctx context.Context, skill *models.Skill) error {
	return r.base.Create(ctx, skill)
}

func (r *SkillRepository) SaveSkill(ctx context.Context, skill *models.Skill) error {
	return r.db.WithContext(ctx).Save(skill).Error
}

func (r *SkillRepository) UpdateSkill(ctx context.Context, id uint, data map[string]interface{}) error {
	return r.base.Update(ctx, id, data)
}

func (r *SkillRepository) DeleteSkill(ctx context.Context, id uint) error {
	return r.base.Delete(ctx, id)
}
