package repositories

import (
	"context"
	"errors"
	"strings"

	"vedang.dev/configs/configsdatabase"
	"vedang.dev/models"
	"vedang.dev/pkg/queryparams"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IProjectRepository is the data access surface for projects. All listings
// come back in models.ProjectDefaultOrder with Technologies preloaded.
type IProjectRepository interface {
	GetAllProjects(filter queryparams.ProjectFilter) ([]models.Project, error)
	GetAllProjectsPaginated(params queryparams.ListParams) ([]models.Project, int64, error)
	FindFeaturedProjects(limit int) ([]models.Project, error)
	FindProjectByID(id uuid.UUID) (*models.Project, error)
	FindRelatedProjects(projectID uuid.UUID, skillIDs []uint, limit int) ([]models.Project, error)
	SearchByTitleOrDescription(query string, limit int) ([]models.Project, error)
	CreateProject(ctx context.Context, project *models.Project) error
	UpdateProject(ctx context.Context, id uuid.UUID, data map[string]interface{}) error
	DeleteProject(ctx context.Context, id uuid.UUID) error
	ReplaceTechnologies(ctx context.Context, project *models.Project, skills []models.Skill) error
	AttachTechnology(ctx context.Context, project *models.Project, skill *models.Skill) error
	GetProjectCount() (int64, error)
}

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository() IProjectRepository {
	return &ProjectRepository{db: configsdatabase.GetDB()}
}

// technologiesMatching builds a subquery of project ids whose linked skill
// names satisfy the given WHERE fragment.
func (r *ProjectRepository) technologiesMatching(cond string, arg interface{}) *gorm.DB {
	return r.db.Table("project_technologies").
		Select("project_technologies.project_id").
		Joins("JOIN skills ON skills.id = project_technologies.skill_id").
		Where(cond, arg)
}

// GetAllProjects lists projects, narrowed by the filter. Search matches the
// title, the description or any linked skill name as a case-insensitive
// substring; tech is a case-insensitive exact match on a linked skill name;
// status is exact. All active filters are ANDed. The technology clauses go
// through id subqueries so a project matching several skills appears once.
func (r *ProjectRepository) GetAllProjects(filter queryparams.ProjectFilter) ([]models.Project, error) {
	query := r.db.Model(&models.Project{})

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(projects.title) LIKE ? OR LOWER(projects.description) LIKE ? OR projects.id IN (?)",
			pattern, pattern,
			r.technologiesMatching("LOWER(skills.name) LIKE ?", pattern),
		)
	}
	if filter.Tech != "" {
		query = query.Where(
			"projects.id IN (?)",
			r.technologiesMatching("LOWER(skills.name) = ?", strings.ToLower(filter.Tech)),
		)
	}
	if filter.Status != "" {
		query = query.Where("projects.status = ?", filter.Status)
	}

	var projects []models.Project
	err := query.
		Preload("Technologies").
		Order(models.ProjectDefaultOrder).
		Find(&projects).Error
	return projects, err
}

// GetAllProjectsPaginated lists projects for the panel.
func (r *ProjectRepository) GetAllProjectsPaginated(params queryparams.ListParams) ([]models.Project, int64, error) {
	var projects []models.Project
	var totalCount int64

	query := r.db.Model(&models.Project{})
	if params.Name != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(params.Name)+"%")
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return projects, 0, nil
	}

	err := query.
		Preload("Technologies").
		Order(models.ProjectDefaultOrder).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&projects).Error
	return projects, totalCount, err
}

func (r *ProjectRepository) FindFeaturedProjects(limit int) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.
		Where("is_featured = ?", true).
		Preload("Technologies").
		Order(models.ProjectDefaultOrder).
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) FindProjectByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Technologies").First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindRelatedProjects returns other projects sharing at least one of the
// given skills, in default order. The id subquery keeps the result
// duplicate-free when several skills are shared.
func (r *ProjectRepository) FindRelatedProjects(projectID uuid.UUID, skillIDs []uint, limit int) ([]models.Project, error) {
	if len(skillIDs) == 0 {
		return nil, nil
	}
	var projects []models.Project
	err := r.db.
		Where("projects.id <> ?", projectID).
		Where("projects.id IN (?)", r.db.Table("project_technologies").
			Select("project_id").
			Where("skill_id IN ?", skillIDs)).
		Preload("Technologies").
		Order(models.ProjectDefaultOrder).
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

// SearchByTitleOrDescription is the quick-search query: substring on the two
// text columns only, linked skills are not consulted.
func (r *ProjectRepository) SearchByTitleOrDescription(query string, limit int) ([]models.Project, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var projects []models.Project
	err := r.db.
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order(models.ProjectDefaultOrder).
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) CreateProject(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *ProjectRepository) UpdateProject(ctx context.Context, id uuid.UUID, data map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.Project{}).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteProject removes the project and clears its technology links.
func (r *ProjectRepository) DeleteProject(ctx context.Context, id uuid.UUID) error {
	project, err := r.FindProjectByID(id)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(project).Association("Technologies").Clear(); err != nil {
			return err
		}
		return tx.Delete(project).Error
	})
}

// ReplaceTechnologies sets the project's technology links to exactly the
// given skills.
func (r *ProjectRepository) ReplaceTechnologies(ctx context.Context, project *models.Project, skills []models.Skill) error {
	return r.db.WithContext(ctx).Model(project).Association("Technologies").Replace(skills)
}

// AttachTechnology links a skill to the project. Appending an existing link
// is a no-op.
func (r *ProjectRepository) AttachTechnology(ctx context.Context, project *models.Project, skill *models.Skill) error {
	return r.db.WithContext(ctx).Model(project).Association("Technologies").Append(skill)
}

func (r *ProjectRepository) GetProjectCount() (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Count(&count).Error
	return count, err
}
