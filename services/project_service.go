package services

import (
	"context"

	"vedang.dev/configs/configslog"
	"vedang.dev/models"
	"vedang.dev/pkg/queryparams"
	"vedang.dev/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProjectServiceError is the typed error for project operations.
type ProjectServiceError string

func (e ProjectServiceError) Error() string { return string(e) }

const (
	ErrProjectNotFound     ProjectServiceError = "project not found"
	ErrProjectInvalidInput ProjectServiceError = "invalid project input"
)

// Listing caps for the public views.
const (
	FeaturedProjectLimit = 6
	RelatedProjectLimit  = 3
	QuickSearchLimit     = 5
)

// ProjectSummary is the quick-search projection. Image carries the raw blob
// reference; the API handler resolves it to a URL.
type ProjectSummary struct {
	Title       string
	URL         string
	Description string
	Image       *string
}

// IProjectService is the read side of the project collection plus the panel
// mutations.
type IProjectService interface {
	GetFeaturedProjects(ctx context.Context) ([]models.Project, error)
	ListProjects(ctx context.Context, filter queryparams.ProjectFilter) ([]models.Project, error)
	GetTechnologyFacets(ctx context.Context) ([]models.Skill, error)
	GetProjectByID(ctx context.Context, id string) (*models.Project, error)
	GetRelatedProjects(ctx context.Context, project *models.Project) ([]models.Project, error)
	QuickSearch(ctx context.Context, query string) ([]ProjectSummary, error)

	AttachTechnologiesByName(ctx context.Context, project *models.Project, names []string) error

	GetProjectsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	CreateProject(ctx context.Context, project *models.Project, technologyIDs []uint) error
	UpdateProject(ctx context.Context, id string, data map[string]interface{}, technologyIDs []uint) error
	DeleteProject(ctx context.Context, id string) error
}

type ProjectService struct {
	repo      repositories.IProjectRepository
	skillRepo repositories.ISkillRepository
}

func NewProjectService() IProjectService {
	return &ProjectService{
		repo:      repositories.NewProjectRepository(),
		skillRepo: repositories.NewSkillRepository(),
	}
}

func (s *ProjectService) GetFeaturedProjects(ctx context.Context) ([]models.Project, error) {
	return s.repo.FindFeaturedProjects(FeaturedProjectLimit)
}

// ListProjects returns the filtered listing. Empty filter fields mean no
// filter; unknown tech or status values simply match nothing.
func (s *ProjectService) ListProjects(ctx context.Context, filter queryparams.ProjectFilter) ([]models.Project, error) {
	return s.repo.GetAllProjects(filter)
}

// GetTechnologyFacets returns the skills usable as tech filter options:
// only skills linked to at least one project.
func (s *ProjectService) GetTechnologyFacets(ctx context.Context) ([]models.Skill, error) {
	return s.skillRepo.FindLinkedSkills()
}

// GetProjectByID resolves the opaque id. A malformed id behaves like an
// unknown one.
func (s *ProjectService) GetProjectByID(ctx context.Context, id string) (*models.Project, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrProjectNotFound
	}
	project, err := s.repo.FindProjectByID(parsed)
	if err == repositories.ErrNotFound {
		return nil, ErrProjectNotFound
	}
	return project, err
}

// GetRelatedProjects returns up to three other projects sharing a technology
// with the given one.
func (s *ProjectService) GetRelatedProjects(ctx context.Context, project *models.Project) ([]models.Project, error) {
	skillIDs := make([]uint, 0, len(project.Technologies))
	for _, t := range project.Technologies {
		skillIDs = append(skillIDs, t.ID)
	}
	return s.repo.FindRelatedProjects(project.ID, skillIDs, RelatedProjectLimit)
}

// QuickSearch is the lightweight search behind the ajax endpoint: title or
// description substring only, at most five summaries. An empty query yields
// an empty result.
func (s *ProjectService) QuickSearch(ctx context.Context, query string) ([]ProjectSummary, error) {
	if query == "" {
		return []ProjectSummary{}, nil
	}
	projects, err := s.repo.SearchByTitleOrDescription(query, QuickSearchLimit)
	if err != nil {
		return nil, err
	}
	results := make([]ProjectSummary, 0, len(projects))
	for _, p := range projects {
		summary := ProjectSummary{
			Title:       p.Title,
			URL:         p.DetailPath(),
			Description: p.ShortDescription,
		}
		if p.Image != "" {
			img := p.Image
			summary.Image = &img
		}
		results = append(results, summary)
	}
	return results, nil
}

// AttachTechnologiesByName links skills to the project by name, creating any
// that are missing. The lookup is a case-insensitive substring match; a miss
// creates a new skill in the "other" category with the default proficiency.
// Linking an already-linked skill is a no-op. Used by the bulk-load tool
// only, never by request handlers.
func (s *ProjectService) AttachTechnologiesByName(ctx context.Context, project *models.Project, names []string) error {
	for _, name := range names {
		skill, err := s.skillRepo.FindBySubstring(name)
		if err == repositories.ErrNotFound {
			skill = &models.Skill{Name: name, Category: models.SkillCategoryOther, Proficiency: 50}
			if cerr := s.skillRepo.CreateSkill(ctx, skill); cerr != nil {
				configslog.Log.Error("Failed to create skill for attachment",
					zap.String("name", name), zap.Error(cerr))
				return cerr
			}
		} else if err != nil {
			return err
		}
		if err := s.repo.AttachTechnology(ctx, project, skill); err != nil {
			return err
		}
	}
	return nil
}

func (s *ProjectService) GetProjectsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	projects, total, err := s.repo.GetAllProjectsPaginated(params)
	if err != nil {
		return nil, err
	}
	return queryparams.NewPaginatedResult(projects, params, total), nil
}

func (s *ProjectService) CreateProject(ctx context.Context, project *models.Project, technologyIDs []uint) error {
	if project.Title == "" {
		return ErrProjectInvalidInput
	}
	if project.Status != "" && !models.ValidProjectStatus(project.Status) {
		return ErrProjectInvalidInput
	}
	if err := s.repo.CreateProject(ctx, project); err != nil {
		configslog.Log.Error("Failed to create project", zap.String("title", project.Title), zap.Error(err))
		return err
	}
	return s.setTechnologies(ctx, project, technologyIDs)
}

func (s *ProjectService) UpdateProject(ctx context.Context, id string, data map[string]interface{}, technologyIDs []uint) error {
	project, err := s.GetProjectByID(ctx, id)
	if err != nil {
		return err
	}
	if status, ok := data["status"].(string); ok && !models.ValidProjectStatus(status) {
		return ErrProjectInvalidInput
	}
	if err := s.repo.UpdateProject(ctx, project.ID, data); err != nil {
		configslog.Log.Error("Failed to update project", zap.String("id", id), zap.Error(err))
		return err
	}
	return s.setTechnologies(ctx, project, technologyIDs)
}

func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	project, err := s.GetProjectByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteProject(ctx, project.ID); err != nil {
		configslog.Log.Error("Failed to delete project", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// setTechnologies replaces the project's links with the skills named by ids.
// A nil slice leaves the links untouched; an empty one clears them.
func (s *ProjectService) setTechnologies(ctx context.Context, project *models.Project, technologyIDs []uint) error {
	if technologyIDs == nil {
		return nil
	}
	skills := make([]models.Skill, 0, len(technologyIDs))
	for _, id := range technologyIDs {
		skill, err := s.skillRepo.FindSkillByID(id)
		if err == repositories.ErrNotFound {
			continue
		}
		if err != nil {
			return err
		}
		skills = append(skills, *skill)
	}
	return s.repo.ReplaceTechnologies(ctx, project, skills)
}
