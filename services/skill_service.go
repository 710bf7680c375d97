package services

import (
	"context"
	"strings"

	"vedang.dev/configs/configslog"
	"vedang.dev/models"
	"vedang.dev/pkg/queryparams"
	"vedang.dev/repositories"

	"go.uber.org/zap"
)

// SkillServiceError is the typed error for skill operations.
type SkillServiceError string

func (e SkillServiceError) Error() string { return string(e) }

const (
	ErrSkillNotFound     SkillServiceError = "skill not found"
	ErrSkillInvalidInput SkillServiceError = "invalid skill input"
)

// FeaturedSkillLimit caps the home page skill strip.
const FeaturedSkillLimit = 8

// SkillGroup is one about-page group: a category display label with its
// skills in default order.
type SkillGroup struct {
	Label  string
	Skills []models.Skill
}

// SkillProjection is the shape of one entry on the skills API: the raw
// category code, not the display label.
type SkillProjection struct {
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
	Category    string `json:"category"`
	Icon        string `json:"icon"`
}

// ISkillService is the skill read and write surface.
type ISkillService interface {
	GetAllSkills(ctx context.Context) ([]models.Skill, error)
	GetFeaturedSkills(ctx context.Context) ([]models.Skill, error)
	GetSkillsByCategory(ctx context.Context) ([]SkillGroup, error)
	GetSkillProjections(ctx context.Context) ([]SkillProjection, error)
	UpsertSkillByName(ctx context.Context, name string, proficiency int) (created bool, skill *models.Skill, err error)

	GetSkillsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	GetSkillByID(ctx context.Context, id uint) (*models.Skill, error)
	CreateSkill(ctx context.Context, skill *models.Skill) error
	UpdateSkill(ctx context.Context, id uint, data map[string]interface{}) error
	DeleteSkill(ctx context.Context, id uint) error
}

type SkillService struct {
	repo repositories.ISkillRepository
}

func NewSkillService() ISkillService {
	return &SkillService{repo: repositories.NewSkillRepository()}
}

func (s *SkillService) GetAllSkills(ctx context.Context) ([]models.Skill, error) {
	return s.repo.GetAllSkills()
}

func (s *SkillService) GetFeaturedSkills(ctx context.Context) ([]models.Skill, error) {
	return s.repo.FindFeaturedSkills(FeaturedSkillLimit)
}

// GetSkillsByCategory partitions every skill into groups keyed by the
// category display label. One pass over the default-ordered collection;
// groups appear in first-encounter order, each skill lands in exactly one.
func (s *SkillService) GetSkillsByCategory(ctx context.Context) ([]SkillGroup, error) {
	skills, err := s.repo.GetAllSkills()
	if err != nil {
		return nil, err
	}

	var groups []SkillGroup
	index := make(map[string]int)
	for _, skill := range skills {
		label := skill.CategoryLabel()
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, SkillGroup{Label: label})
		}
		groups[i].Skills = append(groups[i].Skills, skill)
	}
	return groups, nil
}

func (s *SkillService) GetSkillProjections(ctx context.Context) ([]SkillProjection, error) {
	skills, err := s.repo.GetAllSkills()
	if err != nil {
		return nil, err
	}
	projections := make([]SkillProjection, 0, len(skills))
	for _, skill := range skills {
		projections = append(projections, SkillProjection{
			Name:        skill.Name,
			Proficiency: skill.Proficiency,
			Category:    skill.Category,
			Icon:        skill.Icon,
		})
	}
	return projections, nil
}

// UpsertSkillByName finds a skill by its exact name and overwrites its
// proficiency, or creates it when absent. Reports which branch ran.
func (s *SkillService) UpsertSkillByName(ctx context.Context, name string, proficiency int) (bool, *models.Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" || proficiency < 0 || proficiency > 100 {
		return false, nil, ErrSkillInvalidInput
	}

	skill, err := s.repo.FindByExactName(name)
	if err == repositories.ErrNotFound {
		skill = &models.Skill{Name: name, Proficiency: proficiency, Category: models.SkillCategoryOther}
		if err := s.repo.CreateSkill(ctx, skill); err != nil {
			configslog.Log.Error("Failed to create skill", zap.String("name", name), zap.Error(err))
			return false, nil, err
		}
		return true, skill, nil
	}
	if err != nil {
		return false, nil, err
	}

	if err := s.repo.UpdateSkill(ctx, skill.ID, map[string]interface{}{"proficiency": proficiency}); err != nil {
		configslog.Log.Error("Failed to update skill proficiency", zap.String("name", name), zap.Error(err))
		return false, nil, err
	}
	skill.Proficiency = proficiency
	return false, skill, nil
}

func (s *SkillService) GetSkillsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	skills, total, err := s.repo.GetAllSkillsPaginated(params)
	if err != nil {
		return nil, err
	}
	return queryparams.NewPaginatedResult(skills, params, total), nil
}

func (s *SkillService) GetSkillByID(ctx context.Context, id uint) (*models.Skill, error) {
	skill, err := s.repo.FindSkillByID(id)
	if err == repositories.ErrNotFound {
		return nil, ErrSkillNotFound
	}
	return skill, err
}

func (s *SkillService) CreateSkill(ctx context.Context, skill *models.Skill) error {
	if skill.Name == "" {
		return ErrSkillInvalidInput
	}
	if skill.Category == "" {
		skill.Category = models.SkillCategoryOther
	}
	return s.repo.CreateSkill(ctx, skill)
}

func (s *SkillService) UpdateSkill(ctx context.Context, id uint, data map[string]interface{}) error {
	err := s.repo.UpdateSkill(ctx, id, data)
	if err == repositories.ErrNotFound {
		return ErrSkillNotFound
	}
	return err
}

func (s *SkillService) DeleteSkill(ctx context.Context, id uint) error {
	err := s.repo.DeleteSkill(ctx, id)
	if err == repositories.ErrNotFound {
		return ErrSkillNotFound
	}
	return err
}
