package services

import (
	"context"

	"vedang.dev/configs/configslog"
	"vedang.dev/models"
	"vedang.dev/repositories"

	"go.uber.org/zap"
)

// IProfileService reads and updates the owner profile.
type IProfileService interface {
	GetProfile(ctx context.Context) (*models.Profile, error)
	SaveProfile(ctx context.Context, data map[string]interface{}) error
}

type ProfileService struct {
	repo repositories.IProfileRepository
}

func NewProfileService() IProfileService {
	return &ProfileService{repo: repositories.NewProfileRepository()}
}

// GetProfile returns the profile, or nil when none has been created yet.
// Public pages render fine without one.
func (s *ProfileService) GetProfile(ctx context.Context) (*models.Profile, error) {
	profile, err := s.repo.GetProfile()
	if err == repositories.ErrNotFound {
		return nil, nil
	}
	return profile, err
}

// SaveProfile updates the existing profile row, creating it when the site
// has none yet. First row wins; no second row is ever created here.
func (s *ProfileService) SaveProfile(ctx context.Context, data map[string]interface{}) error {
	profile, err := s.repo.GetProfile()
	if err == repositories.ErrNotFound {
		created := &models.Profile{}
		applyProfileData(created, data)
		if cerr := s.repo.CreateProfile(ctx, created); cerr != nil {
			configslog.Log.Error("Failed to create profile", zap.Error(cerr))
			return cerr
		}
		return nil
	}
	if err != nil {
		return err
	}
	if uerr := s.repo.UpdateProfile(ctx, profile.ID, data); uerr != nil {
		configslog.Log.Error("Failed to update profile", zap.Uint("id", profile.ID), zap.Error(uerr))
		return uerr
	}
	return nil
}

func applyProfileData(p *models.Profile, data map[string]interface{}) {
	set := func(key string, dst *string) {
		if v, ok := data[key].(string); ok {
			*dst = v
		}
	}
	set("name", &p.Name)
	set("tagline", &p.Tagline)
	set("bio", &p.Bio)
	set("email", &p.Email)
	set("github_url", &p.GitHubURL)
	set("linkedin_url", &p.LinkedinURL)
	set("twitter_url", &p.TwitterURL)
	set("location", &p.Location)
	set("profile_image", &p.ProfileImage)
}
