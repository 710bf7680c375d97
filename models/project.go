package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project status values.
const (
	ProjectStatusCompleted  = "completed"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusPlanned    = "planned"
)

// Project is a portfolio entry. The primary key is a UUID rather than a
// sequence so public detail URLs are not enumerable.
//
// Default listing order is featured first, then DisplayOrder ascending, then
// newest first (see ProjectDefaultOrder).
type Project struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title            string    `gorm:"type:varchar(200);not null" form:"title"`
	ShortDescription string    `gorm:"type:varchar(250)" form:"short_description"`
	Description      string    `gorm:"type:text" form:"description"`
	Image            string    `gorm:"type:varchar(255)"` // blob store reference, empty when unset
	GitHubURL        string    `gorm:"type:varchar(200)" form:"github_url"`
	LiveURL          string    `gorm:"type:varchar(200)" form:"live_url"`
	Status           string    `gorm:"type:varchar(20);not null;default:'completed';index" form:"status"`
	IsFeatured       bool      `gorm:"default:false;index" form:"is_featured"`
	DisplayOrder     int       `gorm:"not null;default:0" form:"display_order"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`

	Technologies []Skill `gorm:"many2many:project_technologies;"`
}

// ProjectDefaultOrder is the composite ordering applied to every project
// listing unless a call site overrides it.
const ProjectDefaultOrder = "is_featured DESC, display_order ASC, created_at DESC"

// BeforeCreate assigns the opaque id when one was not provided.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// DetailPath is the public URL path of the project's detail page. Value
// receiver so templates can call it on ranged elements.
func (p Project) DetailPath() string {
	return "/projects/" + p.ID.String()
}

// UsesTechnology reports whether the skill is linked to the project.
// Technologies must be loaded.
func (p Project) UsesTechnology(skillID uint) bool {
	for _, t := range p.Technologies {
		if t.ID == skillID {
			return true
		}
	}
	return false
}

// ValidProjectStatus reports whether s is one of the known status values.
func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectStatusCompleted, ProjectStatusInProgress, ProjectStatusPlanned:
		return true
	}
	return false
}
