package models

// Profile holds the site owner's public identity. By convention a single row
// exists; consumers always read the first row by id. Cardinality is not
// enforced by the schema.
type Profile struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);not null" form:"name"`
	Tagline      string `gorm:"type:varchar(200)" form:"tagline"`
	Bio          string `gorm:"type:text" form:"bio"`
	Email        string `gorm:"type:varchar(254);not null" form:"email"`
	GitHubURL    string `gorm:"type:varchar(200)" form:"github_url"`
	LinkedinURL  string `gorm:"type:varchar(200)" form:"linkedin_url"`
	TwitterURL   string `gorm:"type:varchar(200)" form:"twitter_url"`
	Location     string `gorm:"type:varchar(100)" form:"location"`
	ProfileImage string `gorm:"type:varchar(255)"` // blob store reference, empty when unset
}
