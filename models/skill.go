package models

// Skill category codes. The raw code is what gets persisted and what the
// skills API returns; CategoryLabel maps it to the display label used when
// grouping on the about page.
const (
	SkillCategoryProgramming = "programming"
	SkillCategoryFramework   = "framework"
	SkillCategoryDatabase    = "database"
	SkillCategoryTool        = "tool"
	SkillCategoryAIML        = "ai_ml"
	SkillCategoryOther       = "other"
)

var skillCategoryLabels = map[string]string{
	SkillCategoryProgramming: "Programming Languages",
	SkillCategoryFramework:   "Frameworks",
	SkillCategoryDatabase:    "Databases",
	SkillCategoryTool:        "Tools",
	SkillCategoryAIML:        "AI & Machine Learning",
	SkillCategoryOther:       "Other",
}

// Skill is a technology or competency on the owner's profile. Name is the
// natural key for upsert operations.
type Skill struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" form:"name"`
	Category    string `gorm:"type:varchar(20);not null;default:'other'" form:"category"`
	Proficiency int    `gorm:"not null;default:50" form:"proficiency"`
	Icon        string `gorm:"type:varchar(100)" form:"icon"`
	IsFeatured  bool   `gorm:"default:false;index" form:"is_featured"`

	Projects []Project `gorm:"many2many:project_technologies;"`
}

// CategoryLabel returns the human-readable label for the skill's category
// code. Unknown codes fall back to the "Other" label.
func (s Skill) CategoryLabel() string {
	if label, ok := skillCategoryLabels[s.Category]; ok {
		return label
	}
	return skillCategoryLabels[SkillCategoryOther]
}

// SkillCategories lists the valid category codes, in display order.
func SkillCategories() []string {
	return []string{
		SkillCategoryProgramming,
		SkillCategoryFramework,
		SkillCategoryDatabase,
		SkillCategoryTool,
		SkillCategoryAIML,
		SkillCategoryOther,
	}
}
