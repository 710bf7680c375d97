// portfolioctl is the owner's one-shot maintenance tool. It talks to the
// same services as the web app:
//
//	portfolioctl -skill "Python" -proficiency 90   upsert a skill by name
//	portfolioctl -load projects.json               bulk-load projects
//
// The load file is a JSON array of objects:
//
//	[{"title": "...", "short_description": "...", "description": "...",
//	  "github_url": "...", "status": "completed", "is_featured": true,
//	  "technologies": ["Python", "OpenCV"]}]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"vedang.dev/configs/configsdatabase"
	"vedang.dev/configs/configslog"
	"vedang.dev/models"
	"vedang.dev/services"
)

type projectInput struct {
	Title            string   `json:"title"`
	ShortDescription string   `json:"short_description"`
	Description      string   `json:"description"`
	GitHubURL        string   `json:"github_url"`
	LiveURL          string   `json:"live_url"`
	Status           string   `json:"status"`
	IsFeatured       bool     `json:"is_featured"`
	DisplayOrder     int      `json:"display_order"`
	Technologies     []string `json:"technologies"`
}

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	skillName := flag.String("skill", "", "Skill name to upsert")
	proficiency := flag.Int("proficiency", -1, "Proficiency level (0-100)")
	loadFile := flag.String("load", "", "JSON file of projects to bulk-load")
	flag.Parse()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	ctx := context.Background()

	switch {
	case *skillName != "" && *proficiency >= 0:
		upsertSkill(ctx, *skillName, *proficiency)
	case *loadFile != "":
		loadProjects(ctx, *loadFile)
	default:
		fmt.Fprintln(os.Stderr, `Usage:
  portfolioctl -skill "Python" -proficiency 90
  portfolioctl -load projects.json`)
		os.Exit(2)
	}
}

func upsertSkill(ctx context.Context, name string, proficiency int) {
	created, skill, err := services.NewSkillService().UpsertSkillByName(ctx, name, proficiency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "upsert failed: %v\n", err)
		os.Exit(1)
	}
	verb := "Updated"
	if created {
		verb = "Created"
	}
	fmt.Printf("%s skill: %s (%d%%)\n", verb, skill.Name, skill.Proficiency)
}

func loadProjects(ctx context.Context, file string) {
	raw, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read %s: %v\n", file, err)
		os.Exit(1)
	}
	var inputs []projectInput
	if err := json.Unmarshal(raw, &inputs); err != nil {
		fmt.Fprintf(os.Stderr, "cannot parse %s: %v\n", file, err)
		os.Exit(1)
	}

	svc := services.NewProjectService()
	for _, in := range inputs {
		project := &models.Project{
			Title:            in.Title,
			ShortDescription: in.ShortDescription,
			Description:      in.Description,
			GitHubURL:        in.GitHubURL,
			LiveURL:          in.LiveURL,
			Status:           in.Status,
			IsFeatured:       in.IsFeatured,
			DisplayOrder:     in.DisplayOrder,
		}
		if project.Status == "" {
			project.Status = models.ProjectStatusCompleted
		}
		if err := svc.CreateProject(ctx, project, nil); err != nil {
			fmt.Fprintf(os.Stderr, "create %q failed: %v\n", in.Title, err)
			os.Exit(1)
		}
		if err := svc.AttachTechnologiesByName(ctx, project, in.Technologies); err != nil {
			fmt.Fprintf(os.Stderr, "attach technologies for %q failed: %v\n", in.Title, err)
			os.Exit(1)
		}
		fmt.Printf("Loaded project: %s (%d technologies)\n", project.Title, len(in.Technologies))
	}
}
