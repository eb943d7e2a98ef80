package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rankor24/BIM-AI-Crew/internal/cli/formatter"
	"github.com/rankor24/BIM-AI-Crew/internal/mutate"
	"github.com/rankor24/BIM-AI-Crew/internal/view"
	"github.com/spf13/cobra"
)

// resolveProjectID accepts an exact name, an exact ID, or a unique ID
// prefix.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project is required")
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if strings.EqualFold(p.Name, input) {
			return p.ID, nil
		}
	}
	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage BIM projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, description, modelURL string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" && app.IsInteractive() {
				if err := projectForm(&name, &description, &modelURL).Run(); err != nil {
					return err
				}
			}

			p, err := app.Projects.Add(context.Background(), mutate.AddProjectRequest{
				Name:        name,
				Description: description,
				BIMModelURL: modelURL,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Created project %s [%s]\n", p.Name, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&description, "description", "", "Project description")
	cmd.Flags().StringVar(&modelURL, "model-url", "", "BIM model viewer URL")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects with their live task counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.ListWithTasks(context.Background())
			if err != nil {
				return err
			}

			projects = view.FilterByQuery(projects, query, projectSearchFields)
			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatProjectList(projects))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter by name or description")

	return cmd
}
