package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rankor24/BIM-AI-Crew/internal/cli/formatter"
	"github.com/rankor24/BIM-AI-Crew/internal/domain"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the project overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			u, err := app.User.Get(ctx)
			if err != nil {
				return err
			}
			projects, err := app.Projects.ListWithTasks(ctx)
			if err != nil {
				return err
			}
			tasks, err := app.Tasks.List(ctx)
			if err != nil {
				return err
			}
			points, err := app.Tasks.CompletionHistogram(ctx, time.Now())
			if err != nil {
				return err
			}

			open := 0
			for _, t := range tasks {
				if t.Status != domain.TaskDone {
					open++
				}
			}

			fmt.Printf("%s %s\n\n", formatter.StyleHeader.Render("Welcome back,"), u.Name)
			fmt.Printf("%d projects · %d tasks (%d open)\n\n", len(projects), len(tasks), open)
			fmt.Printf("%s\n", formatter.FormatProjectList(projects))
			fmt.Printf("\n%s\n%s", formatter.StyleHeader.Render("Completed this week"), formatter.FormatHistogram(points))
			return nil
		},
	}
}
