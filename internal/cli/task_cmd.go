package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rankor24/BIM-AI-Crew/internal/cli/formatter"
	"github.com/rankor24/BIM-AI-Crew/internal/domain"
	"github.com/rankor24/BIM-AI-Crew/internal/mutate"
	"github.com/rankor24/BIM-AI-Crew/internal/view"
	"github.com/spf13/cobra"
)

func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	tasks, err := app.Tasks.List(ctx)
	if err != nil {
		return "", err
	}

	for _, t := range tasks {
		if t.ID == input {
			return t.ID, nil
		}
	}

	var matches []string
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskToggleCmd(app),
		newTaskSyncCmd(app),
		newTaskHistogramCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var title, project, due, source string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task under a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if title == "" && app.IsInteractive() {
				if err := taskForm(&title, &due).Run(); err != nil {
					return err
				}
			}

			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			t, err := app.Tasks.Add(ctx, mutate.AddTaskRequest{
				Title:     title,
				ProjectID: projectID,
				DueDate:   due,
				Source:    domain.TaskSource(source),
			})
			if err != nil {
				return err
			}

			fmt.Printf("Created task %s [%s]\n", t.Title, t.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&project, "project", "", "Parent project (name, ID or ID prefix)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&source, "source", "", "Task source (defaults to Manual)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(context.Background())
			if err != nil {
				return err
			}

			tasks = view.FilterByQuery(tasks, query, taskSearchFields)
			if len(tasks) == 0 {
				fmt.Println("No tasks found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatTaskList(tasks))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter by title")

	return cmd
}

func newTaskToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle ID",
		Short: "Flip a task between Done and To Do",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Toggle(ctx, taskID); err != nil {
				return err
			}
			fmt.Printf("Toggled task %s\n", taskID)
			return nil
		},
	}
}

func newTaskSyncCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Pull AI-drafted tasks from connected platforms",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := app.Tasks.Sync(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("Synced %d new tasks.\n", len(created))
			if len(created) > 0 {
				fmt.Printf("%s\n", formatter.FormatTaskList(created))
			}
			return nil
		},
	}
}

func newTaskHistogramCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show tasks completed per day over the last week",
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := app.Tasks.CompletionHistogram(context.Background(), time.Now())
			if err != nil {
				return err
			}
			fmt.Printf("%s", formatter.FormatHistogram(points))
			return nil
		},
	}
}
