// Package cli wires the dashboard's services to cobra commands. Commands
// hold no business logic; they parse flags, call a service, and format the
// result.
package cli

import (
	"github.com/rankor24/BIM-AI-Crew/internal/drive"
	"github.com/rankor24/BIM-AI-Crew/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	User         service.UserService
	Projects     service.ProjectService
	Tasks        service.TaskService
	Meetings     service.MeetingService
	Articles     service.ArticleService
	Integrations service.IntegrationService

	// NewTree builds a remote vault tree for the given access token.
	NewTree func(token string) *drive.Tree

	// IsInteractive reports whether stdin is a terminal; forms are only
	// offered when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "bimcrew" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "bimcrew",
		Short: "BIM project dashboard: projects, tasks, meetings and knowledge base",
	}

	root.AddCommand(
		newDashboardCmd(app),
		newUserCmd(app),
		newProjectCmd(app),
		newTaskCmd(app),
		newMeetingCmd(app),
		newArticleCmd(app),
		newIntegrationCmd(app),
		newVaultCmd(app),
	)

	return root
}
