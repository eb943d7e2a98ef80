package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rankor24/BIM-AI-Crew/internal/cli"
	"github.com/rankor24/BIM-AI-Crew/internal/config"
	"github.com/rankor24/BIM-AI-Crew/internal/db"
	"github.com/rankor24/BIM-AI-Crew/internal/drive"
	"github.com/rankor24/BIM-AI-Crew/internal/intelligence"
	"github.com/rankor24/BIM-AI-Crew/internal/llm"
	"github.com/rankor24/BIM-AI-Crew/internal/service"
	"github.com/rankor24/BIM-AI-Crew/internal/store"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// envTokenSource reads the vault bearer token from the environment. The
// OAuth dance that produces it lives outside this binary.
type envTokenSource struct{}

func (envTokenSource) Token(ctx context.Context) (string, error) {
	return os.Getenv("BIMCREW_DRIVE_TOKEN"), nil
}

func run() error {
	cfgPath := os.Getenv("BIMCREW_CONFIG")
	if cfgPath == "" {
		var err error
		cfgPath, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = config.DefaultDBPath()
		if err != nil {
			return err
		}
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	slots := store.New(database)

	// Wire the generation client. Disabled configs still get a Client so
	// fallback paths (placeholder article bodies) keep working.
	llmCfg := cfg.LLMConfig()
	llmClient := llm.NewDisabledClient()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			logger, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			defer logger.Sync()
			observer = llm.NewZapObserver(logger)
		}
		llmClient = llm.NewGeminiClient(llmCfg, observer)
	}

	app := &cli.App{
		User:         service.NewUserService(slots),
		Projects:     service.NewProjectService(slots),
		Tasks:        service.NewTaskService(slots, intelligence.NewTaskSyncService(llmClient)),
		Meetings:     service.NewMeetingService(slots, intelligence.NewMeetingNotesService(llmClient)),
		Articles:     service.NewArticleService(slots, intelligence.NewArticleContentService(llmClient)),
		Integrations: service.NewIntegrationService(slots, envTokenSource{}),
	}

	app.NewTree = func(token string) *drive.Tree {
		return drive.NewTree(drive.NewClient(cfg.Drive.Endpoint, token))
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
