package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rankor24/BIM-AI-Crew/internal/cli/formatter"
	"github.com/rankor24/BIM-AI-Crew/internal/view"
	"github.com/spf13/cobra"
)

func newArticleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "article",
		Short: "Manage the knowledge base",
	}

	cmd.AddCommand(
		newArticleListCmd(app),
		newArticleNewCmd(app),
		newArticleShowCmd(app),
	)

	return cmd
}

func newArticleListCmd(app *App) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List knowledge articles",
		RunE: func(cmd *cobra.Command, args []string) error {
			articles, err := app.Articles.List(context.Background())
			if err != nil {
				return err
			}

			articles = view.FilterByQuery(articles, query, articleSearchFields)
			if len(articles) == 0 {
				fmt.Println("No articles found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatArticleList(articles))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter by title or content")

	return cmd
}

func newArticleNewCmd(app *App) *cobra.Command {
	var title, topic string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create an article, optionally with an AI-drafted body",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Articles.Create(context.Background(), title, topic)
			if err != nil {
				return err
			}
			fmt.Printf("Created article %s [%s]\n", a.Title, a.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Article title")
	cmd.Flags().StringVar(&topic, "topic", "", "Topic for the AI draft (blank starts an empty note)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newArticleShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Print an article's content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			articles, err := app.Articles.List(context.Background())
			if err != nil {
				return err
			}
			for _, a := range articles {
				if a.ID == args[0] || len(args[0]) >= 4 && strings.HasPrefix(a.ID, args[0]) {
					fmt.Printf("%s\n\n%s\n", formatter.StyleHeader.Render(a.Title), a.Content)
					return nil
				}
			}
			return fmt.Errorf("article not found: %q", args[0])
		},
	}
}
