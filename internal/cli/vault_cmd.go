package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rankor24/BIM-AI-Crew/internal/cli/formatter"
	"github.com/rankor24/BIM-AI-Crew/internal/drive"
	"github.com/rankor24/BIM-AI-Crew/internal/service"
	"github.com/spf13/cobra"
)

func newVaultCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Browse the connected document vault",
	}

	cmd.AddCommand(
		newVaultLsCmd(app),
		newVaultCatCmd(app),
	)

	return cmd
}

// vaultTree builds a tree over the connected storage integration. The
// access token stored at connect time is the only credential used.
func vaultTree(ctx context.Context, app *App) (*drive.Tree, error) {
	integrations, err := app.Integrations.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, i := range integrations {
		if i.Name == service.GoogleDriveIntegration && i.Connected {
			return app.NewTree(i.AccessToken), nil
		}
	}
	return nil, fmt.Errorf("%s is not connected; run `bimcrew integration connect`", service.GoogleDriveIntegration)
}

// descend expands folders along a slash-separated path and returns the node
// at its end. An empty path returns ok=false with no error.
func descend(ctx context.Context, tree *drive.Tree, path string) (drive.Node, bool, error) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) == 1 && segments[0] == "" {
		return drive.Node{}, false, nil
	}

	candidates := tree.Roots()
	var current drive.Node
	for depth, segment := range segments {
		found := false
		for _, n := range candidates {
			if n.Name == segment {
				current = n
				found = true
				break
			}
		}
		if !found {
			return drive.Node{}, false, fmt.Errorf("no such entry: %s", strings.Join(segments[:depth+1], "/"))
		}
		if depth == len(segments)-1 {
			break
		}
		if current.Kind != drive.KindFolder {
			return drive.Node{}, false, fmt.Errorf("%s is not a folder", strings.Join(segments[:depth+1], "/"))
		}
		if err := tree.Expand(ctx, current.ID); err != nil {
			return drive.Node{}, false, err
		}
		candidates = tree.ChildrenOf(current.ID)
	}
	return current, true, nil
}

func newVaultLsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ls [PATH]",
		Short: "List vault contents, expanding the given folder path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tree, err := vaultTree(ctx, app)
			if err != nil {
				return err
			}
			if err := tree.Refresh(ctx); err != nil {
				return err
			}

			if len(args) == 1 {
				node, ok, err := descend(ctx, tree, args[0])
				if err != nil {
					return err
				}
				if ok {
					if node.Kind != drive.KindFolder {
						return fmt.Errorf("%s is not a folder", args[0])
					}
					if err := tree.Expand(ctx, node.ID); err != nil {
						return err
					}
				}
			}

			fmt.Printf("%s", formatter.FormatTree(tree))
			return nil
		},
	}
}

func newVaultCatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cat PATH",
		Short: "Print a vault file's content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tree, err := vaultTree(ctx, app)
			if err != nil {
				return err
			}
			if err := tree.Refresh(ctx); err != nil {
				return err
			}

			node, ok, err := descend(ctx, tree, args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("file path is required")
			}

			content, err := tree.Select(ctx, node.ID)
			if err != nil {
				// Failed fetches still yield the placeholder; show it
				// dimmed rather than aborting.
				fmt.Println(formatter.StyleDim.Render(content))
				return nil
			}
			fmt.Println(content)
			return nil
		},
	}
}
