package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rankor24/BIM-AI-Crew/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newIntegrationCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "integration",
		Short: "Connect third-party platforms",
	}

	cmd.AddCommand(
		newIntegrationListCmd(app),
		newIntegrationConnectCmd(app),
		newIntegrationDisconnectCmd(app),
	)

	return cmd
}

func newIntegrationListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the integration catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			integrations, err := app.Integrations.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatIntegrationList(integrations))
			return nil
		},
	}
}

func newIntegrationConnectCmd(app *App) *cobra.Command {
	var set []string

	cmd := &cobra.Command{
		Use:   "connect NAME",
		Short: "Connect an integration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			name := args[0]

			settings := make(map[string]string)
			for _, kv := range set {
				parts := strings.SplitN(kv, "=", 2)
				if len(parts) != 2 {
					return fmt.Errorf("invalid --set format %q, expected key=value", kv)
				}
				settings[parts[0]] = parts[1]
			}

			// Credentials missing on the command line are collected via a
			// form built from the catalog's field descriptors.
			if len(settings) == 0 && app.IsInteractive() {
				integrations, err := app.Integrations.List(ctx)
				if err != nil {
					return err
				}
				for _, i := range integrations {
					if !strings.EqualFold(i.Name, name) || len(i.Fields) == 0 {
						continue
					}
					name = i.Name
					values := make(map[string]*string, len(i.Fields))
					for _, f := range i.Fields {
						values[f.ID] = new(string)
					}
					if err := connectForm(i.Fields, values).Run(); err != nil {
						return err
					}
					for id, v := range values {
						settings[id] = *v
					}
				}
			}

			connected, err := app.Integrations.Connect(ctx, name, settings)
			if err != nil {
				return err
			}

			fmt.Printf("Connected %s.\n", connected.Name)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&set, "set", nil, "Credential values (key=value)")

	return cmd
}

func newIntegrationDisconnectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect NAME",
		Short: "Disconnect an integration and clear its credentials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Integrations.Disconnect(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Disconnected %s.\n", args[0])
			return nil
		},
	}
}
