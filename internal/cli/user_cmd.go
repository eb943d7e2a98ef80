package cli

import (
	"context"
	"fmt"

	"github.com/rankor24/BIM-AI-Crew/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Show or update the local profile",
	}

	cmd.AddCommand(newUserShowCmd(app), newUserUpdateCmd(app))

	return cmd
}

func newUserShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.User.Get(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("%s\n%s\n", formatter.StyleHeader.Render(u.Name), formatter.StyleDim.Render(u.Role))
			return nil
		},
	}
}

func newUserUpdateCmd(app *App) *cobra.Command {
	var name, role, avatar string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := app.User.Get(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				u.Name = name
			}
			if cmd.Flags().Changed("role") {
				u.Role = role
			}
			if cmd.Flags().Changed("avatar") {
				u.AvatarURL = avatar
			}

			if err := app.User.Update(ctx, u); err != nil {
				return err
			}
			fmt.Println("Profile updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&role, "role", "", "Role shown in the header")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar image URL")

	return cmd
}
