package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rankor24/BIM-AI-Crew/internal/cli/formatter"
	"github.com/rankor24/BIM-AI-Crew/internal/domain"
	"github.com/rankor24/BIM-AI-Crew/internal/view"
	"github.com/spf13/cobra"
)

func newMeetingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meeting",
		Short: "Log and review AI-summarized meetings",
	}

	cmd.AddCommand(
		newMeetingListCmd(app),
		newMeetingLogCmd(app),
		newMeetingShowCmd(app),
	)

	return cmd
}

func newMeetingListCmd(app *App) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List meetings, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			meetings, err := app.Meetings.List(context.Background())
			if err != nil {
				return err
			}

			meetings = view.FilterByQuery(meetings, query, meetingSearchFields)
			if len(meetings) == 0 {
				fmt.Println("No meetings found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatMeetingList(meetings))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter by title or summary")

	return cmd
}

func newMeetingLogCmd(app *App) *cobra.Command {
	var title, date, platformStr, transcriptFile, mediaFile, mimeType string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Summarize a transcript or recording and store the meeting",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			platform := domain.MeetingPlatform(platformStr)
			if title == "" && app.IsInteractive() {
				if err := meetingForm(&title, &date, &platform).Run(); err != nil {
					return err
				}
			}

			var transcript string
			switch {
			case transcriptFile != "":
				data, err := os.ReadFile(transcriptFile)
				if err != nil {
					return fmt.Errorf("reading transcript: %w", err)
				}
				transcript = string(data)
			case mediaFile != "":
				data, err := os.ReadFile(mediaFile)
				if err != nil {
					return fmt.Errorf("reading recording: %w", err)
				}
				transcript, err = app.Meetings.Transcribe(ctx, data, mimeType)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("either --transcript or --media is required")
			}

			m, err := app.Meetings.Log(ctx, title, date, platform, transcript)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatMeeting(m))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Meeting title")
	cmd.Flags().StringVar(&date, "date", "", "Meeting date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&platformStr, "platform", "", "Platform (Google Meet|MS Teams|Webex)")
	cmd.Flags().StringVar(&transcriptFile, "transcript", "", "Path to a transcript text file")
	cmd.Flags().StringVar(&mediaFile, "media", "", "Path to an audio or video recording")
	cmd.Flags().StringVar(&mimeType, "mime-type", "", "MIME type of the recording (defaults to video/webm)")

	return cmd
}

func newMeetingShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a meeting's summary and action items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meetings, err := app.Meetings.List(context.Background())
			if err != nil {
				return err
			}
			for _, m := range meetings {
				if m.ID == args[0] || len(args[0]) >= 4 && strings.HasPrefix(m.ID, args[0]) {
					fmt.Printf("%s\n", formatter.FormatMeeting(m))
					return nil
				}
			}
			return fmt.Errorf("meeting not found: %q", args[0])
		},
	}
}
