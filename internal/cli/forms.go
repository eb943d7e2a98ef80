package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/rankor24/BIM-AI-Crew/internal/domain"
)

func validateRequired(label string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

func validateDate(s string) error {
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func projectForm(name, description, modelURL *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project Name").
				Placeholder("Downtown Tower Renovation").
				Value(name).
				Validate(validateRequired("project name")),
			huh.NewInput().
				Title("Description").
				Value(description),
			huh.NewInput().
				Title("BIM Model URL (blank for none)").
				Value(modelURL),
		),
	).WithTheme(bimHuhTheme()).WithShowHelp(false)
}

func taskForm(title, dueDate *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task Title").
				Value(title).
				Validate(validateRequired("task title")),
			huh.NewInput().
				Title("Due Date (YYYY-MM-DD)").
				Placeholder("2026-09-30").
				Value(dueDate).
				Validate(validateDate),
		),
	).WithTheme(bimHuhTheme()).WithShowHelp(false)
}

func meetingForm(title, date *string, platform *domain.MeetingPlatform) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Meeting Title").
				Value(title).
				Validate(validateRequired("meeting title")),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(date).
				Validate(validateDate),
			huh.NewSelect[domain.MeetingPlatform]().
				Title("Platform").
				Options(
					huh.NewOption("Google Meet", domain.PlatformGoogleMeet),
					huh.NewOption("MS Teams", domain.PlatformMSTeams),
					huh.NewOption("Webex", domain.PlatformWebex),
				).
				Value(platform),
		),
	).WithTheme(bimHuhTheme()).WithShowHelp(false)
}

// connectForm builds a credential form from an integration's field
// descriptors. Password fields render masked.
func connectForm(fields []domain.IntegrationField, values map[string]*string) *huh.Form {
	inputs := make([]huh.Field, 0, len(fields))
	for _, f := range fields {
		input := huh.NewInput().
			Title(f.Label).
			Value(values[f.ID]).
			Validate(validateRequired(f.Label))
		if f.Kind == domain.FieldPassword {
			input = input.EchoMode(huh.EchoModePassword)
		}
		inputs = append(inputs, input)
	}
	return huh.NewForm(huh.NewGroup(inputs...)).WithTheme(bimHuhTheme()).WithShowHelp(false)
}
