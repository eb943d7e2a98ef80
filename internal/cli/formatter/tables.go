// Package formatter renders domain objects for terminal output. All
// functions return strings; nothing here writes to stdout directly.
package formatter

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rankor24/BIM-AI-Crew/internal/domain"
	"github.com/rankor24/BIM-AI-Crew/internal/drive"
	"github.com/rankor24/BIM-AI-Crew/internal/view"
)

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	return t
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// FormatTaskList renders tasks as a table, one row per task.
func FormatTaskList(tasks []domain.Task) string {
	t := newTable()
	t.AppendHeader(table.Row{"ID", "Title", "Status", "Due", "Source", "Project"})
	for _, task := range tasks {
		t.AppendRow(table.Row{
			StyleDim.Render(shortID(task.ID)),
			task.Title,
			StatusIndicator(task.Status),
			task.DueDate,
			string(task.Source),
			StyleDim.Render(shortID(task.ProjectID)),
		})
	}
	return t.Render()
}

// FormatProjectList renders projects with their task counts. Pass projects
// through the live task join first; the counts come from the embedded lists.
func FormatProjectList(projects []domain.Project) string {
	t := newTable()
	t.AppendHeader(table.Row{"ID", "Name", "Description", "Tasks", "Done"})
	for _, p := range projects {
		done := 0
		for _, task := range p.Tasks {
			if task.Status == domain.TaskDone {
				done++
			}
		}
		t.AppendRow(table.Row{
			StyleDim.Render(shortID(p.ID)),
			p.Name,
			truncate(p.Description, 48),
			len(p.Tasks),
			done,
		})
	}
	return t.Render()
}

// FormatMeetingList renders meetings newest-first, as stored.
func FormatMeetingList(meetings []domain.Meeting) string {
	t := newTable()
	t.AppendHeader(table.Row{"ID", "Title", "Date", "Platform", "Actions"})
	for _, m := range meetings {
		t.AppendRow(table.Row{
			StyleDim.Render(shortID(m.ID)),
			m.Title,
			m.Date,
			string(m.Platform),
			len(m.ActionItems),
		})
	}
	return t.Render()
}

// FormatMeeting renders one meeting in full, summary and action items.
func FormatMeeting(m domain.Meeting) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(m.Title) + "\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("%s · %s", m.Date, m.Platform)) + "\n\n")
	b.WriteString(m.TranscriptSummary + "\n")
	if len(m.ActionItems) > 0 {
		b.WriteString("\n" + StyleHeader.Render("Action items") + "\n")
		for _, item := range m.ActionItems {
			b.WriteString("  • " + item + "\n")
		}
	}
	return b.String()
}

// FormatArticleList renders knowledge articles.
func FormatArticleList(articles []domain.KnowledgeArticle) string {
	t := newTable()
	t.AppendHeader(table.Row{"ID", "Title", "Created"})
	for _, a := range articles {
		t.AppendRow(table.Row{
			StyleDim.Render(shortID(a.ID)),
			a.Title,
			a.CreatedAt,
		})
	}
	return t.Render()
}

// FormatIntegrationList renders the integration catalog with connection
// state.
func FormatIntegrationList(integrations []domain.Integration) string {
	t := newTable()
	t.AppendHeader(table.Row{"Name", "Status", "Description"})
	for _, i := range integrations {
		status := StyleDim.Render("○ not connected")
		switch {
		case i.Loading:
			status = StyleYellow.Render("… connecting")
		case i.Connected:
			status = StyleGreen.Render("● connected")
		}
		t.AppendRow(table.Row{i.Name, status, truncate(i.Description, 56)})
	}
	return t.Render()
}

// FormatHistogram renders the 7-day completion histogram as a bar chart.
func FormatHistogram(points []view.CompletionPoint) string {
	var b strings.Builder
	for _, p := range points {
		bar := strings.Repeat("█", p.Count)
		if p.Count == 0 {
			bar = StyleDim.Render("·")
		} else {
			bar = StyleGreen.Render(bar)
		}
		b.WriteString(fmt.Sprintf("%s  %s %s\n", p.Label, bar, StyleDim.Render(fmt.Sprintf("(%d)", p.Count))))
	}
	return b.String()
}

// FormatTree renders the materialized portion of a remote file tree.
// Unfetched folders show a collapsed marker; only expanded folders recurse.
func FormatTree(tree *drive.Tree) string {
	var b strings.Builder
	writeTreeLevel(&b, tree, tree.Roots(), 0)
	return b.String()
}

func writeTreeLevel(b *strings.Builder, tree *drive.Tree, nodes []drive.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		switch {
		case n.Kind == drive.KindFolder && n.Expanded:
			b.WriteString(indent + StyleBlue.Render("▾ "+n.Name) + "\n")
			writeTreeLevel(b, tree, tree.ChildrenOf(n.ID), depth+1)
		case n.Kind == drive.KindFolder:
			b.WriteString(indent + StyleBlue.Render("▸ "+n.Name) + "\n")
		default:
			b.WriteString(indent + "  " + n.Name + StyleDim.Render("  "+shortID(n.ID)) + "\n")
		}
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
