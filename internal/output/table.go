package output

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/brandkit/brandkit/internal/core"
)

// TableFormatter renders reports as ASCII tables.
type TableFormatter struct{}

// FormatReport renders the domain outcome and handle probes as tables.
func (f *TableFormatter) FormatReport(report *core.Report) (string, error) {
	if report == nil {
		return "", nil
	}

	sections := make([]string, 0, 3)

	if report.Domain != nil {
		sections = append(sections, formatDomain(report.Domain))
	}
	if len(report.Handles) > 0 {
		sections = append(sections, formatHandles(report.Username, report.Handles))
	}

	return strings.Join(sections, "\n\n"), nil
}

func formatDomain(outcome *core.QueryOutcome) string {
	lines := []string{outcome.Message}
	if outcome.Link != "" {
		lines = append(lines, "Register: "+outcome.Link)
	}

	if len(outcome.Suggestions) > 0 {
		t := table.NewWriter()
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"Domain", "Status"})

		available := 0
		for _, suggestion := range outcome.Suggestions {
			t.AppendRow(table.Row{suggestion.Domain, statusLabel(suggestion.Available)})
			if suggestion.Available {
				available++
			}
		}
		t.AppendFooter(table.Row{"", fmt.Sprintf("%d/%d available", available, len(outcome.Suggestions))})

		lines = append(lines, t.Render())
	}

	return strings.Join(lines, "\n")
}

func formatHandles(username string, handles []core.PlatformResult) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Platform", "Handle", "Status"})

	available := 0
	for _, handle := range handles {
		t.AppendRow(table.Row{handle.Platform, username, statusLabel(handle.Available)})
		if handle.Available {
			available++
		}
	}
	t.AppendFooter(table.Row{"", "", fmt.Sprintf("%d/%d available", available, len(handles))})

	return t.Render()
}

func statusLabel(available bool) string {
	if available {
		return "available"
	}
	return "taken"
}
