package summary

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sethvargo/go-githubactions"
)

// Entry is one rendered section and the number of rows it held.
type Entry struct {
	Section string
	Count   int
}

// Render builds the markdown job summary for the rendered sections.
func Render(entries []Entry) string {
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{e.Section, e.Count})
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Section", "Entries"})
	t.AppendRows(rows)

	summaryBuilder := &strings.Builder{}
	summaryBuilder.WriteString("## Environment Summary\n\n")
	summaryBuilder.WriteString(t.RenderMarkdown())
	summaryBuilder.WriteString("\n")
	return summaryBuilder.String()
}

// Write appends the summary to the job summary file.
func Write(action *githubactions.Action, entries []Entry) {
	if len(entries) == 0 {
		return
	}
	action.AddStepSummary(Render(entries))
	action.Infof("Environment summary added to job summary.")
}
