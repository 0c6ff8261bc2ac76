package scaffold

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var (
	printGreen  = color.New(color.FgGreen).SprintFunc()
	printYellow = color.New(color.FgYellow).SprintFunc()
	printCyan   = color.New(color.FgCyan).SprintFunc()
)

// ColorSprint returns the status name painted by its kind.
func (status Status) ColorSprint() string {
	switch status {
	case StatusCreated, StatusUpdated:
		return printGreen(status.String())
	case StatusExists:
		return printYellow(status.String())
	}
	return printCyan(status.String())
}

// PrintResults prints a line per processed file.
func PrintResults(out io.Writer, results []Result) {
	for _, result := range results {
		switch result.Status {
		case StatusCreated:
			fmt.Fprintf(out, "  %s Created: %s\n", printGreen("✓"), result.Path)
		case StatusUpdated:
			fmt.Fprintf(out, "  %s Updated: %s\n", printGreen("✓"), result.Path)
		case StatusExists:
			fmt.Fprintf(out, "  %s %s (exists, use --force to overwrite)\n",
				printYellow("?"), result.Path)
		default:
			fmt.Fprintf(out, "  - %s (%s)\n", result.Path, result.Status.ColorSprint())
		}
	}
}

// PrintPlan prints dry run results as a table.
func PrintPlan(out io.Writer, results []Result) {
	planTable := table.NewWriter()
	planTable.SetOutputMirror(out)
	planTable.AppendHeader(table.Row{"FILE", "ACTION"})
	for _, result := range results {
		planTable.AppendRow(table.Row{result.Path, result.Status.ColorSprint()})
	}
	planTable.Style().Options.DrawBorder = false
	planTable.Style().Options.SeparateColumns = false
	planTable.Style().Options.SeparateHeader = false
	planTable.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	planTable.Render()
}

// Summary counts results by status.
func Summary(results []Result) map[Status]int {
	counts := make(map[Status]int)
	for _, result := range results {
		counts[result.Status]++
	}
	return counts
}
