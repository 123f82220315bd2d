package ui

import (
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pterm/pterm"

	"vacancystats/internal/models"
)

// RenderReport writes one service's report as a console table. The
// title is whatever the caller wants shown above the table; languages
// appear in the order the report recorded them.
func RenderReport(out io.Writer, report *models.Report, title string) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Language", "Found", "Processed", "Average Salary"})

	for _, language := range report.Languages {
		stats := report.Stats[language]
		t.AppendRow(table.Row{
			language,
			stats.Found,
			stats.Processed,
			ColorizeSalary(stats.Average),
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	t.Render()
}

// ColorizeSalary applies color formatting to an average salary figure
func ColorizeSalary(average int) string {
	if average == 0 {
		return pterm.Red("n/a")
	}

	formatted := humanize.Comma(int64(average)) + " ₽"

	switch {
	case average >= 250000:
		return pterm.Green(formatted)
	case average >= 150000:
		return pterm.LightGreen(formatted)
	case average >= 80000:
		return pterm.Yellow(formatted)
	default:
		return pterm.Red(formatted)
	}
}
