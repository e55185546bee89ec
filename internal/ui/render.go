package ui

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/salaryscope/salaryscope/internal/models"
)

// FormatSalary renders a numeric salary with a dollar sign and comma
// separators.
func FormatSalary(v float64) string {
	if v == math.Trunc(v) {
		return "$" + humanize.Comma(int64(v))
	}
	return "$" + humanize.CommafWithDigits(v, 2)
}

// ColorizeSalary applies color formatting to a salary value
func ColorizeSalary(v float64) string {
	formatted := FormatSalary(v)
	switch {
	case v >= 400000:
		return pterm.Green(formatted)
	case v >= 300000:
		return pterm.LightGreen(formatted)
	case v >= 100000:
		return pterm.Yellow(formatted)
	default:
		return pterm.Red(formatted)
	}
}

// RenderSummaryTable prints a summary table with a section header.
// Currency columns are comma-formatted and colorized.
func RenderSummaryTable(t models.SummaryTable) error {
	pterm.DefaultSection.Println(t.Title)

	header := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col.Label
	}

	data := pterm.TableData{header}
	for _, row := range t.Rows {
		display := make([]string, len(row))
		for i, cell := range row {
			display[i] = cell
			if i < len(t.Columns) && t.Columns[i].Type == "currency" {
				if v, err := strconv.ParseFloat(cell, 64); err == nil {
					display[i] = ColorizeSalary(v)
				}
			}
		}
		data = append(data, display)
	}

	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render()
}

// RenderBarChart prints a horizontal bar chart for a label/value series.
func RenderBarChart(title string, points []models.ChartPoint) error {
	pterm.DefaultSection.Println(title)

	bars := make([]pterm.Bar, len(points))
	for i, p := range points {
		bars[i] = pterm.Bar{Label: p.Label, Value: int(math.Round(p.Value))}
	}
	return pterm.DefaultBarChart.WithHorizontal().WithShowValue().WithBars(bars).Render()
}

// RenderHistogram prints salary bins as a horizontal bar chart with
// range labels.
func RenderHistogram(bins []models.Bin) error {
	pterm.DefaultSection.Println("Salary Distribution (USD)")

	bars := make([]pterm.Bar, len(bins))
	for i, bin := range bins {
		bars[i] = pterm.Bar{
			Label: FormatSalary(bin.Low) + " - " + FormatSalary(bin.High),
			Value: bin.Count,
		}
	}
	return pterm.DefaultBarChart.WithHorizontal().WithShowValue().WithBars(bars).Render()
}

// RenderBoxPlots prints the five-number salary summary per job title.
func RenderBoxPlots(plots []models.BoxPlot) error {
	pterm.DefaultSection.Println("Salary Ranges by Job Title")

	data := pterm.TableData{{"Job Title", "Min", "Q1", "Median", "Q3", "Max", "Vacancies"}}
	for _, p := range plots {
		data = append(data, []string{
			p.Title,
			ColorizeSalary(p.Min),
			ColorizeSalary(p.Q1),
			ColorizeSalary(p.Median),
			ColorizeSalary(p.Q3),
			ColorizeSalary(p.Max),
			strconv.Itoa(p.Count),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render()
}
