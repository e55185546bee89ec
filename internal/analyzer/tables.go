package analyzer

import (
	"fmt"
	"strconv"

	"github.com/salaryscope/salaryscope/internal/models"
)

// Table-shaped variants of the statistic operations. A SummaryTable is
// render-agnostic: the terminal UI and the report exporters consume the
// same structure.

// SalaryStatsTable returns overall salary statistics as a single-row table.
func (a *Analyzer) SalaryStatsTable() (models.SummaryTable, error) {
	s, err := a.SalaryStats()
	if err != nil {
		return models.SummaryTable{}, err
	}
	return models.SummaryTable{
		Title: "Salary Statistics (USD)",
		Columns: []models.Column{
			{Label: "Min", Type: "currency"},
			{Label: "Max", Type: "currency"},
			{Label: "Mean", Type: "currency"},
			{Label: "Median", Type: "currency"},
			{Label: "Std Dev", Type: "number"},
			{Label: "Vacancies", Type: "number"},
		},
		Rows: [][]string{{
			formatFloat(s.Min),
			formatFloat(s.Max),
			formatFloat(s.Mean),
			formatFloat(s.Median),
			formatFloat(s.StdDev),
			strconv.Itoa(s.Count),
		}},
	}, nil
}

// TopProfessionsTable returns the top-n job titles and their counts.
func (a *Analyzer) TopProfessionsTable(n int) (models.SummaryTable, error) {
	top, err := a.TopProfessions(n)
	if err != nil {
		return models.SummaryTable{}, err
	}
	rows := make([][]string, len(top))
	for i, tc := range top {
		rows[i] = []string{tc.Title, strconv.Itoa(tc.Count)}
	}
	return models.SummaryTable{
		Title: fmt.Sprintf("Top-%d Job Titles", len(top)),
		Columns: []models.Column{
			{Label: "Job Title", Type: "text"},
			{Label: "Vacancies Count", Type: "number"},
		},
		Rows: rows,
	}, nil
}

// RichestJobTable returns the highest-paid posting as a single-row table.
func (a *Analyzer) RichestJobTable() (models.SummaryTable, error) {
	rec, err := a.RichestJob()
	if err != nil {
		return models.SummaryTable{}, err
	}
	return models.SummaryTable{
		Title: "Highest Paid Position",
		Columns: []models.Column{
			{Label: "Job Title", Type: "text"},
			{Label: "Salary (USD)", Type: "currency"},
			{Label: "Experience", Type: "text"},
		},
		Rows: [][]string{{rec.Title, formatFloat(rec.Salary), rec.Level.Label()}},
	}, nil
}

// ExperienceStatsTable returns dataset-wide mean salary per experience
// level.
func (a *Analyzer) ExperienceStatsTable() models.SummaryTable {
	return experienceTable("Average Salary by Experience Level", a.ExperienceStats())
}

// SalaryGrowthTable returns per-level mean salary for a single job title.
func (a *Analyzer) SalaryGrowthTable(title string) (models.SummaryTable, error) {
	growth, err := a.SalaryGrowthForJob(title)
	if err != nil {
		return models.SummaryTable{}, err
	}
	return experienceTable(fmt.Sprintf("Salary Growth: %s", title), growth), nil
}

func experienceTable(title string, levels []models.LevelStat) models.SummaryTable {
	rows := make([][]string, len(levels))
	for i, ls := range levels {
		rows[i] = []string{ls.Level.Label(), formatFloat(ls.MeanSalary), strconv.Itoa(ls.Count)}
	}
	return models.SummaryTable{
		Title: title,
		Columns: []models.Column{
			{Label: "Experience Level", Type: "text"},
			{Label: "Avg Salary", Type: "currency"},
			{Label: "Vacancies", Type: "number"},
		},
		Rows: rows,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
