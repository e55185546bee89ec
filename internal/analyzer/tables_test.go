package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalaryStatsTable(t *testing.T) {
	a := newAnalyzer(t, sampleCSV)

	table, err := a.SalaryStatsTable()
	require.NoError(t, err)

	assert.Equal(t, "Salary Statistics (USD)", table.Title)
	require.Len(t, table.Columns, 6)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "50000", table.Rows[0][0])
	assert.Equal(t, "70000", table.Rows[0][1])
	assert.Equal(t, "60000", table.Rows[0][2])
	assert.Equal(t, "3", table.Rows[0][5])
}

func TestTopProfessionsTableTitleUsesActualCount(t *testing.T) {
	a := newAnalyzer(t, sampleCSV)

	table, err := a.TopProfessionsTable(10)
	require.NoError(t, err)

	// Only 2 distinct titles exist, so the heading reflects that.
	assert.Equal(t, "Top-2 Job Titles", table.Title)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"A", "2"}, table.Rows[0])
}

func TestRichestJobTable(t *testing.T) {
	a := newAnalyzer(t, sampleCSV)

	table, err := a.RichestJobTable()
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"B", "70000", "Senior"}, table.Rows[0])
}

func TestExperienceStatsTable(t *testing.T) {
	a := newAnalyzer(t, sampleCSV)

	table := a.ExperienceStatsTable()
	assert.Equal(t, "Average Salary by Experience Level", table.Title)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, []string{"Entry-level (Junior)", "50000", "1"}, table.Rows[0])
}

func TestSalaryGrowthTable(t *testing.T) {
	a := newAnalyzer(t, sampleCSV)

	table, err := a.SalaryGrowthTable("A")
	require.NoError(t, err)
	assert.Equal(t, "Salary Growth: A", table.Title)
	require.Len(t, table.Rows, 2)
}
