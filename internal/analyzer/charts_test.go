package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salaryscope/salaryscope/internal/errors"
)

func TestSalaryHistogramFixedWidth(t *testing.T) {
	a := newAnalyzer(t, `title,salary,level
A,1000,EN
B,1500,EN
C,2500,MI
D,3000,SE
`)

	bins, err := a.SalaryHistogram(1000)
	require.NoError(t, err)
	require.Len(t, bins, 2)

	assert.Equal(t, float64(1000), bins[0].Low)
	assert.Equal(t, float64(2000), bins[0].High)
	assert.Equal(t, 2, bins[0].Count)

	// The maximum salary lands on the upper edge and stays in the last bin.
	assert.Equal(t, float64(3000), bins[1].High)
	assert.Equal(t, 2, bins[1].Count)

	total := 0
	for _, b := range bins {
		total += b.Count
	}
	assert.Equal(t, a.Dataset().Len(), total)
}

func TestSalaryHistogramAutoWidth(t *testing.T) {
	a := newAnalyzer(t, `title,salary,level
A,10000,EN
B,20000,EN
C,30000,MI
D,40000,SE
E,50000,SE
F,60000,EX
G,70000,EX
H,80000,EX
`)

	bins, err := a.SalaryHistogram(0)
	require.NoError(t, err)
	// Sturges on 8 points gives 4 bins.
	require.Len(t, bins, 4)

	total := 0
	for _, b := range bins {
		total += b.Count
		assert.Less(t, b.Low, b.High)
	}
	assert.Equal(t, 8, total)
}

func TestSalaryHistogramSingleValue(t *testing.T) {
	a := newAnalyzer(t, `title,salary,level
A,42000,EN
B,42000,MI
`)

	bins, err := a.SalaryHistogram(0)
	require.NoError(t, err)
	require.Len(t, bins, 1)
	assert.Equal(t, float64(42000), bins[0].Low)
	assert.Equal(t, 2, bins[0].Count)
}

func TestSalaryHistogramNegativeWidth(t *testing.T) {
	a := newAnalyzer(t, sampleCSV)

	_, err := a.SalaryHistogram(-5)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeInvalidInput))
}

func TestSalaryHistogramEmptyDataset(t *testing.T) {
	a := newAnalyzer(t, "title,salary,level\n")

	_, err := a.SalaryHistogram(0)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeEmptyDataset))
}

func TestSalaryBoxPlots(t *testing.T) {
	a := newAnalyzer(t, `title,salary,level
Dev,40000,EN
Dev,50000,MI
Dev,60000,SE
QA,30000,EN
QA,70000,SE
`)

	plots, err := a.SalaryBoxPlots(2)
	require.NoError(t, err)
	require.Len(t, plots, 2)

	dev := plots[0]
	assert.Equal(t, "Dev", dev.Title)
	assert.Equal(t, float64(40000), dev.Min)
	assert.Equal(t, float64(50000), dev.Median)
	assert.Equal(t, float64(60000), dev.Max)
	assert.Equal(t, 3, dev.Count)
	assert.LessOrEqual(t, dev.Min, dev.Q1)
	assert.LessOrEqual(t, dev.Q1, dev.Median)
	assert.LessOrEqual(t, dev.Median, dev.Q3)
	assert.LessOrEqual(t, dev.Q3, dev.Max)

	assert.Equal(t, "QA", plots[1].Title)
	assert.Equal(t, float64(50000), plots[1].Median)
}

func TestTopProfessionsChart(t *testing.T) {
	a := newAnalyzer(t, sampleCSV)

	points, err := a.TopProfessionsChart(2)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "A", points[0].Label)
	assert.Equal(t, float64(2), points[0].Value)
}

func TestExperienceChartLabels(t *testing.T) {
	a := newAnalyzer(t, sampleCSV)

	points := a.ExperienceChart()
	require.Len(t, points, 3)
	assert.Equal(t, "Entry-level (Junior)", points[0].Label)
	assert.Equal(t, "Mid-level", points[1].Label)
	assert.Equal(t, "Senior", points[2].Label)
}
