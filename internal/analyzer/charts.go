package analyzer

import (
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/salaryscope/salaryscope/internal/errors"
	"github.com/salaryscope/salaryscope/internal/models"
)

// Chart-data operations. These emit plain numeric structures so any
// rendering technology can consume them; the terminal UI draws them with
// pterm bar charts.

// SalaryHistogram buckets all salaries into equal-width bins. A binWidth
// of 0 picks one automatically from the sample size (Sturges' rule).
func (a *Analyzer) SalaryHistogram(binWidth float64) ([]models.Bin, error) {
	recs := a.ds.Records()
	if len(recs) == 0 {
		return nil, errors.NewEmptyDatasetError()
	}
	if binWidth < 0 {
		return nil, errors.NewInvalidInputError("bin width must not be negative", nil)
	}

	xs := salaries(recs)
	sample := stats.Sample{Xs: xs}
	min, max := sample.Bounds()

	if binWidth == 0 {
		k := int(math.Ceil(math.Log2(float64(len(xs))))) + 1
		if k < 1 {
			k = 1
		}
		if max > min {
			binWidth = (max - min) / float64(k)
		} else {
			binWidth = 1
		}
	}

	if max == min {
		return []models.Bin{{Low: min, High: min + binWidth, Count: len(xs)}}, nil
	}

	nbins := int(math.Ceil((max - min) / binWidth))
	if nbins < 1 {
		nbins = 1
	}
	bins := make([]models.Bin, nbins)
	for i := range bins {
		bins[i].Low = min + float64(i)*binWidth
		bins[i].High = min + float64(i+1)*binWidth
	}
	for _, x := range xs {
		idx := int((x - min) / binWidth)
		// The maximum value falls on the upper edge of the last bin.
		if idx >= nbins {
			idx = nbins - 1
		}
		bins[idx].Count++
	}
	return bins, nil
}

// SalaryBoxPlots returns the five-number salary summary for each of the
// top-n job titles, in ranking order.
func (a *Analyzer) SalaryBoxPlots(n int) ([]models.BoxPlot, error) {
	if a.ds.Len() == 0 {
		return nil, errors.NewEmptyDatasetError()
	}
	top, err := a.TopProfessions(n)
	if err != nil {
		return nil, err
	}

	byTitle := make(map[string][]float64)
	for _, rec := range a.ds.Records() {
		byTitle[rec.Title] = append(byTitle[rec.Title], rec.Salary)
	}

	plots := make([]models.BoxPlot, 0, len(top))
	for _, tc := range top {
		xs := byTitle[tc.Title]
		sample := stats.Sample{Xs: xs}
		min, max := sample.Bounds()
		plots = append(plots, models.BoxPlot{
			Title:  tc.Title,
			Min:    min,
			Q1:     sample.Quantile(0.25),
			Median: sample.Quantile(0.5),
			Q3:     sample.Quantile(0.75),
			Max:    max,
			Count:  len(xs),
		})
	}
	return plots, nil
}

// TopProfessionsChart returns the top-n titles as a bar chart series.
func (a *Analyzer) TopProfessionsChart(n int) ([]models.ChartPoint, error) {
	top, err := a.TopProfessions(n)
	if err != nil {
		return nil, err
	}
	points := make([]models.ChartPoint, len(top))
	for i, tc := range top {
		points[i] = models.ChartPoint{Label: tc.Title, Value: float64(tc.Count)}
	}
	return points, nil
}

// ExperienceChart returns mean salary per experience level as a bar chart
// series.
func (a *Analyzer) ExperienceChart() []models.ChartPoint {
	levels := a.ExperienceStats()
	points := make([]models.ChartPoint, len(levels))
	for i, ls := range levels {
		points[i] = models.ChartPoint{Label: ls.Level.Label(), Value: ls.MeanSalary}
	}
	return points
}
