package analyzer

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"

	"github.com/salaryscope/salaryscope/internal/dataset"
	"github.com/salaryscope/salaryscope/internal/errors"
	"github.com/salaryscope/salaryscope/internal/models"
)

// Analyzer computes descriptive statistics over a loaded Dataset. All
// operations are pure functions of the dataset; results are recomputed on
// every call and never cached.
type Analyzer struct {
	ds *dataset.Dataset
}

// New creates an analyzer over a cleaned dataset.
func New(ds *dataset.Dataset) *Analyzer {
	return &Analyzer{ds: ds}
}

// Dataset returns the underlying dataset.
func (a *Analyzer) Dataset() *dataset.Dataset {
	return a.ds
}

// SalaryStats returns min, max, mean and median over all cleaned salaries.
// The mean is rounded to 2 decimal places.
func (a *Analyzer) SalaryStats() (models.SalaryStats, error) {
	recs := a.ds.Records()
	if len(recs) == 0 {
		return models.SalaryStats{}, errors.NewEmptyDatasetError()
	}

	sample := stats.Sample{Xs: salaries(recs)}
	min, max := sample.Bounds()

	stdDev := 0.0
	if len(recs) > 1 {
		stdDev = roundTo2(sample.StdDev())
	}

	return models.SalaryStats{
		Min:    min,
		Max:    max,
		Mean:   roundTo2(sample.Mean()),
		Median: sample.Quantile(0.5),
		StdDev: stdDev,
		Count:  len(recs),
	}, nil
}

// TopProfessions returns the n job titles with the highest occurrence
// count, descending. Ties keep first-encountered order. n larger than the
// number of distinct titles is clamped.
func (a *Analyzer) TopProfessions(n int) ([]models.TitleCount, error) {
	if n < 1 {
		return nil, errors.NewInvalidInputError("top count must be at least 1", nil)
	}

	counts := make(map[string]int)
	var order []string
	for _, rec := range a.ds.Records() {
		if counts[rec.Title] == 0 {
			order = append(order, rec.Title)
		}
		counts[rec.Title]++
	}

	result := make([]models.TitleCount, len(order))
	for i, title := range order {
		result[i] = models.TitleCount{Title: title, Count: counts[title]}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	if n > len(result) {
		n = len(result)
	}
	return result[:n], nil
}

// RichestJob returns the single posting with the maximum salary. Ties are
// broken by first occurrence in source order.
func (a *Analyzer) RichestJob() (models.Record, error) {
	recs := a.ds.Records()
	if len(recs) == 0 {
		return models.Record{}, errors.NewEmptyDatasetError()
	}

	best := recs[0]
	for _, rec := range recs[1:] {
		if rec.Salary > best.Salary {
			best = rec
		}
	}
	return best, nil
}

// SalaryGrowthForJob returns the mean salary per experience level for
// postings whose title exactly matches the given one (case-sensitive).
func (a *Analyzer) SalaryGrowthForJob(title string) ([]models.LevelStat, error) {
	var matched []models.Record
	for _, rec := range a.ds.Records() {
		if rec.Title == title {
			matched = append(matched, rec)
		}
	}
	if len(matched) == 0 {
		return nil, errors.NewNotFoundError(fmt.Sprintf("job title %q", title))
	}
	return levelStats(matched), nil
}

// ExperienceStats returns the mean salary per experience level across the
// whole dataset, ordered Entry through Executive.
func (a *Analyzer) ExperienceStats() []models.LevelStat {
	return levelStats(a.ds.Records())
}

// levelStats groups records by experience level and averages salaries.
// Levels appear in canonical order; unknown levels are skipped.
func levelStats(recs []models.Record) []models.LevelStat {
	sums := make(map[models.ExperienceLevel]float64)
	counts := make(map[models.ExperienceLevel]int)
	for _, rec := range recs {
		if rec.Level == models.LevelUnknown {
			continue
		}
		sums[rec.Level] += rec.Salary
		counts[rec.Level]++
	}

	var out []models.LevelStat
	for _, level := range models.LevelOrder {
		if counts[level] == 0 {
			continue
		}
		out = append(out, models.LevelStat{
			Level:      level,
			MeanSalary: roundTo2(sums[level] / float64(counts[level])),
			Count:      counts[level],
		})
	}
	return out
}

func salaries(recs []models.Record) []float64 {
	xs := make([]float64, len(recs))
	for i, rec := range recs {
		xs[i] = rec.Salary
	}
	return xs
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
