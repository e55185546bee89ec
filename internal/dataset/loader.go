package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/salaryscope/salaryscope/internal/errors"
	"github.com/salaryscope/salaryscope/internal/models"
)

// Canonical column names. Input CSVs may use any of the synonyms below;
// headers are standardized during load so different dataset exports all
// work without preprocessing.
const (
	colTitle  = "job_title"
	colSalary = "salary_in_usd"
	colLevel  = "experience_level"
)

var columnSynonyms = map[string][]string{
	colTitle:  {"job_title", "title", "role", "position"},
	colSalary: {"salary_in_usd", "salary", "salary_usd", "gross_salary"},
	colLevel:  {"experience_level", "experience", "exp_level", "level"},
}

var requiredColumns = []string{colTitle, colSalary, colLevel}

// Dataset is an immutable, cleaned collection of job postings. Cleaning
// happens exactly once, at load time.
type Dataset struct {
	records []models.Record
	frame   dataframe.DataFrame
	dropped int
}

// Records returns the cleaned records in source order.
func (d *Dataset) Records() []models.Record {
	return d.records
}

// Len returns the number of cleaned records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Dropped returns how many source rows were discarded during cleaning.
func (d *Dataset) Dropped() int {
	return d.dropped
}

// Frame returns the cleaned data as a gota dataframe with standardized
// column names, for callers that want dataframe operations directly.
func (d *Dataset) Frame() dataframe.DataFrame {
	return d.frame
}

type options struct {
	progress bool
}

// Option configures dataset loading.
type Option func(*options)

// WithProgress shows a byte-level progress bar while the file is read.
func WithProgress() Option {
	return func(o *options) { o.progress = true }
}

// Load reads a CSV file of job postings into a cleaned Dataset.
//
// Rows are dropped when the salary field is absent, non-numeric or
// negative, or when the title or experience field is empty. Rows with an
// unrecognized experience code are kept with an unknown level; they count
// toward overall statistics but are excluded from per-level groupings.
func Load(path string, opts ...Option) (*Dataset, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewFileNotFoundError(path, err)
		}
		return nil, errors.NewInvalidInputError(fmt.Sprintf("cannot open %s", path), err)
	}
	defer f.Close()

	var r io.Reader = f
	var bar *pb.ProgressBar
	if o.progress {
		if info, err := f.Stat(); err == nil && info.Size() > 0 {
			bar = pb.Full.Start64(info.Size())
			r = bar.NewProxyReader(f)
		}
	}

	df := dataframe.ReadCSV(r, dataframe.HasHeader(true), dataframe.DetectTypes(false))
	if bar != nil {
		bar.Finish()
	}
	if df.Err != nil {
		// gota refuses header-only input; a file with no postings is a
		// valid, empty dataset here as long as its header still carries
		// the required columns.
		if strings.Contains(df.Err.Error(), "empty DataFrame") {
			names, err := readHeader(path)
			if err != nil {
				return nil, err
			}
			if _, missing := resolveColumns(names); len(missing) > 0 {
				return nil, errors.NewMissingColumnError(missing)
			}
			return &Dataset{frame: buildFrame(nil)}, nil
		}
		return nil, errors.NewInvalidInputError(fmt.Sprintf("cannot parse %s as CSV", path), df.Err)
	}

	resolved, missing := resolveColumns(df.Names())
	if len(missing) > 0 {
		return nil, errors.NewMissingColumnError(missing)
	}

	titles := df.Col(resolved[colTitle]).Records()
	salaries := df.Col(resolved[colSalary]).Records()
	levels := df.Col(resolved[colLevel]).Records()

	records := make([]models.Record, 0, len(titles))
	dropped := 0
	for i := range titles {
		title := strings.TrimSpace(titles[i])
		rawSalary := strings.TrimSpace(salaries[i])
		rawLevel := strings.TrimSpace(levels[i])

		if isMissing(title) || isMissing(rawLevel) || isMissing(rawSalary) {
			dropped++
			continue
		}

		salary, err := strconv.ParseFloat(strings.ReplaceAll(rawSalary, ",", ""), 64)
		if err != nil || salary < 0 {
			dropped++
			continue
		}

		records = append(records, models.Record{
			Title:  title,
			Salary: salary,
			Level:  ParseLevel(rawLevel),
		})
	}

	slog.Debug("dataset loaded",
		slog.String("path", path),
		slog.Int("records", len(records)),
		slog.Int("dropped", dropped))

	return &Dataset{
		records: records,
		frame:   buildFrame(records),
		dropped: dropped,
	}, nil
}

// ParseLevel normalizes an experience field to one of the canonical codes.
// Both short codes (EN/MI/SE/EX) and common long-form spellings are
// accepted.
func ParseLevel(s string) models.ExperienceLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "EN", "ENTRY", "ENTRY-LEVEL", "ENTRY LEVEL", "JUNIOR", "JR":
		return models.LevelEntry
	case "MI", "MID", "MID-LEVEL", "MID LEVEL", "MIDDLE", "INTERMEDIATE":
		return models.LevelMid
	case "SE", "SENIOR", "SR":
		return models.LevelSenior
	case "EX", "EXEC", "EXECUTIVE", "DIRECTOR":
		return models.LevelExecutive
	default:
		return models.LevelUnknown
	}
}

// readHeader reads just the header row of a CSV file. A zero-byte file
// yields no columns.
func readHeader(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewInvalidInputError(fmt.Sprintf("cannot open %s", path), err)
	}
	defer f.Close()

	header, err := csv.NewReader(f).Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewInvalidInputError(fmt.Sprintf("cannot parse %s as CSV", path), err)
	}
	return header, nil
}

// resolveColumns maps the canonical column names to the actual CSV headers
// and reports which required columns could not be found.
func resolveColumns(names []string) (map[string]string, []string) {
	bySnake := make(map[string]string, len(names))
	for _, n := range names {
		key := toSnakeCase(n)
		if _, exists := bySnake[key]; !exists {
			bySnake[key] = n
		}
	}

	resolved := make(map[string]string, len(requiredColumns))
	var missing []string
	for _, canonical := range requiredColumns {
		found := false
		for _, alias := range columnSynonyms[canonical] {
			if actual, ok := bySnake[alias]; ok {
				resolved[canonical] = actual
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, canonical)
		}
	}
	return resolved, missing
}

// toSnakeCase converts "Job Title" to "job_title".
func toSnakeCase(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

func isMissing(s string) bool {
	switch s {
	case "", "NA", "N/A", "NaN", "nan", "null", "NULL":
		return true
	}
	return false
}

func buildFrame(records []models.Record) dataframe.DataFrame {
	titles := make([]string, len(records))
	salaries := make([]float64, len(records))
	levels := make([]string, len(records))
	for i, rec := range records {
		titles[i] = rec.Title
		salaries[i] = rec.Salary
		levels[i] = string(rec.Level)
	}
	return dataframe.New(
		series.New(titles, series.String, colTitle),
		series.New(salaries, series.Float, colSalary),
		series.New(levels, series.String, colLevel),
	)
}
