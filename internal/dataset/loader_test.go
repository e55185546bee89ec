package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salaryscope/salaryscope/internal/errors"
	"github.com/salaryscope/salaryscope/internal/models"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "postings.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCleanDataset(t *testing.T) {
	path := writeCSV(t, `job_title,salary_in_usd,experience_level
Data Scientist,120000,SE
Data Engineer,95000,MI
Data Scientist,70000,EN
`)

	ds, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, 0, ds.Dropped())
	assert.Equal(t, models.Record{Title: "Data Scientist", Salary: 120000, Level: models.LevelSenior}, ds.Records()[0])
	assert.Equal(t, models.Record{Title: "Data Engineer", Salary: 95000, Level: models.LevelMid}, ds.Records()[1])
}

func TestLoadStandardizesColumnSynonyms(t *testing.T) {
	path := writeCSV(t, `Title,Salary,Experience
Dev,1000,MI
QA,3000,EN
`)

	ds, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, "Dev", ds.Records()[0].Title)
	assert.Equal(t, models.LevelMid, ds.Records()[0].Level)

	// The rebuilt frame carries canonical names regardless of input headers.
	assert.Equal(t, []string{"job_title", "salary_in_usd", "experience_level"}, ds.Frame().Names())
}

func TestLoadDropsBadSalaryRows(t *testing.T) {
	path := writeCSV(t, `job_title,salary,level
Dev,50000,EN
Dev,not-a-number,MI
Dev,,SE
Dev,-100,SE
QA,70000,Senior
`)

	ds, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, 3, ds.Dropped())
	assert.Less(t, ds.Len(), 5)
	assert.Equal(t, models.LevelSenior, ds.Records()[1].Level)
}

func TestLoadDropsRowsMissingTitleOrLevel(t *testing.T) {
	path := writeCSV(t, `job_title,salary,level
,50000,EN
Dev,60000,
Dev,70000,MI
`)

	ds, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1, ds.Len())
	assert.Equal(t, 2, ds.Dropped())
}

func TestLoadKeepsUnknownLevels(t *testing.T) {
	path := writeCSV(t, `job_title,salary,level
Dev,50000,wizard
`)

	ds, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 1, ds.Len())
	assert.Equal(t, models.LevelUnknown, ds.Records()[0].Level)
}

func TestLoadHeaderOnlyFileYieldsEmptyDataset(t *testing.T) {
	path := writeCSV(t, "job_title,salary_in_usd,experience_level\n")

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
	assert.Equal(t, 0, ds.Dropped())
}

func TestLoadHeaderOnlyFileMissingColumns(t *testing.T) {
	path := writeCSV(t, "job_title,location\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeMissingColumn))
	assert.Contains(t, err.Error(), "salary_in_usd")
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeMissingColumn))
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeFileNotFound))
}

func TestLoadMissingColumns(t *testing.T) {
	path := writeCSV(t, `job_title,location
Dev,Berlin
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeMissingColumn))
	assert.Contains(t, err.Error(), "salary_in_usd")
	assert.Contains(t, err.Error(), "experience_level")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]models.ExperienceLevel{
		"EN":           models.LevelEntry,
		"en":           models.LevelEntry,
		"Junior":       models.LevelEntry,
		"MI":           models.LevelMid,
		"Intermediate": models.LevelMid,
		"SE":           models.LevelSenior,
		"sr":           models.LevelSenior,
		"EX":           models.LevelExecutive,
		"Director":     models.LevelExecutive,
		"??":           models.LevelUnknown,
	}
	for input, want := range cases {
		assert.Equal(t, want, ParseLevel(input), "input %q", input)
	}
}

func TestResolveColumnsReportsAllMissing(t *testing.T) {
	_, missing := resolveColumns([]string{"city", "company"})
	assert.Equal(t, []string{"job_title", "salary_in_usd", "experience_level"}, missing)
}
