package models

// ExperienceLevel is the categorical seniority tag attached to a posting.
type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "EN"
	LevelMid       ExperienceLevel = "MI"
	LevelSenior    ExperienceLevel = "SE"
	LevelExecutive ExperienceLevel = "EX"
	LevelUnknown   ExperienceLevel = ""
)

// LevelOrder is the canonical display order for experience levels.
var LevelOrder = []ExperienceLevel{LevelEntry, LevelMid, LevelSenior, LevelExecutive}

var levelLabels = map[ExperienceLevel]string{
	LevelEntry:     "Entry-level (Junior)",
	LevelMid:       "Mid-level",
	LevelSenior:    "Senior",
	LevelExecutive: "Executive",
}

// Label returns the human-readable name for a level.
func (l ExperienceLevel) Label() string {
	if label, ok := levelLabels[l]; ok {
		return label
	}
	return "Unknown"
}

// Record represents a single cleaned job posting
type Record struct {
	Title  string          `json:"title"`
	Salary float64         `json:"salary"`
	Level  ExperienceLevel `json:"level"`
}

// SalaryStats holds descriptive statistics over all cleaned salaries
type SalaryStats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Count  int     `json:"count"`
}

// TitleCount is one row of a top-professions ranking
type TitleCount struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

// LevelStat is the mean salary for one experience level
type LevelStat struct {
	Level      ExperienceLevel `json:"level"`
	MeanSalary float64         `json:"mean_salary"`
	Count      int             `json:"count"`
}

// Column describes one column of a summary table
type Column struct {
	Label string `json:"label"`
	Type  string `json:"type"` // "text", "number", "currency"
}

// SummaryTable is a render-agnostic tabular summary. Any rendering or
// export component can consume it without knowing which aggregation
// produced it.
type SummaryTable struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ChartPoint is a single label/value pair in a bar chart series.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Bin is one bucket of a salary histogram. Low is inclusive, High is
// exclusive except for the last bin.
type Bin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// BoxPlot is the five-number summary of salaries for one job title.
type BoxPlot struct {
	Title  string  `json:"title"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	Count  int     `json:"count"`
}
