package export

import (
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/salaryscope/salaryscope/internal/errors"
	"github.com/salaryscope/salaryscope/internal/models"
)

// CSVWriter writes summary tables as CSV files.
type CSVWriter struct {
	// BOMPrefix adds a UTF-8 BOM so Excel recognizes the encoding.
	BOMPrefix bool
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

// WriteSummary writes one summary table to the given path, creating the
// directory if needed.
func (w *CSVWriter) WriteSummary(path string, table models.SummaryTable) error {
	slog.Debug("writing CSV file",
		slog.String("path", path),
		slog.Int("rows", len(table.Rows)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewExportError("failed to create output directory", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewExportError("failed to create file", err)
	}
	defer file.Close()

	if w.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return errors.NewExportError("failed to write BOM", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		header[i] = col.Label
	}
	if err := writer.Write(header); err != nil {
		return errors.NewExportError("failed to write header", err)
	}

	for _, row := range table.Rows {
		if err := writer.Write(row); err != nil {
			return errors.NewExportError("failed to write record", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.NewExportError("failed to flush CSV", err)
	}
	return nil
}
