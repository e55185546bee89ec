package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/salaryscope/salaryscope/internal/errors"
	"github.com/salaryscope/salaryscope/internal/models"
)

// WriteWorkbook writes each summary table to its own sheet of an xlsx
// workbook. Numeric cells are written as numbers so spreadsheet formulas
// work on them.
func WriteWorkbook(path string, tables []models.SummaryTable) error {
	if len(tables) == 0 {
		return errors.NewExportError("no tables to export", nil)
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, table := range tables {
		sheet := sheetName(table.Title)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return errors.NewExportError(fmt.Sprintf("failed to name sheet %q", sheet), err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return errors.NewExportError(fmt.Sprintf("failed to create sheet %q", sheet), err)
			}
		}

		header := make([]interface{}, len(table.Columns))
		for j, col := range table.Columns {
			header[j] = col.Label
		}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return errors.NewExportError("failed to write header row", err)
		}

		for r, row := range table.Rows {
			cells := make([]interface{}, len(row))
			for j, cell := range row {
				cells[j] = cellValue(table.Columns, j, cell)
			}
			addr := fmt.Sprintf("A%d", r+2)
			if err := f.SetSheetRow(sheet, addr, &cells); err != nil {
				return errors.NewExportError(fmt.Sprintf("failed to write row %d", r+1), err)
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewExportError("failed to create output directory", err)
	}
	if err := f.SaveAs(path); err != nil {
		return errors.NewExportError(fmt.Sprintf("failed to save workbook to %s", path), err)
	}

	slog.Debug("workbook written",
		slog.String("path", path),
		slog.Int("sheets", len(tables)))
	return nil
}

func cellValue(cols []models.Column, idx int, cell string) interface{} {
	if idx < len(cols) && cols[idx].Type != "text" {
		if v, err := strconv.ParseFloat(cell, 64); err == nil {
			return v
		}
	}
	return cell
}

// sheetName sanitizes a table title into a valid Excel sheet name
// (31 chars max, no : \ / ? * [ ]).
func sheetName(title string) string {
	replacer := strings.NewReplacer(":", "", "\\", "", "/", "", "?", "", "*", "", "[", "", "]", "")
	name := strings.TrimSpace(replacer.Replace(title))
	if name == "" {
		name = "Summary"
	}
	if len(name) > 31 {
		name = strings.TrimSpace(name[:31])
	}
	return name
}
