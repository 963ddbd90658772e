// Package report renders batch validation reports as text, JSON or an .xlsx
// workbook.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"swiftkit/internal/core"
)

type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatWorkbook Format = "xlsx"
)

const (
	sheetName          = "Report"
	inputColumnWidth   = 40
	messageColumnWidth = 80
)

var rule = strings.Repeat("=", 60)

// FormatFromPath picks the format from a file extension. Unknown extensions
// render as JSON, which is the historical file report format.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return FormatWorkbook
	case ".txt", ".log":
		return FormatText
	default:
		return FormatJSON
	}
}

func Write(w io.Writer, r core.BatchReport, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, r)
	case FormatWorkbook:
		return writeWorkbook(w, r)
	case FormatText:
		return writeText(w, r)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// Summary is the one-line count footer.
func Summary(r core.BatchReport) string {
	return fmt.Sprintf("Total: %d | Valid: %d | Invalid: %d", r.Total, r.ValidCount, r.InvalidCount)
}

func writeJSON(w io.Writer, r core.BatchReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	return nil
}

func writeText(w io.Writer, r core.BatchReport) error {
	var b strings.Builder

	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Validation report (%s)\n", strings.ToUpper(r.Type))
	fmt.Fprintln(&b, rule)
	for _, c := range r.Results {
		status := "✗"
		if c.Valid {
			status = "✓"
		}
		fmt.Fprintf(&b, "%s %-40s : %s\n", status, c.Input, c.Message)
	}
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, Summary(r))

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

func writeWorkbook(w io.Writer, r core.BatchReport) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name report sheet: %w", err)
	}

	header := []any{"Input", "Valid", "Message"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", "C1", style); err != nil {
		return fmt.Errorf("failed to style report header: %w", err)
	}

	for i, c := range r.Results {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{c.Input, c.Valid, c.Message}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write report row %d: %w", i+1, err)
		}
	}

	summaryRow := len(r.Results) + 3
	summary := []any{"Total", r.Total, "Valid", r.ValidCount, "Invalid", r.InvalidCount}
	cell, err := excelize.CoordinatesToCellName(1, summaryRow)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, cell, &summary); err != nil {
		return fmt.Errorf("failed to write report summary: %w", err)
	}

	if err := f.SetColWidth(sheetName, "A", "A", inputColumnWidth); err != nil {
		return fmt.Errorf("failed to size report columns: %w", err)
	}
	if err := f.SetColWidth(sheetName, "C", "C", messageColumnWidth); err != nil {
		return fmt.Errorf("failed to size report columns: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write report workbook: %w", err)
	}

	return nil
}
