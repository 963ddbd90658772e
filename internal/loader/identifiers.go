package loader

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadIdentifiersFile reads one identifier per line from a text file, or the
// first column of the first sheet from an .xlsx workbook.
func ReadIdentifiersFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read identifier file: %w", err)
	}

	return ReadIdentifiers(data)
}

// ReadIdentifiers detects the workbook format from its magic bytes. Blank
// entries are skipped and every entry is trimmed. Text lines have no length
// limit so an oversized line still comes back as one entry.
func ReadIdentifiers(data []byte) ([]string, error) {
	if isWorkbook(data) {
		return readWorkbook(data)
	}

	var identifiers []string
	reader := bufio.NewReader(bytes.NewReader(data))
	for {
		line, err := reader.ReadString('\n')
		if value := strings.TrimSpace(line); value != "" {
			identifiers = append(identifiers, value)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read identifier file: %w", err)
		}
	}

	return identifiers, nil
}

func readWorkbook(data []byte) ([]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("no sheets found in workbook")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook rows: %w", err)
	}

	var identifiers []string
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if value := strings.TrimSpace(row[0]); value != "" {
			identifiers = append(identifiers, value)
		}
	}

	return identifiers, nil
}

// isWorkbook checks for the ZIP header of an .xlsx file.
func isWorkbook(data []byte) bool {
	return len(data) >= 4 && data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04
}
