// Package wordlist extracts the ordered word list from an uploaded file.
// Only the first column is read; the first row is a header and is skipped.
package wordlist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

// Separator is the CSV field delimiter expected in uploads
const Separator = ';'

// ErrEmptyUpload is returned when the upload has no header row at all
var ErrEmptyUpload = errors.New("upload is empty")

// Parse dispatches on the uploaded file name: .xlsx files are read as
// spreadsheets, everything else as semicolon-delimited CSV.
func Parse(filename string, r io.Reader) ([]string, error) {
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		return ParseXLSX(r)
	}
	return ParseCSV(r)
}

// ParseCSV reads semicolon-delimited CSV and returns the non-empty values
// of the first column in file order. Duplicates are kept.
func ParseCSV(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = Separator
	reader.FieldsPerRecord = -1 // allow variable column count

	// Skip header row.
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, ErrEmptyUpload
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	words := []string{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		if word, ok := firstColumn(record); ok {
			words = append(words, word)
		}
	}

	return words, nil
}

// ParseXLSX reads the first sheet of an Excel workbook and returns the
// non-empty values of its first column, header row excluded.
func ParseXLSX(r io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, ErrEmptyUpload
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyUpload
	}

	words := []string{}
	for _, row := range rows[1:] {
		if word, ok := firstColumn(row); ok {
			words = append(words, word)
		}
	}

	return words, nil
}

func firstColumn(record []string) (string, bool) {
	if len(record) == 0 {
		return "", false
	}
	word := normalize(record[0])
	return word, word != ""
}

// normalize trims surrounding whitespace and converts to NFC.
func normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
