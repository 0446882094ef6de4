// Package csvfile reads and writes the tabular files being translated.
// Input files carry at least three columns: an opaque key, the source
// text, and the target column each output file gets populated with.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/csvtrans/internal"
)

// Row is a single record of the file being translated
type Row struct {
	Key    string // opaque identifier, passed through unchanged
	Source string // text to translate
	Target string // translated text, populated per output file
}

// File is a parsed CSV file
type File struct {
	Header []string
	Rows   []Row
}

// Read parses and validates a CSV file. The header row is required, must
// have at least three columns, and at least one data row must follow.
// Short data rows are padded with empty cells.
func Read(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	header := records[0]
	if len(header) < 3 {
		return nil, fmt.Errorf("CSV must have at least 3 columns, found %d", len(header))
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("CSV file has no data rows")
	}

	file := &File{Header: header}
	for _, record := range records[1:] {
		for len(record) < 3 {
			record = append(record, "")
		}
		file.Rows = append(file.Rows, Row{
			Key:    record[0],
			Source: record[1],
			Target: record[2],
		})
	}

	return file, nil
}

// Write writes the file to path, header first
func (f *File) Write(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer out.Close()

	writer := csv.NewWriter(out)
	defer writer.Flush()

	if err := writer.Write(f.Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range f.Rows {
		if err := writer.Write([]string{row.Key, row.Source, row.Target}); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// OutputPath derives the per-language output file name from the input
// file name: questions.csv translated to "French (Canada)" becomes
// questions_french_canada.csv in outputDir.
func OutputPath(inputPath, language, outputDir string) string {
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	name := fmt.Sprintf("%s_%s%s", stem, internal.SanitizeLanguage(language), ext)
	return filepath.Join(outputDir, name)
}
