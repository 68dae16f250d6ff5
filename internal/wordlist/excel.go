package wordlist

import (
	"fmt"
	"strings"

	"wordofday/internal/domain"

	"github.com/xuri/excelize/v2"
)

// Column layout of an imported workbook: word, definition, part of speech, example.
// The first row is a header.
const (
	colWord = iota
	colDefinition
	colPartOfSpeech
	colExample
)

// ExcelFileRepo reads the word list from the first sheet of an XLSX workbook
type ExcelFileRepo struct {
	path  string
	sheet string
}

// NewExcelFileRepo creates a repository for the given workbook.
// An empty sheet name selects the first sheet.
func NewExcelFileRepo(path, sheet string) *ExcelFileRepo {
	return &ExcelFileRepo{path: path, sheet: sheet}
}

// ListWords reads every non-blank row after the header
func (r *ExcelFileRepo) ListWords() ([]domain.Word, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := r.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", r.path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	var words []domain.Word
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if isBlankRow(row) {
			continue
		}

		words = append(words, domain.Word{
			Text:         cell(row, colWord),
			Definition:   cell(row, colDefinition),
			PartOfSpeech: domain.ParsePartOfSpeech(cell(row, colPartOfSpeech)),
			Example:      cell(row, colExample),
		})
	}

	return words, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
