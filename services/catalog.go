package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CatalogEntry is one row of the normalized price list.
type CatalogEntry struct {
	Model       string
	Description string
	ListPrice   float64
}

// SkippedRow records why a price-list row was dropped during normalization.
type SkippedRow struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// LoadResult is returned after parsing and normalizing an uploaded price list.
type LoadResult struct {
	Entries  []CatalogEntry
	Skipped  []SkippedRow
	FileName string
}

// SchemaError reports required catalog columns that could not be resolved
// from the uploaded headers, even after synonym mapping.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("price list is missing required columns: %s", strings.Join(e.Missing, ", "))
}

// Canonical catalog fields.
const (
	fieldModel       = "model"
	fieldDescription = "description"
	fieldListPrice   = "list_price"
)

// headerSynonyms maps each canonical field to the upper-cased column headers
// accepted for it. Supplier lists come with Turkish and English headers in
// either casing.
var headerSynonyms = map[string][]string{
	fieldModel:       {"MODEL", "KOD", "ÜRÜN KODU", "URUN KODU", "STOK KODU"},
	fieldDescription: {"AÇIKLAMA", "ACIKLAMA", "ÜRÜN AÇIKLAMASI", "URUN ACIKLAMASI", "DESCRIPTION"},
	fieldListPrice:   {"LİSTE FİYATI", "LISTE FIYATI", "FİYAT", "FIYAT", "PRICE", "LİSTE FİYAT"},
}

// mapCatalogHeaders resolves uploaded column headers to canonical field names.
// It returns the column index of each canonical field, or a SchemaError when
// one is unmapped.
func mapCatalogHeaders(headers []string) (map[string]int, error) {
	synonymToField := make(map[string]string)
	for field, names := range headerSynonyms {
		for _, name := range names {
			synonymToField[name] = field
		}
	}

	columns := make(map[string]int, 3)
	for i, h := range headers {
		norm := strings.ToUpper(strings.TrimSpace(h))
		field, ok := synonymToField[norm]
		if !ok {
			continue
		}
		if _, seen := columns[field]; !seen {
			columns[field] = i
		}
	}

	var missing []string
	for _, field := range []string{fieldModel, fieldDescription, fieldListPrice} {
		if _, ok := columns[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}
	return columns, nil
}

// ParsePrice converts a price cell to a float. Supplier lists mix European
// and plain notation, so when both separators appear the "." is taken as the
// thousands separator and "," as the decimal separator ("1.234,56"); a single
// separator of either kind is treated as the decimal separator.
func ParsePrice(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if s == "" {
		return 0, fmt.Errorf("empty price")
	}

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case hasComma:
		s = strings.ReplaceAll(s, ",", ".")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable price %q", s)
	}
	return v, nil
}

// NormalizePriceList maps raw header + data rows onto catalog entries.
// Rows with no model or an unparseable price are dropped and reported in
// LoadResult.Skipped; the load as a whole only fails on a schema mismatch.
func NormalizePriceList(headers []string, dataRows [][]string) (*LoadResult, error) {
	columns, err := mapCatalogHeaders(headers)
	if err != nil {
		return nil, err
	}

	result := &LoadResult{}
	for rowIdx, row := range dataRows {
		rowNum := rowIdx + 2 // 1-indexed, +1 for the header row

		model := strings.TrimSpace(cellAt(row, columns[fieldModel]))
		if model == "" {
			result.Skipped = append(result.Skipped, SkippedRow{Row: rowNum, Reason: "missing model"})
			continue
		}

		price, err := ParsePrice(cellAt(row, columns[fieldListPrice]))
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedRow{Row: rowNum, Reason: err.Error()})
			continue
		}

		result.Entries = append(result.Entries, CatalogEntry{
			Model:       model,
			Description: strings.TrimSpace(cellAt(row, columns[fieldDescription])),
			ListPrice:   price,
		})
	}
	return result, nil
}

func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

// ParsePriceListFile parses an uploaded .csv or .xlsx price list and
// normalizes it into catalog entries.
func ParsePriceListFile(file io.Reader, fileName string) (*LoadResult, error) {
	var headers []string
	var dataRows [][]string
	var err error

	lowerName := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(lowerName, ".csv"):
		headers, dataRows, err = parseCSV(file)
	case strings.HasSuffix(lowerName, ".xlsx"):
		headers, dataRows, err = parseExcel(file)
	default:
		return nil, fmt.Errorf("unsupported file format: must be .csv or .xlsx")
	}
	if err != nil {
		return nil, err
	}

	result, err := NormalizePriceList(headers, dataRows)
	if err != nil {
		return nil, err
	}
	result.FileName = fileName
	return result, nil
}

// parseCSV reads a CSV file and returns headers + data rows.
func parseCSV(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	return allRows[0], allRows[1:], nil
}

// parseExcel reads an xlsx file and returns headers + data rows from the first sheet.
func parseExcel(file io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	return rows[0], rows[1:], nil
}
