package services

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"both separators european", "1.234,56", 1234.56},
		{"dot only is decimal", "1234.56", 1234.56},
		{"comma only is decimal", "1234,56", 1234.56},
		{"plain integer", "2215", 2215},
		{"embedded spaces", "1 234,56", 1234.56},
		{"leading whitespace", "  815", 815},
		{"grouped millions", "1.234.567,89", 1234567.89},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.input)
			if err != nil {
				t.Fatalf("ParsePrice(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePrice(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePrice_Invalid(t *testing.T) {
	for _, input := range []string{"", "abc", "12,34,56abc", "-"} {
		if _, err := ParsePrice(input); err == nil {
			t.Errorf("ParsePrice(%q) expected error, got none", input)
		}
	}
}

func TestNormalizePriceList_SynonymHeaders(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
	}{
		{"canonical turkish", []string{"MODEL", "AÇIKLAMA", "LİSTE FİYATI"}},
		{"stock code synonyms", []string{"STOK KODU", "ACIKLAMA", "FIYAT"}},
		{"english", []string{"KOD", "DESCRIPTION", "PRICE"}},
		{"mixed case with spaces", []string{" model ", " Açıklama", "liste fiyatı "}},
	}

	rows := [][]string{{"KSH-0800", "Solar boyler 800 lt", "2.215,00"}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NormalizePriceList(tt.headers, rows)
			if err != nil {
				t.Fatalf("NormalizePriceList() error = %v", err)
			}
			if len(result.Entries) != 1 {
				t.Fatalf("expected 1 entry, got %d", len(result.Entries))
			}
			e := result.Entries[0]
			if e.Model != "KSH-0800" || e.Description != "Solar boyler 800 lt" || e.ListPrice != 2215 {
				t.Errorf("unexpected entry: %+v", e)
			}
		})
	}
}

func TestNormalizePriceList_MissingColumnFails(t *testing.T) {
	headers := []string{"MODEL", "LİSTE FİYATI"} // no description column
	rows := [][]string{{"KSH-0800", "2215"}}

	_, err := NormalizePriceList(headers, rows)
	if err == nil {
		t.Fatal("expected SchemaError, got nil")
	}

	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected *SchemaError, got %T: %v", err, err)
	}
	if len(schemaErr.Missing) != 1 || schemaErr.Missing[0] != "description" {
		t.Errorf("SchemaError.Missing = %v, want [description]", schemaErr.Missing)
	}
}

func TestNormalizePriceList_DropsBadRows(t *testing.T) {
	headers := []string{"MODEL", "AÇIKLAMA", "LİSTE FİYATI"}
	rows := [][]string{
		{"KSH-0800", "Solar boyler", "2215"},
		{"", "no model here", "100"},
		{"KBS-1000", "Tek serpantinli", "abc"},
		{"KBS-0800", "Tek serpantinli", "1494"},
	}

	result, err := NormalizePriceList(headers, rows)
	if err != nil {
		t.Fatalf("NormalizePriceList() error = %v", err)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(result.Entries))
	}
	if result.Entries[0].Model != "KSH-0800" || result.Entries[1].Model != "KBS-0800" {
		t.Errorf("unexpected entries: %+v", result.Entries)
	}
	if len(result.Skipped) != 2 {
		t.Fatalf("expected 2 skipped rows, got %d: %+v", len(result.Skipped), result.Skipped)
	}
	if result.Skipped[0].Row != 3 || result.Skipped[0].Reason != "missing model" {
		t.Errorf("unexpected first skip: %+v", result.Skipped[0])
	}
	if result.Skipped[1].Row != 4 || !strings.Contains(result.Skipped[1].Reason, "unparseable price") {
		t.Errorf("unexpected second skip: %+v", result.Skipped[1])
	}
}

func TestParsePriceListFile_CSV(t *testing.T) {
	csvData := "KOD,DESCRIPTION,PRICE\nX1,Demo boiler,\"1.000,00\"\nX2,Second boiler,815\n"

	result, err := ParsePriceListFile(strings.NewReader(csvData), "list.csv")
	if err != nil {
		t.Fatalf("ParsePriceListFile() error = %v", err)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(result.Entries))
	}
	if result.Entries[0].ListPrice != 1000 {
		t.Errorf("expected first price 1000, got %v", result.Entries[0].ListPrice)
	}
	if result.FileName != "list.csv" {
		t.Errorf("expected file name recorded, got %q", result.FileName)
	}
}

func TestParsePriceListFile_Excel(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "MODEL")
	f.SetCellValue(sheet, "B1", "AÇIKLAMA")
	f.SetCellValue(sheet, "C1", "LİSTE FİYATI")
	f.SetCellValue(sheet, "A2", "KSH-0800")
	f.SetCellValue(sheet, "B2", "Solar boyler")
	f.SetCellValue(sheet, "C2", 2215)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("failed to build test xlsx: %v", err)
	}
	f.Close()

	result, err := ParsePriceListFile(&buf, "list.xlsx")
	if err != nil {
		t.Fatalf("ParsePriceListFile() error = %v", err)
	}
	if len(result.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(result.Entries))
	}
	if result.Entries[0].ListPrice != 2215 {
		t.Errorf("expected price 2215, got %v", result.Entries[0].ListPrice)
	}
}

func TestParsePriceListFile_UnsupportedFormat(t *testing.T) {
	_, err := ParsePriceListFile(strings.NewReader("whatever"), "list.pdf")
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
