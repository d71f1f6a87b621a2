package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateExcel creates a spreadsheet version of the quote and returns the
// file contents as a byte slice.
func GenerateExcel(data QuoteData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Teklif"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E"}
	lastCol := columns[len(columns)-1]

	widths := []float64{22, 56, 8, 16, 16}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	infoLabelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 10},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#F5F5F5"}, Pattern: 1},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create info label style: %w", err)
	}

	infoValueStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create info value style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#212529"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	rowStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create row style: %w", err)
	}

	amountStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "right"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create amount style: %w", err)
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	// ── Title ───────────────────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", "TEKLİF")
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	// ── Info block (rows 3..10) ─────────────────────────────────────────

	meta := data.Meta
	info := [][2]string{
		{"Tarih", meta.Date.Format("02.01.2006")},
		{"Geçerlilik", meta.ValidUntil().Format("02.01.2006")},
		{"Firma İsmi", orDash(meta.Company)},
		{"Yetkili İsmi", orDash(meta.Contact)},
		{"Proje İsmi", orDash(meta.Project)},
		{"Teklifi Hazırlayan", orDash(meta.Preparer.Name)},
		{"E-mail", orDash(meta.Preparer.Email)},
		{"Telefon", orDash(meta.Preparer.Phone)},
	}

	row := 3
	for _, pair := range info {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+rowStr, pair[0])
		f.SetCellStyle(sheetName, "A"+rowStr, "A"+rowStr, infoLabelStyle)
		if err := f.MergeCell(sheetName, "B"+rowStr, lastCol+rowStr); err != nil {
			return nil, fmt.Errorf("merge info row: %w", err)
		}
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(pair[1]))
		f.SetCellStyle(sheetName, "B"+rowStr, lastCol+rowStr, infoValueStyle)
		row++
	}

	// ── Table header ────────────────────────────────────────────────────

	row++
	headerRow := fmt.Sprintf("%d", row)
	headers := []string{"Model", "Açıklama", "Adet", "Birim (EUR)", "Tutar (EUR)"}
	for i, h := range headers {
		f.SetCellValue(sheetName, columns[i]+headerRow, h)
	}
	f.SetCellStyle(sheetName, "A"+headerRow, lastCol+headerRow, headerStyle)
	row++

	// ── Data rows ───────────────────────────────────────────────────────

	for _, r := range data.Rows {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(r.Model))
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(r.Description))
		f.SetCellValue(sheetName, "C"+rowStr, r.Qty)
		f.SetCellValue(sheetName, "D"+rowStr, r.UnitPrice)
		f.SetCellValue(sheetName, "E"+rowStr, r.LineTotal)
		f.SetCellStyle(sheetName, "A"+rowStr, "C"+rowStr, rowStyle)
		f.SetCellStyle(sheetName, "D"+rowStr, lastCol+rowStr, amountStyle)
		row++
	}

	// ── Total ───────────────────────────────────────────────────────────

	row++
	totalRow := fmt.Sprintf("%d", row)
	f.SetCellValue(sheetName, "D"+totalRow, "Toplam:")
	f.SetCellStyle(sheetName, "D"+totalRow, "D"+totalRow, totalStyle)
	f.SetCellValue(sheetName, "E"+totalRow, data.GrandTotal+" EUR + KDV")
	f.SetCellStyle(sheetName, "E"+totalRow, "E"+totalRow, totalStyle)

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 || s == "-" {
		// "-" is the blank-field placeholder, not a formula.
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
