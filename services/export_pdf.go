package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"
)

// DistributorName is printed on the letterhead and repeated as the page
// watermark.
const DistributorName = "TERMOLINE ISI SISTEMLERI"

const quoteFontFamily = "quote"

// Watermark canvas matches A4 portrait at 150dpi.
const (
	watermarkWidthPx  = 1240
	watermarkHeightPx = 1754
)

const tableRowHeight = 7

// Fixed legal notes printed under the total on every quote.
var quoteNotes = []string{
	"Fiyatlar EUR bazında olup KDV hariçtir.",
	"Teklif, düzenlenme tarihinden itibaren 5 gün geçerlidir.",
	"Teslim süresi sipariş onayını takiben ayrıca bildirilecektir.",
	"Nakliye ve montaj teklife dahil değildir.",
}

// GeneratePDF creates the quote document using maroto/v2: an info block, the
// five-column line-item table with its header repeated on page overflow, the
// grand total, legal notes and a diagonal watermark. The font set is required
// because the bundled core fonts cannot encode Turkish descriptions.
func GeneratePDF(data QuoteData, fonts *FontSet) ([]byte, error) {
	customFonts, err := repository.New().
		AddUTF8FontFromBytes(quoteFontFamily, fontstyle.Normal, fonts.Regular).
		AddUTF8FontFromBytes(quoteFontFamily, fontstyle.Italic, fonts.Regular).
		AddUTF8FontFromBytes(quoteFontFamily, fontstyle.Bold, fonts.Bold).
		AddUTF8FontFromBytes(quoteFontFamily, fontstyle.BoldItalic, fonts.Bold).
		Load()
	if err != nil {
		return nil, fmt.Errorf("load quote fonts: %w", err)
	}

	watermark, err := GenerateWatermarkPNG(fonts, DistributorName, watermarkWidthPx, watermarkHeightPx)
	if err != nil {
		return nil, fmt.Errorf("render watermark: %w", err)
	}

	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(12).
		WithRightMargin(15).
		WithCustomFonts(customFonts).
		WithDefaultFont(&props.Font{Family: quoteFontFamily}).
		WithBackgroundImage(watermark, extension.Png).
		WithPageNumber(props.PageNumber{
			Pattern: "Sayfa {current} / {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteTitle(m)
	addInfoBlock(m, data.Meta)

	m.AddRows(quoteTableHeader())
	for _, r := range data.Rows {
		if !m.FitlnCurrentPage(tableRowHeight) {
			m.AddPages(page.New())
			m.AddRows(quoteTableHeader())
		}
		m.AddRows(quoteTableRow(r))
	}

	addTotal(m, data)
	addNotes(m)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quote PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuoteTitle adds the letterhead row: distributor left, TEKLİF right.
func addQuoteTitle(m core.Maroto) {
	m.AddRows(
		row.New(12).Add(
			col.New(7).Add(
				text.New(DistributorName, props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(5).Add(
				text.New("TEKLİF", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)
	m.AddRows(row.New(4))
}

// addInfoBlock adds the two-column quote header table: dates, customer,
// project, preparer and contact details. The discount rate is deliberately
// not printed on the document.
func addInfoBlock(m core.Maroto, meta QuoteMeta) {
	labelBg := &props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 245, Blue: 245}}
	labelText := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left, Left: 2}
	valueText := props.Text{Size: 9, Align: align.Left, Left: 2}

	pairs := []struct {
		label string
		value string
	}{
		{"Tarih", meta.Date.Format("02.01.2006")},
		{"Geçerlilik", meta.ValidUntil().Format("02.01.2006")},
		{"Firma İsmi", orDash(meta.Company)},
		{"Yetkili İsmi", orDash(meta.Contact)},
		{"Proje İsmi", orDash(meta.Project)},
		{"Teklifi Hazırlayan", orDash(meta.Preparer.Name)},
		{"E-mail", orDash(meta.Preparer.Email)},
		{"Telefon", orDash(meta.Preparer.Phone)},
	}

	for _, p := range pairs {
		m.AddRows(
			row.New(6).Add(
				col.New(3).Add(text.New(p.label, labelText)).WithStyle(labelBg),
				col.New(9).Add(text.New(p.value, valueText)),
			),
		)
	}

	m.AddRows(row.New(5))
}

// quoteTableHeader builds the five-column header row. It is re-added at the
// top of every page the table overflows onto.
func quoteTableHeader() core.Row {
	headerBg := &props.Cell{BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41}}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerTextLeft.Left = 2

	return row.New(8).Add(
		col.New(2).Add(text.New("Model", headerTextLeft)).WithStyle(headerBg),
		col.New(5).Add(text.New("Açıklama", headerTextLeft)).WithStyle(headerBg),
		col.New(1).Add(text.New("Adet", headerText)).WithStyle(headerBg),
		col.New(2).Add(text.New("Birim (EUR)", headerText)).WithStyle(headerBg),
		col.New(2).Add(text.New("Tutar (EUR)", headerText)).WithStyle(headerBg),
	)
}

// quoteTableRow builds one line-item row.
func quoteTableRow(r QuoteRow) core.Row {
	baseText := props.Text{Size: 8, Align: align.Left, Left: 2}
	centerText := props.Text{Size: 8, Align: align.Center}
	rightText := props.Text{Size: 8, Align: align.Right, Right: 2}

	return row.New(tableRowHeight).Add(
		col.New(2).Add(text.New(r.Model, baseText)),
		col.New(5).Add(text.New(r.Description, baseText)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", r.Qty), centerText)),
		col.New(2).Add(text.New(r.UnitPrice, rightText)),
		col.New(2).Add(text.New(r.LineTotal, rightText)),
	)
}

// addTotal adds the grand total row under the table.
func addTotal(m core.Maroto, data QuoteData) {
	totalBg := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}

	m.AddRows(row.New(3))
	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(
				text.New("Toplam", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right, Right: 2}),
			).WithStyle(totalBg),
			col.New(4).Add(
				text.New(data.GrandTotal+" EUR + KDV", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right, Right: 2}),
			).WithStyle(totalBg),
		),
	)
}

// addNotes adds the fixed legal notes block.
func addNotes(m core.Maroto) {
	m.AddRows(row.New(4))
	for i, note := range quoteNotes {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(
					text.New(fmt.Sprintf("Not %d: %s", i+1, note), props.Text{
						Size:  8,
						Align: align.Left,
						Color: &props.Color{Red: 90, Green: 90, Blue: 90},
					}),
				),
			),
		)
	}
}
