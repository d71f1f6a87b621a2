package services

import (
	"strings"
	"time"
)

// ValidityDays is how long a quote stays valid after its issue date.
const ValidityDays = 5

// DefaultDiscountPercent is the discount preselected for a fresh session.
const DefaultDiscountPercent = 40.0

// Preparer is one entry of the fixed registry of people allowed to issue
// quotes. Selecting a preparer also derives the contact email and phone shown
// on the document.
type Preparer struct {
	ID    string
	Name  string
	Email string
	Phone string
}

// QuoteMeta carries the header information of a quote.
type QuoteMeta struct {
	Date            time.Time
	Company         string
	Contact         string
	Project         string
	DiscountPercent float64
	Preparer        Preparer
}

// ValidUntil returns the quote expiry date.
func (m QuoteMeta) ValidUntil() time.Time {
	return m.Date.AddDate(0, 0, ValidityDays)
}

// QuoteRow is one rendered line of the quote table. Amounts are preformatted
// so every output format (text, PDF, PNG, Excel) shows identical numbers.
type QuoteRow struct {
	Model       string
	Description string
	Qty         int
	UnitPrice   string
	LineTotal   string
}

// QuoteData holds everything the document generators need. It is assembled
// once from the cart totals and shared by all formatters; none of them hold
// state of their own.
type QuoteData struct {
	Meta       QuoteMeta
	Rows       []QuoteRow
	GrandTotal string
}

// BuildQuoteData prices the cart at the meta discount rate and assembles the
// render-ready quote.
func BuildQuoteData(cart *Cart, meta QuoteMeta) QuoteData {
	totals := cart.Totals(meta.DiscountPercent)

	rows := make([]QuoteRow, 0, len(totals.Lines))
	for _, l := range totals.Lines {
		rows = append(rows, QuoteRow{
			Model:       l.Model,
			Description: l.Description,
			Qty:         l.Quantity,
			UnitPrice:   FormatEURDec(l.UnitPrice, 2),
			LineTotal:   FormatEURDec(l.LineTotal, 2),
		})
	}

	return QuoteData{
		Meta:       meta,
		Rows:       rows,
		GrandTotal: FormatEURDec(totals.GrandTotal, 2),
	}
}

// QuoteFileName builds the download name for a quote document, substituting
// characters that are unsafe in filenames.
func QuoteFileName(meta QuoteMeta, ext string) string {
	company := meta.Company
	if company == "" {
		company = "-"
	}
	date := strings.ReplaceAll(meta.Date.Format("02.01.2006"), ".", "-")
	return "Teklif_" + sanitizeFilename(company) + "_" + date + "." + ext
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}
