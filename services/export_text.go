package services

import (
	"strconv"
	"strings"
)

// GenerateText renders the copy-paste line summary of a quote, one product
// per line: MODEL / DESCRIPTION / QTY ADET / UNIT EUR + KDV.
func GenerateText(data QuoteData) string {
	lines := make([]string, 0, len(data.Rows))
	for _, r := range data.Rows {
		var b strings.Builder
		b.WriteString(r.Model)
		b.WriteString(" / ")
		b.WriteString(r.Description)
		b.WriteString(" / ")
		b.WriteString(strconv.Itoa(r.Qty))
		b.WriteString(" ADET / ")
		b.WriteString(r.UnitPrice)
		b.WriteString(" EUR + KDV")
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}
