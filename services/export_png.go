package services

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// PNG table geometry, in pixels.
const (
	pngMargin    = 24
	pngTitleBand = 52
	pngHeaderH   = 36
	pngRowH      = 32
	pngCellPad   = 10
)

var pngColWidths = [5]int{170, 560, 70, 130, 130}

var pngColHeaders = [5]string{"MODEL", "AÇIKLAMA", "ADET", "BİRİM (EUR)", "TOPLAM (EUR)"}

var (
	pngColText     = color.NRGBA{30, 30, 30, 255}
	pngColGrid     = color.NRGBA{200, 200, 200, 255}
	pngColHeaderBg = color.NRGBA{242, 242, 242, 255}
)

// GeneratePNG renders the quote table as a raster image with a title line
// summarizing company, project, discount and grand total.
func GeneratePNG(data QuoteData, fonts *FontSet) ([]byte, error) {
	regular, err := opentype.Parse(fonts.Regular)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(fonts.Bold)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}

	bodyFace, err := opentype.NewFace(regular, &opentype.FaceOptions{Size: 15, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("build body face: %w", err)
	}
	defer bodyFace.Close()

	boldFace, err := opentype.NewFace(bold, &opentype.FaceOptions{Size: 15, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("build bold face: %w", err)
	}
	defer boldFace.Close()

	tableW := 0
	for _, w := range pngColWidths {
		tableW += w
	}
	width := tableW + 2*pngMargin
	height := pngTitleBand + pngHeaderH + pngRowH*len(data.Rows) + pngMargin

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	title := fmt.Sprintf("%s | %s | %% %s iskonto | Toplam: %s EUR + KDV",
		orDash(data.Meta.Company), orDash(data.Meta.Project),
		FormatEURDec(data.Meta.DiscountPercent, 0), data.GrandTotal)
	drawText(img, boldFace, pngMargin, pngTitleBand/2+8, title)

	tableTop := pngTitleBand

	// Header row.
	fillRect(img, image.Rect(pngMargin, tableTop, pngMargin+tableW, tableTop+pngHeaderH), pngColHeaderBg)
	x := pngMargin
	for i, h := range pngColHeaders {
		drawText(img, boldFace, x+pngCellPad, tableTop+pngHeaderH-12, h)
		x += pngColWidths[i]
	}

	// Data rows: quantities centered-ish, amounts right-aligned.
	for i, r := range data.Rows {
		rowTop := tableTop + pngHeaderH + i*pngRowH
		baseline := rowTop + pngRowH - 10

		x = pngMargin
		drawText(img, bodyFace, x+pngCellPad, baseline, truncateToWidth(bodyFace, r.Model, pngColWidths[0]-2*pngCellPad))
		x += pngColWidths[0]
		drawText(img, bodyFace, x+pngCellPad, baseline, truncateToWidth(bodyFace, r.Description, pngColWidths[1]-2*pngCellPad))
		x += pngColWidths[1]
		drawTextRight(img, bodyFace, x+pngColWidths[2]-pngCellPad, baseline, strconv.Itoa(r.Qty))
		x += pngColWidths[2]
		drawTextRight(img, bodyFace, x+pngColWidths[3]-pngCellPad, baseline, r.UnitPrice)
		x += pngColWidths[3]
		drawTextRight(img, bodyFace, x+pngColWidths[4]-pngCellPad, baseline, r.LineTotal)
	}

	drawGrid(img, pngMargin, tableTop, tableW, pngHeaderH+pngRowH*len(data.Rows), len(data.Rows))

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// drawGrid draws the outer border, column separators and row separators.
func drawGrid(img *image.RGBA, left, top, width, height, rows int) {
	right := left + width
	bottom := top + height

	fillRect(img, image.Rect(left, top, right, top+1), pngColGrid)
	fillRect(img, image.Rect(left, bottom-1, right, bottom), pngColGrid)
	fillRect(img, image.Rect(left, top, left+1, bottom), pngColGrid)
	fillRect(img, image.Rect(right-1, top, right, bottom), pngColGrid)

	// Header separator plus one line under each row.
	y := top + pngHeaderH
	for i := 0; i <= rows; i++ {
		fillRect(img, image.Rect(left, y-1, right, y), pngColGrid)
		y += pngRowH
	}

	x := left
	for _, w := range pngColWidths[:len(pngColWidths)-1] {
		x += w
		fillRect(img, image.Rect(x-1, top, x, bottom), pngColGrid)
	}
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.NRGBA) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func drawText(img *image.RGBA, face font.Face, x, y int, s string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(pngColText),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func drawTextRight(img *image.RGBA, face font.Face, rightX, y int, s string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(pngColText),
		Face: face,
	}
	w := d.MeasureString(s).Ceil()
	d.Dot = fixed.P(rightX-w, y)
	d.DrawString(s)
}

// truncateToWidth trims s with an ellipsis so it fits maxWidth pixels.
func truncateToWidth(face font.Face, s string, maxWidth int) string {
	d := &font.Drawer{Face: face}
	if d.MeasureString(s).Ceil() <= maxWidth {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "…"
		if d.MeasureString(candidate).Ceil() <= maxWidth {
			return candidate
		}
	}
	return "…"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
