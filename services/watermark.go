package services

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// watermarkAlpha keeps the repeated text faint enough to not obscure the
// table printed over it.
const watermarkAlpha = 26

// GenerateWatermarkPNG renders the given text repeated diagonally across a
// width x height canvas and returns it PNG-encoded. The text runs along the
// page diagonal, sized so a single repetition spans roughly a third of it.
func GenerateWatermarkPNG(fonts *FontSet, text string, width, height int) ([]byte, error) {
	if text == "" || width <= 0 || height <= 0 {
		return nil, fmt.Errorf("watermark needs text and a positive canvas size")
	}

	ttf, err := opentype.Parse(fonts.Bold)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}

	diag := math.Hypot(float64(width), float64(height))

	// Scale the face so one occurrence of the text covers about a third of
	// the diagonal, regardless of page geometry.
	size := diag / 3 / (0.58 * float64(len([]rune(text))))
	face, err := opentype.NewFace(ttf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build watermark face: %w", err)
	}
	defer face.Close()

	// Draw horizontal repetitions on a square tile large enough to cover the
	// page after rotation.
	side := int(diag) + 1
	tile := image.NewNRGBA(image.Rect(0, 0, side, side))

	drawer := &font.Drawer{
		Dst:  tile,
		Src:  image.NewUniform(color.NRGBA{A: watermarkAlpha}),
		Face: face,
	}

	unit := text + "      "
	unitWidth := drawer.MeasureString(unit).Ceil()
	if unitWidth <= 0 {
		unitWidth = side
	}
	lineStep := int(size * 3)
	if lineStep < 1 {
		lineStep = 1
	}

	for y := lineStep; y < side+lineStep; y += lineStep {
		// Stagger alternating lines by half a repetition.
		offset := 0
		if (y/lineStep)%2 == 0 {
			offset = -unitWidth / 2
		}
		for x := offset; x < side; x += unitWidth {
			drawer.Dot = fixed.P(x, y)
			drawer.DrawString(unit)
		}
	}

	angle := math.Atan2(float64(height), float64(width)) * 180 / math.Pi
	rotated := imaging.Rotate(tile, angle, color.NRGBA{})
	cropped := imaging.CropCenter(rotated, width, height)

	var buf bytes.Buffer
	if err := png.Encode(&buf, cropped); err != nil {
		return nil, fmt.Errorf("encode watermark: %w", err)
	}
	return buf.Bytes(), nil
}
