package services

import (
	"fmt"
	"os"
	"path/filepath"
)

// Font files required for document generation. The bundled core fonts cannot
// render Turkish product descriptions, so both documents are set in a UTF-8
// TTF family loaded from disk.
const (
	FontDir         = "assets/fonts"
	FontFileRegular = "DejaVuSans.ttf"
	FontFileBold    = "DejaVuSans-Bold.ttf"
)

// AssetMissingError reports a required font file that is absent from disk.
// Document generation is aborted; the cart is untouched.
type AssetMissingError struct {
	Path string
}

func (e *AssetMissingError) Error() string {
	return fmt.Sprintf("required font file missing: %s", e.Path)
}

// FontSet holds the raw TTF bytes of the regular and bold faces used by the
// PDF and PNG generators.
type FontSet struct {
	Regular []byte
	Bold    []byte
}

// NewFontSet builds a FontSet from in-memory TTF data.
func NewFontSet(regular, bold []byte) *FontSet {
	return &FontSet{Regular: regular, Bold: bold}
}

// LoadFonts reads the regular and bold TTF files from dir. A missing file is
// an AssetMissingError so callers can surface it to the user before any
// document work starts.
func LoadFonts(dir string) (*FontSet, error) {
	regular, err := readFontFile(filepath.Join(dir, FontFileRegular))
	if err != nil {
		return nil, err
	}
	bold, err := readFontFile(filepath.Join(dir, FontFileBold))
	if err != nil {
		return nil, err
	}
	return &FontSet{Regular: regular, Bold: bold}, nil
}

func readFontFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &AssetMissingError{Path: path}
		}
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	return data, nil
}
