package pdfio

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// RenderPageJPEG renders a page at the given DPI and returns JPEG bytes.
func (d *Document) RenderPageJPEG(pageIndex, dpi, quality int) ([]byte, error) {
	if err := d.checkIndex(pageIndex); err != nil {
		return nil, err
	}

	img, err := d.doc.ImageDPI(pageIndex, float64(dpi))
	if err != nil {
		return nil, fmt.Errorf("render page %d: %w", pageIndex+1, err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode page %d jpeg: %w", pageIndex+1, err)
	}

	bounds := img.Bounds()
	log.Debug().
		Int("page", pageIndex+1).
		Int("width", bounds.Dx()).
		Int("height", bounds.Dy()).
		Int("dpi", dpi).
		Int("jpeg_size", buf.Len()).
		Msg("rendered page")

	return buf.Bytes(), nil
}

// SavePageJPEG renders a page and writes it to outPath, creating parent
// directories as needed.
func (d *Document) SavePageJPEG(pageIndex, dpi, quality int, outPath string) error {
	data, err := d.RenderPageJPEG(pageIndex, dpi, quality)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}
