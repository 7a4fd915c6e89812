// Package preview generates downscaled thumbnails of card fronts, used
// by table setup tooling that should not pull full 300-DPI images.
package preview

import (
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"
	"github.com/rs/zerolog/log"
)

// Generate writes a thumbnail of the JPEG at srcPath to dstPath,
// bounded by maxEdge pixels on the longest side.
func Generate(srcPath, dstPath string, maxEdge uint, quality int) error {
	f, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", srcPath, err)
	}
	defer f.Close()

	img, err := jpeg.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", srcPath, err)
	}

	thumb := resize.Thumbnail(maxEdge, maxEdge, img, resize.Lanczos3)

	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("create preview dir: %w", err)
	}
	out, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", dstPath, err)
	}
	defer out.Close()

	if err := jpeg.Encode(out, thumb, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("encode %s: %w", dstPath, err)
	}

	log.Debug().Str("src", srcPath).Str("dst", dstPath).Msg("generated preview")
	return nil
}
