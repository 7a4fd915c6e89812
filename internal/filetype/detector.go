// Package filetype detects file types by magic bytes rather than
// trusting extensions. Downloaded rules PDFs occasionally arrive with
// wrong or missing extensions; the pipeline only accepts real PDFs.
package filetype

import (
	"fmt"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog/log"
)

// IsPDF reports whether the file at path is a PDF, by content.
func IsPDF(path string) (bool, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return false, fmt.Errorf("detect file type: %w", err)
	}

	log.Debug().Str("mime", mtype.String()).Str("file", path).Msg("detected file type")
	return mtype.Is("application/pdf"), nil
}
