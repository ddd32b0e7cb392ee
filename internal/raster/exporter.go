package raster

import (
	"fmt"
	"os"
	"path/filepath"
)

// Supported frame encodings.
const (
	FormatPGM = "pgm"
	FormatPNG = "png"
)

// Exporter writes one frame file per generation into Dir. Filenames carry
// a zero-padded generation index so lexical order is generation order.
type Exporter struct {
	Dir    string
	Format string // FormatPGM or FormatPNG
	Scale  int    // PNG upscale factor, minimum 1
}

// Export writes the frame for generation t. A failure is returned to the
// caller and never retried; it does not invalidate the computed state.
func (e *Exporter) Export(cells []uint8, n, t int) error {
	ext := e.Format
	if ext == "" {
		ext = FormatPGM
	}
	path := filepath.Join(e.Dir, fmt.Sprintf("frame-%05d.%s", t, ext))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: frame %d: %w", t, err)
	}
	switch ext {
	case FormatPNG:
		err = EncodePNG(f, cells, n, n, e.Scale)
	case FormatPGM:
		err = EncodePGM(f, cells, n, n)
	default:
		err = fmt.Errorf("raster: unknown format %q", ext)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("raster: frame %d: %w", t, err)
	}
	return nil
}
