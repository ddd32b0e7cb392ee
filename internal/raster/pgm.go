// Package raster serializes generations to image files, one file per
// generation. The native format is a binary PGM (P5) with maxval 1: a
// short text header followed by one byte per cell, row-major, 1 for
// alive and 0 for dead.
package raster

import (
	"bufio"
	"fmt"
	"io"
)

// EncodePGM writes cells as a binary PGM with maxval 1.
func EncodePGM(w io.Writer, cells []uint8, width, height int) error {
	if len(cells) != width*height {
		return fmt.Errorf("raster: %d cells for a %dx%d frame", len(cells), width, height)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P5\n%d %d 1\n", width, height)
	for _, c := range cells {
		if c != 0 {
			bw.WriteByte(1)
		} else {
			bw.WriteByte(0)
		}
	}
	return bw.Flush()
}

// DecodePGM reads a frame written by EncodePGM. Any nonzero payload byte
// decodes as a live cell.
func DecodePGM(r io.Reader) (cells []uint8, width, height int, err error) {
	br := bufio.NewReader(r)
	var magic string
	var maxval int
	if _, err = fmt.Fscan(br, &magic, &width, &height, &maxval); err != nil {
		return nil, 0, 0, fmt.Errorf("raster: bad header: %w", err)
	}
	if magic != "P5" {
		return nil, 0, 0, fmt.Errorf("raster: not a P5 file, got %q", magic)
	}
	if width <= 0 || height <= 0 {
		return nil, 0, 0, fmt.Errorf("raster: bad dimensions %dx%d", width, height)
	}
	// Single whitespace byte between the header and the payload.
	if _, err = br.ReadByte(); err != nil {
		return nil, 0, 0, fmt.Errorf("raster: bad header: %w", err)
	}
	cells = make([]uint8, width*height)
	if _, err = io.ReadFull(br, cells); err != nil {
		return nil, 0, 0, fmt.Errorf("raster: short payload: %w", err)
	}
	for i, c := range cells {
		if c != 0 {
			cells[i] = 1
		}
	}
	return cells, width, height, nil
}
