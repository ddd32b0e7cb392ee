package raster

import (
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// EncodePNG renders cells as a grayscale PNG, white for alive. scale > 1
// upscales with nearest-neighbor sampling so cells stay sharp squares.
func EncodePNG(w io.Writer, cells []uint8, width, height, scale int) error {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i, c := range cells {
		if c != 0 {
			img.Pix[i] = 0xff
		}
	}
	if scale > 1 {
		dst := image.NewGray(image.Rect(0, 0, width*scale, height*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = dst
	}
	return png.Encode(w, img)
}
