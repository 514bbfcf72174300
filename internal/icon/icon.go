// Package icon draws the luWidget app icon: a dark rounded tile with a
// blue disc and a green notification badge.
package icon

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

var (
	tile  = color.RGBA{R: 0x1a, G: 0x1b, B: 0x26, A: 0xff} // #1a1b26
	disc  = color.RGBA{R: 0x7a, G: 0xa2, B: 0xf7, A: 0xff} // #7aa2f7
	badge = color.RGBA{R: 0x9e, G: 0xce, B: 0x6a, A: 0xff} // #9ece6a
)

// Draw renders the icon at size×size pixels.
func Draw(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)
	radius := s / 5

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			if !inRoundedRect(px, py, s, radius) {
				continue
			}
			c := tile
			if inCircle(px, py, s*0.45, s*0.55, s*0.28) {
				c = disc
			}
			switch {
			case inCircle(px, py, s*0.74, s*0.26, s*0.13):
				c = badge
			case inCircle(px, py, s*0.74, s*0.26, s*0.17):
				c = tile // ring separating the badge from the disc
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// PNG returns the icon encoded as PNG.
func PNG(size int) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, Draw(size)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func inCircle(x, y, cx, cy, r float64) bool {
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}

func inRoundedRect(x, y, s, r float64) bool {
	cx := clamp(x, r, s-r)
	cy := clamp(y, r, s-r)
	return inCircle(x, y, cx, cy, r)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
