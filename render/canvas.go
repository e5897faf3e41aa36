package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gpbacay/Arcanus-Sphere/component"
	"github.com/gpbacay/Arcanus-Sphere/vmath"
)

// Canvas is an additive linear-rgb accumulation buffer
// Values may exceed 1 until output, where they are clamped
type Canvas struct {
	W, H    int
	pix     []vmath.Vec3F
	scratch []vmath.Vec3F
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates only when the area grows; contents are cleared
func (c *Canvas) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	n := w * h
	if cap(c.pix) < n {
		c.pix = make([]vmath.Vec3F, n)
		c.scratch = make([]vmath.Vec3F, n)
	}
	c.pix = c.pix[:n]
	c.scratch = c.scratch[:n]
	c.W, c.H = w, h
	c.Clear()
}

func (c *Canvas) Clear() {
	clear(c.pix)
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.W && y < c.H
}

// Add accumulates col*a at (x, y); out of bounds is ignored
func (c *Canvas) Add(x, y int, col vmath.Vec3F, a float64) {
	if !c.inBounds(x, y) {
		return
	}
	i := y*c.W + x
	c.pix[i] = vmath.V3FAdd(c.pix[i], vmath.V3FScale(col, a))
}

// At returns the accumulated value, zero out of bounds
func (c *Canvas) At(x, y int) vmath.Vec3F {
	if !c.inBounds(x, y) {
		return vmath.Vec3F{}
	}
	return c.pix[y*c.W+x]
}

// Line draws a Bresenham line, accumulating col*a on every covered cell
func (c *Canvas) Line(x0, y0, x1, y1 int, col vmath.Vec3F, a float64) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	stepX := -1
	if x0 < x1 {
		stepX = 1
	}
	stepY := -1
	if y0 < y1 {
		stepY = 1
	}

	err := dx - dy
	for {
		c.Add(x0, y0, col, a)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += stepX
		}
		if e2 < dx {
			err += dx
			y0 += stepY
		}
	}
}

// Luminance is Rec. 709 relative luminance of linear rgb
func Luminance(v vmath.Vec3F) float64 {
	return 0.2126*v.X + 0.7152*v.Y + 0.0722*v.Z
}

// Bloom spreads the portion of each cell brighter than Threshold into its 3x3 neighbourhood
// Orthogonal neighbours receive Radius/4 of the excess, diagonals Radius/8, the cell itself 1/2; all scaled by Strength
func (c *Canvas) Bloom(b component.Bloom) {
	if b.Strength <= 0 || c.W == 0 || c.H == 0 {
		return
	}
	clear(c.scratch)

	orth := b.Radius * 0.25
	diag := b.Radius * 0.125

	for y := 0; y < c.H; y++ {
		for x := 0; x < c.W; x++ {
			v := c.pix[y*c.W+x]
			lum := Luminance(v)
			if lum <= b.Threshold || lum <= 0 {
				continue
			}
			glow := vmath.V3FScale(v, (lum-b.Threshold)/lum*b.Strength)

			for oy := -1; oy <= 1; oy++ {
				for ox := -1; ox <= 1; ox++ {
					nx, ny := x+ox, y+oy
					if !c.inBounds(nx, ny) {
						continue
					}
					w := 0.5
					switch {
					case ox != 0 && oy != 0:
						w = diag
					case ox != 0 || oy != 0:
						w = orth
					}
					j := ny*c.W + nx
					c.scratch[j] = vmath.V3FAdd(c.scratch[j], vmath.V3FScale(glow, w))
				}
			}
		}
	}

	for i := range c.pix {
		c.pix[i] = vmath.V3FAdd(c.pix[i], c.scratch[i])
	}
}

// RGB8 returns the clamped 8-bit colour at (x, y)
func (c *Canvas) RGB8(x, y int) (r, g, b uint8) {
	v := c.At(x, y)
	return colorful.Color{R: v.X, G: v.Y, B: v.Z}.Clamped().RGB255()
}

// WriteRGBA packs the canvas into dst as opaque RGBA8, row-major
// dst must hold at least 4*W*H bytes
func (c *Canvas) WriteRGBA(dst []byte) {
	for i, v := range c.pix {
		r, g, b := colorful.Color{R: v.X, G: v.Y, B: v.Z}.Clamped().RGB255()
		dst[4*i] = r
		dst[4*i+1] = g
		dst[4*i+2] = b
		dst[4*i+3] = 0xff
	}
}
