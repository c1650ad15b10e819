// Package schematic draws 2-D layout diagrams of an optical path: the
// axis, element outlines, object and image arrows and traced ray fans.
// It consumes only the exported layout and trace geometry of the engine
// and holds no optical logic of its own.
package schematic

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/lukaszgryglicki/paraxial/internal/paraxial"
)

var (
	colAxis   = color.NRGBA{160, 160, 160, 255}
	colObject = color.NRGBA{0, 0, 200, 255}
	colImage  = color.NRGBA{200, 0, 0, 255}
	colGlass  = color.NRGBA{40, 40, 40, 255}
	colStop   = color.NRGBA{0, 0, 0, 255}
	// launch-height bins, bottom to top
	colRays = []color.NRGBA{
		{0, 0, 220, 255},
		{220, 0, 0, 255},
		{0, 150, 0, 255},
	}
)

const margin = 40

// Render draws the path and its traced rays into a new image.
func Render(p *paraxial.OpticalPath, traces [][]paraxial.Ray, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	fill(img, color.NRGBA{255, 255, 255, 255})

	zSpan := p.TotalLength()
	if zSpan <= 0 {
		zSpan = 1
	}
	halfRange := displayRange(p) / 2 * 1.5
	if halfRange <= 0 {
		halfRange = 1
	}

	plotW := float64(width - 2*margin)
	plotH := float64(height - 2*margin)
	toX := func(z paraxial.Real) float64 { return float64(margin) + z/zSpan*plotW }
	toY := func(y paraxial.Real) float64 { return float64(margin) + (1-(y+halfRange)/(2*halfRange))*plotH }

	// optical axis
	line(img, toX(0), toY(0), toX(zSpan), toY(0), colAxis)

	drawElements(img, p, toX, toY, halfRange)
	drawStops(img, p, toX, toY, halfRange)
	drawRays(img, p, traces, toX, toY)
	drawConjugates(img, p, toX, toY)

	// object arrow
	arrow(img, toX(0), toY(-p.ObjectHeight/2), toY(p.ObjectHeight/2), colObject)

	return img
}

// SavePNG writes the rendered schematic as a lossless PNG.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// displayRange is the transverse extent worth showing: the largest finite
// aperture, the object, or the tallest intermediate image.
func displayRange(p *paraxial.OpticalPath) paraxial.Real {
	r := p.LargestDiameter()
	if r < p.ObjectHeight {
		r = p.ObjectHeight
	}
	for _, c := range p.IntermediateConjugates() {
		if h := math.Abs(c.Magnification) * p.ObjectHeight; h > r {
			r = h
		}
	}
	return r
}

func drawElements(img *image.NRGBA, p *paraxial.OpticalPath, toX, toY func(paraxial.Real) float64, halfRange paraxial.Real) {
	for _, o := range p.Layout() {
		x := toX(o.Z + o.Length/2)
		half := halfRange
		if !math.IsInf(o.Aperture, 1) {
			half = o.Aperture / 2
		}
		switch o.Kind {
		case paraxial.KindLens:
			arrow(img, x, toY(-half), toY(half), colGlass)
		case paraxial.KindAperture:
			// two bars outward from the clear opening
			line(img, x, toY(half), x, toY(half+0.15*halfRange), colGlass)
			line(img, x, toY(-half), x, toY(-half-0.15*halfRange), colGlass)
		}
	}
}

func drawStops(img *image.NRGBA, p *paraxial.OpticalPath, toX, toY func(paraxial.Real) float64, halfRange paraxial.Real) {
	if stop, err := p.ApertureStop(); err == nil {
		mark(img, toX(stop.Position), toY(halfRange*0.95), colStop)
	}
	if fs, err := p.FieldStop(); err == nil {
		mark(img, toX(fs.Position), toY(-halfRange*0.95), colStop)
	}
}

func drawRays(img *image.NRGBA, p *paraxial.OpticalPath, traces [][]paraxial.Ray, toX, toY func(paraxial.Real) float64) {
	half := p.ObjectHeight / 2
	for _, trace := range traces {
		verts := paraxial.Polyline(trace)
		if len(verts) < 2 {
			continue
		}
		c := binColor(verts[0].Y, half)
		for i := 1; i < len(verts); i++ {
			line(img, toX(verts[i-1].Z), toY(verts[i-1].Y), toX(verts[i].Z), toY(verts[i].Y), c)
		}
	}
}

func drawConjugates(img *image.NRGBA, p *paraxial.OpticalPath, toX, toY func(paraxial.Real) float64) {
	for _, c := range p.IntermediateConjugates() {
		h := c.Magnification * p.ObjectHeight
		arrow(img, toX(c.Position), toY(-h/2), toY(h/2), colImage)
	}
}

// binColor picks the ray color from the launch height, matching the
// three-bin coloring of fan plots.
func binColor(y0, halfHeight paraxial.Real) color.NRGBA {
	if halfHeight <= 0 {
		return colRays[0]
	}
	bin := 2.0 * halfHeight / float64(len(colRays)-1)
	i := int((y0 + halfHeight + bin/2) / bin)
	if i < 0 {
		i = 0
	}
	if i >= len(colRays) {
		i = len(colRays) - 1
	}
	return colRays[i]
}

func fill(img *image.NRGBA, c color.NRGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// line draws a straight segment by uniform stepping, one step per pixel of
// the longer axis.
func line(img *image.NRGBA, x0, y0, x1, y1 float64, c color.NRGBA) {
	steps := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(x0 + t*(x1-x0)))
		y := int(math.Round(y0 + t*(y1-y0)))
		if image.Pt(x, y).In(img.Bounds()) {
			img.SetNRGBA(x, y, c)
		}
	}
}

// arrow draws a vertical segment with arrowheads at both ends. yLow/yHigh
// are pixel rows; the head at each end points outward.
func arrow(img *image.NRGBA, x, yLow, yHigh float64, c color.NRGBA) {
	line(img, x, yLow, x, yHigh, c)
	const head = 5
	// yHigh and yLow may be swapped for inverted (negative) heights
	top, bottom := yHigh, yLow
	if bottom < top {
		top, bottom = bottom, top
	}
	line(img, x, top, x-head, top+head, c)
	line(img, x, top, x+head, top+head, c)
	line(img, x, bottom, x-head, bottom-head, c)
	line(img, x, bottom, x+head, bottom-head, c)
}

// mark draws a small filled square centered at (x, y).
func mark(img *image.NRGBA, x, y float64, c color.NRGBA) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			px, py := int(x)+dx, int(y)+dy
			if image.Pt(px, py).In(img.Bounds()) {
				img.SetNRGBA(px, py, c)
			}
		}
	}
}
