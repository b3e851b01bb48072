// seehuhn.de/go/fill - filled and shaded regions for PDF and PostScript
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package preview implements a [fill.Device] which paints into an RGBA
// image.  Coverage masks are computed with golang.org/x/image/vector,
// shadings are evaluated at the pixel centres.
//
// The rasteriser only implements the nonzero winding rule.  Fills and
// clips using the even-odd rule fail with [ErrEvenOdd].
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fill"
)

// ErrEvenOdd is reported when a path is filled or clipped using the
// even-odd rule.
var ErrEvenOdd = errors.New("preview: even-odd rule not supported")

// Device paints onto an RGBA image.
type Device struct {
	img *image.RGBA
	ctm matrix.Matrix
	inv matrix.Matrix

	color color.RGBA
	path  *path.Data
	clip  *image.Alpha // nil means no clipping
	stack []state

	rast *vector.Rasterizer
	err  error
}

// state is the part of the device state saved by GSave.
type state struct {
	clip  *image.Alpha
	color color.RGBA
}

var _ fill.Device = (*Device)(nil)

// New returns a device painting onto img.  The matrix ctm maps user space
// to pixel coordinates and must be invertible.
func New(img *image.RGBA, ctm matrix.Matrix) (*Device, error) {
	if det := ctm[0]*ctm[3] - ctm[1]*ctm[2]; det == 0 || math.IsNaN(det) {
		return nil, fmt.Errorf("preview: singular matrix %v", ctm)
	}
	b := img.Bounds()
	return &Device{
		img:   img,
		ctm:   ctm,
		inv:   ctm.Inv(),
		color: color.RGBA{A: 255},
		rast:  vector.NewRasterizer(b.Dx(), b.Dy()),
	}, nil
}

// PageTransform returns the matrix which maps a page of the given height,
// with the origin in the lower left corner, onto an image scaled by
// scale.  The y-axis of the image points down.
func PageTransform(height, scale float64) matrix.Matrix {
	return matrix.Matrix{scale, 0, 0, -scale, 0, height * scale}
}

// Err implements the [fill.Device] interface.
func (d *Device) Err() error {
	return d.err
}

// SetPen implements the [fill.Device] interface.
func (d *Device) SetPen(p *fill.Pen) {
	if d.err != nil {
		return
	}
	d.color = toRGBA(p.Color)
}

// PenStart implements the [fill.Device] interface.
// Stroke settings do not affect fills.
func (d *Device) PenStart(p *fill.Pen) {}

// PenTranslate implements the [fill.Device] interface.
// Pen offsets only move pattern origins, which are not previewed.
func (d *Device) PenTranslate(p *fill.Pen) {}

// PenEnd implements the [fill.Device] interface.
func (d *Device) PenEnd(p *fill.Pen) {}

// WritePath implements the [fill.Device] interface.
func (d *Device) WritePath(p *path.Data) {
	if d.err != nil {
		return
	}
	d.path = p
}

// Fill implements the [fill.Device] interface.
func (d *Device) Fill(rule fill.FillRule) {
	mask := d.coverage(rule)
	if mask == nil {
		return
	}
	draw.DrawMask(d.img, d.img.Bounds(), image.NewUniform(d.color), image.Point{},
		mask, mask.Bounds().Min, draw.Over)
}

// Clip implements the [fill.Device] interface.
func (d *Device) Clip(rule fill.FillRule) {
	mask := d.coverage(rule)
	if mask == nil {
		return
	}
	d.clip = mask
}

// coverage computes the coverage of the current path, intersected with
// the clipping region, and discards the path.
func (d *Device) coverage(rule fill.FillRule) *image.Alpha {
	if d.err != nil {
		return nil
	}
	if rule == fill.EvenOdd {
		d.err = ErrEvenOdd
		return nil
	}
	if d.path == nil {
		d.err = errors.New("preview: no current path")
		return nil
	}

	b := d.img.Bounds()
	d.rast.Reset(b.Dx(), b.Dy())
	for cmd, pts := range d.path.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			p := d.device(pts[0])
			d.rast.MoveTo(p[0], p[1])
		case path.CmdLineTo:
			p := d.device(pts[0])
			d.rast.LineTo(p[0], p[1])
		case path.CmdCubeTo:
			c1, c2, p := d.device(pts[0]), d.device(pts[1]), d.device(pts[2])
			d.rast.CubeTo(c1[0], c1[1], c2[0], c2[1], p[0], p[1])
		case path.CmdClose:
			d.rast.ClosePath()
		}
	}
	d.path = nil

	mask := image.NewAlpha(b)
	d.rast.Draw(mask, b, image.Opaque, image.Point{})
	if d.clip != nil {
		for i, a := range d.clip.Pix {
			mask.Pix[i] = uint8(uint16(mask.Pix[i]) * uint16(a) / 255)
		}
	}
	return mask
}

// device maps a user space point to image coordinates, relative to the
// image origin.
func (d *Device) device(v vec.Vec2) [2]float32 {
	b := d.img.Bounds()
	m := d.ctm
	x := m[0]*v.X + m[2]*v.Y + m[4] - float64(b.Min.X)
	y := m[1]*v.X + m[3]*v.Y + m[5] - float64(b.Min.Y)
	return [2]float32{float32(x), float32(y)}
}

// GSave implements the [fill.Device] interface.
func (d *Device) GSave() {
	if d.err != nil {
		return
	}
	d.stack = append(d.stack, state{clip: d.clip, color: d.color})
}

// GRestore implements the [fill.Device] interface.
func (d *Device) GRestore() {
	if d.err != nil {
		return
	}
	if len(d.stack) == 0 {
		d.err = errors.New("preview: grestore without matching gsave")
		return
	}
	top := d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
	d.clip = top.clip
	d.color = top.color
}

// ShadeGradient implements the [fill.Device] interface.
func (d *Device) ShadeGradient(g *fill.Gradient) {
	if d.err != nil {
		return
	}
	c0 := g.ColorA().Convert(fill.RGB)
	c1 := g.ColorB().Convert(fill.RGB)

	var param func(p vec.Vec2) (float64, bool)
	if g.Linear {
		param = axialParam(g.A, g.B)
	} else {
		param = radialParam(g.A, g.RA, g.B, g.RB)
	}

	d.paint(d.img.Bounds(), func(p vec.Vec2) (color.RGBA, bool) {
		t, ok := param(d.user(p))
		if !ok {
			return color.RGBA{}, false
		}
		t = min(max(t, 0), 1)
		return toRGBA(lerp(c0, c1, t)), true
	})
}

// ShadeMesh implements the [fill.Device] interface.
func (d *Device) ShadeMesh(m *fill.Mesh) {
	if d.err != nil {
		return
	}
	tris, err := fill.Triangles(m.Edges)
	if err != nil {
		d.err = err
		return
	}

	for _, tri := range tris {
		var pts [3]vec.Vec2
		var cols [3]fill.Color
		bbox := image.Rectangle{}
		for k, i := range tri {
			q := d.device(m.Vertices[i])
			pts[k] = vec.Vec2{X: float64(q[0]), Y: float64(q[1])}
			cols[k] = m.Pens[i].Color.Convert(m.Space).Convert(fill.RGB)
			r := image.Rect(int(math.Floor(pts[k].X)), int(math.Floor(pts[k].Y)),
				int(math.Ceil(pts[k].X))+1, int(math.Ceil(pts[k].Y))+1)
			if k == 0 {
				bbox = r
			} else {
				bbox = bbox.Union(r)
			}
		}
		bbox = bbox.Add(d.img.Bounds().Min).Intersect(d.img.Bounds())

		d.paint(bbox, func(p vec.Vec2) (color.RGBA, bool) {
			p = p.Sub(vec.Vec2{X: float64(d.img.Bounds().Min.X), Y: float64(d.img.Bounds().Min.Y)})
			w, ok := barycentric(pts, p)
			if !ok {
				return color.RGBA{}, false
			}
			var c fill.Color
			c.Space = fill.RGB
			for k := range 3 {
				for j := range 3 {
					c.C[j] += w[k] * cols[k].C[j]
				}
			}
			return toRGBA(c), true
		})
	}
}

// paint composites the colors returned by f over the pixels in r,
// weighted by the clip coverage.  The argument of f is the pixel centre
// in image coordinates.
func (d *Device) paint(r image.Rectangle, f func(p vec.Vec2) (color.RGBA, bool)) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			a := uint16(255)
			if d.clip != nil {
				a = uint16(d.clip.AlphaAt(x, y).A)
				if a == 0 {
					continue
				}
			}
			c, ok := f(vec.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5})
			if !ok {
				continue
			}
			i := d.img.PixOffset(x, y)
			pix := d.img.Pix[i : i+4 : i+4]
			pix[0] = blend(pix[0], c.R, a)
			pix[1] = blend(pix[1], c.G, a)
			pix[2] = blend(pix[2], c.B, a)
			pix[3] = blend(pix[3], 255, a)
		}
	}
}

// user maps a pixel position to user space.
func (d *Device) user(p vec.Vec2) vec.Vec2 {
	m := d.inv
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

func axialParam(a, b vec.Vec2) func(vec.Vec2) (float64, bool) {
	ab := b.Sub(a)
	l2 := ab.X*ab.X + ab.Y*ab.Y
	return func(p vec.Vec2) (float64, bool) {
		if l2 == 0 {
			return 0, false
		}
		ap := p.Sub(a)
		return (ap.X*ab.X + ap.Y*ab.Y) / l2, true
	}
}

// radialParam returns the parameter of the circle through p.  Where more
// than one circle passes through p, the largest parameter with a
// non-negative radius is used.
func radialParam(a vec.Vec2, ra float64, b vec.Vec2, rb float64) func(vec.Vec2) (float64, bool) {
	cd := b.Sub(a)
	dr := rb - ra
	qa := cd.X*cd.X + cd.Y*cd.Y - dr*dr
	radius := func(t float64) float64 { return ra + t*dr }

	return func(p vec.Vec2) (float64, bool) {
		pd := p.Sub(a)
		qb := pd.X*cd.X + pd.Y*cd.Y + ra*dr
		qc := pd.X*pd.X + pd.Y*pd.Y - ra*ra

		if math.Abs(qa) < 1e-12 {
			if qb == 0 {
				return 0, false
			}
			t := qc / (2 * qb)
			return t, radius(t) >= 0
		}

		disc := qb*qb - qa*qc
		if disc < 0 {
			return 0, false
		}
		s := math.Sqrt(disc)
		t1, t2 := (qb+s)/qa, (qb-s)/qa
		if t1 < t2 {
			t1, t2 = t2, t1
		}
		if radius(t1) >= 0 {
			return t1, true
		}
		if radius(t2) >= 0 {
			return t2, true
		}
		return 0, false
	}
}

func barycentric(v [3]vec.Vec2, p vec.Vec2) ([3]float64, bool) {
	det := (v[1].Y-v[2].Y)*(v[0].X-v[2].X) + (v[2].X-v[1].X)*(v[0].Y-v[2].Y)
	if det == 0 {
		return [3]float64{}, false
	}
	w0 := ((v[1].Y-v[2].Y)*(p.X-v[2].X) + (v[2].X-v[1].X)*(p.Y-v[2].Y)) / det
	w1 := ((v[2].Y-v[0].Y)*(p.X-v[2].X) + (v[0].X-v[2].X)*(p.Y-v[2].Y)) / det
	w2 := 1 - w0 - w1

	const eps = -1e-9
	if w0 < eps || w1 < eps || w2 < eps {
		return [3]float64{}, false
	}
	return [3]float64{w0, w1, w2}, true
}

func lerp(c0, c1 fill.Color, t float64) fill.Color {
	res := fill.Color{Space: c0.Space}
	for i := range res.C {
		res.C[i] = (1-t)*c0.C[i] + t*c1.C[i]
	}
	return res
}

func blend(dst, src uint8, a uint16) uint8 {
	return uint8((uint16(dst)*(255-a) + uint16(src)*a + 127) / 255)
}

func toRGBA(c fill.Color) color.RGBA {
	c = c.Convert(fill.RGB)
	q := func(x float64) uint8 {
		return uint8(math.Round(min(max(x, 0), 1) * 255))
	}
	return color.RGBA{R: q(c.C[0]), G: q(c.C[1]), B: q(c.C[2]), A: 255}
}
