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

// Package pdfdev implements a [fill.Device] which writes PDF content
// stream operators.
package pdfdev

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/function"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pdf/graphics/content/builder"
	"seehuhn.de/go/pdf/graphics/shading"

	"seehuhn.de/go/fill"
)

// Device draws onto a PDF content stream builder.
//
// Pen offsets are implemented by translating the coordinate system with
// the "cm" operator.  All coordinates passed to the device are in the
// untranslated user space.
type Device struct {
	b *builder.Builder

	offset vec.Vec2
	stack  []vec.Vec2
	err    error
}

var _ fill.Device = (*Device)(nil)

// New returns a device which appends to the content stream of b.
func New(b *builder.Builder) *Device {
	return &Device{b: b}
}

// Err implements the [fill.Device] interface.
func (d *Device) Err() error {
	if d.err != nil {
		return d.err
	}
	return d.b.Err
}

func (d *Device) ok() bool {
	return d.Err() == nil
}

func (d *Device) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *Device) pt(v vec.Vec2) vec.Vec2 {
	return v.Sub(d.offset)
}

// SetPen implements the [fill.Device] interface.
func (d *Device) SetPen(p *fill.Pen) {
	if !d.ok() {
		return
	}
	d.b.SetFillColor(pdfColor(p.Color))
}

// PenStart implements the [fill.Device] interface.
func (d *Device) PenStart(p *fill.Pen) {
	if !d.ok() {
		return
	}
	d.b.SetLineWidth(p.LineWidth)
	d.b.SetLineCap(p.Cap)
	d.b.SetLineJoin(p.Join)
	if p.MiterLimit >= 1 {
		d.b.SetMiterLimit(p.MiterLimit)
	}
	if len(p.Dash) > 0 {
		d.b.SetLineDash(p.Dash, p.DashPhase)
	}
}

// PenTranslate implements the [fill.Device] interface.
func (d *Device) PenTranslate(p *fill.Pen) {
	if !d.ok() || !p.HasOffset() {
		return
	}
	d.b.Transform(matrix.Translate(p.Offset.X, p.Offset.Y))
	d.offset = d.offset.Add(p.Offset)
}

// PenEnd implements the [fill.Device] interface.
func (d *Device) PenEnd(p *fill.Pen) {
	if !d.ok() || !p.HasOffset() {
		return
	}
	d.b.Transform(matrix.Translate(-p.Offset.X, -p.Offset.Y))
	d.offset = d.offset.Sub(p.Offset)
}

// WritePath implements the [fill.Device] interface.
func (d *Device) WritePath(p *path.Data) {
	if !d.ok() {
		return
	}
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			v := d.pt(pts[0])
			d.b.MoveTo(v.X, v.Y)
		case path.CmdLineTo:
			v := d.pt(pts[0])
			d.b.LineTo(v.X, v.Y)
		case path.CmdCubeTo:
			c1, c2, v := d.pt(pts[0]), d.pt(pts[1]), d.pt(pts[2])
			d.b.CurveTo(c1.X, c1.Y, c2.X, c2.Y, v.X, v.Y)
		case path.CmdClose:
			d.b.ClosePath()
		}
	}
}

// Fill implements the [fill.Device] interface.
func (d *Device) Fill(rule fill.FillRule) {
	if !d.ok() {
		return
	}
	if rule == fill.EvenOdd {
		d.b.FillEvenOdd()
	} else {
		d.b.Fill()
	}
}

// Clip implements the [fill.Device] interface.
func (d *Device) Clip(rule fill.FillRule) {
	if !d.ok() {
		return
	}
	if rule == fill.EvenOdd {
		d.b.ClipEvenOdd()
	} else {
		d.b.ClipNonZero()
	}
	d.b.EndPath()
}

// GSave implements the [fill.Device] interface.
func (d *Device) GSave() {
	if !d.ok() {
		return
	}
	d.b.PushGraphicsState()
	d.stack = append(d.stack, d.offset)
}

// GRestore implements the [fill.Device] interface.
func (d *Device) GRestore() {
	if !d.ok() {
		return
	}
	if len(d.stack) == 0 {
		d.fail(errUnbalanced)
		return
	}
	d.b.PopGraphicsState()
	d.offset = d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
}

// ShadeGradient implements the [fill.Device] interface.
func (d *Device) ShadeGradient(g *fill.Gradient) {
	if !d.ok() {
		return
	}
	space, err := pdfSpace(g.Space)
	if err != nil {
		d.fail(err)
		return
	}
	fn := &function.Type2{
		XMin: 0,
		XMax: 1,
		C0:   g.ColorA().Components(),
		C1:   g.ColorB().Components(),
		N:    1,
	}
	a, b := d.pt(g.A), d.pt(g.B)
	if g.Linear {
		d.b.DrawShading(&shading.Type2{
			ColorSpace:  space,
			P0:          a,
			P1:          b,
			F:           fn,
			TMax:        1,
			ExtendStart: true,
			ExtendEnd:   true,
		})
	} else {
		d.b.DrawShading(&shading.Type3{
			ColorSpace:  space,
			Center1:     a,
			R1:          g.RA,
			Center2:     b,
			R2:          g.RB,
			F:           fn,
			TMax:        1,
			ExtendStart: true,
			ExtendEnd:   true,
		})
	}
}

// ShadeMesh implements the [fill.Device] interface.
func (d *Device) ShadeMesh(m *fill.Mesh) {
	if !d.ok() {
		return
	}
	space, err := pdfSpace(m.Space)
	if err != nil {
		d.fail(err)
		return
	}
	if len(m.Vertices) == 0 {
		d.fail(fmt.Errorf("%w: empty mesh", fill.ErrMesh))
		return
	}

	vertices := make([]shading.Type4Vertex, len(m.Vertices))
	xMin, yMin := d.pt(m.Vertices[0]).X, d.pt(m.Vertices[0]).Y
	xMax, yMax := xMin, yMin
	for i, v := range m.Vertices {
		v = d.pt(v)
		xMin, xMax = min(xMin, v.X), max(xMax, v.X)
		yMin, yMax = min(yMin, v.Y), max(yMax, v.Y)
		vertices[i] = shading.Type4Vertex{
			X:     v.X,
			Y:     v.Y,
			Flag:  uint8(m.Edges[i]),
			Color: m.Pens[i].Color.Convert(m.Space).Components(),
		}
	}
	if xMax == xMin {
		xMax = xMin + 1
	}
	if yMax == yMin {
		yMax = yMin + 1
	}

	decode := []float64{xMin, xMax, yMin, yMax}
	for range m.Space.Channels() {
		decode = append(decode, 0, 1)
	}

	d.b.DrawShading(&shading.Type4{
		ColorSpace:        space,
		BitsPerCoordinate: 32,
		BitsPerComponent:  16,
		BitsPerFlag:       8,
		Decode:            decode,
		Vertices:          vertices,
	})
}

var errUnbalanced = errors.New("pdfdev: grestore without matching gsave")

func pdfSpace(s fill.ColorSpace) (color.Space, error) {
	switch s {
	case fill.Gray:
		return color.SpaceDeviceGray, nil
	case fill.RGB:
		return color.SpaceDeviceRGB, nil
	case fill.CMYK:
		return color.SpaceDeviceCMYK, nil
	default:
		return nil, fmt.Errorf("pdfdev: unsupported color space %v", s)
	}
}

func pdfColor(c fill.Color) color.Color {
	switch c.Space {
	case fill.RGB:
		return color.DeviceRGB{c.C[0], c.C[1], c.C[2]}
	case fill.CMYK:
		return color.DeviceCMYK{c.C[0], c.C[1], c.C[2], c.C[3]}
	default:
		return color.DeviceGray(c.C[0])
	}
}
