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

// Package psdev implements a [fill.Device] which writes PostScript
// Language Level 3 code.
//
// PostScript and PDF share the syntax for numbers, names, arrays and
// dictionaries, so the PDF object types are used to format operands.
package psdev

import (
	"errors"
	"fmt"
	"io"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"

	"seehuhn.de/go/fill"
)

// Writer writes PostScript operators to Content.
type Writer struct {
	Content io.Writer

	offset vec.Vec2
	stack  []vec.Vec2
	err    error
}

var _ fill.Device = (*Writer)(nil)

// New returns a writer which emits PostScript code to w.
func New(w io.Writer) *Writer {
	return &Writer{Content: w}
}

// Err implements the [fill.Device] interface.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) emit(args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintln(w.Content, args...)
}

// WriteHeader writes the header of an encapsulated PostScript file.
func (w *Writer) WriteHeader(bbox rect.Rect) {
	w.emit("%!PS-Adobe-3.0 EPSF-3.0")
	w.emit("%%BoundingBox:",
		int(math.Floor(bbox.LLx)), int(math.Floor(bbox.LLy)),
		int(math.Ceil(bbox.URx)), int(math.Ceil(bbox.URy)))
	w.emit("%%HiResBoundingBox:",
		num(bbox.LLx), num(bbox.LLy), num(bbox.URx), num(bbox.URy))
	w.emit("%%LanguageLevel: 3")
	w.emit("%%Creator: seehuhn.de/go/fill")
	w.emit("%%EndComments")
}

// WriteTrailer finishes an encapsulated PostScript file.
func (w *Writer) WriteTrailer() {
	w.emit("showpage")
	w.emit("%%EOF")
}

func (w *Writer) coord(v vec.Vec2) (string, string) {
	v = v.Sub(w.offset)
	return num(v.X), num(v.Y)
}

// SetPen implements the [fill.Device] interface.
func (w *Writer) SetPen(p *fill.Pen) {
	c := p.Color
	switch c.Space {
	case fill.RGB:
		w.emit(num(c.C[0]), num(c.C[1]), num(c.C[2]), "setrgbcolor")
	case fill.CMYK:
		w.emit(num(c.C[0]), num(c.C[1]), num(c.C[2]), num(c.C[3]), "setcmykcolor")
	default:
		w.emit(num(c.C[0]), "setgray")
	}
}

// PenStart implements the [fill.Device] interface.
func (w *Writer) PenStart(p *fill.Pen) {
	w.emit(num(p.LineWidth), "setlinewidth")
	w.emit(int(p.Cap), "setlinecap")
	w.emit(int(p.Join), "setlinejoin")
	if p.MiterLimit >= 1 {
		w.emit(num(p.MiterLimit), "setmiterlimit")
	}
	if len(p.Dash) > 0 {
		w.emit(pdf.AsString(numbers(p.Dash)), num(p.DashPhase), "setdash")
	}
}

// PenTranslate implements the [fill.Device] interface.
func (w *Writer) PenTranslate(p *fill.Pen) {
	if !p.HasOffset() {
		return
	}
	w.emit(num(p.Offset.X), num(p.Offset.Y), "translate")
	w.offset = w.offset.Add(p.Offset)
}

// PenEnd implements the [fill.Device] interface.
func (w *Writer) PenEnd(p *fill.Pen) {
	if !p.HasOffset() {
		return
	}
	w.emit(num(-p.Offset.X), num(-p.Offset.Y), "translate")
	w.offset = w.offset.Sub(p.Offset)
}

// WritePath implements the [fill.Device] interface.
func (w *Writer) WritePath(p *path.Data) {
	w.emit("newpath")
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			x, y := w.coord(pts[0])
			w.emit(x, y, "moveto")
		case path.CmdLineTo:
			x, y := w.coord(pts[0])
			w.emit(x, y, "lineto")
		case path.CmdCubeTo:
			x1, y1 := w.coord(pts[0])
			x2, y2 := w.coord(pts[1])
			x3, y3 := w.coord(pts[2])
			w.emit(x1, y1, x2, y2, x3, y3, "curveto")
		case path.CmdClose:
			w.emit("closepath")
		}
	}
}

// Fill implements the [fill.Device] interface.
func (w *Writer) Fill(rule fill.FillRule) {
	if rule == fill.EvenOdd {
		w.emit("eofill")
	} else {
		w.emit("fill")
	}
}

// Clip implements the [fill.Device] interface.
func (w *Writer) Clip(rule fill.FillRule) {
	if rule == fill.EvenOdd {
		w.emit("eoclip newpath")
	} else {
		w.emit("clip newpath")
	}
}

// GSave implements the [fill.Device] interface.
func (w *Writer) GSave() {
	if w.err != nil {
		return
	}
	w.emit("gsave")
	w.stack = append(w.stack, w.offset)
}

// GRestore implements the [fill.Device] interface.
func (w *Writer) GRestore() {
	if w.err != nil {
		return
	}
	if len(w.stack) == 0 {
		w.err = errUnbalanced
		return
	}
	w.emit("grestore")
	w.offset = w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
}

// ShadeGradient implements the [fill.Device] interface.
func (w *Writer) ShadeGradient(g *fill.Gradient) {
	space, err := spaceName(g.Space)
	if err != nil {
		w.setErr(err)
		return
	}

	a, b := g.A.Sub(w.offset), g.B.Sub(w.offset)
	dict := pdf.Dict{
		"ColorSpace": space,
		"Extend":     pdf.Array{pdf.Boolean(true), pdf.Boolean(true)},
		"Function": pdf.Dict{
			"FunctionType": pdf.Integer(2),
			"Domain":       pdf.Array{pdf.Integer(0), pdf.Integer(1)},
			"C0":           numbers(g.ColorA().Components()),
			"C1":           numbers(g.ColorB().Components()),
			"N":            pdf.Integer(1),
		},
	}
	if g.Linear {
		dict["ShadingType"] = pdf.Integer(2)
		dict["Coords"] = numbers([]float64{a.X, a.Y, b.X, b.Y})
	} else {
		dict["ShadingType"] = pdf.Integer(3)
		dict["Coords"] = numbers([]float64{a.X, a.Y, g.RA, b.X, b.Y, g.RB})
	}
	w.emit(pdf.AsString(dict), "shfill")
}

// ShadeMesh implements the [fill.Device] interface.
//
// The vertex data is written inline as a DataSource array.  Each vertex
// is given as its edge flag, followed by its coordinates and its color
// components.
func (w *Writer) ShadeMesh(m *fill.Mesh) {
	space, err := spaceName(m.Space)
	if err != nil {
		w.setErr(err)
		return
	}

	n := m.Space.Channels()
	data := make(pdf.Array, 0, len(m.Vertices)*(3+n))
	for i, v := range m.Vertices {
		v = v.Sub(w.offset)
		data = append(data, pdf.Integer(m.Edges[i]), pdf.Number(v.X), pdf.Number(v.Y))
		for _, c := range m.Pens[i].Color.Convert(m.Space).Components() {
			data = append(data, pdf.Number(c))
		}
	}
	dict := pdf.Dict{
		"ShadingType": pdf.Integer(4),
		"ColorSpace":  space,
		"DataSource":  data,
	}
	w.emit(pdf.AsString(dict), "shfill")
}

func (w *Writer) setErr(err error) {
	if w.err == nil {
		w.err = err
	}
}

var errUnbalanced = errors.New("psdev: grestore without matching gsave")

func spaceName(s fill.ColorSpace) (pdf.Name, error) {
	switch s {
	case fill.Gray, fill.RGB, fill.CMYK:
		return pdf.Name("Device" + s.String()), nil
	default:
		return "", fmt.Errorf("psdev: unsupported color space %v", s)
	}
}

func num(x float64) string {
	return pdf.AsString(pdf.Number(x))
}

func numbers(xs []float64) pdf.Array {
	res := make(pdf.Array, len(xs))
	for i, x := range xs {
		res[i] = pdf.Number(x)
	}
	return res
}
