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

package fill

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Device is an output writer for a page description format.
//
// A Device keeps the first error which occurs.  Once Err returns a
// non-nil value, all further calls are ignored.
//
// A Device is not safe for concurrent use.
type Device interface {
	// SetPen makes the pen's color the current fill color.
	SetPen(p *Pen)

	// PenStart emits the line width, cap, join, miter limit and dash
	// settings of the pen.
	PenStart(p *Pen)

	// PenTranslate moves pen space by p.Offset.  Coordinates passed to
	// the device afterwards are still in user space.
	PenTranslate(p *Pen)

	// PenEnd undoes the changes made by PenTranslate.
	PenEnd(p *Pen)

	// WritePath sets the current path.
	WritePath(p *path.Data)

	// Fill fills the current path.
	Fill(rule FillRule)

	// Clip intersects the clipping region with the current path and
	// discards the path.
	Clip(rule FillRule)

	// GSave saves the graphics state, including the clipping region.
	GSave()

	// GRestore restores the graphics state saved by the matching GSave.
	GRestore()

	// ShadeGradient paints an axial or radial gradient, subject to the
	// current clipping region.
	ShadeGradient(g *Gradient)

	// ShadeMesh paints a Gouraud-shaded triangle mesh, subject to the
	// current clipping region.
	ShadeMesh(m *Mesh)

	// Err returns the first error encountered by the device.
	Err() error
}

// Gradient holds the arguments of an axial or radial shading call.
//
// For axial gradients, RA and RB are zero.
type Gradient struct {
	Linear bool
	Space  ColorSpace

	PenA Pen
	A    vec.Vec2
	RA   float64

	PenB Pen
	B    vec.Vec2
	RB   float64
}

// ColorA returns the color at A, converted to the gradient's color space.
func (g *Gradient) ColorA() Color {
	return g.PenA.Color.Convert(g.Space)
}

// ColorB returns the color at B, converted to the gradient's color space.
func (g *Gradient) ColorB() Color {
	return g.PenB.Color.Convert(g.Space)
}

// Mesh holds the arguments of a mesh shading call.
//
// Pens, Vertices and Edges are index-aligned.  The slices are borrowed from
// the caller and must not be modified.  See [Triangles] for the meaning of
// the edge flags.
type Mesh struct {
	Space    ColorSpace
	Pens     []Pen
	Vertices []vec.Vec2
	Edges    []int
}
