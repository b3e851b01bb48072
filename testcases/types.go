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

// Package testcases provides a catalogue of filled and shaded shapes,
// used by the tests and by the reference image generators.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fill"
)

// TestCase defines a single shape to draw.
type TestCase struct {
	Name   string        // lowercase a-z and _ only
	Path   *path.Data    // the outline of the shape
	Width  int           // canvas width in points
	Height int           // canvas height in points
	Op     Operation     // how the shape is painted
	CTM    matrix.Matrix // applied via Transformed (zero-value means no transform)
}

// Drawer returns the drawer for the test case, with the CTM applied.
func (tc TestCase) Drawer() (fill.Drawer, error) {
	d, err := tc.Op.New(tc.Path)
	if err != nil {
		return nil, err
	}
	if tc.CTM != (matrix.Matrix{}) && tc.CTM != matrix.Identity {
		return d.Transformed(tc.CTM)
	}
	return d, nil
}

// Operation is the paint operation to apply to the path.
type Operation interface {
	New(p *path.Data) (fill.Drawer, error)
}

// Solid specifies a plain fill.
type Solid struct {
	Pen fill.Pen
}

// New implements the [Operation] interface.
func (op Solid) New(p *path.Data) (fill.Drawer, error) {
	return fill.NewSolid(p, op.Pen)
}

// Axial specifies an axial shading.
type Axial struct {
	Pen  fill.Pen
	A    vec.Vec2
	PenB fill.Pen
	B    vec.Vec2
}

// New implements the [Operation] interface.
func (op Axial) New(p *path.Data) (fill.Drawer, error) {
	return fill.NewAxial(p, op.Pen, op.A, op.PenB, op.B)
}

// Radial specifies a radial shading.
type Radial struct {
	Pen  fill.Pen
	A    vec.Vec2
	RA   float64
	PenB fill.Pen
	B    vec.Vec2
	RB   float64
}

// New implements the [Operation] interface.
func (op Radial) New(p *path.Data) (fill.Drawer, error) {
	return fill.NewRadial(p, op.Pen, op.A, op.RA, op.PenB, op.B, op.RB)
}

// Gouraud specifies a mesh shading.
type Gouraud struct {
	Pen      fill.Pen
	Pens     []fill.Pen
	Vertices []vec.Vec2
	Edges    []int
}

// New implements the [Operation] interface.
func (op Gouraud) New(p *path.Data) (fill.Drawer, error) {
	return fill.NewGouraud(p, op.Pen, op.Pens, op.Vertices, op.Edges)
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func pen(c fill.Color) fill.Pen {
	return fill.NewPen(c)
}

func evenOdd(c fill.Color) fill.Pen {
	p := fill.NewPen(c)
	p.Rule = fill.EvenOdd
	return p
}
