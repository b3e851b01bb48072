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
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Shader is implemented by the shading drawers.
type Shader interface {
	Drawer

	// Shade paints the shading, subject to the device's current clipping
	// region.
	Shade(dev Device)
}

// shaded holds the path and pen of a shading drawer.  The pen is used for
// the fill rule and style only.
type shaded struct {
	Solid
}

// clipShade clips the device to the path, paints the shading and restores
// the graphics state.  The matching GSave is issued by the palette phase.
func (s *shaded) clipShade(dev Device, sh Shader) {
	dev.WritePath(s.path)
	dev.Clip(s.pen.Rule)
	sh.Shade(dev)
	dev.GRestore()
}

// Axial paints a linear gradient from point A to point B, clipped to the
// outline of a cyclic path.
type Axial struct {
	shaded
	a, b  vec.Vec2
	penB  Pen
	space ColorSpace
}

var _ Shader = (*Axial)(nil)

// NewAxial returns a drawer which fills p with a gradient from the color of
// pen at a to the color of penB at b.
//
// The gradient uses the larger of the two pens' color spaces.  Degenerate
// gradients with a == b are passed on to the device unchanged.
func NewAxial(p *path.Data, pen Pen, a vec.Vec2, penB Pen, b vec.Vec2) (*Axial, error) {
	if !IsCyclic(p) {
		return nil, ErrNonCyclic
	}
	return newAxial(p, pen, a, penB, b), nil
}

func newAxial(p *path.Data, pen Pen, a vec.Vec2, penB Pen, b vec.Vec2) *Axial {
	return &Axial{
		shaded: shaded{Solid{path: p, pen: pen}},
		a:      a,
		b:      b,
		penB:   penB,
		space:  commonSpace(pen, penB),
	}
}

// ColorSpace returns the color space used for the gradient.
func (s *Axial) ColorSpace() ColorSpace {
	return s.space
}

// Palette implements the [Drawer] interface.
func (s *Axial) Palette(dev Device) {
	dev.GSave()
	s.Solid.Palette(dev)
}

// Fill implements the [Drawer] interface.
func (s *Axial) Fill(dev Device) {
	s.clipShade(dev, s)
}

// Shade implements the [Shader] interface.
func (s *Axial) Shade(dev Device) {
	dev.ShadeGradient(&Gradient{
		Linear: true,
		Space:  s.space,
		PenA:   s.pen,
		A:      s.a,
		PenB:   s.penB,
		B:      s.b,
	})
}

// Transformed implements the [Drawer] interface.
func (s *Axial) Transformed(m matrix.Matrix) (Drawer, error) {
	return newAxial(transformPath(s.path, m), s.pen, apply(m, s.a), s.penB, apply(m, s.b)), nil
}

// Radial paints a gradient between two circles, clipped to the outline of
// a cyclic path.  A radius of zero gives a point source.
type Radial struct {
	Axial
	ra, rb float64
}

var _ Shader = (*Radial)(nil)

// NewRadial returns a drawer which fills p with a gradient from the circle
// of radius ra around a, painted in the color of pen, to the circle of
// radius rb around b, painted in the color of penB.
func NewRadial(p *path.Data, pen Pen, a vec.Vec2, ra float64, penB Pen, b vec.Vec2, rb float64) (*Radial, error) {
	if !IsCyclic(p) {
		return nil, ErrNonCyclic
	}
	if ra < 0 || rb < 0 {
		return nil, fmt.Errorf("%w: ra=%g, rb=%g", ErrRadius, ra, rb)
	}
	return &Radial{Axial: *newAxial(p, pen, a, penB, b), ra: ra, rb: rb}, nil
}

// Fill implements the [Drawer] interface.
func (s *Radial) Fill(dev Device) {
	s.clipShade(dev, s)
}

// Shade implements the [Shader] interface.
func (s *Radial) Shade(dev Device) {
	dev.ShadeGradient(&Gradient{
		Linear: false,
		Space:  s.space,
		PenA:   s.pen,
		A:      s.a,
		RA:     s.ra,
		PenB:   s.penB,
		B:      s.b,
		RB:     s.rb,
	})
}

// Transformed implements the [Drawer] interface.
//
// Only transformations which map circles to circles are supported: these
// are compositions of translations, rotations, reflections and uniform
// scalings.  The radii are scaled by the scale factor of m.  For all other
// transformations, [ErrNonConformal] is returned.
func (s *Radial) Transformed(m matrix.Matrix) (Drawer, error) {
	scale, ok := conformalScale(m)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNonConformal, m)
	}
	res := &Radial{
		Axial: *newAxial(transformPath(s.path, m), s.pen, apply(m, s.a), s.penB, apply(m, s.b)),
		ra:    s.ra * scale,
		rb:    s.rb * scale,
	}
	return res, nil
}
