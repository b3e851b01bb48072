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
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (r FillRule) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Pen describes the color and style used to paint a region.
type Pen struct {
	Color Color
	Rule  FillRule

	// Stroke style.  These values are emitted as part of the palette
	// phase, so that a fill and a subsequent stroke of the same outline
	// share one style block.
	LineWidth  float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
	Dash       []float64 // nil for solid lines
	DashPhase  float64

	// Offset moves the origin of pen space relative to user space.  This
	// aligns pattern origins between neighbouring shapes.  The zero value
	// means no translation.
	Offset vec.Vec2
}

// NewPen returns a pen with the given color and default style values.
func NewPen(c Color) Pen {
	return Pen{
		Color:      c,
		Rule:       NonZero,
		LineWidth:  0.5,
		Cap:        graphics.LineCapRound,
		Join:       graphics.LineJoinRound,
		MiterLimit: 10,
	}
}

// HasOffset reports whether the pen requires a pen-space translation.
func (p *Pen) HasOffset() bool {
	return p.Offset != vec.Vec2{}
}
