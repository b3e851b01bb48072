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

package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fill"
)

var transformCases = []TestCase{
	{
		Name:   "solid_scaled",
		Path:   Triangle(0, 10, 5, 0, 10, 10),
		Width:  64,
		Height: 64,
		Op:     Solid{Pen: pen(fill.NewRGB(0.5, 0, 0.5))},
		CTM:    matrix.Scale(5, 5).Translate(7, 7),
	},
	{
		Name:   "solid_sheared",
		Path:   Rectangle(-16, -16, 16, 16),
		Width:  64,
		Height: 64,
		Op:     Solid{Pen: pen(fill.NewGray(0.2))},
		CTM:    matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(32, 32),
	},
	{
		Name:   "axial_rotated",
		Path:   Rectangle(-20, -20, 20, 20),
		Width:  64,
		Height: 64,
		Op: Axial{
			Pen: pen(fill.NewRGB(1, 0, 0)), A: pt(-20, 0),
			PenB: pen(fill.NewRGB(0, 0, 1)), B: pt(20, 0),
		},
		CTM: matrix.RotateDeg(30).Translate(32, 32),
	},
	{
		// a point reflection swaps the positions of the two end points
		Name:   "axial_reflected",
		Path:   Rectangle(0, 0, 64, 64),
		Width:  64,
		Height: 64,
		Op: Axial{
			Pen: pen(fill.NewGray(0)), A: pt(0, 32),
			PenB: pen(fill.NewGray(1)), B: pt(64, 32),
		},
		CTM: matrix.Matrix{-1, 0, 0, -1, 64, 64},
	},
	{
		Name:   "radial_uniform_scale",
		Path:   Rectangle(0, 0, 32, 32),
		Width:  64,
		Height: 64,
		Op: Radial{
			Pen: pen(fill.NewGray(1)), A: pt(16, 16), RA: 0,
			PenB: pen(fill.NewGray(0)), B: pt(16, 16), RB: 15,
		},
		CTM: matrix.Scale(2, 2),
	},
	{
		Name:   "gouraud_scaled",
		Path:   Rectangle(0, 0, 16, 16),
		Width:  64,
		Height: 64,
		Op: Gouraud{
			Pen: pen(fill.NewGray(0)),
			Pens: []fill.Pen{
				pen(fill.NewRGB(1, 0, 0)),
				pen(fill.NewRGB(0, 1, 0)),
				pen(fill.NewRGB(0, 0, 1)),
				pen(fill.NewRGB(1, 1, 0)),
			},
			Vertices: []vec.Vec2{pt(0, 0), pt(16, 0), pt(0, 16), pt(16, 16)},
			Edges:    []int{0, 0, 0, 1},
		},
		CTM: matrix.Scale(4, 4),
	},
}
