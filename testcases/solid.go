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

import "seehuhn.de/go/fill"

var solidCases = []TestCase{
	{
		Name:   "square_nonzero",
		Path:   Rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Op:     Solid{Pen: pen(fill.NewGray(0))},
	},
	{
		Name:   "triangle_rgb",
		Path:   Triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Solid{Pen: pen(fill.NewRGB(0.8, 0.1, 0.1))},
	},
	{
		Name:   "star_nonzero",
		Path:   FivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Solid{Pen: pen(fill.NewCMYK(0, 0.5, 1, 0))},
	},
	{
		Name:   "star_evenodd",
		Path:   FivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Solid{Pen: evenOdd(fill.NewCMYK(0, 0.5, 1, 0))},
	},
	{
		Name:   "ring_evenodd",
		Path:   Ring(32, 32, 25, 12),
		Width:  64,
		Height: 64,
		Op:     Solid{Pen: evenOdd(fill.NewGray(0.3))},
	},
	{
		Name:   "lens_quadratic",
		Path:   Lens(8, 56, 32, 30),
		Width:  64,
		Height: 64,
		Op:     Solid{Pen: pen(fill.NewRGB(0.1, 0.3, 0.8))},
	},
	{
		Name:   "dashed_pen",
		Path:   Circle(32, 32, 20),
		Width:  64,
		Height: 64,
		Op: Solid{Pen: fill.Pen{
			Color:      fill.NewGray(0.5),
			LineWidth:  2,
			MiterLimit: 4,
			Dash:       []float64{3, 1},
			DashPhase:  1,
		}},
	},
	{
		Name:   "pen_offset",
		Path:   Rectangle(4, 4, 60, 60),
		Width:  64,
		Height: 64,
		Op: Solid{Pen: fill.Pen{
			Color:      fill.NewRGB(0, 0.6, 0),
			LineWidth:  1,
			MiterLimit: 10,
			Offset:     pt(8, 8),
		}},
	},
}
