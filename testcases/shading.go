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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fill"
)

var axialCases = []TestCase{
	{
		Name:   "horizontal_gray",
		Path:   Rectangle(0, 0, 64, 64),
		Width:  64,
		Height: 64,
		Op: Axial{
			Pen: pen(fill.NewGray(0)), A: pt(0, 32),
			PenB: pen(fill.NewGray(1)), B: pt(64, 32),
		},
	},
	{
		Name:   "diagonal_rgb",
		Path:   Circle(32, 32, 28),
		Width:  64,
		Height: 64,
		Op: Axial{
			Pen: pen(fill.NewRGB(1, 0, 0)), A: pt(8, 8),
			PenB: pen(fill.NewRGB(0, 0, 1)), B: pt(56, 56),
		},
	},
	{
		// gray is promoted to CMYK
		Name:   "mixed_spaces",
		Path:   Triangle(4, 60, 32, 4, 60, 60),
		Width:  64,
		Height: 64,
		Op: Axial{
			Pen: pen(fill.NewGray(0.2)), A: pt(32, 60),
			PenB: pen(fill.NewCMYK(1, 0, 0, 0)), B: pt(32, 4),
		},
	},
	{
		Name:   "ring_evenodd",
		Path:   Ring(32, 32, 28, 14),
		Width:  64,
		Height: 64,
		Op: Axial{
			Pen: evenOdd(fill.NewRGB(1, 1, 0)), A: pt(4, 32),
			PenB: pen(fill.NewRGB(0, 0.5, 0)), B: pt(60, 32),
		},
	},
}

var radialCases = []TestCase{
	{
		Name:   "point_source",
		Path:   Rectangle(0, 0, 64, 64),
		Width:  64,
		Height: 64,
		Op: Radial{
			Pen: pen(fill.NewGray(1)), A: pt(32, 32), RA: 0,
			PenB: pen(fill.NewGray(0)), B: pt(32, 32), RB: 30,
		},
	},
	{
		Name:   "offset_circles",
		Path:   Circle(32, 32, 30),
		Width:  64,
		Height: 64,
		Op: Radial{
			Pen: pen(fill.NewRGB(1, 1, 1)), A: pt(24, 24), RA: 2,
			PenB: pen(fill.NewRGB(0.2, 0.2, 0.6)), B: pt(32, 32), RB: 30,
		},
	},
	{
		Name:   "cone",
		Path:   Rectangle(0, 0, 64, 64),
		Width:  64,
		Height: 64,
		Op: Radial{
			Pen: pen(fill.NewRGB(1, 0.5, 0)), A: pt(10, 32), RA: 5,
			PenB: pen(fill.NewRGB(0, 0.5, 1)), B: pt(50, 32), RB: 10,
		},
	},
}

// square mesh as two triangles: (0,1,2) and, with flag 1, (1,2,3)
var squareMesh = []vec.Vec2{pt(0, 0), pt(64, 0), pt(0, 64), pt(64, 64)}

var gouraudCases = []TestCase{
	{
		Name:   "square_strip",
		Path:   Rectangle(0, 0, 64, 64),
		Width:  64,
		Height: 64,
		Op: Gouraud{
			Pen: pen(fill.NewGray(0)),
			Pens: []fill.Pen{
				pen(fill.NewRGB(1, 0, 0)),
				pen(fill.NewRGB(0, 1, 0)),
				pen(fill.NewRGB(0, 0, 1)),
				pen(fill.NewRGB(1, 1, 1)),
			},
			Vertices: squareMesh,
			Edges:    []int{0, 0, 0, 1},
		},
	},
	{
		Name:   "circle_clip_fan",
		Path:   Circle(32, 32, 24),
		Width:  64,
		Height: 64,
		Op: Gouraud{
			Pen: pen(fill.NewGray(0)),
			Pens: []fill.Pen{
				pen(fill.NewGray(1)),
				pen(fill.NewRGB(1, 0, 0)),
				pen(fill.NewRGB(0, 1, 0)),
				pen(fill.NewRGB(0, 0, 1)),
				pen(fill.NewRGB(1, 0, 1)),
			},
			Vertices: []vec.Vec2{pt(32, 32), pt(0, 0), pt(64, 0), pt(64, 64), pt(0, 64)},
			// fan around vertex 0: (0,1,2), (0,2,3), (0,3,4)
			Edges: []int{0, 0, 0, 2, 2},
		},
	},
	{
		Name:   "gray_cmyk",
		Path:   Triangle(0, 64, 32, 0, 64, 64),
		Width:  64,
		Height: 64,
		Op: Gouraud{
			Pen: pen(fill.NewGray(0)),
			Pens: []fill.Pen{
				pen(fill.NewGray(0)),
				pen(fill.NewCMYK(0, 1, 0, 0)),
				pen(fill.NewGray(1)),
			},
			Vertices: []vec.Vec2{pt(0, 64), pt(32, 0), pt(64, 64)},
			Edges:    []int{0, 0, 0},
		},
	},
}
