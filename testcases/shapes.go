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
	"math"

	"seehuhn.de/go/geom/path"
)

// kappa is the control point distance for approximating a quarter circle
// by a cubic Bézier curve.
const kappa = 0.5522847498307936

// Triangle builds a closed triangular path.
func Triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// Rectangle builds a closed rectangular path.
func Rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// OpenPolyline builds a path through the given corners of a rectangle,
// without closing it.
func OpenPolyline(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2))
}

// FivePointStar builds a five-pointed star (self-intersecting).
func FivePointStar(cx, cy, r float64) *path.Data {
	p := &path.Data{}

	// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	for k, i := range []int{0, 2, 4, 1, 3} {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		v := pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
		if k == 0 {
			p = p.MoveTo(v)
		} else {
			p = p.LineTo(v)
		}
	}
	return p.Close()
}

// Circle builds an approximate circle using four cubic Bézier curves.
func Circle(cx, cy, r float64) *path.Data {
	k := r * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy+k), pt(cx+k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx-k, cy+r), pt(cx-r, cy+k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy-k), pt(cx-k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx+k, cy-r), pt(cx+r, cy-k), pt(cx+r, cy)).
		Close()
}

// Ring builds two concentric circles, for use with the even-odd rule.
func Ring(cx, cy, outerR, innerR float64) *path.Data {
	outer := Circle(cx, cy, outerR)
	inner := Circle(cx, cy, innerR)
	outer.Cmds = append(outer.Cmds, inner.Cmds...)
	outer.Coords = append(outer.Coords, inner.Coords...)
	return outer
}

// Lens builds a closed shape from two quadratic Bézier curves.
func Lens(x1, x2, y, bulge float64) *path.Data {
	mid := (x1 + x2) / 2
	return (&path.Data{}).
		MoveTo(pt(x1, y)).
		QuadTo(pt(mid, y-bulge), pt(x2, y)).
		QuadTo(pt(mid, y+bulge), pt(x1, y)).
		Close()
}

// RectangleGrid builds a grid of rectangles, one subpath each.
func RectangleGrid(rows, cols int, width, height, gap float64) *path.Data {
	cellW := width / float64(cols)
	cellH := height / float64(rows)

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap

			p = p.
				MoveTo(pt(x1, y1)).
				LineTo(pt(x2, y1)).
				LineTo(pt(x2, y2)).
				LineTo(pt(x1, y2)).
				Close()
		}
	}
	return p
}
