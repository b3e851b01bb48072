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
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// IsCyclic reports whether every subpath of p is closed.
//
// A subpath is closed if it contains at least one segment and either ends
// with a close command or returns to its first point.  Paths without any
// subpath, and malformed paths, are not cyclic.
func IsCyclic(p *path.Data) bool {
	if p == nil || len(p.Cmds) == 0 || p.Cmds[0] != path.CmdMoveTo {
		return false
	}

	var start, current vec.Vec2
	drawn, open := false, false
	closed := func() bool {
		return drawn && (!open || current == start)
	}

	coordIdx := 0
	for i, cmd := range p.Cmds {
		n := coordsPerCmd(cmd)
		if coordIdx+n > len(p.Coords) {
			return false
		}

		switch cmd {
		case path.CmdMoveTo:
			if i > 0 && !closed() {
				return false
			}
			start = p.Coords[coordIdx]
			current = start
			drawn, open = false, false
		case path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo:
			current = p.Coords[coordIdx+n-1]
			drawn, open = true, true
		case path.CmdClose:
			current = start
			open = false
		}
		coordIdx += n
	}
	return closed()
}

func coordsPerCmd(cmd path.Command) int {
	switch cmd {
	case path.CmdMoveTo, path.CmdLineTo:
		return 1
	case path.CmdQuadTo:
		return 2
	case path.CmdCubeTo:
		return 3
	default:
		return 0
	}
}

// apply maps a point through the transformation matrix m.
func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// transformPath returns a copy of p with all points mapped through m.
func transformPath(p *path.Data, m matrix.Matrix) *path.Data {
	res := &path.Data{
		Cmds:   slices.Clone(p.Cmds),
		Coords: make([]vec.Vec2, len(p.Coords)),
	}
	for i, c := range p.Coords {
		res.Coords[i] = apply(m, c)
	}
	return res
}

// conformalScale returns the factor by which m scales lengths, if m maps
// circles to circles.  The second return value is false for transformations
// which shear or scale non-uniformly.
func conformalScale(m matrix.Matrix) (float64, bool) {
	a, b, c, d := m[0], m[1], m[2], m[3]
	det := a*d - b*c
	if det == 0 {
		return 0, false
	}

	const eps = 1e-9
	tol := eps * max(math.Abs(a), math.Abs(b), math.Abs(c), math.Abs(d))
	rotation := math.Abs(a-d) <= tol && math.Abs(b+c) <= tol
	reflection := math.Abs(a+d) <= tol && math.Abs(b-c) <= tol
	if !rotation && !reflection {
		return 0, false
	}
	return math.Sqrt(math.Abs(det)), true
}
