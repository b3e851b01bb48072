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
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestIsCyclic(t *testing.T) {
	p0 := vec.Vec2{X: 0, Y: 0}
	p1 := vec.Vec2{X: 1, Y: 0}
	p2 := vec.Vec2{X: 1, Y: 1}

	tests := []struct {
		name string
		p    *path.Data
		want bool
	}{
		{"nil", nil, false},
		{"empty", &path.Data{}, false},
		{"closed", (&path.Data{}).MoveTo(p0).LineTo(p1).LineTo(p2).Close(), true},
		{"open", (&path.Data{}).MoveTo(p0).LineTo(p1).LineTo(p2), false},
		{"returns_to_start", (&path.Data{}).MoveTo(p0).LineTo(p1).LineTo(p2).LineTo(p0), true},
		{"two_closed", (&path.Data{}).
			MoveTo(p0).LineTo(p1).LineTo(p2).Close().
			MoveTo(p2).LineTo(p1).LineTo(p0).Close(), true},
		{"second_open", (&path.Data{}).
			MoveTo(p0).LineTo(p1).LineTo(p2).Close().
			MoveTo(p2).LineTo(p1), false},
		{"first_open", (&path.Data{}).
			MoveTo(p0).LineTo(p1).
			MoveTo(p2).LineTo(p1).LineTo(p0).Close(), false},
		{"curve_closed", (&path.Data{}).MoveTo(p0).CubeTo(p1, p2, p0), true},
		{"no_moveto", &path.Data{
			Cmds:   []path.Command{path.CmdLineTo, path.CmdClose},
			Coords: []vec.Vec2{p1},
		}, false},
		{"moveto_only", &path.Data{
			Cmds:   []path.Command{path.CmdMoveTo},
			Coords: []vec.Vec2{p0},
		}, false},
		{"moveto_close", &path.Data{
			Cmds:   []path.Command{path.CmdMoveTo, path.CmdClose},
			Coords: []vec.Vec2{p0},
		}, false},
		{"trailing_moveto", &path.Data{
			Cmds: []path.Command{
				path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose,
				path.CmdMoveTo,
			},
			Coords: []vec.Vec2{p0, p1, p2, p2},
		}, false},
		{"truncated", &path.Data{
			Cmds:   []path.Command{path.CmdMoveTo, path.CmdCubeTo},
			Coords: []vec.Vec2{p0, p1},
		}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := IsCyclic(test.p); got != test.want {
				t.Errorf("IsCyclic() = %t, want %t", got, test.want)
			}
		})
	}
}

func TestConformalScale(t *testing.T) {
	tests := []struct {
		name  string
		m     matrix.Matrix
		scale float64
		ok    bool
	}{
		{"identity", matrix.Identity, 1, true},
		{"translate", matrix.Translate(5, -3), 1, true},
		{"rotate", matrix.RotateDeg(30), 1, true},
		{"scale", matrix.Scale(3, 3), 3, true},
		{"mirror", matrix.Scale(-2, 2), 2, true},
		{"rotate_scale", matrix.RotateDeg(45).Mul(matrix.Scale(0.5, 0.5)), 0.5, true},
		{"anisotropic", matrix.Scale(1, 2), 0, false},
		{"shear", matrix.Matrix{1, 0, 1, 1, 0, 0}, 0, false},
		{"singular", matrix.Matrix{}, 0, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			scale, ok := conformalScale(test.m)
			if ok != test.ok {
				t.Fatalf("ok = %t, want %t", ok, test.ok)
			}
			if ok && math.Abs(scale-test.scale) > 1e-9 {
				t.Errorf("scale = %g, want %g", scale, test.scale)
			}
		})
	}
}
