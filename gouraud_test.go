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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTriangles(t *testing.T) {
	tests := []struct {
		name  string
		edges []int
		want  [][3]int
	}{
		{"single", []int{0, 0, 0}, [][3]int{{0, 1, 2}}},
		{"ignored_flags", []int{0, 2, 1}, [][3]int{{0, 1, 2}}},
		{"strip", []int{0, 0, 0, 1, 1}, [][3]int{{0, 1, 2}, {1, 2, 3}, {2, 3, 4}}},
		{"fan", []int{0, 0, 0, 2, 2}, [][3]int{{0, 1, 2}, {0, 2, 3}, {0, 3, 4}}},
		{"separate", []int{0, 0, 0, 0, 0, 0}, [][3]int{{0, 1, 2}, {3, 4, 5}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Triangles(test.edges)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(test.want, got); d != "" {
				t.Errorf("triangles mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestTrianglesInvalid(t *testing.T) {
	for _, edges := range [][]int{
		nil,
		{0, 0},
		{1, 0, 0},
		{0, 0, 0, 3},
		{0, 0, 0, 0},
		{2},
	} {
		_, err := Triangles(edges)
		if !errors.Is(err, ErrMesh) {
			t.Errorf("%v: expected ErrMesh, got %v", edges, err)
		}
	}
}
