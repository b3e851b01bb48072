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

package pdfdev

import (
	"bytes"
	"testing"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"

	"seehuhn.de/go/fill"
	"seehuhn.de/go/fill/testcases"
)

func newPage(t *testing.T) *document.Page {
	t.Helper()
	page, err := document.WriteSinglePage(&bytes.Buffer{},
		&pdf.Rectangle{URx: 64, URy: 64}, pdf.V1_7, nil)
	if err != nil {
		t.Fatal(err)
	}
	return page
}

func opNames(page *document.Page) []string {
	var res []string
	for _, op := range page.Stream {
		res = append(res, string(op.Name))
	}
	return res
}

// isSubsequence reports whether all elements of want appear in got, in
// order.
func isSubsequence(want, got []string) bool {
	i := 0
	for _, name := range got {
		if i < len(want) && name == want[i] {
			i++
		}
	}
	return i == len(want)
}

func TestAllCases(t *testing.T) {
	for category, cases := range testcases.All {
		for _, tc := range cases {
			t.Run(category+"/"+tc.Name, func(t *testing.T) {
				d, err := tc.Drawer()
				if err != nil {
					t.Fatal(err)
				}

				page := newPage(t)
				dev := New(page.Builder)
				if err := fill.Draw(dev, d); err != nil {
					t.Fatal(err)
				}
				if err := page.Close(); err != nil {
					t.Fatal(err)
				}
			})
		}
	}
}

func TestOperators(t *testing.T) {
	square := testcases.Rectangle(0, 0, 10, 10)
	black := fill.NewPen(fill.NewGray(0))
	red := fill.NewPen(fill.NewRGB(1, 0, 0))
	evenOdd := black
	evenOdd.Rule = fill.EvenOdd

	solid, _ := fill.NewSolid(square, red)
	solidEO, _ := fill.NewSolid(square, evenOdd)
	axial, _ := fill.NewAxial(square, black, vec.Vec2{}, red, vec.Vec2{X: 10})
	radial, _ := fill.NewRadial(square, black, vec.Vec2{X: 5, Y: 5}, 0, red, vec.Vec2{X: 5, Y: 5}, 5)
	mesh, _ := fill.NewGouraud(square, evenOdd,
		[]fill.Pen{black, red, black},
		[]vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}},
		[]int{0, 0, 0})

	tests := []struct {
		name string
		d    fill.Drawer
		want []string
	}{
		{"solid", solid, []string{"rg", "w", "m", "l", "l", "l", "h", "f"}},
		{"solid_evenodd", solidEO, []string{"g", "m", "h", "f*"}},
		{"axial", axial, []string{"q", "g", "m", "h", "W", "n", "sh", "Q"}},
		{"radial", radial, []string{"q", "m", "h", "W", "n", "sh", "Q"}},
		{"gouraud", mesh, []string{"q", "m", "h", "W*", "n", "sh", "Q"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			page := newPage(t)
			dev := New(page.Builder)
			if err := fill.Draw(dev, test.d); err != nil {
				t.Fatal(err)
			}
			got := opNames(page)
			if !isSubsequence(test.want, got) {
				t.Errorf("operators %v do not contain %v", got, test.want)
			}
		})
	}
}

func TestPenOffset(t *testing.T) {
	pen := fill.NewPen(fill.NewGray(0))
	pen.Offset = vec.Vec2{X: 3, Y: 4}
	d, err := fill.NewSolid(testcases.Rectangle(3, 4, 13, 14), pen)
	if err != nil {
		t.Fatal(err)
	}

	page := newPage(t)
	dev := New(page.Builder)
	if err := fill.Draw(dev, d); err != nil {
		t.Fatal(err)
	}

	var cms, moves []pdf.Object
	for _, op := range page.Stream {
		switch op.Name {
		case "cm":
			cms = append(cms, op.Args[4], op.Args[5])
		case "m":
			moves = append(moves, op.Args...)
		}
	}
	if len(cms) != 4 {
		t.Fatalf("expected two translations, got %v", cms)
	}
	if cms[0] != pdf.Number(3) || cms[1] != pdf.Number(4) ||
		cms[2] != pdf.Number(-3) || cms[3] != pdf.Number(-4) {
		t.Errorf("unexpected translations %v", cms)
	}
	// the path is written relative to the translated origin
	if len(moves) != 2 || moves[0] != pdf.Number(0) || moves[1] != pdf.Number(0) {
		t.Errorf("unexpected moveto arguments %v", moves)
	}
	if dev.offset != (vec.Vec2{}) {
		t.Errorf("offset not reset: %v", dev.offset)
	}
}

func TestUnbalancedRestore(t *testing.T) {
	page := newPage(t)
	dev := New(page.Builder)
	dev.GRestore()
	if dev.Err() == nil {
		t.Fatal("expected an error")
	}

	// errors are sticky
	n := len(page.Stream)
	dev.GSave()
	if len(page.Stream) != n {
		t.Error("operator emitted after error")
	}
}
