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

package psdev

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fill"
	"seehuhn.de/go/fill/testcases"
)

func TestSolid(t *testing.T) {
	d, err := fill.NewSolid(testcases.Rectangle(0, 0, 10, 10), fill.NewPen(fill.NewGray(0)))
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	w := New(buf)
	if err := fill.Draw(w, d); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"0 setgray",
		"0.5 setlinewidth",
		"1 setlinecap",
		"1 setlinejoin",
		"10 setmiterlimit",
		"newpath",
		"0 0 moveto",
		"10 0 lineto",
		"10 10 lineto",
		"0 10 lineto",
		"closepath",
		"fill",
	}
	got := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("output mismatch (-want +got):\n%s", d)
	}
}

func TestPenOffset(t *testing.T) {
	pen := fill.NewPen(fill.NewRGB(1, 0, 0))
	pen.Offset = vec.Vec2{X: 2, Y: 3}
	pen.Rule = fill.EvenOdd
	d, err := fill.NewSolid(testcases.Triangle(2, 3, 12, 3, 7, 13), pen)
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	w := New(buf)
	if err := fill.Draw(w, d); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, line := range []string{
		"1 0 0 setrgbcolor\n",
		"2 3 translate\n",
		"0 0 moveto\n",
		"10 0 lineto\n",
		"eofill\n",
		"-2 -3 translate\n",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("missing %q in output:\n%s", line, out)
		}
	}
}

func TestShadings(t *testing.T) {
	square := testcases.Rectangle(0, 0, 10, 10)
	black := fill.NewPen(fill.NewGray(0))
	cyan := fill.NewPen(fill.NewCMYK(1, 0, 0, 0))

	axial, _ := fill.NewAxial(square, black, vec.Vec2{}, cyan, vec.Vec2{X: 10})
	radial, _ := fill.NewRadial(square, black, vec.Vec2{X: 5, Y: 5}, 0, black, vec.Vec2{X: 5, Y: 5}, 5)
	mesh, _ := fill.NewGouraud(square, black,
		[]fill.Pen{black, black, black},
		[]vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}},
		[]int{0, 0, 0})

	tests := []struct {
		name string
		d    fill.Drawer
		want []string
	}{
		{"axial", axial, []string{"gsave", "clip newpath", "/ColorSpace /DeviceCMYK", "/Coords [0 0 10 0]", "/ShadingType 2", "shfill", "grestore"}},
		{"radial", radial, []string{"gsave", "/ColorSpace /DeviceGray", "/Coords [5 5 0 5 5 5]", "/ShadingType 3", "shfill", "grestore"}},
		{"gouraud", mesh, []string{"gsave", "/DataSource [0 0 0 0 0 10 0 0 0 0 10 0]", "/ShadingType 4", "shfill", "grestore"}},
	}
	// dictionary keys are written in sorted order
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			w := New(buf)
			if err := fill.Draw(w, test.d); err != nil {
				t.Fatal(err)
			}
			out := buf.String()
			pos := 0
			for _, s := range test.want {
				i := strings.Index(out[pos:], s)
				if i < 0 {
					t.Fatalf("missing %q after position %d in output:\n%s", s, pos, out)
				}
				pos += i + len(s)
			}
		})
	}
}

func TestHeader(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf)
	w.WriteHeader(rect.Rect{LLx: 0, LLy: 0, URx: 63.5, URy: 64})
	w.WriteTrailer()
	if err := w.Err(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "%!PS-Adobe-3.0 EPSF-3.0\n") {
		t.Errorf("wrong header: %q", out)
	}
	if !strings.Contains(out, "%%BoundingBox: 0 0 64 64\n") {
		t.Errorf("wrong bounding box: %q", out)
	}
	if !strings.HasSuffix(out, "%%EOF\n") {
		t.Errorf("wrong trailer: %q", out)
	}
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestWriteError(t *testing.T) {
	d, err := fill.NewSolid(testcases.Circle(5, 5, 5), fill.NewPen(fill.NewGray(0)))
	if err != nil {
		t.Fatal(err)
	}
	w := New(failWriter{})
	err = fill.Draw(w, d)
	if !errors.Is(err, errWrite) {
		t.Errorf("expected write error, got %v", err)
	}
}

func TestAllCases(t *testing.T) {
	for category, cases := range testcases.All {
		for _, tc := range cases {
			t.Run(category+"/"+tc.Name, func(t *testing.T) {
				d, err := tc.Drawer()
				if err != nil {
					t.Fatal(err)
				}
				w := New(&bytes.Buffer{})
				if err := fill.Draw(w, d); err != nil {
					t.Fatal(err)
				}
				if len(w.stack) != 0 {
					t.Errorf("unbalanced gsave: %d levels left", len(w.stack))
				}
			})
		}
	}
}
