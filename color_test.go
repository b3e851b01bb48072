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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		in    Color
		space ColorSpace
		want  Color
	}{
		{NewGray(0.25), Gray, NewGray(0.25)},
		{NewGray(0.25), RGB, NewRGB(0.25, 0.25, 0.25)},
		{NewGray(0.25), CMYK, NewCMYK(0, 0, 0, 0.75)},
		{NewRGB(1, 0.5, 0), CMYK, NewCMYK(0, 0.5, 1, 0)},
		{NewRGB(0.5, 0.25, 0), CMYK, NewCMYK(0, 0.5, 1, 0.5)},
		{NewRGB(0, 0, 0), CMYK, NewCMYK(0, 0, 0, 1)},
		{NewCMYK(0, 0.5, 1, 0.5), RGB, NewRGB(0.5, 0.25, 0)},
		{NewRGB(1, 1, 1), Gray, NewGray(1)},
	}
	approx := cmpopts.EquateApprox(0, 1e-12)
	for _, test := range tests {
		got := test.in.Convert(test.space)
		if d := cmp.Diff(test.want, got, approx); d != "" {
			t.Errorf("%v -> %v (-want +got):\n%s", test.in, test.space, d)
		}
	}
}

func TestCommonSpace(t *testing.T) {
	gray := NewPen(NewGray(0))
	rgb := NewPen(NewRGB(0, 0, 0))
	cmyk := NewPen(NewCMYK(0, 0, 0, 0))

	tests := []struct {
		pens []Pen
		want ColorSpace
	}{
		{[]Pen{gray, gray}, Gray},
		{[]Pen{gray, rgb}, RGB},
		{[]Pen{rgb, gray}, RGB},
		{[]Pen{cmyk, rgb}, CMYK},
		{[]Pen{gray, rgb, cmyk}, CMYK},
	}
	for i, test := range tests {
		if got := commonSpace(test.pens...); got != test.want {
			t.Errorf("%d: got %v, want %v", i, got, test.want)
		}
	}
}

func TestComponents(t *testing.T) {
	for _, c := range []Color{NewGray(1), NewRGB(1, 1, 1), NewCMYK(1, 1, 1, 1)} {
		if n := len(c.Components()); n != c.Space.Channels() {
			t.Errorf("%v: %d components", c.Space, n)
		}
	}
}
