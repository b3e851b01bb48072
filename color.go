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

import "fmt"

// ColorSpace identifies the device color model of a [Color].
//
// The values are ordered: when two colors must be combined in a single
// shading, the larger of the two color spaces is used.
type ColorSpace uint8

// The supported device color spaces.
const (
	Gray ColorSpace = iota + 1
	RGB
	CMYK
)

// String returns the device suffix of the color space, e.g. "RGB" for
// DeviceRGB.
func (s ColorSpace) String() string {
	switch s {
	case Gray:
		return "Gray"
	case RGB:
		return "RGB"
	case CMYK:
		return "CMYK"
	default:
		return fmt.Sprintf("ColorSpace(%d)", uint8(s))
	}
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (s ColorSpace) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Channels returns the number of color components used by the space.
func (s ColorSpace) Channels() int {
	switch s {
	case Gray:
		return 1
	case RGB:
		return 3
	case CMYK:
		return 4
	default:
		return 0
	}
}

// Color is a color in one of the device color spaces.
// Only the first Space.Channels() entries of C are used.
type Color struct {
	Space ColorSpace
	C     [4]float64
}

// NewGray returns a DeviceGray color, from 0 (black) to 1 (white).
func NewGray(g float64) Color {
	return Color{Space: Gray, C: [4]float64{g}}
}

// NewRGB returns a DeviceRGB color.
func NewRGB(r, g, b float64) Color {
	return Color{Space: RGB, C: [4]float64{r, g, b}}
}

// NewCMYK returns a DeviceCMYK color.
func NewCMYK(c, m, y, k float64) Color {
	return Color{Space: CMYK, C: [4]float64{c, m, y, k}}
}

// Components returns the color values which are used by the color space.
func (c Color) Components() []float64 {
	return c.C[:c.Space.Channels()]
}

// Convert returns the color, expressed in the given color space.
//
// Promotion (gray to RGB, gray or RGB to CMYK) is exact in the sense used
// by PostScript devices.  Demotion is approximate and is only used for
// previews.
func (c Color) Convert(space ColorSpace) Color {
	if c.Space == space {
		return c
	}

	switch space {
	case Gray:
		switch c.Space {
		case RGB:
			return NewGray(0.299*c.C[0] + 0.587*c.C[1] + 0.114*c.C[2])
		case CMYK:
			return c.Convert(RGB).Convert(Gray)
		}
	case RGB:
		switch c.Space {
		case Gray:
			g := c.C[0]
			return NewRGB(g, g, g)
		case CMYK:
			k := 1 - c.C[3]
			return NewRGB((1-c.C[0])*k, (1-c.C[1])*k, (1-c.C[2])*k)
		}
	case CMYK:
		switch c.Space {
		case Gray:
			return NewCMYK(0, 0, 0, 1-c.C[0])
		case RGB:
			r, g, b := c.C[0], c.C[1], c.C[2]
			sat := max(r, g, b)
			if sat == 0 {
				return NewCMYK(0, 0, 0, 1)
			}
			f := 1 / sat
			return NewCMYK(1-r*f, 1-g*f, 1-b*f, 1-sat)
		}
	}
	return c
}

// commonSpace returns the smallest color space which can represent all
// of the given pens' colors without loss.
func commonSpace(pens ...Pen) ColorSpace {
	space := Gray
	for _, p := range pens {
		space = max(space, p.Color.Space)
	}
	return space
}
