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

// Package fill renders closed paths as filled regions on a page
// description device.
//
// A shape is represented by a [Drawer]: [Solid] for plain fills, and
// [Axial], [Radial] and [Gouraud] for the shading types.  All drawers are
// painted using the same two-phase protocol, implemented by [Draw]: first
// the palette phase sets up colors and style on the [Device], then the fill
// phase either fills the path or clips to the path and paints the shading.
//
// Drawers borrow their paths, pens and mesh data from the caller.  The
// borrowed values are never modified and must remain unchanged for as long
// as the drawer is used.
package fill

//go:generate go run ./testcases/export

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
)

// Drawer is a path-bound shape which can be painted on a Device.
type Drawer interface {
	// Palette sets up color and style state on the device.
	Palette(dev Device)

	// Fill paints the shape, using the state set up by Palette, and
	// restores any state which Palette pushed.
	Fill(dev Device)

	// Transformed returns a new drawer of the same kind, with all
	// geometry mapped through m.  The receiver is not modified.
	Transformed(m matrix.Matrix) (Drawer, error)
}

// Draw paints d on dev.
//
// If the device fails during the palette phase, the fill phase is skipped.
// The returned error is the first error reported by the device.
func Draw(dev Device, d Drawer) error {
	d.Palette(dev)
	if err := dev.Err(); err != nil {
		return err
	}
	d.Fill(dev)
	return dev.Err()
}

// Render paints all drawers in order.  It stops at the first failure.
func Render(dev Device, ds []Drawer) error {
	for i, d := range ds {
		if err := Draw(dev, d); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}
