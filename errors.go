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

import "errors"

var (
	// ErrNonCyclic is returned when a drawable is constructed from a path
	// which is not closed.
	ErrNonCyclic = errors.New("non-cyclic path cannot be filled")

	// ErrRadius indicates a negative radius for a radial shading.
	ErrRadius = errors.New("invalid radius")

	// ErrMesh indicates inconsistent Gouraud mesh data.
	ErrMesh = errors.New("invalid mesh")

	// ErrNonConformal is returned when a radial shading is transformed by a
	// matrix which does not map circles to circles.
	ErrNonConformal = errors.New("radial shading requires a conformal transformation")
)
