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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

// Solid fills a cyclic path with the color of a pen.
type Solid struct {
	path *path.Data
	pen  Pen
}

var _ Drawer = (*Solid)(nil)

// NewSolid returns a drawer which fills p using pen.
// The path must be cyclic, otherwise [ErrNonCyclic] is returned.
func NewSolid(p *path.Data, pen Pen) (*Solid, error) {
	if !IsCyclic(p) {
		return nil, ErrNonCyclic
	}
	return &Solid{path: p, pen: pen}, nil
}

// Path returns the outline of the shape.
func (s *Solid) Path() *path.Data {
	return s.path
}

// Pen returns the pen used for the shape.
func (s *Solid) Pen() Pen {
	return s.pen
}

// Palette implements the [Drawer] interface.
func (s *Solid) Palette(dev Device) {
	dev.SetPen(&s.pen)
	dev.PenStart(&s.pen)
	dev.PenTranslate(&s.pen)
}

// Fill implements the [Drawer] interface.
func (s *Solid) Fill(dev Device) {
	dev.WritePath(s.path)
	dev.Fill(s.pen.Rule)
	dev.PenEnd(&s.pen)
}

// Transformed implements the [Drawer] interface.
func (s *Solid) Transformed(m matrix.Matrix) (Drawer, error) {
	return &Solid{path: transformPath(s.path, m), pen: s.pen}, nil
}
