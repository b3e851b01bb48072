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
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Gouraud paints a triangle mesh with per-vertex colors, clipped to the
// outline of a cyclic path.
type Gouraud struct {
	shaded
	pens     []Pen
	vertices []vec.Vec2
	edges    []int
	space    ColorSpace
}

var _ Shader = (*Gouraud)(nil)

// NewGouraud returns a drawer which fills p with a Gouraud-shaded mesh.
//
// The pen is only used for the fill rule of the clipping path.  The slices
// pens, vertices and edges must have the same length: vertex i has color
// pens[i] and edge flag edges[i].  See [Triangles] for the edge flags.
// The slices are borrowed and must not be modified while the drawer is in
// use.
func NewGouraud(p *path.Data, pen Pen, pens []Pen, vertices []vec.Vec2, edges []int) (*Gouraud, error) {
	if !IsCyclic(p) {
		return nil, ErrNonCyclic
	}
	if len(pens) != len(vertices) || len(edges) != len(vertices) {
		return nil, fmt.Errorf("%w: %d pens, %d vertices, %d edge flags",
			ErrMesh, len(pens), len(vertices), len(edges))
	}
	if _, err := Triangles(edges); err != nil {
		return nil, err
	}
	return newGouraud(p, pen, pens, vertices, edges), nil
}

func newGouraud(p *path.Data, pen Pen, pens []Pen, vertices []vec.Vec2, edges []int) *Gouraud {
	return &Gouraud{
		shaded:   shaded{Solid{path: p, pen: pen}},
		pens:     pens,
		vertices: vertices,
		edges:    edges,
		space:    commonSpace(pens...),
	}
}

// Palette implements the [Drawer] interface.
//
// The colors of a mesh come from the vertex pens, so only the graphics
// state is saved here.
func (s *Gouraud) Palette(dev Device) {
	dev.GSave()
}

// Fill implements the [Drawer] interface.
func (s *Gouraud) Fill(dev Device) {
	s.clipShade(dev, s)
}

// Shade implements the [Shader] interface.
func (s *Gouraud) Shade(dev Device) {
	dev.ShadeMesh(&Mesh{
		Space:    s.space,
		Pens:     s.pens,
		Vertices: s.vertices,
		Edges:    s.edges,
	})
}

// Transformed implements the [Drawer] interface.
// Pens and edge flags are shared with the receiver.
func (s *Gouraud) Transformed(m matrix.Matrix) (Drawer, error) {
	vertices := make([]vec.Vec2, len(s.vertices))
	for i, v := range s.vertices {
		vertices[i] = apply(m, v)
	}
	return newGouraud(transformPath(s.path, m), s.pen, s.pens, vertices, s.edges), nil
}

// Triangles decodes the edge flags of a free-form triangle mesh into
// triples of vertex indices.
//
// A flag of 0 starts a new triangle, made of this vertex and the next two;
// the flags of these two vertices are ignored.  A flag of 1 forms a triangle
// from the last two vertices of the previous triangle and this vertex.  A
// flag of 2 forms a triangle from the first and the last vertex of the
// previous triangle and this vertex.
func Triangles(edges []int) ([][3]int, error) {
	var res [][3]int
	var tri [3]int
	haveTri := false
	for i := 0; i < len(edges); {
		switch edges[i] {
		case 0:
			if i+2 >= len(edges) {
				return nil, fmt.Errorf("%w: vertex %d: incomplete triangle", ErrMesh, i)
			}
			tri = [3]int{i, i + 1, i + 2}
			i += 3
		case 1, 2:
			if !haveTri {
				return nil, fmt.Errorf("%w: vertex %d: flag %d without previous triangle",
					ErrMesh, i, edges[i])
			}
			if edges[i] == 1 {
				tri = [3]int{tri[1], tri[2], i}
			} else {
				tri = [3]int{tri[0], tri[2], i}
			}
			i++
		default:
			return nil, fmt.Errorf("%w: vertex %d: invalid flag %d", ErrMesh, i, edges[i])
		}
		res = append(res, tri)
		haveTri = true
	}
	if !haveTri {
		return nil, fmt.Errorf("%w: no triangles", ErrMesh)
	}
	return res, nil
}
