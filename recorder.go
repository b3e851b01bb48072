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
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Op identifies a recorded device call.
type Op string

// The device calls recorded by a [Recorder].
const (
	OpSetPen        Op = "setpen"
	OpPenStart      Op = "penstart"
	OpPenTranslate  Op = "pentranslate"
	OpPenEnd        Op = "penend"
	OpWritePath     Op = "path"
	OpFill          Op = "fill"
	OpClip          Op = "clip"
	OpGSave         Op = "gsave"
	OpGRestore      Op = "grestore"
	OpShadeGradient Op = "shade"
	OpShadeMesh     Op = "shademesh"
)

// Call is a single device call recorded by a [Recorder].
// Exactly one of the argument fields is set, depending on Op.
type Call struct {
	Op       Op        `json:"op"`
	Pen      *Pen      `json:"pen,omitempty"`
	Rule     *FillRule `json:"rule,omitempty"`
	Path     []Segment `json:"path,omitempty"`
	Gradient *Gradient `json:"gradient,omitempty"`
	Mesh     *Mesh     `json:"mesh,omitempty"`
}

// Segment is a copy of one path segment.
type Segment struct {
	Cmd path.Command `json:"cmd"`
	Pts []vec.Vec2   `json:"pts,omitempty"`
}

// ErrInjected is the error reported by a [Recorder] when FailAt is reached.
var ErrInjected = errors.New("injected device failure")

// A Recorder is a [Device] which records all calls.
//
// This is used to inspect the output of drawers, independent of any
// page description format.
type Recorder struct {
	Calls []Call

	// FailAt, if positive, makes the Recorder fail on the given call,
	// counting from 1.  The failing call is not recorded.
	FailAt int

	n   int
	err error
}

var _ Device = (*Recorder)(nil)

func (r *Recorder) record(c Call) {
	if r.err != nil {
		return
	}
	r.n++
	if r.FailAt > 0 && r.n >= r.FailAt {
		r.err = ErrInjected
		return
	}
	r.Calls = append(r.Calls, c)
}

// Reset discards all recorded calls and clears the error.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
	r.n = 0
	r.err = nil
}

// Ops returns the sequence of recorded call types.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// SetPen implements the [Device] interface.
func (r *Recorder) SetPen(p *Pen) {
	r.record(Call{Op: OpSetPen, Pen: clonePen(p)})
}

// PenStart implements the [Device] interface.
func (r *Recorder) PenStart(p *Pen) {
	r.record(Call{Op: OpPenStart, Pen: clonePen(p)})
}

// PenTranslate implements the [Device] interface.
func (r *Recorder) PenTranslate(p *Pen) {
	r.record(Call{Op: OpPenTranslate, Pen: clonePen(p)})
}

// PenEnd implements the [Device] interface.
func (r *Recorder) PenEnd(p *Pen) {
	r.record(Call{Op: OpPenEnd, Pen: clonePen(p)})
}

// WritePath implements the [Device] interface.
func (r *Recorder) WritePath(p *path.Data) {
	var segs []Segment
	for cmd, pts := range p.Iter().ToCubic() {
		seg := Segment{Cmd: cmd}
		if len(pts) > 0 {
			seg.Pts = slices.Clone(pts)
		}
		segs = append(segs, seg)
	}
	r.record(Call{Op: OpWritePath, Path: segs})
}

// Fill implements the [Device] interface.
func (r *Recorder) Fill(rule FillRule) {
	r.record(Call{Op: OpFill, Rule: &rule})
}

// Clip implements the [Device] interface.
func (r *Recorder) Clip(rule FillRule) {
	r.record(Call{Op: OpClip, Rule: &rule})
}

// GSave implements the [Device] interface.
func (r *Recorder) GSave() {
	r.record(Call{Op: OpGSave})
}

// GRestore implements the [Device] interface.
func (r *Recorder) GRestore() {
	r.record(Call{Op: OpGRestore})
}

// ShadeGradient implements the [Device] interface.
func (r *Recorder) ShadeGradient(g *Gradient) {
	c := *g
	r.record(Call{Op: OpShadeGradient, Gradient: &c})
}

// ShadeMesh implements the [Device] interface.
// The mesh slices are recorded as given, without copying.
func (r *Recorder) ShadeMesh(m *Mesh) {
	c := *m
	r.record(Call{Op: OpShadeMesh, Mesh: &c})
}

// Err implements the [Device] interface.
func (r *Recorder) Err() error {
	return r.err
}

func clonePen(p *Pen) *Pen {
	c := *p
	c.Dash = slices.Clone(p.Dash)
	return &c
}
