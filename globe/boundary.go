// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package globe

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/globe/geo"
	"github.com/peterstace/simplefeatures/geom"
)

// Boundaries caches the projected boundary overlay polylines (country and
// coastline outlines).  Geometry arrives pre-parsed as simplefeatures
// multipolygons from the boundary data collaborator; this only projects
// their rings through the coordinate transforms.  Projection is recomputed
// only when the geometry or the scene mode changes, tracked explicitly per
// set rather than diffed implicitly.
type Boundaries struct {
	sets map[string]*boundarySet
}

type boundarySet struct {
	mp    geom.MultiPolygon
	mode  Modes
	valid bool
	lines [][]math32.Vector3
}

// SetGeometry installs (or replaces) the boundary geometry under the given
// name, invalidating its projected polylines.
func (bd *Boundaries) SetGeometry(name string, mp geom.MultiPolygon) {
	if bd.sets == nil {
		bd.sets = make(map[string]*boundarySet)
	}
	bd.sets[name] = &boundarySet{mp: mp}
}

// Delete removes the boundary geometry under the given name.
func (bd *Boundaries) Delete(name string) {
	delete(bd.sets, name)
}

// Polylines returns the projected polylines of all boundary sets under the
// given mode, re-projecting any set whose cache is stale.
func (bd *Boundaries) Polylines(mode Modes, set *Settings) [][]math32.Vector3 {
	var out [][]math32.Vector3
	for _, bs := range bd.sets {
		if !bs.valid || bs.mode != mode {
			bs.project(mode, set)
		}
		out = append(out, bs.lines...)
	}
	return out
}

// project recomputes the polylines for one boundary set: exterior and
// interior rings of every polygon, skipping empty rings.
func (bs *boundarySet) project(mode Modes, set *Settings) {
	bs.lines = bs.lines[:0]
	np := bs.mp.NumPolygons()
	for i := 0; i < np; i++ {
		p := bs.mp.PolygonN(i)
		bs.projectRing(p.ExteriorRing(), mode, set)
		ni := p.NumInteriorRings()
		for j := 0; j < ni; j++ {
			bs.projectRing(p.InteriorRingN(j), mode, set)
		}
	}
	bs.mode = mode
	bs.valid = true
}

func (bs *boundarySet) projectRing(ls geom.LineString, mode Modes, set *Settings) {
	seq := ls.Coordinates()
	n := seq.Length()
	if n < 2 {
		return
	}
	ring := make([]geo.Point, n)
	for i := 0; i < n; i++ {
		xy := seq.GetXY(i)
		ring[i] = geo.Pt(xy.X, xy.Y)
	}
	if mode == Flat {
		bs.lines = append(bs.lines, geo.RingFlat(ring, set.MapWidth, set.MapHeight))
	} else {
		bs.lines = append(bs.lines, geo.RingSphere(ring, set.GlobeRadius, set.BoundaryOffset))
	}
}
