// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package globe

import (
	"log"

	"cogentcore.org/globe/arc"
	"cogentcore.org/globe/geo"
)

// ConnectionArc is a resolved connection with its sampled connector arc,
// ready for the host line renderer.
type ConnectionArc struct {
	ID    string
	Label string

	// Curve is the sampled arc; Curve.Mid is where the label and
	// direction arrow go.
	Curve arc.Curve
}

// Frame runs one engine tick, driven by the host rendering loop's
// per-frame callback.  Order within the frame matters: the batch rebuild
// and visibility pass run before the anchor projector reads marker
// positions, so connector lines are always computed against this frame's
// positions.  Returns true if the host should redraw.
func (sc *Scene) Frame() bool {
	if sc.NeedsRebuild {
		sc.rebuild()
		sc.NeedsRebuild = false
		sc.NeedsRender = true
	}
	sc.Camera.UpdateMatrix()
	sc.Batch.UpdateVisibility(&sc.Camera, &sc.Settings)
	sc.Projector.Update(&sc.Batch, &sc.Camera, sc.Mode, sc.Geom.Size, &sc.Settings)
	render := sc.NeedsRender
	sc.NeedsRender = false
	return render
}

// rebuild recomputes everything derived from the marker and connection
// snapshots under the current mode: the instance batch and the connector
// arcs.  Boundary overlays are projected lazily in [Boundaries.Polylines].
func (sc *Scene) rebuild() {
	sc.Batch.Rebuild(sc.Markers, sc.Mode, &sc.Settings)
	sc.rebuildArcs()
	if UpdateTrace {
		log.Printf("globe.Scene: rebuilt %d markers, %d arcs, mode %v\n", sc.Batch.Len(), len(sc.arcs), sc.Mode)
	}
}

// rebuildArcs resolves each connection's endpoints by id in the current
// marker snapshot and samples its arc.  Connections with an unresolvable
// endpoint produce no geometry; the endpoint lookup runs fresh on every
// rebuild so concurrent marker deletion is always tolerated.
func (sc *Scene) rebuildArcs() {
	sc.arcs = sc.arcs[:0]
	if len(sc.Connections) == 0 {
		return
	}
	pts := make(map[string]geo.Point, len(sc.Markers))
	for i := range sc.Markers {
		pts[sc.Markers[i].ID] = sc.Markers[i].Pos
	}
	set := &sc.Settings
	for _, cn := range sc.Connections {
		from, ok := pts[cn.From]
		if !ok {
			continue
		}
		to, ok := pts[cn.To]
		if !ok {
			continue
		}
		var cv arc.Curve
		if sc.Mode == Flat {
			cv = arc.Flat(from, to, set.MapWidth, set.MapHeight)
		} else {
			cv = arc.Sphere(from, to, set.GlobeRadius, set.ArcSegments)
		}
		sc.arcs = append(sc.arcs, ConnectionArc{ID: cn.ID, Label: cn.Label, Curve: cv})
	}
}

// ConnectionArcs returns the resolved connector arcs from the last
// rebuild, in connection snapshot order (minus any unresolved ones).
func (sc *Scene) ConnectionArcs() []ConnectionArc {
	return sc.arcs
}
