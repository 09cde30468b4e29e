// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package globe

import (
	"image"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/globe/geo"
)

// Scene is the top-level composer of the globe engine.  It owns the scene
// mode, the camera, the marker instance batch, the connector arcs, the
// boundary overlays, and the anchor projector, and assembles them into one
// frame per host render tick via [Scene.Frame].
//
// Marker and connection data is owned by the application: [Scene.SetMarkers]
// and [Scene.SetConnections] install the latest snapshot and mark the scene
// for rebuild; the engine only ever reads the snapshot.  All positions are
// re-derived from geographic coordinates on every rebuild, so switching
// between spherical and flat mode can never corrupt marker placement.
type Scene struct {

	// Mode is the current projection mode.  Use [Scene.SetMode] to switch.
	Mode Modes

	// Camera determines the view onto the scene.
	Camera Camera

	// Geom is the viewport geometry: the size is used for screen-space
	// projection and pick rays.
	Geom math32.Geom2DInt

	// Settings are the tunable engine constants.
	Settings Settings

	// Markers is the current marker snapshot, owned by the application.
	Markers []Marker

	// Connections is the current connection snapshot, owned by the
	// application.
	Connections []Connection

	// Batch is the instanced marker batch.
	Batch InstanceBatch

	// Projector computes screen anchor connector lines.
	Projector Projector

	// Boundaries holds the projected boundary overlay polylines.
	Boundaries Boundaries

	// Ambient is the ambient light color, handed to the host renderer.
	Ambient color.RGBA

	// Sun is the directional light color, handed to the host renderer.
	Sun color.RGBA

	// SunDir is the direction of the directional light.
	SunDir math32.Vector3

	// NeedsRebuild means the marker or connection set, or the mode, has
	// changed and the instance batch and connector arcs must be rebuilt.
	NeedsRebuild bool

	// NeedsRender means something visual changed (minimally the camera)
	// and the host should redraw.
	NeedsRender bool

	// OnMarkerClick is called with the marker id when a marker is clicked.
	OnMarkerClick func(id string)

	// OnHover is called when the hovered marker changes; id is empty when
	// no marker is hovered.
	OnHover func(id string)

	// OnPlacement is called with the geographic location when the user
	// double-clicks the globe or map surface, requesting a new marker
	// there.  Marker creation itself is up to the application.
	OnPlacement func(p geo.Point)

	// arcs are the resolved connector arcs, rebuilt with the batch.
	arcs []ConnectionArc

	// hovered is the id of the currently hovered marker, if any.
	hovered string
}

// NewScene returns a new [Scene] with default settings, camera, and lights.
func NewScene() *Scene {
	sc := &Scene{}
	sc.Defaults()
	return sc
}

func (sc *Scene) Defaults() {
	sc.Settings.Defaults()
	sc.Camera.Defaults()
	sc.Geom.Size = image.Pt(960, 640)
	sc.Camera.Aspect = float32(sc.Geom.Size.X) / float32(sc.Geom.Size.Y)
	sc.Ambient = colors.FromRGB(60, 60, 60)
	sc.Sun = colors.FromRGB(255, 255, 255)
	sc.SunDir = math32.Vec3(0, 1, 1).Normal()
	sc.NeedsRebuild = true
}

// SetSize sets the viewport size in pixels, updating the camera aspect.
func (sc *Scene) SetSize(sz image.Point) *Scene {
	if sz.X == 0 || sz.Y == 0 {
		return sc
	}
	sc.Geom.Size = sz
	sc.Camera.Aspect = float32(sz.X) / float32(sz.Y)
	sc.NeedsRender = true
	return sc
}

// SetMode switches between spherical and flat projection.  Every component
// starts computing positions through the new mode's transforms on the next
// frame; any visual morph between the two is a cosmetic overlay handled by
// the host, outside the scene geometry.
func (sc *Scene) SetMode(m Modes) {
	if sc.Mode == m {
		return
	}
	sc.Mode = m
	sc.NeedsRebuild = true
}

// SetMarkers installs the latest marker snapshot and marks the scene for
// rebuild.  The slice is read-only to the engine.
func (sc *Scene) SetMarkers(mks []Marker) {
	sc.Markers = mks
	sc.NeedsRebuild = true
}

// SetConnections installs the latest connection snapshot and marks the
// scene for rebuild.  The slice is read-only to the engine.
func (sc *Scene) SetConnections(cns []Connection) {
	sc.Connections = cns
	sc.NeedsRebuild = true
}

// Hovered returns the id of the currently hovered marker, or empty.
// The label overlay for the hovered marker is created lazily by the host
// when this changes, rather than kept per marker.
func (sc *Scene) Hovered() string {
	return sc.hovered
}
