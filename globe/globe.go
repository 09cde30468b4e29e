// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package globe implements the core rendering and interaction engine of an
// interactive earth annotation tool: an instanced marker batch with frustum
// culling and level-of-detail, connector arcs between markers, a screen
// anchor projector that ties 2D UI anchors to projected 3D points, and a
// scene composer mediating between the spherical globe and the flat map
// projection.
//
// The engine is driven by the host rendering loop: call [Scene.Frame] once
// per displayed frame.  It does not own a GPU device; it produces instance
// transform arrays, polylines, and screen-space connector lines that the
// host uploads or draws.  All marker and connection data is owned by the
// application and read as a snapshot each frame; the engine never mutates
// it.
package globe

// Set UpdateTrace to true to get a trace of scene rebuilds and anchor
// projector updates.
var UpdateTrace = false

// Modes are the scene projection modes.
type Modes int32

const (
	// Spherical renders the earth as a 3D globe.
	Spherical Modes = iota

	// Flat renders the earth as an equirectangular map plane.
	Flat
)

func (m Modes) String() string {
	switch m {
	case Flat:
		return "Flat"
	default:
		return "Spherical"
	}
}
