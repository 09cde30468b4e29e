// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package globe

import "image"

// PointerMove handles a pointer move event: it pick-tests the marker batch
// under the pointer and updates the hovered marker, calling OnHover when
// it changes.  At most one marker is hovered at a time.
func (sc *Scene) PointerMove(pos image.Point) {
	id, ok := sc.Pick(pos)
	if !ok {
		id = ""
	}
	if id == sc.hovered {
		return
	}
	sc.hovered = id
	sc.NeedsRender = true
	if sc.OnHover != nil {
		sc.OnHover(id)
	}
}

// Click handles a pointer click: if a marker is under the pointer,
// OnMarkerClick is called with its id.
func (sc *Scene) Click(pos image.Point) {
	id, ok := sc.Pick(pos)
	if !ok {
		return
	}
	if sc.OnMarkerClick != nil {
		sc.OnMarkerClick(id)
	}
}

// DoubleClick handles a double-click or double-tap: the earth surface
// under the pointer is resolved back to a geographic location and
// OnPlacement is raised with it.  Creating the marker there is the
// application's job.
func (sc *Scene) DoubleClick(pos image.Point) {
	p, ok := sc.PickSurface(pos)
	if !ok {
		return
	}
	if sc.OnPlacement != nil {
		sc.OnPlacement(p)
	}
}

// CameraStart must be called when a camera gesture (drag, rotate, zoom)
// begins.  It suspends the anchor projector and clears its connector
// lines so nothing stale is drawn during the motion.
func (sc *Scene) CameraStart() {
	sc.Projector.CameraMoving()
}

// CameraEnd must be called when a camera gesture ends.  The anchor
// projector resumes after the settle delay.
func (sc *Scene) CameraEnd() {
	sc.Projector.CameraStopped(sc.Settings.SettleDelay)
	sc.NeedsRender = true
}

// CameraDrag orbits the camera by the given deltas in degrees, as part of
// an active camera gesture.
func (sc *Scene) CameraDrag(delX, delY float32) {
	sc.Camera.Orbit(delX, delY)
	sc.NeedsRender = true
}

// CameraZoom zooms the camera by the given percent of the view distance.
func (sc *Scene) CameraZoom(zoomPct float32) {
	sc.Camera.Zoom(zoomPct)
	sc.NeedsRender = true
}
