// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package globe

import (
	"image"
	"log"
	"time"

	"cogentcore.org/core/math32"
)

// AnchorPositionProvider supplies the current screen rectangle of the 2D
// UI anchor element for a binding (e.g., an event card in a DOM overlay).
// Abstracting the anchor layout behind this interface keeps the projector
// free of any UI toolkit dependency and testable with a mock.
type AnchorPositionProvider interface {

	// ScreenRect returns the current screen-space bounding rectangle of
	// the anchor element for the given binding id, or false if the
	// element does not currently exist.
	ScreenRect(bindingID string) (math32.Box2, bool)
}

// Sides are the screen sides on which an anchor card is placed, which
// determines the edge of the anchor rectangle the connector line starts
// from.
type Sides int32

const (
	// Left places the card on the left side: the connector leaves from
	// the right edge of the anchor rectangle.
	Left Sides = iota

	// Right places the card on the right side: the connector leaves from
	// the left edge.
	Right
)

// Binding ties a 2D UI anchor to a marker: the projector computes a
// connector line from the anchor element to the marker's projected screen
// position every update cycle.
type Binding struct {

	// EventID identifies the binding and its anchor element.
	EventID string

	// MarkerID is the marker the connector points at, resolved by id from
	// the live marker snapshot on every update; a binding whose marker has
	// been deleted is skipped without error.
	MarkerID string

	// Side is the screen side the anchor card is placed on.
	Side Sides
}

// ConnectorLine is one computed screen-space connector line, from the
// anchor element edge to the projected marker position.  Recomputed every
// update cycle and never persisted.
type ConnectorLine struct {
	EventID string

	// Start is the anchor-side screen point.
	Start math32.Vector2

	// End is the projected marker screen point.
	End math32.Vector2

	// Visible is false when the marker is outside the depth range or, in
	// spherical mode, on the back side of the globe.
	Visible bool
}

// Projector computes the screen-space connector lines between anchor
// elements and their markers.  It is throttled: it runs once every
// [Settings.AnchorFrames] frames, is suspended entirely while the camera
// is moving (the connector set is cleared immediately, not faded), and
// resumes only after the camera has been stationary for
// [Settings.SettleDelay].  Consumers are notified through OnConnectors
// only when a line moved more than [Settings.PixelThreshold] pixels or
// the set of bindings changed.
type Projector struct {

	// Bindings are the active anchor bindings.
	Bindings []Binding

	// Provider supplies anchor element screen rectangles.
	Provider AnchorPositionProvider

	// OnConnectors is called with the full connector line set whenever it
	// changes materially.
	OnConnectors func(lines []ConnectorLine)

	frame    int
	moving   bool
	settleAt time.Time
	last     []ConnectorLine
	notified bool
}

// SetBindings replaces the active binding set.
func (pj *Projector) SetBindings(bs []Binding) {
	pj.Bindings = bs
}

// CameraMoving must be called when camera motion starts (pan, rotate, or
// zoom).  It suspends projection and clears the current connector set
// immediately, so stale lines are never drawn during camera motion.
func (pj *Projector) CameraMoving() {
	pj.moving = true
	if len(pj.last) != 0 || !pj.notified {
		pj.last = nil
		pj.notify(nil)
	}
}

// CameraStopped must be called when camera motion ends.  Projection
// resumes after the settle delay.
func (pj *Projector) CameraStopped(settle time.Duration) {
	pj.moving = false
	pj.settleAt = time.Now().Add(settle)
}

func (pj *Projector) notify(lines []ConnectorLine) {
	pj.notified = true
	if UpdateTrace {
		log.Printf("globe.Projector: notifying %d connector lines\n", len(lines))
	}
	if pj.OnConnectors != nil {
		pj.OnConnectors(lines)
	}
}

// Update runs one projector cycle against the given marker snapshot,
// instance batch, camera, and viewport size.  It is a no-op on throttled
// frames, while the camera is moving, during the settle delay, or when no
// provider is set.
func (pj *Projector) Update(batch *InstanceBatch, cam *Camera, mode Modes, size image.Point, set *Settings) {
	pj.frame++
	if pj.Provider == nil || pj.moving {
		return
	}
	if !pj.settleAt.IsZero() && time.Now().Before(pj.settleAt) {
		return
	}
	af := set.AnchorFrames
	if af > 1 && pj.frame%af != 0 {
		return
	}
	lines := pj.compute(batch, cam, mode, size, set)
	if !pj.changed(lines, set.PixelThreshold) {
		return
	}
	pj.last = lines
	pj.notify(lines)
}

// compute builds the current connector line set.  Bindings whose marker
// no longer exists, or whose anchor element is missing, are skipped.
func (pj *Projector) compute(batch *InstanceBatch, cam *Camera, mode Modes, size image.Point, set *Settings) []ConnectorLine {
	var lines []ConnectorLine
	for _, b := range pj.Bindings {
		pos, ok := batch.position(b.MarkerID)
		if !ok {
			continue
		}
		rect, ok := pj.Provider.ScreenRect(b.EventID)
		if !ok {
			continue
		}
		start := anchorPoint(rect, b.Side)
		ndc := cam.Project(pos)
		vis := ndc.Z > -1 && ndc.Z < 1
		if vis && mode == Spherical {
			// back-face test: the marker's outward normal must face the
			// camera by at least the horizon threshold.
			norm := pos.Normal()
			toCam := cam.Pos.Sub(pos).Normal()
			if norm.Dot(toCam) < set.HorizonDot {
				vis = false
			}
		}
		end := math32.Vec2(
			(ndc.X+1)*0.5*float32(size.X),
			(1-ndc.Y)*0.5*float32(size.Y),
		)
		lines = append(lines, ConnectorLine{
			EventID: b.EventID,
			Start:   start,
			End:     end,
			Visible: vis,
		})
	}
	return lines
}

// changed reports whether the new line set differs materially from the
// last notified one: different length, changed visibility, or any
// endpoint moved more than the pixel threshold.
func (pj *Projector) changed(lines []ConnectorLine, px float32) bool {
	if !pj.notified || len(lines) != len(pj.last) {
		return true
	}
	for i := range lines {
		nl, ol := &lines[i], &pj.last[i]
		if nl.EventID != ol.EventID || nl.Visible != ol.Visible {
			return true
		}
		if nl.Start.DistanceTo(ol.Start) > px || nl.End.DistanceTo(ol.End) > px {
			return true
		}
	}
	return false
}

// anchorPoint returns the point on the anchor rectangle edge that the
// connector line starts from, based on the card's screen side.
func anchorPoint(rect math32.Box2, side Sides) math32.Vector2 {
	cy := (rect.Min.Y + rect.Max.Y) * 0.5
	if side == Left {
		return math32.Vec2(rect.Max.X, cy)
	}
	return math32.Vec2(rect.Min.X, cy)
}

// position returns the world position of the instance for the given
// marker id, or false if the marker is not in the batch.
func (ib *InstanceBatch) position(id string) (math32.Vector3, bool) {
	for i, mid := range ib.IDs {
		if mid == id {
			return ib.Positions[i], true
		}
	}
	return math32.Vector3{}, false
}
