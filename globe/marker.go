// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package globe

import (
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/globe/geo"
	"github.com/google/uuid"
)

// Kinds are the categories of markers.
type Kinds int32

const (
	// Custom is a user-placed marker.
	Custom Kinds = iota

	// City is a marker generated from a city reference dataset.
	City
)

func (k Kinds) String() string {
	switch k {
	case City:
		return "City"
	default:
		return "Custom"
	}
}

// Marker is one annotated point on the earth.  Markers are owned by the
// application: the engine reads them as a snapshot each frame and
// re-derives scene positions from Pos under the current mode, so a marker
// is never stored with baked 3D coordinates.
type Marker struct {

	// ID uniquely identifies the marker.  Connections and anchor bindings
	// reference markers by ID, never by pointer, so deletion can never
	// leave a dangling reference.
	ID string

	// Pos is the geographic position: the source of truth for placement.
	Pos geo.Point

	// Kind is the marker category.
	Kind Kinds

	// Color is the marker render color.
	Color color.RGBA

	// Label is the short label shown on hover.
	Label string

	// Selected markers render at a boosted scale.
	Selected bool
}

// markerCount drives the default palette rotation for new markers.
var markerCount int

// NewMarker returns a marker at the given position with a generated unique
// id and a default color drawn from the spaced palette.
func NewMarker(pos geo.Point) Marker {
	mk := Marker{
		ID:    uuid.NewString(),
		Pos:   pos,
		Color: colors.Spaced(markerCount),
	}
	markerCount++
	return mk
}

// Connection is a directed relationship between two markers, drawn as a
// connector arc.  From and To reference markers by ID and are resolved by
// lookup on every rebuild: a connection whose endpoint cannot be resolved
// renders nothing, it never errors.
type Connection struct {
	ID   string
	From string
	To   string

	// Label is drawn at the arc midpoint.
	Label string
}

// NewConnection returns a connection between the two given marker ids with
// a generated unique id.
func NewConnection(from, to string) Connection {
	return Connection{ID: uuid.NewString(), From: from, To: to}
}
