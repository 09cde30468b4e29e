// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package globe

import (
	"testing"

	"cogentcore.org/globe/geo"
	"github.com/stretchr/testify/assert"
)

// frontMarker returns a marker at the surface point facing the default
// camera at +Z looking at the origin, which is (0, 0, 1) = lon -90.
func frontMarker() Marker {
	mk := NewMarker(geo.Pt(-90, 0))
	mk.Label = "front"
	return mk
}

func testSettings() *Settings {
	set := &Settings{}
	set.Defaults()
	return set
}

func TestRebuildLength(t *testing.T) {
	set := testSettings()
	mks := []Marker{
		NewMarker(geo.Pt(0, 0)),
		NewMarker(geo.Pt(90, 0)),
		NewMarker(geo.Pt(-45, 30)),
	}
	var ib InstanceBatch
	ib.Rebuild(mks, Spherical, set)
	assert.Equal(t, len(mks), ib.Len())
	assert.Len(t, ib.Matrices, len(mks))
	assert.Len(t, ib.Colors, len(mks))

	mks = mks[:1]
	ib.Rebuild(mks, Spherical, set)
	assert.Equal(t, 1, ib.Len())
}

func TestVisibilityNotReady(t *testing.T) {
	set := testSettings()
	var ib InstanceBatch
	var cam Camera
	cam.Defaults()
	ib.UpdateVisibility(&cam, set) // no-op before first rebuild
	assert.Equal(t, 0, ib.Len())
}

func TestFrustumCulling(t *testing.T) {
	set := testSettings()
	var cam Camera
	cam.Defaults()
	mks := []Marker{frontMarker()}
	var ib InstanceBatch
	ib.Rebuild(mks, Spherical, set)

	// camera at +Z looking at the origin: the front marker is centered
	// in view and must not be culled.
	cam.UpdateMatrix()
	ib.UpdateVisibility(&cam, set)
	assert.Greater(t, ib.Scales[0], float32(0))

	// camera looking directly away from the globe: every marker is
	// behind the camera and scales to zero.
	cam.Pos.Set(0, 0, 4)
	cam.LookAt(cam.Pos.Add(cam.Pos), cam.UpDir)
	ib.UpdateVisibility(&cam, set)
	assert.Equal(t, float32(0), ib.Scales[0])
}

func TestLODScale(t *testing.T) {
	set := testSettings()
	// defaults: thresholds 2, 5, 12 with scales 1, 0.65, 0.4
	assert.Equal(t, float32(1), set.LODScale(1))
	assert.Equal(t, float32(0.65), set.LODScale(3))
	assert.Equal(t, float32(0.4), set.LODScale(8))
	assert.Equal(t, float32(0.4), set.LODScale(50))
}

func TestLODByDistance(t *testing.T) {
	set := testSettings()
	var cam Camera
	cam.Defaults() // at (0,0,4): distance 3 to the front marker
	mks := []Marker{frontMarker()}
	var ib InstanceBatch
	ib.Rebuild(mks, Spherical, set)
	ib.UpdateVisibility(&cam, set)
	assert.Equal(t, float32(0.65), ib.Scales[0])

	cam.Pos.Set(0, 0, 10) // distance 9: next band
	cam.LookAt(cam.Target, cam.UpDir)
	ib.UpdateVisibility(&cam, set)
	assert.Equal(t, float32(0.4), ib.Scales[0])
}

func TestSelectedScale(t *testing.T) {
	set := testSettings()
	var cam Camera
	cam.Defaults()
	mk := frontMarker()
	mk.Selected = true
	var ib InstanceBatch
	ib.Rebuild([]Marker{mk}, Spherical, set)
	ib.UpdateVisibility(&cam, set)
	assert.Equal(t, float32(0.65)*set.SelectedScale, ib.Scales[0])
}

func TestFlatRebuild(t *testing.T) {
	set := testSettings()
	mks := []Marker{NewMarker(geo.Pt(0, 0))}
	var ib InstanceBatch
	ib.Rebuild(mks, Flat, set)
	pos := ib.Positions[0]
	assert.InDelta(t, 0, pos.X, 1.0e-6)
	assert.InDelta(t, 0, pos.Y, 1.0e-6)
	assert.InDelta(t, geo.FlatZOffset, pos.Z, 1.0e-6)
}
