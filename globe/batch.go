// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package globe

import (
	"cogentcore.org/core/math32"
)

// InstanceBatch holds the per-instance transform data for the single
// instanced draw call that renders all markers.  The arrays are parallel
// and indexed 1:1 with the marker list at the last [InstanceBatch.Rebuild];
// index stability holds only within a single rebuild.  The Matrices and
// Colors arrays are contiguous and laid out for direct upload by a host
// GPU renderer.
type InstanceBatch struct {

	// IDs maps instance index back to marker id, for pick resolution.
	IDs []string

	// Positions are the world positions of each instance under the mode
	// current at the last rebuild.
	Positions []math32.Vector3

	// Matrices are the per-instance transform matrices (translation and
	// visibility/LOD scale).
	Matrices []math32.Matrix4

	// Colors are the per-instance colors as normalized RGBA.
	Colors []math32.Vector4

	// Scales are the current per-instance scale factors; 0 = culled.
	Scales []float32

	// selected flags instances rendering at the boosted selection scale.
	selected []bool

	built bool
}

// Len returns the number of instances in the batch.
func (ib *InstanceBatch) Len() int {
	return len(ib.IDs)
}

// Rebuild rewrites the entire instance array from the given marker
// snapshot under the given mode.  This is an O(n) full rewrite: one
// matrix and one color write per instance.  It must be called on any
// structural change to the marker list (add, remove, reorder) and on
// mode switch.
func (ib *InstanceBatch) Rebuild(markers []Marker, mode Modes, set *Settings) {
	n := len(markers)
	if cap(ib.IDs) < n {
		ib.IDs = make([]string, n)
		ib.Positions = make([]math32.Vector3, n)
		ib.Matrices = make([]math32.Matrix4, n)
		ib.Colors = make([]math32.Vector4, n)
		ib.Scales = make([]float32, n)
		ib.selected = make([]bool, n)
	}
	ib.IDs = ib.IDs[:n]
	ib.Positions = ib.Positions[:n]
	ib.Matrices = ib.Matrices[:n]
	ib.Colors = ib.Colors[:n]
	ib.Scales = ib.Scales[:n]
	ib.selected = ib.selected[:n]

	var quat math32.Quat
	quat.SetIdentity()
	for i := range markers {
		mk := &markers[i]
		var pos math32.Vector3
		if mode == Flat {
			pos = mk.Pos.Flat(set.MapWidth, set.MapHeight)
		} else {
			pos = mk.Pos.Sphere(set.GlobeRadius)
		}
		ib.IDs[i] = mk.ID
		ib.Positions[i] = pos
		ib.Scales[i] = 1
		ib.selected[i] = mk.Selected
		ib.Matrices[i].SetTransform(pos, quat, math32.Vec3(1, 1, 1))
		c := mk.Color
		ib.Colors[i] = math32.Vec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
	}
	ib.built = true
}

// UpdateVisibility runs the per-frame visibility and level-of-detail pass:
// instances outside the camera frustum are scaled to zero (hidden without
// a batch rebuild), and visible instances get a discrete LOD scale from
// the camera distance thresholds in the settings.  The instance matrix is
// rewritten only when the scale actually changes.  If the batch has not
// been built yet, or the camera frustum is not ready, this is a no-op.
func (ib *InstanceBatch) UpdateVisibility(cam *Camera, set *Settings) {
	if !ib.built || cam.Frustum == nil {
		return
	}
	var quat math32.Quat
	quat.SetIdentity()
	for i, pos := range ib.Positions {
		var sc float32
		if cam.Frustum.ContainsPoint(pos) {
			sc = set.LODScale(pos.DistanceTo(cam.Pos))
			if ib.selected[i] {
				sc *= set.SelectedScale
			}
		}
		if sc == ib.Scales[i] {
			continue
		}
		ib.Scales[i] = sc
		ib.Matrices[i].SetTransform(pos, quat, math32.Vec3(sc, sc, sc))
	}
}

// Pick intersects the given world-space ray against the bounding spheres
// of all visible instances and returns the index and id of the nearest
// hit, or -1 and false if nothing is hit.  Culled (zero scale) instances
// are skipped.
func (ib *InstanceBatch) Pick(ray math32.Ray, set *Settings) (int, string, bool) {
	if !ib.built {
		return -1, "", false
	}
	best := -1
	var bestDist float32
	for i, pos := range ib.Positions {
		sc := ib.Scales[i]
		if sc == 0 {
			continue
		}
		sp := math32.Sphere{Center: pos, Radius: set.MarkerRadius * sc}
		pt, has := ray.IntersectSphere(sp)
		if !has {
			continue
		}
		d := pt.DistanceTo(ray.Origin)
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best < 0 {
		return -1, "", false
	}
	return best, ib.IDs[best], true
}
