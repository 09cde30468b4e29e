// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package globe

import (
	"image"

	"cogentcore.org/core/math32"
	"cogentcore.org/globe/geo"
)

// Pick casts a ray from the given screen position through the camera and
// returns the id of the nearest marker hit, or false if no marker is under
// the position.  Only one marker can ever be picked: ties resolve to the
// closest intersection.
func (sc *Scene) Pick(pos image.Point) (string, bool) {
	ray := sc.Camera.RayFromScreen(pos, sc.Geom.Size)
	_, id, ok := sc.Batch.Pick(ray, &sc.Settings)
	return id, ok
}

// PickSurface casts a ray from the given screen position and intersects it
// with the earth surface (the globe sphere or the flat map plane,
// depending on mode), returning the geographic location of the hit.
// This is the coordinate inversion behind double-click marker placement.
func (sc *Scene) PickSurface(pos image.Point) (geo.Point, bool) {
	ray := sc.Camera.RayFromScreen(pos, sc.Geom.Size)
	set := &sc.Settings
	if sc.Mode == Flat {
		if math32.Abs(ray.Dir.Z) < 1.0e-7 {
			return geo.Point{}, false
		}
		t := -ray.Origin.Z / ray.Dir.Z
		if t < 0 {
			return geo.Point{}, false
		}
		pt := ray.Origin.Add(ray.Dir.MulScalar(t))
		if math32.Abs(pt.X) > set.MapWidth/2 || math32.Abs(pt.Y) > set.MapHeight/2 {
			return geo.Point{}, false
		}
		return geo.PointFromFlat(pt, set.MapWidth, set.MapHeight), true
	}
	sp := math32.Sphere{Center: math32.Vector3{}, Radius: set.GlobeRadius}
	pt, has := ray.IntersectSphere(sp)
	if !has {
		return geo.Point{}, false
	}
	return geo.PointFromSphere(pt), true
}
