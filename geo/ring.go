// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import "cogentcore.org/core/math32"

// RingSphere projects a ring of geographic points onto a sphere of the
// given radius, returning scene-space polyline points.  The ring is
// projected as given: it is not closed or deduplicated here.
// Boundary rings are pushed slightly off the surface by the offset
// (fraction of radius) so they draw above the globe mesh.
func RingSphere(ring []Point, radius, offset float32) []math32.Vector3 {
	pts := make([]math32.Vector3, len(ring))
	r := radius * (1 + offset)
	for i, p := range ring {
		pts[i] = p.Sphere(r)
	}
	return pts
}

// RingFlat projects a ring of geographic points onto the flat map plane
// of the given size, returning scene-space polyline points.
func RingFlat(ring []Point, mapWidth, mapHeight float32) []math32.Vector3 {
	pts := make([]math32.Vector3, len(ring))
	for i, p := range ring {
		pts[i] = p.Flat(mapWidth, mapHeight)
	}
	return pts
}
