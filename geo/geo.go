// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geo provides the geographic coordinate transforms at the base of
// the globe rendering pipeline: longitude, latitude pairs to and from 3D
// positions on a sphere surface, and to and from positions on an
// equirectangular flat-map plane.
//
// All transforms are pure functions.  They perform no validation and no
// longitude normalization: they run every frame for every marker, and
// out-of-range input just extrapolates mathematically.  Callers that need
// wrapping (e.g., -180 vs 180) must normalize before calling.
//
// The trigonometric path computes in float64 so that geographic round-trips
// are exact to well below display precision; the [math32] wrappers cast to
// float32 only at the scene boundary.
package geo

import (
	"fmt"
	"math"

	"cogentcore.org/core/math32"
)

// Point is a geographic location: longitude and latitude in degrees.
// Longitude is in [-180, 180] and latitude in [-90, 90].
// Points are immutable values and are the source of truth for all marker
// and connector placement: scene positions are always re-derived from the
// Point under the current scene mode, never stored back.
type Point struct {
	Lon float64
	Lat float64
}

// Pt returns a new [Point] with the given longitude and latitude in degrees.
func Pt(lon, lat float64) Point {
	return Point{Lon: lon, Lat: lat}
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.Lon, p.Lat)
}

// FlatZOffset is the fixed z offset applied to all flat-map projected
// points, keeping them just above the map plane mesh so they do not
// z-fight with it.
const FlatZOffset = 0.001

// SphereXYZ returns the 3D cartesian position of the given longitude and
// latitude (degrees) on a sphere of the given radius, using inclination
// phi measured down from the north pole and azimuth theta offset by 180
// degrees.  Under this convention lon=0, lat=0 maps to (radius, 0, 0),
// and lon=-90, lat=0 to (0, 0, radius), facing the default camera looking
// down the -Z axis from +Z.
// [SphereToGeo] is the exact inverse, up to the pole degeneracy where
// longitude is undefined.
func SphereXYZ(lon, lat, radius float64) (x, y, z float64) {
	phi := (90 - lat) * math.Pi / 180
	theta := (lon + 180) * math.Pi / 180
	x = -radius * math.Sin(phi) * math.Cos(theta)
	z = radius * math.Sin(phi) * math.Sin(theta)
	y = radius * math.Cos(phi)
	return
}

// SphereToGeo returns the longitude and latitude (degrees) of the given 3D
// position, inverting [SphereXYZ] for any radius > 0.  At the poles the
// longitude is mathematically undefined and an arbitrary value is returned.
func SphereToGeo(x, y, z float64) Point {
	radius := math.Sqrt(x*x + y*y + z*z)
	phi := math.Acos(y / radius)
	theta := math.Atan2(z, -x)
	lon := theta*180/math.Pi - 180
	if lon < -180 { // atan2 is (-pi, pi]: wrap back to [-180, 180]
		lon += 360
	}
	return Point{
		Lon: lon,
		Lat: 90 - phi*180/math.Pi,
	}
}

// FlatXYZ returns the 3D position of the given longitude and latitude
// (degrees) on an equirectangular flat map of the given total width and
// height, centered on the origin.  The projection is linear: lon=±180 maps
// to x=±width/2 and lat=±90 to y=±height/2.  z is the fixed [FlatZOffset].
func FlatXYZ(lon, lat, mapWidth, mapHeight float64) (x, y, z float64) {
	x = (lon / 180) * (mapWidth / 2)
	y = (lat / 90) * (mapHeight / 2)
	z = FlatZOffset
	return
}

// FlatToGeo returns the longitude and latitude of the given flat-map plane
// position, inverting [FlatXYZ] (the z coordinate is ignored).
func FlatToGeo(x, y, mapWidth, mapHeight float64) Point {
	return Point{
		Lon: (x / (mapWidth / 2)) * 180,
		Lat: (y / (mapHeight / 2)) * 90,
	}
}

// Sphere returns the scene-space position of the point on a sphere of the
// given radius, per [SphereXYZ].
func (p Point) Sphere(radius float32) math32.Vector3 {
	x, y, z := SphereXYZ(p.Lon, p.Lat, float64(radius))
	return math32.Vec3(float32(x), float32(y), float32(z))
}

// Flat returns the scene-space position of the point on an equirectangular
// map plane of the given size, per [FlatXYZ].
func (p Point) Flat(mapWidth, mapHeight float32) math32.Vector3 {
	x, y, z := FlatXYZ(p.Lon, p.Lat, float64(mapWidth), float64(mapHeight))
	return math32.Vec3(float32(x), float32(y), float32(z))
}

// PointFromSphere returns the longitude and latitude of the given
// scene-space position on a sphere surface, per [SphereToGeo].
// This is the transform used to turn a raycast hit on the globe mesh
// back into a geographic location.
func PointFromSphere(v math32.Vector3) Point {
	return SphereToGeo(float64(v.X), float64(v.Y), float64(v.Z))
}

// PointFromFlat returns the longitude and latitude of the given scene-space
// position on the flat-map plane, per [FlatToGeo].
func PointFromFlat(v math32.Vector3, mapWidth, mapHeight float32) Point {
	return FlatToGeo(float64(v.X), float64(v.Y), float64(mapWidth), float64(mapHeight))
}
