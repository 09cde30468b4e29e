// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arc generates the polyline point sequences used to draw connector
// arcs between two geographic points, either as a geodesic-style arc over
// the sphere surface or as a straight segment on the flat map.
package arc

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/globe/geo"
)

const (
	// DefaultSegments is the default number of Bezier segments sampled for
	// a spherical arc.  More segments are smoother but cost vertexes every
	// frame in connection-heavy scenes.
	DefaultSegments = 16

	// HeightFactor scales the arc height with the angular separation of
	// the endpoints: height = min(sin(angle/2)*HeightFactor, MaxHeight)
	// in radius units.
	HeightFactor = 0.3

	// MaxHeight caps the arc height in radius units.
	MaxHeight = 0.3

	// NearAntipodal is the angular separation (radians) above which the
	// blended-midpoint control derivation becomes unstable and the
	// cross-product fallback is used instead.
	NearAntipodal = 0.95 * math32.Pi
)

// Curve is a sampled connector arc between two points.
type Curve struct {
	// Points are the polyline points, ordered from the start point to the
	// end point.  The first and last points are exactly the projections of
	// the two endpoints.
	Points []math32.Vector3

	// Mid is the true curve midpoint, evaluated at parametric t=0.5.
	// This is where the visual arc actually passes, for label and arrow
	// placement; it is not the average of the endpoints.
	Mid math32.Vector3
}

// Flat returns the connector between two geographic points on the flat map
// of the given size: a straight two-point segment.
func Flat(from, to geo.Point, mapWidth, mapHeight float32) Curve {
	a := from.Flat(mapWidth, mapHeight)
	b := to.Flat(mapWidth, mapHeight)
	return Curve{
		Points: []math32.Vector3{a, b},
		Mid:    a.Add(b).MulScalar(0.5),
	}
}

// Sphere returns the connector arc between two geographic points on a
// sphere of the given radius, sampled as a quadratic Bezier curve with the
// given number of segments (DefaultSegments if <= 0).  The arc bulges
// outward from the surface by min(sin(angle/2)*HeightFactor, MaxHeight)
// radius units at its apex.  Near-antipodal endpoints, including exact
// antipodes, always produce a finite curve.
func Sphere(from, to geo.Point, radius float32, segments int) Curve {
	if segments <= 0 {
		segments = DefaultSegments
	}
	a := from.Sphere(radius)
	b := to.Sphere(radius)
	ad := a.Normal()
	bd := b.Normal()
	dot := math32.Clamp(ad.Dot(bd), -1, 1)
	ang := math32.Acos(dot)
	height := math32.Min(math32.Sin(ang/2)*HeightFactor, MaxHeight)

	var cdir math32.Vector3
	if ang > NearAntipodal {
		// the blended midpoint direction is unstable here: the bulge
		// direction comes from the cross product instead, projected back
		// onto the sphere surface.
		cdir = ad.Cross(bd)
		if cdir.Length() < 1.0e-6 { // exact antipodes: any perpendicular
			axis := math32.Vec3(0, 1, 0)
			if math32.Abs(ad.Dot(axis)) > 0.9 {
				axis = math32.Vec3(1, 0, 0)
			}
			cdir = ad.Cross(axis)
		}
		cdir.SetNormal()
	} else {
		cdir = ad.Add(bd).Normal()
	}
	// control length such that the curve apex at t=0.5 sits at
	// radius*(1+height): apex = (a+b)/4 + control/2.
	clen := radius * (2*(1+height) - math32.Cos(ang/2))
	ctrl := cdir.MulScalar(clen)

	pts := make([]math32.Vector3, segments+1)
	for i := 1; i < segments; i++ {
		pts[i] = qbezier(a, ctrl, b, float32(i)/float32(segments))
	}
	pts[0] = a
	pts[segments] = b
	return Curve{Points: pts, Mid: qbezier(a, ctrl, b, 0.5)}
}

// qbezier evaluates the quadratic Bezier curve with endpoints p0, p1 and
// control point c at parameter t.
func qbezier(p0, c, p1 math32.Vector3, t float32) math32.Vector3 {
	u := 1 - t
	return p0.MulScalar(u * u).Add(c.MulScalar(2 * u * t)).Add(p1.MulScalar(t * t))
}
