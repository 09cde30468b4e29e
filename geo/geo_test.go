// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1.0e-6

func TestSphereRoundTrip(t *testing.T) {
	for _, r := range []float64{0.5, 1, 6371} {
		for lon := -180.0; lon < 180; lon += 15 {
			for lat := -85.0; lat <= 85; lat += 5 {
				x, y, z := SphereXYZ(lon, lat, r)
				p := SphereToGeo(x, y, z)
				assert.InDelta(t, lon, p.Lon, tol, "lon %v lat %v r %v", lon, lat, r)
				assert.InDelta(t, lat, p.Lat, tol, "lon %v lat %v r %v", lon, lat, r)
			}
		}
	}
}

func TestSpherePoles(t *testing.T) {
	// longitude is undefined at the poles; latitude must still invert.
	for _, lat := range []float64{90, -90} {
		x, y, z := SphereXYZ(45, lat, 1)
		p := SphereToGeo(x, y, z)
		assert.InDelta(t, lat, p.Lat, 1.0e-3)
		assert.False(t, math.IsNaN(p.Lon))
	}
}

func TestSphereScenario(t *testing.T) {
	x, y, z := SphereXYZ(0, 0, 1)
	assert.InDelta(t, 1, x, tol)
	assert.InDelta(t, 0, y, tol)
	assert.InDelta(t, 0, z, tol)

	x, y, z = SphereXYZ(90, 0, 1)
	assert.InDelta(t, 0, x, tol)
	assert.InDelta(t, 0, y, tol)
	assert.InDelta(t, -1, z, tol)

	// north pole
	x, y, z = SphereXYZ(0, 90, 1)
	assert.InDelta(t, 0, x, tol)
	assert.InDelta(t, 1, y, tol)
	assert.InDelta(t, 0, z, tol)
}

func TestSphereLonCanonical(t *testing.T) {
	// eastern hemisphere: atan2 lands in (-pi, pi], so the raw longitude
	// comes back shifted by -360 unless wrapped.  Inverted longitudes must
	// stay in the canonical [-180, 180] range.
	for _, lon := range []float64{15, 37.6, 90, 120, 179} {
		x, y, z := SphereXYZ(lon, 20, 1)
		p := SphereToGeo(x, y, z)
		assert.InDelta(t, lon, p.Lon, tol)
		assert.GreaterOrEqual(t, p.Lon, -180.0)
		assert.LessOrEqual(t, p.Lon, 180.0)
	}
}

func TestFlatLinear(t *testing.T) {
	w, h := 4.0, 2.0

	x, y, z := FlatXYZ(0, 0, w, h)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
	assert.Equal(t, float64(FlatZOffset), z)

	x, y, _ = FlatXYZ(180, 90, w, h)
	assert.Equal(t, w/2, x)
	assert.Equal(t, h/2, y)

	x, y, _ = FlatXYZ(-180, -90, w, h)
	assert.Equal(t, -w/2, x)
	assert.Equal(t, -h/2, y)
}

func TestFlatRoundTrip(t *testing.T) {
	w, h := 4.0, 2.0
	for lon := -180.0; lon <= 180; lon += 30 {
		for lat := -90.0; lat <= 90; lat += 15 {
			x, y, _ := FlatXYZ(lon, lat, w, h)
			p := FlatToGeo(x, y, w, h)
			assert.InDelta(t, lon, p.Lon, tol)
			assert.InDelta(t, lat, p.Lat, tol)
		}
	}
}

func TestVectorWrappers(t *testing.T) {
	p := Pt(37.6, 55.7)
	v := p.Sphere(1)
	rt := PointFromSphere(v)
	assert.InDelta(t, p.Lon, rt.Lon, 1.0e-4) // float32 scene precision
	assert.InDelta(t, p.Lat, rt.Lat, 1.0e-4)

	f := p.Flat(4, 2)
	rtf := PointFromFlat(f, 4, 2)
	assert.InDelta(t, p.Lon, rtf.Lon, 1.0e-4)
	assert.InDelta(t, p.Lat, rtf.Lat, 1.0e-4)
}

func TestNoNormalization(t *testing.T) {
	// out-of-range input extrapolates; it is never wrapped or rejected.
	x1, y1, z1 := SphereXYZ(190, 0, 1)
	x2, y2, z2 := SphereXYZ(-170, 0, 1)
	assert.InDelta(t, x1, x2, tol)
	assert.InDelta(t, y1, y2, tol)
	assert.InDelta(t, z1, z2, tol)
}
