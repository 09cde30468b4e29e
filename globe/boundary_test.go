// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package globe

import (
	"testing"

	"github.com/peterstace/simplefeatures/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareMP(t *testing.T) geom.MultiPolygon {
	seq := geom.NewSequence([]float64{
		-10, -10,
		10, -10,
		10, 10,
		-10, 10,
		-10, -10,
	}, geom.DimXY)
	ring, err := geom.NewLineString(seq)
	require.NoError(t, err)
	poly, err := geom.NewPolygon([]geom.LineString{ring})
	require.NoError(t, err)
	mp, err := geom.NewMultiPolygon([]geom.Polygon{poly})
	require.NoError(t, err)
	return mp
}

func TestBoundaryProjection(t *testing.T) {
	set := testSettings()
	var bd Boundaries
	bd.SetGeometry("square", squareMP(t))

	lines := bd.Polylines(Spherical, set)
	assert.Len(t, lines, 1)
	assert.Len(t, lines[0], 5)
	// every projected point sits just off the sphere surface.
	off := set.GlobeRadius * (1 + set.BoundaryOffset)
	for _, p := range lines[0] {
		assert.InDelta(t, float64(off), float64(p.Length()), 1.0e-4)
	}

	flat := bd.Polylines(Flat, set)
	assert.Len(t, flat, 1)
	// lon 10 on a width-4 map is x = 10/180*2
	assert.InDelta(t, 10.0/180*2, float64(flat[0][1].X), 1.0e-5)
}

func TestBoundaryCache(t *testing.T) {
	set := testSettings()
	var bd Boundaries
	bd.SetGeometry("square", squareMP(t))

	a := bd.Polylines(Spherical, set)
	b := bd.Polylines(Spherical, set)
	// same mode: the cached projection is reused, not recomputed.
	assert.Same(t, &a[0][0], &b[0][0])

	bd.Delete("square")
	assert.Len(t, bd.Polylines(Spherical, set), 0)
}
