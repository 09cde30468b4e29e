// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package globe

import (
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Settings are the tunable constants of the rendering engine.  Hosts can
// adjust the defaults directly or load saved values from a TOML file.
type Settings struct {

	// GlobeRadius is the radius of the globe mesh in scene units.
	GlobeRadius float32 `default:"1"`

	// MapWidth, MapHeight are the flat-map plane dimensions in scene units.
	MapWidth  float32 `default:"4"`
	MapHeight float32 `default:"2"`

	// MarkerRadius is the bounding sphere radius of the base marker mesh
	// at full scale, used for pick testing.
	MarkerRadius float32 `default:"0.02"`

	// SelectedScale is the extra scale factor applied to selected markers.
	SelectedScale float32 `default:"1.4"`

	// LODDists are the ordered camera distance thresholds (scene units)
	// at which marker scale steps down.  Must be ascending and the same
	// length as LODScales.
	LODDists []float32

	// LODScales are the marker scale factors for each LOD band: index i
	// applies below LODDists[i]; past the last threshold the final scale
	// applies.
	LODScales []float32

	// ArcSegments is the number of Bezier segments per connector arc.
	ArcSegments int `default:"16"`

	// BoundaryOffset is the fraction of the globe radius that boundary
	// polylines are pushed off the surface.
	BoundaryOffset float32 `default:"0.001"`

	// AnchorFrames is the anchor projector cadence: it runs once every
	// this many frames, since it reads anchor layout geometry, which is
	// comparatively expensive.
	AnchorFrames int `default:"3"`

	// SettleDelay is how long the camera must be stationary before anchor
	// connector lines are recomputed after camera motion, preventing
	// flicker from micro-movements.
	SettleDelay time.Duration `default:"100ms"`

	// PixelThreshold is the minimum movement in pixels of any connector
	// endpoint before consumers are re-notified.
	PixelThreshold float32 `default:"2"`

	// HorizonDot is the minimum dot product between a marker's outward
	// normal and the direction to the camera for the marker to count as
	// front-facing in spherical mode.  Slightly positive to avoid edge
	// flicker at the horizon.
	HorizonDot float32 `default:"0.05"`
}

func (se *Settings) Defaults() {
	se.GlobeRadius = 1
	se.MapWidth = 4
	se.MapHeight = 2
	se.MarkerRadius = 0.02
	se.SelectedScale = 1.4
	se.LODDists = []float32{2, 5, 12}
	se.LODScales = []float32{1, 0.65, 0.4}
	se.ArcSegments = 16
	se.BoundaryOffset = 0.001
	se.AnchorFrames = 3
	se.SettleDelay = 100 * time.Millisecond
	se.PixelThreshold = 2
	se.HorizonDot = 0.05
}

// LODScale returns the marker scale factor for the given camera distance,
// from the ordered LOD thresholds.
func (se *Settings) LODScale(dist float32) float32 {
	if len(se.LODDists) == 0 || len(se.LODScales) == 0 {
		return 1
	}
	for i, d := range se.LODDists {
		if dist < d && i < len(se.LODScales) {
			return se.LODScales[i]
		}
	}
	return se.LODScales[len(se.LODScales)-1]
}

// Open loads settings from the given TOML file.
func (se *Settings) Open(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return toml.Unmarshal(b, se)
}

// Save saves settings to the given TOML file.
func (se *Settings) Save(filename string) error {
	b, err := toml.Marshal(se)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}
