// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package globe

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingsTOML(t *testing.T) {
	set := testSettings()
	set.LODDists = []float32{1, 3, 7}
	set.ArcSegments = 24

	fn := filepath.Join(t.TempDir(), "globe.toml")
	assert.NoError(t, set.Save(fn))

	var got Settings
	got.Defaults()
	assert.NoError(t, got.Open(fn))
	assert.Equal(t, *set, got)
}

func TestSettingsOpenMissing(t *testing.T) {
	var set Settings
	set.Defaults()
	assert.Error(t, set.Open(filepath.Join(t.TempDir(), "nope.toml")))
}
