// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".keytree.yaml")
	content := `
load:
  dedup_filter: false
  show_progress: true
snapshots:
  ttl_minutes: 30
ui:
  theme: light
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := loadConfigFrom(path)
	require.NoError(t, err)
	assert.False(t, config.Load.DedupFilter)
	assert.True(t, config.Load.ShowProgress)
	assert.Equal(t, 30, config.Snapshots.TTLMinutes)
	assert.Equal(t, "light", config.UI.Theme)
}

func TestLoadConfigMissingFileFallsBack(t *testing.T) {
	config, err := loadConfigFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &defaultConfig, config)
}

func TestLoadConfigInvalidYAMLFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".keytree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("load: [not, a, map"), 0644))

	config, err := loadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, &defaultConfig, config)
}

func TestResolveTerminalMode(t *testing.T) {
	assert.Equal(t, TerminalModeDark, resolveTerminalMode("dark"))
	assert.Equal(t, TerminalModeLight, resolveTerminalMode("LIGHT"))
	// "auto" and unknown values fall through to detection, which always
	// lands on a concrete mode.
	assert.NotEqual(t, TerminalModeUnknown, resolveTerminalMode("auto"))
}
