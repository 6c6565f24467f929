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
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type LoadConfigSection struct {
	DedupFilter  bool `yaml:"dedup_filter"`
	ShowProgress bool `yaml:"show_progress"`
}

type SnapshotConfig struct {
	TTLMinutes int `yaml:"ttl_minutes"`
}

type UIConfig struct {
	Theme string `yaml:"theme"` // auto, dark or light
}

type Config struct {
	Load      LoadConfigSection `yaml:"load"`
	Snapshots SnapshotConfig    `yaml:"snapshots"`
	UI        UIConfig          `yaml:"ui"`
}

var defaultConfig = Config{
	Load: LoadConfigSection{
		DedupFilter:  true,
		ShowProgress: true,
	},
	Snapshots: SnapshotConfig{
		TTLMinutes: 0, // 0 keeps snapshots until the process exits
	},
	UI: UIConfig{
		Theme: "auto",
	},
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return &defaultConfig, nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &defaultConfig, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &defaultConfig, nil
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return &defaultConfig, nil
	}

	return &config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".keytree.yaml"), nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %v", err)
	}

	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	fmt.Printf("🔧 Keytree Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("📥 %sKey Loading:%s\n", Green, Reset)
	fmt.Printf("  • %sdedup_filter%s: %t\n", Green, Reset, config.Load.DedupFilter)
	fmt.Printf("    Bloom-filter screen that skips keys already loaded\n")
	fmt.Printf("  • %sshow_progress%s: %t\n", Green, Reset, config.Load.ShowProgress)
	fmt.Printf("    Progress bar during bulk loads\n\n")

	fmt.Printf("📸 %sSnapshots:%s\n", Green, Reset)
	if config.Snapshots.TTLMinutes > 0 {
		fmt.Printf("  • %sttl_minutes%s: %d (named snapshots expire)\n\n", Green, Reset, config.Snapshots.TTLMinutes)
	} else {
		fmt.Printf("  • %sttl_minutes%s: 0 (named snapshots never expire)\n\n", Green, Reset)
	}

	fmt.Printf("🎨 %sUI:%s\n", Green, Reset)
	fmt.Printf("  • %stheme%s: %s\n\n", Green, Reset, config.UI.Theme)

	fmt.Printf("💡 To change a value, edit %s, for example:\n", configPath)
	fmt.Printf("   load:\n     show_progress: false\n")
}
