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
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".treejournal.yaml"

type JournalConfig struct {
	ContentLimit    int    `yaml:"content_limit"`
	TimestampFormat string `yaml:"timestamp_format"`
}

type RenderConfig struct {
	IndentWidth     int `yaml:"indent_width"`
	GeneralMaxDepth int `yaml:"general_max_depth"`
	BinaryMaxDepth  int `yaml:"binary_max_depth"`
}

type UIConfig struct {
	ToastMillis int    `yaml:"toast_millis"`
	DebugLog    string `yaml:"debug_log"`
}

type Config struct {
	Journal JournalConfig `yaml:"journal"`
	Render  RenderConfig  `yaml:"render"`
	UI      UIConfig      `yaml:"ui"`
}

var defaultConfig = Config{
	Journal: JournalConfig{
		ContentLimit:    600,
		TimestampFormat: "DD/MM/YYYY hh:mm",
	},
	Render: RenderConfig{
		IndentWidth:     2,
		GeneralMaxDepth: 8,
		BinaryMaxDepth:  10,
	},
	UI: UIConfig{
		ToastMillis: 2300,
	},
}

// ToastDuration is how long a status message stays on screen.
func (c *Config) ToastDuration() time.Duration {
	return time.Duration(c.UI.ToastMillis) * time.Millisecond
}

// withDefaults fills zero values left out of a partial config file.
func (c Config) withDefaults() Config {
	if c.Journal.ContentLimit <= 0 {
		c.Journal.ContentLimit = defaultConfig.Journal.ContentLimit
	}
	if c.Journal.TimestampFormat == "" {
		c.Journal.TimestampFormat = defaultConfig.Journal.TimestampFormat
	}
	if c.Render.IndentWidth <= 0 {
		c.Render.IndentWidth = defaultConfig.Render.IndentWidth
	}
	if c.Render.GeneralMaxDepth <= 0 {
		c.Render.GeneralMaxDepth = defaultConfig.Render.GeneralMaxDepth
	}
	if c.Render.BinaryMaxDepth <= 0 {
		c.Render.BinaryMaxDepth = defaultConfig.Render.BinaryMaxDepth
	}
	if c.UI.ToastMillis <= 0 {
		c.UI.ToastMillis = defaultConfig.UI.ToastMillis
	}
	return c
}

func DefaultConfig() *Config {
	c := defaultConfig
	return &c
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.treejournal.yaml. Any problem reading it falls back
// to the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return DefaultConfig(), nil
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), nil
	}

	config = config.withDefaults()
	return &config, nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
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

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Printf("🔧 Tree Journal Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("📓 %sJournal:%s\n", Green, Reset)
	fmt.Printf("  • %scontent_limit%s: %d\n", Green, Reset, config.Journal.ContentLimit)
	fmt.Printf("  • %stimestamp_format%s: %s (e.g. %s)\n\n", Green, Reset,
		config.Journal.TimestampFormat, Format(config.Journal.TimestampFormat, time.Now()))

	fmt.Printf("🌳 %sRender:%s\n", Green, Reset)
	fmt.Printf("  • %sindent_width%s: %d\n", Green, Reset, config.Render.IndentWidth)
	fmt.Printf("  • %sgeneral_max_depth%s: %d\n", Green, Reset, config.Render.GeneralMaxDepth)
	fmt.Printf("  • %sbinary_max_depth%s: %d\n\n", Green, Reset, config.Render.BinaryMaxDepth)

	fmt.Printf("🖥  %sUI:%s\n", Green, Reset)
	fmt.Printf("  • %stoast_millis%s: %d\n", Green, Reset, config.UI.ToastMillis)
	if config.UI.DebugLog != "" {
		fmt.Printf("  • %sdebug_log%s: %s\n", Green, Reset, config.UI.DebugLog)
	} else {
		fmt.Printf("  • %sdebug_log%s: (off)\n", Green, Reset)
	}
}
