// Copyright 2026 Teradata
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
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
	"time"

	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

const (
	// ServiceName for keyring storage
	ServiceName = "promptsync"
	// DefaultConfigFileName is the name of the config file
	DefaultConfigFileName = "promptsync"

	// promptsDirName holds the per-prompt artifacts under sync.dir.
	promptsDirName = "system-prompts"
	// historicalDirName holds archived versions under sync.dir.
	historicalDirName = "historical-versions"
	// indexFileName is the index document under sync.dir.
	indexFileName = "README.md"
)

// Config holds all configuration for promptsync.
// Priority: CLI flags > config file > env vars > defaults
type Config struct {
	// Sync configuration (output layout and pacing)
	Sync SyncConfig `mapstructure:"sync"`

	// LLM configuration (token counting)
	LLM LLMConfig `mapstructure:"llm"`

	// Registry configuration (release-date lookup)
	Registry RegistryConfig `mapstructure:"registry"`

	// Logging configuration
	Logging LoggingConfig `mapstructure:"logging"`
}

// SyncConfig holds output and pacing configuration.
type SyncConfig struct {
	// Dir is the output root: README.md plus system-prompts/.
	Dir string `mapstructure:"dir"`

	// Verbose prints per-file diffs for changed prompts.
	Verbose bool `mapstructure:"verbose"`

	// Watch re-runs the pipeline whenever the export file changes.
	Watch bool `mapstructure:"watch"`

	// BatchSize is the number of token measurements issued concurrently.
	BatchSize int `mapstructure:"batch_size"`

	// BatchDelay is the pause between measurement batches.
	BatchDelay time.Duration `mapstructure:"batch_delay"`
}

// LLMConfig holds token-counting configuration.
type LLMConfig struct {
	// APIKey is the Anthropic API key (env and keyring also consulted).
	APIKey string `mapstructure:"anthropic_api_key"`

	// Model is the Anthropic model used for counting.
	Model string `mapstructure:"anthropic_model"`

	// Offline estimates counts locally instead of calling the API.
	Offline bool `mapstructure:"offline"`
}

// RegistryConfig holds npm registry configuration.
type RegistryConfig struct {
	// Package is the npm package the prompts were extracted from.
	Package string `mapstructure:"package"`

	// Endpoint overrides the registry URL (tests).
	Endpoint string `mapstructure:"endpoint"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// initConfig reads the config file and environment into the global config.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(DefaultConfigFileName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home + "/.config/promptsync")
		}
	}

	viper.SetEnvPrefix("PROMPTSYNC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; flags and defaults carry the run.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Fprintf(os.Stderr, "Error reading config %s: %v\n", cfgFile, err)
			os.Exit(1)
		}
	}

	config = &Config{}
	if err := viper.Unmarshal(config); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing config: %v\n", err)
		os.Exit(1)
	}
}

// ResolveAPIKey returns the Anthropic API key from, in order: config,
// the ANTHROPIC_API_KEY environment variable, the OS keyring.
func (c *Config) ResolveAPIKey() (string, error) {
	if c.LLM.APIKey != "" {
		return c.LLM.APIKey, nil
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return key, nil
	}
	if key, err := keyring.Get(ServiceName, "anthropic-api-key"); err == nil && key != "" {
		return key, nil
	}
	return "", fmt.Errorf("no Anthropic API key found: set ANTHROPIC_API_KEY, store one with " +
		"`keyring set promptsync anthropic-api-key`, or run with --offline")
}
