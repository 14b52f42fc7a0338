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
	"context"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/teradata-labs/promptsync/internal/log"
	"github.com/teradata-labs/promptsync/internal/version"
)

var (
	cfgFile string
	config  *Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "promptsync <export.json>",
	Short: "Synchronize extracted prompt files with an upstream export",
	Long: heredoc.Doc(`
		promptsync reads a JSON export of extracted prompt strings, rebuilds
		each prompt body from its piece/variable encoding, and keeps a
		directory of markdown artifacts plus an index README in step with it.

		Only new and changed prompts are re-measured against the token
		counting API; unchanged prompts keep their previously published
		counts. Prompts that disappeared from the export are deleted.
	`),
	Example: heredoc.Doc(`
		# One-shot sync into the current directory
		promptsync export.json

		# Sync into a checkout, re-running whenever the export changes
		promptsync --dir ~/src/cc-prompts --watch export.json

		# No network, no credential: estimate counts locally
		promptsync --offline export.json
	`),
	Version:       version.Get(),
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return log.Init(config.Logging.Level, config.Logging.Format)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), config, args[0])
	},
}

// Execute runs the root command.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		log.Sync()
		os.Exit(1)
	}
	log.Sync()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./promptsync.yaml)")

	// Output flags
	rootCmd.PersistentFlags().String("dir", ".", "output root containing README.md and system-prompts/")
	rootCmd.PersistentFlags().Bool("verbose", false, "print per-file diffs for changed prompts")
	rootCmd.PersistentFlags().Bool("watch", false, "stay resident and re-sync when the export changes")

	// Token counting flags
	rootCmd.PersistentFlags().String("model", "", "Anthropic model used for token counting")
	rootCmd.PersistentFlags().Bool("offline", false, "estimate token counts locally instead of calling the API")
	rootCmd.PersistentFlags().Int("batch-size", 5, "measurements issued concurrently per batch")
	rootCmd.PersistentFlags().Duration("batch-delay", 0, "delay between measurement batches (default 100ms)")

	// Registry flags
	rootCmd.PersistentFlags().String("package", "@anthropic-ai/claude-code", "npm package the prompts were extracted from")

	// Logging flags
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")

	// Bind flags to viper
	_ = viper.BindPFlag("sync.dir", rootCmd.PersistentFlags().Lookup("dir"))
	_ = viper.BindPFlag("sync.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("sync.watch", rootCmd.PersistentFlags().Lookup("watch"))
	_ = viper.BindPFlag("sync.batch_size", rootCmd.PersistentFlags().Lookup("batch-size"))
	_ = viper.BindPFlag("sync.batch_delay", rootCmd.PersistentFlags().Lookup("batch-delay"))

	_ = viper.BindPFlag("llm.anthropic_model", rootCmd.PersistentFlags().Lookup("model"))
	_ = viper.BindPFlag("llm.offline", rootCmd.PersistentFlags().Lookup("offline"))

	_ = viper.BindPFlag("registry.package", rootCmd.PersistentFlags().Lookup("package"))

	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
}
