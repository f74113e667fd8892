// Copyright 2025 go-tricolor Authors
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

// Command tricolor sorts red/green/blue token sequences and checks the
// partitioners against fixed vectors.
//
// Usage:
//
//	tricolor sort blue red green              # counting partitioner
//	tricolor sort -a pointers blue,red,green  # Dutch National Flag
//	tricolor sort --strict red yellow         # exit 1: foreign token
//	tricolor verify -a all                    # run the built-in vectors
//	tricolor verify --vectors my.yaml
//	tricolor sample
//
// Settings come from --config (YAML) and TRICOLOR_* environment variables.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-tricolor/internal/config"
	"github.com/ajroetker/go-tricolor/internal/logging"
)

// app is the state shared by all subcommands.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "tricolor",
		Short: "Three-way partitioning of red/green/blue sequences",
		Long: `tricolor sorts sequences of red, green and blue tokens so that all reds
come first, then greens, then blues.

Two algorithms are available:
  counting   tally each color, then overwrite the sequence region by region
  pointers   single pass with low/scan/high indices (Dutch National Flag)

Sequences holding other tokens, fewer than two tokens, or a single repeated
token are returned unchanged.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newSortCmd(a),
		newVerifyCmd(a),
		newVectorsCmd(a),
		newSampleCmd(a),
	)
	return root
}

// init loads configuration and builds the logger.
func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(cfg.Logging, a.verbose)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("Configuration loaded",
		zap.String("path", a.configPath),
		zap.String("algorithm", cfg.Algorithm),
		zap.Int("workers", cfg.Workers))
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
