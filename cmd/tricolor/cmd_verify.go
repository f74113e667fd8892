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

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-tricolor/internal/harness"
	"github.com/ajroetker/go-tricolor/tricolor/contrib/partition"
)

var errVectorsFailed = errors.New("vectors failed")

func newVerifyCmd(a *app) *cobra.Command {
	var (
		algorithm   string
		vectorsPath string
		workers     int
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Run the partitioners against fixed test vectors",
		Long: `Calls the selected partitioner once per vector, compares the result with
the expected sequence and prints the mismatches and a pass/fail tally.

Example:
  tricolor verify --algorithm all
  tricolor verify --vectors testdata/vectors.yaml --workers 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("vectors") {
				vectorsPath = a.cfg.VectorsPath
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Workers
			}

			algs, err := selectAlgorithms(algorithm)
			if err != nil {
				return err
			}
			vectors, err := loadVectors(vectorsPath)
			if err != nil {
				return err
			}

			runner := &harness.Runner{Logger: a.logger, Workers: workers}
			failed := 0
			for _, alg := range algs {
				rep, err := runner.Run(cmd.Context(), alg.String(), alg.Func(), vectors)
				if err != nil {
					return err
				}
				if _, err := rep.WriteTo(cmd.OutOrStdout()); err != nil {
					return err
				}
				failed += rep.Failed
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d mismatches", errVectorsFailed, failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "all", "counting, pointers or all")
	cmd.Flags().StringVar(&vectorsPath, "vectors", "", "YAML vector file (default: built-in vectors)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel vectors (0 = GOMAXPROCS)")
	return cmd
}

func newVectorsCmd(a *app) *cobra.Command {
	var vectorsPath string

	cmd := &cobra.Command{
		Use:   "vectors",
		Short: "List the test vectors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("vectors") {
				vectorsPath = a.cfg.VectorsPath
			}
			vectors, err := loadVectors(vectorsPath)
			if err != nil {
				return err
			}
			a.logger.Debug("Listing vectors", zap.Int("count", len(vectors)))
			for i, v := range vectors {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d) %-32s %v\n", i+1, v.Name, v.Input)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&vectorsPath, "vectors", "", "YAML vector file (default: built-in vectors)")
	return cmd
}

func selectAlgorithms(name string) ([]partition.Algorithm, error) {
	if name == "" || name == "all" {
		return partition.Algorithms(), nil
	}
	alg, err := partition.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return []partition.Algorithm{alg}, nil
}

func loadVectors(path string) ([]harness.Vector, error) {
	if path == "" {
		return harness.Default(), nil
	}
	return harness.LoadFile(path)
}
