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
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-tricolor/internal/harness"
	"github.com/ajroetker/go-tricolor/tricolor"
	"github.com/ajroetker/go-tricolor/tricolor/contrib/partition"
)

func newSortCmd(a *app) *cobra.Command {
	var (
		algorithm string
		strict    bool
	)

	cmd := &cobra.Command{
		Use:   "sort [tokens...]",
		Short: "Sort a sequence of red/green/blue tokens",
		Long: `Sorts the tokens given as arguments. Tokens may be separated by spaces
or commas.

Example:
  tricolor sort blue red green red
  tricolor sort --algorithm pointers "green,green,red,blue"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.cfg.Algorithm
			if cmd.Flags().Changed("algorithm") {
				name = algorithm
			}
			alg, err := partition.ParseAlgorithm(name)
			if err != nil {
				return err
			}

			seq := tricolor.ParseSequence(strings.Join(args, " "))
			a.logger.Debug("Sorting", zap.Stringer("algorithm", alg), zap.Int("tokens", len(seq)))

			if strict {
				out, err := partition.Strict(alg, seq)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}

			res := partition.Sort(alg, seq)
			if !res.Sorted {
				a.logger.Info("Sequence returned unchanged", zap.Stringer("reason", res.Reason))
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Sequence)
			return nil
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "counting or pointers (default from config)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail instead of returning rejected input unchanged")
	return cmd
}

func newSampleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Sort the sample sequence with every algorithm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := harness.Sample()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "input:    %v\n", in)
			for _, alg := range partition.Algorithms() {
				fmt.Fprintf(out, "%-9s %v\n", alg.String()+":", alg.Func()(in))
			}
			return nil
		},
	}
}
