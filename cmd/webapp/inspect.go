// Copyright 2025 The Rivaas Authors
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
	"github.com/spf13/cobra"
)

func newRoutesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := root.inspectSite(cmd)
			if err != nil {
				return err
			}
			s.PrintRoutes(cmd.OutOrStdout())

			return nil
		},
	}
}

func newBundlesCmd(root *rootOptions) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "bundles",
		Short: "Print each bundle and the files it resolves to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := root.inspectSite(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("debug") {
				s.Bundles().SetEnableOptimizations(!debug)
			}

			return s.PrintBundles(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&debug, "debug", false, "resolve as a debug build (unminified files)")

	return cmd
}
