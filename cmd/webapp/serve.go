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
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dependencyinjector/webapp/config"
	"github.com/dependencyinjector/webapp/site"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var (
		addr     string
		noBanner bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Registers the global filters, routes and bundles, then serves HTTP until
interrupted. SIGINT and SIGTERM trigger a graceful shutdown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrides := map[string]string{}
			if addr != "" {
				overrides["server.addr"] = addr
			}
			cfg, err := root.loadSettings(cmd, overrides)
			if err != nil {
				return err
			}

			return serve(cmd, *cfg, !noBanner)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	cmd.Flags().BoolVar(&noBanner, "no-banner", false, "skip the startup banner")

	return cmd
}

func serve(cmd *cobra.Command, cfg config.Settings, banner bool) error {
	logger, err := site.NewLogger(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	logger.SetDefault()

	s, err := site.New(cfg, site.WithLogger(logger))
	if err != nil {
		return err
	}
	if banner {
		s.PrintBanner(cmd.OutOrStdout(), cfg.Server.Addr)
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return s.Run(ctx)
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
