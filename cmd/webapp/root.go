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

	"github.com/dependencyinjector/webapp/buildinfo"
	"github.com/dependencyinjector/webapp/config"
	"github.com/dependencyinjector/webapp/logging"
	"github.com/dependencyinjector/webapp/site"
)

const envPrefix = "WEBAPP_"

type rootOptions struct {
	configFile string
	envPrefix  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "webapp",
		Short:         "DependencyInjector web application",
		Long:          "Serves the DependencyInjector MVC site and inspects its startup registrations.",
		Version:       buildinfo.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "config file (.yaml, .yml, .toml or .json)")
	cmd.PersistentFlags().StringVar(&opts.envPrefix, "env-prefix", envPrefix, "prefix of configuration environment variables")

	cmd.AddCommand(
		newServeCmd(opts),
		newRoutesCmd(opts),
		newBundlesCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

// loadSettings layers the config file, environment and flag overrides.
func (o *rootOptions) loadSettings(cmd *cobra.Command, overrides map[string]string) (*config.Settings, error) {
	var opts []config.Option
	if o.configFile != "" {
		opts = append(opts, config.WithFile(o.configFile))
	}
	opts = append(opts, config.WithEnv(o.envPrefix), config.WithValues(overrides))

	return config.Load(cmd.Context(), opts...)
}

// inspectSite assembles the site quietly for the inspection commands.
func (o *rootOptions) inspectSite(cmd *cobra.Command) (*site.Site, error) {
	cfg, err := o.loadSettings(cmd, nil)
	if err != nil {
		return nil, err
	}
	l, err := logging.New(
		logging.WithTextHandler(),
		logging.WithOutput(cmd.ErrOrStderr()),
		logging.WithLevel(logging.LevelError),
	)
	if err != nil {
		return nil, err
	}

	return site.New(*cfg, site.WithLogger(l))
}
