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

package site

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"rivaas.dev/router"

	"github.com/dependencyinjector/webapp/buildinfo"
	"github.com/dependencyinjector/webapp/bundles"
	"github.com/dependencyinjector/webapp/config"
	"github.com/dependencyinjector/webapp/controllers"
	"github.com/dependencyinjector/webapp/filters"
	"github.com/dependencyinjector/webapp/logging"
	"github.com/dependencyinjector/webapp/routes"
	"github.com/dependencyinjector/webapp/wwwroot"
)

// Asset directories served as static files.
var staticDirs = []string{"Scripts", "Content"}

// Option configures a [Site].
type Option func(*Site)

// WithLogger replaces the logger built from the settings.
func WithLogger(l *logging.Logger) Option {
	return func(s *Site) {
		s.logger = l
	}
}

// WithAssets replaces the asset tree. It takes precedence over Assets.Dir.
func WithAssets(fsys fs.FS) Option {
	return func(s *Site) {
		s.assets = fsys
	}
}

// WithValues seeds the Values API.
func WithValues(seed ...string) Option {
	return func(s *Site) {
		s.seed = seed
	}
}

// Site is the assembled application.
type Site struct {
	cfg    config.Settings
	logger *logging.Logger
	assets fs.FS
	seed   []string

	router      *router.Router
	filters     *filters.Collection
	routes      *routes.Table
	bundles     *bundles.Collection
	controllers *controllers.Registry
}

// New builds the application from cfg.
func New(cfg config.Settings, opts ...Option) (*Site, error) {
	s := &Site{
		cfg:  cfg,
		seed: []string{"value1", "value2"},
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		l, err := NewLogger(cfg, os.Stdout)
		if err != nil {
			return nil, err
		}
		s.logger = l
	}
	if s.assets == nil {
		s.assets = assetFS(cfg.Assets.Dir)
	}

	r, err := router.New(router.WithDiagnostics(router.DiagnosticHandlerFunc(func(e router.DiagnosticEvent) {
		s.logger.Warn(e.Message, "kind", string(e.Kind), "fields", e.Fields)
	})))
	if err != nil {
		return nil, fmt.Errorf("create router: %w", err)
	}
	s.router = r

	steps := []struct {
		name string
		run  func() error
	}{
		{"filters", s.registerFilters},
		{"routes", s.registerRoutes},
		{"bundles", s.registerBundles},
		{"controllers", s.registerControllers},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			s.logger.LogError(err, "startup registration failed", "step", step.name)
			return nil, fmt.Errorf("register %s: %w", step.name, err)
		}
	}

	s.logger.Info("site assembled",
		"version", buildinfo.Version(),
		"debug", buildinfo.IsDebug,
		"filters", s.filters.Names(),
		"routes", s.routes.Len(),
		"bundles", len(s.bundles.Bundles()),
		"optimizations", s.bundles.EnableOptimizations(),
	)

	return s, nil
}

func assetFS(dir string) fs.FS {
	if dir == "" {
		return wwwroot.FS()
	}

	return os.DirFS(dir)
}

func (s *Site) registerFilters() error {
	s.filters = filters.NewCollection()
	if err := filters.RegisterGlobalFilters(s.filters, s.logger); err != nil {
		return err
	}

	return s.filters.Apply(s.router)
}

func (s *Site) registerRoutes() error {
	s.routes = routes.NewTable()
	if err := routes.RegisterAPIRoutes(s.routes); err != nil {
		return err
	}

	return routes.RegisterRoutes(s.routes)
}

func (s *Site) registerBundles() error {
	s.bundles = bundles.NewCollection(s.assets)
	if err := bundles.RegisterBundles(s.bundles); err != nil {
		return err
	}

	h := s.bundles.Handler()
	s.router.GET(bundles.URLPrefix+"*", h)
	s.router.HEAD(bundles.URLPrefix+"*", h)

	for _, dir := range staticDirs {
		sub, err := fs.Sub(s.assets, dir)
		if err != nil {
			return fmt.Errorf("asset directory %s: %w", dir, err)
		}
		s.router.StaticFS("/"+dir, http.FS(sub))
	}

	return nil
}

func (s *Site) registerControllers() error {
	views, err := controllers.NewViews(s.bundles)
	if err != nil {
		return err
	}

	s.controllers = controllers.NewRegistry()
	if err := s.controllers.Register("Home", controllers.NewHome(views)); err != nil {
		return err
	}
	if err := s.controllers.RegisterAPI("Values", controllers.NewValues(s.seed...)); err != nil {
		return err
	}

	return routes.Mount(s.router, s.routes, s.controllers)
}

// Handler returns the HTTP handler of the site.
func (s *Site) Handler() http.Handler {
	return s.router
}

// Settings returns the settings the site was built with.
func (s *Site) Settings() config.Settings {
	return s.cfg
}

// Logger returns the site logger.
func (s *Site) Logger() *logging.Logger {
	return s.logger
}

// Routes returns the route table.
func (s *Site) Routes() *routes.Table {
	return s.routes
}

// Bundles returns the bundle collection.
func (s *Site) Bundles() *bundles.Collection {
	return s.bundles
}

// Filters returns the global filter collection.
func (s *Site) Filters() *filters.Collection {
	return s.filters
}

// NewLogger builds the application logger from the log settings.
func NewLogger(cfg config.Settings, w io.Writer) (*logging.Logger, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	handler := logging.HandlerType(strings.ToLower(cfg.Log.Format))
	if handler == "auto" {
		handler = logging.AutoHandler
	}

	return logging.New(
		logging.WithHandlerType(handler),
		logging.WithOutput(w),
		logging.WithLevel(level),
		logging.WithServiceName(cfg.ServiceName),
		logging.WithServiceVersion(buildinfo.Version()),
		logging.WithEnvironment(cfg.Environment),
		logging.WithSource(buildinfo.IsDebug),
		logging.WithReplaceAttr(shortSource),
	)
}

// shortSource reports the source location as "file.go:line".
func shortSource(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.SourceKey {
		return a
	}
	if src, ok := a.Value.Any().(*slog.Source); ok && src != nil {
		return slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", filepath.Base(src.File), src.Line))
	}

	return a
}
