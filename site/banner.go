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
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/common-nighthawk/go-figure"
	"golang.org/x/term"

	"github.com/dependencyinjector/webapp/buildinfo"
)

// colorWriter downsamples ANSI colors to what w supports and strips them
// entirely in production.
func (s *Site) colorWriter(w io.Writer) *colorprofile.Writer {
	cpw := colorprofile.NewWriter(w, os.Environ())
	if s.cfg.IsProduction() {
		cpw.Profile = colorprofile.NoTTY
	}

	return cpw
}

// PrintBanner writes the startup banner for a server listening on addr.
func (s *Site) PrintBanner(w io.Writer, addr string) {
	cw := s.colorWriter(w)

	gradient := []string{"10", "11"}
	if !s.cfg.IsProduction() {
		gradient = []string{"12", "14", "10", "11"}
	}

	var art strings.Builder
	for _, line := range figure.NewFigure(s.cfg.ServiceName, "", false).Slicify() {
		if strings.TrimSpace(line) == "" {
			art.WriteString("\n")
			continue
		}
		for i, ch := range line {
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(gradient[i%len(gradient)])).Bold(true)
			art.WriteString(style.Render(string(ch)))
		}
		art.WriteString("\n")
	}

	category := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(16).PaddingLeft(2)
	value := lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)

	if strings.HasPrefix(addr, ":") {
		addr = "0.0.0.0" + addr
	}
	build := "release"
	if buildinfo.IsDebug {
		build = "debug"
	}
	optimizations := "off"
	if s.bundles.EnableOptimizations() {
		optimizations = "on"
	}

	var out strings.Builder
	line := func(k, v, color string) {
		out.WriteString(label.Render(k) + "  " + value.Foreground(lipgloss.Color(color)).Render(v) + "\n")
	}
	out.WriteString(category.Render("Service") + "\n")
	line("Version:", buildinfo.Version(), "14")
	line("Build:", build, "13")
	line("Environment:", s.cfg.Environment, "11")
	line("Address:", "http://"+addr, "10")
	out.WriteString("\n" + category.Render("Startup") + "\n")
	line("Filters:", strings.Join(s.filters.Names(), ", "), "12")
	line("Routes:", fmt.Sprint(s.routes.Len()), "12")
	line("Bundles:", fmt.Sprintf("%d (optimizations %s)", len(s.bundles.Bundles()), optimizations), "12")

	_, _ = fmt.Fprintln(cw)             //nolint:errcheck // display output
	_, _ = fmt.Fprint(cw, art.String()) //nolint:errcheck // display output
	_, _ = fmt.Fprintln(cw)             //nolint:errcheck // display output
	_, _ = fmt.Fprint(cw, out.String()) //nolint:errcheck // display output
	_, _ = fmt.Fprintln(cw)             //nolint:errcheck // display output
}

// PrintRoutes writes the route table.
func (s *Site) PrintRoutes(w io.Writer) {
	rows := make([][]string, 0, s.routes.Len())
	for _, r := range s.routes.Routes() {
		name := r.Name
		if r.Ignore {
			name = "(ignore)"
		}
		rows = append(rows, []string{name, r.Pattern, formatDefaults(r.Defaults), strings.Join(r.Optional, ", ")})
	}

	s.renderTable(w, []string{"Name", "Pattern", "Defaults", "Optional"}, rows)
}

// PrintBundles writes each bundle with the files it currently resolves to.
func (s *Site) PrintBundles(w io.Writer) error {
	var rows [][]string
	for _, b := range s.bundles.Bundles() {
		files, err := s.bundles.Resolve(b.Path())
		if err != nil {
			return err
		}
		if len(files) == 0 {
			files = []string{"-"}
		}
		rows = append(rows, []string{b.Path(), b.Kind().String(), strings.Join(files, "\n")})
	}

	s.renderTable(w, []string{"Bundle", "Kind", "Files"}, rows)

	return nil
}

func (s *Site) renderTable(w io.Writer, headers []string, rows [][]string) {
	cw := s.colorWriter(w)
	useColors := !s.cfg.IsProduction()

	width := 100
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			width = min(width, tw)
		}
	}

	border := lipgloss.NewStyle()
	if useColors {
		border = border.Foreground(lipgloss.Color("240"))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(border).
		StyleFunc(func(row, _ int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow && useColors {
				style = style.Bold(true).Foreground(lipgloss.Color("230"))
			}

			return style
		}).
		Headers(headers...).
		Rows(rows...).
		Width(width)

	_, _ = fmt.Fprintln(cw, t.Render()) //nolint:errcheck // display output
}

func formatDefaults(defaults map[string]string) string {
	if len(defaults) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(defaults))
	for _, k := range slices.Sorted(maps.Keys(defaults)) {
		parts = append(parts, k+"="+defaults[k])
	}

	return strings.Join(parts, ", ")
}
