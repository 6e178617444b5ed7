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

package controllers

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"rivaas.dev/router"

	"github.com/dependencyinjector/webapp/buildinfo"
	"github.com/dependencyinjector/webapp/bundles"
	"github.com/dependencyinjector/webapp/contract"
)

//go:embed views/*.html
var viewFS embed.FS

// ErrUnknownView is returned when rendering a view that does not exist.
var ErrUnknownView = errors.New("unknown view")

const htmlContentType = "text/html; charset=utf-8"

// Page is the data every view receives.
type Page struct {
	Title   string
	Message string
	Version string
	Year    int
}

// Views renders the embedded pages inside the shared layout.
type Views struct {
	pages map[string]*template.Template
	now   func() time.Time
}

// NewViews parses the embedded views. The layout renders bundle tags from b.
func NewViews(b *bundles.Collection) (*Views, error) {
	if err := contract.NotNull(b, "bundles"); err != nil {
		return nil, err
	}

	funcs := template.FuncMap{
		"render": b.Render,
	}

	v := &Views{pages: make(map[string]*template.Template), now: time.Now}
	for _, name := range []string{"index", "about", "contact"} {
		t, err := template.New(name).Funcs(funcs).ParseFS(viewFS, "views/layout.html", "views/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse view %s: %w", name, err)
		}
		v.pages[name] = t
	}

	return v, nil
}

// Render executes view with p and writes the page with the given status.
// Nothing is written when execution fails.
func (v *Views) Render(c *router.Context, status int, view string, p Page) error {
	t, ok := v.pages[view]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownView, view)
	}
	if p.Version == "" {
		p.Version = buildinfo.Version()
	}
	if p.Year == 0 {
		p.Year = v.now().Year()
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", p); err != nil {
		return fmt.Errorf("render view %s: %w", view, err)
	}

	return c.Data(status, htmlContentType, buf.Bytes())
}

// NewHome returns the Home controller: Index, About and Contact.
func NewHome(v *Views) Controller {
	page := func(view string, p Page) Action {
		return func(c *router.Context, _ string) error {
			return v.Render(c, http.StatusOK, view, p)
		}
	}

	return Controller{
		"Index":   page("index", Page{Title: "Home Page"}),
		"About":   page("about", Page{Title: "About", Message: "Your application description page."}),
		"Contact": page("contact", Page{Title: "Contact", Message: "Your contact page."}),
	}
}
