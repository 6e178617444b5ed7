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
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"

	"rivaas.dev/router"

	"github.com/dependencyinjector/webapp/contract"
	apperrors "github.com/dependencyinjector/webapp/errors"
	"github.com/dependencyinjector/webapp/routes"
)

var (
	// ErrUnknownController is returned when no controller has the routed name.
	ErrUnknownController = errors.New("unknown controller")

	// ErrUnknownAction is returned when the controller has no such action.
	ErrUnknownAction = errors.New("unknown action")

	// ErrMethodNotAllowed is returned when an API controller does not handle the verb.
	ErrMethodNotAllowed = errors.New("method not allowed")

	// ErrDuplicateController is returned when a name is registered twice.
	ErrDuplicateController = errors.New("controller already registered")
)

// Action handles one controller action. id is the "id" route value, "" when absent.
type Action func(c *router.Context, id string) error

// Controller maps action names to actions. Lookups ignore case.
type Controller map[string]Action

func (ctrl Controller) action(name string) (Action, bool) {
	if a, ok := ctrl[name]; ok {
		return a, true
	}
	for k, a := range ctrl {
		if strings.EqualFold(k, name) {
			return a, true
		}
	}

	return nil, false
}

// APIController is a resource controller reached through the API route.
// The verb picks the method: GET lists or gets, POST creates, PUT updates
// and DELETE deletes.
type APIController interface {
	List(c *router.Context) error
	Get(c *router.Context, id string) error
	Create(c *router.Context) error
	Update(c *router.Context, id string) error
	Delete(c *router.Context, id string) error
}

// Registry resolves controllers by name. It is safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	mvc  map[string]Controller
	apis map[string]APIController
}

var _ routes.Dispatcher = (*Registry)(nil)

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		mvc:  make(map[string]Controller),
		apis: make(map[string]APIController),
	}
}

// Register adds an MVC controller.
func (r *Registry) Register(name string, ctrl Controller) error {
	if err := contract.NotEmptyOrWhitespace(name, "name"); err != nil {
		return err
	}
	if err := contract.NotNull(ctrl, "controller"); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(name)
	if _, ok := r.mvc[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateController, name)
	}
	r.mvc[key] = ctrl

	return nil
}

// RegisterAPI adds an API controller.
func (r *Registry) RegisterAPI(name string, api APIController) error {
	if err := contract.NotEmptyOrWhitespace(name, "name"); err != nil {
		return err
	}
	if err := contract.NotNull(api, "controller"); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(name)
	if _, ok := r.apis[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateController, name)
	}
	r.apis[key] = api

	return nil
}

// Names returns the lower-cased names of all controllers, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.mvc)+len(r.apis))
	for k := range r.mvc {
		names = append(names, k)
	}
	for k := range r.apis {
		if _, dup := r.mvc[k]; !dup {
			names = append(names, k)
		}
	}
	slices.Sort(names)

	return names
}

// Dispatch runs the action selected by m. Matches of the API route go to
// API controllers; all other matches go to MVC controllers.
func (r *Registry) Dispatch(c *router.Context, m routes.Match) error {
	if m.Route == routes.APIRouteName {
		return r.dispatchAPI(c, m)
	}

	name := m.Controller()
	r.mu.RLock()
	ctrl, ok := r.mvc[strings.ToLower(name)]
	r.mu.RUnlock()
	if !ok {
		return notFound(ErrUnknownController, name)
	}

	action, ok := ctrl.action(m.Action())
	if !ok {
		return notFound(ErrUnknownAction, name+"/"+m.Action())
	}

	return action(c, m.ID())
}

func (r *Registry) dispatchAPI(c *router.Context, m routes.Match) error {
	name := m.Controller()
	r.mu.RLock()
	api, ok := r.apis[strings.ToLower(name)]
	r.mu.RUnlock()
	if !ok {
		return notFound(ErrUnknownController, name)
	}

	id := m.ID()
	switch c.Request.Method {
	case http.MethodGet, http.MethodHead:
		if id == "" {
			return api.List(c)
		}
		return api.Get(c, id)
	case http.MethodPost:
		if id == "" {
			return api.Create(c)
		}
	case http.MethodPut:
		if id != "" {
			return api.Update(c, id)
		}
	case http.MethodDelete:
		if id != "" {
			return api.Delete(c, id)
		}
	}

	return apperrors.WithStatus(
		fmt.Errorf("%w: %s %s", ErrMethodNotAllowed, c.Request.Method, c.Request.URL.Path),
		http.StatusMethodNotAllowed,
	)
}

func notFound(sentinel error, what string) error {
	return apperrors.WithStatus(fmt.Errorf("%w: %s", sentinel, what), http.StatusNotFound)
}
