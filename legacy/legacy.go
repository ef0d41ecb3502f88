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

// Package legacy preserves the decorator-era route registry.
//
// Deprecated: new route tables should use the declarative surface in the
// botroute package. This package exists so projects registered against the
// old surface keep working while they migrate; its data shape is a strict
// subset of the declarative model and Registry.Table bridges the two.
package legacy

import (
	"fmt"
	"sort"
	"sync"

	"rivaas.dev/botroute"
)

// Route stores one legacy route registration.
type Route struct {
	Kind    botroute.Kind
	Pattern string
	Handler botroute.HandlerFunc
	Name    string
}

// Registry is the decorator-era in-memory router. Command registrations are
// keyed by their literal, so the last registration for a given literal wins;
// callback and message registrations are appended, so all are retained in
// registration order. That asymmetry is historical behavior that migrating
// projects depend on, and it is kept exactly.
//
// There is no package-level instance: the bootstrap layer constructs one
// default Registry and passes it by reference to whoever needs it.
type Registry struct {
	mu sync.Mutex

	commands  map[string]Route
	callbacks []Route
	messages  []Route
}

// NewRegistry returns an empty legacy registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Route)}
}

// Command registers a command handler under its literal token. A later
// registration for the same token replaces the earlier one.
//
// Deprecated: declare a botroute.Command pattern instead.
func (r *Registry) Command(pattern string, handler botroute.HandlerFunc, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands[pattern] = Route{Kind: botroute.KindCommand, Pattern: pattern, Handler: handler, Name: name}
}

// Callback appends a callback-query handler registration.
//
// Deprecated: declare a botroute.Callback pattern instead.
func (r *Registry) Callback(pattern string, handler botroute.HandlerFunc, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.callbacks = append(r.callbacks, Route{Kind: botroute.KindCallback, Pattern: pattern, Handler: handler, Name: name})
}

// Message appends a message-text handler registration.
//
// Deprecated: declare a botroute.Message pattern instead.
func (r *Registry) Message(pattern string, handler botroute.HandlerFunc, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, Route{Kind: botroute.KindMessage, Pattern: pattern, Handler: handler, Name: name})
}

// Commands returns the command registrations keyed by literal.
func (r *Registry) Commands() map[string]Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]Route, len(r.commands))
	for k, v := range r.commands {
		out[k] = v
	}
	return out
}

// Callbacks returns the callback registrations in registration order.
func (r *Registry) Callbacks() []Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Route, len(r.callbacks))
	copy(out, r.callbacks)
	return out
}

// Messages returns the message registrations in registration order.
func (r *Registry) Messages() []Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Route, len(r.messages))
	copy(out, r.messages)
	return out
}

// Merge copies every registration from other into r, with other's command
// literals overriding r's on collision.
func (r *Registry) Merge(other *Registry) {
	if other == nil {
		return
	}
	other.mu.Lock()
	commands := make(map[string]Route, len(other.commands))
	for k, v := range other.commands {
		commands[k] = v
	}
	callbacks := make([]Route, len(other.callbacks))
	copy(callbacks, other.callbacks)
	messages := make([]Route, len(other.messages))
	copy(messages, other.messages)
	other.mu.Unlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	for k, v := range commands {
		r.commands[k] = v
	}
	r.callbacks = append(r.callbacks, callbacks...)
	r.messages = append(r.messages, messages...)
}

// Table converts the registry into a declarative route table so migrating
// projects can feed it straight into botroute.New. Commands come first,
// sorted by literal for a deterministic order (the map kept no registration
// order to preserve), then callbacks and messages in registration order.
//
// Handlers are registered on the returned resolver under synthetic
// "legacy:" locators; pass it (or merge it into your own resolver) when
// constructing the dispatcher.
func (r *Registry) Table() (botroute.Table, *botroute.MapResolver) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := botroute.NewMapResolver()
	table := make(botroute.Table, 0, len(r.commands)+len(r.callbacks)+len(r.messages))

	literals := make([]string, 0, len(r.commands))
	for literal := range r.commands {
		literals = append(literals, literal)
	}
	sort.Strings(literals)

	for _, literal := range literals {
		route := r.commands[literal]
		ref := "legacy:command/" + literal
		res.RegisterHandler(ref, route.Handler)
		table = append(table, botroute.Command(literal, ref).Named(route.Name))
	}
	// Index-based locators: duplicate regex sources are legal here and must
	// keep distinct handlers.
	for i, route := range r.callbacks {
		ref := fmt.Sprintf("legacy:callback/%d", i)
		res.RegisterHandler(ref, route.Handler)
		table = append(table, botroute.Callback(route.Pattern, ref).Named(route.Name))
	}
	for i, route := range r.messages {
		ref := fmt.Sprintf("legacy:message/%d", i)
		res.RegisterHandler(ref, route.Handler)
		table = append(table, botroute.Message(route.Pattern, ref).Named(route.Name))
	}

	return table, res
}
