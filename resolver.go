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

package botroute

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// DefaultTableAttr is the attribute assumed for include targets that name
// only a module, mirroring the conventional exported route table name.
const DefaultTableAttr = "routes"

// Resolver resolves a "module:attr" locator to the value registered under
// it: a HandlerFunc for handler locators, a Table for include targets.
//
// The core validates locator shape and result type; the resolver only maps
// locators to values. Implementations must be safe for concurrent use, and
// errors they return pass through the routing core unmodified (errors.Is
// keeps working across the core's wrapping).
type Resolver interface {
	Resolve(locator string) (any, error)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(locator string) (any, error)

// Resolve calls f.
func (f ResolverFunc) Resolve(locator string) (any, error) { return f(locator) }

// MapResolver is an in-memory Resolver backed by a plain map. Applications
// register their handlers and route tables under full locators at startup;
// tests use it to exercise the engine without any module system.
type MapResolver struct {
	mu      sync.RWMutex
	entries map[string]any
}

// NewMapResolver returns an empty MapResolver.
func NewMapResolver() *MapResolver {
	return &MapResolver{entries: make(map[string]any)}
}

// RegisterHandler registers h under the given locator, replacing any
// previous registration.
func (r *MapResolver) RegisterHandler(locator string, h HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[locator] = h
}

// RegisterTable registers t under the given locator, replacing any previous
// registration. A locator without an attribute part is canonicalized with
// DefaultTableAttr so it lines up with include expansion.
func (r *MapResolver) RegisterTable(locator string, t Table) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[canonicalTableLocator(locator)] = t
}

// Register registers an arbitrary value under the given locator. Useful for
// application configs and other bootstrap objects resolved by locator.
func (r *MapResolver) Register(locator string, v any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[locator] = v
}

// Resolve returns the value registered under locator.
func (r *MapResolver) Resolve(locator string) (any, error) {
	r.mu.RLock()
	v, ok := r.entries[locator]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("locator %q is not registered", locator)
	}
	return v, nil
}

// splitLocator splits a locator into its module and attribute parts.
func splitLocator(locator string) (module, attr string, ok bool) {
	module, attr, found := strings.Cut(locator, ":")
	if !found || module == "" || attr == "" {
		return "", "", false
	}
	return module, attr, true
}

// canonicalTableLocator appends the default table attribute to locators that
// name only a module.
func canonicalTableLocator(locator string) string {
	if strings.Contains(locator, ":") {
		return locator
	}
	return locator + ":" + DefaultTableAttr
}

// loadHandler resolves a handler locator through res and verifies that the
// result is invocable. It is a pure function: caching belongs to the owning
// Pattern, never to the loader, so distinct patterns sharing a locator each
// resolve independently.
func loadHandler(res Resolver, locator string) (HandlerFunc, error) {
	if _, _, ok := splitLocator(locator); !ok {
		return nil, fmt.Errorf("%w: %w %q", ErrHandlerLoad, ErrBadLocator, locator)
	}
	v, err := res.Resolve(locator)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrHandlerLoad, locator, err)
	}
	switch h := v.(type) {
	case HandlerFunc:
		return h, nil
	case func(context.Context, Update, *MatchResult) error:
		return h, nil
	default:
		return nil, fmt.Errorf("%w: %w: %q resolved to %T", ErrHandlerLoad, ErrNotInvocable, locator, v)
	}
}
