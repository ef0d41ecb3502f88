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

package app

import (
	"fmt"
	"sync"
)

// Registry holds the installed applications in registration order.
// Safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	order  []string
	byName map[string]*Config
}

// NewRegistry creates an empty application registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Config)}
}

// Register adds cfg to the registry. A config with no name returns
// ErrConfiguration; a name seen before returns ErrAppRegistered.
func (r *Registry) Register(cfg *Config) error {
	if cfg == nil || cfg.Name == "" {
		return fmt.Errorf("%w: application config must have a name", ErrConfiguration)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[cfg.Name]; ok {
		return fmt.Errorf("%w: %q", ErrAppRegistered, cfg.Name)
	}
	r.byName[cfg.Name] = cfg
	r.order = append(r.order, cfg.Name)
	return nil
}

// Get returns the application registered under name, or ErrAppNotFound.
func (r *Registry) Get(name string) (*Config, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrAppNotFound, name)
	}
	return cfg, nil
}

// All returns the registered applications in registration order.
func (r *Registry) All() []*Config {
	r.mu.RLock()
	defer r.mu.RUnlock()

	apps := make([]*Config, 0, len(r.order))
	for _, name := range r.order {
		apps = append(apps, r.byName[name])
	}
	return apps
}
