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
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"rivaas.dev/botroute"
	"rivaas.dev/botroute/legacy"
	"rivaas.dev/botroute/middleware"
	"rivaas.dev/botroute/settings"
)

// Framework wires settings, installed applications, and the dispatcher
// into one bootable unit.
type Framework struct {
	settings settings.Settings
	apps     *Registry
	resolver botroute.Resolver
	legacy   *legacy.Registry
	logger   *zap.Logger
	mw       []middleware.Middleware
	dispOpts []botroute.Option

	mu          sync.Mutex
	initialized bool
	initErr     error
	dispatcher  *botroute.Dispatcher
}

// FrameworkOption configures NewFramework.
type FrameworkOption func(*Framework)

// WithResolver sets the resolver used for installed-app configs and
// route tables. Defaults to an empty in-memory resolver.
func WithResolver(res botroute.Resolver) FrameworkOption {
	return func(f *Framework) { f.resolver = res }
}

// WithLogger sets the framework logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) FrameworkOption {
	return func(f *Framework) { f.logger = logger }
}

// WithRegistry supplies a pre-populated application registry, for apps
// registered in code rather than through settings.
func WithRegistry(reg *Registry) FrameworkOption {
	return func(f *Framework) { f.apps = reg }
}

// WithLegacyRegistry bridges a decorator-era registry into the
// framework: its routes are appended after the root and app routes, and
// its handlers are consulted when the primary resolver misses.
func WithLegacyRegistry(reg *legacy.Registry) FrameworkOption {
	return func(f *Framework) { f.legacy = reg }
}

// WithMiddleware wraps every dispatched handler, outermost first,
// outside any per-app middleware.
func WithMiddleware(mws ...middleware.Middleware) FrameworkOption {
	return func(f *Framework) { f.mw = append(f.mw, mws...) }
}

// WithDispatcherOptions forwards options to the dispatcher built during
// Initialize, e.g. botroute.WithObservability.
func WithDispatcherOptions(opts ...botroute.Option) FrameworkOption {
	return func(f *Framework) { f.dispOpts = append(f.dispOpts, opts...) }
}

// NewFramework creates a framework from loaded settings. Call
// Initialize before dispatching.
func NewFramework(s settings.Settings, opts ...FrameworkOption) *Framework {
	f := &Framework{settings: s}
	for _, opt := range opts {
		opt(f)
	}
	if f.apps == nil {
		f.apps = NewRegistry()
	}
	if f.resolver == nil {
		f.resolver = botroute.NewMapResolver()
	}
	if f.logger == nil {
		f.logger = zap.NewNop()
	}
	return f
}

// Apps returns the application registry.
func (f *Framework) Apps() *Registry { return f.apps }

// Initialize loads the installed applications, assembles the route
// table, and builds the dispatcher. It is idempotent: repeated calls
// return the first outcome without redoing work.
func (f *Framework) Initialize() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.initialized {
		return f.initErr
	}
	f.initialized = true
	f.initErr = f.initialize()
	return f.initErr
}

func (f *Framework) initialize() error {
	for _, locator := range f.settings.InstalledApps {
		cfg, err := f.loadAppConfig(locator)
		if err != nil {
			return err
		}
		if err := f.apps.Register(cfg); err != nil {
			return err
		}
	}

	var entries botroute.Table
	if f.settings.RootRoutes != "" {
		entries = append(entries, botroute.Include(f.settings.RootRoutes))
	}
	for _, cfg := range f.apps.All() {
		if cfg.Routes == "" {
			continue
		}
		entries = append(entries, botroute.Include(cfg.Routes).WithNamespace(cfg.Name))
		f.logger.Debug("application routes included",
			zap.String("app", cfg.Name),
			zap.String("routes", cfg.Routes),
		)
	}

	resolver := f.resolver
	if f.legacy != nil {
		legacyTable, legacyRes := f.legacy.Table()
		entries = append(entries, legacyTable...)
		primary := resolver
		resolver = botroute.ResolverFunc(func(locator string) (any, error) {
			if v, err := primary.Resolve(locator); err == nil {
				return v, nil
			}
			return legacyRes.Resolve(locator)
		})
		f.logger.Debug("legacy routes bridged", zap.Int("routes", len(legacyTable)))
	}

	opts := append([]botroute.Option{
		botroute.WithResolver(resolver),
		botroute.WithLogger(f.logger),
	}, f.dispOpts...)

	d, err := botroute.New(entries, opts...)
	if err != nil {
		return err
	}
	f.dispatcher = d

	f.logger.Info("framework initialized",
		zap.Int("apps", len(f.apps.All())),
		zap.Int("routes", len(d.Routes())),
	)
	return nil
}

// loadAppConfig resolves one installed-app locator to its *Config. A
// locator naming only a module consults DefaultConfigAttr.
func (f *Framework) loadAppConfig(locator string) (*Config, error) {
	module, attr, found := strings.Cut(locator, ":")
	if !found {
		attr = DefaultConfigAttr
	}
	if module == "" || attr == "" {
		return nil, fmt.Errorf("%w: malformed app locator %q", ErrConfiguration, locator)
	}

	value, err := f.resolver.Resolve(module + ":" + attr)
	if err != nil {
		return nil, fmt.Errorf("%w: loading app %q: %w", ErrConfiguration, locator, err)
	}
	cfg, ok := value.(*Config)
	if !ok {
		return nil, fmt.Errorf("%w: app locator %q resolved to %T, want *app.Config",
			ErrConfiguration, locator, value)
	}
	return cfg, nil
}

// Dispatcher returns the dispatcher built by Initialize, or nil before
// a successful Initialize.
func (f *Framework) Dispatcher() *botroute.Dispatcher {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dispatcher
}

// Dispatch matches u and, on a hit, runs the handler through the
// framework middleware and then the owning app's middleware. An update
// no route wants is not an error.
func (f *Framework) Dispatch(ctx context.Context, u botroute.Update) error {
	d := f.Dispatcher()
	if d == nil {
		return fmt.Errorf("%w: framework not initialized", ErrConfiguration)
	}

	m, err := d.Match(ctx, u)
	if err != nil {
		return err
	}
	if m == nil {
		return nil
	}

	handler := m.Handler
	if cfg, err := f.apps.Get(m.Pattern.Namespace()); err == nil {
		handler = middleware.Chain(handler, cfg.Middleware...)
	}
	handler = middleware.Chain(handler, f.mw...)
	return handler(ctx, u, m)
}
