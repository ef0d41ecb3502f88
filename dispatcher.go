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

	"go.uber.org/zap"
)

// MatchResult is the outcome of one successful dispatch: the winning
// pattern, its resolved handler, and — for the regex kinds — the capture
// groups. Results are ephemeral and owned by the Match call that produced
// them.
type MatchResult struct {
	// Pattern is the pattern that won the match.
	Pattern *Pattern

	// Handler is the resolved handler for the winning pattern.
	Handler HandlerFunc

	// Captures holds the regex submatches for callback and message
	// matches: Captures[0] is the full match, Captures[1:] the groups.
	// Nil for command matches.
	Captures []string
}

// Capture returns submatch i, or "" when the index is out of range. Group 0
// is the full match.
func (m *MatchResult) Capture(i int) string {
	if i < 0 || i >= len(m.Captures) {
		return ""
	}
	return m.Captures[i]
}

// Dispatcher matches inbound updates against a flattened, compiled pattern
// list. The list is immutable after construction; concurrent Match calls are
// pure reads apart from each pattern's once-initialized handler cache, so a
// single Dispatcher serves any number of worker goroutines.
type Dispatcher struct {
	patterns []*Pattern
	resolver Resolver
	byName   map[string]*Pattern
	obs      *observer
	logger   *zap.Logger
}

// New builds a Dispatcher from a route table. The table is flattened through
// the configured resolver and every pattern is compiled eagerly, so an
// invalid regex fails construction instead of the first match attempt.
// Handlers stay unresolved until a pattern first wins a match.
//
//	d, err := botroute.New(botroute.Patterns("",
//	    botroute.Command("start", "app.handlers:start"),
//	    botroute.Callback(`^page_(\d+)$`, "app.handlers:page"),
//	    botroute.Include("shop.routes").WithNamespace("shop"),
//	), botroute.WithResolver(res))
func New(entries Table, opts ...Option) (*Dispatcher, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	flat, err := Flatten(entries, cfg.resolver)
	if err != nil {
		return nil, err
	}
	for _, p := range flat {
		if err := p.Compile(); err != nil {
			return nil, err
		}
	}

	byName := make(map[string]*Pattern)
	for _, p := range flat {
		fq := p.FQName()
		if fq == "" {
			continue
		}
		// First declaration wins, mirroring first-match-wins.
		if _, taken := byName[fq]; !taken {
			byName[fq] = p
		}
	}

	d := &Dispatcher{
		patterns: flat,
		resolver: cfg.resolver,
		byName:   byName,
		logger:   cfg.logger,
	}
	if cfg.observability {
		obs, err := newObserver(cfg.meterProvider, cfg.tracerProvider)
		if err != nil {
			return nil, err
		}
		d.obs = obs
	}

	d.logger.Debug("dispatcher ready", zap.Int("patterns", len(flat)))
	return d, nil
}

// Match selects at most one handler for the update. Tier priority is fixed:
// a present command token is matched against command patterns, otherwise
// present callback data against callback patterns, otherwise present message
// text against message patterns. Within a tier the first eligible pattern in
// declaration order wins, even if a later one would also match.
//
// A (nil, nil) return means no pattern qualified: success with no result,
// never an error. A non-nil error is a handler-resolution failure for the
// single pattern that won.
func (d *Dispatcher) Match(ctx context.Context, u Update) (*MatchResult, error) {
	if d.obs == nil {
		return d.match(ctx, u)
	}
	ctx, span, start := d.obs.begin(ctx)
	m, err := d.match(ctx, u)
	d.obs.finish(ctx, span, start, m, err)
	return m, err
}

func (d *Dispatcher) match(ctx context.Context, u Update) (*MatchResult, error) {
	if token, ok := u.CommandToken(); ok {
		for _, p := range d.patterns {
			if p.kind == KindCommand && p.source == token {
				return d.won(p, nil)
			}
		}
	} else if data, ok := u.CallbackData(); ok {
		for _, p := range d.patterns {
			if p.kind != KindCallback {
				continue
			}
			if sub := p.compiled.FindStringSubmatch(data); sub != nil {
				return d.won(p, sub)
			}
		}
	} else if text, ok := u.MessageText(); ok {
		for _, p := range d.patterns {
			if p.kind != KindMessage {
				continue
			}
			if sub := p.compiled.FindStringSubmatch(text); sub != nil {
				return d.won(p, sub)
			}
		}
	}
	return nil, nil
}

// won resolves the winning pattern's handler — the only handler resolution a
// dispatch ever performs — and assembles the result.
func (d *Dispatcher) won(p *Pattern, captures []string) (*MatchResult, error) {
	handler, err := p.resolveHandler(d.resolver)
	if err != nil {
		d.logger.Error("handler resolution failed",
			zap.String("kind", p.kind.String()),
			zap.String("pattern", p.source),
			zap.String("handler", p.handlerRef),
			zap.Error(err))
		return nil, err
	}
	d.logger.Debug("update matched",
		zap.String("kind", p.kind.String()),
		zap.String("pattern", p.source),
		zap.String("route", p.FQName()))
	return &MatchResult{Pattern: p, Handler: handler, Captures: captures}, nil
}

// Route returns the pattern registered under the fully qualified name, for
// reverse lookup. When duplicate names exist the first declaration wins.
func (d *Dispatcher) Route(fqName string) (*Pattern, bool) {
	p, ok := d.byName[fqName]
	return p, ok
}

// Routes returns the flattened pattern list in match-priority order. The
// returned slice is a copy; the dispatcher's own list never changes.
func (d *Dispatcher) Routes() []*Pattern {
	out := make([]*Pattern, len(d.patterns))
	copy(out, d.patterns)
	return out
}
