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

// Package botroute provides declarative routing for chat-bot updates,
// modeled on URL configuration from web frameworks: route tables are
// declared as data, composed through includes, flattened once at startup,
// and matched per update by a fixed-priority dispatcher.
//
// # Key Features
//
//   - Three route kinds with fixed tier priority: command > callback > message
//   - First-match-wins within a tier, in declaration order
//   - Composable route tables via includes with namespace propagation
//   - Cycle-safe flattening of nested include graphs
//   - Lazy, memoized handler resolution through a pluggable Resolver
//   - Eager pattern compilation: bad regexes fail at construction
//   - Optional OpenTelemetry metrics and tracing per dispatch
//
// # Matching Details
//
//   - Command patterns: exact literal match against the slash-command token
//   - Callback patterns: regex anchored at the start of the callback payload
//   - Message patterns: regex searched anywhere in the message text
//
// Tiers are selected by feature presence. An update carrying a command token
// is matched only against command patterns; callback data is consulted only
// when no command token is present, and message text only when neither is.
// When nothing qualifies, Match returns no result and no error — fallback
// behavior belongs to the caller.
//
// # Constructor Pattern
//
// New returns an error because construction does real work: it resolves
// includes through the Resolver and compiles every pattern, both of which
// can fail on bad input. Configuration uses "With" options; route
// declaration uses plain constructors with fluent Named/WithNamespace
// setters, so tables read as data.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//
//	    "rivaas.dev/botroute"
//	)
//
//	func main() {
//	    res := botroute.NewMapResolver()
//	    res.RegisterHandler("app.handlers:start", func(ctx context.Context, u botroute.Update, m *botroute.MatchResult) error {
//	        fmt.Println("started")
//	        return nil
//	    })
//
//	    d, err := botroute.New(botroute.Patterns("",
//	        botroute.Command("start", "app.handlers:start").Named("start"),
//	    ), botroute.WithResolver(res))
//	    if err != nil {
//	        panic(err)
//	    }
//
//	    u := botroute.NewTextUpdate("/start")
//	    if m, err := d.Match(context.Background(), u); err == nil && m != nil {
//	        _ = m.Handler(context.Background(), u, m)
//	    }
//	}
//
// # Subpackages
//
//   - telegram: feature extraction from Telegram Bot API updates
//   - app: application registry and framework bootstrap
//   - settings: configuration loading and merging
//   - logging: structured logger construction
//   - middleware: update-processing middleware chain
//   - legacy: deprecated decorator-era registry, kept for migration
package botroute
