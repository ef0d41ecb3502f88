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
	"fmt"
	"regexp"
	"sync"
)

// Kind classifies a pattern by the update feature it matches against.
type Kind uint8

const (
	// KindCommand matches the command token of a slash-prefixed message.
	// The pattern source is an exact-match literal, never a regex.
	KindCommand Kind = iota

	// KindCallback matches callback-query payload data. The pattern source
	// is a regular expression anchored at the start of the payload.
	KindCallback

	// KindMessage matches free message text. The pattern source is a
	// regular expression searched anywhere in the text.
	KindMessage
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindCallback:
		return "callback"
	case KindMessage:
		return "message"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Pattern is one declared route: a matching rule of a fixed kind plus a
// handler locator. Patterns are created through the Command, Callback and
// Message constructors and are immutable once a Dispatcher takes ownership,
// apart from the two lazily populated caches below.
//
// The compiled regex and the resolved handler are each computed at most once
// and cached for the lifetime of the pattern. Both cells are guarded by
// sync.Once so concurrent first use cannot duplicate the work or tear the
// slot; a failed computation is cached too and returned identically on every
// later call.
type Pattern struct {
	kind       Kind
	source     string
	handlerRef string
	name       string
	namespace  string

	compileOnce sync.Once
	compiled    *regexp.Regexp
	compileErr  error

	resolveOnce sync.Once
	handler     HandlerFunc
	resolveErr  error
}

// routeEntry marks Pattern as a route table entry.
func (p *Pattern) routeEntry() {}

// Kind returns the pattern's kind. Fixed at creation.
func (p *Pattern) Kind() Kind { return p.kind }

// Source returns the raw pattern source: the literal token for command
// patterns, the regular expression source for callback and message patterns.
func (p *Pattern) Source() string { return p.source }

// HandlerRef returns the handler locator in "module:attr" form.
func (p *Pattern) HandlerRef() string { return p.handlerRef }

// Name returns the route name, or "" when the route is unnamed.
func (p *Pattern) Name() string { return p.name }

// Namespace returns the route namespace, or "" when none applies.
func (p *Pattern) Namespace() string { return p.namespace }

// Named sets the route name used for reverse lookup. Returns the pattern
// for chaining at declaration time.
func (p *Pattern) Named(name string) *Pattern {
	p.name = name
	return p
}

// WithNamespace sets the route namespace explicitly. A pattern that declares
// its own namespace is never re-stamped by Patterns or by include expansion.
// Returns the pattern for chaining at declaration time.
func (p *Pattern) WithNamespace(ns string) *Pattern {
	p.namespace = ns
	return p
}

// FQName returns the fully qualified route name: "namespace:name" when a
// namespace applies, the bare name otherwise, and "" for unnamed routes.
func (p *Pattern) FQName() string {
	if p.name == "" {
		return ""
	}
	if p.namespace != "" {
		return p.namespace + ":" + p.name
	}
	return p.name
}

// Compile compiles the pattern source for the regex kinds. It is idempotent:
// the first call does the work, every later call returns the cached outcome.
// Command patterns are literals and compile to nothing.
//
// Callback sources are wrapped in \A(?:...) so matching is anchored at the
// start of the payload without forcing full consumption; the non-capturing
// group keeps submatch numbering intact. Message sources compile as-is and
// are searched unanchored.
func (p *Pattern) Compile() error {
	if p.kind == KindCommand {
		return nil
	}
	p.compileOnce.Do(func() {
		src := p.source
		if p.kind == KindCallback {
			src = `\A(?:` + src + `)`
		}
		re, err := regexp.Compile(src)
		if err != nil {
			p.compileErr = fmt.Errorf("%w: %s pattern %q: %v", ErrPatternCompile, p.kind, p.source, err)
			return
		}
		p.compiled = re
	})
	return p.compileErr
}

// stampNamespace assigns ns unless the pattern already carries a namespace.
// Only the route table builder calls this, before a dispatcher takes
// ownership of the pattern.
func (p *Pattern) stampNamespace(ns string) {
	if p.namespace == "" {
		p.namespace = ns
	}
}

// resolveHandler resolves and caches the pattern's handler through res.
// The outcome — handler or error — is computed once; a failure is not
// retried with different inputs.
func (p *Pattern) resolveHandler(res Resolver) (HandlerFunc, error) {
	p.resolveOnce.Do(func() {
		p.handler, p.resolveErr = loadHandler(res, p.handlerRef)
	})
	return p.handler, p.resolveErr
}
