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

import "errors"

var (
	// ErrPatternCompile indicates that a callback or message pattern holds
	// an invalid regular expression. Surfaced eagerly at dispatcher
	// construction, never deferred to the first match attempt.
	ErrPatternCompile = errors.New("pattern does not compile")

	// ErrHandlerLoad indicates that a handler locator could not be resolved
	// to an invocable handler. Raised on the first resolution attempt for a
	// pattern and returned identically on every subsequent attempt.
	ErrHandlerLoad = errors.New("handler cannot be loaded")

	// ErrTableLoad indicates that an include target could not be resolved,
	// or resolved to something that is not a route table. Fatal to the
	// flatten call that hit it.
	ErrTableLoad = errors.New("route table cannot be loaded")

	// ErrBadLocator indicates a locator without separable module and
	// attribute parts. Always wrapped inside ErrHandlerLoad or ErrTableLoad.
	ErrBadLocator = errors.New("malformed locator")

	// ErrNotInvocable indicates that a handler locator resolved to a value
	// that is not a handler function. Always wrapped inside ErrHandlerLoad.
	ErrNotInvocable = errors.New("resolved value is not invocable")
)
