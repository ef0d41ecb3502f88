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

// Package app assembles a bot from installed applications.
//
// An application is a self-contained unit: a [Config] naming it and
// pointing at its route table, registered in a [Registry]. The
// [Framework] loads the configured applications through a resolver,
// includes each app's routes under the app's namespace, and builds the
// dispatcher the update loop drives.
package app

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"rivaas.dev/botroute/middleware"
)

// DefaultConfigAttr is the attribute consulted when an installed-app
// locator names only a module.
const DefaultConfigAttr = "app"

// Config describes one installed application.
type Config struct {
	// Name identifies the application. It becomes the namespace prefix
	// of every route the app contributes.
	Name string

	// VerboseName is the human-readable name. Derived from Name when empty.
	VerboseName string

	// Routes locates the application's route table.
	Routes string

	// Middleware wraps the app's handlers, outermost first, inside any
	// framework-wide middleware.
	Middleware []middleware.Middleware
}

// Verbose returns the verbose name, deriving a title-cased one from
// Name when none was set: "payment_flows" becomes "Payment Flows".
func (c *Config) Verbose() string {
	if c.VerboseName != "" {
		return c.VerboseName
	}
	return titleCase(c.Name)
}

func titleCase(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
