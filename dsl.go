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

// Entry is one element of a route table: a *Pattern or an *IncludeRef.
// The union is closed; nothing outside this package can add entry kinds.
type Entry interface {
	routeEntry()
}

// Table is an ordered route table. Order is significant: it encodes match
// priority within each kind, earliest first.
type Table []Entry

// IncludeRef is a deferred reference to another route table, resolved and
// expanded during flattening and never persisted afterward.
type IncludeRef struct {
	target    string
	namespace string
}

// routeEntry marks IncludeRef as a route table entry.
func (i *IncludeRef) routeEntry() {}

// Target returns the include's table locator as declared.
func (i *IncludeRef) Target() string { return i.target }

// Namespace returns the include's namespace, or "" when none applies.
func (i *IncludeRef) Namespace() string { return i.namespace }

// WithNamespace sets the namespace propagated to every included entry that
// does not declare its own, direct and nested alike. Returns the include for
// chaining at declaration time.
func (i *IncludeRef) WithNamespace(ns string) *IncludeRef {
	i.namespace = ns
	return i
}

// stampNamespace assigns ns unless the include already carries a namespace.
func (i *IncludeRef) stampNamespace(ns string) {
	if i.namespace == "" {
		i.namespace = ns
	}
}

// Command declares a command route. The token is matched by exact string
// equality against the update's command token, without the leading slash.
//
//	botroute.Command("start", "app.handlers:start").Named("start")
func Command(token, handlerRef string) *Pattern {
	return &Pattern{kind: KindCommand, source: token, handlerRef: handlerRef}
}

// Callback declares a callback-query route. The regex source is matched
// anchored at the start of the callback payload, without requiring full
// consumption.
//
//	botroute.Callback(`^page_(\d+)$`, "app.handlers:page").Named("page")
func Callback(regex, handlerRef string) *Pattern {
	return &Pattern{kind: KindCallback, source: regex, handlerRef: handlerRef}
}

// Message declares a message-text route. The regex source is searched
// unanchored anywhere in the message text.
//
//	botroute.Message(`hi`, "app.handlers:greet").Named("greet")
func Message(regex, handlerRef string) *Pattern {
	return &Pattern{kind: KindMessage, source: regex, handlerRef: handlerRef}
}

// Include declares a deferred reference to the route table registered under
// target. A target naming only a module is resolved against the
// DefaultTableAttr attribute.
//
//	botroute.Include("shop.routes").WithNamespace("shop")
func Include(target string) *IncludeRef {
	return &IncludeRef{target: target}
}

// Patterns assembles a route table, stamping namespace onto every direct
// *Pattern entry that does not already declare its own. Includes pass
// through untouched — their namespace applies later, during flattening, to
// whatever they resolve to. Entry order is preserved exactly; Patterns never
// reorders.
//
// Note the deliberate asymmetry with include expansion: Patterns namespaces
// only its direct pattern children, while an include's namespace propagates
// recursively through nested includes.
func Patterns(namespace string, entries ...Entry) Table {
	if namespace != "" {
		for _, e := range entries {
			if p, ok := e.(*Pattern); ok {
				p.stampNamespace(namespace)
			}
		}
	}
	return Table(entries)
}
