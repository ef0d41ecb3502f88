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

import "fmt"

// Flatten expands every include in entries into a flat, ordered pattern
// list — the structure a dispatcher operates on. Output order is the strict
// depth-first, in-order expansion of the input, which fixes match priority
// within each kind.
//
// Include targets are resolved through res. A target visited twice within
// one Flatten call is skipped the second time, so cyclic or duplicated
// include graphs terminate and contribute each table's direct patterns
// exactly once. Any resolution failure is fatal to the whole call: no
// partial route table is ever returned.
func Flatten(entries Table, res Resolver) ([]*Pattern, error) {
	return flatten(entries, res, make(map[string]struct{}))
}

func flatten(entries Table, res Resolver, seen map[string]struct{}) ([]*Pattern, error) {
	flat := make([]*Pattern, 0, len(entries))
	for _, entry := range entries {
		switch e := entry.(type) {
		case *Pattern:
			flat = append(flat, e)

		case *IncludeRef:
			target := canonicalTableLocator(e.target)
			if _, dup := seen[target]; dup {
				continue
			}
			seen[target] = struct{}{}

			nested, err := resolveTable(res, target)
			if err != nil {
				return nil, err
			}

			// The include's namespace reaches every resolved child that
			// lacks its own — patterns directly, and nested includes so the
			// namespace carries through their eventual expansion.
			if e.namespace != "" {
				for _, child := range nested {
					switch c := child.(type) {
					case *Pattern:
						c.stampNamespace(e.namespace)
					case *IncludeRef:
						c.stampNamespace(e.namespace)
					}
				}
			}

			expanded, err := flatten(nested, res, seen)
			if err != nil {
				return nil, err
			}
			flat = append(flat, expanded...)

		default:
			return nil, fmt.Errorf("%w: unsupported entry type %T", ErrTableLoad, entry)
		}
	}
	return flat, nil
}

// resolveTable resolves an include target to a Table.
func resolveTable(res Resolver, target string) (Table, error) {
	if _, _, ok := splitLocator(target); !ok {
		return nil, fmt.Errorf("%w: %w %q", ErrTableLoad, ErrBadLocator, target)
	}
	v, err := res.Resolve(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrTableLoad, target, err)
	}
	t, ok := v.(Table)
	if !ok {
		return nil, fmt.Errorf("%w: %q resolved to %T, want Table", ErrTableLoad, target, v)
	}
	return t, nil
}
