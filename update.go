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
	"strings"
)

// Update is the extraction contract between an inbound chat update and the
// dispatcher. The dispatcher reads at most three optional features from it
// and depends on nothing else about the wire format; adapters for concrete
// platforms live outside the core (see the telegram subpackage).
type Update interface {
	// CommandToken reports the command token of a slash-prefixed message
	// and whether one is present. See ParseCommand for the token rule.
	CommandToken() (string, bool)

	// CallbackData reports the callback-query payload and whether the
	// update carries one.
	CallbackData() (string, bool)

	// MessageText reports the message text body, regardless of any leading
	// slash, and whether the update carries one.
	MessageText() (string, bool)
}

// HandlerFunc is an invocable update handler. The dispatcher resolves
// handlers lazily; invocation itself belongs to the caller, which passes the
// original update alongside the match it produced.
type HandlerFunc func(ctx context.Context, u Update, m *MatchResult) error

// ParseCommand extracts the command token from message text: the text must
// begin with '/', leading slashes are stripped, and the token runs up to the
// first whitespace. A bare "/" (or slashes followed only by whitespace)
// carries no token.
func ParseCommand(text string) (string, bool) {
	if !strings.HasPrefix(text, "/") {
		return "", false
	}
	fields := strings.Fields(strings.TrimLeft(text, "/"))
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}

// textUpdate is an in-memory update carrying only message text.
type textUpdate string

func (t textUpdate) CommandToken() (string, bool) { return ParseCommand(string(t)) }
func (t textUpdate) CallbackData() (string, bool) { return "", false }
func (t textUpdate) MessageText() (string, bool)  { return string(t), true }

// callbackUpdate is an in-memory update carrying only callback data.
type callbackUpdate string

func (c callbackUpdate) CommandToken() (string, bool) { return "", false }
func (c callbackUpdate) CallbackData() (string, bool) { return string(c), true }
func (c callbackUpdate) MessageText() (string, bool)  { return "", false }

// NewTextUpdate returns an Update carrying the given message text. Intended
// for tests and for transports that deliver plain text.
func NewTextUpdate(text string) Update { return textUpdate(text) }

// NewCallbackUpdate returns an Update carrying the given callback payload.
// Intended for tests and for transports that deliver callback data directly.
func NewCallbackUpdate(data string) Update { return callbackUpdate(data) }
