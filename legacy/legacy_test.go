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

package legacy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/botroute"
)

func handlerNamed(name string, log *[]string) botroute.HandlerFunc {
	return func(ctx context.Context, u botroute.Update, m *botroute.MatchResult) error {
		*log = append(*log, name)
		return nil
	}
}

func TestRegistry_CommandLastWins(t *testing.T) {
	var log []string
	r := NewRegistry()
	r.Command("start", handlerNamed("first", &log), "")
	r.Command("start", handlerNamed("second", &log), "")

	commands := r.Commands()
	require.Len(t, commands, 1)

	route := commands["start"]
	require.NoError(t, route.Handler(context.Background(), nil, nil))
	assert.Equal(t, []string{"second"}, log, "last registration for a literal wins")
}

func TestRegistry_CallbacksAndMessagesRetainAll(t *testing.T) {
	var log []string
	r := NewRegistry()
	r.Callback(`^a$`, handlerNamed("cb1", &log), "")
	r.Callback(`^a$`, handlerNamed("cb2", &log), "")
	r.Message(`hi`, handlerNamed("msg1", &log), "")

	assert.Len(t, r.Callbacks(), 2, "duplicate callback registrations are all retained")
	assert.Len(t, r.Messages(), 1)

	callbacks := r.Callbacks()
	require.NoError(t, callbacks[0].Handler(context.Background(), nil, nil))
	require.NoError(t, callbacks[1].Handler(context.Background(), nil, nil))
	assert.Equal(t, []string{"cb1", "cb2"}, log, "registration order is preserved")
}

func TestRegistry_Merge(t *testing.T) {
	var log []string
	a := NewRegistry()
	a.Command("start", handlerNamed("a-start", &log), "")
	a.Callback(`^x$`, handlerNamed("a-cb", &log), "")

	b := NewRegistry()
	b.Command("start", handlerNamed("b-start", &log), "")
	b.Message(`hi`, handlerNamed("b-msg", &log), "")

	a.Merge(b)

	require.NoError(t, a.Commands()["start"].Handler(context.Background(), nil, nil))
	assert.Equal(t, []string{"b-start"}, log, "merged commands override on collision")
	assert.Len(t, a.Callbacks(), 1)
	assert.Len(t, a.Messages(), 1)
}

func TestRegistry_TableBridgesToDispatcher(t *testing.T) {
	var log []string
	r := NewRegistry()
	r.Command("start", handlerNamed("start", &log), "start")
	r.Callback(`^page_(\d+)$`, handlerNamed("page", &log), "page")
	r.Message(`hi`, handlerNamed("greet", &log), "greet")

	table, res := r.Table()
	require.Len(t, table, 3)

	d, err := botroute.New(table, botroute.WithResolver(res))
	require.NoError(t, err)
	ctx := context.Background()

	u := botroute.NewTextUpdate("/start")
	m, err := d.Match(ctx, u)
	require.NoError(t, err)
	require.NotNil(t, m)
	require.NoError(t, m.Handler(ctx, u, m))

	cb := botroute.NewCallbackUpdate("page_7")
	m, err = d.Match(ctx, cb)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "7", m.Capture(1))
	require.NoError(t, m.Handler(ctx, cb, m))

	assert.Equal(t, []string{"start", "page"}, log)
}

func TestRegistry_TableDuplicateCallbackSources(t *testing.T) {
	var log []string
	r := NewRegistry()
	r.Callback(`^x$`, handlerNamed("first", &log), "")
	r.Callback(`^x$`, handlerNamed("second", &log), "")

	table, res := r.Table()
	d, err := botroute.New(table, botroute.WithResolver(res))
	require.NoError(t, err)

	u := botroute.NewCallbackUpdate("x")
	m, err := d.Match(context.Background(), u)
	require.NoError(t, err)
	require.NotNil(t, m)
	require.NoError(t, m.Handler(context.Background(), u, m))

	assert.Equal(t, []string{"first"}, log, "first declaration wins at dispatch")
}
