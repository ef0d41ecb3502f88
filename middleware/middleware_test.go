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

package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"rivaas.dev/botroute"
)

func TestChain_OrderOutermostFirst(t *testing.T) {
	var trace []string
	tag := func(name string) Middleware {
		return func(next botroute.HandlerFunc) botroute.HandlerFunc {
			return func(ctx context.Context, u botroute.Update, m *botroute.MatchResult) error {
				trace = append(trace, name+":before")
				err := next(ctx, u, m)
				trace = append(trace, name+":after")
				return err
			}
		}
	}
	handler := func(ctx context.Context, u botroute.Update, m *botroute.MatchResult) error {
		trace = append(trace, "handler")
		return nil
	}

	chained := Chain(handler, tag("outer"), tag("inner"))
	require.NoError(t, chained(context.Background(), botroute.NewTextUpdate("hi"), nil))

	assert.Equal(t, []string{
		"outer:before", "inner:before", "handler", "inner:after", "outer:after",
	}, trace, "first middleware should wrap the rest")
}

func TestChain_Empty(t *testing.T) {
	called := false
	handler := func(ctx context.Context, u botroute.Update, m *botroute.MatchResult) error {
		called = true
		return nil
	}

	require.NoError(t, Chain(handler)(context.Background(), botroute.NewTextUpdate("hi"), nil))
	assert.True(t, called)
}

func TestRecovery_ConvertsPanicToError(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	panicking := func(ctx context.Context, u botroute.Update, m *botroute.MatchResult) error {
		panic("boom")
	}

	err := Recovery(zap.New(core))(panicking)(context.Background(), botroute.NewTextUpdate("hi"), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	require.Equal(t, 1, logs.Len(), "panic should be logged exactly once")
	assert.Equal(t, "handler panic recovered", logs.All()[0].Message)
}

func TestRecovery_PassesThroughNormalResults(t *testing.T) {
	sentinel := errors.New("handler failed")
	handler := func(ctx context.Context, u botroute.Update, m *botroute.MatchResult) error {
		return sentinel
	}

	err := Recovery(nil)(handler)(context.Background(), botroute.NewTextUpdate("hi"), nil)
	assert.ErrorIs(t, err, sentinel)
}

func TestLogging_RecordsOutcome(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sentinel := errors.New("nope")

	ok := func(ctx context.Context, u botroute.Update, m *botroute.MatchResult) error { return nil }
	bad := func(ctx context.Context, u botroute.Update, m *botroute.MatchResult) error { return sentinel }

	mw := Logging(zap.New(core))
	require.NoError(t, mw(ok)(context.Background(), botroute.NewTextUpdate("hi"), nil))
	assert.ErrorIs(t, mw(bad)(context.Background(), botroute.NewTextUpdate("hi"), nil), sentinel)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "update handled", entries[0].Message)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, "update handled with error", entries[1].Message)
	assert.Equal(t, zap.ErrorLevel, entries[1].Level)
}
