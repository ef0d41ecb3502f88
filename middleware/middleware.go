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

// Package middleware wraps matched handlers with cross-cutting behavior.
//
// A Middleware takes the next handler and returns a new one. Chain
// composes several so the first middleware passed is the outermost:
//
//	h := middleware.Chain(handler, middleware.Recovery(logger), middleware.Logging(logger))
//
// runs Recovery around Logging around the handler.
package middleware

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"go.uber.org/zap"

	"rivaas.dev/botroute"
)

// Middleware decorates a handler with additional behavior.
type Middleware func(next botroute.HandlerFunc) botroute.HandlerFunc

// Chain wraps handler with the given middleware. The first middleware
// becomes the outermost layer.
func Chain(handler botroute.HandlerFunc, mws ...Middleware) botroute.HandlerFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		handler = mws[i](handler)
	}
	return handler
}

// Recovery converts handler panics into errors so one misbehaving route
// cannot take down the update loop. The panic value and stack are logged.
func Recovery(logger *zap.Logger) Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next botroute.HandlerFunc) botroute.HandlerFunc {
		return func(ctx context.Context, u botroute.Update, m *botroute.MatchResult) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("handler panic recovered",
						zap.Any("panic", r),
						zap.String("route", routeName(m)),
						zap.ByteString("stack", debug.Stack()),
					)
					err = fmt.Errorf("handler panic: %v", r)
				}
			}()
			return next(ctx, u, m)
		}
	}
}

// Logging records every dispatched update with its route, outcome, and
// handler latency.
func Logging(logger *zap.Logger) Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next botroute.HandlerFunc) botroute.HandlerFunc {
		return func(ctx context.Context, u botroute.Update, m *botroute.MatchResult) error {
			start := time.Now()
			err := next(ctx, u, m)
			fields := []zap.Field{
				zap.String("route", routeName(m)),
				zap.Duration("duration", time.Since(start)),
			}
			if err != nil {
				logger.Error("update handled with error", append(fields, zap.Error(err))...)
			} else {
				logger.Info("update handled", fields...)
			}
			return err
		}
	}
}

func routeName(m *botroute.MatchResult) string {
	if m == nil || m.Pattern == nil {
		return ""
	}
	return m.Pattern.FQName()
}
