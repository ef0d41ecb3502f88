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
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// scopeName identifies this instrumentation scope to OpenTelemetry.
const scopeName = "rivaas.dev/botroute"

// observer records per-dispatch telemetry. All instruments are created once
// at dispatcher construction; recording is safe for concurrent use.
type observer struct {
	dispatches metric.Int64Counter
	duration   metric.Float64Histogram
	tracer     trace.Tracer
}

func newObserver(mp metric.MeterProvider, tp trace.TracerProvider) (*observer, error) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	meter := mp.Meter(scopeName)

	dispatches, err := meter.Int64Counter("botroute.dispatch.total",
		metric.WithDescription("Number of dispatched updates by tier and outcome"))
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram("botroute.dispatch.duration",
		metric.WithDescription("Dispatch duration in seconds"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	return &observer{
		dispatches: dispatches,
		duration:   duration,
		tracer:     tp.Tracer(scopeName),
	}, nil
}

// begin opens the dispatch span and starts timing.
func (o *observer) begin(ctx context.Context) (context.Context, trace.Span, time.Time) {
	ctx, span := o.tracer.Start(ctx, "botroute.match")
	return ctx, span, time.Now()
}

// finish records the dispatch outcome on both instruments and closes the
// span. The route attribute uses the pattern's fully qualified name (falling
// back to its source) rather than raw update content, keeping attribute
// cardinality bounded by the route table.
func (o *observer) finish(ctx context.Context, span trace.Span, start time.Time, m *MatchResult, err error) {
	tier := "none"
	outcome := "miss"
	route := ""

	switch {
	case err != nil:
		outcome = "error"
		span.SetStatus(codes.Error, err.Error())
	case m != nil:
		outcome = "match"
		tier = m.Pattern.Kind().String()
		route = m.Pattern.FQName()
		if route == "" {
			route = m.Pattern.Source()
		}
	}

	attrs := []attribute.KeyValue{
		attribute.String("tier", tier),
		attribute.String("outcome", outcome),
	}
	if route != "" {
		attrs = append(attrs, attribute.String("route", route))
	}

	o.dispatches.Add(ctx, 1, metric.WithAttributes(attrs...))
	o.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(attrs...))
	span.SetAttributes(attrs...)
	span.End()
}
