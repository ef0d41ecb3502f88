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
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Option configures a Dispatcher at construction time.
type Option func(*config)

type config struct {
	resolver       Resolver
	logger         *zap.Logger
	observability  bool
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
}

func defaultConfig() *config {
	return &config{
		resolver: NewMapResolver(),
		logger:   zap.NewNop(),
	}
}

// WithResolver sets the resolver used for include expansion and handler
// loading. The default is an empty MapResolver, which makes every locator
// unresolvable — real route tables always need this option.
func WithResolver(res Resolver) Option {
	return func(c *config) {
		if res != nil {
			c.resolver = res
		}
	}
}

// WithLogger sets the structured logger used for dispatch diagnostics. The
// default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithObservability instruments Match with OpenTelemetry metrics and traces
// using the global providers: a dispatch counter by tier and outcome, a
// duration histogram, and a span per dispatch carrying the matched route.
//
// Example with the Prometheus exporter:
//
//	exporter, _ := prometheus.New()
//	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
//	d, err := botroute.New(table,
//	    botroute.WithObservability(),
//	    botroute.WithMeterProvider(mp))
func WithObservability() Option {
	return func(c *config) {
		c.observability = true
	}
}

// WithMeterProvider sets the meter provider used when observability is
// enabled, and implies WithObservability.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.observability = true
		c.meterProvider = mp
	}
}

// WithTracerProvider sets the tracer provider used when observability is
// enabled, and implies WithObservability.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		c.observability = true
		c.tracerProvider = tp
	}
}
