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

package botroute_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"rivaas.dev/botroute"
)

// Example_prometheusMetrics shows dispatch metrics flowing end to end:
// an OTel meter provider backed by the Prometheus exporter, scraped
// over HTTP the way a production /metrics endpoint would be.
func Example_prometheusMetrics() {
	registry := prometheus.NewRegistry()
	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		panic(err)
	}
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))

	res := botroute.NewMapResolver()
	res.RegisterHandler("bot:start", func(ctx context.Context, u botroute.Update, m *botroute.MatchResult) error {
		return nil
	})

	d, err := botroute.New(botroute.Table{
		botroute.Command("start", "bot:start").Named("start"),
	},
		botroute.WithResolver(res),
		botroute.WithMeterProvider(provider),
	)
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	if _, err := d.Match(ctx, botroute.NewTextUpdate("/start")); err != nil {
		panic(err)
	}
	if _, err := d.Match(ctx, botroute.NewTextUpdate("unrouted")); err != nil {
		panic(err)
	}

	srv := httptest.NewServer(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		panic(err)
	}

	fmt.Println("dispatch counter exported:", strings.Contains(string(body), "botroute_dispatch"))
	// Output: dispatch counter exported: true
}
