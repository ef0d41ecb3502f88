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

package scaffold

const projectMainTemplate = `package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"rivaas.dev/botroute"
	"rivaas.dev/botroute/app"
	"rivaas.dev/botroute/logging"
	"rivaas.dev/botroute/settings"
)

func main() {
	s, err := settings.Load(settings.WithConfigFile("settings.yaml"))
	if err != nil {
		log.Fatalf("loading settings: %v", err)
	}

	logger := logging.New(logging.WithDebug(s.Debug))
	defer logger.Sync()

	res := botroute.NewMapResolver()
	res.RegisterTable("{{.Name}}.routes:routes", routes)

	f := app.NewFramework(s,
		app.WithResolver(res),
		app.WithLogger(logger),
	)
	if err := f.Initialize(); err != nil {
		logger.Fatal("initialization failed", zap.Error(err))
	}

	// Feed updates from your transport here.
	_ = f.Dispatch(context.Background(), botroute.NewTextUpdate("/start"))
}
`

const projectSettingsTemplate = `debug: true
root_routes: "{{.Name}}.routes"
installed_apps: []
telegram:
  token: ""
`

const projectRoutesTemplate = `package main

import (
	"context"

	"rivaas.dev/botroute"
)

var routes = botroute.Table{
	botroute.Command("start", "{{.Name}}.handlers:start").Named("start"),
}

func start(ctx context.Context, u botroute.Update, m *botroute.MatchResult) error {
	return nil
}
`

const appConfigTemplate = `package {{.Name}}

import "rivaas.dev/botroute/app"

// App is the application config picked up by the framework.
var App = &app.Config{
	Name:   "{{.Name}}",
	Routes: "{{.Name}}.routes",
}
`

const appRoutesTemplate = `package {{.Name}}

import "rivaas.dev/botroute"

// Routes is the application's route table.
var Routes = botroute.Table{
	botroute.Command("{{.Name}}", "{{.Name}}.handlers:index").Named("index"),
}
`

const appHandlersTemplate = `package {{.Name}}

import (
	"context"

	"rivaas.dev/botroute"
)

// Index handles the app's entry command.
func Index(ctx context.Context, u botroute.Update, m *botroute.MatchResult) error {
	return nil
}
`
