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

// Package settings loads and merges framework configuration.
//
// Precedence, lowest to highest: built-in defaults, then the project config
// file, then environment variables. A .env file, when present, is loaded
// into the process environment before the environment pass so both sources
// behave identically (12-factor friendly).
//
// Environment variables (all optional):
//
//	BOTROUTE_DEBUG          = "1" | "true" | "yes" | "on" | "y"
//	BOTROUTE_TOKEN          = bot API token
//	BOTROUTE_ROOT_ROUTES    = "myproject.routes" locator
//	BOTROUTE_INSTALLED_APPS = "app1,app2,app3"
package settings

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// ErrLoad indicates that the config file could not be read or parsed.
var ErrLoad = errors.New("settings cannot be loaded")

// Environment variable names recognized by Load.
const (
	EnvDebug         = "BOTROUTE_DEBUG"
	EnvToken         = "BOTROUTE_TOKEN"
	EnvRootRoutes    = "BOTROUTE_ROOT_ROUTES"
	EnvInstalledApps = "BOTROUTE_INSTALLED_APPS"
)

// truthy is the accepted set of true-valued environment strings.
var truthy = map[string]bool{"1": true, "true": true, "yes": true, "on": true, "y": true}

// Telegram groups platform-specific configuration.
type Telegram struct {
	Token string
}

// Settings is the merged framework configuration.
type Settings struct {
	// Debug lowers log levels and enables verbose diagnostics.
	Debug bool

	// InstalledApps lists app-config locators loaded at bootstrap.
	InstalledApps []string

	// RootRoutes is the locator of the project's root route table.
	RootRoutes string

	// Telegram holds platform credentials.
	Telegram Telegram
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{InstalledApps: []string{}}
}

// Option configures Load.
type Option func(*loader)

type loader struct {
	configFile string
	dotenvFile string
	useEnv     bool
	useDotenv  bool
}

// WithConfigFile points Load at a yaml config file. Loading fails if the
// file cannot be read; without this option no file is consulted.
func WithConfigFile(path string) Option {
	return func(l *loader) { l.configFile = path }
}

// WithDotenvFile overrides the .env path consulted before the environment
// pass. The default is ".env" in the working directory; a missing file is
// never an error either way.
func WithDotenvFile(path string) Option {
	return func(l *loader) { l.dotenvFile = path }
}

// WithoutEnv disables the environment override pass (and the .env load).
// Useful in tests that need hermetic settings.
func WithoutEnv() Option {
	return func(l *loader) {
		l.useEnv = false
		l.useDotenv = false
	}
}

// Load returns the merged settings.
func Load(opts ...Option) (Settings, error) {
	l := &loader{dotenvFile: ".env", useEnv: true, useDotenv: true}
	for _, opt := range opts {
		opt(l)
	}

	v := viper.New()
	v.SetDefault("debug", false)
	v.SetDefault("installed_apps", []string{})
	v.SetDefault("root_routes", "")
	v.SetDefault("telegram.token", "")

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("%w: %q: %v", ErrLoad, l.configFile, err)
		}
	}

	s := Settings{
		Debug:         cast.ToBool(v.Get("debug")),
		InstalledApps: cast.ToStringSlice(v.Get("installed_apps")),
		RootRoutes:    cast.ToString(v.Get("root_routes")),
		Telegram:      Telegram{Token: cast.ToString(v.Get("telegram.token"))},
	}
	if s.InstalledApps == nil {
		s.InstalledApps = []string{}
	}

	if l.useDotenv {
		if _, err := os.Stat(l.dotenvFile); err == nil {
			_ = godotenv.Load(l.dotenvFile)
		}
	}
	if l.useEnv {
		applyEnv(&s)
	}
	return s, nil
}

// applyEnv applies environment overrides on top of s. A set-but-unrecognized
// debug value reads as false; an empty apps list or token never overrides.
func applyEnv(s *Settings) {
	if val, ok := os.LookupEnv(EnvDebug); ok {
		s.Debug = truthy[strings.ToLower(strings.TrimSpace(val))]
	}
	if val := os.Getenv(EnvToken); val != "" {
		s.Telegram.Token = val
	}
	if val := os.Getenv(EnvRootRoutes); val != "" {
		s.RootRoutes = val
	}
	if apps := splitCSV(os.Getenv(EnvInstalledApps)); apps != nil {
		s.InstalledApps = apps
	}
}

// splitCSV splits a comma-separated list, trimming items and dropping
// empties. An empty input yields nil, meaning "no override".
func splitCSV(val string) []string {
	if val == "" {
		return nil
	}
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
