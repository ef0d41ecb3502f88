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

package app

import "errors"

var (
	// ErrAppRegistered is returned when an application name is registered twice.
	ErrAppRegistered = errors.New("application already registered")

	// ErrAppNotFound is returned when looking up an unregistered application.
	ErrAppNotFound = errors.New("application not found")

	// ErrConfiguration is returned when bootstrap input is unusable: a bad
	// installed-app locator, a locator resolving to something that is not an
	// application config, or a config with no name.
	ErrConfiguration = errors.New("invalid application configuration")
)
