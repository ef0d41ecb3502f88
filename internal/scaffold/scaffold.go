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

// Package scaffold writes the project and app skeletons the botroute
// CLI generates.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"text/template"
)

// identPattern keeps generated names usable as Go package names and
// route namespaces.
var identPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

type templateData struct {
	Name string
}

// Project writes a runnable project skeleton named name under dir:
// main.go, settings.yaml, and a routes file.
func Project(dir, name string) error {
	return render(filepath.Join(dir, name), name, map[string]string{
		"main.go":       projectMainTemplate,
		"settings.yaml": projectSettingsTemplate,
		"routes.go":     projectRoutesTemplate,
	})
}

// App writes an application package skeleton named name under dir:
// app.go (config), routes.go, handlers.go.
func App(dir, name string) error {
	return render(filepath.Join(dir, name), name, map[string]string{
		"app.go":      appConfigTemplate,
		"routes.go":   appRoutesTemplate,
		"handlers.go": appHandlersTemplate,
	})
}

func render(target, name string, files map[string]string) error {
	if !identPattern.MatchString(name) {
		return fmt.Errorf("invalid name %q: want lowercase letters, digits, underscores", name)
	}
	if _, err := os.Stat(target); err == nil {
		return fmt.Errorf("%s already exists", target)
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return err
	}

	data := templateData{Name: name}
	for file, src := range files {
		tpl, err := template.New(file).Parse(src)
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", file, err)
		}
		out, err := os.Create(filepath.Join(target, file))
		if err != nil {
			return err
		}
		if err := tpl.Execute(out, data); err != nil {
			out.Close()
			return fmt.Errorf("rendering %s: %w", file, err)
		}
		if err := out.Close(); err != nil {
			return err
		}
	}
	return nil
}
