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

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rivaas.dev/botroute/internal/scaffold"
)

func newProjectCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new bot project",
		Long: `Create a new bot project skeleton: a main.go wired to settings,
logging, and the framework, a settings.yaml, and a root route table.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := scaffold.Project(dir, name); err != nil {
				return fmt.Errorf("creating project: %w", err)
			}
			fmt.Printf("Created project %s\n", name)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to create the project in")

	return cmd
}

func newAppCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "newapp <name>",
		Short: "Create a new application package",
		Long: `Create an application skeleton inside an existing project: an app
config, a route table, and a handlers file. Add the app's name to
installed_apps in settings.yaml to activate it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := scaffold.App(dir, name); err != nil {
				return fmt.Errorf("creating app: %w", err)
			}
			fmt.Printf("Created app %s\n", name)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to create the app in")

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the botroute version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("botroute %s\n", version)
		},
	}
}
