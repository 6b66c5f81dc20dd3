// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Command envcheck validates the process environment against a schema file.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(execute(newRootCommand(os.Environ)))
}

// execute runs cmd and returns the process exit code. Errors which were
// not logged by the command are printed to its error output.
func execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var lerr loggedError
	if !errors.As(err, &lerr) {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
	}
	return 1
}

func newRootCommand(environ func() []string) *cobra.Command {
	root := &cobra.Command{
		Use:   "envcheck",
		Short: "Validate environment variables against a schema",
		Long: `envcheck decodes environment variables with the variables declared in a
YAML schema file. Every missing variable or invalid value is reported at once
so all problems can be fixed in a single pass.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCheckCommand(environ))
	return root
}
