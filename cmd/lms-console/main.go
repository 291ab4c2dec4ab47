// Command lms-console is a terminal admin console for the learning platform
// backend. All domain logic lives in the library packages; this binary is the
// navigation surface that binds list pages, session state and exports to
// commands.
package main

import (
	"fmt"
	"os"

	apperrors "github.com/openlearn-labs/lms-console/pkg/errors"
)

func main() {
	root, err := newRootCmd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", apperrors.Display(err, "something went wrong"))
		os.Exit(1)
	}
}
