// Package main is the entry point for the tabletop inventory command line
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/tabletop-inventory/internal/errors"
)

func main() {
	// A .env file is optional; the environment still applies without one
	_ = godotenv.Load()

	rootCmd := newRootCmd(newApp(os.Stdout, os.Stderr))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps coded errors to distinct statuses. Errors without a code come
// from cobra's argument and flag parsing.
func exitCode(err error) int {
	var e *errors.Error
	if !errors.As(err, &e) {
		return errors.CodeInvalidArgument.ExitCode()
	}
	return e.Code.ExitCode()
}
