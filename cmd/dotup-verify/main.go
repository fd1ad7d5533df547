// dotup-verify is a shortcut binary for the verify command, handy as a
// cron or shell-init health check without remembering the subcommand.
package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dotup/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCmd()
	rootCmd.SetArgs(append([]string{"verify"}, os.Args[1:]...))

	if err := rootCmd.Execute(); err != nil {
		if !cli.IsQuietFailure(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
