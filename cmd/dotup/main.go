package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dotup/internal/cli"
	"github.com/arthur-debert/dotup/pkg/errors"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		switch {
		case errors.IsCancelled(err):
			fmt.Println(cli.MsgAborted)
		case cli.IsQuietFailure(err):
			// failures were already printed
			os.Exit(1)
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}
