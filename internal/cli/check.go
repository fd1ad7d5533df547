package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotup/pkg/scanner"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [files...]",
		Short: MsgCheckShort,
		Long:  MsgCheckLong,
		// zero files is a pass: pre-commit may hand over an empty staged list
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := scanner.ScanFiles(args)
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				return nil
			}

			for _, m := range matches {
				fmt.Fprintf(os.Stderr, "%s:%d: hardcoded home path: %s\n", m.File, m.Line, m.Text)
			}
			fmt.Fprintf(os.Stderr, "\nUse $HOME (or ~) instead of absolute home paths.\n")
			return errFailure
		},
	}
}
