package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotup/pkg/config"
)

func newGenconfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenconfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateConfigContent()
			if err != nil {
				return err
			}
			fmt.Print(content)
			return nil
		},
	}
}
