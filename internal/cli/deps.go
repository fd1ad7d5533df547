package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotup/pkg/deps"
	"github.com/arthur-debert/dotup/pkg/style"
)

func newDepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deps [rc-file]",
		Short: MsgDepsShort,
		Long:  MsgDepsLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := initEnv(true)
			if err != nil {
				return err
			}

			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			rcPath, err := deps.FindRcFile(arg, ".zshrc")
			if err != nil {
				return err
			}

			fmt.Println(style.Rule(fmt.Sprintf("Dependencies for %s", env.paths.Display(rcPath))))

			results, err := deps.RunGated(env.cfg.Checks, env.cfg.RequiredBy(), rcPath)
			if err != nil {
				return err
			}

			missing := 0
			for _, res := range results {
				switch res.Status {
				case deps.StatusOK:
					fmt.Printf("%s%-22s %s\n", style.OKLabel(), res.Check.Label, style.Muted(res.Target))
				case deps.StatusSkipped:
					fmt.Printf("%s%-22s %s\n", style.SkipLabel(), res.Check.Label,
						style.Muted("not referenced in rc file"))
				default:
					missing++
					fmt.Printf("%s%-22s %s\n", style.MissLabel(), res.Check.Label, res.Target)
					for _, hint := range res.Hints {
						fmt.Printf("         %s\n", style.Muted(hint))
					}
				}
			}

			fmt.Println()
			if missing == 0 {
				fmt.Printf("All %d referenced dependencies present.\n", presentCount(results))
				return nil
			}
			fmt.Printf("%d missing.\n", missing)
			return errFailure
		},
	}
}

func presentCount(results []deps.Result) int {
	n := 0
	for _, res := range results {
		if res.Status == deps.StatusOK {
			n++
		}
	}
	return n
}
