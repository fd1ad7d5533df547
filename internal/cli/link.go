package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotup/pkg/errors"
	"github.com/arthur-debert/dotup/pkg/links"
	"github.com/arthur-debert/dotup/pkg/prompt"
	"github.com/arthur-debert/dotup/pkg/style"
)

func newLinkCmd(dryRun *bool) *cobra.Command {
	var (
		all      bool
		modeName string
		yes      bool
	)

	cmd := &cobra.Command{
		Use:     "link [keys...]",
		Short:   MsgLinkShort,
		Long:    MsgLinkLong,
		Example: MsgLinkExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !all {
				return errors.New(errors.ErrInvalidInput, MsgNoTargets)
			}

			mode, err := links.ParseMode(modeName)
			if err != nil {
				return err
			}
			if mode == links.ModePrompt {
				return errors.New(errors.ErrInvalidInput, "prompt mode is only available in the wizard")
			}

			env, err := initEnv(true)
			if err != nil {
				return err
			}

			specs := env.cfg.Links
			if !all {
				specs, err = env.cfg.SelectLinks(args)
				if err != nil {
					return err
				}
			}

			if mode.Destructive() && !yes && !*dryRun {
				ok, err := prompt.New().Confirm(
					fmt.Sprintf("Mode '%s' will modify existing targets. Continue?", mode))
				if err != nil {
					return err
				}
				if !ok {
					return errors.ErrCancelled
				}
			}

			linker := &links.Linker{DryRun: *dryRun}
			results, err := linker.Apply(links.ResolveAll(env.paths, specs), mode)
			if err != nil {
				return err
			}

			printResults(env, results)

			if *dryRun {
				fmt.Println(style.Info(MsgDryRunNotice))
			}
			if links.FailedCount(results) > 0 {
				return errFailure
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Link all configured targets")
	cmd.Flags().StringVar(&modeName, "mode", string(links.ModeSkip), "How to handle existing targets (backup/overwrite/skip)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmations")

	return cmd
}

// printResults renders per-link outcomes in the fixed-label column format
func printResults(env *runEnv, results []links.Result) {
	for _, res := range results {
		summary := fmt.Sprintf("%s -> %s",
			env.paths.Display(res.Link.Source), env.paths.Display(res.Link.Target))

		switch {
		case res.Err != nil:
			fmt.Printf("%s%-22s %v\n", style.FailLabel(), res.Link.Spec.Key, res.Err)

		case res.Action == links.ActionAlreadyLinked:
			fmt.Printf("%s%-22s %s\n", style.OKLabel(), res.Link.Spec.Key, MsgAlreadyLinked)

		case res.Action == links.ActionSkipped:
			fmt.Printf("%s%-22s target exists (use --mode backup/overwrite)\n",
				style.SkipLabel(), res.Link.Spec.Key)

		default:
			if res.Backup != "" {
				fmt.Printf("%s%-22s backed up to %s\n",
					style.SkipLabel(), res.Link.Spec.Key, env.paths.Display(res.Backup))
			}
			label := style.OKLabel()
			if res.DryRun {
				label = style.DryLabel()
			}
			fmt.Printf("%s%-22s %s\n", label, res.Link.Spec.Key, summary)
		}
	}
}
