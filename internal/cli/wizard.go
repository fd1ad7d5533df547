package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotup/pkg/errors"
	"github.com/arthur-debert/dotup/pkg/links"
	"github.com/arthur-debert/dotup/pkg/prompt"
	"github.com/arthur-debert/dotup/pkg/style"
)

// runWizard walks every configured link interactively. Healthy links are
// reported and skipped, absent targets are offered for creation, and
// conflicts go through the per-link chooser. Quitting at any prompt
// aborts the rest of the run with nothing further touched.
func runWizard(cmd *cobra.Command, dryRun bool) error {
	env, err := initEnv(true)
	if err != nil {
		return err
	}

	if len(env.cfg.Links) == 0 {
		fmt.Println("No link targets configured. Run 'dotup genconfig' to get started.")
		return nil
	}

	fmt.Println(style.Panel(fmt.Sprintf("%s\nrepo: %s\n%d link target(s)",
		style.Bold("dotup wizard"), env.paths.Display(env.paths.RepoRoot()), len(env.cfg.Links))))

	p := prompt.New()
	linker := &links.Linker{DryRun: dryRun, Chooser: p}
	failed := 0

	for _, item := range links.ResolveAll(env.paths, env.cfg.Links) {
		status, _ := item.Check()
		summary := fmt.Sprintf("%s -> %s",
			env.paths.Display(item.Source), env.paths.Display(item.Target))

		switch status {
		case links.StatusLinked:
			fmt.Printf("%s%-22s %s\n", style.OKLabel(), item.Spec.Key, MsgAlreadyLinked)
			continue

		case links.StatusMissingSource:
			fmt.Printf("%s%-22s source missing: %s\n",
				style.FailLabel(), item.Spec.Key, env.paths.Display(item.Source))
			failed++
			continue

		case links.StatusAbsent:
			ok, err := p.Confirm(fmt.Sprintf("Create %s?", summary))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Printf("%s%s\n", style.SkipLabel(), item.Spec.Key)
				continue
			}
			n, err := applyOne(env, linker, item, links.ModeSkip)
			if err != nil {
				return err
			}
			failed += n

		default:
			// the chooser prints the conflict status itself
			n, err := applyOne(env, linker, item, links.ModePrompt)
			if err != nil {
				return err
			}
			failed += n
		}
	}

	if dryRun {
		fmt.Println(style.Info(MsgDryRunNotice))
	}
	if failed > 0 {
		return errFailure
	}
	return nil
}

// applyOne runs a single link through the resolver and prints the outcome,
// returning the number of failures. Cancellation comes back as the error
// and stops the wizard; anything else is reported and counted.
func applyOne(env *runEnv, linker *links.Linker, item links.Link, mode links.ConflictMode) (int, error) {
	results, err := linker.Apply([]links.Link{item}, mode)
	if err != nil {
		if errors.IsCancelled(err) {
			return 0, err
		}
		fmt.Printf("%s%-22s %v\n", style.FailLabel(), item.Spec.Key, err)
		return 1, nil
	}

	printResults(env, results)
	return links.FailedCount(results), nil
}
