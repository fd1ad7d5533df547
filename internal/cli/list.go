package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotup/pkg/links"
	"github.com/arthur-debert/dotup/pkg/style"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
}

// status is an alias kept for muscle memory; it prints the same table.
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "status",
		Short:  MsgListShort,
		Args:   cobra.NoArgs,
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
}

func runList() error {
	env, err := initEnv(false)
	if err != nil {
		return err
	}

	if len(env.cfg.Links) == 0 {
		fmt.Println("No link targets configured.")
		return nil
	}

	fmt.Println(style.Rule("Link targets"))
	for _, item := range links.ResolveAll(env.paths, env.cfg.Links) {
		status, detail := item.Check()
		line := fmt.Sprintf("%s %-22s %s -> %s",
			style.StatusLabel(status), item.Spec.Key,
			env.paths.Display(item.Source), env.paths.Display(item.Target))
		fmt.Println(line)
		if detail != "" && status != links.StatusLinked {
			fmt.Printf("         %s\n", style.Muted(detail))
		}
		if item.Spec.Description != "" {
			fmt.Printf("         %s\n", style.Muted(item.Spec.Description))
		}
	}
	return nil
}
