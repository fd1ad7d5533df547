package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotup/pkg/deps"
	"github.com/arthur-debert/dotup/pkg/gitcheck"
	"github.com/arthur-debert/dotup/pkg/links"
	"github.com/arthur-debert/dotup/pkg/scanner"
	"github.com/arthur-debert/dotup/pkg/style"
)

func newVerifyCmd() *cobra.Command {
	var linksOnly bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: MsgVerifyShort,
		Long:  MsgVerifyLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := initEnv(false)
			if err != nil {
				return err
			}

			v := &verifyRun{env: env}

			v.section("Symlinks", v.symlinkItems())
			if !linksOnly {
				git := gitcheck.New()
				v.section("Dependencies", v.depItems())
				v.section("Configuration", v.configItems())
				v.section("Hardcoded paths", v.scanItems())
				v.section("Commit signing", gitItems(git.SigningItems()))
				v.section("SSH keys", gitItems(git.SSHItems(env.paths.Home())))
				v.section("Pre-commit hook", gitItems(git.HookItems(env.paths.RepoRoot(), env.cfg.Hook.ID)))
			}

			fmt.Println(style.Rule("Summary"))
			if v.failed == 0 {
				fmt.Println(style.Success(fmt.Sprintf("All %d checks passed.", v.passed)))
				return nil
			}
			fmt.Println(style.Error(fmt.Sprintf("%d of %d checks failed.", v.failed, v.passed+v.failed)))
			return errFailure
		},
	}

	cmd.Flags().BoolVar(&linksOnly, "links-only", false, "Only check symlink health")

	return cmd
}

// checkItem is a single named pass/fail line within a verify section.
type checkItem struct {
	Name   string
	OK     bool
	Detail string
}

func gitItems(items []gitcheck.Item) []checkItem {
	out := make([]checkItem, 0, len(items))
	for _, item := range items {
		out = append(out, checkItem{Name: item.Name, OK: item.OK, Detail: item.Detail})
	}
	return out
}

// verifyRun accumulates pass/fail counts across sections. Verify never
// mutates the environment; every item is a read-only probe.
type verifyRun struct {
	env    *runEnv
	passed int
	failed int
}

func (v *verifyRun) section(title string, items []checkItem) {
	fmt.Println(style.Rule(title))
	if len(items) == 0 {
		fmt.Println(style.Muted("nothing to check"))
		return
	}
	for _, item := range items {
		label := style.OKLabel()
		if !item.OK {
			label = style.FailLabel()
			v.failed++
		} else {
			v.passed++
		}
		fmt.Printf("%s%s", label, item.Name)
		if item.Detail != "" {
			fmt.Printf("  %s", style.Muted(item.Detail))
		}
		fmt.Println()
	}
}

func (v *verifyRun) symlinkItems() []checkItem {
	var items []checkItem
	results := links.Verify(links.ResolveAll(v.env.paths, v.env.cfg.Links))
	for _, res := range results {
		items = append(items, checkItem{
			Name:   fmt.Sprintf("%-8s %s", res.Status.Label(), res.Link.Spec.Key),
			OK:     res.Status == links.StatusLinked,
			Detail: res.Detail,
		})
	}
	return items
}

func (v *verifyRun) depItems() []checkItem {
	var items []checkItem
	for _, res := range deps.RunAll(v.env.cfg.Checks, v.env.cfg.RequiredBy()) {
		detail := res.Target
		if len(res.Hints) > 0 {
			detail = fmt.Sprintf("%s (%s)", res.Target, strings.Join(res.Hints, "; "))
		}
		items = append(items, checkItem{
			Name:   res.Check.Label,
			OK:     res.Status != deps.StatusMissing,
			Detail: detail,
		})
	}
	return items
}

func (v *verifyRun) configItems() []checkItem {
	problems := v.env.cfg.Problems()
	if len(problems) == 0 {
		return []checkItem{{Name: "configuration is valid", OK: true}}
	}
	var items []checkItem
	for _, p := range problems {
		items = append(items, checkItem{Name: p, OK: false})
	}
	return items
}

func (v *verifyRun) scanItems() []checkItem {
	var files []string
	for _, f := range v.env.cfg.Scan.Files {
		files = append(files, v.env.paths.SourcePath(f))
	}
	matches, err := scanner.ScanFiles(files)
	if err != nil {
		return []checkItem{{Name: "path scan", OK: false, Detail: err.Error()}}
	}
	if len(matches) == 0 {
		return []checkItem{{Name: "no hardcoded home paths", OK: true}}
	}
	var items []checkItem
	for _, m := range matches {
		items = append(items, checkItem{
			Name:   fmt.Sprintf("%s:%d", v.env.paths.Display(m.File), m.Line),
			OK:     false,
			Detail: m.Text,
		})
	}
	return items
}
