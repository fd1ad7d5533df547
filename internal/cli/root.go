// Package cli wires the dotup commands together.
package cli

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotup/internal/version"
	"github.com/arthur-debert/dotup/pkg/config"
	"github.com/arthur-debert/dotup/pkg/logging"
	"github.com/arthur-debert/dotup/pkg/paths"
	"github.com/arthur-debert/dotup/pkg/style"
)

// errFailure signals a non-zero exit after the failures have already been
// printed; main must not print it again.
var errFailure = stderrors.New("failures reported")

// IsQuietFailure reports whether err was already rendered to the user
func IsQuietFailure(err error) bool {
	return stderrors.Is(err, errFailure)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		dryRun    bool
	)

	rootCmd := &cobra.Command{
		Use:     "dotup",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			style.Setup()
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWizard(cmd, dryRun)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Preview changes without executing them")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newLinkCmd(&dryRun))
	rootCmd.AddCommand(newVerifyCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newDepsCmd())
	rootCmd.AddCommand(newGenconfigCmd())

	return rootCmd
}

// runEnv bundles the per-run path resolution and loaded configuration
type runEnv struct {
	paths *paths.Paths
	cfg   *config.Config
}

// initEnv resolves paths and loads the config. With validate set,
// structural config problems abort the run; verify passes false and
// reports them as a check section instead.
func initEnv(validate bool) (*runEnv, error) {
	p, err := paths.New("")
	if err != nil {
		return nil, err
	}

	if p.UsedFallback() {
		fmt.Fprintln(os.Stderr, style.Warning("Warning: Not in a git repository and DOTFILES_ROOT not set."))
		fmt.Fprintf(os.Stderr, "Using current directory: %s\n\n", p.RepoRoot())
	}

	cfg, err := config.Load(p.ConfigFile())
	if err != nil {
		return nil, err
	}

	if validate {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	return &runEnv{paths: p, cfg: cfg}, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(version.String())
		},
	}
}
