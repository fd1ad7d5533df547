// Package paths provides centralized path handling for dotup: locating the
// dotfiles repository root, resolving the home directory, and rendering
// paths home-relative for display.
package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotup/pkg/errors"
)

// Environment variable names
const (
	// EnvDotfilesRoot is the primary environment variable for the dotfiles location
	EnvDotfilesRoot = "DOTFILES_ROOT"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// ConfigFileName is the name of the link configuration file at the repo root
const ConfigFileName = "dotup.toml"

// Paths resolves repository and home locations for a single run
type Paths struct {
	repoRoot     string
	home         string
	usedFallback bool
}

// New creates a Paths instance rooted at repoRoot. If repoRoot is empty it is
// determined from DOTFILES_ROOT, then the enclosing git repository, then the
// current working directory as a fallback.
func New(repoRoot string) (*Paths, error) {
	p := &Paths{}

	if repoRoot == "" {
		root, usedFallback, err := findRepoRoot()
		if err != nil {
			return nil, err
		}
		p.repoRoot = root
		p.usedFallback = usedFallback
	} else {
		p.repoRoot = ExpandHome(repoRoot)
	}

	absRoot, err := filepath.Abs(p.repoRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for repo root")
	}
	p.repoRoot = absRoot

	p.home = Home()
	if p.home == "" {
		return nil, errors.New(errors.ErrNotFound, "cannot determine home directory")
	}

	return p, nil
}

// RepoRoot returns the dotfiles repository root
func (p *Paths) RepoRoot() string {
	return p.repoRoot
}

// UsedFallback reports whether the repo root fell back to the working directory
func (p *Paths) UsedFallback() bool {
	return p.usedFallback
}

// Home returns the resolved home directory
func (p *Paths) Home() string {
	return p.home
}

// ConfigFile returns the path of the link configuration file
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.repoRoot, ConfigFileName)
}

// SourcePath resolves a repo-relative source to an absolute path
func (p *Paths) SourcePath(rel string) string {
	return filepath.Join(p.repoRoot, rel)
}

// TargetPath resolves a home-relative target to an absolute path
func (p *Paths) TargetPath(rel string) string {
	return filepath.Join(p.home, rel)
}

// Display renders a path home-relative (~/...) when possible. Display form
// only; resolved home paths are never written into files.
func (p *Paths) Display(path string) string {
	if rel, err := filepath.Rel(p.home, path); err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.Join("~", rel)
	}
	return path
}

// Home returns the user's home directory, preferring the HOME env var for
// testability.
func Home() string {
	if home := os.Getenv(EnvHome); home != "" {
		return home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

// findRepoRoot determines the repo root using the following priority:
// 1. DOTFILES_ROOT environment variable
// 2. Git repository root ('git rev-parse --show-toplevel')
// 3. Current working directory (fallback, flagged for a warning)
func findRepoRoot() (string, bool, error) {
	if root := os.Getenv(EnvDotfilesRoot); root != "" {
		return ExpandHome(root), false, nil
	}

	gitRoot, err := findGitRoot()
	if err == nil && gitRoot != "" {
		return gitRoot, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}

	return cwd, true, nil
}

// findGitRoot attempts to find the root of the current git repository
func findGitRoot() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		// Not in a git repo or git not installed
		return "", err
	}

	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrNotFound, "git root is empty")
	}

	return gitRoot, nil
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	home := Home()
	if home == "" {
		return path
	}

	if len(path) == 1 {
		return home
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(home, path[2:])
	}

	// ~something (not the current user's home)
	return path
}
