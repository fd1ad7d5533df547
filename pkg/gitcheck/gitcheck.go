// Package gitcheck verifies the commit-side hygiene of the dotfiles repo:
// GPG commit signing is configured, an SSH key pair exists, and the
// pre-commit hook that runs the hardcoded-path scan is installed.
package gitcheck

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/dotup/pkg/errors"
)

// Runner executes external commands. Abstracted so tests can stub out git
// and gpg.
type Runner interface {
	Output(name string, args ...string) (string, error)
}

type execRunner struct{}

func (execRunner) Output(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	return string(out), err
}

// Item is one named pass/fail check result.
type Item struct {
	Name   string
	OK     bool
	Detail string
}

// Checker runs git-related verification checks.
type Checker struct {
	Run Runner
}

// New returns a Checker backed by real command execution
func New() *Checker {
	return &Checker{Run: execRunner{}}
}

// configGet reads a global git config value, empty when unset
func (c *Checker) configGet(key string) string {
	out, err := c.Run.Output("git", "config", "--global", key)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// SigningItems checks that commit signing is enabled and the signing key is
// present in the GPG keyring.
func (c *Checker) SigningItems() []Item {
	var items []Item

	gpgSign := c.configGet("commit.gpgsign")
	if gpgSign == "true" {
		items = append(items, Item{Name: "commit.gpgsign = true", OK: true})
	} else {
		detail := gpgSign
		if detail == "" {
			detail = "(unset)"
		}
		items = append(items, Item{Name: "commit.gpgsign", OK: false, Detail: detail})
	}

	signingKey := c.configGet("user.signingkey")
	if signingKey == "" {
		items = append(items, Item{Name: "user.signingkey", OK: false, Detail: "not set"})
		return items
	}

	out, err := c.Run.Output("gpg", "--list-secret-keys", "--keyid-format", "long", signingKey)
	if err == nil && strings.Contains(out, signingKey) {
		items = append(items, Item{Name: "signing key " + truncateKey(signingKey), OK: true})
	} else {
		items = append(items, Item{
			Name:   "signing key " + truncateKey(signingKey),
			OK:     false,
			Detail: "not found in GPG keyring",
		})
	}

	return items
}

// sshKeyNames are the standard key file names, preferred order first
var sshKeyNames = []string{"id_ed25519", "id_ecdsa", "id_rsa"}

// SSHItems checks that a usable SSH key pair exists under <home>/.ssh:
// a private key with its matching .pub next to it.
func (c *Checker) SSHItems(home string) []Item {
	sshDir := filepath.Join(home, ".ssh")

	for _, name := range sshKeyNames {
		priv := filepath.Join(sshDir, name)
		if _, err := os.Stat(priv); err != nil {
			continue
		}
		if _, err := os.Stat(priv + ".pub"); err != nil {
			return []Item{{
				Name:   "ssh key " + name,
				OK:     false,
				Detail: "public half missing (" + name + ".pub)",
			}}
		}
		return []Item{{Name: "ssh key pair (" + name + ")", OK: true}}
	}

	return []Item{{
		Name:   "ssh key pair",
		OK:     false,
		Detail: "no key found under ~/.ssh (run: ssh-keygen -t ed25519)",
	}}
}

func truncateKey(key string) string {
	if len(key) > 16 {
		return key[:16] + "..."
	}
	return key
}

// preCommitConfig mirrors the subset of .pre-commit-config.yaml we need
type preCommitConfig struct {
	Repos []struct {
		Repo  string `yaml:"repo"`
		Hooks []struct {
			ID string `yaml:"id"`
		} `yaml:"hooks"`
	} `yaml:"repos"`
}

// HookItems checks that the repo declares the expected hook id in
// .pre-commit-config.yaml and that the git pre-commit hook is installed.
func (c *Checker) HookItems(repoRoot, hookID string) []Item {
	var items []Item

	declared, err := hookDeclared(filepath.Join(repoRoot, ".pre-commit-config.yaml"), hookID)
	if err != nil {
		items = append(items, Item{Name: ".pre-commit-config.yaml", OK: false, Detail: err.Error()})
	} else if declared {
		items = append(items, Item{Name: "hook " + hookID + " declared", OK: true})
	} else {
		items = append(items, Item{Name: "hook " + hookID, OK: false, Detail: "not declared in .pre-commit-config.yaml"})
	}

	hookFile := filepath.Join(repoRoot, ".git", "hooks", "pre-commit")
	data, err := os.ReadFile(hookFile)
	if err == nil && strings.Contains(string(data), "pre-commit") {
		items = append(items, Item{Name: "git hooks installed", OK: true})
	} else {
		items = append(items, Item{Name: "git hooks", OK: false, Detail: "not installed (run: pre-commit install)"})
	}

	return items
}

// hookDeclared parses the pre-commit config and looks for the hook id
func hookDeclared(path, hookID string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path)
	}

	var cfg preCommitConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return false, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse %s", path)
	}

	for _, repo := range cfg.Repos {
		for _, hook := range repo.Hooks {
			if hook.ID == hookID {
				return true, nil
			}
		}
	}
	return false, nil
}
