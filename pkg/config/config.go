// Package config loads and validates the dotup.toml configuration that
// declares link specs, dependency checks, and scan settings. Configuration
// is layered: embedded defaults, then the repo config file, then DOTUP_*
// environment variables.
package config

import (
	"strings"

	"github.com/arthur-debert/dotup/pkg/errors"
)

// LinkSpec declares a mapping between a repo-tracked config file and its
// home-directory location. Immutable during a run.
type LinkSpec struct {
	// Key identifies the spec on the command line ("zshrc", ".gitconfig", ...)
	Key string `koanf:"key" toml:"key"`

	// Description is shown in listings and the wizard
	Description string `koanf:"description" toml:"description"`

	// Source is the repo-relative path of the tracked file. Defaults to Key.
	Source string `koanf:"source" toml:"source,omitempty"`

	// Target is the home-relative path of the link. Defaults to Key.
	Target string `koanf:"target" toml:"target,omitempty"`
}

// DepCheck declares an environment dependency to verify.
type DepCheck struct {
	// Label is the display name and graph node id
	Label string `koanf:"label" toml:"label"`

	// Kind selects the predicate: "command", "dir" or "file"
	Kind string `koanf:"kind" toml:"kind"`

	// Target is the command name or path to probe. "$HOME" is resolved from
	// the environment at check time, never stored resolved.
	Target string `koanf:"target" toml:"target"`

	// Pattern optionally gates the check on the rc file referencing it
	Pattern string `koanf:"pattern" toml:"pattern,omitempty"`

	// Depends lists labels of checks this one requires
	Depends []string `koanf:"depends" toml:"depends,omitempty"`

	// Install is an optional URL hinted on failure
	Install string `koanf:"install" toml:"install,omitempty"`
}

// ScanConfig configures the hardcoded-path scan run by verify.
type ScanConfig struct {
	// Files lists repo-relative files to scan
	Files []string `koanf:"files" toml:"files"`
}

// HookConfig identifies the pre-commit hook entry expected by verify.
type HookConfig struct {
	// ID is the hook id looked up in .pre-commit-config.yaml
	ID string `koanf:"id" toml:"id"`
}

// Config is the root configuration.
type Config struct {
	Links  []LinkSpec `koanf:"links" toml:"links"`
	Checks []DepCheck `koanf:"checks" toml:"checks"`
	Scan   ScanConfig `koanf:"scan" toml:"scan"`
	Hook   HookConfig `koanf:"hook" toml:"hook"`
}

// DepCheck kinds
const (
	KindCommand = "command"
	KindDir     = "dir"
	KindFile    = "file"
)

// FindLink returns the LinkSpec with the given key, or false
func (c *Config) FindLink(key string) (LinkSpec, bool) {
	for _, l := range c.Links {
		if l.Key == key {
			return l, true
		}
	}
	return LinkSpec{}, false
}

// SelectLinks resolves a list of keys to LinkSpecs, preserving config order
// and dropping duplicates. Unknown keys are returned as an error listing
// every unresolved key.
func (c *Config) SelectLinks(keys []string) ([]LinkSpec, error) {
	seen := make(map[string]bool, len(keys))
	for _, raw := range keys {
		seen[strings.TrimSpace(raw)] = false
	}

	var chosen []LinkSpec
	for _, l := range c.Links {
		if marked, ok := seen[l.Key]; ok && !marked {
			chosen = append(chosen, l)
			seen[l.Key] = true
		}
	}

	var unknown []string
	for _, raw := range keys {
		if marked := seen[strings.TrimSpace(raw)]; !marked {
			unknown = append(unknown, raw)
		}
	}
	if len(unknown) > 0 {
		return nil, errors.Newf(errors.ErrLinkNotFound, "unknown target(s): %s (use 'list' to see options)", strings.Join(unknown, ", "))
	}

	return chosen, nil
}

// normalize fills in defaulted LinkSpec fields
func (c *Config) normalize() {
	for i := range c.Links {
		if c.Links[i].Source == "" {
			c.Links[i].Source = c.Links[i].Key
		}
		if c.Links[i].Target == "" {
			c.Links[i].Target = c.Links[i].Key
		}
	}
}
