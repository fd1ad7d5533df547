// Package links implements the symlink engine: computing the state of each
// declared link and applying the conflict-resolution procedure that brings
// targets in line with their sources.
package links

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotup/pkg/config"
	"github.com/arthur-debert/dotup/pkg/paths"
)

// Status describes the current filesystem state of a link target.
type Status string

const (
	// StatusLinked means the target is a symlink resolving to the source
	StatusLinked Status = "linked"

	// StatusAbsent means the target does not exist
	StatusAbsent Status = "absent"

	// StatusExists means a regular file sits at the target
	StatusExists Status = "exists"

	// StatusLinkedElsewhere means the target is a symlink to something else
	StatusLinkedElsewhere Status = "linked-elsewhere"

	// StatusBroken means the target is a symlink whose destination is gone
	StatusBroken Status = "broken-link"

	// StatusTargetDir means a real directory sits at the target
	StatusTargetDir Status = "target-dir"

	// StatusMissingSource means the repo-side source file is gone
	StatusMissingSource Status = "missing-source"
)

var statusLabels = map[Status]string{
	StatusLinked:          "LINKED",
	StatusAbsent:          "ABSENT",
	StatusExists:          "EXISTS",
	StatusLinkedElsewhere: "OTHER",
	StatusBroken:          "BROKEN",
	StatusTargetDir:       "DIR",
	StatusMissingSource:   "MISSING",
}

// Label returns the fixed-width display label for a status
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Link is a LinkSpec resolved to absolute paths for a single run.
type Link struct {
	Spec config.LinkSpec

	// Source is the absolute path of the repo-tracked file
	Source string

	// Target is the absolute path of the home-directory link
	Target string
}

// ResolveAll resolves specs against the run's repo root and home directory
func ResolveAll(p *paths.Paths, specs []config.LinkSpec) []Link {
	resolved := make([]Link, 0, len(specs))
	for _, spec := range specs {
		resolved = append(resolved, Link{
			Spec:   spec,
			Source: p.SourcePath(spec.Source),
			Target: p.TargetPath(spec.Target),
		})
	}
	return resolved
}

// Check returns the current status of the link and a short detail string.
// It never mutates the filesystem.
func (l Link) Check() (Status, string) {
	if _, err := os.Lstat(l.Source); err != nil {
		return StatusMissingSource, "source missing"
	}

	info, err := os.Lstat(l.Target)
	if err != nil {
		return StatusAbsent, "target missing"
	}

	if info.Mode()&os.ModeSymlink != 0 {
		dest, readErr := os.Readlink(l.Target)
		resolved, evalErr := filepath.EvalSymlinks(l.Target)
		if evalErr != nil {
			return StatusBroken, fmt.Sprintf("points to %s", dest)
		}

		source := l.Source
		if resolvedSource, err := filepath.EvalSymlinks(l.Source); err == nil {
			source = resolvedSource
		}
		if resolved == source {
			return StatusLinked, fmt.Sprintf("points to %s", resolved)
		}
		if readErr == nil {
			return StatusLinkedElsewhere, fmt.Sprintf("points to %s", dest)
		}
		return StatusLinkedElsewhere, "points elsewhere"
	}

	if info.IsDir() {
		return StatusTargetDir, "target is a directory"
	}

	return StatusExists, "target exists"
}
