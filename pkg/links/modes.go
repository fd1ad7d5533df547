package links

import (
	"github.com/arthur-debert/dotup/pkg/errors"
)

// ConflictMode selects what happens when a link target already exists and is
// not the correct symlink.
type ConflictMode string

const (
	// ModePrompt asks the operator per link (wizard only)
	ModePrompt ConflictMode = "prompt"

	// ModeBackup renames the existing target to a unique backup, then links
	ModeBackup ConflictMode = "backup"

	// ModeOverwrite removes the existing target, then links
	ModeOverwrite ConflictMode = "overwrite"

	// ModeSkip leaves conflicting targets untouched
	ModeSkip ConflictMode = "skip"
)

// ParseMode validates a mode string from the command line
func ParseMode(s string) (ConflictMode, error) {
	switch ConflictMode(s) {
	case ModeBackup, ModeOverwrite, ModeSkip:
		return ConflictMode(s), nil
	case ModePrompt:
		return ModePrompt, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown mode %q (want backup, overwrite or skip)", s)
	}
}

// Destructive reports whether the mode can modify existing targets
func (m ConflictMode) Destructive() bool {
	return m == ModeBackup || m == ModeOverwrite
}
