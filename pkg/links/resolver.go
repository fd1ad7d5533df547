package links

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/dotup/pkg/errors"
	"github.com/arthur-debert/dotup/pkg/logging"
)

// Action records what the resolver did (or would do) for one link.
type Action string

const (
	ActionLinked        Action = "linked"
	ActionAlreadyLinked Action = "already-linked"
	ActionSkipped       Action = "skipped"
	ActionFailed        Action = "failed"
)

// Result is the per-link outcome of an Apply or Verify run.
type Result struct {
	Link   Link
	Status Status
	Detail string
	Action Action

	// Backup is the path the previous target was renamed to, if any
	Backup string

	// DryRun marks results that describe planned, not performed, work
	DryRun bool

	Err error
}

// Chooser decides the conflict mode for a single conflicting link when
// running in prompt mode. Returning ErrCancelled aborts the whole run.
type Chooser interface {
	Choose(link Link, status Status, detail string) (ConflictMode, error)
}

// Linker applies the resolution procedure over a set of links.
type Linker struct {
	// DryRun previews actions without touching the filesystem
	DryRun bool

	// Chooser handles per-link decisions in prompt mode; required only
	// when Apply is called with ModePrompt
	Chooser Chooser
}

// Apply runs the conflict-resolution procedure for every link using the
// given mode. Missing sources are a configuration error detected up front:
// no filesystem mutation happens if any selected source is gone. Per-link
// filesystem failures are recorded in the results and do not stop the run.
func (ln *Linker) Apply(items []Link, mode ConflictMode) ([]Result, error) {
	logger := logging.GetLogger("links")

	if mode == ModePrompt && ln.Chooser == nil {
		return nil, errors.New(errors.ErrInternal, "prompt mode requires a chooser")
	}

	if err := checkSources(items); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(items))
	for _, item := range items {
		status, detail := item.Check()
		res := Result{Link: item, Status: status, Detail: detail, DryRun: ln.DryRun}

		switch status {
		case StatusLinked:
			res.Action = ActionAlreadyLinked

		case StatusAbsent:
			res.Action = ActionLinked
			res.Err = ln.createLink(item)

		case StatusTargetDir:
			res.Action = ActionFailed
			res.Err = errors.Newf(errors.ErrTargetIsDir, "target is a directory: %s", item.Target)

		default:
			// StatusExists, StatusLinkedElsewhere, StatusBroken
			effective := mode
			if mode == ModePrompt {
				choice, err := ln.Chooser.Choose(item, status, detail)
				if err != nil {
					return results, err
				}
				effective = choice
			}

			switch effective {
			case ModeSkip:
				res.Action = ActionSkipped

			case ModeBackup:
				backup, err := ln.backupTarget(item)
				if err != nil {
					res.Action = ActionFailed
					res.Err = err
					break
				}
				res.Backup = backup
				res.Action = ActionLinked
				res.Err = ln.createLink(item)

			case ModeOverwrite:
				if err := ln.removeTarget(item); err != nil {
					res.Action = ActionFailed
					res.Err = err
					break
				}
				res.Action = ActionLinked
				res.Err = ln.createLink(item)

			default:
				res.Action = ActionFailed
				res.Err = errors.Newf(errors.ErrInvalidInput, "mode %q cannot resolve an existing target", effective)
			}
		}

		if res.Err != nil {
			res.Action = ActionFailed
			logger.Error().Err(res.Err).Str("key", item.Spec.Key).Msg("link failed")
		} else {
			logger.Debug().
				Str("key", item.Spec.Key).
				Str("action", string(res.Action)).
				Bool("dryRun", ln.DryRun).
				Msg("link resolved")
		}
		results = append(results, res)
	}

	return results, nil
}

// Verify re-checks every link without mutating anything.
func Verify(items []Link) []Result {
	results := make([]Result, 0, len(items))
	for _, item := range items {
		status, detail := item.Check()
		res := Result{Link: item, Status: status, Detail: detail}
		if status == StatusLinked {
			res.Action = ActionAlreadyLinked
		} else {
			res.Action = ActionFailed
			res.Err = errors.Newf(errors.ErrCheckFailed, "%s: %s", status.Label(), detail)
		}
		results = append(results, res)
	}
	return results
}

// FailedCount returns how many results carry an error
func FailedCount(results []Result) int {
	count := 0
	for _, r := range results {
		if r.Err != nil {
			count++
		}
	}
	return count
}

// checkSources verifies every source exists before any mutation happens
func checkSources(items []Link) error {
	var missing []string
	for _, item := range items {
		if _, err := os.Lstat(item.Source); err != nil {
			missing = append(missing, item.Source)
		}
	}
	if len(missing) > 0 {
		return errors.Newf(errors.ErrSourceMissing, "source file(s) missing: %s", strings.Join(missing, ", "))
	}
	return nil
}

// createLink creates the symlink, making parent directories as needed
func (ln *Linker) createLink(item Link) error {
	if ln.DryRun {
		return nil
	}

	parent := filepath.Dir(item.Target)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return wrapFsErr(err, errors.ErrDirCreate, "cannot create parent directory %s", parent)
	}

	if err := os.Symlink(item.Source, item.Target); err != nil {
		if os.IsPermission(err) {
			return errors.Wrapf(err, errors.ErrPermission, "cannot create link %s", item.Target)
		}
		return errors.Wrapf(err, errors.ErrSymlinkCreate,
			"cannot create link %s (if this filesystem does not support symlinks, move the target elsewhere)", item.Target)
	}
	return nil
}

// backupTarget renames the existing target to a unique timestamped backup
// in the same directory.
func (ln *Linker) backupTarget(item Link) (string, error) {
	backup, err := backupPathFor(item.Target, time.Now())
	if err != nil {
		return "", err
	}
	if ln.DryRun {
		return backup, nil
	}
	if err := os.Rename(item.Target, backup); err != nil {
		if os.IsPermission(err) {
			return "", errors.Wrapf(err, errors.ErrPermission, "cannot back up %s", item.Target)
		}
		return "", errors.Wrapf(err, errors.ErrBackupCreate, "cannot back up %s", item.Target)
	}
	return backup, nil
}

// removeTarget removes the existing target. Real directories are never
// removed; that state is rejected before this is reached.
func (ln *Linker) removeTarget(item Link) error {
	if ln.DryRun {
		return nil
	}
	if err := os.Remove(item.Target); err != nil {
		if os.IsPermission(err) {
			return errors.Wrapf(err, errors.ErrPermission, "cannot remove %s", item.Target)
		}
		return errors.Wrapf(err, errors.ErrFileRemove, "cannot remove %s", item.Target)
	}
	return nil
}

// backupPathFor builds a timestamped backup name, appending a counter if a
// backup from the same second already exists.
func backupPathFor(target string, now time.Time) (string, error) {
	stamp := now.Format("20060102-150405")
	base := fmt.Sprintf("%s.bak.%s", target, stamp)

	candidate := base
	for i := 1; ; i++ {
		if _, err := os.Lstat(candidate); err != nil {
			if os.IsNotExist(err) {
				return candidate, nil
			}
			return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot probe backup path %s", candidate)
		}
		if i > 1000 {
			return "", errors.Newf(errors.ErrBackupCreate, "cannot find a free backup name for %s", target)
		}
		candidate = fmt.Sprintf("%s.%d", base, i)
	}
}

func wrapFsErr(err error, code errors.ErrorCode, format string, args ...interface{}) error {
	if os.IsPermission(err) {
		return errors.Wrapf(err, errors.ErrPermission, format, args...)
	}
	return errors.Wrapf(err, code, format, args...)
}
