// Package deps runs environment dependency checks declared in the config:
// commands on PATH, directories and files that the shell setup relies on.
package deps

import (
	"bufio"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/arthur-debert/dotup/pkg/config"
	"github.com/arthur-debert/dotup/pkg/errors"
	"github.com/arthur-debert/dotup/pkg/logging"
	"github.com/arthur-debert/dotup/pkg/paths"
)

// Status is the outcome of one dependency check.
type Status string

const (
	StatusOK      Status = "ok"
	StatusMissing Status = "missing"

	// StatusSkipped means the check's pattern gate did not match the rc file
	StatusSkipped Status = "skipped"
)

// Result is the outcome of one check plus failure hints.
type Result struct {
	Check  config.DepCheck
	Status Status

	// Target is the probed target with $HOME resolved (display only)
	Target string

	// Hints carries "required by" and install hints for failures
	Hints []string
}

// RunAll evaluates every check, sorted by label, attaching reverse-dependency
// and install hints to failures. requiredBy comes from Config.RequiredBy.
func RunAll(checks []config.DepCheck, requiredBy map[string][]string) []Result {
	sorted := make([]config.DepCheck, len(checks))
	copy(sorted, checks)
	sort.Slice(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Label) < strings.ToLower(sorted[j].Label)
	})

	results := make([]Result, 0, len(sorted))
	for _, check := range sorted {
		results = append(results, run(check, requiredBy))
	}
	return results
}

// RunGated evaluates checks against an rc file: checks whose pattern does not
// match any non-comment line are skipped rather than failed.
func RunGated(checks []config.DepCheck, requiredBy map[string][]string, rcPath string) ([]Result, error) {
	sorted := make([]config.DepCheck, len(checks))
	copy(sorted, checks)
	sort.Slice(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Label) < strings.ToLower(sorted[j].Label)
	})

	results := make([]Result, 0, len(sorted))
	for _, check := range sorted {
		if check.Pattern != "" {
			referenced, err := referencedIn(rcPath, check.Pattern)
			if err != nil {
				return nil, err
			}
			if !referenced {
				results = append(results, Result{
					Check:  check,
					Status: StatusSkipped,
					Target: ResolveTarget(check.Target),
				})
				continue
			}
		}
		results = append(results, run(check, requiredBy))
	}
	return results, nil
}

func run(check config.DepCheck, requiredBy map[string][]string) Result {
	logger := logging.GetLogger("deps")

	target := ResolveTarget(check.Target)
	res := Result{Check: check, Target: target}

	if probe(check.Kind, target) {
		res.Status = StatusOK
		return res
	}

	res.Status = StatusMissing
	if deps := requiredBy[check.Label]; len(deps) > 0 {
		res.Hints = append(res.Hints, "required by: "+strings.Join(deps, ", "))
	}
	if check.Install != "" {
		res.Hints = append(res.Hints, "install: "+check.Install)
	}

	logger.Debug().Str("label", check.Label).Str("target", target).Msg("dependency missing")
	return res
}

// probe evaluates the predicate for a check kind. Unknown kinds are rejected
// by config validation before this is reached.
func probe(kind, target string) bool {
	switch kind {
	case config.KindCommand:
		_, err := exec.LookPath(target)
		return err == nil
	case config.KindDir:
		info, err := os.Stat(target)
		return err == nil && info.IsDir()
	case config.KindFile:
		info, err := os.Stat(target)
		return err == nil && info.Mode().IsRegular()
	default:
		return false
	}
}

// ResolveTarget substitutes $HOME from the environment. The resolved value is
// never written back into configuration.
func ResolveTarget(target string) string {
	return strings.ReplaceAll(target, "$HOME", paths.Home())
}

// referencedIn reports whether any non-comment line of the rc file matches
// the pattern.
func referencedIn(rcPath, pattern string) (bool, error) {
	regex, err := regexp.Compile(pattern)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrConfigValid, "invalid check pattern %q", pattern)
	}

	f, err := os.Open(rcPath)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot open %s", rcPath)
	}
	defer func() { _ = f.Close() }()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), "#") {
			continue
		}
		if regex.MatchString(line) {
			return true, nil
		}
	}
	if err := sc.Err(); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", rcPath)
	}
	return false, nil
}

// FindRcFile locates the rc file to audit: the explicit argument, then
// ./<name> in the working directory, then ~/<name>.
func FindRcFile(arg, name string) (string, error) {
	if arg != "" {
		if _, err := os.Stat(arg); err != nil {
			return "", errors.Wrapf(err, errors.ErrNotFound, "rc file not found at %s", arg)
		}
		return arg, nil
	}

	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, name)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}
	}

	candidate := filepath.Join(paths.Home(), name)
	if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
		return candidate, nil
	}

	return "", errors.Newf(errors.ErrNotFound, "%s not found; provide a path argument", name)
}
