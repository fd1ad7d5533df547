// Package scanner implements the hardcoded home-path check used by the
// pre-commit gate and by verify. Absolute /Users/<name> or /home/<name>
// references break portability across machines; tracked files must stay
// $HOME-relative.
package scanner

import (
	"bufio"
	"os"
	"regexp"
	"strings"

	"github.com/arthur-debert/dotup/pkg/errors"
	"github.com/arthur-debert/dotup/pkg/logging"
)

// homePathPattern matches an absolute home directory reference:
// /Users/<name> (macOS) or /home/<name> (Linux), where name is one or more
// non-slash, non-whitespace characters.
var homePathPattern = regexp.MustCompile(`/(Users|home)/[^\s/]+`)

// Match is one hardcoded-path violation.
type Match struct {
	// File is the path of the scanned file
	File string

	// Line is the 1-based line number of the violation
	Line int

	// Text is the matched substring
	Text string
}

// ScanFiles scans every existing regular file in the list. Non-existent
// paths are skipped without error so the scanner can run over staged-file
// lists that include deletions. An empty input yields no matches.
func ScanFiles(files []string) ([]Match, error) {
	logger := logging.GetLogger("scanner")

	var matches []Match
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			if os.IsNotExist(err) {
				logger.Debug().Str("file", file).Msg("skipping missing file")
				continue
			}
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", file)
		}
		if !info.Mode().IsRegular() {
			continue
		}

		fileMatches, err := scanFile(file)
		if err != nil {
			return nil, err
		}
		matches = append(matches, fileMatches...)
	}

	return matches, nil
}

func scanFile(file string) ([]Match, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot open %s", file)
	}
	defer func() { _ = f.Close() }()

	var matches []Match
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()
		if found := homePathPattern.FindString(line); found != "" {
			matches = append(matches, Match{
				File: file,
				Line: lineno,
				Text: strings.TrimSpace(found),
			})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", file)
	}

	return matches, nil
}
