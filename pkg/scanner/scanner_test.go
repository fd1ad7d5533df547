package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestScanFiles(t *testing.T) {
	t.Run("clean file yields no matches", func(t *testing.T) {
		path := writeFile(t, ".zshrc", "export PATH=$HOME/bin:$PATH\nalias ll='ls -l'\n")

		matches, err := ScanFiles([]string{path})
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("macos home path is reported with line and text", func(t *testing.T) {
		path := writeFile(t, ".zshrc", "alias ll='ls -l'\nsource /Users/alice/config\n")

		matches, err := ScanFiles([]string{path})
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, path, matches[0].File)
		assert.Equal(t, 2, matches[0].Line)
		assert.Equal(t, "/Users/alice", matches[0].Text)
	})

	t.Run("linux home path is reported", func(t *testing.T) {
		path := writeFile(t, "setup.sh", "cp rc /home/bob/.zshrc\n")

		matches, err := ScanFiles([]string{path})
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "/home/bob", matches[0].Text)
	})

	t.Run("multiple files aggregate matches", func(t *testing.T) {
		clean := writeFile(t, "a", "nothing here\n")
		dirtyA := writeFile(t, "b", "/Users/x\n")
		dirtyB := writeFile(t, "c", "ok\nok\n/home/y rest of line\n")

		matches, err := ScanFiles([]string{clean, dirtyA, dirtyB})
		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, dirtyA, matches[0].File)
		assert.Equal(t, 1, matches[0].Line)
		assert.Equal(t, dirtyB, matches[1].File)
		assert.Equal(t, 3, matches[1].Line)
	})

	t.Run("missing files are skipped", func(t *testing.T) {
		matches, err := ScanFiles([]string{filepath.Join(t.TempDir(), "deleted")})
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("empty input succeeds", func(t *testing.T) {
		matches, err := ScanFiles(nil)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("directories are skipped", func(t *testing.T) {
		matches, err := ScanFiles([]string{t.TempDir()})
		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}

func TestHomePathPattern(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		want  string
		match bool
	}{
		{"users path", "source /Users/alice/config", "/Users/alice", true},
		{"home path", "ls /home/bob", "/home/bob", true},
		{"home env var is fine", "export P=$HOME/bin", "", false},
		{"bare /home/ without name", "cd /home/", "", false},
		{"usr share is fine", "/usr/share/zsh", "", false},
		{"tilde is fine", "source ~/.zshrc", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := homePathPattern.FindString(tt.line)
			if tt.match {
				assert.Equal(t, tt.want, got)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}
