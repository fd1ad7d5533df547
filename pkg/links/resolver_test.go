package links

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotup/pkg/errors"
)

func readDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestApplyCreatesLink(t *testing.T) {
	link := newTestLink(t)
	linker := &Linker{}

	results, err := linker.Apply([]Link{link}, ModeSkip)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, ActionLinked, results[0].Action)
	require.NoError(t, results[0].Err)

	dest, err := os.Readlink(link.Target)
	require.NoError(t, err)
	assert.Equal(t, link.Source, dest)
}

func TestApplyIsIdempotent(t *testing.T) {
	link := newTestLink(t)
	linker := &Linker{}

	_, err := linker.Apply([]Link{link}, ModeSkip)
	require.NoError(t, err)

	before, err := os.Lstat(link.Target)
	require.NoError(t, err)

	results, err := linker.Apply([]Link{link}, ModeSkip)
	require.NoError(t, err)
	assert.Equal(t, ActionAlreadyLinked, results[0].Action)

	// Zero filesystem mutations on the second run
	after, err := os.Lstat(link.Target)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
	assert.Len(t, readDir(t, filepath.Dir(link.Target)), 1)
}

func TestApplyBackupMode(t *testing.T) {
	link := newTestLink(t)
	require.NoError(t, os.WriteFile(link.Target, []byte("local edits"), 0644))
	linker := &Linker{}

	results, err := linker.Apply([]Link{link}, ModeBackup)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.Equal(t, ActionLinked, results[0].Action)
	assert.NotEmpty(t, results[0].Backup)

	// Exactly one backup next to the new link
	names := readDir(t, filepath.Dir(link.Target))
	assert.Len(t, names, 2)

	// Backup holds the old content, target now points at source
	content, err := os.ReadFile(results[0].Backup)
	require.NoError(t, err)
	assert.Equal(t, "local edits", string(content))

	dest, err := os.Readlink(link.Target)
	require.NoError(t, err)
	assert.Equal(t, link.Source, dest)
}

func TestApplyBackupModePreservesPriorBackups(t *testing.T) {
	link := newTestLink(t)
	require.NoError(t, os.WriteFile(link.Target, []byte("first"), 0644))
	linker := &Linker{}

	results, err := linker.Apply([]Link{link}, ModeBackup)
	require.NoError(t, err)
	firstBackup := results[0].Backup

	// Replace the link with another plain file and back up again
	require.NoError(t, os.Remove(link.Target))
	require.NoError(t, os.WriteFile(link.Target, []byte("second"), 0644))

	results, err = linker.Apply([]Link{link}, ModeBackup)
	require.NoError(t, err)
	require.NoError(t, results[0].Err)
	assert.NotEqual(t, firstBackup, results[0].Backup)

	content, err := os.ReadFile(firstBackup)
	require.NoError(t, err)
	assert.Equal(t, "first", string(content))
}

func TestApplyOverwriteMode(t *testing.T) {
	link := newTestLink(t)
	require.NoError(t, os.WriteFile(link.Target, []byte("old"), 0644))
	linker := &Linker{}

	results, err := linker.Apply([]Link{link}, ModeOverwrite)
	require.NoError(t, err)
	require.NoError(t, results[0].Err)
	assert.Equal(t, ActionLinked, results[0].Action)
	assert.Empty(t, results[0].Backup)

	assert.Len(t, readDir(t, filepath.Dir(link.Target)), 1)
	dest, err := os.Readlink(link.Target)
	require.NoError(t, err)
	assert.Equal(t, link.Source, dest)
}

func TestApplySkipMode(t *testing.T) {
	link := newTestLink(t)
	require.NoError(t, os.WriteFile(link.Target, []byte("keep me"), 0644))
	linker := &Linker{}

	results, err := linker.Apply([]Link{link}, ModeSkip)
	require.NoError(t, err)
	assert.Equal(t, ActionSkipped, results[0].Action)

	content, err := os.ReadFile(link.Target)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(content))
}

func TestApplyTargetDirFails(t *testing.T) {
	link := newTestLink(t)
	require.NoError(t, os.Mkdir(link.Target, 0755))
	linker := &Linker{}

	results, err := linker.Apply([]Link{link}, ModeOverwrite)
	require.NoError(t, err)
	assert.Equal(t, ActionFailed, results[0].Action)
	assert.Equal(t, errors.ErrTargetIsDir, errors.GetCode(results[0].Err))

	// The directory survives untouched
	info, err := os.Stat(link.Target)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestApplyMissingSourceIsFatal(t *testing.T) {
	good := newTestLink(t)
	bad := newTestLink(t)
	require.NoError(t, os.Remove(bad.Source))
	linker := &Linker{}

	_, err := linker.Apply([]Link{good, bad}, ModeSkip)
	require.Error(t, err)
	assert.Equal(t, errors.ErrSourceMissing, errors.GetCode(err))

	// No mutation happened for the good link either
	_, statErr := os.Lstat(good.Target)
	assert.True(t, os.IsNotExist(statErr))
}

func TestApplyDryRun(t *testing.T) {
	link := newTestLink(t)
	require.NoError(t, os.WriteFile(link.Target, []byte("untouched"), 0644))
	linker := &Linker{DryRun: true}

	results, err := linker.Apply([]Link{link}, ModeBackup)
	require.NoError(t, err)
	require.NoError(t, results[0].Err)
	assert.True(t, results[0].DryRun)
	assert.Equal(t, ActionLinked, results[0].Action)

	// Nothing changed on disk
	content, err := os.ReadFile(link.Target)
	require.NoError(t, err)
	assert.Equal(t, "untouched", string(content))
	assert.Len(t, readDir(t, filepath.Dir(link.Target)), 1)
}

type fakeChooser struct {
	mode ConflictMode
	err  error
}

func (f fakeChooser) Choose(Link, Status, string) (ConflictMode, error) {
	return f.mode, f.err
}

func TestApplyPromptMode(t *testing.T) {
	t.Run("chooser decision is applied", func(t *testing.T) {
		link := newTestLink(t)
		require.NoError(t, os.WriteFile(link.Target, []byte("old"), 0644))
		linker := &Linker{Chooser: fakeChooser{mode: ModeOverwrite}}

		results, err := linker.Apply([]Link{link}, ModePrompt)
		require.NoError(t, err)
		assert.Equal(t, ActionLinked, results[0].Action)
	})

	t.Run("cancellation aborts the run", func(t *testing.T) {
		link := newTestLink(t)
		require.NoError(t, os.WriteFile(link.Target, []byte("old"), 0644))
		linker := &Linker{Chooser: fakeChooser{err: errors.ErrCancelled}}

		_, err := linker.Apply([]Link{link}, ModePrompt)
		require.Error(t, err)
		assert.True(t, errors.IsCancelled(err))
	})

	t.Run("prompt mode without chooser is an error", func(t *testing.T) {
		link := newTestLink(t)
		linker := &Linker{}

		_, err := linker.Apply([]Link{link}, ModePrompt)
		require.Error(t, err)
		assert.Equal(t, errors.ErrInternal, errors.GetCode(err))
	})
}

func TestVerify(t *testing.T) {
	linked := newTestLink(t)
	require.NoError(t, os.Symlink(linked.Source, linked.Target))

	conflicting := newTestLink(t)
	require.NoError(t, os.WriteFile(conflicting.Target, []byte("x"), 0644))

	results := Verify([]Link{linked, conflicting})
	require.Len(t, results, 2)

	assert.Equal(t, ActionAlreadyLinked, results[0].Action)
	assert.NoError(t, results[0].Err)

	assert.Equal(t, ActionFailed, results[1].Action)
	assert.Equal(t, errors.ErrCheckFailed, errors.GetCode(results[1].Err))

	assert.Equal(t, 1, FailedCount(results))
}

func TestBackupPathFor(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, ".zshrc")
	now := time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC)

	first, err := backupPathFor(target, now)
	require.NoError(t, err)
	assert.Equal(t, target+".bak.20250601-123045", first)

	// Occupy the first candidate; the next call appends a counter
	require.NoError(t, os.WriteFile(first, []byte("x"), 0644))

	second, err := backupPathFor(target, now)
	require.NoError(t, err)
	assert.Equal(t, first+".1", second)
}

func TestParseMode(t *testing.T) {
	for _, valid := range []string{"backup", "overwrite", "skip", "prompt"} {
		mode, err := ParseMode(valid)
		require.NoError(t, err)
		assert.Equal(t, ConflictMode(valid), mode)
	}

	_, err := ParseMode("force")
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidInput, errors.GetCode(err))
}

func TestDestructive(t *testing.T) {
	assert.True(t, ModeBackup.Destructive())
	assert.True(t, ModeOverwrite.Destructive())
	assert.False(t, ModeSkip.Destructive())
	assert.False(t, ModePrompt.Destructive())
}
