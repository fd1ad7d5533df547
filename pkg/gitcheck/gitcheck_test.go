package gitcheck

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner maps "name arg1 arg2..." prefixes to canned outputs
type fakeRunner struct {
	outputs map[string]string
}

func (f fakeRunner) Output(name string, args ...string) (string, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	for prefix, out := range f.outputs {
		if strings.HasPrefix(key, prefix) {
			return out, nil
		}
	}
	return "", errors.New("command failed")
}

func TestSigningItems(t *testing.T) {
	t.Run("all configured", func(t *testing.T) {
		c := &Checker{Run: fakeRunner{outputs: map[string]string{
			"git config --global commit.gpgsign":  "true\n",
			"git config --global user.signingkey": "ABCDEF0123456789\n",
			"gpg --list-secret-keys":              "sec rsa4096/ABCDEF0123456789\n",
		}}}

		items := c.SigningItems()
		require.Len(t, items, 2)
		assert.True(t, items[0].OK)
		assert.True(t, items[1].OK)
	})

	t.Run("signing disabled and key unset", func(t *testing.T) {
		c := &Checker{Run: fakeRunner{outputs: map[string]string{}}}

		items := c.SigningItems()
		require.Len(t, items, 2)
		assert.False(t, items[0].OK)
		assert.Equal(t, "(unset)", items[0].Detail)
		assert.False(t, items[1].OK)
		assert.Equal(t, "not set", items[1].Detail)
	})

	t.Run("key missing from keyring", func(t *testing.T) {
		c := &Checker{Run: fakeRunner{outputs: map[string]string{
			"git config --global commit.gpgsign":  "true\n",
			"git config --global user.signingkey": "ABCDEF0123456789\n",
		}}}

		items := c.SigningItems()
		require.Len(t, items, 2)
		assert.True(t, items[0].OK)
		assert.False(t, items[1].OK)
		assert.Equal(t, "not found in GPG keyring", items[1].Detail)
	})
}

func TestSSHItems(t *testing.T) {
	writeKey := func(t *testing.T, home, name string, withPub bool) {
		t.Helper()
		sshDir := filepath.Join(home, ".ssh")
		require.NoError(t, os.MkdirAll(sshDir, 0700))
		require.NoError(t, os.WriteFile(filepath.Join(sshDir, name), []byte("private"), 0600))
		if withPub {
			require.NoError(t, os.WriteFile(filepath.Join(sshDir, name+".pub"), []byte("public"), 0644))
		}
	}

	t.Run("ed25519 pair present", func(t *testing.T) {
		home := t.TempDir()
		writeKey(t, home, "id_ed25519", true)

		items := New().SSHItems(home)
		require.Len(t, items, 1)
		assert.True(t, items[0].OK)
		assert.Contains(t, items[0].Name, "id_ed25519")
	})

	t.Run("rsa fallback", func(t *testing.T) {
		home := t.TempDir()
		writeKey(t, home, "id_rsa", true)

		items := New().SSHItems(home)
		require.Len(t, items, 1)
		assert.True(t, items[0].OK)
		assert.Contains(t, items[0].Name, "id_rsa")
	})

	t.Run("public half missing", func(t *testing.T) {
		home := t.TempDir()
		writeKey(t, home, "id_ed25519", false)

		items := New().SSHItems(home)
		require.Len(t, items, 1)
		assert.False(t, items[0].OK)
		assert.Contains(t, items[0].Detail, "id_ed25519.pub")
	})

	t.Run("no keys at all", func(t *testing.T) {
		items := New().SSHItems(t.TempDir())
		require.Len(t, items, 1)
		assert.False(t, items[0].OK)
		assert.Contains(t, items[0].Detail, "ssh-keygen")
	})
}

func TestHookItems(t *testing.T) {
	setupRepo := func(t *testing.T, preCommitYAML, hookScript string) string {
		t.Helper()
		repo := t.TempDir()
		if preCommitYAML != "" {
			require.NoError(t, os.WriteFile(filepath.Join(repo, ".pre-commit-config.yaml"), []byte(preCommitYAML), 0644))
		}
		if hookScript != "" {
			hooksDir := filepath.Join(repo, ".git", "hooks")
			require.NoError(t, os.MkdirAll(hooksDir, 0755))
			require.NoError(t, os.WriteFile(filepath.Join(hooksDir, "pre-commit"), []byte(hookScript), 0755))
		}
		return repo
	}

	declared := `repos:
  - repo: local
    hooks:
      - id: dotup-check
        name: dotup hardcoded path check
        entry: dotup check
        language: system
`

	t.Run("declared and installed", func(t *testing.T) {
		repo := setupRepo(t, declared, "#!/bin/sh\nexec pre-commit run\n")
		c := New()

		items := c.HookItems(repo, "dotup-check")
		require.Len(t, items, 2)
		assert.True(t, items[0].OK)
		assert.True(t, items[1].OK)
	})

	t.Run("hook id not declared", func(t *testing.T) {
		repo := setupRepo(t, declared, "#!/bin/sh\nexec pre-commit run\n")
		c := New()

		items := c.HookItems(repo, "other-id")
		assert.False(t, items[0].OK)
	})

	t.Run("config file missing", func(t *testing.T) {
		repo := setupRepo(t, "", "")
		c := New()

		items := c.HookItems(repo, "dotup-check")
		require.Len(t, items, 2)
		assert.False(t, items[0].OK)
		assert.False(t, items[1].OK)
		assert.Contains(t, items[1].Detail, "pre-commit install")
	})
}
