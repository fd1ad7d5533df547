package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// sampleConfig is the starting point emitted by 'dotup genconfig'
var sampleConfig = Config{
	Links: []LinkSpec{
		{Key: ".zshrc", Description: "Zsh startup file"},
		{Key: ".gitconfig", Description: "Git configuration"},
	},
	Checks: []DepCheck{
		{Label: "git", Kind: KindCommand, Target: "git"},
		{Label: "zsh", Kind: KindCommand, Target: "zsh"},
		{
			Label:   "oh-my-zsh",
			Kind:    KindDir,
			Target:  "$HOME/.oh-my-zsh",
			Pattern: `oh-my-zsh`,
			Depends: []string{"zsh"},
			Install: "https://ohmyz.sh",
		},
	},
	Scan: ScanConfig{Files: []string{".zshrc"}},
	Hook: HookConfig{ID: "dotup-check"},
}

const generateHeader = `# dotup configuration.
#
# [[links]] entries map repo-tracked files to home-directory symlinks.
# source defaults to the key (repo-relative); target defaults to the key
# (home-relative).
#
# [[checks]] entries are environment dependencies verified by 'dotup verify'
# and 'dotup deps'. Targets may reference $HOME; it is resolved from the
# environment at check time.

`

// GenerateConfigContent renders a commented starter dotup.toml
func GenerateConfigContent() (string, error) {
	data, err := toml.Marshal(sampleConfig)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(generateHeader)
	b.Write(data)
	return b.String(), nil
}
