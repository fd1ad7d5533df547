package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotup/pkg/config"
	"github.com/arthur-debert/dotup/pkg/errors"
	"github.com/arthur-debert/dotup/pkg/links"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"lowercase y confirms", "y\n", true},
		{"uppercase Y confirms", "Y\n", true},
		{"empty default declines", "\n", false},
		{"yes is not accepted", "yes\n", false},
		{"n declines", "n\n", false},
		{"whitespace padded y confirms", "  y  \n", true},
		{"eof declines", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewWithIO(strings.NewReader(tt.input), &out)

			got, err := p.Confirm("Apply changes?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "[y/N]")
		})
	}
}

func TestChoose(t *testing.T) {
	link := links.Link{
		Spec:   config.LinkSpec{Key: ".zshrc"},
		Source: "/repo/.zshrc",
		Target: "/home/user/.zshrc",
	}

	tests := []struct {
		name  string
		input string
		want  links.ConflictMode
	}{
		{"empty defaults to skip", "\n", links.ModeSkip},
		{"s skips", "s\n", links.ModeSkip},
		{"b backs up", "b\n", links.ModeBackup},
		{"backup word", "backup\n", links.ModeBackup},
		{"o overwrites", "o\n", links.ModeOverwrite},
		{"retry after junk", "x\nb\n", links.ModeBackup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewWithIO(strings.NewReader(tt.input), &out)

			got, err := p.Choose(link, links.StatusExists, "target exists")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("q cancels the run", func(t *testing.T) {
		var out bytes.Buffer
		p := NewWithIO(strings.NewReader("q\n"), &out)

		_, err := p.Choose(link, links.StatusExists, "target exists")
		require.Error(t, err)
		assert.True(t, errors.IsCancelled(err))
	})
}
