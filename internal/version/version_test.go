package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringOmitsUnsetBuildFields(t *testing.T) {
	origCommit, origDate := Commit, Date
	defer func() { Commit, Date = origCommit, origDate }()

	Commit, Date = "", ""
	out := String()
	assert.True(t, strings.HasPrefix(out, "dotup version "))
	assert.NotContains(t, out, "Commit:")
	assert.NotContains(t, out, "Built:")
	assert.NotContains(t, out, "unknown")

	Commit, Date = "abc1234", "2026-08-31"
	out = String()
	assert.Contains(t, out, "Commit: abc1234")
	assert.Contains(t, out, "Built:  2026-08-31")
}
