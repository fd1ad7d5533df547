// Package version carries build information injected at link time.
package version

import (
	"fmt"
	"strings"
)

// Set by goreleaser ldflags, e.g.
// -X github.com/arthur-debert/dotup/internal/version.Version={{.Version}}
// Commit and Date stay empty on a plain 'go build'.
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// String renders the full version report, omitting unset build fields.
func String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "dotup version %s\n", Version)
	if Commit != "" {
		fmt.Fprintf(&b, "Commit: %s\n", Commit)
	}
	if Date != "" {
		fmt.Fprintf(&b, "Built:  %s\n", Date)
	}
	return b.String()
}
