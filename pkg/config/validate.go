package config

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/arthur-debert/dotup/pkg/errors"
)

// Validate checks structural config invariants. It returns a single
// CONFIG_INVALID error naming every problem found, or nil.
func (c *Config) Validate() error {
	problems := c.Problems()
	if len(problems) == 0 {
		return nil
	}
	return errors.Newf(errors.ErrConfigValid, "invalid configuration: %s", strings.Join(problems, "; ")).
		WithDetail("problems", problems)
}

// Problems returns every structural problem in the config, one message per
// violation. Used by Validate and by the verify command's config section.
func (c *Config) Problems() []string {
	var problems []string

	seenKeys := make(map[string]bool)
	for i, l := range c.Links {
		if l.Key == "" {
			problems = append(problems, fmt.Sprintf("links[%d]: key is required", i))
			continue
		}
		if seenKeys[l.Key] {
			problems = append(problems, fmt.Sprintf("links[%d]: duplicate key %q", i, l.Key))
		}
		seenKeys[l.Key] = true
	}

	labels := make(map[string]bool)
	for _, ch := range c.Checks {
		if ch.Label != "" {
			labels[ch.Label] = true
		}
	}

	for i, ch := range c.Checks {
		if ch.Label == "" {
			problems = append(problems, fmt.Sprintf("checks[%d]: label is required", i))
		}
		switch ch.Kind {
		case KindCommand, KindDir, KindFile:
		default:
			problems = append(problems, fmt.Sprintf("checks[%d]: unknown kind %q", i, ch.Kind))
		}
		if ch.Target == "" {
			problems = append(problems, fmt.Sprintf("checks[%d]: target is required", i))
		}
		if ch.Pattern != "" {
			if _, err := regexp.Compile(ch.Pattern); err != nil {
				problems = append(problems, fmt.Sprintf("checks[%d]: invalid pattern: %v", i, err))
			}
		}
		for _, dep := range ch.Depends {
			if !labels[dep] {
				problems = append(problems, fmt.Sprintf("checks[%d]: depends on unknown label %q", i, dep))
			}
		}
	}

	if cycle := c.dependencyCycle(); len(cycle) > 0 {
		problems = append(problems, fmt.Sprintf("dependency cycle detected among: %s", strings.Join(cycle, ", ")))
	}

	return problems
}

// dependencyCycle runs Kahn's algorithm over the check dependency graph and
// returns the labels stuck in a cycle, sorted, or nil.
func (c *Config) dependencyCycle() []string {
	labels := make(map[string]bool)
	for _, ch := range c.Checks {
		if ch.Label != "" {
			labels[ch.Label] = true
		}
	}

	inDegree := make(map[string]int)
	dependents := make(map[string][]string)
	for _, ch := range c.Checks {
		if ch.Label == "" {
			continue
		}
		if _, ok := inDegree[ch.Label]; !ok {
			inDegree[ch.Label] = 0
		}
		for _, dep := range ch.Depends {
			if labels[dep] {
				dependents[dep] = append(dependents[dep], ch.Label)
				inDegree[ch.Label]++
			}
		}
	}

	var queue []string
	for label, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, label)
		}
	}

	visited := 0
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		visited++
		for _, child := range dependents[node] {
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	if visited == len(inDegree) {
		return nil
	}

	var cycle []string
	for label, deg := range inDegree {
		if deg > 0 {
			cycle = append(cycle, label)
		}
	}
	sort.Strings(cycle)
	return cycle
}

// RequiredBy builds the reverse dependency map: label -> labels that depend
// on it. Used for failure hints in verify.
func (c *Config) RequiredBy() map[string][]string {
	requiredBy := make(map[string][]string)
	for _, ch := range c.Checks {
		for _, dep := range ch.Depends {
			requiredBy[dep] = append(requiredBy[dep], ch.Label)
		}
	}
	for _, labels := range requiredBy {
		sort.Strings(labels)
	}
	return requiredBy
}
