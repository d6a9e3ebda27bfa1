package policies

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/bmatcuk/doublestar/v4"

	"autoloader/internal/ports"
)

// DefaultExcludes keeps test files and fixtures out of generated class maps.
var DefaultExcludes = []string{"**/*_test.go", "**/testdata/**"}

// ExcludePolicy matches slash separated paths against doublestar patterns.
type ExcludePolicy struct {
	Patterns []string
}

func NewExcludePolicy(patterns ...string) (ExcludePolicy, error) {
	policy := ExcludePolicy{}
	for _, pattern := range append(append([]string{}, DefaultExcludes...), patterns...) {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if !doublestar.ValidatePattern(pattern) {
			return ExcludePolicy{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid exclude pattern %q", pattern))
		}
		policy.Patterns = append(policy.Patterns, pattern)
	}
	return policy, nil
}

func (p ExcludePolicy) Excluded(relPath string) bool {
	for _, pattern := range p.Patterns {
		// Patterns were validated on construction.
		if ok, _ := doublestar.Match(pattern, relPath); ok {
			return true
		}
	}
	return false
}

var _ ports.ScanPolicyPort = ExcludePolicy{}
