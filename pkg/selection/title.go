package selection

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/dnxresearch/playwright/pkg/domain"
)

// TitleFilter selects tests whose slash-joined title path matches any of
// the configured glob patterns, e.g. "auth/*" or "**/login*". An empty
// pattern list selects everything.
type TitleFilter struct {
	patterns []string
}

// NewTitleFilter creates a filter for the given doublestar patterns.
func NewTitleFilter(patterns ...string) *TitleFilter {
	return &TitleFilter{patterns: patterns}
}

// Filter returns the matching subsequence of tests. Invalid patterns
// match nothing.
func (f *TitleFilter) Filter(tests []*domain.Test) []*domain.Test {
	if len(f.patterns) == 0 {
		return tests
	}
	var selected []*domain.Test
	for _, t := range tests {
		if f.matches(t.FullTitle()) {
			selected = append(selected, t)
		}
	}
	return selected
}

func (f *TitleFilter) matches(title string) bool {
	for _, pattern := range f.patterns {
		if ok, err := doublestar.Match(pattern, title); err == nil && ok {
			return true
		}
	}
	return false
}
