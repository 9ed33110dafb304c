package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnxresearch/playwright/pkg/domain"
)

func newTitledTree(t *testing.T) []*domain.Test {
	t.Helper()

	root := domain.NewSuite(nil, "", domain.Location{})
	auth := domain.NewSuite(root, "auth", domain.Location{})
	login := domain.NewSuite(auth, "login", domain.Location{})
	billing := domain.NewSuite(root, "billing", domain.Location{})

	return []*domain.Test{
		domain.NewTest(login, "accepts valid password", nil, domain.Location{}),
		domain.NewTest(login, "rejects bad password", nil, domain.Location{}),
		domain.NewTest(billing, "charges card", nil, domain.Location{}),
	}
}

func TestTitleFilter_NoPatternsIsIdentity(t *testing.T) {
	tests := newTitledTree(t)

	got := NewTitleFilter().Filter(tests)

	assert.Equal(t, tests, got)
}

func TestTitleFilter_Match(t *testing.T) {
	all := newTitledTree(t)

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{
			name:     "should match a suite subtree",
			patterns: []string{"auth/**"},
			want:     []string{"accepts valid password", "rejects bad password"},
		},
		{
			name:     "should match by test name",
			patterns: []string{"**/rejects*"},
			want:     []string{"rejects bad password"},
		},
		{
			name:     "should union multiple patterns",
			patterns: []string{"billing/*", "auth/login/accepts*"},
			want:     []string{"accepts valid password", "charges card"},
		},
		{
			name:     "should select nothing for non-matching pattern",
			patterns: []string{"search/**"},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewTitleFilter(tt.patterns...).Filter(all)

			var names []string
			for _, test := range got {
				names = append(names, test.Name())
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestTitleFilter_ComposesWithFocus(t *testing.T) {
	all := newTitledTree(t)
	f := NewFocusedFilter()
	f.MarkFocused(all[0].Suite())

	got := NewTitleFilter("**/rejects*").Filter(f.Filter(all))

	require.Len(t, got, 1)
	assert.Equal(t, "rejects bad password", got[0].Name())
}
