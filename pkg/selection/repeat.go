package selection

import "github.com/dnxresearch/playwright/pkg/domain"

// Repeater expands tests into run instances, compounding per-entity
// repeat counts along the suite ancestry chain.
type Repeater struct {
	counts map[domain.Entity]int
}

// NewRepeater creates a repeater with no recorded counts.
func NewRepeater() *Repeater {
	return &Repeater{counts: make(map[domain.Entity]int)}
}

// Repeat records count for entity. Unrecorded entities count as 1; a
// zero at any level zeroes the total for every test below it.
func (r *Repeater) Repeat(entity domain.Entity, count int) {
	r.counts[entity] = count
}

func (r *Repeater) countFor(entity domain.Entity) int {
	if n, ok := r.counts[entity]; ok {
		return n
	}
	return 1
}

// CreateTestRuns expands each test into its total number of runs: the
// test's own count times the count of every ancestor suite. Runs for the
// same test are adjacent and follow the input order. Entities are not
// mutated.
func (r *Repeater) CreateTestRuns(tests []*domain.Test) []*domain.TestRun {
	var runs []*domain.TestRun
	for _, t := range tests {
		total := r.countFor(t)
		for s := t.Suite(); s != nil; s = s.ParentSuite() {
			total *= r.countFor(s)
		}
		for i := 0; i < total; i++ {
			runs = append(runs, domain.NewTestRun(t))
		}
	}
	return runs
}
