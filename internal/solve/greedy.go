package solve

import (
	"slices"

	"github.com/samber/lo"
)

// strategy orders the source rooms for one constructive pass of the
// bin-packer. Each strategy is a pure function producing its own
// independent assignment from identity; only the winning assignment
// survives the comparator in Greedy, so no state is shared across
// strategies.
type strategy struct {
	name  string
	order func(inst *Instance) []int
	// fitScore ranks candidate destinations for a source with the given
	// remaining capacity; lower is better. firstFit ignores fitScore and
	// takes the first feasible candidate in index order instead.
	fitScore func(remaining, students int) int
	firstFit bool
}

func ascendingStudents(inst *Instance) []int {
	order := make([]int, inst.Len())
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int { return inst.Students[a] - inst.Students[b] })
	return order
}

func descendingStudents(inst *Instance) []int {
	order := make([]int, inst.Len())
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int { return inst.Students[b] - inst.Students[a] })
	return order
}

func descendingCapacity(inst *Instance) []int {
	order := make([]int, inst.Len())
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int { return inst.Capacity[b] - inst.Capacity[a] })
	return order
}

var strategies = []strategy{
	{
		name:     "best-fit-asc-students",
		order:    ascendingStudents,
		fitScore: func(remaining, students int) int { return remaining - students },
	},
	{
		name:     "best-fit-desc-students",
		order:    descendingStudents,
		fitScore: func(remaining, students int) int { return remaining - students },
	},
	{
		name:     "first-fit-desc-students",
		order:    descendingStudents,
		firstFit: true,
	},
	{
		name:     "worst-fit-desc-students",
		order:    descendingStudents,
		fitScore: func(remaining, students int) int { return -(remaining - students) },
	},
	{
		name:     "best-fit-desc-capacity",
		order:    descendingCapacity,
		fitScore: func(remaining, students int) int { return remaining - students },
	},
}

// runStrategy executes the core loop described in spec §4.2 for one
// strategy, starting from the identity assignment.
func runStrategy(inst *Instance, s strategy) []int {
	n := inst.Len()
	assign := Identity(n)
	remaining := slices.Clone(inst.Capacity)
	hosted := make([]map[string]bool, n)
	for j := range hosted {
		remaining[j] -= inst.Students[j]
		hosted[j] = map[string]bool{inst.SubjectKey[j]: true}
	}

	open := make([]bool, n)
	for j := range open {
		open[j] = true
	}

	for _, i := range s.order(inst) {
		if assign[i] != i {
			continue
		}
		// A room that already hosts other sources stays where it is.
		if len(hosted[i]) > 1 {
			continue
		}

		best := -1
		bestScore := 0
		for j := 0; j < n; j++ {
			if j == i || !open[j] {
				continue
			}
			if inst.Students[i] > remaining[j] {
				continue
			}
			if hosted[j][inst.SubjectKey[i]] {
				continue
			}
			if s.firstFit {
				best = j
				break
			}
			score := s.fitScore(remaining[j], inst.Students[i])
			if best == -1 || score < bestScore {
				best = j
				bestScore = score
			}
		}

		if best == -1 {
			continue
		}

		assign[i] = best
		remaining[best] -= inst.Students[i]
		hosted[best][inst.SubjectKey[i]] = true
		open[i] = false
	}

	return assign
}

func countOpen(assign []int) int {
	return len(lo.Uniq(assign))
}

func totalRemainingCapacity(inst *Instance, assign []int) int {
	remaining := slices.Clone(inst.Capacity)
	for i, j := range assign {
		if i != j {
			remaining[j] -= inst.Students[i]
		}
	}
	total := 0
	for _, r := range remaining {
		total += r
	}
	return total
}

// Greedy solves an Instance by running every strategy in the set and
// keeping the best result: fewest open rooms, ties broken by lowest total
// remaining capacity, then by lexicographic order of the assignment for
// determinism. It never fails: identity is always a feasible fallback, so
// the result is never worse than identity.
func Greedy(inst *Instance) []int {
	n := inst.Len()
	if n <= 1 {
		return Identity(n)
	}

	best := Identity(n)
	bestOpen := countOpen(best)
	bestSlack := totalRemainingCapacity(inst, best)

	for _, s := range strategies {
		candidate := runStrategy(inst, s)
		open := countOpen(candidate)
		slack := totalRemainingCapacity(inst, candidate)

		switch {
		case open < bestOpen:
			best, bestOpen, bestSlack = candidate, open, slack
		case open == bestOpen && slack < bestSlack:
			best, bestOpen, bestSlack = candidate, open, slack
		case open == bestOpen && slack == bestSlack && slices.Compare(candidate, best) < 0:
			best, bestOpen, bestSlack = candidate, open, slack
		}
	}

	return best
}
