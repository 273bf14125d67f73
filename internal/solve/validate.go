package solve

import "fmt"

// ValidateAssignment checks the §3 invariants against a decoded
// assignment: self-hosting destinations, capacity, and subject
// disjointness. A violation here means a solver's output cannot be
// trusted; callers turn it into a SolverError (for the ILP engine, which
// might have decoded a stale or partial solution) or an InternalError (for
// the greedy packer, whose own logic guarantees feasibility).
func ValidateAssignment(inst *Instance, assign []int) error {
	n := inst.Len()
	if len(assign) != n {
		return fmt.Errorf("assignment length %d does not match instance size %d", len(assign), n)
	}

	for i, j := range assign {
		if j < 0 || j >= n {
			return fmt.Errorf("room %d assigned to out-of-range destination %d", i, j)
		}
		if assign[j] != j {
			return fmt.Errorf("destination %d does not host itself (assign[%d]=%d)", j, j, assign[j])
		}
	}

	load := make(map[int]int, n)
	subjects := make(map[int]map[string]bool, n)
	for i, j := range assign {
		load[j] += inst.Students[i]
		if subjects[j] == nil {
			subjects[j] = map[string]bool{}
		}
		if subjects[j][inst.SubjectKey[i]] {
			return fmt.Errorf("destination %d hosts duplicate subject %q", j, inst.SubjectKey[i])
		}
		subjects[j][inst.SubjectKey[i]] = true
	}

	for j, total := range load {
		// A room whose own cohort exceeds its capacity may still host itself
		// alone; it may not take in any further students.
		if total > max(inst.Capacity[j], inst.Students[j]) {
			return fmt.Errorf("destination %d over capacity: %d students > capacity %d", j, total, inst.Capacity[j])
		}
	}

	return nil
}
