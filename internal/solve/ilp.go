package solve

import (
	"fmt"
	"time"
)

// Outcome is the result status an external MILP engine reports back for a
// solve attempt.
type Outcome int

const (
	OutcomeOptimal Outcome = iota
	OutcomeFeasible
	OutcomeTimeLimit
	OutcomeInfeasible
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOptimal:
		return "optimal"
	case OutcomeFeasible:
		return "feasible_within_time_limit"
	case OutcomeTimeLimit:
		return "time_limit"
	case OutcomeInfeasible:
		return "infeasible"
	default:
		return "error"
	}
}

// edge is a permissible (i, j) assignment pair, corresponding to one x_ij
// decision variable in the ILP formulation (spec §4.3).
type edge struct {
	i, j int
}

// ILPModel is the binary program built from an Instance: variables y_j
// (room j open) and x_ij (i assigned to j), pruned to only the edges that
// are a priori feasible.
type ILPModel struct {
	inst  *Instance
	edges []edge
	// edgesFrom[i] lists indices into edges for pair (i, *); edgesTo[j]
	// lists indices into edges for pair (*, j). Both are populated to let
	// engines build row/column constraints without rescanning edges.
	edgesFrom [][]int
	edgesTo   [][]int
}

// BuildILPModel prunes the (i, j) edges to those permissible under spec
// §4.3: self-assignment is always allowed; otherwise i may move to j only
// if its students fit within j's capacity and the two subjects differ. Because
// identity is always retained, the pruned graph is always feasible.
func BuildILPModel(inst *Instance) *ILPModel {
	n := inst.Len()
	m := &ILPModel{
		inst:      inst,
		edgesFrom: make([][]int, n),
		edgesTo:   make([][]int, n),
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				m.addEdge(i, j)
				continue
			}
			if inst.SubjectKey[i] == inst.SubjectKey[j] {
				continue
			}
			if inst.Students[i] <= inst.Capacity[j] {
				m.addEdge(i, j)
			}
		}
	}

	return m
}

func (m *ILPModel) addEdge(i, j int) {
	idx := len(m.edges)
	m.edges = append(m.edges, edge{i, j})
	m.edgesFrom[i] = append(m.edgesFrom[i], idx)
	m.edgesTo[j] = append(m.edgesTo[j], idx)
}

// MILPEngine solves a binary program under a wall-clock budget. It is the
// narrow interface behind which a concrete external solver is hidden; the
// core never sees the engine's own error types, only Outcome and a
// decoded assignment.
type MILPEngine interface {
	Solve(m *ILPModel, timeLimit time.Duration) (assign []int, outcome Outcome, err error)
}

// SolveILP runs the given engine against the instance, decodes and
// validates its assignment, and translates any failure into a SolverError
// for the dispatcher to catch and fall back from.
func SolveILP(engine MILPEngine, inst *Instance, partition string, timeLimit time.Duration) ([]int, error) {
	if inst.Len() <= 1 {
		return Identity(inst.Len()), nil
	}

	model := BuildILPModel(inst)
	assign, outcome, err := engine.Solve(model, timeLimit)

	switch outcome {
	case OutcomeOptimal, OutcomeFeasible:
		if err := ValidateAssignment(inst, assign); err != nil {
			return nil, &SolverError{Kind: KindEngine, Partition: partition, Err: err}
		}
		return assign, nil
	case OutcomeInfeasible:
		// Identity is always feasible; a solver reporting infeasible has a bug.
		return nil, &InternalError{Context: fmt.Sprintf("ILP engine reported infeasible for partition %v, which must not occur", partition)}
	case OutcomeTimeLimit:
		return nil, &SolverError{Kind: KindTimeLimit, Partition: partition, Err: err}
	default:
		return nil, &SolverError{Kind: KindEngine, Partition: partition, Err: err}
	}
}
