package solve

import (
	"fmt"
	"time"

	"github.com/lukpank/go-glpk/glpk"
)

// GLPKEngine solves the ILP model with GLPK's branch-and-bound-over-LP-
// relaxation MIP solver. The model object is owned entirely by Solve and
// deleted before it returns; there is no process-wide solver state.
type GLPKEngine struct{}

func NewGLPKEngine() MILPEngine { return &GLPKEngine{} }

func (e *GLPKEngine) Solve(m *ILPModel, timeLimit time.Duration) ([]int, Outcome, error) {
	n := m.inst.Len()

	lp := glpk.New()
	defer lp.Delete()
	lp.SetProbName("room_merge")
	lp.SetObjName("open_rooms")
	lp.SetObjDir(glpk.MIN)

	// y_j columns, one per room.
	yCol := make([]int, n)
	for j := 0; j < n; j++ {
		idx := lp.AddCols(1)
		yCol[j] = idx
		lp.SetColName(idx, fmt.Sprintf("y_%d", j))
		lp.SetColKind(idx, glpk.BV)
		lp.SetObjCoef(idx, 1)
	}

	// x_ij columns, one per pruned edge.
	xCol := make([]int, len(m.edges))
	for k, ed := range m.edges {
		idx := lp.AddCols(1)
		xCol[k] = idx
		lp.SetColName(idx, fmt.Sprintf("x_%d_%d", ed.i, ed.j))
		lp.SetColKind(idx, glpk.BV)
		lp.SetObjCoef(idx, 0)
	}

	// (C1) each source assigned exactly once.
	for i := 0; i < n; i++ {
		row := lp.AddRows(1)
		lp.SetRowName(row, fmt.Sprintf("assign_%d", i))
		ind := []int32{0}
		val := []float64{0}
		for _, k := range m.edgesFrom[i] {
			ind = append(ind, int32(xCol[k]))
			val = append(val, 1)
		}
		lp.SetMatRow(row, ind, val)
		lp.SetRowBnds(row, glpk.FX, 1, 1)
	}

	// (C2) x_ij <= y_j.
	for k, ed := range m.edges {
		row := lp.AddRows(1)
		lp.SetRowName(row, fmt.Sprintf("open_%d_%d", ed.i, ed.j))
		lp.SetMatRow(row, []int32{0, int32(xCol[k]), int32(yCol[ed.j])}, []float64{0, 1, -1})
		lp.SetRowBnds(row, glpk.UP, 0, 0)
	}

	// (C3) y_j == x_jj.
	for j := 0; j < n; j++ {
		selfK := -1
		for _, k := range m.edgesTo[j] {
			if m.edges[k].i == j {
				selfK = k
				break
			}
		}
		row := lp.AddRows(1)
		lp.SetRowName(row, fmt.Sprintf("selfhost_%d", j))
		lp.SetMatRow(row, []int32{0, int32(yCol[j]), int32(xCol[selfK])}, []float64{0, 1, -1})
		lp.SetRowBnds(row, glpk.FX, 0, 0)
	}

	// (C4) capacity.
	for j := 0; j < n; j++ {
		row := lp.AddRows(1)
		lp.SetRowName(row, fmt.Sprintf("capacity_%d", j))
		ind := []int32{0}
		val := []float64{0}
		for _, k := range m.edgesTo[j] {
			ind = append(ind, int32(xCol[k]))
			val = append(val, float64(m.inst.Students[m.edges[k].i]))
		}
		ind = append(ind, int32(yCol[j]))
		// An overfull room can still host itself, so identity stays feasible.
		val = append(val, -float64(max(m.inst.Capacity[j], m.inst.Students[j])))
		lp.SetMatRow(row, ind, val)
		lp.SetRowBnds(row, glpk.UP, 0, 0)
	}

	// (C5) subject disjointness per destination.
	for j := 0; j < n; j++ {
		bySubject := map[string][]int{}
		for _, k := range m.edgesTo[j] {
			s := m.inst.SubjectKey[m.edges[k].i]
			bySubject[s] = append(bySubject[s], k)
		}
		for s, ks := range bySubject {
			if len(ks) < 2 {
				continue
			}
			row := lp.AddRows(1)
			lp.SetRowName(row, fmt.Sprintf("disjoint_%d_%s", j, s))
			ind := []int32{0}
			val := []float64{0}
			for _, k := range ks {
				ind = append(ind, int32(xCol[k]))
				val = append(val, 1)
			}
			lp.SetMatRow(row, ind, val)
			lp.SetRowBnds(row, glpk.UP, 0, 1)
		}
	}

	iocp := glpk.NewIocp()
	iocp.SetPresolve(true)
	iocp.SetMsgLev(glpk.MSG_OFF)
	iocp.SetTmLim(int(timeLimit.Milliseconds()))

	solveErr := lp.Intopt(iocp)

	status := lp.MipStatus()
	switch {
	case solveErr == nil && (status == glpk.OPT || status == glpk.FEAS):
		outcome := OutcomeOptimal
		if status == glpk.FEAS {
			outcome = OutcomeFeasible
		}
		assign := make([]int, n)
		for i := 0; i < n; i++ {
			found := false
			for _, k := range m.edgesFrom[i] {
				if lp.MipColVal(xCol[k]) > 0.5 {
					assign[i] = m.edges[k].j
					found = true
					break
				}
			}
			if !found {
				return nil, OutcomeError, fmt.Errorf("glpk: no destination selected for room %d", i)
			}
		}
		return assign, outcome, nil
	case status == glpk.NOFEAS:
		return nil, OutcomeInfeasible, fmt.Errorf("glpk: reported infeasible")
	case solveErr != nil:
		return nil, OutcomeTimeLimit, solveErr
	default:
		return nil, OutcomeTimeLimit, fmt.Errorf("glpk: no incumbent within time limit")
	}
}
