package solve

import "strings"

// Row is a single exam-room booking: a subject with a student cohort hosted
// in a room of some capacity, during one exam slot at one campus.
type Row struct {
	RoomID    string
	SubjectID string
	Students  int
	Capacity  int
	SlotKey   string
	Campus    string
	Date      string
}

// Instance is the numeric form of a partition, ready for a solver. Room
// index i is the only identifier the solvers see; Rooms/Subject/etc. carry
// the original strings back out for reporting.
type Instance struct {
	Rooms      []string
	Students   []int
	Capacity   []int
	Subject    []string // original form, retained for reporting
	SubjectKey []string // trimmed + uppercased, used for comparison
}

func (inst *Instance) Len() int { return len(inst.Rooms) }

// BuildInstance normalizes a partition's rows into an Instance, preserving
// input order as the canonical room ordering.
func BuildInstance(rows []Row) (*Instance, error) {
	inst := &Instance{
		Rooms:      make([]string, len(rows)),
		Students:   make([]int, len(rows)),
		Capacity:   make([]int, len(rows)),
		Subject:    make([]string, len(rows)),
		SubjectKey: make([]string, len(rows)),
	}
	for i, r := range rows {
		if r.Capacity <= 0 {
			return nil, &InvalidInputError{RoomID: r.RoomID, Reason: "capacity must be positive"}
		}
		if r.Students < 0 {
			return nil, &InvalidInputError{RoomID: r.RoomID, Reason: "students must not be negative"}
		}
		inst.Rooms[i] = r.RoomID
		inst.Students[i] = r.Students
		inst.Capacity[i] = r.Capacity
		inst.Subject[i] = r.SubjectID
		inst.SubjectKey[i] = strings.ToUpper(strings.TrimSpace(r.SubjectID))
	}
	return inst, nil
}

// Identity returns the assignment where every room hosts itself.
func Identity(n int) []int {
	assign := make([]int, n)
	for i := range assign {
		assign[i] = i
	}
	return assign
}
