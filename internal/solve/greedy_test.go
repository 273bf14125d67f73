package solve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGreedyMergesComplementaryRooms(t *testing.T) {
	inst := &Instance{
		Rooms:      []string{"R1", "R2"},
		Students:   []int{10, 5},
		Capacity:   []int{30, 10},
		Subject:    []string{"Math", "Physics"},
		SubjectKey: []string{"MATH", "PHYSICS"},
	}

	assign := Greedy(inst)

	assert.NoError(t, ValidateAssignment(inst, assign))
	assert.Equal(t, 1, countOpen(assign))
}

func TestGreedyKeepsSameSubjectRoomsSeparate(t *testing.T) {
	inst := &Instance{
		Rooms:      []string{"R1", "R2"},
		Students:   []int{10, 5},
		Capacity:   []int{30, 10},
		Subject:    []string{"Math", "Math"},
		SubjectKey: []string{"MATH", "MATH"},
	}

	assign := Greedy(inst)

	assert.NoError(t, ValidateAssignment(inst, assign))
	assert.Equal(t, 2, countOpen(assign))
	assert.Equal(t, Identity(2), assign)
}

func TestGreedyNeverWorseThanIdentity(t *testing.T) {
	inst := &Instance{
		Rooms:      []string{"R1", "R2", "R3"},
		Students:   []int{50, 50, 50},
		Capacity:   []int{10, 10, 10},
		Subject:    []string{"A", "B", "C"},
		SubjectKey: []string{"A", "B", "C"},
	}

	assign := Greedy(inst)

	assert.Equal(t, Identity(3), assign)
}

func TestGreedyDegenerateInstances(t *testing.T) {
	assert.Equal(t, []int{}, Greedy(&Instance{}))
	assert.Equal(t, []int{0}, Greedy(&Instance{
		Rooms: []string{"R1"}, Students: []int{1}, Capacity: []int{1},
		Subject: []string{"A"}, SubjectKey: []string{"A"},
	}))
}

func TestGreedyRespectsCapacity(t *testing.T) {
	inst := &Instance{
		Rooms:      []string{"R1", "R2", "R3"},
		Students:   []int{8, 8, 8},
		Capacity:   []int{10, 10, 10},
		Subject:    []string{"A", "B", "C"},
		SubjectKey: []string{"A", "B", "C"},
	}

	assign := Greedy(inst)

	assert.NoError(t, ValidateAssignment(inst, assign))
}
