package solve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembleSingleMerge(t *testing.T) {
	inst := &Instance{
		Rooms:      []string{"R1", "R2"},
		Students:   []int{10, 5},
		Capacity:   []int{30, 10},
		Subject:    []string{"Math", "Physics"},
		SubjectKey: []string{"MATH", "PHYSICS"},
	}
	sol := PartitionSolution{
		Key:      PartitionKey{Slot: "A", Campus: "ALL"},
		Instance: inst,
		Assign:   []int{0, 0},
	}

	result := Assemble([]PartitionSolution{sol})

	assert.Equal(t, 2, result.Overall.InitialRooms)
	assert.Equal(t, 1, result.Overall.FinalRooms)
	assert.Equal(t, 1, result.Overall.RoomsSaved)
	assert.Equal(t, 50.0, result.Overall.EfficiencyPercent)

	assert.Len(t, result.Details, 1)
	detail := result.Details[0]
	assert.Len(t, detail.Kept, 1)
	assert.Equal(t, "R1", detail.Kept[0].Name)
	assert.Equal(t, 15, detail.Kept[0].TotalStudents)
	assert.Len(t, detail.Kept[0].MergedSources, 1)
	assert.Equal(t, "R2", detail.Kept[0].MergedSources[0].Name)
	assert.Len(t, detail.Removed, 1)
	assert.Equal(t, "R2", detail.Removed[0].Name)
	assert.Equal(t, "R1", detail.Removed[0].MergedTo)
}

func TestAssembleNoMergePossible(t *testing.T) {
	inst := &Instance{
		Rooms:      []string{"R1", "R2"},
		Students:   []int{10, 5},
		Capacity:   []int{10, 5},
		Subject:    []string{"Math", "Math"},
		SubjectKey: []string{"MATH", "MATH"},
	}
	sol := PartitionSolution{
		Key:      PartitionKey{Slot: "A", Campus: "ALL"},
		Instance: inst,
		Assign:   Identity(2),
	}

	result := Assemble([]PartitionSolution{sol})

	assert.Equal(t, 0.0, result.Overall.EfficiencyPercent)
	assert.Len(t, result.Details[0].Kept, 2)
	assert.Empty(t, result.Details[0].Removed)
}

func TestAssembleEmptyInputZeroEfficiency(t *testing.T) {
	result := Assemble(nil)

	assert.Equal(t, 0, result.Overall.InitialRooms)
	assert.Equal(t, 0.0, result.Overall.EfficiencyPercent)
	assert.Empty(t, result.Details)
}
