package solve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildInstance(t *testing.T) {
	t.Run("valid rows canonicalize subject keys", func(t *testing.T) {
		rows := []Row{
			{RoomID: "A", SubjectID: " math ", Students: 10, Capacity: 20},
			{RoomID: "B", SubjectID: "MATH", Students: 5, Capacity: 15},
		}

		inst, err := BuildInstance(rows)

		assert.NoError(t, err)
		assert.Equal(t, 2, inst.Len())
		assert.Equal(t, "MATH", inst.SubjectKey[0])
		assert.Equal(t, "MATH", inst.SubjectKey[1])
	})

	t.Run("non-positive capacity is rejected", func(t *testing.T) {
		rows := []Row{{RoomID: "A", SubjectID: "math", Students: 1, Capacity: 0}}

		_, err := BuildInstance(rows)

		var invalidErr *InvalidInputError
		assert.ErrorAs(t, err, &invalidErr)
	})

	t.Run("negative students is rejected", func(t *testing.T) {
		rows := []Row{{RoomID: "A", SubjectID: "math", Students: -1, Capacity: 10}}

		_, err := BuildInstance(rows)

		var invalidErr *InvalidInputError
		assert.ErrorAs(t, err, &invalidErr)
	})

}

func TestIdentity(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, Identity(3))
	assert.Equal(t, []int{}, Identity(0))
}
