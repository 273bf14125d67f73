package solve

import (
	"math"
	"sort"

	"github.com/samber/lo"
)

// MergedSource describes one room folded into a kept destination.
type MergedSource struct {
	Name     string `json:"name"`
	Subject  string `json:"subject"`
	Students int    `json:"students"`
}

// KeptRoom is a destination that stayed open after merging.
type KeptRoom struct {
	Name          string         `json:"name"`
	Subject       string         `json:"subject"`
	TotalStudents int            `json:"total_students"`
	Capacity      int            `json:"capacity"`
	MergedSources []MergedSource `json:"merged_sources"`
}

// RemovedRoom is a source room folded into another destination.
type RemovedRoom struct {
	Name     string `json:"name"`
	Subject  string `json:"subject"`
	Students int    `json:"students"`
	Capacity int    `json:"capacity"`
	MergedTo string `json:"merged_to"`
}

// PartitionResult is one partition's contribution to the report.
type PartitionResult struct {
	Slot    string        `json:"slot"`
	Campus  string        `json:"campus"`
	Initial int           `json:"initial"`
	Final   int           `json:"final"`
	Saved   int           `json:"saved"`
	Solver  string        `json:"solver"`
	Kept    []KeptRoom    `json:"kept_rooms_data"`
	Removed []RemovedRoom `json:"removed_rooms_data"`
}

// Overall aggregates rooms_saved and efficiency across every partition.
type Overall struct {
	InitialRooms      int     `json:"initial_rooms"`
	FinalRooms        int     `json:"final_rooms"`
	RoomsSaved        int     `json:"rooms_saved"`
	EfficiencyPercent float64 `json:"efficiency_percent"`
}

// Result is the structured value optimize() returns: an overall summary
// and a deterministically ordered per-partition detail array.
type Result struct {
	Overall Overall           `json:"overall"`
	Details []PartitionResult `json:"details"`
}

// Assemble folds a set of solved partitions into the final Result. Solutions
// must already be sorted by (Slot, Campus); Dispatch guarantees this.
func Assemble(solutions []PartitionSolution) Result {
	details := make([]PartitionResult, 0, len(solutions))

	var totalInitial, totalFinal int

	for _, sol := range solutions {
		pr := assemblePartition(sol)
		details = append(details, pr)
		totalInitial += pr.Initial
		totalFinal += pr.Final
	}

	saved := totalInitial - totalFinal
	efficiency := 0.0
	if totalInitial > 0 {
		efficiency = round2(100 * float64(saved) / float64(totalInitial))
	}

	return Result{
		Overall: Overall{
			InitialRooms:      totalInitial,
			FinalRooms:        totalFinal,
			RoomsSaved:        saved,
			EfficiencyPercent: efficiency,
		},
		Details: details,
	}
}

func assemblePartition(sol PartitionSolution) PartitionResult {
	inst := sol.Instance
	assign := sol.Assign
	n := inst.Len()

	hostedBy := map[int][]int{}
	for i, j := range assign {
		hostedBy[j] = append(hostedBy[j], i)
	}

	openDestinations := lo.Keys(hostedBy)
	sort.Ints(openDestinations)

	kept := make([]KeptRoom, 0, len(openDestinations))
	for _, j := range openDestinations {
		hosted := hostedBy[j]
		sort.Ints(hosted)

		total := 0
		merged := make([]MergedSource, 0, len(hosted))
		for _, i := range hosted {
			total += inst.Students[i]
			if i == j {
				continue
			}
			merged = append(merged, MergedSource{
				Name:     inst.Rooms[i],
				Subject:  inst.Subject[i],
				Students: inst.Students[i],
			})
		}

		kept = append(kept, KeptRoom{
			Name:          inst.Rooms[j],
			Subject:       inst.Subject[j],
			TotalStudents: total,
			Capacity:      inst.Capacity[j],
			MergedSources: merged,
		})
	}

	removed := make([]RemovedRoom, 0, n-len(openDestinations))
	for i := 0; i < n; i++ {
		if assign[i] == i {
			continue
		}
		removed = append(removed, RemovedRoom{
			Name:     inst.Rooms[i],
			Subject:  inst.Subject[i],
			Students: inst.Students[i],
			Capacity: inst.Capacity[i],
			MergedTo: inst.Rooms[assign[i]],
		})
	}
	sort.Slice(removed, func(a, b int) bool { return removed[a].Name < removed[b].Name })

	return PartitionResult{
		Slot:    sol.Key.Slot,
		Campus:  sol.Key.Campus,
		Initial: n,
		Final:   len(openDestinations),
		Saved:   n - len(openDestinations),
		Solver:  sol.Solver,
		Kept:    kept,
		Removed: removed,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
