package solve

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime"
	"sort"
	"time"
)

// Config controls how the dispatcher partitions work and routes it to a
// solver.
type Config struct {
	Threshold        uint32 // N <= Threshold attempts the exact ILP solver; 0 forces greedy.
	TimeLimitSeconds uint32
	WorkerCount      uint32
	Engine           MILPEngine // defaults to a GLPKEngine if nil
}

func (c Config) timeLimit() time.Duration {
	return time.Duration(c.TimeLimitSeconds) * time.Second
}

func (c Config) workerCount() int {
	if c.WorkerCount > 0 {
		return int(c.WorkerCount)
	}
	return runtime.NumCPU()
}

func (c Config) engine() MILPEngine {
	if c.Engine != nil {
		return c.Engine
	}
	return NewGLPKEngine()
}

// PartitionKey identifies a partition: rows sharing a slot and campus.
type PartitionKey struct {
	Slot   string
	Campus string
}

const defaultCampus = "ALL"

// Partition groups rows by (SlotKey, Campus); rows without an explicit
// campus share the default group.
func Partition(rows []Row) map[PartitionKey][]Row {
	groups := map[PartitionKey][]Row{}
	for _, r := range rows {
		campus := r.Campus
		if campus == "" {
			campus = defaultCampus
		}
		key := PartitionKey{Slot: r.SlotKey, Campus: campus}
		groups[key] = append(groups[key], r)
	}
	return groups
}

// PartitionSolution is one partition's solved instance, ready for assembly.
type PartitionSolution struct {
	Key      PartitionKey
	Instance *Instance
	Assign   []int
	Solver   string // "ilp", "greedy" or "identity" (N <= 1), for verbose reporting
}

type partitionJob struct {
	key  PartitionKey
	rows []Row
}

type partitionOutcome struct {
	solution *PartitionSolution
	err      error
}

// Dispatch partitions rows by (slot, campus), routes each partition to the
// exact ILP solver or the greedy packer per Config.Threshold, falls back to
// greedy on ILP failure, and returns partition solutions sorted by
// (Slot, Campus) for deterministic output.
func Dispatch(ctx context.Context, rows []Row, cfg Config) ([]PartitionSolution, error) {
	partitions := Partition(rows)

	jobs := make(chan partitionJob, len(partitions))
	results := make(chan partitionOutcome, len(partitions))

	workers := cfg.workerCount()
	if workers > len(partitions) {
		workers = len(partitions)
	}
	if workers < 1 {
		workers = 1
	}

	for w := 0; w < workers; w++ {
		go dispatchWorker(ctx, jobs, results, cfg)
	}

	for key, partRows := range partitions {
		jobs <- partitionJob{key: key, rows: partRows}
	}
	close(jobs)

	solutions := make([]PartitionSolution, 0, len(partitions))
	for i := 0; i < len(partitions); i++ {
		outcome := <-results
		if outcome.err != nil {
			return nil, outcome.err
		}
		solutions = append(solutions, *outcome.solution)
	}

	sort.Slice(solutions, func(a, b int) bool {
		ka, kb := solutions[a].Key, solutions[b].Key
		if ka.Slot != kb.Slot {
			return ka.Slot < kb.Slot
		}
		return ka.Campus < kb.Campus
	})

	return solutions, nil
}

func dispatchWorker(ctx context.Context, jobs <-chan partitionJob, results chan<- partitionOutcome, cfg Config) {
	for job := range jobs {
		results <- solvePartition(ctx, job, cfg)
	}
}

func solvePartition(ctx context.Context, job partitionJob, cfg Config) (out partitionOutcome) {
	defer func() {
		if r := recover(); r != nil {
			out = partitionOutcome{err: &InternalError{Context: fmt.Sprintf("worker panic on partition %v/%v: %v", job.key.Slot, job.key.Campus, r)}}
		}
	}()

	if err := ctx.Err(); err != nil {
		return partitionOutcome{err: err}
	}

	inst, err := BuildInstance(job.rows)
	if err != nil {
		return partitionOutcome{err: err}
	}

	label := fmt.Sprintf("%s/%s", job.key.Slot, job.key.Campus)

	if inst.Len() <= 1 {
		return partitionOutcome{solution: &PartitionSolution{Key: job.key, Instance: inst, Assign: Identity(inst.Len()), Solver: "identity"}}
	}

	var assign []int
	solver := "greedy"
	if cfg.Threshold > 0 && uint32(inst.Len()) <= cfg.Threshold {
		solver = "ilp"
		assign, err = SolveILP(cfg.engine(), inst, label, cfg.timeLimit())
		if err != nil {
			var solverErr *SolverError
			if errors.As(err, &solverErr) {
				log.Printf("warning: ILP solver failed on partition %s (%v); falling back to greedy", label, solverErr)
				solver = "greedy"
				assign = Greedy(inst)
			} else {
				return partitionOutcome{err: err}
			}
		}
	} else {
		assign = Greedy(inst)
	}

	if err := ValidateAssignment(inst, assign); err != nil {
		return partitionOutcome{err: &InternalError{Context: fmt.Sprintf("partition %s: %v", label, err)}}
	}

	return partitionOutcome{solution: &PartitionSolution{Key: job.key, Instance: inst, Assign: assign, Solver: solver}}
}

