package solve

import "context"

// Optimize is the library entry point (spec §6): partition, solve each
// partition concurrently, and assemble the final report. It is the only
// function the CLI (or any other caller) needs.
func Optimize(ctx context.Context, rows []Row, cfg Config) (Result, error) {
	solutions, err := Dispatch(ctx, rows, cfg)
	if err != nil {
		return Result{}, err
	}
	return Assemble(solutions), nil
}
