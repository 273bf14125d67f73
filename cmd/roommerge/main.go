package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tranvinh/roommerge/internal/config"
	"github.com/tranvinh/roommerge/internal/ingest"
	"github.com/tranvinh/roommerge/internal/solve"
)

func main() {
	inFilePtr := flag.String("i", "", "Path to the input CSV file")
	outFilePtr := flag.String("o", "", "Path to the file where the report will be written; if empty, it'll be written into the Standard Output")
	configPtr := flag.String("config", "", "Path to a JSON config file overriding threshold, time-limit and worker-count defaults")
	thresholdPtr := flag.Uint("threshold", 0, "Size threshold for solver selection; 0 keeps the config/default value")
	timeLimitPtr := flag.Uint("time-limit", 0, "Seconds for the ILP engine; 0 keeps the config/default value")
	verbosePtr := flag.Bool("verbose", false, "Emit progress lines; otherwise silent on success")
	flag.Parse()

	inFile := *inFilePtr
	outFile := *outFilePtr
	if inFile == "" {
		log.Fatal("an input file must be specified")
	}

	cfg, err := config.Load(*configPtr)
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	if *thresholdPtr > 0 {
		cfg.Threshold = uint32(*thresholdPtr)
	}
	if *timeLimitPtr > 0 {
		cfg.TimeLimitSeconds = uint32(*timeLimitPtr)
	}

	rows, err := ingest.ReadCSV(inFile)
	if err != nil {
		log.Fatalf("cannot read input file: %v", err)
	}
	if *verbosePtr {
		log.Printf("read %d rows from %v", len(rows), inFile)
	}

	result, err := solve.Optimize(context.Background(), rows, solve.Config{
		Threshold:        cfg.Threshold,
		TimeLimitSeconds: cfg.TimeLimitSeconds,
		WorkerCount:      cfg.WorkerCount,
	})
	if err != nil {
		exitOnError(err)
	}

	if *verbosePtr {
		for _, d := range result.Details {
			log.Printf("partition %s/%s: N=%d solver=%s -> %d rooms (%d saved)", d.Slot, d.Campus, d.Initial, d.Solver, d.Final, d.Saved)
		}
	}

	reportJSON, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("cannot build output json: %v", err)
	}

	if outFile == "" {
		fmt.Println(string(reportJSON))
	} else if err := os.WriteFile(outFile, reportJSON, 0666); err != nil {
		log.Fatalf("cannot write output file: %v", err)
	}
}

// exitOnError maps an unrecovered error to a distinct exit code so callers
// can distinguish invalid input from a solver invariant violation without
// scraping stderr.
func exitOnError(err error) {
	var invalidInput *solve.InvalidInputError
	var internalErr *solve.InternalError

	switch {
	case errors.As(err, &invalidInput):
		log.Printf("invalid input: %v", err)
		os.Exit(10)
	case errors.As(err, &internalErr):
		log.Printf("internal error: %v", err)
		os.Exit(20)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.Printf("canceled: %v", err)
		os.Exit(30)
	default:
		log.Printf("error: %v", err)
		os.Exit(1)
	}
}
