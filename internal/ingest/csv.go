// Package ingest reads the CLI's own normalized CSV format into solve.Row
// values. It is a collaborator of cmd/roommerge only; the optimize library
// contract takes Rows directly and never touches a file.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tranvinh/roommerge/internal/solve"
)

// columns this format reads; each is located by its header name, so their
// order in the file does not matter. "campus" is optional;
// a row lacking it falls into the default group, mirroring the original
// Vietnamese ingestion's work["campus"] = "ALL" fallback.
var columns = []string{"room", "subject", "students", "capacity", "slot", "campus"}

// ReadCSV parses a normalized CSV file (header: room,subject,students,
// capacity,slot,campus) into Rows.
func ReadCSV(path string) ([]solve.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open input file: %w", err)
	}
	defer f.Close()

	return parseCSV(f)
}

func parseCSV(r io.Reader) ([]solve.Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read header: %w", err)
	}
	index, err := resolveHeader(header)
	if err != nil {
		return nil, err
	}

	var rows []solve.Row
	for lineNum := 2; ; lineNum++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		row, err := rowFromRecord(record, index)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// resolveHeader maps required column names to their position, case- and
// whitespace-insensitively, and errors if a required column is absent.
func resolveHeader(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, required := range columns {
		if required == "campus" {
			continue
		}
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	return index, nil
}

func rowFromRecord(record []string, index map[string]int) (solve.Row, error) {
	field := func(name string) string {
		if i, ok := index[name]; ok && i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	students, err := strconv.Atoi(field("students"))
	if err != nil {
		return solve.Row{}, fmt.Errorf("students: %w", err)
	}
	capacity, err := strconv.Atoi(field("capacity"))
	if err != nil {
		return solve.Row{}, fmt.Errorf("capacity: %w", err)
	}

	campus := field("campus")

	return solve.Row{
		RoomID:    field("room"),
		SubjectID: field("subject"),
		Students:  students,
		Capacity:  capacity,
		SlotKey:   field("slot"),
		Campus:    campus,
	}, nil
}
