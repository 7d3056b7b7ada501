// Package airports serves the airport picker: the full IATA registry
// intersected with the set of Ryanair-served airports, loaded once from two
// CSV tables at startup.
package airports

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type Registry struct {
	byName map[string]string
	list   []Airport
}

// Load reads the full registry and the Ryanair subset from CSV files.
func Load(iataPath, ryanairPath string) (*Registry, error) {
	iataFile, err := os.Open(iataPath)
	if err != nil {
		return nil, fmt.Errorf("open iata registry: %w", err)
	}
	defer iataFile.Close()

	ryanairFile, err := os.Open(ryanairPath)
	if err != nil {
		return nil, fmt.Errorf("open ryanair airports: %w", err)
	}
	defer ryanairFile.Close()

	return LoadFrom(iataFile, ryanairFile)
}

// LoadFrom joins the two tables: only codes present in both survive, in the
// Ryanair file's order. The full registry must carry iata_code, name,
// municipality and iso_country columns; the subset only iata_code.
func LoadFrom(iataCSV, ryanairCSV io.Reader) (*Registry, error) {
	full, err := readRecords(iataCSV)
	if err != nil {
		return nil, fmt.Errorf("iata registry: %w", err)
	}

	byCode := make(map[string]Airport, len(full))
	for _, row := range full {
		code := row["iata_code"]
		if code == "" {
			continue
		}
		byCode[code] = Airport{
			Code:    code,
			Name:    row["name"],
			City:    row["municipality"],
			Country: row["iso_country"],
		}
	}

	subset, err := readRecords(ryanairCSV)
	if err != nil {
		return nil, fmt.Errorf("ryanair airports: %w", err)
	}

	r := &Registry{byName: make(map[string]string)}
	for _, row := range subset {
		a, ok := byCode[row["iata_code"]]
		if !ok {
			continue
		}
		r.list = append(r.list, a)
		r.byName[a.Name] = a.Code
	}
	return r, nil
}

// Empty returns a registry with no airports, for running without the CSVs.
func Empty() *Registry {
	return &Registry{byName: make(map[string]string)}
}

// IATAByName resolves an exact airport name to its code.
func (r *Registry) IATAByName(name string) (string, bool) {
	code, ok := r.byName[name]
	return code, ok
}

// All returns the joined listing.
func (r *Registry) All() []Airport {
	return r.list
}

func (r *Registry) Len() int {
	return len(r.list)
}

// readRecords decodes a headered CSV into one map per row.
func readRecords(in io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(in)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var rows []map[string]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
