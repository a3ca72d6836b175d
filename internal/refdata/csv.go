// Package refdata locates and filters the flat reference tables a tariff
// build consumes: wholesale curves, shaping adders, loss factors,
// pass-through charges, and customer archetypes. Each loader filters its
// dataset to the requested market/commodity/segment/year slice and exposes
// band-keyed lookups built once per load.
package refdata

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/allinpricing/tariffbuild/internal/tariff"
)

const dateLayout = "2006-01-02"

// table is one parsed CSV file: a header index plus data rows.
type table struct {
	path string
	cols map[string]int
	rows [][]string
}

// readTable reads a whole CSV file. A missing file is an ErrNotFound: every
// dataset the engine asks for is required to exist, even if its filtered
// slice ends up empty.
func readTable(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: required input file %s", tariff.ErrNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s has no header row", tariff.ErrValidation, path)
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[name] = i
	}
	return &table{path: path, cols: cols, rows: records[1:]}, nil
}

func (t *table) field(row []string, col string) (string, error) {
	idx, ok := t.cols[col]
	if !ok {
		return "", fmt.Errorf("%w: %s is missing column %q", tariff.ErrValidation, t.path, col)
	}
	if idx >= len(row) {
		return "", fmt.Errorf("%w: %s has a short row (no %q value)", tariff.ErrValidation, t.path, col)
	}
	return row[idx], nil
}

func (t *table) floatField(row []string, col string) (float64, error) {
	raw, err := t.field(row, col)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s column %q: %v", tariff.ErrValidation, t.path, col, err)
	}
	return v, nil
}

func (t *table) intField(row []string, col string) (int, error) {
	raw, err := t.field(row, col)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s column %q: %v", tariff.ErrValidation, t.path, col, err)
	}
	return v, nil
}

func (t *table) dateField(row []string, col string) (time.Time, error) {
	raw, err := t.field(row, col)
	if err != nil {
		return time.Time{}, err
	}
	v, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s column %q: %v", tariff.ErrValidation, t.path, col, err)
	}
	return v, nil
}
