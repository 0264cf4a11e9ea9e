package store

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/dshills/reckon/internal/calc"
	"github.com/dshills/reckon/internal/operation"
)

// History file column order.
var csvHeader = []string{"operation", "operand1", "operand2", "result", "timestamp"}

// CSVStore persists history to a CSV file. Rows are re-validated
// against the operation registry on load.
type CSVStore struct {
	path   string
	reg    *operation.Registry
	logger calc.Logger
}

// NewCSVStore returns a store backed by the CSV file at path.
func NewCSVStore(path string, reg *operation.Registry, logger calc.Logger) *CSVStore {
	return &CSVStore{path: path, reg: reg, logger: logger}
}

// Path returns the history file location.
func (s *CSVStore) Path() string { return s.path }

// Load reads the history file. A missing or header-only file yields an
// empty history. Rows that fail to reconstruct are skipped with a
// warning so one corrupt line cannot take the rest of the history down.
func (s *CSVStore) Load() ([]calc.Calculation, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrPersistence, s.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	// A header with no data rows is an empty history, not a parse error.
	if bytes.Count(bytes.TrimSpace(data), []byte("\n")) == 0 {
		return nil, nil
	}

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrPersistence, s.path, df.Err)
	}

	col := make(map[string]int, len(csvHeader))
	for i, name := range df.Names() {
		col[name] = i
	}
	for _, name := range csvHeader {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%w: %s is missing column %q", ErrPersistence, s.path, name)
		}
	}

	records := df.Records()[1:]
	history := make([]calc.Calculation, 0, len(records))
	for i, row := range records {
		rec := calc.Record{
			Operation: row[col["operation"]],
			Operand1:  row[col["operand1"]],
			Operand2:  row[col["operand2"]],
			Result:    row[col["result"]],
			Timestamp: row[col["timestamp"]],
		}
		c, err := calc.FromRecord(s.reg, rec, s.logger)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("skipping unreadable history row",
					"file", s.path, "row", i+1, "error", err.Error())
			}
			continue
		}
		history = append(history, c)
	}
	return history, nil
}

// Save writes the full history to the CSV file, creating parent
// directories as needed. An empty history writes a header-only file.
func (s *CSVStore) Save(history []calc.Calculation) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: creating %s: %v", ErrPersistence, dir, err)
		}
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrPersistence, s.path, err)
	}
	defer f.Close()

	if len(history) == 0 {
		w := csv.NewWriter(f)
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("%w: writing %s: %v", ErrPersistence, s.path, err)
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return fmt.Errorf("%w: writing %s: %v", ErrPersistence, s.path, err)
		}
		return nil
	}

	records := make([][]string, 0, len(history)+1)
	records = append(records, csvHeader)
	for _, c := range history {
		rec := c.Record()
		records = append(records, []string{rec.Operation, rec.Operand1, rec.Operand2, rec.Result, rec.Timestamp})
	}

	df := dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return fmt.Errorf("%w: building frame for %s: %v", ErrPersistence, s.path, df.Err)
	}
	if err := df.WriteCSV(f, dataframe.WriteHeader(true)); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrPersistence, s.path, err)
	}
	return nil
}
