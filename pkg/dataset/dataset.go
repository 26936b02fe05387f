package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row maps a column header to the cell value of one record.
type Row map[string]string

// DataSet is an immutable snapshot of one loaded data file.
type DataSet struct {
	Columns []string
	Rows    []Row
}

// Load reads the tabular file at path, dispatching on its extension.
func Load(path string) (*DataSet, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return loadWorkbook(path)
	case ".csv":
		return loadCSV(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, path)
	}
}

func loadWorkbook(path string) (*DataSet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyData, path)
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	return fromRecords(records, path)
}

func loadCSV(path string) (*DataSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	return fromRecords(records, path)
}

// fromRecords builds the DataSet: first record is the header row, the rest
// are data. Short rows pad with empty values, long rows truncate, so every
// row carries exactly the header columns.
func fromRecords(records [][]string, path string) (*DataSet, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyData, path)
	}

	columns := make([]string, len(records[0]))
	for i, h := range records[0] {
		columns[i] = strings.TrimSpace(h)
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyData, path)
	}

	return &DataSet{Columns: columns, Rows: rows}, nil
}
