package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

// Table is one raw tabular source file: a header row plus data rows.
type Table struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// SourceFiles names the four required source tables inside the data directory.
type SourceFiles struct {
	Project       string
	Address       string
	Configuration string
	Variant       string
}

// DefaultSourceFiles returns the file names used by the upstream data export.
func DefaultSourceFiles() SourceFiles {
	return SourceFiles{
		Project:       "project.csv",
		Address:       "ProjectAddress.csv",
		Configuration: "ProjectConfiguration.csv",
		Variant:       "ProjectConfigurationVariant.csv",
	}
}

// Tables holds the four loaded source tables.
type Tables struct {
	Project       Table
	Address       Table
	Configuration Table
	Variant       Table
}

// LoadTables loads the four source tables from dir. A missing or unreadable
// file is returned as a *DataLoadError.
func LoadTables(dir string, files SourceFiles) (*Tables, error) {
	tables := &Tables{}
	for _, src := range []struct {
		name string
		file string
		dst  *Table
	}{
		{"project", files.Project, &tables.Project},
		{"address", files.Address, &tables.Address},
		{"configuration", files.Configuration, &tables.Configuration},
		{"variant", files.Variant, &tables.Variant},
	} {
		table, err := loadTable(src.name, filepath.Join(dir, src.file))
		if err != nil {
			return nil, err
		}
		*src.dst = table
	}
	return tables, nil
}

func loadTable(name, path string) (Table, error) {
	var records [][]string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		records, err = readExcel(path)
	default:
		records, err = readCSV(path)
	}
	if err != nil {
		return Table{}, &DataLoadError{Path: path, Err: err}
	}
	if len(records) == 0 {
		return Table{}, &DataLoadError{Path: path, Err: errors.New("file has no header row")}
	}

	return Table{Name: name, Headers: records[0], Rows: records[1:]}, nil
}

func readCSV(path string) ([][]string, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	payload = bytes.TrimPrefix(payload, byteOrderMark)

	reader := csv.NewReader(bytes.NewReader(payload))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return records, nil
}

func readExcel(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from xlsx: %w", err)
	}
	return rows, nil
}
