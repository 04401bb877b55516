// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataload reads numeric samples from CSV, XLSX or plain
// newline-separated text.
package dataload

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/xuri/excelize/v2"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// Options selects what part of a table to read.
type Options struct {
	// Column is the header name or 1-based index of the column to
	// read. If empty, every numeric cell of the table is read in
	// row-major order.
	Column string

	// Sheet is the XLSX sheet to read. Default is the first sheet.
	Sheet string
}

// Data is a loaded sample.
type Data struct {
	Values []float64

	// Dropped counts cells that were empty, marked missing or not
	// numeric. Header cells are not counted.
	Dropped int

	Source string
}

// ErrNoData is returned when a table holds no numeric values.
var ErrNoData = errors.New("dataload: no numeric values")

// Load reads the file at path, choosing the format by extension:
// .xlsx and .xlsm are spreadsheets, anything else is parsed as CSV.
// Path "-" reads CSV from stdin.
func Load(path string, opts Options) (*Data, error) {
	if path == Stdin {
		return Read(os.Stdin, "stdin", opts)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return loadExcel(path, opts)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open data file")
	}
	defer f.Close()
	return Read(f, path, opts)
}

// Read parses CSV from r. A file with one value per line is a valid
// single-column CSV.
func Read(r io.Reader, source string, opts Options) (*Data, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read CSV %s", source)
	}
	return fromRows(rows, source, opts)
}

func loadExcel(path string, opts Options) (*Data, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open Excel file")
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.Newf("%s has no sheets", path)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %q", sheet)
	}
	return fromRows(rows, path, opts)
}

// fromRows extracts the selected values from a table. The first row
// is a header if any of its non-empty cells is not a number.
func fromRows(rows [][]string, source string, opts Options) (*Data, error) {
	var header []string
	if len(rows) > 0 && isHeader(rows[0]) {
		header, rows = rows[0], rows[1:]
	}

	col := -1
	if opts.Column != "" {
		var err error
		if col, err = columnIndex(header, opts.Column); err != nil {
			return nil, errors.Wrapf(err, "%s", source)
		}
	}

	d := &Data{Source: source}
	add := func(cell string) {
		if v, ok := parseCell(cell); ok {
			d.Values = append(d.Values, v)
		} else {
			d.Dropped++
		}
	}
	for _, row := range rows {
		if col >= 0 {
			if col < len(row) {
				add(row[col])
			} else {
				d.Dropped++
			}
			continue
		}
		for _, cell := range row {
			add(cell)
		}
	}
	if len(d.Values) == 0 {
		return nil, errors.Wrapf(ErrNoData, "%s", source)
	}
	return d, nil
}

func isHeader(row []string) bool {
	for _, cell := range row {
		if isMissing(cell) {
			continue
		}
		if _, ok := parseCell(cell); !ok {
			return true
		}
	}
	return false
}

func columnIndex(header []string, column string) (int, error) {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), strings.TrimSpace(column)) {
			return i, nil
		}
	}
	if n, err := strconv.Atoi(column); err == nil && n >= 1 {
		return n - 1, nil
	}
	return 0, errors.Newf("no column %q", column)
}

func isMissing(cell string) bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "", "na", "n/a", "nan", "null", "none", "-":
		return true
	}
	return false
}

// parseCell returns the finite number in cell. Missing markers and
// non-numeric text report false.
func parseCell(cell string) (float64, bool) {
	if isMissing(cell) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
