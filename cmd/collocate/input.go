// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/collocation/collocation"
	"github.com/katalvlaran/collocation/matrix"
)

var (
	errNoHeader      = errors.New("csv: missing header row")
	errNoRows        = errors.New("csv: no data rows")
	errUnknownColumn = errors.New("csv: unknown column")
	errBadGroups     = errors.New("groups must be comma-separated integers")
)

// Table is a numeric CSV table: one header row, one column per system.
// Missing cells are NaN.
type Table struct {
	Header []string
	Data   *matrix.Dense
}

// LoadCSV reads a Table from path.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadTable(f)
}

// ReadTable parses a comma-separated table with a header row. Empty cells
// and NaN/NA markers become NaN; every other cell must parse as float64.
func ReadTable(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errNoHeader
	}
	if err != nil {
		return nil, err
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	var data []float64
	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		for j, cell := range record {
			v, err := parseCell(cell)
			if err != nil {
				line, _ := reader.FieldPos(j)
				return nil, fmt.Errorf("csv: line %d column %q: %w", line, header[j], err)
			}
			data = append(data, v)
		}
		rows++
	}
	if rows == 0 {
		return nil, errNoRows
	}

	m, err := matrix.NewDenseFrom(rows, len(header), data, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}

	return &Table{Header: header, Data: m}, nil
}

func parseCell(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	switch strings.ToLower(cell) {
	case "", "na", "nan", "null":
		return math.NaN(), nil
	}

	return strconv.ParseFloat(cell, 64)
}

// Select returns the named columns in the given order. An empty selection
// returns every column.
func (t *Table) Select(names []string) (*matrix.Dense, []string, error) {
	if len(names) == 0 {
		return t.Data, append([]string(nil), t.Header...), nil
	}
	idx := make([]int, len(names))
	for i, name := range names {
		idx[i] = t.columnIndex(name)
		if idx[i] < 0 {
			return nil, nil, fmt.Errorf("%q: %w", name, errUnknownColumn)
		}
	}
	sel, err := t.Data.SelectColumns(idx...)
	if err != nil {
		return nil, nil, err
	}

	return sel, append([]string(nil), names...), nil
}

func (t *Table) columnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}

	return -1
}

// parseGroups parses "0,0,1,2". An empty string yields singleton groups
// for m systems.
func parseGroups(s string, m int) (collocation.Groups, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return collocation.Singletons(m), nil
	}
	parts := strings.Split(s, ",")
	g := make(collocation.Groups, len(parts))
	for i, p := range parts {
		label, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, errBadGroups)
		}
		g[i] = label
	}

	return g, nil
}
