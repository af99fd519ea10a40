package cex

import (
	"sort"
	"strings"
)

const (
	// DataModelsLabel is the block label queried by Models and CollectionsForModel.
	DataModelsLabel = "datamodels"

	DefaultModelColumn      = "Model"
	DefaultCollectionColumn = "Collection"

	cellSeparator = "|"
)

// Table is the header/rows view of one block body.
type Table struct {
	Header []string   `json:"header" yaml:"header"`
	Rows   [][]string `json:"rows" yaml:"rows"`
}

// Column returns the index of name in the header, or -1.
func (t Table) Column(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

func splitCells(line string) []string {
	cells := strings.Split(line, cellSeparator)
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

func tableOf(lines []string) Table {
	t := Table{Header: splitCells(lines[0])}
	for _, line := range lines[1:] {
		t.Rows = append(t.Rows, splitCells(line))
	}
	return t
}

// Tables interprets each body under label as a pipe-delimited table. Bodies
// with no content lines are omitted.
func (s *Store) Tables(label string) []Table {
	var out []Table
	for _, body := range s.blocks[label] {
		lines := contentLines(body)
		if len(lines) == 0 {
			continue
		}
		out = append(out, tableOf(lines))
	}
	return out
}

// DelimitedData concatenates the data rows of every body under label. When
// includeHeader is set, the header of the first non-empty body is emitted once
// at the top. Headers of later bodies are not compared against it.
func (s *Store) DelimitedData(label string, includeHeader bool) string {
	var out []string
	headerDone := false
	for _, body := range s.blocks[label] {
		lines := contentLines(body)
		if len(lines) == 0 {
			continue
		}
		if includeHeader && !headerDone {
			out = append(out, lines[0])
			headerDone = true
		}
		out = append(out, lines[1:]...)
	}
	return strings.Join(out, "\n")
}

// ColumnQuery selects the distinct values of ValueColumn from the tables under
// Label. When KeyColumn is set, only rows whose KeyColumn cell equals KeyValue
// contribute. An empty Label means DataModelsLabel.
type ColumnQuery struct {
	Label       string
	ValueColumn string
	KeyColumn   string
	KeyValue    string
}

// UniqueColumnValues returns the distinct values matched by q in ascending
// order. Bodies missing a named column contribute nothing.
func (s *Store) UniqueColumnValues(q ColumnQuery) []string {
	label := q.Label
	if label == "" {
		label = DataModelsLabel
	}

	seen := make(map[string]bool)
	for i, body := range s.blocks[label] {
		lines := contentLines(body)
		if len(lines) == 0 {
			continue
		}
		t := tableOf(lines)

		valueIdx := t.Column(q.ValueColumn)
		if valueIdx == -1 {
			s.log.Warn("skipping block: column not found",
				"label", label, "occurrence", i+1, "column", q.ValueColumn)
			continue
		}
		keyIdx := -1
		if q.KeyColumn != "" {
			keyIdx = t.Column(q.KeyColumn)
			if keyIdx == -1 {
				s.log.Warn("skipping block: column not found",
					"label", label, "occurrence", i+1, "column", q.KeyColumn)
				continue
			}
		}
		minCells := max(valueIdx, keyIdx) + 1

		for _, row := range t.Rows {
			if len(row) < minCells {
				continue
			}
			if keyIdx >= 0 && row[keyIdx] != q.KeyValue {
				continue
			}
			seen[row[valueIdx]] = true
		}
	}

	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Models returns the distinct values of modelColumn in the datamodels blocks.
// An empty modelColumn means DefaultModelColumn.
func (s *Store) Models(modelColumn string) []string {
	if modelColumn == "" {
		modelColumn = DefaultModelColumn
	}
	return s.UniqueColumnValues(ColumnQuery{ValueColumn: modelColumn})
}

// CollectionsForModel returns the distinct collections registered for model in
// the datamodels blocks. Empty column names fall back to the defaults.
func (s *Store) CollectionsForModel(model, modelColumn, collectionColumn string) []string {
	if modelColumn == "" {
		modelColumn = DefaultModelColumn
	}
	if collectionColumn == "" {
		collectionColumn = DefaultCollectionColumn
	}
	return s.UniqueColumnValues(ColumnQuery{
		ValueColumn: collectionColumn,
		KeyColumn:   modelColumn,
		KeyValue:    model,
	})
}
