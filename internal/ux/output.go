package ux

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jorge-barreto/cex/internal/cex"
	"gopkg.in/yaml.v3"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// Output formats accepted by Encode.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidFormat reports whether f is a known output format.
func ValidFormat(f string) bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// Encode writes v as JSON or YAML.
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}

// RenderLabels prints each label with the number of blocks stored under it.
func RenderLabels(w io.Writer, store *cex.Store) {
	labels := store.Labels()
	if len(labels) == 0 {
		fmt.Fprintf(w, "%s(no blocks)%s\n", Dim, Reset)
		return
	}
	for _, l := range labels {
		n := len(store.Bodies(l))
		fmt.Fprintf(w, "  %s%-26s%s %s%d block%s%s\n", Cyan, "#!"+l, Reset, Dim, n, plural(n), Reset)
	}
}

// RenderBodies prints every body under label, separated by a marker header.
func RenderBodies(w io.Writer, label string, bodies []string) {
	if len(bodies) == 0 {
		fmt.Fprintf(w, "%s(no blocks labeled %q)%s\n", Dim, label, Reset)
		return
	}
	for i, b := range bodies {
		fmt.Fprintf(w, "%s#!%s%s %s[%d/%d]%s\n", Cyan, label, Reset, Dim, i+1, len(bodies), Reset)
		fmt.Fprintln(w, b)
		if i < len(bodies)-1 {
			fmt.Fprintln(w)
		}
	}
}

// RenderTable prints a table with columns padded to their widest cell.
func RenderTable(w io.Writer, t cex.Table) {
	widths := make([]int, len(t.Header))
	grow := func(row []string) {
		for i, c := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if len(c) > widths[i] {
				widths[i] = len(c)
			}
		}
	}
	grow(t.Header)
	for _, r := range t.Rows {
		grow(r)
	}

	line := func(row []string) string {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = fmt.Sprintf("%-*s", widths[i], c)
		}
		return strings.TrimRight(strings.Join(cells, "  "), " ")
	}

	fmt.Fprintf(w, "%s%s%s\n", Bold, line(t.Header), Reset)
	for _, r := range t.Rows {
		fmt.Fprintln(w, line(r))
	}
}

// RenderValues prints one value per line.
func RenderValues(w io.Writer, values []string) {
	if len(values) == 0 {
		fmt.Fprintf(w, "%s(no values)%s\n", Dim, Reset)
		return
	}
	for _, v := range values {
		fmt.Fprintln(w, v)
	}
}

// RenderRelationSets prints each relation set with its URN and label.
func RenderRelationSets(w io.Writer, sets []cex.RelationSet) {
	if len(sets) == 0 {
		fmt.Fprintf(w, "%s(no relation sets)%s\n", Dim, Reset)
		return
	}
	for i, rs := range sets {
		fmt.Fprintf(w, "%s%s%s %s— %s%s\n", Bold, rs.URN, Reset, Dim, rs.Label, Reset)
		if rs.Data != "" {
			for _, l := range strings.Split(rs.Data, "\n") {
				fmt.Fprintf(w, "  %s\n", l)
			}
		}
		if i < len(sets)-1 {
			fmt.Fprintln(w)
		}
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
