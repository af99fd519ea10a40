package cex

import (
	"strings"
)

// RelationSetLabel is the block label read by RelationSets.
const RelationSetLabel = "citerelationset"

const (
	urnPrefix   = "urn|"
	labelPrefix = "label|"
)

// RelationSet is one citerelationset block: its URN, its label, and its
// pipe-delimited data section.
type RelationSet struct {
	URN   string `json:"urn" yaml:"urn"`
	Label string `json:"label" yaml:"label"`
	Data  string `json:"data" yaml:"data"`
}

// RelationSets extracts every well-formed citerelationset block. A block needs
// a "urn|" line, a "label|" line and a data header line, in that order;
// blocks that do not are skipped and logged.
func (s *Store) RelationSets(includeHeader bool) []RelationSet {
	var out []RelationSet
	for i, body := range s.blocks[RelationSetLabel] {
		lines := contentLines(body)
		if len(lines) < 3 {
			s.log.Warn("skipping citerelationset: expected urn, label and data header lines",
				"occurrence", i+1, "lines", len(lines), "content", preview(body))
			continue
		}

		urn, ok := cutPrefixFold(lines[0], urnPrefix)
		if !ok {
			s.log.Warn("skipping citerelationset: malformed urn line",
				"occurrence", i+1, "line", lines[0])
			continue
		}
		label, ok := cutPrefixFold(lines[1], labelPrefix)
		if !ok {
			s.log.Warn("skipping citerelationset: malformed label line",
				"occurrence", i+1, "line", lines[1])
			continue
		}

		header, rows := lines[2], lines[3:]
		var data string
		switch {
		case includeHeader && len(rows) > 0:
			data = header + "\n" + strings.Join(rows, "\n")
		case includeHeader:
			data = header
		default:
			data = strings.Join(rows, "\n")
		}

		out = append(out, RelationSet{URN: urn, Label: label, Data: data})
	}
	if out == nil {
		out = []RelationSet{}
	}
	return out
}

// cutPrefixFold removes a case-insensitive prefix and trims the remainder.
func cutPrefixFold(line, prefix string) (string, bool) {
	if len(line) < len(prefix) || !strings.EqualFold(line[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(line[len(prefix):]), true
}

func preview(body string) string {
	if len(body) > 150 {
		return body[:150] + "..."
	}
	return body
}
