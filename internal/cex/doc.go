// Package cex parses CITE Exchange (CEX) text into labeled blocks and answers
// read-only queries over the result.
//
// A document is a sequence of lines. Blank lines and lines whose trimmed form
// starts with "//" are ignored. A line whose trimmed form starts with "#!"
// opens a block labeled by the rest of that line; every other line belongs to
// the open block verbatim. Content before the first marker is discarded.
//
// Lookup policy: column names in table headers are matched exactly and are
// case-sensitive. The "urn|" and "label|" prefixes of a citerelationset block
// are matched case-insensitively.
package cex
