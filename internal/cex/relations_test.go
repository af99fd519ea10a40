package cex

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestRelationSets_WithHeader(t *testing.T) {
	s := Parse("#!citerelationset\nurn|urn:test:1\nlabel|My Relation\nSource|Target\nA|B\n")
	sets := s.RelationSets(true)
	if len(sets) != 1 {
		t.Fatalf("expected 1 relation set, got %d", len(sets))
	}
	want := RelationSet{URN: "urn:test:1", Label: "My Relation", Data: "Source|Target\nA|B"}
	if sets[0] != want {
		t.Fatalf("expected %+v, got %+v", want, sets[0])
	}
}

func TestRelationSets_WithoutHeader(t *testing.T) {
	s := Parse("#!citerelationset\nurn|urn:test:1\nlabel|L\nSource|Target\nA|B\nC|D\n")
	sets := s.RelationSets(false)
	if len(sets) != 1 {
		t.Fatalf("expected 1 relation set, got %d", len(sets))
	}
	if sets[0].Data != "A|B\nC|D" {
		t.Fatalf("unexpected data %q", sets[0].Data)
	}
}

func TestRelationSets_HeaderOnly(t *testing.T) {
	s := Parse("#!citerelationset\nurn|urn:test:1\nlabel|L\nSource|Target\n")
	if got := s.RelationSets(true)[0].Data; got != "Source|Target" {
		t.Fatalf("expected header alone, got %q", got)
	}
	if got := s.RelationSets(false)[0].Data; got != "" {
		t.Fatalf("expected empty data, got %q", got)
	}
}

func TestRelationSets_TooShortSkipped(t *testing.T) {
	var buf bytes.Buffer
	s := Parse("#!citerelationset\nurn|urn:test:1\nlabel|L\n", WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	sets := s.RelationSets(true)
	if sets == nil || len(sets) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", sets)
	}
	if !strings.Contains(buf.String(), "skipping citerelationset") {
		t.Fatalf("expected a warning, got %q", buf.String())
	}
}

func TestRelationSets_PrefixCaseInsensitive(t *testing.T) {
	s := Parse("#!citerelationset\nURN| urn:test:2 \nLabel|  Commentary \nA|B\n")
	sets := s.RelationSets(true)
	if len(sets) != 1 {
		t.Fatalf("expected 1 relation set, got %d", len(sets))
	}
	if sets[0].URN != "urn:test:2" || sets[0].Label != "Commentary" {
		t.Fatalf("unexpected record %+v", sets[0])
	}
}

func TestRelationSets_MalformedSkippedOthersKept(t *testing.T) {
	doc := `#!citerelationset
label|swapped
urn|urn:bad:1
A|B
#!citerelationset
urn|urn:bad:2
title|wrong
A|B
#!citerelationset
urn|urn:good:1
label|Good
Source|Target
x|y
`
	sets := Parse(doc).RelationSets(true)
	if len(sets) != 1 {
		t.Fatalf("expected 1 relation set, got %d", len(sets))
	}
	if sets[0].URN != "urn:good:1" {
		t.Fatalf("expected the well-formed block, got %+v", sets[0])
	}
}

func TestRelationSets_OrderPreserved(t *testing.T) {
	doc := "#!citerelationset\nurn|u2\nlabel|second\nh\n#!citerelationset\nurn|u1\nlabel|first\nh\n"
	sets := Parse(doc).RelationSets(true)
	if len(sets) != 2 || sets[0].URN != "u2" || sets[1].URN != "u1" {
		t.Fatalf("expected document order, got %+v", sets)
	}
}
