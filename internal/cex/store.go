package cex

import (
	"log/slog"
)

// Block is one label with every body captured for it, in document order.
type Block struct {
	Label  string   `json:"label" yaml:"label"`
	Bodies []string `json:"bodies" yaml:"bodies"`
}

// Store holds the blocks of one parsed document. It is not modified after
// construction and is safe for concurrent reads.
type Store struct {
	order  []string
	blocks map[string][]string
	log    *slog.Logger
}

func newStore(opts ...Option) *Store {
	s := &Store{
		blocks: make(map[string][]string),
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromBlocks builds a store from already-split blocks. Empty bodies and
// unlabeled blocks are dropped, so a label never maps to an empty sequence.
// Blocks sharing a label are merged in order.
func FromBlocks(blocks []Block, opts ...Option) *Store {
	s := newStore(opts...)
	for _, b := range blocks {
		if b.Label == "" {
			continue
		}
		for _, body := range b.Bodies {
			if body == "" {
				continue
			}
			s.add(b.Label, body)
		}
	}
	return s
}

func (s *Store) add(label, body string) {
	if _, ok := s.blocks[label]; !ok {
		s.order = append(s.order, label)
	}
	s.blocks[label] = append(s.blocks[label], body)
}

// Labels returns every label in the order it was first encountered.
func (s *Store) Labels() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Bodies returns the bodies stored under label, or an empty slice.
func (s *Store) Bodies(label string) []string {
	bodies := s.blocks[label]
	out := make([]string, len(bodies))
	copy(out, bodies)
	return out
}

// Has reports whether label has at least one body.
func (s *Store) Has(label string) bool {
	_, ok := s.blocks[label]
	return ok
}

// Len returns the number of distinct labels.
func (s *Store) Len() int {
	return len(s.order)
}

// Blocks returns the store contents as an ordered list.
func (s *Store) Blocks() []Block {
	out := make([]Block, 0, len(s.order))
	for _, label := range s.order {
		out = append(out, Block{Label: label, Bodies: s.Bodies(label)})
	}
	return out
}
