package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jorge-barreto/cex/internal/cex"
	"github.com/jorge-barreto/cex/internal/loader"
	"gopkg.in/yaml.v3"
)

// Snapshot is the serializable form of a parsed document.
type Snapshot struct {
	ID        string      `json:"id" yaml:"id"`
	Source    string      `json:"source" yaml:"source"`
	CreatedAt time.Time   `json:"created_at" yaml:"created_at"`
	Blocks    []cex.Block `json:"blocks" yaml:"blocks"`
}

// New captures the blocks of doc.
func New(doc *loader.Document) *Snapshot {
	return &Snapshot{
		ID:        doc.ID,
		Source:    doc.Source,
		CreatedAt: doc.LoadedAt.UTC(),
		Blocks:    doc.Store.Blocks(),
	}
}

// Format is the on-disk encoding of a snapshot.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the encoding from the file extension. Anything other than
// .yaml or .yml is JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Marshal encodes the snapshot in the given format.
func (s *Snapshot) Marshal(f Format) ([]byte, error) {
	switch f {
	case FormatYAML:
		return yaml.Marshal(s)
	case FormatJSON:
		return json.MarshalIndent(s, "", "  ")
	default:
		return nil, fmt.Errorf("unknown snapshot format %q", f)
	}
}

// Save writes the snapshot to path, choosing the format from its extension.
func (s *Snapshot) Save(path string) error {
	data, err := s.Marshal(FormatFor(path))
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return writeFileAtomic(path, data, 0644)
}

// Load reads a snapshot written by Save.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Snapshot
	switch FormatFor(path) {
	case FormatYAML:
		err = yaml.Unmarshal(data, &s)
	default:
		err = json.Unmarshal(data, &s)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding snapshot %s: %w", path, err)
	}
	return &s, nil
}

// Store rebuilds a queryable store from the snapshot blocks.
func (s *Snapshot) Store(opts ...cex.Option) *cex.Store {
	return cex.FromBlocks(s.Blocks, opts...)
}

// Document wraps the snapshot as a loaded document.
func (s *Snapshot) Document(opts ...cex.Option) *loader.Document {
	return &loader.Document{
		ID:       s.ID,
		Source:   s.Source,
		LoadedAt: s.CreatedAt,
		Store:    s.Store(opts...),
	}
}
