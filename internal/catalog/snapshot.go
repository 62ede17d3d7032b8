package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/TemplateOverrides_Go/internal/domain"
	"github.com/osse101/TemplateOverrides_Go/internal/logger"
	"github.com/osse101/TemplateOverrides_Go/internal/validation"
)

// Source produces a populated catalog.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}

// Snapshot is the on-disk form of a catalog: the item templates keyed by id
// and the global stimulator buff table keyed by buff name.
type Snapshot struct {
	Items map[domain.ItemID]*domain.Template `json:"items"`
	Buffs map[string][]domain.Buff           `json:"buffs"`
}

// FromSnapshot builds a catalog from a decoded snapshot. A template without
// an id takes its map key; a template whose id disagrees with its key is
// rejected.
func FromSnapshot(s *Snapshot) (*Catalog, error) {
	c := New()
	if s == nil {
		return c, nil
	}
	for key, t := range s.Items {
		if t == nil {
			continue
		}
		if t.ID == "" {
			t.ID = key
		}
		if t.ID != key {
			return nil, fmt.Errorf(ErrFmtTemplateIDKey, domain.ErrInvalidCatalog, key, t.ID)
		}
		if err := c.Add(t); err != nil {
			return nil, err
		}
	}
	for name, buffs := range s.Buffs {
		c.ReplaceBuffs(name, buffs)
	}
	return c, nil
}

// FileSource loads a catalog from a JSON snapshot file.
type FileSource struct {
	path            string
	schemaValidator validation.SchemaValidator
}

// NewFileSource creates a FileSource reading path
func NewFileSource(path string) *FileSource {
	return &FileSource{
		path:            path,
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads, schema-validates and decodes the snapshot.
func (s *FileSource) Load(ctx context.Context) (*Catalog, error) {
	snapshot, err := s.Snapshot()
	if err != nil {
		return nil, err
	}

	c, err := FromSnapshot(snapshot)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgSnapshotLoaded,
		"path", s.path,
		"templates", c.Len(),
		"buff_lists", len(c.buffs))
	return c, nil
}

// Snapshot reads and schema-validates the file without building a catalog.
func (s *FileSource) Snapshot() (*Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadSnapshotFailed, err)
	}

	if err := s.schemaValidator.ValidateBytes(data, SnapshotSchemaPath); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, s.path, err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf(ErrMsgParseSnapshotFailed, err)
	}
	return &snapshot, nil
}
