package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/osse101/TemplateOverrides_Go/internal/domain"
)

// Format selects how raw bytes are parsed.
type Format int

const (
	// FormatJSON accepts JSON with comments and trailing commas.
	FormatJSON Format = iota
	// FormatYAML accepts any YAML document.
	FormatYAML
)

// FormatForPath picks the format from the file extension. Unknown
// extensions are treated as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtYAML, ExtYML:
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Loader reads configuration documents from disk.
type Loader interface {
	Load(path string) (Node, error)
}

type documentLoader struct{}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &documentLoader{}
}

// Load reads and parses the document at path. A missing file is reported as
// domain.ErrDocumentNotFound, an unparsable one as domain.ErrMalformedDocument.
func (l *documentLoader) Load(path string) (Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Node{}, fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, path)
		}
		return Node{}, fmt.Errorf(ErrMsgReadDocumentFailed, path, err)
	}

	root, err := Parse(data, FormatForPath(path))
	if err != nil {
		return Node{}, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

// Parse turns raw bytes into the root mapping of a document.
func Parse(data []byte, format Format) (Node, error) {
	if format == FormatJSON {
		normalized, err := normalizeJSON(data)
		if err != nil {
			return Node{}, err
		}
		data = normalized
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Node{}, fmt.Errorf("%w: %s: %v", domain.ErrMalformedDocument, ErrMsgParseDocumentFailed, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return Node{}, fmt.Errorf("%w: %s", domain.ErrMalformedDocument, ErrMsgEmptyDocument)
	}

	root := wrap(doc.Content[0])
	if !root.IsObject() {
		return Node{}, fmt.Errorf("%w: %s", domain.ErrMalformedDocument, ErrMsgRootNotMapping)
	}
	return root, nil
}

// normalizeJSON strips comments and trailing commas, checks the result is
// strict JSON and re-indents it with spaces so the YAML parser never sees
// tab indentation.
func normalizeJSON(data []byte) ([]byte, error) {
	stripped := jsonc.ToJSON(data)
	if len(bytes.TrimSpace(stripped)) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrMalformedDocument, ErrMsgEmptyDocument)
	}
	if !json.Valid(stripped) {
		return nil, fmt.Errorf("%w: %s", domain.ErrMalformedDocument, ErrMsgInvalidJSON)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, stripped, "", jsonIndent); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrMalformedDocument, err.Error())
	}
	return buf.Bytes(), nil
}
