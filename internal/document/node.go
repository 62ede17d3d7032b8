package document

import (
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// ErrUnexpectedKind is returned when a node does not hold the requested kind
// of value.
var ErrUnexpectedKind = errors.New("unexpected node kind")

const (
	tagNull  = "!!null"
	tagBool  = "!!bool"
	tagInt   = "!!int"
	tagFloat = "!!float"
)

// Node is a read-only view over one value of a parsed document. Mappings
// keep their keys in document order. The zero Node is absent.
type Node struct {
	n *yaml.Node
}

// Entry is one key/value pair of a mapping, in document order.
type Entry struct {
	Key   string
	Value Node
}

func wrap(n *yaml.Node) Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return Node{n: n}
}

// Exists reports whether the node is present and not an explicit null.
func (n Node) Exists() bool {
	return n.n != nil && !(n.n.Kind == yaml.ScalarNode && n.n.ShortTag() == tagNull)
}

// IsObject reports whether the node is a mapping.
func (n Node) IsObject() bool {
	return n.n != nil && n.n.Kind == yaml.MappingNode
}

// IsArray reports whether the node is a sequence.
func (n Node) IsArray() bool {
	return n.n != nil && n.n.Kind == yaml.SequenceNode
}

// Line is the 1-based source line of the node, or 0 when absent.
func (n Node) Line() int {
	if n.n == nil {
		return 0
	}
	return n.n.Line
}

// Get returns the value stored under key. Explicit nulls are reported as
// absent. When a key repeats, the last occurrence wins.
func (n Node) Get(key string) (Node, bool) {
	if !n.IsObject() {
		return Node{}, false
	}
	var found Node
	for i := 0; i+1 < len(n.n.Content); i += 2 {
		if n.n.Content[i].Value == key {
			found = wrap(n.n.Content[i+1])
		}
	}
	return found, found.Exists()
}

// Has reports whether key holds a non-null value.
func (n Node) Has(key string) bool {
	_, ok := n.Get(key)
	return ok
}

// Entries returns the key/value pairs of a mapping in document order.
func (n Node) Entries() []Entry {
	if !n.IsObject() {
		return nil
	}
	entries := make([]Entry, 0, len(n.n.Content)/2)
	for i := 0; i+1 < len(n.n.Content); i += 2 {
		entries = append(entries, Entry{
			Key:   n.n.Content[i].Value,
			Value: wrap(n.n.Content[i+1]),
		})
	}
	return entries
}

// Items returns the elements of a sequence in document order.
func (n Node) Items() []Node {
	if !n.IsArray() {
		return nil
	}
	items := make([]Node, len(n.n.Content))
	for i, c := range n.n.Content {
		items[i] = wrap(c)
	}
	return items
}

// Float returns the numeric value of a scalar node. Quoted numbers are
// rejected.
func (n Node) Float() (float64, error) {
	if n.n == nil || n.n.Kind != yaml.ScalarNode || (n.n.ShortTag() != tagInt && n.n.ShortTag() != tagFloat) {
		return 0, fmt.Errorf(ErrFmtExpectedNumber, ErrUnexpectedKind, n.Line(), n.value())
	}
	var v float64
	if err := n.n.Decode(&v); err != nil {
		return 0, fmt.Errorf(ErrFmtExpectedNumber, ErrUnexpectedKind, n.Line(), n.value())
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf(ErrFmtExpectedFinite, ErrUnexpectedKind, n.Line(), n.value())
	}
	return v, nil
}

// Int returns the value of a numeric scalar that has no fractional part.
func (n Node) Int() (int, error) {
	v, err := n.Float()
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) || v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf(ErrFmtExpectedInteger, ErrUnexpectedKind, n.Line(), n.value())
	}
	return int(v), nil
}

// Bool returns the value of a boolean scalar.
func (n Node) Bool() (bool, error) {
	if n.n == nil || n.n.Kind != yaml.ScalarNode || n.n.ShortTag() != tagBool {
		return false, fmt.Errorf(ErrFmtExpectedBool, ErrUnexpectedKind, n.Line(), n.value())
	}
	var v bool
	if err := n.n.Decode(&v); err != nil {
		return false, fmt.Errorf(ErrFmtExpectedBool, ErrUnexpectedKind, n.Line(), n.value())
	}
	return v, nil
}

// Text returns the text of any scalar node.
func (n Node) Text() (string, error) {
	if n.n == nil || n.n.Kind != yaml.ScalarNode || n.n.ShortTag() == tagNull {
		return "", fmt.Errorf(ErrFmtExpectedString, ErrUnexpectedKind, n.Line())
	}
	return n.n.Value, nil
}

// Decode unmarshals the node into v using yaml struct tags.
func (n Node) Decode(v any) error {
	if n.n == nil {
		return fmt.Errorf("%w: absent node", ErrUnexpectedKind)
	}
	return n.n.Decode(v)
}

func (n Node) value() string {
	if n.n == nil {
		return ""
	}
	if n.n.Kind != yaml.ScalarNode {
		return kindName(n.n.Kind)
	}
	return n.n.Value
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.MappingNode:
		return "object"
	case yaml.SequenceNode:
		return "array"
	case yaml.DocumentNode:
		return "document"
	default:
		return "scalar"
	}
}
