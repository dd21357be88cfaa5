// Package project reads and writes the JSON documents of a JavaScript project:
// the package.json manifest and the standalone .release-it.json config.
package project

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/iancoleman/orderedmap"
)

// Document is a JSON object that keeps its keys in insertion order, so a
// rewritten file lists its fields the way the user wrote them.
// Nested objects are stored as *Document values; arrays as []any.
type Document struct {
	m *orderedmap.OrderedMap
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{m: orderedmap.New()}
}

// Keys returns the document keys in order.
func (d *Document) Keys() []string {
	return d.m.Keys()
}

// Len returns the number of keys.
func (d *Document) Len() int {
	return len(d.m.Keys())
}

// Get returns the value stored under key.
func (d *Document) Get(key string) (any, bool) {
	return d.m.Get(key)
}

// Has reports whether key is present, regardless of its value.
func (d *Document) Has(key string) bool {
	_, ok := d.m.Get(key)
	return ok
}

// Set stores value under key. A new key is appended; an existing key keeps
// its position.
func (d *Document) Set(key string, value any) {
	d.m.Set(key, normalize(value))
}

// Object returns the nested object stored under key.
func (d *Document) Object(key string) (*Document, bool) {
	value, ok := d.m.Get(key)
	if !ok {
		return nil, false
	}
	nested, ok := value.(*Document)
	return nested, ok
}

// EnsureObject returns the nested object under key, replacing any missing or
// non-object value with an empty object.
func (d *Document) EnsureObject(key string) *Document {
	if nested, ok := d.Object(key); ok {
		return nested
	}
	nested := NewDocument()
	d.m.Set(key, nested)
	return nested
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := NewDocument()
	for _, key := range d.Keys() {
		value, _ := d.m.Get(key)
		out.m.Set(key, cloneValue(value))
	}
	return out
}

// Plain converts the document into map[string]any and []any values.
func (d *Document) Plain() map[string]any {
	out := make(map[string]any, d.Len())
	for _, key := range d.Keys() {
		value, _ := d.m.Get(key)
		out[key] = plainValue(value)
	}
	return out
}

// MarshalJSON encodes the document with keys in order. HTML escaping is up to
// the caller's encoder; Encode turns it off.
func (d *Document) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range d.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodedKey, err := encodeValue(key)
		if err != nil {
			return nil, err
		}
		buf.Write(encodedKey)
		buf.WriteByte(':')
		value, _ := d.m.Get(key)
		encodedValue, err := encodeValue(value)
		if err != nil {
			return nil, err
		}
		buf.Write(encodedValue)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping key order at every level.
func (d *Document) UnmarshalJSON(data []byte) error {
	decoded := orderedmap.New()
	if err := json.Unmarshal(data, decoded); err != nil {
		return err
	}
	d.m = fromOrdered(decoded).m
	return nil
}

func encodeValue(value any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func fromOrdered(om *orderedmap.OrderedMap) *Document {
	doc := NewDocument()
	for _, key := range om.Keys() {
		value, _ := om.Get(key)
		doc.m.Set(key, normalize(value))
	}
	return doc
}

// normalize converts decoded JSON objects into *Document values.
func normalize(value any) any {
	switch v := value.(type) {
	case orderedmap.OrderedMap:
		return fromOrdered(&v)
	case *orderedmap.OrderedMap:
		return fromOrdered(v)
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		doc := NewDocument()
		for _, key := range keys {
			doc.m.Set(key, normalize(v[key]))
		}
		return doc
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalize(item)
		}
		return out
	default:
		return value
	}
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case *Document:
		return v.Clone()
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return value
	}
}

func plainValue(value any) any {
	switch v := value.(type) {
	case *Document:
		return v.Plain()
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = plainValue(item)
		}
		return out
	default:
		return value
	}
}
