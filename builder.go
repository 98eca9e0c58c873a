package mapper

import "reflect"

// Builder provides a fluent API to construct a Config with flags, adapters
// and object converters pre-registered. A Builder is not safe for concurrent
// use; the Config it builds is.
type Builder struct {
	version                  int
	closeStreams             bool
	skipNull                 bool
	skipEmptyArray           bool
	byteArrayAsBase64        bool
	byteArrayAsBase64URL     bool
	readAttributeBeforeWrite bool
	access                   AccessPolicy
	encoding                 string
	attributeOrder           func(a, b string) int
	adapters                 map[AdapterKey]Adapter
	converters               []converterEntry
}

// NewBuilder creates a new builder with default flags.
func NewBuilder() *Builder {
	return &Builder{
		version:  -1,
		encoding: "UTF-8",
		adapters: make(map[AdapterKey]Adapter),
	}
}

// WithVersion sets the model version attributes are filtered against.
func (b *Builder) WithVersion(v int) *Builder { b.version = v; return b }

// WithCloseStreams controls whether wrapped readers/writers are closed.
func (b *Builder) WithCloseStreams(v bool) *Builder { b.closeStreams = v; return b }

// WithSkipNull controls omission of null attributes.
func (b *Builder) WithSkipNull(v bool) *Builder { b.skipNull = v; return b }

// WithSkipEmptyArray controls omission of empty arrays.
func (b *Builder) WithSkipEmptyArray(v bool) *Builder { b.skipEmptyArray = v; return b }

// WithByteArrayAsBase64 serializes byte slices as standard base64.
func (b *Builder) WithByteArrayAsBase64(v bool) *Builder { b.byteArrayAsBase64 = v; return b }

// WithByteArrayAsBase64URL serializes byte slices with the URL-safe alphabet.
func (b *Builder) WithByteArrayAsBase64URL(v bool) *Builder { b.byteArrayAsBase64URL = v; return b }

// WithReadAttributeBeforeWrite reads attributes back before overwriting them.
func (b *Builder) WithReadAttributeBeforeWrite(v bool) *Builder {
	b.readAttributeBeforeWrite = v
	return b
}

// WithAccess sets the attribute access policy.
func (b *Builder) WithAccess(p AccessPolicy) *Builder { b.access = p; return b }

// WithEncoding sets the charset name used for raw byte output.
func (b *Builder) WithEncoding(name string) *Builder { b.encoding = name; return b }

// WithAttributeOrder sets the attribute ordering comparator
// (slices.SortFunc convention).
func (b *Builder) WithAttributeOrder(cmp func(a, b string) int) *Builder {
	b.attributeOrder = cmp
	return b
}

// AddAdapter registers a under the (from, to) type pair. Pass example values
// or pointers: one level of pointer indirection is stripped, so a pointer to
// an interface registers the interface type.
func (b *Builder) AddAdapter(from, to any, a Adapter) *Builder {
	b.adapters[AdapterKey{From: typeOf(from), To: typeOf(to)}] = a
	return b
}

// AddStringAdapter registers a under the (from, string) pair, the key
// FindAdapter probes.
func (b *Builder) AddStringAdapter(from any, a Adapter) *Builder {
	b.adapters[AdapterKey{From: typeOf(from), To: stringType}] = a
	return b
}

// AddObjectConverter registers conv for the type of typ. Pass a pointer to
// an interface to register the interface itself:
//
//	b.AddObjectConverter((*Shape)(nil), conv)
//
// Registration order is significant: the exact-match scan and the hierarchy
// tie-break both iterate entries in the order they were added.
func (b *Builder) AddObjectConverter(typ any, conv ObjectConverter) *Builder {
	b.converters = append(b.converters, converterEntry{typ: typeOf(typ), conv: conv})
	return b
}

// Build constructs the Config, seeding both registries in one shot.
func (b *Builder) Build() *Config {
	c := &Config{
		version:                  b.version,
		closeStreams:             b.closeStreams,
		skipNull:                 b.skipNull,
		skipEmptyArray:           b.skipEmptyArray,
		byteArrayAsBase64:        b.byteArrayAsBase64,
		byteArrayAsBase64URL:     b.byteArrayAsBase64URL,
		readAttributeBeforeWrite: b.readAttributeBeforeWrite,
		access:                   b.access,
		encoding:                 b.encoding,
		attributeOrder:           b.attributeOrder,
		converters:               append([]converterEntry(nil), b.converters...),
	}
	for k, a := range b.adapters {
		c.adapters.Store(k, a)
	}
	return c
}

func typeOf(v any) reflect.Type {
	t := reflect.TypeOf(v)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
