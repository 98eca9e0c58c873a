package mapper

import (
	"errors"
	"reflect"
	"sync"
)

// ErrNilType is returned by FindObjectConverter when called without a type.
var ErrNilType = errors.New("mapper: type must not be nil")

// AccessPolicy selects how the hosting mapper reads and writes attributes.
type AccessPolicy int

const (
	// AccessField reads and writes exported fields directly.
	AccessField AccessPolicy = iota
	// AccessMethod goes through getter/setter style methods.
	AccessMethod
	// AccessBoth prefers methods and falls back to fields.
	AccessBoth
)

var stringType = reflect.TypeOf("")

// Config carries the behavior flags and converter registries for one mapper
// instance. Flags and registries are fixed once Build returns and a single
// Config is meant to be shared by all in-flight serialize/deserialize
// operations. The resolution cache and the lazy enum-adapter registration
// are the only post-build writes; both are safe under concurrent callers.
type Config struct {
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

	adapters   sync.Map // AdapterKey -> Adapter
	converters []converterEntry

	// resolved memoizes FindObjectConverter outcomes, misses included. It
	// grows by one entry per distinct type ever queried and must never
	// disagree with the converters registry for the same type.
	resolved sync.Map // reflect.Type -> resolution
}

// Version reports the model version attributes are filtered against.
func (c *Config) Version() int { return c.version }

// CloseStreams reports whether the mapper closes readers/writers it wraps.
func (c *Config) CloseStreams() bool { return c.closeStreams }

// SkipNull reports whether null attributes are omitted from output.
func (c *Config) SkipNull() bool { return c.skipNull }

// SkipEmptyArray reports whether empty arrays are omitted from output.
func (c *Config) SkipEmptyArray() bool { return c.skipEmptyArray }

// ByteArrayAsBase64 reports whether byte slices serialize as base64.
func (c *Config) ByteArrayAsBase64() bool { return c.byteArrayAsBase64 }

// ByteArrayAsBase64URL reports whether byte slices serialize with the
// URL-safe base64 alphabet.
func (c *Config) ByteArrayAsBase64URL() bool { return c.byteArrayAsBase64URL }

// ReadAttributeBeforeWrite reports whether attributes are read back before
// being overwritten during deserialization.
func (c *Config) ReadAttributeBeforeWrite() bool { return c.readAttributeBeforeWrite }

// Access reports the attribute access policy.
func (c *Config) Access() AccessPolicy { return c.access }

// Encoding reports the charset name used for raw byte output.
func (c *Config) Encoding() string { return c.encoding }

// AttributeOrder returns the attribute ordering comparator, or nil when
// attributes keep their natural order. The comparator follows the
// slices.SortFunc convention: negative when a sorts before b.
func (c *Config) AttributeOrder() func(a, b string) int { return c.attributeOrder }

// FindAdapter returns the string adapter registered for t, synthesizing one
// on first use for enum-like types. It returns nil when no adapter applies.
func (c *Config) FindAdapter(t reflect.Type) Adapter {
	if a, ok := c.adapters.Load(AdapterKey{From: t, To: stringType}); ok {
		return a.(Adapter)
	}
	if isEnumLike(t) {
		// The registration key reverses the lookup key, so repeat calls for
		// the same enum type re-enter this branch and converge on the first
		// stored instance via LoadOrStore.
		a, _ := c.adapters.LoadOrStore(AdapterKey{From: stringType, To: t}, newEnumAdapter(t))
		return a.(Adapter)
	}
	return nil
}

// FindObjectConverter returns the ObjectConverter responsible for t.
//
// A converter registered on t itself always wins. Otherwise the registry is
// scanned for converters registered on a supertype of t and the closest one
// along t's hierarchy is chosen: t, then the interfaces t introduces at its
// own level, then t's direct base, and so on. The outcome, found or not, is
// memoized per Config.
//
// A nil converter with a nil error means no converter is registered for t;
// ErrNilType is the only failure and is returned when t is nil.
func (c *Config) FindObjectConverter(t reflect.Type) (ObjectConverter, error) {
	if t == nil {
		return nil, ErrNilType
	}
	if r, ok := c.resolved.Load(t); ok {
		return r.(resolution).converter, nil
	}
	r, _ := c.resolved.LoadOrStore(t, c.resolveObjectConverter(t))
	return r.(resolution).converter, nil
}

// resolveObjectConverter performs the uncached scan and hierarchy walk.
func (c *Config) resolveObjectConverter(t reflect.Type) resolution {
	var candidates map[reflect.Type]ObjectConverter
	var ifaces []reflect.Type
	for _, e := range c.converters {
		if e.typ == t {
			// Exact registration beats every hierarchy candidate.
			return resolution{converter: e.conv, ok: true}
		}
		if !isSupertype(e.typ, t) {
			continue
		}
		if candidates == nil {
			candidates = make(map[reflect.Type]ObjectConverter)
		}
		candidates[e.typ] = e.conv
		if e.typ.Kind() == reflect.Interface {
			ifaces = append(ifaces, e.typ)
		}
	}
	if len(candidates) == 0 {
		return resolution{}
	}
	for cur := t; cur != nil; cur = baseOf(cur) {
		if conv, ok := candidates[cur]; ok {
			return resolution{converter: conv, ok: true}
		}
		for _, iface := range declaredInterfaces(cur, ifaces) {
			if conv, ok := candidates[iface]; ok {
				return resolution{converter: conv, ok: true}
			}
		}
	}
	return resolution{}
}
