// Package mapper resolves runtime types to the converters that turn their
// values into a serialized representation and back.
//
// A Config holds two registries assembled up front by a Builder: string
// adapters keyed by a (From, To) type pair, and object converters keyed by
// a single type. Resolution answers two questions on the hot
// serialize/deserialize path:
//
//	adapter := cfg.FindAdapter(reflect.TypeOf(v))
//	conv, err := cfg.FindObjectConverter(reflect.TypeOf(v))
//
// # Adapter Resolution
//
// FindAdapter probes the adapter registry for the exact (type, string) pair.
// When that misses and the type is enum-like (a named integer or string
// type implementing encoding.TextMarshaler whose pointer implements
// encoding.TextUnmarshaler), a text round-trip adapter is synthesized and
// registered lazily, once per type per Config, with insert-if-absent
// semantics so concurrent callers converge on a single instance.
//
// # Object Converter Resolution
//
// FindObjectConverter prefers a converter registered on the exact type.
// Failing that it walks the type's hierarchy: the type itself, then the
// interfaces the type introduces at its own level (anonymous interface
// fields first, in declaration order), then its direct base, which is the
// first embedded struct field, and so on until the chain ends. The first
// registered converter encountered wins. Outcomes, including misses, are
// memoized per Config so repeat queries never re-scan the registry.
//
// # Thread Safety
//
// A single Config is meant to be shared by all in-flight operations. Flags
// and registries are fixed once Build returns; the resolution cache and the
// lazy enum-adapter insertion are the only post-build writes and both are
// concurrency-safe.
//
// Built-in adapters and converters for common types live in the converters
// subpackage.
package mapper
