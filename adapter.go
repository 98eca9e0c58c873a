package mapper

import "reflect"

// Adapter converts between a domain value and its string-shaped wire
// representation. Implementations must be stateless and safe for concurrent
// use; one instance is shared by every in-flight operation.
type Adapter interface {
	// ToString renders v as its wire string.
	ToString(v any) (string, error)
	// FromString parses s back into a domain value.
	FromString(s string) (any, error)
}

// AdapterKey identifies an Adapter by its exact (From, To) type pair.
type AdapterKey struct {
	From reflect.Type
	To   reflect.Type
}

// ObjectConverter converts between a domain value and a structured
// (object-shaped) wire representation. Unlike an Adapter it may be
// registered against an interface or an embedded base type rather than the
// exact runtime type; FindObjectConverter handles the hierarchy search.
type ObjectConverter interface {
	// ToObject renders v as its object-shaped wire value.
	ToObject(v any) (map[string]any, error)
	// FromObject rebuilds a domain value from its object-shaped wire value.
	FromObject(obj map[string]any) (any, error)
}

// resolution is a memoized FindObjectConverter outcome. ok == false records
// a completed lookup that found nothing, so repeat queries for the same type
// skip the registry scan entirely.
type resolution struct {
	converter ObjectConverter
	ok        bool
}

// converterEntry is one object-converter registration. The registry keeps
// entries as an ordered slice because the hierarchy scan needs full,
// deterministic iteration in registration order.
type converterEntry struct {
	typ  reflect.Type
	conv ObjectConverter
}
