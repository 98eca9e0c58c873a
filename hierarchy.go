package mapper

import "reflect"

// baseOf returns the direct base of t: the type of its first embedded struct
// field, with one level of pointer indirection stripped. Types without an
// embedded struct are hierarchy roots and map to nil.
func baseOf(t reflect.Type) reflect.Type {
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		switch {
		case f.Type.Kind() == reflect.Struct:
			return f.Type
		case f.Type.Kind() == reflect.Pointer && f.Type.Elem().Kind() == reflect.Struct:
			return f.Type.Elem()
		}
	}
	return nil
}

// declaredInterfaces reports the interfaces t introduces at its own level of
// the hierarchy, in a stable order: anonymous interface fields in field
// declaration order, then every interface in universe that t implements but
// its direct base does not, in universe order. The order carries no semantic
// priority; it is "first declared", not "most specific".
func declaredInterfaces(t reflect.Type, universe []reflect.Type) []reflect.Type {
	if t == nil {
		return nil
	}
	var out []reflect.Type
	seen := make(map[reflect.Type]bool)
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.Anonymous && f.Type.Kind() == reflect.Interface && !seen[f.Type] {
				seen[f.Type] = true
				out = append(out, f.Type)
			}
		}
	}
	base := baseOf(t)
	for _, iface := range universe {
		if seen[iface] || !t.Implements(iface) {
			continue
		}
		if base != nil && base.Implements(iface) {
			continue
		}
		seen[iface] = true
		out = append(out, iface)
	}
	return out
}

// isSupertype reports whether key sits above t in the hierarchy: an
// interface t implements, or a struct on t's embedding base chain.
func isSupertype(key, t reflect.Type) bool {
	if key.Kind() == reflect.Interface {
		return t.Implements(key)
	}
	for cur := baseOf(t); cur != nil; cur = baseOf(cur) {
		if cur == key {
			return true
		}
	}
	return false
}
