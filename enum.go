package mapper

import (
	"encoding"
	"fmt"
	"reflect"
)

var (
	textMarshalerType   = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// isEnumLike reports whether t is a named integer or string type with a text
// form: the value side marshals itself and the pointer side parses it back.
// This is the shape stringer-style enums take.
func isEnumLike(t reflect.Type) bool {
	if t == nil || t.PkgPath() == "" {
		return false
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.String:
	default:
		return false
	}
	return t.Implements(textMarshalerType) && reflect.PointerTo(t).Implements(textUnmarshalerType)
}

// enumAdapter round-trips enum-like values through their text form.
type enumAdapter struct {
	typ reflect.Type
}

func newEnumAdapter(t reflect.Type) Adapter { return &enumAdapter{typ: t} }

func (e *enumAdapter) ToString(v any) (string, error) {
	m, ok := v.(encoding.TextMarshaler)
	if !ok {
		return "", fmt.Errorf("mapper: %T does not marshal to text", v)
	}
	b, err := m.MarshalText()
	if err != nil {
		return "", fmt.Errorf("mapper: marshaling %s value: %w", e.typ, err)
	}
	return string(b), nil
}

func (e *enumAdapter) FromString(s string) (any, error) {
	p := reflect.New(e.typ)
	if err := p.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
		return nil, fmt.Errorf("mapper: parsing %q as %s: %w", s, e.typ, err)
	}
	return p.Elem().Interface(), nil
}
