package converters

import (
	"github.com/Station-Manager/errors"
	"github.com/goccy/go-json"

	"github.com/mapforge/mapper"
)

// StructConverter is a generic ObjectConverter that moves values of T
// through their JSON form. It suits plain data structs without custom wire
// behavior; register it against T or an interface T implements.
type StructConverter[T any] struct{}

var _ mapper.ObjectConverter = StructConverter[struct{}]{}

func (StructConverter[T]) ToObject(v any) (map[string]any, error) {
	const op errors.Op = "converters.StructConverter.ToObject"
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, errors.New(op).Err(err)
	}
	return obj, nil
}

func (StructConverter[T]) FromObject(obj map[string]any) (any, error) {
	const op errors.Op = "converters.StructConverter.FromObject"
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.New(op).Err(err)
	}
	return out, nil
}
