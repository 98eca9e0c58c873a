package converters

import (
	"time"

	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"

	"github.com/mapforge/mapper"
)

// NullStringAdapter converts null.String values to and from strings. An
// invalid null.String maps to the empty string and back.
type NullStringAdapter struct{}

var _ mapper.Adapter = NullStringAdapter{}

func (NullStringAdapter) ToString(v any) (string, error) {
	const op errors.Op = "converters.NullStringAdapter.ToString"
	ns, ok := v.(null.String)
	if !ok {
		return "", errors.New(op).Errorf("Given parameter not a null.String, got %T", v)
	}
	if !ns.Valid {
		return "", nil
	}
	return ns.String, nil
}

func (NullStringAdapter) FromString(s string) (any, error) {
	if s == "" {
		return null.String{}, nil
	}
	return null.StringFrom(s), nil
}

// NullTimeAdapter converts null.Time values to and from RFC 3339 strings. An
// invalid null.Time maps to the empty string and back.
type NullTimeAdapter struct{}

var _ mapper.Adapter = NullTimeAdapter{}

func (NullTimeAdapter) ToString(v any) (string, error) {
	const op errors.Op = "converters.NullTimeAdapter.ToString"
	nt, ok := v.(null.Time)
	if !ok {
		return "", errors.New(op).Errorf("Given parameter not a null.Time, got %T", v)
	}
	if !nt.Valid {
		return "", nil
	}
	return nt.Time.Format(time.RFC3339Nano), nil
}

func (NullTimeAdapter) FromString(s string) (any, error) {
	const op errors.Op = "converters.NullTimeAdapter.FromString"
	if s == "" {
		return null.Time{}, nil
	}
	tv, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil, errors.New(op).Err(err).Msg(ErrMsgBadTimeFormat)
	}
	return null.TimeFrom(tv), nil
}
