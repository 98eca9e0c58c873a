// Package converters ships ready-made adapters and object converters for
// common types, registered through mapper.Builder.
package converters

import (
	"time"

	"github.com/Station-Manager/errors"

	"github.com/mapforge/mapper"
)

const dateLayout = "2006-01-02"

// TimeAdapter converts time.Time values to and from RFC 3339 strings.
type TimeAdapter struct{}

var _ mapper.Adapter = TimeAdapter{}

func (TimeAdapter) ToString(v any) (string, error) {
	const op errors.Op = "converters.TimeAdapter.ToString"
	tv, ok := v.(time.Time)
	if !ok {
		return "", errors.New(op).Errorf("Given parameter not a time.Time, got %T", v)
	}
	return tv.Format(time.RFC3339Nano), nil
}

func (TimeAdapter) FromString(s string) (any, error) {
	const op errors.Op = "converters.TimeAdapter.FromString"
	tv, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil, errors.New(op).Err(err).Msg(ErrMsgBadTimeFormat)
	}
	return tv, nil
}

// DateAdapter converts time.Time values to and from date-only strings,
// discarding the time of day.
type DateAdapter struct{}

var _ mapper.Adapter = DateAdapter{}

func (DateAdapter) ToString(v any) (string, error) {
	const op errors.Op = "converters.DateAdapter.ToString"
	tv, ok := v.(time.Time)
	if !ok {
		return "", errors.New(op).Errorf("Given parameter not a time.Time, got %T", v)
	}
	return tv.Format(dateLayout), nil
}

func (DateAdapter) FromString(s string) (any, error) {
	const op errors.Op = "converters.DateAdapter.FromString"
	tv, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, errors.New(op).Err(err).Msg(ErrMsgBadDateFormat)
	}
	return tv, nil
}
