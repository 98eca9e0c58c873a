package converters

import (
	"github.com/Station-Manager/errors"
	"github.com/google/uuid"

	"github.com/mapforge/mapper"
)

// UUIDAdapter converts uuid.UUID values to and from their canonical string
// form.
type UUIDAdapter struct{}

var _ mapper.Adapter = UUIDAdapter{}

func (UUIDAdapter) ToString(v any) (string, error) {
	const op errors.Op = "converters.UUIDAdapter.ToString"
	id, ok := v.(uuid.UUID)
	if !ok {
		return "", errors.New(op).Errorf("Given parameter not a uuid.UUID, got %T", v)
	}
	return id.String(), nil
}

func (UUIDAdapter) FromString(s string) (any, error) {
	const op errors.Op = "converters.UUIDAdapter.FromString"
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, errors.New(op).Err(err).Msg(ErrMsgBadUUIDFormat)
	}
	return id, nil
}
