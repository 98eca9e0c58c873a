package converters

import (
	"github.com/Station-Manager/errors"
)

const (
	ErrMsgBadTimeFormat = "Bad time format, expected RFC 3339"
	ErrMsgBadDateFormat = "Bad date format, expected YYYY-MM-DD"
	ErrMsgBadUUIDFormat = "Bad UUID format, expected canonical form"
	ErrMsgBadJSON       = "Value is not valid JSON"
)

func CheckString(op errors.Op, src any) (string, error) {
	srcVal, ok := src.(string)
	if !ok {
		return "", errors.New(op).Errorf("Given parameter not a string, got %T", src)
	}
	return srcVal, nil
}
