package converters

import (
	"github.com/Station-Manager/errors"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	"github.com/goccy/go-json"

	"github.com/mapforge/mapper"
)

// BoilerJSONAdapter converts sqlboiler types.JSON columns to and from their
// raw JSON text.
type BoilerJSONAdapter struct{}

var _ mapper.Adapter = BoilerJSONAdapter{}

func (BoilerJSONAdapter) ToString(v any) (string, error) {
	const op errors.Op = "converters.BoilerJSONAdapter.ToString"
	j, ok := v.(boilertypes.JSON)
	if !ok {
		return "", errors.New(op).Errorf("Given parameter not a types.JSON, got %T", v)
	}
	return string(j), nil
}

func (BoilerJSONAdapter) FromString(s string) (any, error) {
	const op errors.Op = "converters.BoilerJSONAdapter.FromString"
	if !json.Valid([]byte(s)) {
		return nil, errors.New(op).Msg(ErrMsgBadJSON)
	}
	return boilertypes.JSON(s), nil
}
