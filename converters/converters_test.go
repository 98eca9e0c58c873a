package converters

import (
	"reflect"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapforge/mapper"
)

func TestTimeAdapter_RoundTrip(t *testing.T) {
	a := TimeAdapter{}
	now := time.Date(2026, 8, 23, 10, 30, 0, 123456789, time.UTC)

	s, err := a.ToString(now)
	require.NoError(t, err)

	back, err := a.FromString(s)
	require.NoError(t, err)
	assert.True(t, now.Equal(back.(time.Time)))
}

func TestTimeAdapter_BadInput(t *testing.T) {
	a := TimeAdapter{}

	_, err := a.ToString("not a time")
	assert.Error(t, err)

	_, err = a.FromString("yesterday")
	assert.Error(t, err)
}

func TestDateAdapter_DropsTimeOfDay(t *testing.T) {
	a := DateAdapter{}
	in := time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC)

	s, err := a.ToString(in)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-23", s)

	back, err := a.FromString(s)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC), back)
}

func TestUUIDAdapter_RoundTrip(t *testing.T) {
	a := UUIDAdapter{}
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	s, err := a.ToString(id)
	require.NoError(t, err)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", s)

	back, err := a.FromString(s)
	require.NoError(t, err)
	assert.Equal(t, id, back)

	_, err = a.FromString("not-a-uuid")
	assert.Error(t, err)
}

func TestNullStringAdapter_RoundTrip(t *testing.T) {
	a := NullStringAdapter{}

	s, err := a.ToString(null.StringFrom("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	back, err := a.FromString("hello")
	require.NoError(t, err)
	assert.Equal(t, null.StringFrom("hello"), back)

	// Invalid maps to empty string and back.
	s, err = a.ToString(null.String{})
	require.NoError(t, err)
	assert.Equal(t, "", s)

	back, err = a.FromString("")
	require.NoError(t, err)
	assert.Equal(t, null.String{}, back)
}

func TestNullTimeAdapter_RoundTrip(t *testing.T) {
	a := NullTimeAdapter{}
	now := time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC)

	s, err := a.ToString(null.TimeFrom(now))
	require.NoError(t, err)

	back, err := a.FromString(s)
	require.NoError(t, err)
	assert.True(t, now.Equal(back.(null.Time).Time))

	s, err = a.ToString(null.Time{})
	require.NoError(t, err)
	assert.Equal(t, "", s)

	back, err = a.FromString("")
	require.NoError(t, err)
	assert.False(t, back.(null.Time).Valid)
}

func TestBoilerJSONAdapter(t *testing.T) {
	a := BoilerJSONAdapter{}

	s, err := a.ToString(boilertypes.JSON(`{"k":1}`))
	require.NoError(t, err)
	assert.Equal(t, `{"k":1}`, s)

	back, err := a.FromString(`{"k":1}`)
	require.NoError(t, err)
	assert.Equal(t, boilertypes.JSON(`{"k":1}`), back)

	_, err = a.FromString(`{"k":`)
	assert.Error(t, err)
}

type profile struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestStructConverter_RoundTrip(t *testing.T) {
	c := StructConverter[profile]{}
	in := profile{Name: "ada", Age: 36}

	obj, err := c.ToObject(in)
	require.NoError(t, err)
	assert.Equal(t, "ada", obj["name"])

	back, err := c.FromObject(obj)
	require.NoError(t, err)
	assert.Equal(t, in, back)
}

func TestBuiltins_ResolveThroughConfig(t *testing.T) {
	cfg := mapper.NewBuilder().
		AddStringAdapter(time.Time{}, TimeAdapter{}).
		AddStringAdapter(uuid.UUID{}, UUIDAdapter{}).
		AddObjectConverter(profile{}, StructConverter[profile]{}).
		Build()

	assert.NotNil(t, cfg.FindAdapter(reflect.TypeOf(time.Time{})))
	assert.NotNil(t, cfg.FindAdapter(reflect.TypeOf(uuid.UUID{})))

	conv, err := cfg.FindObjectConverter(reflect.TypeOf(profile{}))
	require.NoError(t, err)
	assert.NotNil(t, conv)
}
