package payload

import (
	"errors"
	"strings"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decoderFor(t *testing.T, body string) *Decoder {
	t.Helper()
	p, err := Parse([]byte(body))
	require.NoError(t, err)
	return NewDecoder(p)
}

func TestParseRejectsNonObjects(t *testing.T) {
	for _, body := range []string{``, `null`, `[]`, `"text"`, `{"name":`, `42`} {
		t.Run(body, func(t *testing.T) {
			_, err := Parse([]byte(body))
			var errs validation.Errors
			require.True(t, errors.As(err, &errs))
			assert.Contains(t, errs, BodyKey)
		})
	}
}

func TestRead(t *testing.T) {
	p, err := Read(strings.NewReader(`{"name":"Jorge"}`))
	require.NoError(t, err)
	assert.Contains(t, p, "name")
}

func TestDecoderString(t *testing.T) {
	d := decoderFor(t, `{"name":"  Jorge  ","last_name":12,"nickname":null}`)

	name := d.String("name", "bad name")
	require.NotNil(t, name)
	assert.Equal(t, "Jorge", *name)

	assert.Nil(t, d.String("last_name", "bad last name"))
	assert.Nil(t, d.String("nickname", "bad nickname"))
	assert.Nil(t, d.String("absent", "bad absent"))

	errs := d.Errors()
	assert.Len(t, errs, 2)
	assert.EqualError(t, errs["last_name"], "bad last name")
	assert.EqualError(t, errs["nickname"], MsgNull)
}

func TestDecoderNullableString(t *testing.T) {
	d := decoderFor(t, `{"nationality":null,"country":"BR"}`)

	v, set := d.NullableString("nationality", "bad")
	assert.True(t, set)
	assert.Nil(t, v)

	v, set = d.NullableString("country", "bad")
	assert.True(t, set)
	require.NotNil(t, v)
	assert.Equal(t, "BR", *v)

	v, set = d.NullableString("absent", "bad")
	assert.False(t, set)
	assert.Nil(t, v)

	assert.Empty(t, d.Errors())
}

func TestDecoderInt(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expected *int
		invalid  bool
	}{
		{name: "number", body: `{"n":120}`, expected: ptr(120)},
		{name: "numeric_string", body: `{"n":"120"}`, expected: ptr(120)},
		{name: "integral_float", body: `{"n":120.0}`, expected: ptr(120)},
		{name: "zero", body: `{"n":0}`, expected: ptr(0)},
		{name: "fraction", body: `{"n":12.5}`, invalid: true},
		{name: "text", body: `{"n":"many"}`, invalid: true},
		{name: "bool", body: `{"n":true}`, invalid: true},
		{name: "overflow", body: `{"n":99999999999}`, invalid: true},
		{name: "absent", body: `{}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := decoderFor(t, tc.body)
			got := d.Int("n", "bad int")
			assert.Equal(t, tc.expected, got)
			if tc.invalid {
				assert.EqualError(t, d.Errors()["n"], "bad int")
			} else {
				assert.Empty(t, d.Errors())
			}
		})
	}
}

func TestDecoderInt64(t *testing.T) {
	d := decoderFor(t, `{"id":99999999999,"bad":"x"}`)

	id := d.Int64("id", "bad id")
	require.NotNil(t, id)
	assert.Equal(t, int64(99999999999), *id)

	assert.Nil(t, d.Int64("bad", "bad id"))
	assert.Len(t, d.Errors(), 1)
}

func TestDecoderDate(t *testing.T) {
	d := decoderFor(t, `{"ok":"1920-12-10","wrong":"10/12/1920","number":1920}`)

	ok := d.Date("ok", "bad date")
	require.NotNil(t, ok)
	assert.Equal(t, time.Date(1920, 12, 10, 0, 0, 0, 0, time.UTC), *ok)

	assert.Nil(t, d.Date("wrong", "bad date"))
	assert.Nil(t, d.Date("number", "bad date"))
	assert.Len(t, d.Errors(), 2)
}

func TestDecoderOnly(t *testing.T) {
	d := decoderFor(t, `{"name":"Jorge","id":3,"extra":true}`)
	d.Only("name", "last_name")

	errs := d.Errors()
	assert.Len(t, errs, 2)
	assert.EqualError(t, errs["id"], MsgUnknown)
	assert.EqualError(t, errs["extra"], MsgUnknown)
}

func TestMerge(t *testing.T) {
	decodeErrs := validation.Errors{"birth_date": errors.New("Data inválida")}
	ruleErrs := validation.Errors{
		"birth_date": errors.New("obrigatória"),
		"name":       errors.New("O nome é obrigatório"),
	}

	err := Merge(decodeErrs, ruleErrs)
	var merged validation.Errors
	require.True(t, errors.As(err, &merged))
	assert.Len(t, merged, 2)
	assert.EqualError(t, merged["birth_date"], "Data inválida")
	assert.EqualError(t, merged["name"], "O nome é obrigatório")

	assert.NoError(t, Merge(validation.Errors{}, nil))

	internal := validation.NewInternalError(errors.New("rule panic"))
	assert.Equal(t, internal, Merge(decodeErrs, internal))
}

func ptr(v int) *int {
	return &v
}
