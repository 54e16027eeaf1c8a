package model

import (
	"errors"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biblioteca-api/internal/shared/payload"
)

func parse(t *testing.T, body string, partial bool) (*AuthorInput, validation.Errors) {
	t.Helper()

	p, err := payload.Parse([]byte(body))
	require.NoError(t, err)

	in, err := ParseAuthorInput(p, partial)
	if err == nil {
		return in, nil
	}
	var errs validation.Errors
	require.True(t, errors.As(err, &errs), "unexpected error type %T", err)
	return nil, errs
}

func TestParseAuthorInputCreate(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		expectedErrors map[string]string
	}{
		{
			name: "valid",
			body: `{"name":"Machado","last_name":"de Assis","birth_date":"1839-06-21","nationality":"BR"}`,
		},
		{
			name: "nationality_optional",
			body: `{"name":"Machado","last_name":"de Assis","birth_date":"1839-06-21"}`,
		},
		{
			name:           "missing_name",
			body:           `{"last_name":"de Assis","birth_date":"1839-06-21"}`,
			expectedErrors: map[string]string{"name": MsgNameRequired},
		},
		{
			name: "accumulates_all_violations",
			body: `{}`,
			expectedErrors: map[string]string{
				"name":       MsgNameRequired,
				"last_name":  MsgLastNameRequired,
				"birth_date": MsgBirthDateRequired,
			},
		},
		{
			name:           "blank_name",
			body:           `{"name":"   ","last_name":"de Assis","birth_date":"1839-06-21"}`,
			expectedErrors: map[string]string{"name": MsgNameRequired},
		},
		{
			name: "wrong_types",
			body: `{"name":1,"last_name":"de Assis","birth_date":"21/06/1839","nationality":false}`,
			expectedErrors: map[string]string{
				"name":        MsgNameInvalid,
				"birth_date":  MsgBirthDateInvalid,
				"nationality": MsgNationalityInvalid,
			},
		},
		{
			name:           "future_birth_date",
			body:           `{"name":"Ana","last_name":"Futura","birth_date":"2999-01-01"}`,
			expectedErrors: map[string]string{"birth_date": MsgBirthDateFuture},
		},
		{
			name: "read_only_and_unknown_fields",
			body: `{"id":4,"name":"Machado","last_name":"de Assis","birth_date":"1839-06-21","age":70}`,
			expectedErrors: map[string]string{
				"id":  payload.MsgUnknown,
				"age": payload.MsgUnknown,
			},
		},
		{
			name:           "null_required_field",
			body:           `{"name":null,"last_name":"de Assis","birth_date":"1839-06-21"}`,
			expectedErrors: map[string]string{"name": payload.MsgNull},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in, errs := parse(t, tc.body, false)
			if tc.expectedErrors == nil {
				assert.Nil(t, errs)
				assert.NotNil(t, in)
				return
			}
			got := map[string]string{}
			for k, v := range errs {
				got[k] = v.Error()
			}
			assert.Equal(t, tc.expectedErrors, got)
		})
	}
}

func TestParseAuthorInputPartial(t *testing.T) {
	in, errs := parse(t, `{"nationality":"BR"}`, true)
	require.Nil(t, errs)
	assert.Nil(t, in.Name)
	assert.Nil(t, in.LastName)
	assert.Nil(t, in.BirthDate)
	assert.True(t, in.NationalitySet)
	assert.Equal(t, "BR", *in.Nationality)

	_, errs = parse(t, `{"name":"","birth_date":"tomorrow"}`, true)
	require.NotNil(t, errs)
	assert.EqualError(t, errs["name"], MsgNameRequired)
	assert.EqualError(t, errs["birth_date"], MsgBirthDateInvalid)

	in, errs = parse(t, `{}`, true)
	require.Nil(t, errs)
	assert.False(t, in.NationalitySet)
}

func TestApplyToEntity(t *testing.T) {
	nationality := "PT"
	born := time.Date(1839, 6, 21, 0, 0, 0, 0, time.UTC)
	a := &Author{ID: 1, Name: "Machado", LastName: "de Assis", BirthDate: born, Nationality: &nationality}

	in, errs := parse(t, `{"nationality":"BR"}`, true)
	require.Nil(t, errs)
	in.ApplyToEntity(a)

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, "Machado", a.Name)
	assert.Equal(t, "de Assis", a.LastName)
	assert.Equal(t, born, a.BirthDate)
	require.NotNil(t, a.Nationality)
	assert.Equal(t, "BR", *a.Nationality)

	in, errs = parse(t, `{"nationality":null}`, true)
	require.Nil(t, errs)
	in.ApplyToEntity(a)
	assert.Nil(t, a.Nationality)
}

func TestToResponse(t *testing.T) {
	a := &Author{ID: 3, Name: "Clarice", LastName: "Lispector", BirthDate: time.Date(1920, 12, 10, 0, 0, 0, 0, time.UTC)}

	resp := a.ToResponse()
	assert.Equal(t, "1920-12-10", resp.BirthDate)
	assert.Nil(t, resp.Nationality)
	assert.Len(t, ToResponses([]Author{*a, *a}), 2)
	assert.NotNil(t, ToResponses(nil))
}
