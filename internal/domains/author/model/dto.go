package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"biblioteca-api/internal/shared/payload"
)

// AuthorInput carries the fields of a create or update request.
// A nil field was not sent.
type AuthorInput struct {
	Name        *string    `json:"name"`
	LastName    *string    `json:"last_name"`
	BirthDate   *time.Time `json:"birth_date"`
	Nationality *string    `json:"nationality"`

	// NationalitySet tells an explicit null apart from an absent key
	NationalitySet bool `json:"-"`
}

var authorFields = []string{"name", "last_name", "birth_date", "nationality"}

// ParseAuthorInput decodes and validates p. Updates pass partial=true.
// All violations come back together as validation.Errors.
func ParseAuthorInput(p payload.Payload, partial bool) (*AuthorInput, error) {
	d := payload.NewDecoder(p)
	d.Only(authorFields...)

	in := &AuthorInput{
		Name:      d.String("name", MsgNameInvalid),
		LastName:  d.String("last_name", MsgLastNameInvalid),
		BirthDate: d.Date("birth_date", MsgBirthDateInvalid),
	}
	in.Nationality, in.NationalitySet = d.NullableString("nationality", MsgNationalityInvalid)
	if in.Nationality != nil && *in.Nationality == "" {
		in.Nationality = nil
	}

	if err := payload.Merge(d.Errors(), in.Validate(partial)); err != nil {
		return nil, err
	}
	return in, nil
}

func (in AuthorInput) Validate(partial bool) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name,
			presence(partial, MsgNameRequired),
			validation.RuneLength(0, 255).Error(MsgNameTooLong),
		),
		validation.Field(&in.LastName,
			presence(partial, MsgLastNameRequired),
			validation.RuneLength(0, 255).Error(MsgLastNameTooLong),
		),
		validation.Field(&in.BirthDate,
			validation.When(!partial, validation.Required.Error(MsgBirthDateRequired)),
			validation.By(notInFuture),
		),
		validation.Field(&in.Nationality,
			validation.RuneLength(0, 255).Error(MsgNationalityTooLong),
		),
	)
}

// ToEntity builds a new Author from a create request
func (in *AuthorInput) ToEntity() *Author {
	a := &Author{}
	in.ApplyToEntity(a)
	return a
}

// ApplyToEntity overwrites only the fields present in the request
func (in *AuthorInput) ApplyToEntity(a *Author) {
	if in.Name != nil {
		a.Name = *in.Name
	}
	if in.LastName != nil {
		a.LastName = *in.LastName
	}
	if in.BirthDate != nil {
		a.BirthDate = *in.BirthDate
	}
	if in.NationalitySet {
		a.Nationality = in.Nationality
	}
}

// presence: required on create; on update only rejects a present empty value
func presence(partial bool, msg string) validation.Rule {
	if partial {
		return validation.NilOrNotEmpty.Error(msg)
	}
	return validation.Required.Error(msg)
}

func notInFuture(value interface{}) error {
	t, ok := value.(*time.Time)
	if !ok || t == nil {
		return nil
	}
	if t.After(today()) {
		return validation.NewError("validation_birth_date_future", MsgBirthDateFuture)
	}
	return nil
}

// today is the current calendar date at UTC midnight, comparable with parsed dates
func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
