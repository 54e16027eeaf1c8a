package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"biblioteca-api/internal/shared/payload"
)

// BookInput carries the fields of a create or update request; nil means not sent.
// authors_name is derived and never accepted.
type BookInput struct {
	Title           *string    `json:"title"`
	PublicationDate *time.Time `json:"publication_date"`
	NumberPages     *int       `json:"number_pages"`
	AuthorsID       *int64     `json:"authors_id"`
}

var bookFields = []string{"title", "publication_date", "number_pages", "authors_id"}

func ParseBookInput(p payload.Payload, partial bool) (*BookInput, error) {
	d := payload.NewDecoder(p)
	d.Only(bookFields...)

	in := &BookInput{
		Title:           d.String("title", MsgTitleInvalid),
		PublicationDate: d.Date("publication_date", MsgPublicationDateInvalid),
		NumberPages:     d.Int("number_pages", MsgNumberPagesInvalid),
		AuthorsID:       d.Int64("authors_id", MsgAuthorsIDInvalid),
	}

	if err := payload.Merge(d.Errors(), in.Validate(partial)); err != nil {
		return nil, err
	}
	return in, nil
}

// Validate checks presence and ranges. ozzo's Min and Length skip zero values,
// so pages and the title minimum are checked by hand.
func (in BookInput) Validate(partial bool) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title,
			validation.When(!partial, validation.NotNil.Error(MsgTitleRequired)),
			validation.By(titleLength),
		),
		validation.Field(&in.PublicationDate,
			validation.When(!partial, validation.NotNil.Error(MsgPublicationDateRequired)),
		),
		validation.Field(&in.NumberPages,
			validation.When(!partial, validation.NotNil.Error(MsgNumberPagesRequired)),
			validation.By(positivePages),
		),
		validation.Field(&in.AuthorsID,
			validation.When(!partial, validation.NotNil.Error(MsgAuthorsIDRequired)),
			validation.By(positiveID),
		),
	)
}

func (in *BookInput) ToEntity() *Book {
	b := &Book{}
	in.ApplyToEntity(b)
	return b
}

// ApplyToEntity overwrites only the fields present in the request
func (in *BookInput) ApplyToEntity(b *Book) {
	if in.Title != nil {
		b.Title = *in.Title
	}
	if in.PublicationDate != nil {
		b.PublicationDate = *in.PublicationDate
	}
	if in.NumberPages != nil {
		b.NumberPages = *in.NumberPages
	}
	if in.AuthorsID != nil {
		b.AuthorsID = *in.AuthorsID
	}
}

func titleLength(value interface{}) error {
	s, ok := value.(*string)
	if !ok || s == nil {
		return nil
	}
	n := len([]rune(*s))
	if n < MinTitleLength {
		return validation.NewError("validation_title_too_short", MsgTitleTooShort)
	}
	if n > MaxTitleLength {
		return validation.NewError("validation_title_too_long", MsgTitleTooLong)
	}
	return nil
}

func positivePages(value interface{}) error {
	n, ok := value.(*int)
	if !ok || n == nil {
		return nil
	}
	if *n < 1 {
		return validation.NewError("validation_number_pages_min", MsgNumberPagesMin)
	}
	return nil
}

func positiveID(value interface{}) error {
	n, ok := value.(*int64)
	if !ok || n == nil {
		return nil
	}
	if *n < 1 {
		return validation.NewError("validation_authors_id_invalid", MsgAuthorsIDInvalid)
	}
	return nil
}
