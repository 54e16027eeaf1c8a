package model

import (
	"time"

	"biblioteca-api/internal/shared/payload"
)

// Book is a row of the book table joined with its author's name
type Book struct {
	ID              int64     `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	PublicationDate time.Time `json:"publication_date" db:"publication_date"`
	NumberPages     int       `json:"number_pages" db:"number_pages"`
	AuthorsID       int64     `json:"authors_id" db:"authors_id"`
	AuthorsName     string    `json:"authors_name" db:"authors_name"`
}

type BookResponse struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	PublicationDate string `json:"publication_date"`
	NumberPages     int    `json:"number_pages"`
	AuthorsID       int64  `json:"authors_id"`
	AuthorsName     string `json:"authors_name"`
}

func (b *Book) ToResponse() *BookResponse {
	return &BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		PublicationDate: b.PublicationDate.Format(payload.DateLayout),
		NumberPages:     b.NumberPages,
		AuthorsID:       b.AuthorsID,
		AuthorsName:     b.AuthorsName,
	}
}

func ToResponses(books []Book) []*BookResponse {
	out := make([]*BookResponse, 0, len(books))
	for i := range books {
		out = append(out, books[i].ToResponse())
	}
	return out
}
