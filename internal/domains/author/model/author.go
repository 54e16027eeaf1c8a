package model

import (
	"time"

	"biblioteca-api/internal/shared/payload"
)

type Author struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	LastName    string    `json:"last_name" db:"last_name"`
	BirthDate   time.Time `json:"birth_date" db:"birth_date"`
	Nationality *string   `json:"nationality" db:"nationality"`
}

type AuthorResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	LastName    string  `json:"last_name"`
	BirthDate   string  `json:"birth_date"`
	Nationality *string `json:"nationality"`
}

// ToResponse converts Author to AuthorResponse
func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:          a.ID,
		Name:        a.Name,
		LastName:    a.LastName,
		BirthDate:   a.BirthDate.Format(payload.DateLayout),
		Nationality: a.Nationality,
	}
}

func ToResponses(authors []Author) []*AuthorResponse {
	out := make([]*AuthorResponse, 0, len(authors))
	for i := range authors {
		out = append(out, authors[i].ToResponse())
	}
	return out
}
