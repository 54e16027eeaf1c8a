package repository

import (
	"context"

	"biblioteca-api/internal/domains/author/model"
)

// UpdateFunc mutates the current row inside the update transaction
type UpdateFunc func(a *model.Author) error

type RepositoryInterface interface {
	// List returns every author ordered by id; never nil
	List(ctx context.Context) ([]model.Author, error)
	GetByID(ctx context.Context, id int64) (*model.Author, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, a *model.Author) (*model.Author, error)
	// Update loads the row, applies fn and writes it back in one transaction
	Update(ctx context.Context, id int64, fn UpdateFunc) (*model.Author, error)
	// Delete removes the author and, through the foreign key, its books
	Delete(ctx context.Context, id int64) error
}
