package service

import (
	"context"

	"biblioteca-api/internal/domains/book/model"
)

type ServiceInterface interface {
	List(ctx context.Context) ([]model.Book, error)
	GetByID(ctx context.Context, id int64) (*model.Book, error)
	Create(ctx context.Context, in *model.BookInput) (*model.Book, error)
	Update(ctx context.Context, id int64, in *model.BookInput) (*model.Book, error)
	Delete(ctx context.Context, id int64) error
}

// AuthorLookup is the slice of the author repository books depend on
type AuthorLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
