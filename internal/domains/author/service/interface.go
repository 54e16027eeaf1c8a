package service

import (
	"context"

	"biblioteca-api/internal/domains/author/model"
)

type ServiceInterface interface {
	List(ctx context.Context) ([]model.Author, error)
	GetByID(ctx context.Context, id int64) (*model.Author, error)
	Create(ctx context.Context, in *model.AuthorInput) (*model.Author, error)
	// Update applies only the fields present in the request
	Update(ctx context.Context, id int64, in *model.AuthorInput) (*model.Author, error)
	Delete(ctx context.Context, id int64) error
}
