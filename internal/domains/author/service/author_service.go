package service

import (
	"context"

	"biblioteca-api/internal/domains/author/model"
	"biblioteca-api/internal/domains/author/repository"
)

// authorService implements ServiceInterface
type authorService struct {
	repo repository.RepositoryInterface
}

// NewAuthorService depends on the repository abstraction, so tests can hand it a mock
func NewAuthorService(repo repository.RepositoryInterface) ServiceInterface {
	return &authorService{
		repo: repo,
	}
}

func (s *authorService) List(ctx context.Context) ([]model.Author, error) {
	return s.repo.List(ctx)
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	if id <= 0 {
		return nil, model.ErrAuthorNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) Create(ctx context.Context, in *model.AuthorInput) (*model.Author, error) {
	return s.repo.Create(ctx, in.ToEntity())
}

func (s *authorService) Update(ctx context.Context, id int64, in *model.AuthorInput) (*model.Author, error) {
	if id <= 0 {
		return nil, model.ErrAuthorNotFound
	}
	return s.repo.Update(ctx, id, func(a *model.Author) error {
		in.ApplyToEntity(a)
		return nil
	})
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return model.ErrAuthorNotFound
	}
	return s.repo.Delete(ctx, id)
}
