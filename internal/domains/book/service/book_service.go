package service

import (
	"context"
	"fmt"

	"biblioteca-api/internal/domains/book/model"
	"biblioteca-api/internal/domains/book/repository"
)

type bookService struct {
	repo    repository.RepositoryInterface
	authors AuthorLookup
}

func NewBookService(repo repository.RepositoryInterface, authors AuthorLookup) ServiceInterface {
	return &bookService{
		repo:    repo,
		authors: authors,
	}
}

func (s *bookService) List(ctx context.Context) ([]model.Book, error) {
	return s.repo.List(ctx)
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	if id <= 0 {
		return nil, model.ErrBookNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Create checks the page count, then the author. The foreign key still
// backs the author check if the author is deleted in between.
func (s *bookService) Create(ctx context.Context, in *model.BookInput) (*model.Book, error) {
	b := in.ToEntity()

	if b.NumberPages == 0 {
		return nil, model.ErrZeroPages
	}
	if err := s.ensureAuthor(ctx, b.AuthorsID); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, b)
}

func (s *bookService) Update(ctx context.Context, id int64, in *model.BookInput) (*model.Book, error) {
	if id <= 0 {
		return nil, model.ErrBookNotFound
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if in.NumberPages != nil && *in.NumberPages == 0 {
		return nil, model.ErrZeroPages
	}
	if in.AuthorsID != nil {
		if err := s.ensureAuthor(ctx, *in.AuthorsID); err != nil {
			return nil, err
		}
	}

	return s.repo.Update(ctx, id, func(b *model.Book) error {
		in.ApplyToEntity(b)
		return nil
	})
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return model.ErrBookNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *bookService) ensureAuthor(ctx context.Context, authorID int64) error {
	exists, err := s.authors.Exists(ctx, authorID)
	if err != nil {
		return fmt.Errorf("failed to check author %d: %w", authorID, err)
	}
	if !exists {
		return model.ErrAuthorNotRegistered
	}
	return nil
}
