package repository

import (
	"context"

	"biblioteca-api/internal/domains/book/model"
	"biblioteca-api/internal/infrastructure/database"
)

// UpdateFunc mutates the current row inside the update transaction
type UpdateFunc func(b *model.Book) error

// RepositoryInterface reads books joined with their author's name.
// Writes referencing a missing author fail with model.ErrAuthorNotRegistered,
// a non-positive page count with model.ErrZeroPages.
type RepositoryInterface interface {
	List(ctx context.Context) ([]model.Book, error)
	GetByID(ctx context.Context, id int64) (*model.Book, error)
	Create(ctx context.Context, b *model.Book) (*model.Book, error)
	Update(ctx context.Context, id int64, fn UpdateFunc) (*model.Book, error)
	Delete(ctx context.Context, id int64) error
}

// selectBook is shared by both drivers; only placeholders differ
const selectBook = `
	SELECT b.id, b.title, b.publication_date, b.number_pages, b.authors_id, a.name AS authors_name
	FROM book b
	JOIN author a ON a.id = b.authors_id`

// translate maps constraint failures onto domain errors
func translate(err error) error {
	switch {
	case database.IsForeignKeyViolation(err):
		return model.ErrAuthorNotRegistered.Wrap(err)
	case database.IsCheckViolation(err):
		return model.ErrZeroPages.Wrap(err)
	}
	return err
}
