package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"biblioteca-api/internal/domains/book/model"
	"biblioteca-api/internal/infrastructure/database"
	"biblioteca-api/internal/shared/payload"
)

type sqliteRepository struct {
	db *database.SQLiteDB
}

func NewSQLiteRepository(db *database.SQLiteDB) RepositoryInterface {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) List(ctx context.Context) ([]model.Book, error) {
	books := make([]model.Book, 0)
	if err := r.db.DB.SelectContext(ctx, &books, selectBook+` ORDER BY b.id`); err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

func (r *sqliteRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	return getBook(ctx, r.db.DB, id)
}

func (r *sqliteRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	var created *model.Book

	err := r.db.ExecuteInTransaction(ctx, func(tx *sqlx.Tx) error {
		var id int64
		err := tx.GetContext(ctx, &id, `
			INSERT INTO book (title, publication_date, number_pages, authors_id)
			VALUES (?, ?, ?, ?)
			RETURNING id`,
			b.Title, b.PublicationDate.Format(payload.DateLayout), b.NumberPages, b.AuthorsID)
		if err != nil {
			return translate(err)
		}

		created, err = getBook(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return created, nil
}

func (r *sqliteRepository) Update(ctx context.Context, id int64, fn UpdateFunc) (*model.Book, error) {
	var updated *model.Book

	err := r.db.ExecuteInTransaction(ctx, func(tx *sqlx.Tx) error {
		current, err := getBook(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := fn(current); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE book
			SET title = ?, publication_date = ?, number_pages = ?, authors_id = ?
			WHERE id = ?`,
			current.Title, current.PublicationDate.Format(payload.DateLayout), current.NumberPages, current.AuthorsID, id)
		if err != nil {
			return translate(err)
		}

		updated, err = getBook(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update book %d: %w", id, err)
	}

	return updated, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.ExecuteInTransaction(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM book WHERE id = ?`, id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return model.ErrBookNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete book %d: %w", id, err)
	}
	return nil
}

func getBook(ctx context.Context, q sqlx.QueryerContext, id int64) (*model.Book, error) {
	var b model.Book
	if err := sqlx.GetContext(ctx, q, &b, selectBook+` WHERE b.id = ?`, id); err != nil {
		if database.IsNoRows(err) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book %d: %w", id, err)
	}
	return &b, nil
}
