package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"biblioteca-api/internal/domains/book/model"
	"biblioteca-api/internal/infrastructure/database"
)

type postgresRepository struct {
	db *database.PostgresDB
}

func NewPostgresRepository(db *database.PostgresDB) RepositoryInterface {
	return &postgresRepository{db: db}
}

func scanBook(row pgx.Row, b *model.Book) error {
	return row.Scan(&b.ID, &b.Title, &b.PublicationDate, &b.NumberPages, &b.AuthorsID, &b.AuthorsName)
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Book, error) {
	rows, err := r.db.Pool.Query(ctx, selectBook+` ORDER BY b.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0)
	for rows.Next() {
		var b model.Book
		if err := scanBook(rows, &b); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	return readBook(r.db.Pool.QueryRow(ctx, selectBook+` WHERE b.id = $1`, id), id)
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	var created *model.Book

	err := r.db.ExecuteInTransaction(ctx, nil, func(tx pgx.Tx) error {
		var id int64
		err := tx.QueryRow(ctx, `
			INSERT INTO book (title, publication_date, number_pages, authors_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			b.Title, b.PublicationDate, b.NumberPages, b.AuthorsID,
		).Scan(&id)
		if err != nil {
			return translate(err)
		}

		created, err = readBook(tx.QueryRow(ctx, selectBook+` WHERE b.id = $1`, id), id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, fn UpdateFunc) (*model.Book, error) {
	var updated *model.Book

	err := r.db.ExecuteInTransaction(ctx, nil, func(tx pgx.Tx) error {
		current, err := readBook(tx.QueryRow(ctx, selectBook+` WHERE b.id = $1 FOR UPDATE OF b`, id), id)
		if err != nil {
			return err
		}

		if err := fn(current); err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			UPDATE book
			SET title = $1, publication_date = $2, number_pages = $3, authors_id = $4
			WHERE id = $5`,
			current.Title, current.PublicationDate, current.NumberPages, current.AuthorsID, id,
		)
		if err != nil {
			return translate(err)
		}

		updated, err = readBook(tx.QueryRow(ctx, selectBook+` WHERE b.id = $1`, id), id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update book %d: %w", id, err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.ExecuteInTransaction(ctx, nil, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM book WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return model.ErrBookNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete book %d: %w", id, err)
	}
	return nil
}

func readBook(row pgx.Row, id int64) (*model.Book, error) {
	var b model.Book
	if err := scanBook(row, &b); err != nil {
		if database.IsNoRows(err) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book %d: %w", id, err)
	}
	return &b, nil
}
