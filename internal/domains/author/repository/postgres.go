package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"biblioteca-api/internal/domains/author/model"
	"biblioteca-api/internal/infrastructure/database"
)

// postgresRepository implements RepositoryInterface with pgx
type postgresRepository struct {
	db *database.PostgresDB
}

func NewPostgresRepository(db *database.PostgresDB) RepositoryInterface {
	return &postgresRepository{db: db}
}

const authorColumns = `id, name, last_name, birth_date, nationality`

func scanAuthor(row pgx.Row, a *model.Author) error {
	return row.Scan(&a.ID, &a.Name, &a.LastName, &a.BirthDate, &a.Nationality)
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Author, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT `+authorColumns+` FROM author ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	authors := make([]model.Author, 0)
	for rows.Next() {
		var a model.Author
		if err := scanAuthor(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	var a model.Author
	err := scanAuthor(r.db.Pool.QueryRow(ctx, `SELECT `+authorColumns+` FROM author WHERE id = $1`, id), &a)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author %d: %w", id, err)
	}
	return &a, nil
}

func (r *postgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM author WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author %d: %w", id, err)
	}
	return exists, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	var created model.Author

	err := r.db.ExecuteInTransaction(ctx, nil, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			INSERT INTO author (name, last_name, birth_date, nationality)
			VALUES ($1, $2, $3, $4)
			RETURNING `+authorColumns,
			a.Name, a.LastName, a.BirthDate, a.Nationality,
		)
		return scanAuthor(row, &created)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, fn UpdateFunc) (*model.Author, error) {
	var updated model.Author

	err := r.db.ExecuteInTransaction(ctx, nil, func(tx pgx.Tx) error {
		var current model.Author
		err := scanAuthor(tx.QueryRow(ctx, `SELECT `+authorColumns+` FROM author WHERE id = $1 FOR UPDATE`, id), &current)
		if err != nil {
			if database.IsNoRows(err) {
				return model.ErrAuthorNotFound
			}
			return err
		}

		if err := fn(&current); err != nil {
			return err
		}

		row := tx.QueryRow(ctx, `
			UPDATE author
			SET name = $1, last_name = $2, birth_date = $3, nationality = $4
			WHERE id = $5
			RETURNING `+authorColumns,
			current.Name, current.LastName, current.BirthDate, current.Nationality, id,
		)
		return scanAuthor(row, &updated)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update author %d: %w", id, err)
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.ExecuteInTransaction(ctx, nil, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM author WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return model.ErrAuthorNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete author %d: %w", id, err)
	}
	return nil
}
