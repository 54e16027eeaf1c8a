package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"biblioteca-api/internal/domains/author/model"
	"biblioteca-api/internal/infrastructure/database"
	"biblioteca-api/internal/shared/payload"
)

// sqliteRepository implements RepositoryInterface with sqlx.
// Dates are written as YYYY-MM-DD text; the DATE column type makes the driver scan them back into time.Time.
type sqliteRepository struct {
	db *database.SQLiteDB
}

func NewSQLiteRepository(db *database.SQLiteDB) RepositoryInterface {
	return &sqliteRepository{db: db}
}

const (
	sqliteSelectAuthor = `SELECT ` + authorColumns + ` FROM author`
	sqliteInsertAuthor = `
		INSERT INTO author (name, last_name, birth_date, nationality)
		VALUES (?, ?, ?, ?)
		RETURNING id`
	sqliteUpdateAuthor = `
		UPDATE author
		SET name = ?, last_name = ?, birth_date = ?, nationality = ?
		WHERE id = ?`
)

func (r *sqliteRepository) List(ctx context.Context) ([]model.Author, error) {
	authors := make([]model.Author, 0)
	if err := r.db.DB.SelectContext(ctx, &authors, sqliteSelectAuthor+` ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	return authors, nil
}

func (r *sqliteRepository) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	return getAuthor(ctx, r.db.DB, id)
}

func (r *sqliteRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.DB.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM author WHERE id = ?)`, id); err != nil {
		return false, fmt.Errorf("failed to check author %d: %w", id, err)
	}
	return exists, nil
}

func (r *sqliteRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	var created *model.Author

	err := r.db.ExecuteInTransaction(ctx, func(tx *sqlx.Tx) error {
		var id int64
		err := tx.GetContext(ctx, &id, sqliteInsertAuthor,
			a.Name, a.LastName, a.BirthDate.Format(payload.DateLayout), a.Nationality)
		if err != nil {
			return err
		}

		created, err = getAuthor(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return created, nil
}

func (r *sqliteRepository) Update(ctx context.Context, id int64, fn UpdateFunc) (*model.Author, error) {
	var updated *model.Author

	err := r.db.ExecuteInTransaction(ctx, func(tx *sqlx.Tx) error {
		current, err := getAuthor(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := fn(current); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, sqliteUpdateAuthor,
			current.Name, current.LastName, current.BirthDate.Format(payload.DateLayout), current.Nationality, id)
		if err != nil {
			return err
		}

		updated, err = getAuthor(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update author %d: %w", id, err)
	}

	return updated, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.ExecuteInTransaction(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM author WHERE id = ?`, id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return model.ErrAuthorNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete author %d: %w", id, err)
	}
	return nil
}

func getAuthor(ctx context.Context, q sqlx.QueryerContext, id int64) (*model.Author, error) {
	var a model.Author
	if err := sqlx.GetContext(ctx, q, &a, sqliteSelectAuthor+` WHERE id = ?`, id); err != nil {
		if database.IsNoRows(err) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author %d: %w", id, err)
	}
	return &a, nil
}
