package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"biblioteca-api/internal/domains/book/model"
	"biblioteca-api/internal/domains/book/repository"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) List(ctx context.Context) ([]model.Book, error) {
	args := m.Called(ctx)
	books, _ := args.Get(0).([]model.Book)
	return books, args.Error(1)
}

func (m *mockRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*model.Book)
	return b, args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	args := m.Called(ctx, b)
	created, _ := args.Get(0).(*model.Book)
	return created, args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, id int64, fn repository.UpdateFunc) (*model.Book, error) {
	args := m.Called(ctx, id)
	current, _ := args.Get(0).(*model.Book)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	if err := fn(current); err != nil {
		return nil, err
	}
	return current, nil
}

func (m *mockRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockAuthors struct {
	mock.Mock
}

func (m *mockAuthors) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func intPtr(n int) *int { return &n }
func idPtr(n int64) *int64 { return &n }
func strPtr(s string) *string { return &s }

func validInput(authorID int64) *model.BookInput {
	date := time.Date(1956, 1, 1, 0, 0, 0, 0, time.UTC)
	return &model.BookInput{
		Title:           strPtr("Grande Sertão: Veredas"),
		PublicationDate: &date,
		NumberPages:     intPtr(608),
		AuthorsID:       idPtr(authorID),
	}
}

func storedBook() *model.Book {
	return &model.Book{
		ID:              5,
		Title:           "Sagarana",
		PublicationDate: time.Date(1946, 1, 1, 0, 0, 0, 0, time.UTC),
		NumberPages:     300,
		AuthorsID:       1,
		AuthorsName:     "Guimarães",
	}
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name    string
		in      *model.BookInput
		exists  bool
		lookErr error
		wantErr error
	}{
		{name: "created", in: validInput(1), exists: true},
		{name: "unknown author", in: validInput(9), exists: false, wantErr: model.ErrAuthorNotRegistered},
		{
			name: "zero pages",
			in: func() *model.BookInput {
				in := validInput(1)
				in.NumberPages = intPtr(0)
				return in
			}(),
			wantErr: model.ErrZeroPages,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := new(mockRepository)
			authors := new(mockAuthors)
			svc := NewBookService(repo, authors)

			authors.On("Exists", ctx, *tt.in.AuthorsID).Return(tt.exists, nil)
			repo.On("Create", ctx, mock.AnythingOfType("*model.Book")).Return(storedBook(), nil)

			got, err := svc.Create(ctx, tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(5), got.ID)
		})
	}
}

func TestCreateLookupFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	authors := new(mockAuthors)
	svc := NewBookService(repo, authors)

	authors.On("Exists", ctx, int64(1)).Return(false, errors.New("connection reset"))

	_, err := svc.Create(ctx, validInput(1))
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrAuthorNotRegistered)
}

func TestUpdate(t *testing.T) {
	t.Run("missing book wins over other checks", func(t *testing.T) {
		ctx := context.Background()
		repo := new(mockRepository)
		authors := new(mockAuthors)
		svc := NewBookService(repo, authors)

		repo.On("GetByID", ctx, int64(5)).Return(nil, model.ErrBookNotFound)

		_, err := svc.Update(ctx, 5, &model.BookInput{AuthorsID: idPtr(77)})
		assert.ErrorIs(t, err, model.ErrBookNotFound)
		authors.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	})

	t.Run("unknown author", func(t *testing.T) {
		ctx := context.Background()
		repo := new(mockRepository)
		authors := new(mockAuthors)
		svc := NewBookService(repo, authors)

		repo.On("GetByID", ctx, int64(5)).Return(storedBook(), nil)
		authors.On("Exists", ctx, int64(77)).Return(false, nil)

		_, err := svc.Update(ctx, 5, &model.BookInput{AuthorsID: idPtr(77)})
		assert.ErrorIs(t, err, model.ErrAuthorNotRegistered)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("zero pages", func(t *testing.T) {
		ctx := context.Background()
		repo := new(mockRepository)
		svc := NewBookService(repo, new(mockAuthors))

		repo.On("GetByID", ctx, int64(5)).Return(storedBook(), nil)

		_, err := svc.Update(ctx, 5, &model.BookInput{NumberPages: intPtr(0)})
		assert.ErrorIs(t, err, model.ErrZeroPages)
	})

	t.Run("merges sent fields", func(t *testing.T) {
		ctx := context.Background()
		repo := new(mockRepository)
		svc := NewBookService(repo, new(mockAuthors))

		repo.On("GetByID", ctx, int64(5)).Return(storedBook(), nil)
		repo.On("Update", ctx, int64(5)).Return(storedBook(), nil)

		got, err := svc.Update(ctx, 5, &model.BookInput{Title: strPtr("Sagarana (ed. revista)")})
		require.NoError(t, err)
		assert.Equal(t, "Sagarana (ed. revista)", got.Title)
		assert.Equal(t, 300, got.NumberPages)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	svc := NewBookService(repo, new(mockAuthors))

	repo.On("Delete", ctx, int64(5)).Return(nil)

	require.NoError(t, svc.Delete(ctx, 5))
	assert.ErrorIs(t, svc.Delete(ctx, 0), model.ErrBookNotFound)
	repo.AssertNumberOfCalls(t, "Delete", 1)
}
