package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLivingSpaceRepository_GetOrCreateForMatch(t *testing.T) {
	ctx := context.Background()
	insert := q("INSERT INTO living_spaces")
	member := q("INSERT INTO living_space_members")

	t.Run("creates space and admins", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewLivingSpaceRepository(db)
		created := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(insert).
			WithArgs(sqlmock.AnyArg(), 7, "Shared home", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(created.String()))
		mock.ExpectExec(member).WithArgs(created, 1, "admin").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(member).WithArgs(created, 2, "admin").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		id, err := repo.GetOrCreateForMatch(ctx, 7, "Shared home", []int{1, 2})
		require.NoError(t, err)
		assert.Equal(t, created, id)
	})

	t.Run("conflict reuses the existing space", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewLivingSpaceRepository(db)
		existing := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(insert).
			WithArgs(sqlmock.AnyArg(), 7, "Shared home", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(q("SELECT id FROM living_spaces WHERE match_id = $1")).
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(existing.String()))
		mock.ExpectExec(member).WithArgs(existing, 1, "admin").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(member).WithArgs(existing, 2, "admin").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		id, err := repo.GetOrCreateForMatch(ctx, 7, "Shared home", []int{1, 2})
		require.NoError(t, err)
		assert.Equal(t, existing, id)
	})

	t.Run("member failure rolls back", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewLivingSpaceRepository(db)
		created := uuid.New()
		boom := errors.New("fk violation")

		mock.ExpectBegin()
		mock.ExpectQuery(insert).
			WithArgs(sqlmock.AnyArg(), 7, "Shared home", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(created.String()))
		mock.ExpectExec(member).WithArgs(created, 1, "admin").WillReturnError(boom)
		mock.ExpectRollback()

		_, err := repo.GetOrCreateForMatch(ctx, 7, "Shared home", []int{1, 2})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("no members", func(t *testing.T) {
		db, _ := newMockDB(t)
		repo := NewLivingSpaceRepository(db)

		_, err := repo.GetOrCreateForMatch(ctx, 7, "Shared home", nil)
		assert.Error(t, err)
	})
}
