package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gdugdh24/roomies-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var interactionColumns = []string{"id", "actor_id", "target_id", "interaction_type", "created_at"}

func TestInteractionRepository_CreateIfAbsent(t *testing.T) {
	ctx := context.Background()
	insert := q("ON CONFLICT (actor_id, target_id) DO NOTHING RETURNING *")

	t.Run("stores a new decision", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewInteractionRepository(db)

		mock.ExpectQuery(insert).
			WithArgs(1, 2, domain.InteractionLike).
			WillReturnRows(sqlmock.NewRows(interactionColumns).AddRow(10, 1, 2, "like", testTime))

		stored, created, err := repo.CreateIfAbsent(ctx, &domain.Interaction{ActorID: 1, TargetID: 2, Type: domain.InteractionLike})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, 10, stored.ID)
	})

	t.Run("conflict returns the earlier decision", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewInteractionRepository(db)

		mock.ExpectQuery(insert).
			WithArgs(1, 2, domain.InteractionSuperLike).
			WillReturnRows(sqlmock.NewRows(interactionColumns))
		mock.ExpectQuery(q("SELECT * FROM match_interactions WHERE actor_id = $1 AND target_id = $2")).
			WithArgs(1, 2).
			WillReturnRows(sqlmock.NewRows(interactionColumns).AddRow(10, 1, 2, "pass", testTime))

		stored, created, err := repo.CreateIfAbsent(ctx, &domain.Interaction{ActorID: 1, TargetID: 2, Type: domain.InteractionSuperLike})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, domain.InteractionPass, stored.Type)
	})
}

func TestInteractionRepository_GetByUsersNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInteractionRepository(db)

	mock.ExpectQuery(q("FROM match_interactions WHERE actor_id = $1")).
		WithArgs(3, 4).
		WillReturnRows(sqlmock.NewRows(interactionColumns))

	_, err := repo.GetByUsers(context.Background(), 3, 4)
	assert.ErrorIs(t, err, domain.ErrInteractionNotFound)
}

func TestInteractionRepository_HasLiked(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInteractionRepository(db)

	mock.ExpectQuery(q("SELECT EXISTS(")).
		WithArgs(1, 2, domain.InteractionLike, domain.InteractionSuperLike).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	liked, err := repo.HasLiked(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestInteractionRepository_GetPendingLikes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInteractionRepository(db)

	mock.ExpectQuery(q("AND NOT EXISTS (")).
		WithArgs(2, domain.InteractionLike, domain.InteractionSuperLike).
		WillReturnRows(sqlmock.NewRows(interactionColumns).
			AddRow(11, 5, 2, "super_like", testTime).
			AddRow(10, 1, 2, "like", testTime))

	likes, err := repo.GetPendingLikes(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, likes, 2)
	assert.Equal(t, 5, likes[0].ActorID)
}
