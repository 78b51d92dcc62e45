package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gdugdh24/roomies-backend/internal/domain"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var profileColumns = []string{
	"user_id",
	"openness", "conscientiousness", "extraversion", "agreeableness", "neuroticism",
	"cleanliness_level", "social_level", "quiet_hours", "pets_allowed", "smoking_allowed",
	"communication_style", "lifestyle_answers", "preferred_city",
	"completed_at", "updated_at",
}

func TestProfileRepository_GetByUserID(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes traits and answers", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProfileRepository(db)

		mock.ExpectQuery(q("FROM personality_profiles WHERE user_id = $1")).
			WithArgs(4).
			WillReturnRows(sqlmock.NewRows(profileColumns).AddRow(
				4, 70, nil, 40, 55, 20,
				80, 60, true, false, false,
				"direct", []byte(`{"allergies":"pets"}`), "Kazan",
				testTime, testTime,
			))

		p, err := repo.GetByUserID(ctx, 4)
		require.NoError(t, err)
		require.NotNil(t, p.Openness)
		assert.Equal(t, 70, *p.Openness)
		assert.Nil(t, p.Conscientiousness)
		assert.Equal(t, domain.CommunicationDirect, p.CommunicationStyle)
		assert.Equal(t, domain.LifestyleAnswers{"allergies": "pets"}, p.LifestyleAnswers)
		require.NotNil(t, p.PreferredCity)
		assert.Equal(t, "Kazan", *p.PreferredCity)
	})

	t.Run("missing profile", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProfileRepository(db)

		mock.ExpectQuery(q("FROM personality_profiles WHERE user_id = $1")).
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows(profileColumns))

		_, err := repo.GetByUserID(ctx, 5)
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	})
}

func TestProfileRepository_UpsertClampsAndReturnsTimestamps(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	openness := 120
	mock.ExpectQuery(q("ON CONFLICT (user_id) DO UPDATE SET")).
		WithArgs(
			4, 100, nil, nil, nil, nil,
			0, 0, false, false, false,
			"casual", []byte(`{}`), nil,
		).
		WillReturnRows(sqlmock.NewRows([]string{"completed_at", "updated_at"}).AddRow(testTime, testTime))

	p := &domain.PersonalityProfile{
		UserID:             4,
		Traits:             domain.Traits{Openness: &openness},
		CommunicationStyle: domain.CommunicationCasual,
	}
	require.NoError(t, repo.Upsert(context.Background(), p))
	assert.Equal(t, 100, *p.Openness)
	assert.Equal(t, testTime, p.CompletedAt)
	assert.Equal(t, domain.LifestyleAnswers{}, p.LifestyleAnswers)
}

func TestProfileRepository_ListUserIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectQuery(q("WHERE NOT (user_id = ANY($1))")).
		WithArgs(pq.Array([]int64{1, 3}), 50).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(7).AddRow(2))

	ids, err := repo.ListUserIDs(context.Background(), []int{1, 3}, 50)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 2}, ids)
}
