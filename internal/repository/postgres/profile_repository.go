package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gdugdh24/roomies-backend/internal/domain"
	"github.com/gdugdh24/roomies-backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID int) (*domain.PersonalityProfile, error) {
	var profile domain.PersonalityProfile
	query := `
		SELECT user_id,
		       openness, conscientiousness, extraversion, agreeableness, neuroticism,
		       cleanliness_level, social_level, quiet_hours, pets_allowed, smoking_allowed,
		       communication_style, lifestyle_answers, preferred_city,
		       completed_at, updated_at
		FROM personality_profiles WHERE user_id = $1
	`
	err := r.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Upsert(ctx context.Context, profile *domain.PersonalityProfile) error {
	profile.Clamp()
	if profile.LifestyleAnswers == nil {
		profile.LifestyleAnswers = domain.LifestyleAnswers{}
	}

	query := `
		INSERT INTO personality_profiles (
			user_id, openness, conscientiousness, extraversion, agreeableness, neuroticism,
			cleanliness_level, social_level, quiet_hours, pets_allowed, smoking_allowed,
			communication_style, lifestyle_answers, preferred_city
		)
		VALUES (
			:user_id, :openness, :conscientiousness, :extraversion, :agreeableness, :neuroticism,
			:cleanliness_level, :social_level, :quiet_hours, :pets_allowed, :smoking_allowed,
			:communication_style, :lifestyle_answers, :preferred_city
		)
		ON CONFLICT (user_id) DO UPDATE SET
			openness = EXCLUDED.openness,
			conscientiousness = EXCLUDED.conscientiousness,
			extraversion = EXCLUDED.extraversion,
			agreeableness = EXCLUDED.agreeableness,
			neuroticism = EXCLUDED.neuroticism,
			cleanliness_level = EXCLUDED.cleanliness_level,
			social_level = EXCLUDED.social_level,
			quiet_hours = EXCLUDED.quiet_hours,
			pets_allowed = EXCLUDED.pets_allowed,
			smoking_allowed = EXCLUDED.smoking_allowed,
			communication_style = EXCLUDED.communication_style,
			lifestyle_answers = EXCLUDED.lifestyle_answers,
			preferred_city = EXCLUDED.preferred_city,
			updated_at = NOW()
		RETURNING completed_at, updated_at
	`
	rows, err := r.db.NamedQueryContext(ctx, query, profile)
	if err != nil {
		return err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&profile.CompletedAt, &profile.UpdatedAt); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (r *profileRepository) ListUserIDs(ctx context.Context, exclude []int, limit int) ([]int, error) {
	excluded := make([]int64, len(exclude))
	for i, id := range exclude {
		excluded[i] = int64(id)
	}

	ids := []int{}
	query := `
		SELECT user_id FROM personality_profiles
		WHERE NOT (user_id = ANY($1))
		ORDER BY updated_at DESC
		LIMIT $2
	`
	err := r.db.SelectContext(ctx, &ids, query, pq.Array(excluded), limit)
	return ids, err
}
