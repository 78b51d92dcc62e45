package swipe

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/gdugdh24/roomies-backend/internal/compatibility"
	"github.com/gdugdh24/roomies-backend/internal/domain"
	"github.com/gdugdh24/roomies-backend/internal/repository/memory"
	compatuc "github.com/gdugdh24/roomies-backend/internal/usecase/compatibility"
	"github.com/gdugdh24/roomies-backend/internal/usecase/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sentNotification struct {
	kind        string
	recipientID int
	actorID     int
	matchID     int
}

type recordingSink struct {
	mu   sync.Mutex
	sent []sentNotification
	err  error
}

func (s *recordingSink) MatchRequest(_ context.Context, recipientID, actorID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, sentNotification{kind: "request", recipientID: recipientID, actorID: actorID})
	return s.err
}

func (s *recordingSink) MatchCreated(_ context.Context, recipientID, actorID, matchID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, sentNotification{kind: "match", recipientID: recipientID, actorID: actorID, matchID: matchID})
	return s.err
}

func (s *recordingSink) count(kind string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, m := range s.sent {
		if m.kind == kind {
			n++
		}
	}
	return n
}

type fixture struct {
	store *memory.Store
	sink  *recordingSink
	uc    *SwipeUseCase
}

func newFixture(t *testing.T, profileIDs ...int) *fixture {
	t.Helper()
	store := memory.NewStore()
	for _, id := range profileIDs {
		require.NoError(t, store.Profiles().Upsert(context.Background(), &domain.PersonalityProfile{
			UserID:             id,
			LifestyleFlags:     domain.LifestyleFlags{CleanlinessLevel: 50, SocialLevel: 50},
			CommunicationStyle: domain.CommunicationDirect,
			LifestyleAnswers:   domain.LifestyleAnswers{"early_riser": "early_bird"},
		}))
	}

	logger := zap.NewNop()
	scorer := compatuc.NewCompatibilityUseCase(compatibility.NewEngine(store.Profiles()), nil, logger)
	matches := match.NewMatchUseCase(store.Matches(), store.Interactions(), scorer, store.LivingSpaces(), nil, logger)
	sink := &recordingSink{}

	return &fixture{
		store: store,
		sink:  sink,
		uc:    NewSwipeUseCase(store.Interactions(), matches, scorer, sink, logger),
	}
}

func like(target int) *InteractionRequest {
	return &InteractionRequest{TargetID: target, Type: domain.InteractionLike}
}

func TestRecordInteraction_SelfIsRejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.RecordInteraction(context.Background(), 1, like(1))
	assert.ErrorIs(t, err, domain.ErrCannotInteractWithSelf)
}

func TestRecordInteraction_InvalidType(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.RecordInteraction(context.Background(), 1, &InteractionRequest{TargetID: 2, Type: "wink"})
	assert.ErrorIs(t, err, domain.ErrInvalidInteractionType)
}

func TestRecordInteraction_InvalidTarget(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.RecordInteraction(context.Background(), 1, &InteractionRequest{TargetID: -4, Type: domain.InteractionLike})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	assert.NotErrorIs(t, err, domain.ErrInvalidInteractionType)
}

func TestRecordInteraction_IsIdempotent(t *testing.T) {
	f := newFixture(t, 1, 2)
	ctx := context.Background()

	first, err := f.uc.RecordInteraction(ctx, 1, like(2))
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Nil(t, first.MatchID)

	second, err := f.uc.RecordInteraction(ctx, 1, &InteractionRequest{TargetID: 2, Type: domain.InteractionPass})
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.Interaction.ID, second.Interaction.ID)
	assert.Equal(t, domain.InteractionLike, second.Interaction.Type, "first interaction wins")

	assert.Equal(t, 1, f.sink.count("request"))
}

func TestRecordInteraction_MutualLikeCreatesOneMatch(t *testing.T) {
	f := newFixture(t, 1, 2)
	ctx := context.Background()

	_, err := f.uc.RecordInteraction(ctx, 1, like(2))
	require.NoError(t, err)

	res, err := f.uc.RecordInteraction(ctx, 2, &InteractionRequest{TargetID: 1, Type: domain.InteractionSuperLike})
	require.NoError(t, err)
	require.NotNil(t, res.MatchID)

	m, err := f.store.Matches().GetByID(ctx, *res.MatchID)
	require.NoError(t, err)
	assert.Equal(t, 1, m.User1ID)
	assert.Equal(t, 2, m.User2ID)
	assert.Equal(t, domain.MatchStatusMutual, m.Status)
	assert.Greater(t, m.CompatibilityScore, 0.0)
	assert.Equal(t, 2, f.sink.count("match"))

	// Repeating the like reports the same match without notifying again.
	again, err := f.uc.RecordInteraction(ctx, 2, like(1))
	require.NoError(t, err)
	assert.False(t, again.Created)
	require.NotNil(t, again.MatchID)
	assert.Equal(t, *res.MatchID, *again.MatchID)
	assert.Equal(t, 2, f.sink.count("match"))
}

func TestRecordInteraction_PassDoesNotMatch(t *testing.T) {
	f := newFixture(t, 1, 2)
	ctx := context.Background()

	_, err := f.uc.RecordInteraction(ctx, 1, like(2))
	require.NoError(t, err)
	res, err := f.uc.RecordInteraction(ctx, 2, &InteractionRequest{TargetID: 1, Type: domain.InteractionPass})
	require.NoError(t, err)
	assert.Nil(t, res.MatchID)

	_, err = f.store.Matches().GetByUsers(ctx, 1, 2)
	assert.ErrorIs(t, err, domain.ErrMatchNotFound)
}

func TestRecordInteraction_ConcurrentMutualLikes(t *testing.T) {
	for i := 0; i < 50; i++ {
		f := newFixture(t, 1, 2)
		ctx := context.Background()

		var wg sync.WaitGroup
		results := make([]*RecordResult, 2)
		errs := make([]error, 2)
		for idx, users := range [][2]int{{1, 2}, {2, 1}} {
			wg.Add(1)
			go func(idx, actor, target int) {
				defer wg.Done()
				results[idx], errs[idx] = f.uc.RecordInteraction(ctx, actor, like(target))
			}(idx, users[0], users[1])
		}
		wg.Wait()

		require.NoError(t, errs[0])
		require.NoError(t, errs[1])

		matches, err := f.store.Matches().GetUserMatches(ctx, 1, 10, 0)
		require.NoError(t, err)
		require.Len(t, matches, 1)

		var ids []int
		for _, r := range results {
			if r.MatchID != nil {
				ids = append(ids, *r.MatchID)
			}
		}
		require.NotEmpty(t, ids)
		for _, id := range ids {
			assert.Equal(t, matches[0].ID, id)
		}
		assert.Equal(t, 2, f.sink.count("match"))
	}
}

func TestRecordInteraction_NotificationFailureIsIgnored(t *testing.T) {
	f := newFixture(t, 1, 2)
	f.sink.err = errors.New("redis down")

	res, err := f.uc.RecordInteraction(context.Background(), 1, like(2))
	require.NoError(t, err)
	assert.True(t, res.Created)

	liked, err := f.uc.HasLiked(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestListIncomingRequests(t *testing.T) {
	f := newFixture(t, 1, 2, 3, 4)
	ctx := context.Background()

	_, err := f.uc.RecordInteraction(ctx, 2, like(1))
	require.NoError(t, err)
	_, err = f.uc.RecordInteraction(ctx, 3, &InteractionRequest{TargetID: 1, Type: domain.InteractionSuperLike})
	require.NoError(t, err)
	_, err = f.uc.RecordInteraction(ctx, 4, &InteractionRequest{TargetID: 1, Type: domain.InteractionPass})
	require.NoError(t, err)
	// 1 already answered 3
	_, err = f.uc.RecordInteraction(ctx, 1, &InteractionRequest{TargetID: 3, Type: domain.InteractionPass})
	require.NoError(t, err)

	requests, err := f.uc.ListIncomingRequests(ctx, 1)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, 2, requests[0].ActorID)
	assert.True(t, requests[0].Compatibility.Defined)
}

func TestRespondToRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("accept creates match", func(t *testing.T) {
		f := newFixture(t, 1, 2)
		_, err := f.uc.RecordInteraction(ctx, 2, like(1))
		require.NoError(t, err)

		res, err := f.uc.RespondToRequest(ctx, 1, &RespondRequest{ActorID: 2, Response: ResponseAccept})
		require.NoError(t, err)
		require.NotNil(t, res.MatchID)
		assert.Equal(t, domain.InteractionLike, res.Interaction.Type)

		requests, err := f.uc.ListIncomingRequests(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, requests)
	})

	t.Run("decline records pass", func(t *testing.T) {
		f := newFixture(t, 1, 2)
		_, err := f.uc.RecordInteraction(ctx, 2, like(1))
		require.NoError(t, err)

		res, err := f.uc.RespondToRequest(ctx, 1, &RespondRequest{ActorID: 2, Response: ResponseDecline})
		require.NoError(t, err)
		assert.Nil(t, res.MatchID)
		assert.Equal(t, domain.InteractionPass, res.Interaction.Type)
	})

	t.Run("invalid response type", func(t *testing.T) {
		f := newFixture(t, 1, 2)
		_, err := f.uc.RecordInteraction(ctx, 2, like(1))
		require.NoError(t, err)

		_, err = f.uc.RespondToRequest(ctx, 1, &RespondRequest{ActorID: 2, Response: "maybe"})
		assert.ErrorIs(t, err, domain.ErrInvalidResponseType)
	})

	t.Run("no request", func(t *testing.T) {
		f := newFixture(t, 1, 2)
		_, err := f.uc.RespondToRequest(ctx, 1, &RespondRequest{ActorID: 2, Response: ResponseAccept})
		assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	})

	t.Run("pass is not a request", func(t *testing.T) {
		f := newFixture(t, 1, 2)
		_, err := f.uc.RecordInteraction(ctx, 2, &InteractionRequest{TargetID: 1, Type: domain.InteractionPass})
		require.NoError(t, err)

		_, err = f.uc.RespondToRequest(ctx, 1, &RespondRequest{ActorID: 2, Response: ResponseAccept})
		assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	})

	t.Run("non-positive actor is a bad request", func(t *testing.T) {
		f := newFixture(t, 1, 2)

		_, err := f.uc.RespondToRequest(ctx, 1, &RespondRequest{ActorID: -2, Response: ResponseAccept})
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
		assert.NotErrorIs(t, err, domain.ErrRequestNotFound)
	})

	t.Run("accept after earlier pass is rejected", func(t *testing.T) {
		f := newFixture(t, 1, 2)
		_, err := f.uc.RecordInteraction(ctx, 2, like(1))
		require.NoError(t, err)
		_, err = f.uc.RecordInteraction(ctx, 1, &InteractionRequest{TargetID: 2, Type: domain.InteractionPass})
		require.NoError(t, err)

		_, err = f.uc.RespondToRequest(ctx, 1, &RespondRequest{ActorID: 2, Response: ResponseAccept})
		assert.ErrorIs(t, err, domain.ErrRequestAlreadyAnswered)

		_, err = f.store.Matches().GetByUsers(ctx, 1, 2)
		assert.ErrorIs(t, err, domain.ErrMatchNotFound)
	})

	t.Run("repeating the same answer is a no-op", func(t *testing.T) {
		f := newFixture(t, 1, 2)
		_, err := f.uc.RecordInteraction(ctx, 2, like(1))
		require.NoError(t, err)

		first, err := f.uc.RespondToRequest(ctx, 1, &RespondRequest{ActorID: 2, Response: ResponseDecline})
		require.NoError(t, err)
		again, err := f.uc.RespondToRequest(ctx, 1, &RespondRequest{ActorID: 2, Response: ResponseDecline})
		require.NoError(t, err)
		assert.False(t, again.Created)
		assert.Equal(t, first.Interaction.ID, again.Interaction.ID)
	})
}
