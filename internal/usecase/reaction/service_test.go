package reaction_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Deshan005/AdvancedServerSideCW2/domain"
	"github.com/Deshan005/AdvancedServerSideCW2/domain/mocks"
	ucase "github.com/Deshan005/AdvancedServerSideCW2/internal/usecase/reaction"
)

func newReactionService() (*mocks.ReactionRepository, *mocks.BlogRepository, *mocks.BlogCache, *mocks.SyncCountsWorker, domain.ReactionUsecase) {
	reactionRepoMock := new(mocks.ReactionRepository)
	blogRepoMock := new(mocks.BlogRepository)
	cacheMock := new(mocks.BlogCache)
	syncerMock := new(mocks.SyncCountsWorker)
	s := ucase.NewService(reactionRepoMock, blogRepoMock, cacheMock, syncerMock)
	return reactionRepoMock, blogRepoMock, cacheMock, syncerMock, s
}

func TestReact(t *testing.T) {
	t.Run("valid reaction is stored and queued for sync", func(t *testing.T) {
		reactionRepoMock, blogRepoMock, _, syncerMock, s := newReactionService()

		r := domain.Reaction{BlogID: 7, UserEmail: "bob@x.com", Kind: domain.ReactionLike}
		blogRepoMock.On("GetByID", mock.Anything, int64(7)).Return(domain.Blog{ID: 7}, nil).Once()
		reactionRepoMock.On("Upsert", mock.Anything, r).Return(nil).Once()
		syncerMock.On("Send", int64(7)).Once()

		require.NoError(t, s.React(context.Background(), r))

		reactionRepoMock.AssertExpectations(t)
		blogRepoMock.AssertExpectations(t)
		syncerMock.AssertExpectations(t)
	})

	t.Run("invalid kind is rejected", func(t *testing.T) {
		reactionRepoMock, blogRepoMock, _, _, s := newReactionService()

		err := s.React(context.Background(), domain.Reaction{BlogID: 7, UserEmail: "bob@x.com", Kind: "love"})
		assert.ErrorIs(t, err, domain.ErrBadParamInput)

		blogRepoMock.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		reactionRepoMock.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("missing blog", func(t *testing.T) {
		reactionRepoMock, blogRepoMock, _, _, s := newReactionService()

		blogRepoMock.On("GetByID", mock.Anything, int64(404)).
			Return(domain.Blog{}, domain.ErrNotFound).Once()

		err := s.React(context.Background(), domain.Reaction{BlogID: 404, UserEmail: "bob@x.com", Kind: domain.ReactionLike})
		assert.ErrorIs(t, err, domain.ErrNotFound)

		reactionRepoMock.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}

func TestCounts(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		reactionRepoMock, _, cacheMock, _, s := newReactionService()

		cacheMock.On("GetReactionCounts", mock.Anything, int64(7)).
			Return(domain.ReactionCounts{Likes: 3, Dislikes: 1}, nil).Once()

		counts, err := s.Counts(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, domain.ReactionCounts{Likes: 3, Dislikes: 1}, counts)

		reactionRepoMock.AssertNotCalled(t, "Counts", mock.Anything, mock.Anything)
	})

	t.Run("cache miss falls through to mysql", func(t *testing.T) {
		reactionRepoMock, _, cacheMock, _, s := newReactionService()

		cacheMock.On("GetReactionCounts", mock.Anything, int64(7)).
			Return(domain.ReactionCounts{}, domain.ErrCacheMiss).Once()
		reactionRepoMock.On("Counts", mock.Anything, int64(7)).
			Return(domain.ReactionCounts{Likes: 2}, nil).Once()

		refreshed := make(chan struct{})
		cacheMock.On("SetReactionCounts", mock.Anything, int64(7), domain.ReactionCounts{Likes: 2}).
			Return(nil).Run(func(mock.Arguments) { close(refreshed) }).Once()

		counts, err := s.Counts(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, domain.ReactionCounts{Likes: 2}, counts)

		select {
		case <-refreshed:
		case <-time.After(time.Second):
			t.Fatal("counts were not written back to the cache")
		}

		reactionRepoMock.AssertExpectations(t)
		cacheMock.AssertExpectations(t)
	})
}

func TestUserReaction(t *testing.T) {
	reactionRepoMock, _, _, _, s := newReactionService()

	reactionRepoMock.On("UserReaction", mock.Anything, int64(7), "bob@x.com").
		Return(domain.ReactionDislike, nil).Once()

	kind, err := s.UserReaction(context.Background(), 7, "bob@x.com")
	require.NoError(t, err)
	assert.Equal(t, domain.ReactionDislike, kind)
}
