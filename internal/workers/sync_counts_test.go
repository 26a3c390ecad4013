package workers_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Deshan005/AdvancedServerSideCW2/domain"
	"github.com/Deshan005/AdvancedServerSideCW2/domain/mocks"
	"github.com/Deshan005/AdvancedServerSideCW2/internal/workers"
)

func TestSyncCountsDedupsBurst(t *testing.T) {
	reactionRepoMock := new(mocks.ReactionRepository)
	cacheMock := new(mocks.BlogCache)

	// ten reactions on one blog collapse into a single recount
	reactionRepoMock.On("Counts", mock.Anything, int64(7)).
		Return(domain.ReactionCounts{Likes: 10}, nil).Once()

	refreshed := make(chan struct{})
	cacheMock.On("SetReactionCounts", mock.Anything, int64(7), domain.ReactionCounts{Likes: 10}).
		Return(nil).Run(func(mock.Arguments) { close(refreshed) }).Once()

	w := workers.NewSyncCountsWorker(reactionRepoMock, cacheMock)
	for i := 0; i < 10; i++ {
		w.Send(7)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	select {
	case <-refreshed:
	case <-time.After(3 * time.Second):
		t.Fatal("worker never refreshed the counts cache")
	}

	reactionRepoMock.AssertExpectations(t)
	cacheMock.AssertExpectations(t)
}

func TestSyncCountsFlushesOnShutdown(t *testing.T) {
	reactionRepoMock := new(mocks.ReactionRepository)
	cacheMock := new(mocks.BlogCache)

	reactionRepoMock.On("Counts", mock.Anything, int64(7)).
		Return(domain.ReactionCounts{Likes: 1}, nil).Once()

	refreshed := make(chan struct{})
	cacheMock.On("SetReactionCounts", mock.Anything, int64(7), domain.ReactionCounts{Likes: 1}).
		Return(nil).Run(func(mock.Arguments) { close(refreshed) }).Once()

	w := workers.NewSyncCountsWorker(reactionRepoMock, cacheMock)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	w.Send(7)
	// give the run loop a moment to pick the task up, then stop it
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("worker did not stop on context cancellation")
	}

	select {
	case <-refreshed:
	case <-time.After(time.Second):
		t.Fatal("pending task was not flushed on shutdown")
	}

	reactionRepoMock.AssertExpectations(t)
	cacheMock.AssertExpectations(t)
}
