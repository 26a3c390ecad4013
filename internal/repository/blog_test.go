package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Deshan005/AdvancedServerSideCW2/domain"
	"github.com/Deshan005/AdvancedServerSideCW2/domain/mocks"
	"github.com/Deshan005/AdvancedServerSideCW2/internal/repository"
)

func TestFetchAllServesFirstPageFromCache(t *testing.T) {
	dbMock := new(mocks.BlogRepository)
	cacheMock := new(mocks.BlogCache)

	cached := []domain.Blog{
		{ID: 3, Title: "Lisbon"},
		{ID: 2, Title: "Kyoto trip"},
		{ID: 1, Title: "Hanoi"},
	}
	cacheMock.On("GetHome", mock.Anything).Return(cached, nil).Once()

	repo := repository.NewBlogRepository(dbMock, cacheMock)
	res, err := repo.FetchAll(context.Background(), 2, 0)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "Lisbon", res[0].Title)

	// mysql is never touched on a warm cache
	dbMock.AssertNotCalled(t, "FetchAll", mock.Anything, mock.Anything, mock.Anything)
	cacheMock.AssertExpectations(t)
}

func TestFetchAllMissRebuildsCache(t *testing.T) {
	dbMock := new(mocks.BlogRepository)
	cacheMock := new(mocks.BlogCache)

	fromDB := []domain.Blog{{ID: 2, Title: "Kyoto trip"}, {ID: 1, Title: "Hanoi"}}
	cacheMock.On("GetHome", mock.Anything).Return(nil, domain.ErrCacheMiss).Once()
	dbMock.On("FetchAll", mock.Anything, repository.MaxPageSize, int64(0)).Return(fromDB, nil).Once()

	written := make(chan struct{})
	cacheMock.On("SetHome", mock.Anything, fromDB).Return(nil).Run(func(mock.Arguments) {
		close(written)
	}).Once()

	repo := repository.NewBlogRepository(dbMock, cacheMock)
	res, err := repo.FetchAll(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Equal(t, fromDB, res)

	select {
	case <-written:
	case <-time.After(time.Second):
		t.Fatal("cache was not rebuilt after a miss")
	}

	dbMock.AssertExpectations(t)
	cacheMock.AssertExpectations(t)
}

func TestFetchAllLaterPagesBypassCache(t *testing.T) {
	dbMock := new(mocks.BlogRepository)
	cacheMock := new(mocks.BlogCache)

	dbMock.On("FetchAll", mock.Anything, int64(10), int64(10)).
		Return([]domain.Blog{{ID: 1}}, nil).Once()

	repo := repository.NewBlogRepository(dbMock, cacheMock)
	res, err := repo.FetchAll(context.Background(), 10, 10)
	require.NoError(t, err)
	require.Len(t, res, 1)

	cacheMock.AssertNotCalled(t, "GetHome", mock.Anything)
	dbMock.AssertExpectations(t)
}

func TestStoreInvalidatesHomeCache(t *testing.T) {
	dbMock := new(mocks.BlogRepository)
	cacheMock := new(mocks.BlogCache)

	dbMock.On("Store", mock.Anything, mock.AnythingOfType("*domain.Blog")).Return(nil).Once()

	dropped := make(chan struct{})
	cacheMock.On("DeleteHome", mock.Anything).Return(nil).Run(func(mock.Arguments) {
		close(dropped)
	}).Once()

	repo := repository.NewBlogRepository(dbMock, cacheMock)
	require.NoError(t, repo.Store(context.Background(), &domain.Blog{Title: "Kyoto trip"}))

	select {
	case <-dropped:
	case <-time.After(time.Second):
		t.Fatal("home cache was not invalidated after a write")
	}

	dbMock.AssertExpectations(t)
	cacheMock.AssertExpectations(t)
}

func TestDeleteDropsReactionCounts(t *testing.T) {
	dbMock := new(mocks.BlogRepository)
	cacheMock := new(mocks.BlogCache)

	dbMock.On("Delete", mock.Anything, int64(7), "ana@x.com").Return(nil).Once()
	cacheMock.On("DeleteHome", mock.Anything).Return(nil).Maybe()

	dropped := make(chan struct{})
	cacheMock.On("DeleteReactionCounts", mock.Anything, int64(7)).Return(nil).Run(func(mock.Arguments) {
		close(dropped)
	}).Once()

	repo := repository.NewBlogRepository(dbMock, cacheMock)
	require.NoError(t, repo.Delete(context.Background(), 7, "ana@x.com"))

	select {
	case <-dropped:
	case <-time.After(time.Second):
		t.Fatal("reaction counts were not dropped with the blog")
	}

	dbMock.AssertExpectations(t)
}

func TestDeleteFailureSkipsInvalidation(t *testing.T) {
	dbMock := new(mocks.BlogRepository)
	cacheMock := new(mocks.BlogCache)

	dbMock.On("Delete", mock.Anything, int64(7), "mallory@x.com").Return(domain.ErrForbidden).Once()

	repo := repository.NewBlogRepository(dbMock, cacheMock)
	err := repo.Delete(context.Background(), 7, "mallory@x.com")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	cacheMock.AssertNotCalled(t, "DeleteHome", mock.Anything)
	dbMock.AssertExpectations(t)
}
