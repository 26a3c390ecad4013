package rest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Deshan005/AdvancedServerSideCW2/domain"
	"github.com/Deshan005/AdvancedServerSideCW2/domain/mocks"
	"github.com/Deshan005/AdvancedServerSideCW2/internal/rest"
	"github.com/Deshan005/AdvancedServerSideCW2/internal/rest/response"
)

func newBlogRouter(svc domain.BlogUsecase, authedAs string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := rest.NewBlogHandler(svc, "/tmp/uploads")
	r.GET("/blogs", h.FetchBlogs)
	r.GET("/blogs/:id", h.GetByID)

	authed := r.Group("")
	if authedAs != "" {
		authed.Use(func(c *gin.Context) {
			c.Set("user_email", authedAs)
		})
	}
	authed.DELETE("/blogs/:id", h.Delete)
	authed.GET("/feed", h.FollowingFeed)

	return r
}

func TestFetchBlogs(t *testing.T) {
	svcMock := new(mocks.BlogUsecase)

	blogs := []domain.Blog{
		{ID: 7, Title: "Kyoto trip", Country: "Japan", Author: domain.User{Email: "ana@x.com", Name: "Ana"}},
	}
	svcMock.On("Filter", mock.Anything, domain.BlogFilter{Country: "Japan"}, int64(1), int64(10)).
		Return(blogs, nil).Once()

	r := newBlogRouter(svcMock, "")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/blogs?country=Japan", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body []response.Blog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Kyoto trip", body[0].Title)
	assert.Equal(t, "Ana", body[0].AuthorName)

	svcMock.AssertExpectations(t)
}

func TestFetchBlogsRejectsBadDate(t *testing.T) {
	svcMock := new(mocks.BlogUsecase)

	r := newBlogRouter(svcMock, "")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/blogs?visited_from=notadate", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svcMock.AssertNotCalled(t, "Filter", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetByID(t *testing.T) {
	t.Run("existing blog", func(t *testing.T) {
		svcMock := new(mocks.BlogUsecase)
		svcMock.On("GetByID", mock.Anything, int64(7)).
			Return(domain.Blog{ID: 7, Title: "Kyoto trip"}, nil).Once()

		r := newBlogRouter(svcMock, "")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/blogs/7", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		svcMock.AssertExpectations(t)
	})

	t.Run("missing blog maps to 404", func(t *testing.T) {
		svcMock := new(mocks.BlogUsecase)
		svcMock.On("GetByID", mock.Anything, int64(404)).
			Return(domain.Blog{}, domain.ErrNotFound).Once()

		r := newBlogRouter(svcMock, "")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/blogs/404", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id maps to 404", func(t *testing.T) {
		svcMock := new(mocks.BlogUsecase)

		r := newBlogRouter(svcMock, "")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/blogs/abc", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		svcMock.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestDelete(t *testing.T) {
	t.Run("owner", func(t *testing.T) {
		svcMock := new(mocks.BlogUsecase)
		svcMock.On("Delete", mock.Anything, int64(7), "ana@x.com").Return(nil).Once()

		r := newBlogRouter(svcMock, "ana@x.com")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/blogs/7", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		svcMock.AssertExpectations(t)
	})

	t.Run("non-owner maps to 403", func(t *testing.T) {
		svcMock := new(mocks.BlogUsecase)
		svcMock.On("Delete", mock.Anything, int64(7), "mallory@x.com").
			Return(domain.ErrForbidden).Once()

		r := newBlogRouter(svcMock, "mallory@x.com")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/blogs/7", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("no identity maps to 401", func(t *testing.T) {
		svcMock := new(mocks.BlogUsecase)

		r := newBlogRouter(svcMock, "")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/blogs/7", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		svcMock.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestFollowingFeed(t *testing.T) {
	svcMock := new(mocks.BlogUsecase)

	// bob follows ana and carol; the feed carries their blogs only
	feed := []domain.Blog{
		{ID: 9, Title: "Hanoi", Author: domain.User{Email: "carol@x.com", Name: "Carol"}},
		{ID: 7, Title: "Kyoto trip", Author: domain.User{Email: "ana@x.com", Name: "Ana"}},
	}
	svcMock.On("FollowingFeed", mock.Anything, "bob@x.com", int64(1), int64(10)).
		Return(feed, nil).Once()

	r := newBlogRouter(svcMock, "bob@x.com")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body []response.Blog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "carol@x.com", body[0].AuthorEmail)
	assert.Equal(t, "ana@x.com", body[1].AuthorEmail)

	svcMock.AssertExpectations(t)
}
