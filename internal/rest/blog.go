package rest

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Deshan005/AdvancedServerSideCW2/domain"
	"github.com/Deshan005/AdvancedServerSideCW2/internal/rest/request"
	"github.com/Deshan005/AdvancedServerSideCW2/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

const (
	DefaultPage     = 1
	DefaultPageSize = 10

	visitedDateFormat = "2006-01-02"
)

// BlogHandler  represent the httphandler for blog
type BlogHandler struct {
	Service   domain.BlogUsecase
	UploadDir string
}

func NewBlogHandler(svc domain.BlogUsecase, uploadDir string) *BlogHandler {
	return &BlogHandler{
		Service:   svc,
		UploadDir: uploadDir,
	}
}

// FetchBlogs will fetch blogs, optionally narrowed by country, author
// pattern and visited-date range
func (h *BlogHandler) FetchBlogs(c *gin.Context) {
	page, size := pageParams(c)

	filter := domain.BlogFilter{
		AuthorPattern: c.Query("author"),
		Country:       c.Query("country"),
	}
	if from := c.Query("visited_from"); from != "" {
		t, err := time.Parse(visitedDateFormat, from)
		if err != nil {
			c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
			return
		}
		filter.VisitedFrom = &t
	}
	if to := c.Query("visited_to"); to != "" {
		t, err := time.Parse(visitedDateFormat, to)
		if err != nil {
			c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
			return
		}
		filter.VisitedTo = &t
	}

	listBl, err := h.Service.Filter(c.Request.Context(), filter, page, size)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Blog, len(listBl))
	for i := range listBl {
		res[i] = response.NewBlogFromDomain(&listBl[i])
	}
	c.JSON(http.StatusOK, res)
}

// GetByID will get blog by given id
func (h *BlogHandler) GetByID(c *gin.Context) {
	id, ok := blogIDParam(c)
	if !ok {
		return
	}

	bl, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewBlogFromDomain(&bl))
}

// Store will store the blog by given multipart form, staging the uploaded
// cover image into the uploads dir
func (h *BlogHandler) Store(c *gin.Context) {
	var req request.Blog
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email, ok := authedEmail(c)
	if !ok {
		return
	}

	blog := req.ToDomain()
	blog.Author.Email = email

	if file, err := c.FormFile("image"); err == nil {
		name := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(file.Filename))
		if err := c.SaveUploadedFile(file, filepath.Join(h.UploadDir, name)); err != nil {
			logrus.Errorf("failed to stage upload: %v", err)
			c.JSON(http.StatusInternalServerError, ResponseError{Message: domain.ErrInternalServerError.Error()})
			return
		}
		blog.Image = "uploads/" + name
	}

	if err := h.Service.Store(c.Request.Context(), &blog); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewBlogFromDomain(&blog))
}

// Update will update title, content, country and image of the caller's blog
func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := blogIDParam(c)
	if !ok {
		return
	}

	var req request.Blog
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email, ok := authedEmail(c)
	if !ok {
		return
	}

	blog := req.ToDomain()
	blog.ID = id
	blog.Author.Email = email

	if file, err := c.FormFile("image"); err == nil {
		name := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(file.Filename))
		if err := c.SaveUploadedFile(file, filepath.Join(h.UploadDir, name)); err != nil {
			logrus.Errorf("failed to stage upload: %v", err)
			c.JSON(http.StatusInternalServerError, ResponseError{Message: domain.ErrInternalServerError.Error()})
			return
		}
		blog.Image = "uploads/" + name
	}

	if err := h.Service.Update(c.Request.Context(), &blog); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewBlogFromDomain(&blog))
}

// Delete will delete the caller's blog by given param
func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := blogIDParam(c)
	if !ok {
		return
	}

	email, ok := authedEmail(c)
	if !ok {
		return
	}

	if err := h.Service.Delete(c.Request.Context(), id, email); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// FollowingFeed returns blogs authored by users the caller follows
func (h *BlogHandler) FollowingFeed(c *gin.Context) {
	email, ok := authedEmail(c)
	if !ok {
		return
	}
	page, size := pageParams(c)

	listBl, err := h.Service.FollowingFeed(c.Request.Context(), email, page, size)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Blog, len(listBl))
	for i := range listBl {
		res[i] = response.NewBlogFromDomain(&listBl[i])
	}
	c.JSON(http.StatusOK, res)
}

func pageParams(c *gin.Context) (page, size int64) {
	page, err := strconv.ParseInt(c.DefaultQuery("page", ""), 10, 64)
	if err != nil || page < 1 {
		page = DefaultPage
	}
	size, err = strconv.ParseInt(c.DefaultQuery("size", ""), 10, 64)
	if err != nil || size < 1 {
		size = DefaultPageSize
	}
	return page, size
}

func blogIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return 0, false
	}
	return id, true
}

func authedEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get("user_email")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return "", false
	}
	return email.(string), true
}

// getStatusCode will get the code of the error from the usecase layer
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch err {
	case domain.ErrInternalServerError:
		return http.StatusInternalServerError
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrConflict:
		return http.StatusConflict
	case domain.ErrForbidden:
		return http.StatusForbidden
	case domain.ErrBadParamInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
