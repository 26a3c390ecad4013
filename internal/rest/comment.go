package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Deshan005/AdvancedServerSideCW2/domain"
	"github.com/Deshan005/AdvancedServerSideCW2/internal/rest/request"
	"github.com/Deshan005/AdvancedServerSideCW2/internal/rest/response"
)

type commentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *commentHandler {
	return &commentHandler{
		Service: svc,
	}
}

func (h *commentHandler) CreateComment(c *gin.Context) {
	id, ok := blogIDParam(c)
	if !ok {
		return
	}

	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email, ok := authedEmail(c)
	if !ok {
		return
	}

	comment := req.ToDomain()
	comment.BlogID = id
	comment.UserEmail = email

	if err := h.Service.Create(c.Request.Context(), &comment); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewCommentFromDomain(&comment))
}

func (h *commentHandler) FetchCommentsByBlog(c *gin.Context) {
	id, ok := blogIDParam(c)
	if !ok {
		return
	}

	comments, err := h.Service.FetchByBlog(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Comment, len(comments))
	for i := range comments {
		res[i] = response.NewCommentFromDomain(&comments[i])
	}
	c.JSON(http.StatusOK, gin.H{"comments": res})
}
