package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Deshan005/AdvancedServerSideCW2/domain"
	"github.com/Deshan005/AdvancedServerSideCW2/internal/rest/request"
)

type reactionHandler struct {
	Service domain.ReactionUsecase
}

func NewReactionHandler(svc domain.ReactionUsecase) *reactionHandler {
	return &reactionHandler{
		Service: svc,
	}
}

// React stores or overwrites the caller's like/dislike on a blog
func (h *reactionHandler) React(c *gin.Context) {
	id, ok := blogIDParam(c)
	if !ok {
		return
	}

	var req request.Reaction
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email, ok := authedEmail(c)
	if !ok {
		return
	}

	reaction := req.ToDomain()
	reaction.BlogID = id
	reaction.UserEmail = email

	if err := h.Service.React(c.Request.Context(), reaction); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reaction": string(reaction.Kind)})
}

// Counts returns like/dislike totals; zero counts for an unreacted blog
func (h *reactionHandler) Counts(c *gin.Context) {
	id, ok := blogIDParam(c)
	if !ok {
		return
	}

	counts, err := h.Service.Counts(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, counts)
}

// MyReaction returns the caller's current reaction kind, empty when none
func (h *reactionHandler) MyReaction(c *gin.Context) {
	id, ok := blogIDParam(c)
	if !ok {
		return
	}

	email, ok := authedEmail(c)
	if !ok {
		return
	}

	kind, err := h.Service.UserReaction(c.Request.Context(), id, email)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reaction": string(kind)})
}
