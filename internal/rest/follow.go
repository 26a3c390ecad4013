package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Deshan005/AdvancedServerSideCW2/domain"
)

type followHandler struct {
	Service domain.FollowUsecase
}

func NewFollowHandler(svc domain.FollowUsecase) *followHandler {
	return &followHandler{
		Service: svc,
	}
}

// Follow creates an edge from the caller to :email. Following an already
// followed user answers with is_changed=false instead of an error.
func (h *followHandler) Follow(c *gin.Context) {
	follower, ok := authedEmail(c)
	if !ok {
		return
	}
	following := c.Param("email")

	changed, err := h.Service.Follow(c.Request.Context(), follower, following)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_changed": changed})
}

// Unfollow removes the edge if present; removing an absent edge succeeds.
func (h *followHandler) Unfollow(c *gin.Context) {
	follower, ok := authedEmail(c)
	if !ok {
		return
	}
	following := c.Param("email")

	if err := h.Service.Unfollow(c.Request.Context(), follower, following); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *followHandler) ListFollowing(c *gin.Context) {
	emails, err := h.Service.ListFollowing(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	if emails == nil {
		emails = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"following": emails})
}

func (h *followHandler) ListFollowers(c *gin.Context) {
	emails, err := h.Service.ListFollowers(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	if emails == nil {
		emails = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"followers": emails})
}

// IsFollowing reports whether the caller follows :email; the frontend uses
// it to pick the follow/unfollow button state.
func (h *followHandler) IsFollowing(c *gin.Context) {
	follower, ok := authedEmail(c)
	if !ok {
		return
	}

	following, err := h.Service.IsFollowing(c.Request.Context(), follower, c.Param("email"))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_following": following})
}
