package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Deshan005/AdvancedServerSideCW2/domain"
	"github.com/Deshan005/AdvancedServerSideCW2/internal/rest/request"
	"github.com/Deshan005/AdvancedServerSideCW2/internal/rest/response"
)

type userHandler struct {
	Service domain.UserUsecase
}

func NewUserHandler(svc domain.UserUsecase) *userHandler {
	return &userHandler{
		Service: svc,
	}
}

// Register creates the account; the password is hashed in the service layer
func (h *userHandler) Register(c *gin.Context) {
	var req request.Register
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.Register(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Registered successfully"})
}

// Login answers with a bearer token on valid credentials
func (h *userHandler) Login(c *gin.Context) {
	var req request.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.Service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// a wrong password answers 401, not the generic 400 mapping
		if err == domain.ErrBadParamInput {
			c.JSON(http.StatusUnauthorized, ResponseError{Message: "invalid credentials"})
			return
		}
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetProfile returns the public profile of a user
func (h *userHandler) GetProfile(c *gin.Context) {
	u, err := h.Service.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewUserFromDomain(&u))
}
