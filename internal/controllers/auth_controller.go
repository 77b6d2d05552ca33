package controllers

import (
	"net/http"

	"github.com/rdSoftInc/DevConnect/internal/middlewares"
	"github.com/rdSoftInc/DevConnect/internal/services"

	"github.com/gin-gonic/gin"
)

// AuthController login and current-user endpoints
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates an AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// LoginRequest login body
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

var loginMessages = fieldMessages{
	"email":    "Please include a valid email",
	"password": "Password is required",
}

// Login exchanges credentials for a token
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if !bindJSON(ctx, &req, loginMessages) {
		return
	}

	token, err := c.authService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": token})
}

// GetMe returns the authenticated user without the password hash
func (c *AuthController) GetMe(ctx *gin.Context) {
	user, err := c.authService.CurrentUser(ctx.Request.Context(), middlewares.UserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}
