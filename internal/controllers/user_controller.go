package controllers

import (
	"net/http"

	"github.com/rdSoftInc/DevConnect/internal/services"

	"github.com/gin-gonic/gin"
)

// UserController account registration
type UserController struct {
	authService services.AuthService
}

// NewUserController creates a UserController
func NewUserController(authService services.AuthService) *UserController {
	return &UserController{
		authService: authService,
	}
}

// RegisterRequest registration body
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

var registerMessages = fieldMessages{
	"name":     "Name is required",
	"email":    "Please include a valid email",
	"password": "Please enter a password with 6 or more characters",
}

// Register creates an account and returns its token
func (c *UserController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if !bindJSON(ctx, &req, registerMessages) {
		return
	}

	token, err := c.authService.Register(ctx.Request.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": token})
}
