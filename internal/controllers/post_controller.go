package controllers

import (
	"net/http"

	"github.com/rdSoftInc/DevConnect/internal/middlewares"
	"github.com/rdSoftInc/DevConnect/internal/services"

	"github.com/gin-gonic/gin"
)

// PostController post, like and comment endpoints
type PostController struct {
	postService services.PostService
}

// NewPostController creates a PostController
func NewPostController(postService services.PostService) *PostController {
	return &PostController{
		postService: postService,
	}
}

// TextRequest body shared by posts and comments
type TextRequest struct {
	Text string `json:"text" binding:"required"`
}

var textMessages = fieldMessages{
	"text": "Text is required",
}

// Create publishes a post
func (c *PostController) Create(ctx *gin.Context) {
	var req TextRequest
	if !bindJSON(ctx, &req, textMessages) {
		return
	}

	post, err := c.postService.Create(ctx.Request.Context(), middlewares.UserID(ctx), req.Text)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, post)
}

// List returns all posts, newest first
func (c *PostController) List(ctx *gin.Context) {
	posts, err := c.postService.List(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, posts)
}

// GetByID returns one post
func (c *PostController) GetByID(ctx *gin.Context) {
	post, err := c.postService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, post)
}

// Delete removes a post authored by the caller
func (c *PostController) Delete(ctx *gin.Context) {
	if err := c.postService.Delete(ctx.Request.Context(), middlewares.UserID(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	respondMessage(ctx, "Post removed")
}

// Like records the caller's like
func (c *PostController) Like(ctx *gin.Context) {
	likes, err := c.postService.Like(ctx.Request.Context(), middlewares.UserID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, likes)
}

// Unlike withdraws the caller's like
func (c *PostController) Unlike(ctx *gin.Context) {
	likes, err := c.postService.Unlike(ctx.Request.Context(), middlewares.UserID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, likes)
}

// AddComment comments on a post
func (c *PostController) AddComment(ctx *gin.Context) {
	var req TextRequest
	if !bindJSON(ctx, &req, textMessages) {
		return
	}

	comments, err := c.postService.AddComment(ctx.Request.Context(), middlewares.UserID(ctx), ctx.Param("id"), req.Text)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, comments)
}

// RemoveComment deletes one of the caller's comments
func (c *PostController) RemoveComment(ctx *gin.Context) {
	comments, err := c.postService.RemoveComment(ctx.Request.Context(), middlewares.UserID(ctx), ctx.Param("id"), ctx.Param("comment_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, comments)
}
