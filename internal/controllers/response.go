package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/rdSoftInc/DevConnect/internal/repository"
	"github.com/rdSoftInc/DevConnect/internal/services"

	"github.com/gin-gonic/gin"
)

// errorStatus maps a service error onto an HTTP status.
func errorStatus(err error) int {
	// a malformed id and a missing profile answer 400 on every route
	if errors.Is(err, repository.ErrInvalidID) || errors.Is(err, services.ErrProfileNotFound) {
		return http.StatusBadRequest
	}

	switch services.KindOf(err) {
	case services.KindValidation, services.KindConflict:
		return http.StatusBadRequest
	case services.KindUnauthenticated, services.KindForbidden:
		return http.StatusUnauthorized
	case services.KindNotFound, services.KindUpstream:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err in the {"errors": [...]} envelope.
func respondError(ctx *gin.Context, err error) {
	status := errorStatus(err)

	var svcErr *services.Error
	if errors.As(err, &svcErr) && status != http.StatusInternalServerError {
		if len(svcErr.Fields) > 0 {
			ctx.JSON(status, gin.H{"errors": svcErr.Fields})
			return
		}
		ctx.JSON(status, gin.H{"errors": []services.FieldError{{Msg: svcErr.Msg}}})
		return
	}

	log.Printf("%s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
	ctx.JSON(http.StatusInternalServerError, gin.H{
		"errors": []services.FieldError{{Msg: "Server error: " + err.Error()}},
	})
}

func respondMessage(ctx *gin.Context, msg string) {
	ctx.JSON(http.StatusOK, gin.H{"msg": msg})
}
