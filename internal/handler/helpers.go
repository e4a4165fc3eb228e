package handler

import (
	"errors"
	"net/http"

	"bobcathub/internal/middleware"
	"bobcathub/internal/model"
	"bobcathub/internal/service"

	"github.com/gin-gonic/gin"
)

func userIDFromCtx(c *gin.Context) uint64 {
	if v, ok := c.Get(middleware.ContextUserIDKey); ok {
		if id, ok2 := v.(uint64); ok2 {
			return id
		}
	}
	return 0
}

func roleFromCtx(c *gin.Context) model.Role {
	if v, ok := c.Get(middleware.ContextRoleKey); ok {
		if role, ok2 := v.(model.Role); ok2 {
			return role
		}
	}
	return ""
}

// backTo resolves the post-action redirect: the referring page when the
// browser sent one, the fallback dashboard otherwise.
func backTo(c *gin.Context, fallback string) string {
	if ref := c.Request.Referer(); ref != "" {
		return ref
	}
	return fallback
}

// fail maps service errors onto the response taxonomy: missing rows are
// 404s, known validation notices are shown to the user, anything else is an
// internal failure whose detail stays out of the response.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "not found"})
	case errors.Is(err, service.ErrNotEvent),
		errors.Is(err, service.ErrNoClub),
		errors.Is(err, service.ErrMissingEventFields):
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "internal error"})
	}
}
