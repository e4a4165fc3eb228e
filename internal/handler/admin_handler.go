package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"bobcathub/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc *service.AdminService
}

func NewAdminHandler(svc *service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	view, err := h.svc.Dashboard()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *AdminHandler) VerifyClub(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || clubID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid club id"})
		return
	}

	club, err := h.svc.VerifyClub(c.Request.Context(), userIDFromCtx(c), clubID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":      fmt.Sprintf("%s has been verified!", club.Name),
		"redirect": "/admin/dashboard",
	})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid user id"})
		return
	}

	if err := h.svc.DeleteUser(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "user deleted"})
}

func (h *AdminHandler) DeleteClub(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid club id"})
		return
	}

	if err := h.svc.DeleteClub(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "club deleted"})
}
