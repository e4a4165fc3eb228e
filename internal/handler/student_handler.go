package handler

import (
	"net/http"
	"strconv"

	"bobcathub/internal/service"

	"github.com/gin-gonic/gin"
)

const studentDashboard = "/student/dashboard"

type StudentHandler struct {
	feeds        *service.FeedService
	interactions *service.InteractionService
}

func NewStudentHandler(feeds *service.FeedService, interactions *service.InteractionService) *StudentHandler {
	return &StudentHandler{feeds: feeds, interactions: interactions}
}

// Dashboard is the global feed: every post from verified clubs.
func (h *StudentHandler) Dashboard(c *gin.Context) {
	view, err := h.feeds.GlobalFeed(c.Request.Context(), userIDFromCtx(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Following is the subscribed feed: posts only from followed clubs.
func (h *StudentHandler) Following(c *gin.Context) {
	view, err := h.feeds.FollowingFeed(c.Request.Context(), userIDFromCtx(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// MyRSVPs is the personal schedule, ordered by event date.
func (h *StudentHandler) MyRSVPs(c *gin.Context) {
	view, err := h.feeds.MySchedule(c.Request.Context(), userIDFromCtx(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *StudentHandler) BrowseClubs(c *gin.Context) {
	clubs, err := h.feeds.BrowseClubs()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clubs": clubs})
}

func (h *StudentHandler) ClubDetail(c *gin.Context) {
	view, err := h.feeds.ClubDetail(c.Request.Context(), c.Param("slug"), userIDFromCtx(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *StudentHandler) MyClubs(c *gin.Context) {
	clubs, err := h.feeds.MyClubs(userIDFromCtx(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clubs": clubs})
}

func (h *StudentHandler) EventDetail(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || postID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid post id"})
		return
	}
	view, err := h.feeds.EventDetail(c.Request.Context(), postID, userIDFromCtx(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ToggleRSVP subscribes/unsubscribes the caller to an event post.
func (h *StudentHandler) ToggleRSVP(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid post id"})
		return
	}

	attending, msg, err := h.interactions.ToggleRSVP(c.Request.Context(), userIDFromCtx(c), postID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":       msg,
		"attending": attending,
		"redirect":  backTo(c, studentDashboard),
	})
}

// ToggleFollow follows/unfollows a club.
func (h *StudentHandler) ToggleFollow(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("club_id"), 10, 64)
	if err != nil || clubID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid club id"})
		return
	}

	following, msg, err := h.interactions.ToggleFollow(c.Request.Context(), userIDFromCtx(c), clubID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":       msg,
		"following": following,
		"redirect":  backTo(c, studentDashboard),
	})
}
