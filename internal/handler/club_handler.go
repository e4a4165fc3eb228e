package handler

import (
	"net/http"
	"time"

	"bobcathub/internal/service"

	"github.com/gin-gonic/gin"
)

type ClubHandler struct {
	svc *service.ClubService
}

func NewClubHandler(svc *service.ClubService) *ClubHandler {
	return &ClubHandler{svc: svc}
}

type CreateEventReq struct {
	ClubID        uint64 `form:"club_id" json:"club_id"`
	Caption       string `form:"caption" json:"caption"`
	ImageFile     string `form:"image_file" json:"image_file"`
	IsEvent       bool   `form:"is_event" json:"is_event"`
	EventTitle    string `form:"event_title" json:"event_title"`
	EventDate     string `form:"event_date" json:"event_date"` // RFC 3339
	EventLocation string `form:"event_location" json:"event_location"`
}

func (h *ClubHandler) Dashboard(c *gin.Context) {
	view, err := h.svc.Dashboard(userIDFromCtx(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ClubHandler) CreateEvent(c *gin.Context) {
	var req CreateEventReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	in := service.CreatePostInput{
		ClubID:        req.ClubID,
		Caption:       req.Caption,
		ImageFile:     req.ImageFile,
		IsEvent:       req.IsEvent,
		EventTitle:    req.EventTitle,
		EventLocation: req.EventLocation,
	}
	if req.EventDate != "" {
		t, err := time.Parse(time.RFC3339, req.EventDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid event_date, want RFC 3339"})
			return
		}
		in.EventDate = &t
	}

	post, err := h.svc.CreatePost(userIDFromCtx(c), roleFromCtx(c), in)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":      "Event created successfully!",
		"id":       post.ID,
		"redirect": "/club/dashboard",
	})
}
