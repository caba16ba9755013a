package handlers

import (
	"errors"
	"net/http"
	"strconv"

	contentRepo "tripnest/database/repository/content"
	"tripnest/middleware"
	"tripnest/services/content"
	"tripnest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContentHandler exposes trip rooms and travel stories.
type ContentHandler struct {
	ContentService content.ContentService
}

// CreateRoomHandler handles POST /api/trip-rooms.
func (h *ContentHandler) CreateRoomHandler(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing authenticated user")
		return
	}

	var req content.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid trip room request: "+err.Error())
		return
	}

	room, err := h.ContentService.CreateRoom(userID.(string), req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, room)
}

// GetRoomHandler handles GET /api/trip-rooms/:id.
func (h *ContentHandler) GetRoomHandler(c *gin.Context) {
	room, err := h.ContentService.GetRoom(c.Param("id"))
	if err != nil {
		if errors.Is(err, contentRepo.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.GetLogger().Error("Failed to fetch trip room",
			zap.String("roomId", c.Param("id")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch trip room")
		return
	}
	c.JSON(http.StatusOK, room)
}

// ListOpenRoomsHandler handles GET /api/trip-rooms. The listing is served
// from the Redis feed cache when warm.
func (h *ContentHandler) ListOpenRoomsHandler(c *gin.Context) {
	rooms, err := h.ContentService.ListOpenRooms()
	if err != nil {
		utils.GetLogger().Error("Failed to list trip rooms", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list trip rooms")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// JoinRoomHandler handles POST /api/trip-rooms/:id/join.
func (h *ContentHandler) JoinRoomHandler(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing authenticated user")
		return
	}

	room, err := h.ContentService.JoinRoom(c.Param("id"), userID.(string))
	if err != nil {
		switch {
		case errors.Is(err, contentRepo.ErrRoomNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, contentRepo.ErrRoomFull), errors.Is(err, contentRepo.ErrAlreadyMember):
			utils.JSONError(c, http.StatusConflict, err.Error())
		default:
			utils.GetLogger().Error("Failed to join trip room",
				zap.String("roomId", c.Param("id")), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to join trip room")
		}
		return
	}
	c.JSON(http.StatusOK, room)
}

// CreateStoryHandler handles POST /api/stories.
func (h *ContentHandler) CreateStoryHandler(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing authenticated user")
		return
	}

	var req content.CreateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid story request: "+err.Error())
		return
	}

	story, err := h.ContentService.CreateStory(userID.(string), req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, story)
}

// ListStoriesHandler handles GET /api/stories?limit=N.
func (h *ContentHandler) ListStoriesHandler(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	if err != nil || limit <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid limit parameter")
		return
	}

	stories, err := h.ContentService.ListStories(limit)
	if err != nil {
		utils.GetLogger().Error("Failed to list stories", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list stories")
		return
	}
	c.JSON(http.StatusOK, stories)
}

// LikeStoryHandler handles POST /api/stories/:id/like.
func (h *ContentHandler) LikeStoryHandler(c *gin.Context) {
	story, err := h.ContentService.LikeStory(c.Param("id"))
	if err != nil {
		if errors.Is(err, contentRepo.ErrStoryNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.GetLogger().Error("Failed to like story",
			zap.String("storyId", c.Param("id")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to like story")
		return
	}
	c.JSON(http.StatusOK, story)
}
