package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"ankiplan-backend/internal/group/usecase"

	"github.com/gin-gonic/gin"
)

// GroupHandler handles group and leaderboard HTTP requests
type GroupHandler struct {
	groupUsecase usecase.GroupUsecase
}

// NewGroupHandler creates a new GroupHandler
func NewGroupHandler(groupUsecase usecase.GroupUsecase) *GroupHandler {
	return &GroupHandler{groupUsecase: groupUsecase}
}

// CreateGroupRequest represents the request body for creating a group
type CreateGroupRequest struct {
	Name       string `json:"name" binding:"required"`
	PoolAmount int    `json:"pool_amount"`
}

// CreateGroup creates a group with the caller as admin and first member
// POST /api/groups
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.groupUsecase.CreateGroup(userID, req.Name, req.PoolAmount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, group)
}

// JoinGroup adds the caller to a group
// POST /api/groups/:id/join
func (h *GroupHandler) JoinGroup(c *gin.Context) {
	userID := c.GetString("userID")
	groupID := c.Param("id")

	group, err := h.groupUsecase.JoinGroup(groupID, userID)
	if err != nil {
		respondGroupError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// GetGroup returns group details
// GET /api/groups/:id
func (h *GroupHandler) GetGroup(c *gin.Context) {
	group, err := h.groupUsecase.GetGroup(c.Param("id"))
	if err != nil {
		respondGroupError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// MyGroups lists groups the caller belongs to
// GET /api/groups
func (h *GroupHandler) MyGroups(c *gin.Context) {
	groups, err := h.groupUsecase.MyGroups(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// GroupLeaderboard ranks a group's members by points
// GET /api/leaderboard/group/:id
func (h *GroupHandler) GroupLeaderboard(c *gin.Context) {
	userID := c.GetString("userID")
	groupID := c.Param("id")

	rankings, err := h.groupUsecase.GroupLeaderboard(groupID, userID)
	if err != nil {
		respondGroupError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"group_id": groupID, "rankings": rankings})
}

// AllTimeLeaderboard ranks all users by points
// GET /api/leaderboard/all-time?limit=100
func (h *GroupHandler) AllTimeLeaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	rankings, err := h.groupUsecase.AllTimeLeaderboard(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rankings": rankings})
}

func respondGroupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrGroupNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrAlreadyMember), errors.Is(err, usecase.ErrNotGroupMember):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
