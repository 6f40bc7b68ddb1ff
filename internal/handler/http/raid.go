package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tarkov-squad-board/internal/domain"
	"tarkov-squad-board/internal/service"
)

// RaidHandler 封装了突袭排期与参与者管理相关的 HTTP 处理逻辑。
type RaidHandler struct {
	raidService *service.RaidService
}

// NewRaidHandler 创建 RaidHandler 实例。
func NewRaidHandler(raidService *service.RaidService) *RaidHandler {
	return &RaidHandler{raidService: raidService}
}

// ScheduleRaidRequest 定义排期突袭的请求结构体。
type ScheduleRaidRequest struct {
	Title         string                `json:"title" binding:"required"`
	Description   *string               `json:"description"`
	Map           string                `json:"map" binding:"required"`
	ScheduledFor  time.Time             `json:"scheduledFor" binding:"required"`
	Duration      int                   `json:"duration" binding:"omitempty,min=1"`
	MaxPlayers    int                   `json:"maxPlayers" binding:"omitempty,min=1"`
	Objectives    []string              `json:"objectives"`
	RequiredItems []domain.RequiredItem `json:"requiredItems"`
	Status        *string               `json:"status" binding:"omitempty,oneof=planned active completed cancelled"`
	CreatedBy     string                `json:"createdBy" binding:"required"`
}

// ScheduleRaid 处理排期突袭的请求。
func (h *RaidHandler) ScheduleRaid(c *gin.Context) {
	var req ScheduleRaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.ScheduleRaid: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid raid data")
		return
	}

	raid := &domain.Raid{
		GroupID:       c.Param("groupId"),
		Title:         req.Title,
		Description:   req.Description,
		Map:           req.Map,
		ScheduledFor:  req.ScheduledFor,
		Duration:      req.Duration,
		MaxPlayers:    req.MaxPlayers,
		Objectives:    req.Objectives,
		RequiredItems: req.RequiredItems,
		CreatedBy:     req.CreatedBy,
	}
	if req.Status != nil {
		raid.Status = domain.RaidStatus(*req.Status)
	}

	created, err := h.raidService.ScheduleRaid(c.Request.Context(), raid)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, created)
}

// ListGroupRaids 处理查询小队突袭列表的请求。
func (h *RaidHandler) ListGroupRaids(c *gin.Context) {
	raids, err := h.raidService.ListGroupRaids(c.Request.Context(), c.Param("groupId"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, raids)
}

// GetRaid 处理按 ID 查询突袭的请求。
func (h *RaidHandler) GetRaid(c *gin.Context) {
	raid, err := h.raidService.GetRaid(c.Request.Context(), c.Param("raidId"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, raid)
}

// UpdateRaidRequest 定义更新突袭的请求结构体。
type UpdateRaidRequest struct {
	Title         *string               `json:"title" binding:"omitempty,min=1"`
	Description   *string               `json:"description"`
	Map           *string               `json:"map" binding:"omitempty,min=1"`
	ScheduledFor  *time.Time            `json:"scheduledFor"`
	Duration      *int                  `json:"duration" binding:"omitempty,min=1"`
	MaxPlayers    *int                  `json:"maxPlayers" binding:"omitempty,min=1"`
	Objectives    []string              `json:"objectives"`
	RequiredItems []domain.RequiredItem `json:"requiredItems"`
	Status        *string               `json:"status" binding:"omitempty,oneof=planned active completed cancelled"`
}

// UpdateRaid 处理更新突袭的请求。
func (h *RaidHandler) UpdateRaid(c *gin.Context) {
	var req UpdateRaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.UpdateRaid: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid raid data")
		return
	}

	patch := domain.RaidPatch{
		Title:         req.Title,
		Description:   req.Description,
		Map:           req.Map,
		ScheduledFor:  req.ScheduledFor,
		Duration:      req.Duration,
		MaxPlayers:    req.MaxPlayers,
		Objectives:    req.Objectives,
		RequiredItems: req.RequiredItems,
	}
	if req.Status != nil {
		status := domain.RaidStatus(*req.Status)
		patch.Status = &status
	}

	raid, err := h.raidService.UpdateRaid(c.Request.Context(), c.Param("raidId"), patch)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, raid)
}

// JoinRaidRequest 定义成员报名突袭的请求结构体。
type JoinRaidRequest struct {
	GroupMemberID string  `json:"groupMemberId" binding:"required"`
	Status        *string `json:"status" binding:"omitempty,oneof=pending confirmed declined"`
}

// JoinRaid 处理成员报名突袭的请求。
func (h *RaidHandler) JoinRaid(c *gin.Context) {
	var req JoinRaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.JoinRaid: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid participant data")
		return
	}

	participant := &domain.RaidParticipant{
		RaidID:        c.Param("raidId"),
		GroupMemberID: req.GroupMemberID,
	}
	if req.Status != nil {
		participant.Status = domain.ParticipantStatus(*req.Status)
	}

	created, err := h.raidService.JoinRaid(c.Request.Context(), participant)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, created)
}

// ListParticipants 处理查询突袭参与者列表的请求。
func (h *RaidHandler) ListParticipants(c *gin.Context) {
	participants, err := h.raidService.ListParticipants(c.Request.Context(), c.Param("raidId"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, participants)
}

// RespondParticipantRequest 定义参与者回应报名状态的请求结构体。
type RespondParticipantRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed declined"`
}

// RespondParticipant 处理参与者确认或拒绝报名的请求。
func (h *RaidHandler) RespondParticipant(c *gin.Context) {
	var req RespondParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.RespondParticipant: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid participant data")
		return
	}

	status := domain.ParticipantStatus(req.Status)
	patch := domain.RaidParticipantPatch{Status: &status}

	participant, err := h.raidService.RespondParticipant(c.Request.Context(), c.Param("participantId"), patch)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, participant)
}
