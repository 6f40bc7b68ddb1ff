package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tarkov-squad-board/internal/domain"
	"tarkov-squad-board/internal/service"
)

// GroupHandler 封装了小队与成员管理相关的 HTTP 处理逻辑。
type GroupHandler struct {
	groupService *service.GroupService
}

// NewGroupHandler 创建 GroupHandler 实例。
func NewGroupHandler(groupService *service.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// CreateGroupRequest 定义创建小队的请求结构体。
type CreateGroupRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	CreatedBy   string  `json:"createdBy" binding:"required"`
}

// CreateGroup 处理创建小队的请求。
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.CreateGroup: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid group data")
		return
	}

	group := &domain.Group{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   req.CreatedBy,
	}
	created, err := h.groupService.CreateGroup(c.Request.Context(), group)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, created)
}

// ListGroups 处理查询全部小队的请求。
func (h *GroupHandler) ListGroups(c *gin.Context) {
	groups, err := h.groupService.ListGroups(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, groups)
}

// GetGroup 处理按 ID 查询小队的请求。
func (h *GroupHandler) GetGroup(c *gin.Context) {
	group, err := h.groupService.GetGroup(c.Request.Context(), c.Param("groupId"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, group)
}

// AddMemberRequest 定义添加成员的请求结构体。
// Level 缺省时由存储层取 1，IsOnline 缺省为 false。
type AddMemberRequest struct {
	Username string `json:"username" binding:"required"`
	Level    *int   `json:"level" binding:"omitempty,min=1"`
	IsOnline *bool  `json:"isOnline"`
}

// AddMember 处理向小队添加成员的请求。
func (h *GroupHandler) AddMember(c *gin.Context) {
	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.AddMember: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid member data")
		return
	}

	member := &domain.GroupMember{
		GroupID:  c.Param("groupId"),
		Username: req.Username,
	}
	if req.Level != nil {
		member.Level = *req.Level
	}
	if req.IsOnline != nil {
		member.IsOnline = *req.IsOnline
	}

	created, err := h.groupService.AddMember(c.Request.Context(), member)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, created)
}

// ListMembers 处理查询小队成员列表的请求。
func (h *GroupHandler) ListMembers(c *gin.Context) {
	members, err := h.groupService.ListMembers(c.Request.Context(), c.Param("groupId"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, members)
}

// GetMember 处理按 ID 查询成员的请求。
func (h *GroupHandler) GetMember(c *gin.Context) {
	member, err := h.groupService.GetMember(c.Request.Context(), c.Param("memberId"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, member)
}

// UpdateMemberRequest 定义更新成员的请求结构体。
// 所有字段可选，缺省字段保持原值 (浅合并)。
type UpdateMemberRequest struct {
	Username *string `json:"username" binding:"omitempty,min=1"`
	Level    *int    `json:"level" binding:"omitempty,min=1"`
	IsOnline *bool   `json:"isOnline"`
}

// UpdateMember 处理更新成员的请求。
func (h *GroupHandler) UpdateMember(c *gin.Context) {
	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.UpdateMember: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid member data")
		return
	}

	patch := domain.GroupMemberPatch{
		Username: req.Username,
		Level:    req.Level,
		IsOnline: req.IsOnline,
	}
	member, err := h.groupService.UpdateMember(c.Request.Context(), c.Param("memberId"), patch)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, member)
}

// RemoveMember 处理删除成员的请求。删除不存在的成员同样返回成功 (幂等)。
func (h *GroupHandler) RemoveMember(c *gin.Context) {
	if err := h.groupService.RemoveMember(c.Request.Context(), c.Param("memberId")); err != nil {
		mapServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"success": true})
}
