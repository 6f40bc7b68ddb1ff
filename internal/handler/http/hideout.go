package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tarkov-squad-board/internal/domain"
	"tarkov-squad-board/internal/service"
)

// HideoutHandler 封装了藏身处模块目录与建造进度相关的 HTTP 处理逻辑。
type HideoutHandler struct {
	hideoutService *service.HideoutService
}

// NewHideoutHandler 创建 HideoutHandler 实例。
func NewHideoutHandler(hideoutService *service.HideoutService) *HideoutHandler {
	return &HideoutHandler{hideoutService: hideoutService}
}

// CreateModuleRequest 定义录入藏身处模块目录的请求结构体。
type CreateModuleRequest struct {
	ID          string                `json:"id" binding:"required"`
	Name        string                `json:"name" binding:"required"`
	Description *string               `json:"description"`
	Levels      []domain.HideoutLevel `json:"levels"`
}

// CreateModule 处理录入藏身处模块的请求。
func (h *HideoutHandler) CreateModule(c *gin.Context) {
	var req CreateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.CreateModule: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid hideout module data")
		return
	}

	module := &domain.HideoutModule{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Levels:      req.Levels,
	}
	created, err := h.hideoutService.CreateModule(c.Request.Context(), module)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, created)
}

// ListModules 处理查询藏身处模块目录的请求。
func (h *HideoutHandler) ListModules(c *gin.Context) {
	modules, err := h.hideoutService.ListModules(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, modules)
}

// GetModule 处理按 ID 查询藏身处模块的请求。
func (h *HideoutHandler) GetModule(c *gin.Context) {
	module, err := h.hideoutService.GetModule(c.Request.Context(), c.Param("moduleId"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, module)
}

// TrackModuleRequest 定义成员开始跟踪模块建造的请求结构体。
type TrackModuleRequest struct {
	ModuleID     string `json:"moduleId" binding:"required"`
	CurrentLevel *int   `json:"currentLevel" binding:"omitempty,min=0"`
}

// TrackModule 处理成员开始跟踪模块建造的请求。
func (h *HideoutHandler) TrackModule(c *gin.Context) {
	var req TrackModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.TrackModule: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid player hideout data")
		return
	}

	ph := &domain.PlayerHideout{
		GroupMemberID: c.Param("memberId"),
		ModuleID:      req.ModuleID,
	}
	if req.CurrentLevel != nil {
		ph.CurrentLevel = *req.CurrentLevel
	}

	created, err := h.hideoutService.TrackModule(c.Request.Context(), ph)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, created)
}

// ListMemberHideout 处理查询成员建造进度的请求。
func (h *HideoutHandler) ListMemberHideout(c *gin.Context) {
	progress, err := h.hideoutService.ListMemberHideout(c.Request.Context(), c.Param("memberId"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, progress)
}

// UpdateProgressRequest 定义更新建造进度的请求结构体。
type UpdateProgressRequest struct {
	CurrentLevel        *int       `json:"currentLevel" binding:"omitempty,min=0"`
	IsConstructing      *bool      `json:"isConstructing"`
	ConstructionEndTime *time.Time `json:"constructionEndTime"`
}

// UpdateProgress 处理更新建造进度的请求。
func (h *HideoutHandler) UpdateProgress(c *gin.Context) {
	var req UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.UpdateProgress: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid player hideout data")
		return
	}

	patch := domain.PlayerHideoutPatch{
		CurrentLevel:        req.CurrentLevel,
		IsConstructing:      req.IsConstructing,
		ConstructionEndTime: req.ConstructionEndTime,
	}
	ph, err := h.hideoutService.UpdateProgress(c.Request.Context(), c.Param("playerHideoutId"), patch)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, ph)
}
