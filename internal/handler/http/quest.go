package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tarkov-squad-board/internal/domain"
	"tarkov-squad-board/internal/service"
)

// QuestHandler 封装了任务定义与玩家任务相关的 HTTP 处理逻辑。
type QuestHandler struct {
	questService *service.QuestService
}

// NewQuestHandler 创建 QuestHandler 实例。
func NewQuestHandler(questService *service.QuestService) *QuestHandler {
	return &QuestHandler{questService: questService}
}

// CreateQuestRequest 定义手动录入任务定义的请求结构体。
// ID 必须由调用方提供 (外部标识)。
type CreateQuestRequest struct {
	ID           string                    `json:"id" binding:"required"`
	Name         string                    `json:"name" binding:"required"`
	Description  *string                   `json:"description"`
	Trader       string                    `json:"trader" binding:"required"`
	Map          *string                   `json:"map"`
	Objectives   []domain.QuestObjective   `json:"objectives"`
	Requirements []domain.QuestRequirement `json:"requirements"`
	Rewards      []domain.QuestReward      `json:"rewards"`
	WikiLink     *string                   `json:"wikiLink"`
}

// CreateQuest 处理手动录入任务定义的请求。
func (h *QuestHandler) CreateQuest(c *gin.Context) {
	var req CreateQuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.CreateQuest: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid quest data")
		return
	}

	quest := &domain.Quest{
		ID:           req.ID,
		Name:         req.Name,
		Description:  req.Description,
		Trader:       req.Trader,
		Map:          req.Map,
		Objectives:   req.Objectives,
		Requirements: req.Requirements,
		Rewards:      req.Rewards,
		WikiLink:     req.WikiLink,
	}
	created, err := h.questService.CreateQuest(c.Request.Context(), quest)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, created)
}

// ListQuests 处理查询全部任务定义的请求。
func (h *QuestHandler) ListQuests(c *gin.Context) {
	quests, err := h.questService.ListQuests(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, quests)
}

// GetQuest 处理按 ID 查询任务定义的请求。
func (h *QuestHandler) GetQuest(c *gin.Context) {
	quest, err := h.questService.GetQuest(c.Request.Context(), c.Param("questId"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, quest)
}

// TrackQuestRequest 定义成员开始跟踪任务的请求结构体。
type TrackQuestRequest struct {
	QuestID  string                 `json:"questId" binding:"required"`
	Status   *string                `json:"status" binding:"omitempty,oneof=available active complete failed"`
	Progress []domain.QuestProgress `json:"progress"`
}

// TrackQuest 处理成员开始跟踪任务的请求。
func (h *QuestHandler) TrackQuest(c *gin.Context) {
	var req TrackQuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.TrackQuest: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid player quest data")
		return
	}

	pq := &domain.PlayerQuest{
		GroupMemberID: c.Param("memberId"),
		QuestID:       req.QuestID,
		Progress:      req.Progress,
	}
	if req.Status != nil {
		pq.Status = domain.PlayerQuestStatus(*req.Status)
	}

	created, err := h.questService.TrackQuest(c.Request.Context(), pq)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, created)
}

// ListMemberQuests 处理查询成员全部玩家任务的请求。
func (h *QuestHandler) ListMemberQuests(c *gin.Context) {
	quests, err := h.questService.ListMemberQuests(c.Request.Context(), c.Param("memberId"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, quests)
}

// ListActiveGroupQuests 处理查询小队 active 玩家任务的请求 (两跳联查)。
func (h *QuestHandler) ListActiveGroupQuests(c *gin.Context) {
	quests, err := h.questService.ListActiveGroupQuests(c.Request.Context(), c.Param("groupId"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, quests)
}

// UpdatePlayerQuestRequest 定义更新玩家任务的请求结构体。
type UpdatePlayerQuestRequest struct {
	Status      *string                `json:"status" binding:"omitempty,oneof=available active complete failed"`
	Progress    []domain.QuestProgress `json:"progress"`
	CompletedAt *time.Time             `json:"completedAt"`
}

// UpdatePlayerQuest 处理更新玩家任务的请求。
func (h *QuestHandler) UpdatePlayerQuest(c *gin.Context) {
	var req UpdatePlayerQuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.UpdatePlayerQuest: Invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid player quest data")
		return
	}

	patch := domain.PlayerQuestPatch{
		Progress:    req.Progress,
		CompletedAt: req.CompletedAt,
	}
	if req.Status != nil {
		status := domain.PlayerQuestStatus(*req.Status)
		patch.Status = &status
	}

	pq, err := h.questService.UpdatePlayerQuest(c.Request.Context(), c.Param("playerQuestId"), patch)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, pq)
}
