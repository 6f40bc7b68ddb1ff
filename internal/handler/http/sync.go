package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tarkov-squad-board/internal/service"
)

// SyncHandler 封装了外部任务同步的 HTTP 处理逻辑。
type SyncHandler struct {
	syncService *service.SyncService
}

// NewSyncHandler 创建 SyncHandler 实例。
func NewSyncHandler(syncService *service.SyncService) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

// SyncQuests 触发一次外部任务同步，返回新插入的条数。
// 同步是幂等的：重复触发不会重复插入，也不会覆盖已有记录。
func (h *SyncHandler) SyncQuests(c *gin.Context) {
	inserted, err := h.syncService.SyncQuests(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, gin.H{
		"message": "Quests synced successfully",
		"count":   inserted,
	})
}
