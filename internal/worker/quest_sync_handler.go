package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"

	"tarkov-squad-board/internal/service"
	"tarkov-squad-board/internal/tasks"
)

// QuestSyncHandler 处理周期性的外部任务同步作业。
type QuestSyncHandler struct {
	syncService *service.SyncService
}

// NewQuestSyncHandler 创建 Handler 实例
func NewQuestSyncHandler(syncService *service.SyncService) *QuestSyncHandler {
	return &QuestSyncHandler{syncService: syncService}
}

// ProcessTask 实现 asynq.Handler 接口
func (h *QuestSyncHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	taskID := ""
	if rw := t.ResultWriter(); rw != nil {
		taskID = rw.TaskID()
	}
	currentRetry, _ := asynq.GetRetryCount(ctx)
	maxRetry, _ := asynq.GetMaxRetry(ctx)

	logCtx := logrus.WithFields(logrus.Fields{
		"task_id":   taskID,
		"task_type": t.Type(),
		"retry":     currentRetry,
		"max_retry": maxRetry,
	})
	logCtx.Info("Processing quest sync task...")

	var payload tasks.QuestSyncPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		logCtx.WithError(err).Error("Failed to unmarshal task payload")
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	inserted, err := h.syncService.SyncQuests(ctx)
	if err != nil {
		logCtx.WithError(err).Error("Quest sync task failed")
		return fmt.Errorf("quest sync: %w", err)
	}

	logCtx.WithFields(logrus.Fields{
		"trigger":  payload.Trigger,
		"inserted": inserted,
	}).Info("Quest sync task processed successfully")
	return nil
}
