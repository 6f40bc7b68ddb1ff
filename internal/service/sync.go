package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"tarkov-squad-board/internal/domain"
	"tarkov-squad-board/internal/infra/tarkov"
	"tarkov-squad-board/internal/repository"
)

// QuestFetcher 抽象外部任务源，便于在测试中替换真实客户端。
type QuestFetcher interface {
	Quests(ctx context.Context) ([]tarkov.Task, error)
}

// SyncService 把外部任务定义单向同步进本地存储。
// 同一外部数据跑两次，第二次不会插入任何记录 (幂等)；
// 拉取失败时整体失败，不提交任何部分结果。
type SyncService struct {
	questRepo repository.QuestRepository
	fetcher   QuestFetcher
}

// NewSyncService 创建 SyncService 实例。
func NewSyncService(questRepo repository.QuestRepository, fetcher QuestFetcher) *SyncService {
	if questRepo == nil {
		panic("QuestRepository cannot be nil for SyncService")
	}
	if fetcher == nil {
		panic("QuestFetcher cannot be nil for SyncService")
	}
	return &SyncService{questRepo: questRepo, fetcher: fetcher}
}

// SyncQuests 拉取全部外部任务并插入本地缺失的条目，返回新插入数量。
// 已存在的任务一律跳过，绝不覆盖本地记录。
func (s *SyncService) SyncQuests(ctx context.Context) (int, error) {
	tasks, err := s.fetcher.Quests(ctx)
	if err != nil {
		logrus.WithError(err).Error("Quest sync: failed to fetch external quests")
		return 0, fmt.Errorf("%w: %s", ErrSyncFailed, err)
	}
	logrus.WithField("fetched", len(tasks)).Debug("Quest sync: external quests fetched")

	inserted := 0
	for _, task := range tasks {
		exists, err := s.questRepo.QuestExists(ctx, task.ID)
		if err != nil {
			logrus.WithError(err).WithField("quest_id", task.ID).Error("Quest sync: existence check failed")
			return inserted, ErrInternalServer
		}
		if exists {
			continue
		}

		quest := projectTask(task)
		if err := s.questRepo.CreateQuest(ctx, &quest); err != nil {
			logrus.WithError(err).WithField("quest_id", task.ID).Error("Quest sync: failed to insert quest")
			return inserted, ErrInternalServer
		}
		inserted++
	}

	logrus.WithFields(logrus.Fields{"fetched": len(tasks), "inserted": inserted}).Info("Quest sync completed")
	return inserted, nil
}

// projectTask 把外部任务记录投影为本地 Quest。
// 外部查询未请求的字段 (description/map/objectives/rewards) 取空值，
// 前置任务列表固定映射为 type="task"、compareMethod="equals"、value=1。
func projectTask(task tarkov.Task) domain.Quest {
	trader := "Unknown"
	if task.Trader != nil && task.Trader.Name != "" {
		trader = task.Trader.Name
	}

	requirements := make([]domain.QuestRequirement, 0, len(task.TaskRequirements))
	for _, req := range task.TaskRequirements {
		target := ""
		if req.Task != nil {
			target = req.Task.ID
		}
		requirements = append(requirements, domain.QuestRequirement{
			Type:          "task",
			Target:        target,
			CompareMethod: "equals",
			Value:         1,
		})
	}

	description := ""
	return domain.Quest{
		ID:           task.ID,
		Name:         task.Name,
		Description:  &description,
		Trader:       trader,
		Map:          nil,
		Objectives:   []domain.QuestObjective{},
		Requirements: requirements,
		Rewards:      []domain.QuestReward{},
		WikiLink:     task.WikiLink,
	}
}
