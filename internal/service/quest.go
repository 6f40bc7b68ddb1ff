package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"tarkov-squad-board/internal/domain"
	"tarkov-squad-board/internal/repository"
)

// QuestService 负责任务定义与玩家任务跟踪的业务逻辑。
type QuestService struct {
	questRepo repository.QuestRepository
}

// NewQuestService 创建 QuestService 实例。
func NewQuestService(questRepo repository.QuestRepository) *QuestService {
	if questRepo == nil {
		panic("QuestRepository cannot be nil for QuestService")
	}
	return &QuestService{questRepo: questRepo}
}

// CreateQuest 直接插入一条任务定义 (同步之外的手动录入路径)。
func (s *QuestService) CreateQuest(ctx context.Context, quest *domain.Quest) (*domain.Quest, error) {
	logCtx := logrus.WithFields(logrus.Fields{"quest_id": quest.ID, "name": quest.Name})

	if err := s.questRepo.CreateQuest(ctx, quest); err != nil {
		logCtx.WithError(err).Warn("Failed to create quest")
		return nil, mapRepoError(err, ErrQuestNotFound)
	}

	logCtx.Info("Quest created successfully")
	return quest, nil
}

// GetQuest 根据 ID 查找任务定义。
func (s *QuestService) GetQuest(ctx context.Context, id string) (*domain.Quest, error) {
	quest, err := s.questRepo.FindQuestByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, ErrQuestNotFound)
	}
	return quest, nil
}

// ListQuests 返回全部任务定义。
func (s *QuestService) ListQuests(ctx context.Context) ([]domain.Quest, error) {
	quests, err := s.questRepo.ListQuests(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to list quests")
		return nil, ErrInternalServer
	}
	return quests, nil
}

// TrackQuest 为某个成员开始跟踪一条任务。
func (s *QuestService) TrackQuest(ctx context.Context, pq *domain.PlayerQuest) (*domain.PlayerQuest, error) {
	logCtx := logrus.WithFields(logrus.Fields{
		"member_id": pq.GroupMemberID,
		"quest_id":  pq.QuestID,
	})

	if err := s.questRepo.CreatePlayerQuest(ctx, pq); err != nil {
		logCtx.WithError(err).Warn("Failed to track quest for member")
		return nil, mapRepoError(err, ErrRecordNotFound)
	}

	logCtx.WithField("player_quest_id", pq.ID).Info("Player quest tracked")
	return pq, nil
}

// ListMemberQuests 返回指定成员跟踪的全部任务。
func (s *QuestService) ListMemberQuests(ctx context.Context, memberID string) ([]domain.PlayerQuest, error) {
	quests, err := s.questRepo.ListPlayerQuestsByMember(ctx, memberID)
	if err != nil {
		logrus.WithError(err).WithField("member_id", memberID).Error("Failed to list player quests")
		return nil, ErrInternalServer
	}
	return quests, nil
}

// ListActiveGroupQuests 返回小队内全部处于 active 状态的玩家任务。
func (s *QuestService) ListActiveGroupQuests(ctx context.Context, groupID string) ([]domain.PlayerQuest, error) {
	quests, err := s.questRepo.ListActiveGroupQuests(ctx, groupID)
	if err != nil {
		logrus.WithError(err).WithField("group_id", groupID).Error("Failed to list active group quests")
		return nil, ErrInternalServer
	}
	return quests, nil
}

// UpdatePlayerQuest 对玩家任务做部分更新。
// 状态变为 complete 且调用方未显式提供完成时间时，补上当前时间。
func (s *QuestService) UpdatePlayerQuest(ctx context.Context, id string, patch domain.PlayerQuestPatch) (*domain.PlayerQuest, error) {
	if patch.Status != nil && *patch.Status == domain.QuestComplete && patch.CompletedAt == nil {
		now := time.Now()
		patch.CompletedAt = &now
	}

	pq, err := s.questRepo.UpdatePlayerQuest(ctx, id, patch)
	if err != nil {
		logrus.WithError(err).WithField("player_quest_id", id).Warn("Failed to update player quest")
		return nil, mapRepoError(err, ErrRecordNotFound)
	}

	logrus.WithFields(logrus.Fields{"player_quest_id": id, "status": pq.Status}).Debug("Player quest updated")
	return pq, nil
}
