package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tarkov-squad-board/internal/domain"
)

// QuestRepository 是 repository.QuestRepository 的 Mock 实现。
type QuestRepository struct {
	mock.Mock
}

func (m *QuestRepository) CreateQuest(ctx context.Context, quest *domain.Quest) error {
	ret := m.Called(ctx, quest)
	return ret.Error(0)
}

func (m *QuestRepository) FindQuestByID(ctx context.Context, id string) (*domain.Quest, error) {
	ret := m.Called(ctx, id)
	var r0 *domain.Quest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Quest)
	}
	return r0, ret.Error(1)
}

func (m *QuestRepository) QuestExists(ctx context.Context, id string) (bool, error) {
	ret := m.Called(ctx, id)
	return ret.Bool(0), ret.Error(1)
}

func (m *QuestRepository) ListQuests(ctx context.Context) ([]domain.Quest, error) {
	ret := m.Called(ctx)
	var r0 []domain.Quest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Quest)
	}
	return r0, ret.Error(1)
}

func (m *QuestRepository) CreatePlayerQuest(ctx context.Context, pq *domain.PlayerQuest) error {
	ret := m.Called(ctx, pq)
	return ret.Error(0)
}

func (m *QuestRepository) FindPlayerQuestByID(ctx context.Context, id string) (*domain.PlayerQuest, error) {
	ret := m.Called(ctx, id)
	var r0 *domain.PlayerQuest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.PlayerQuest)
	}
	return r0, ret.Error(1)
}

func (m *QuestRepository) ListPlayerQuestsByMember(ctx context.Context, memberID string) ([]domain.PlayerQuest, error) {
	ret := m.Called(ctx, memberID)
	var r0 []domain.PlayerQuest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.PlayerQuest)
	}
	return r0, ret.Error(1)
}

func (m *QuestRepository) ListActiveGroupQuests(ctx context.Context, groupID string) ([]domain.PlayerQuest, error) {
	ret := m.Called(ctx, groupID)
	var r0 []domain.PlayerQuest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.PlayerQuest)
	}
	return r0, ret.Error(1)
}

func (m *QuestRepository) UpdatePlayerQuest(ctx context.Context, id string, patch domain.PlayerQuestPatch) (*domain.PlayerQuest, error) {
	ret := m.Called(ctx, id, patch)
	var r0 *domain.PlayerQuest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.PlayerQuest)
	}
	return r0, ret.Error(1)
}
