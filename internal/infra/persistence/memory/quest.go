package memory

import (
	"context"

	"tarkov-squad-board/internal/domain"
	"tarkov-squad-board/internal/repository"
)

// CreateQuest 实现 repository.QuestRepository。
// 任务定义绝不覆盖：调用方提供的 ID 已存在时返回 ErrDuplicateEntry。
func (s *Store) CreateQuest(ctx context.Context, quest *domain.Quest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quest.ID == "" {
		quest.ID = newID()
	} else if _, ok := s.quests.get(quest.ID); ok {
		return repository.ErrDuplicateEntry
	}

	stored := *quest
	s.quests.insert(stored.ID, &stored)
	return nil
}

// FindQuestByID 实现 repository.QuestRepository。
func (s *Store) FindQuestByID(ctx context.Context, id string) (*domain.Quest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quest, ok := s.quests.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	result := *quest
	return &result, nil
}

// QuestExists 实现 repository.QuestRepository。
func (s *Store) QuestExists(ctx context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.quests.get(id)
	return ok, nil
}

// ListQuests 实现 repository.QuestRepository。
func (s *Store) ListQuests(ctx context.Context) ([]domain.Quest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.quests.list(nil), nil
}

// CreatePlayerQuest 实现 repository.QuestRepository。
func (s *Store) CreatePlayerQuest(ctx context.Context, pq *domain.PlayerQuest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members.get(pq.GroupMemberID); !ok {
		return repository.ErrInvalidReference
	}
	if _, ok := s.quests.get(pq.QuestID); !ok {
		return repository.ErrInvalidReference
	}

	if pq.ID == "" {
		pq.ID = newID()
	} else if _, ok := s.playerQuests.get(pq.ID); ok {
		return repository.ErrDuplicateEntry
	}
	if pq.Status == "" {
		pq.Status = domain.QuestAvailable
	}
	if !pq.Status.Valid() {
		return repository.ErrInvalidStatus
	}
	// 创建时完成时间恒为空，完成时由服务层填充
	pq.CompletedAt = nil

	stored := *pq
	s.playerQuests.insert(stored.ID, &stored)
	return nil
}

// FindPlayerQuestByID 实现 repository.QuestRepository。
func (s *Store) FindPlayerQuestByID(ctx context.Context, id string) (*domain.PlayerQuest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pq, ok := s.playerQuests.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	result := *pq
	return &result, nil
}

// ListPlayerQuestsByMember 实现 repository.QuestRepository。
func (s *Store) ListPlayerQuestsByMember(ctx context.Context, memberID string) ([]domain.PlayerQuest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.playerQuests.list(func(pq *domain.PlayerQuest) bool {
		return pq.GroupMemberID == memberID
	}), nil
}

// ListActiveGroupQuests 实现 repository.QuestRepository。
// 两跳联查：先解析小队成员集合，再过滤玩家任务。
func (s *Store) ListActiveGroupQuests(ctx context.Context, groupID string) ([]domain.PlayerQuest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	memberIDs := make(map[string]struct{})
	for _, m := range s.members.list(func(m *domain.GroupMember) bool {
		return m.GroupID == groupID
	}) {
		memberIDs[m.ID] = struct{}{}
	}

	return s.playerQuests.list(func(pq *domain.PlayerQuest) bool {
		_, isMember := memberIDs[pq.GroupMemberID]
		return isMember && pq.Status == domain.QuestActive
	}), nil
}

// UpdatePlayerQuest 实现 repository.QuestRepository。
func (s *Store) UpdatePlayerQuest(ctx context.Context, id string, patch domain.PlayerQuestPatch) (*domain.PlayerQuest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pq, ok := s.playerQuests.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, repository.ErrInvalidStatus
	}
	merged := *pq
	patch.ApplyTo(&merged)
	s.playerQuests.insert(id, &merged)

	result := merged
	return &result, nil
}
