package memory

import (
	"context"
	"time"

	"tarkov-squad-board/internal/domain"
	"tarkov-squad-board/internal/repository"
)

// CreateGroup 实现 repository.GroupRepository。
func (s *Store) CreateGroup(ctx context.Context, group *domain.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if group.ID == "" {
		group.ID = newID()
	} else if _, ok := s.groups.get(group.ID); ok {
		return repository.ErrDuplicateEntry
	}
	group.CreatedAt = time.Now()

	stored := *group
	s.groups.insert(stored.ID, &stored)
	return nil
}

// FindGroupByID 实现 repository.GroupRepository。
func (s *Store) FindGroupByID(ctx context.Context, id string) (*domain.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	group, ok := s.groups.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	result := *group
	return &result, nil
}

// ListGroups 实现 repository.GroupRepository。
func (s *Store) ListGroups(ctx context.Context) ([]domain.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.groups.list(nil), nil
}

// CreateMember 实现 repository.GroupRepository。
// 外键校验和成员数上限检查与插入在同一临界区内完成，
// 并发加人不会越过 domain.MaxGroupMembers。
func (s *Store) CreateMember(ctx context.Context, member *domain.GroupMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups.get(member.GroupID); !ok {
		return repository.ErrInvalidReference
	}
	current := s.members.list(func(m *domain.GroupMember) bool {
		return m.GroupID == member.GroupID
	})
	if len(current) >= domain.MaxGroupMembers {
		return repository.ErrGroupFull
	}

	if member.ID == "" {
		member.ID = newID()
	} else if _, ok := s.members.get(member.ID); ok {
		return repository.ErrDuplicateEntry
	}
	if member.Level <= 0 {
		member.Level = 1
	}
	member.LastSeen = time.Now()

	stored := *member
	s.members.insert(stored.ID, &stored)
	return nil
}

// FindMemberByID 实现 repository.GroupRepository。
func (s *Store) FindMemberByID(ctx context.Context, id string) (*domain.GroupMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	member, ok := s.members.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	result := *member
	return &result, nil
}

// ListMembersByGroup 实现 repository.GroupRepository。
func (s *Store) ListMembersByGroup(ctx context.Context, groupID string) ([]domain.GroupMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.members.list(func(m *domain.GroupMember) bool {
		return m.GroupID == groupID
	}), nil
}

// UpdateMember 实现 repository.GroupRepository。
func (s *Store) UpdateMember(ctx context.Context, id string, patch domain.GroupMemberPatch) (*domain.GroupMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	member, ok := s.members.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	merged := *member
	patch.ApplyTo(&merged)
	s.members.insert(id, &merged)

	result := merged
	return &result, nil
}

// DeleteMember 实现 repository.GroupRepository。幂等：ID 不存在时为空操作。
func (s *Store) DeleteMember(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.members.remove(id)
	return nil
}
