package memory

import (
	"context"

	"tarkov-squad-board/internal/domain"
	"tarkov-squad-board/internal/repository"
)

// CreateModule 实现 repository.HideoutRepository。
func (s *Store) CreateModule(ctx context.Context, module *domain.HideoutModule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if module.ID == "" {
		module.ID = newID()
	} else if _, ok := s.modules.get(module.ID); ok {
		return repository.ErrDuplicateEntry
	}

	stored := *module
	s.modules.insert(stored.ID, &stored)
	return nil
}

// FindModuleByID 实现 repository.HideoutRepository。
func (s *Store) FindModuleByID(ctx context.Context, id string) (*domain.HideoutModule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	module, ok := s.modules.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	result := *module
	return &result, nil
}

// ListModules 实现 repository.HideoutRepository。
func (s *Store) ListModules(ctx context.Context) ([]domain.HideoutModule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.modules.list(nil), nil
}

// CreatePlayerHideout 实现 repository.HideoutRepository。
func (s *Store) CreatePlayerHideout(ctx context.Context, ph *domain.PlayerHideout) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members.get(ph.GroupMemberID); !ok {
		return repository.ErrInvalidReference
	}
	if _, ok := s.modules.get(ph.ModuleID); !ok {
		return repository.ErrInvalidReference
	}

	if ph.ID == "" {
		ph.ID = newID()
	} else if _, ok := s.playerHideout.get(ph.ID); ok {
		return repository.ErrDuplicateEntry
	}
	if ph.CurrentLevel < 0 {
		ph.CurrentLevel = 0
	}
	// 建造完成时间由开始建造的流程填充
	ph.ConstructionEndTime = nil

	stored := *ph
	s.playerHideout.insert(stored.ID, &stored)
	return nil
}

// FindPlayerHideoutByID 实现 repository.HideoutRepository。
func (s *Store) FindPlayerHideoutByID(ctx context.Context, id string) (*domain.PlayerHideout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ph, ok := s.playerHideout.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	result := *ph
	return &result, nil
}

// ListPlayerHideoutByMember 实现 repository.HideoutRepository。
func (s *Store) ListPlayerHideoutByMember(ctx context.Context, memberID string) ([]domain.PlayerHideout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.playerHideout.list(func(ph *domain.PlayerHideout) bool {
		return ph.GroupMemberID == memberID
	}), nil
}

// UpdatePlayerHideout 实现 repository.HideoutRepository。
func (s *Store) UpdatePlayerHideout(ctx context.Context, id string, patch domain.PlayerHideoutPatch) (*domain.PlayerHideout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ph, ok := s.playerHideout.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	merged := *ph
	patch.ApplyTo(&merged)
	s.playerHideout.insert(id, &merged)

	result := merged
	return &result, nil
}
