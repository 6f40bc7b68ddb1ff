package memory

import (
	"context"
	"time"

	"tarkov-squad-board/internal/domain"
	"tarkov-squad-board/internal/repository"
)

// CreateRaid 实现 repository.RaidRepository。
func (s *Store) CreateRaid(ctx context.Context, raid *domain.Raid) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups.get(raid.GroupID); !ok {
		return repository.ErrInvalidReference
	}

	if raid.ID == "" {
		raid.ID = newID()
	} else if _, ok := s.raids.get(raid.ID); ok {
		return repository.ErrDuplicateEntry
	}
	if raid.Status == "" {
		raid.Status = domain.RaidPlanned
	}
	if !raid.Status.Valid() {
		return repository.ErrInvalidStatus
	}
	if raid.MaxPlayers <= 0 {
		raid.MaxPlayers = domain.MaxGroupMembers
	}
	raid.CreatedAt = time.Now()

	stored := *raid
	s.raids.insert(stored.ID, &stored)
	return nil
}

// FindRaidByID 实现 repository.RaidRepository。
func (s *Store) FindRaidByID(ctx context.Context, id string) (*domain.Raid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raid, ok := s.raids.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	result := *raid
	return &result, nil
}

// ListRaidsByGroup 实现 repository.RaidRepository。
func (s *Store) ListRaidsByGroup(ctx context.Context, groupID string) ([]domain.Raid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.raids.list(func(r *domain.Raid) bool {
		return r.GroupID == groupID
	}), nil
}

// UpdateRaid 实现 repository.RaidRepository。
func (s *Store) UpdateRaid(ctx context.Context, id string, patch domain.RaidPatch) (*domain.Raid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raid, ok := s.raids.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, repository.ErrInvalidStatus
	}
	merged := *raid
	patch.ApplyTo(&merged)
	s.raids.insert(id, &merged)

	result := merged
	return &result, nil
}

// CreateParticipant 实现 repository.RaidRepository。
func (s *Store) CreateParticipant(ctx context.Context, participant *domain.RaidParticipant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.raids.get(participant.RaidID); !ok {
		return repository.ErrInvalidReference
	}
	if _, ok := s.members.get(participant.GroupMemberID); !ok {
		return repository.ErrInvalidReference
	}

	if participant.ID == "" {
		participant.ID = newID()
	} else if _, ok := s.participants.get(participant.ID); ok {
		return repository.ErrDuplicateEntry
	}
	if participant.Status == "" {
		participant.Status = domain.ParticipantPending
	}
	if !participant.Status.Valid() {
		return repository.ErrInvalidStatus
	}
	participant.JoinedAt = time.Now()

	stored := *participant
	s.participants.insert(stored.ID, &stored)
	return nil
}

// ListParticipantsByRaid 实现 repository.RaidRepository。
func (s *Store) ListParticipantsByRaid(ctx context.Context, raidID string) ([]domain.RaidParticipant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.participants.list(func(p *domain.RaidParticipant) bool {
		return p.RaidID == raidID
	}), nil
}

// UpdateParticipant 实现 repository.RaidRepository。
func (s *Store) UpdateParticipant(ctx context.Context, id string, patch domain.RaidParticipantPatch) (*domain.RaidParticipant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	participant, ok := s.participants.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, repository.ErrInvalidStatus
	}
	merged := *participant
	patch.ApplyTo(&merged)
	s.participants.insert(id, &merged)

	result := merged
	return &result, nil
}
