package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"tarkov-squad-board/internal/domain"
	"tarkov-squad-board/internal/repository"
)

// RaidService 负责突袭计划与报名管理的业务逻辑。
type RaidService struct {
	raidRepo repository.RaidRepository
}

// NewRaidService 创建 RaidService 实例。
func NewRaidService(raidRepo repository.RaidRepository) *RaidService {
	if raidRepo == nil {
		panic("RaidRepository cannot be nil for RaidService")
	}
	return &RaidService{raidRepo: raidRepo}
}

// ScheduleRaid 为小队预定一次突袭。
func (s *RaidService) ScheduleRaid(ctx context.Context, raid *domain.Raid) (*domain.Raid, error) {
	logCtx := logrus.WithFields(logrus.Fields{
		"group_id":      raid.GroupID,
		"title":         raid.Title,
		"map":           raid.Map,
		"scheduled_for": raid.ScheduledFor,
	})

	if err := s.raidRepo.CreateRaid(ctx, raid); err != nil {
		mapped := mapRepoError(err, ErrGroupNotFound)
		if mapped == ErrInvalidReference {
			mapped = ErrGroupNotFound
		}
		logCtx.WithError(err).Warn("Failed to schedule raid")
		return nil, mapped
	}

	logCtx.WithField("raid_id", raid.ID).Info("Raid scheduled successfully")
	return raid, nil
}

// GetRaid 根据 ID 查找突袭。
func (s *RaidService) GetRaid(ctx context.Context, id string) (*domain.Raid, error) {
	raid, err := s.raidRepo.FindRaidByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, ErrRaidNotFound)
	}
	return raid, nil
}

// ListGroupRaids 返回指定小队的全部突袭。
func (s *RaidService) ListGroupRaids(ctx context.Context, groupID string) ([]domain.Raid, error) {
	raids, err := s.raidRepo.ListRaidsByGroup(ctx, groupID)
	if err != nil {
		logrus.WithError(err).WithField("group_id", groupID).Error("Failed to list group raids")
		return nil, ErrInternalServer
	}
	return raids, nil
}

// UpdateRaid 对突袭做部分更新 (状态流转、改期等)。
func (s *RaidService) UpdateRaid(ctx context.Context, id string, patch domain.RaidPatch) (*domain.Raid, error) {
	raid, err := s.raidRepo.UpdateRaid(ctx, id, patch)
	if err != nil {
		logrus.WithError(err).WithField("raid_id", id).Warn("Failed to update raid")
		return nil, mapRepoError(err, ErrRaidNotFound)
	}
	logrus.WithFields(logrus.Fields{"raid_id": id, "status": raid.Status}).Debug("Raid updated")
	return raid, nil
}

// JoinRaid 为成员创建一条突袭报名记录。
func (s *RaidService) JoinRaid(ctx context.Context, participant *domain.RaidParticipant) (*domain.RaidParticipant, error) {
	logCtx := logrus.WithFields(logrus.Fields{
		"raid_id":   participant.RaidID,
		"member_id": participant.GroupMemberID,
	})

	if err := s.raidRepo.CreateParticipant(ctx, participant); err != nil {
		logCtx.WithError(err).Warn("Failed to join raid")
		return nil, mapRepoError(err, ErrRecordNotFound)
	}

	logCtx.WithField("participant_id", participant.ID).Info("Raid participant added")
	return participant, nil
}

// ListParticipants 返回指定突袭的全部报名记录。
func (s *RaidService) ListParticipants(ctx context.Context, raidID string) ([]domain.RaidParticipant, error) {
	participants, err := s.raidRepo.ListParticipantsByRaid(ctx, raidID)
	if err != nil {
		logrus.WithError(err).WithField("raid_id", raidID).Error("Failed to list raid participants")
		return nil, ErrInternalServer
	}
	return participants, nil
}

// RespondParticipant 更新报名状态 (确认/拒绝)。
func (s *RaidService) RespondParticipant(ctx context.Context, id string, patch domain.RaidParticipantPatch) (*domain.RaidParticipant, error) {
	participant, err := s.raidRepo.UpdateParticipant(ctx, id, patch)
	if err != nil {
		logrus.WithError(err).WithField("participant_id", id).Warn("Failed to update raid participant")
		return nil, mapRepoError(err, ErrRecordNotFound)
	}
	logrus.WithFields(logrus.Fields{"participant_id": id, "status": participant.Status}).Debug("Raid participant updated")
	return participant, nil
}
