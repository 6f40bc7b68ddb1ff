package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"tarkov-squad-board/internal/domain"
	"tarkov-squad-board/internal/repository"
)

// GroupService 负责小队与成员管理的业务逻辑。
type GroupService struct {
	groupRepo repository.GroupRepository
}

// NewGroupService 创建 GroupService 实例。
func NewGroupService(groupRepo repository.GroupRepository) *GroupService {
	if groupRepo == nil {
		panic("GroupRepository cannot be nil for GroupService")
	}
	return &GroupService{groupRepo: groupRepo}
}

// CreateGroup 创建一个新小队。
func (s *GroupService) CreateGroup(ctx context.Context, group *domain.Group) (*domain.Group, error) {
	logCtx := logrus.WithFields(logrus.Fields{"name": group.Name, "created_by": group.CreatedBy})

	if err := s.groupRepo.CreateGroup(ctx, group); err != nil {
		logCtx.WithError(err).Error("Failed to create group")
		return nil, mapRepoError(err, ErrGroupNotFound)
	}

	logCtx.WithField("group_id", group.ID).Info("Group created successfully")
	return group, nil
}

// GetGroup 根据 ID 查找小队。
func (s *GroupService) GetGroup(ctx context.Context, id string) (*domain.Group, error) {
	group, err := s.groupRepo.FindGroupByID(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("group_id", id).Warn("Failed to find group")
		return nil, mapRepoError(err, ErrGroupNotFound)
	}
	return group, nil
}

// ListGroups 返回全部小队。
func (s *GroupService) ListGroups(ctx context.Context) ([]domain.Group, error) {
	groups, err := s.groupRepo.ListGroups(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to list groups")
		return nil, ErrInternalServer
	}
	return groups, nil
}

// AddMember 向小队添加一名成员。
// 小队不存在返回 ErrGroupNotFound，成员数达到上限返回 ErrGroupFull。
func (s *GroupService) AddMember(ctx context.Context, member *domain.GroupMember) (*domain.GroupMember, error) {
	logCtx := logrus.WithFields(logrus.Fields{"group_id": member.GroupID, "username": member.Username})

	if err := s.groupRepo.CreateMember(ctx, member); err != nil {
		mapped := mapRepoError(err, ErrGroupNotFound)
		if mapped == ErrInvalidReference {
			// 悬空的 GroupID 对调用方来说就是小队不存在
			mapped = ErrGroupNotFound
		}
		logCtx.WithError(err).Warn("Failed to add group member")
		return nil, mapped
	}

	logCtx.WithField("member_id", member.ID).Info("Group member added successfully")
	return member, nil
}

// GetMember 根据 ID 查找成员。
func (s *GroupService) GetMember(ctx context.Context, id string) (*domain.GroupMember, error) {
	member, err := s.groupRepo.FindMemberByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, ErrMemberNotFound)
	}
	return member, nil
}

// ListMembers 返回指定小队的全部成员 (插入顺序)。
func (s *GroupService) ListMembers(ctx context.Context, groupID string) ([]domain.GroupMember, error) {
	members, err := s.groupRepo.ListMembersByGroup(ctx, groupID)
	if err != nil {
		logrus.WithError(err).WithField("group_id", groupID).Error("Failed to list group members")
		return nil, ErrInternalServer
	}
	return members, nil
}

// UpdateMember 对成员做部分更新。
func (s *GroupService) UpdateMember(ctx context.Context, id string, patch domain.GroupMemberPatch) (*domain.GroupMember, error) {
	member, err := s.groupRepo.UpdateMember(ctx, id, patch)
	if err != nil {
		logrus.WithError(err).WithField("member_id", id).Warn("Failed to update group member")
		return nil, mapRepoError(err, ErrMemberNotFound)
	}
	logrus.WithField("member_id", id).Debug("Group member updated")
	return member, nil
}

// RemoveMember 删除成员。删除不存在的 ID 不是错误 (幂等)。
func (s *GroupService) RemoveMember(ctx context.Context, id string) error {
	if err := s.groupRepo.DeleteMember(ctx, id); err != nil {
		logrus.WithError(err).WithField("member_id", id).Error("Failed to delete group member")
		return ErrInternalServer
	}
	logrus.WithField("member_id", id).Info("Group member removed")
	return nil
}
