// Package mocks 提供仓库接口的 testify Mock 实现，供 service 层单元测试使用。
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tarkov-squad-board/internal/domain"
)

// GroupRepository 是 repository.GroupRepository 的 Mock 实现。
type GroupRepository struct {
	mock.Mock
}

func (m *GroupRepository) CreateGroup(ctx context.Context, group *domain.Group) error {
	ret := m.Called(ctx, group)
	return ret.Error(0)
}

func (m *GroupRepository) FindGroupByID(ctx context.Context, id string) (*domain.Group, error) {
	ret := m.Called(ctx, id)
	var r0 *domain.Group
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Group)
	}
	return r0, ret.Error(1)
}

func (m *GroupRepository) ListGroups(ctx context.Context) ([]domain.Group, error) {
	ret := m.Called(ctx)
	var r0 []domain.Group
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Group)
	}
	return r0, ret.Error(1)
}

func (m *GroupRepository) CreateMember(ctx context.Context, member *domain.GroupMember) error {
	ret := m.Called(ctx, member)
	return ret.Error(0)
}

func (m *GroupRepository) FindMemberByID(ctx context.Context, id string) (*domain.GroupMember, error) {
	ret := m.Called(ctx, id)
	var r0 *domain.GroupMember
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.GroupMember)
	}
	return r0, ret.Error(1)
}

func (m *GroupRepository) ListMembersByGroup(ctx context.Context, groupID string) ([]domain.GroupMember, error) {
	ret := m.Called(ctx, groupID)
	var r0 []domain.GroupMember
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.GroupMember)
	}
	return r0, ret.Error(1)
}

func (m *GroupRepository) UpdateMember(ctx context.Context, id string, patch domain.GroupMemberPatch) (*domain.GroupMember, error) {
	ret := m.Called(ctx, id, patch)
	var r0 *domain.GroupMember
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.GroupMember)
	}
	return r0, ret.Error(1)
}

func (m *GroupRepository) DeleteMember(ctx context.Context, id string) error {
	ret := m.Called(ctx, id)
	return ret.Error(0)
}
