package service_test // 测试包

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tarkov-squad-board/internal/domain"
	"tarkov-squad-board/internal/repository"
	"tarkov-squad-board/internal/repository/mocks"
	"tarkov-squad-board/internal/service"
)

// --- 测试 CreateGroup 方法 ---

func TestGroupService_CreateGroup_Success(t *testing.T) {
	// Arrange
	mockGroupRepo := new(mocks.GroupRepository)
	groupService := service.NewGroupService(mockGroupRepo)
	ctx := context.Background()

	group := &domain.Group{Name: "Moja Grupa", CreatedBy: "system"}

	// 设置 Mock 预期: 保存成功并模拟存储层填充字段
	mockGroupRepo.On("CreateGroup", ctx, mock.MatchedBy(func(g *domain.Group) bool {
		assert.Equal(t, "Moja Grupa", g.Name)
		return true
	})).
		Run(func(args mock.Arguments) {
			groupArg := args.Get(1).(*domain.Group)
			groupArg.ID = "generated-id"
			groupArg.CreatedAt = time.Now()
		}).
		Return(nil).
		Once()

	// Act
	created, err := groupService.CreateGroup(ctx, group)

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "generated-id", created.ID, "存储层填充的 ID 应被透传")
	assert.False(t, created.CreatedAt.IsZero())

	// Verify
	mockGroupRepo.AssertExpectations(t)
}

func TestGroupService_CreateGroup_DuplicateID(t *testing.T) {
	// Arrange
	mockGroupRepo := new(mocks.GroupRepository)
	groupService := service.NewGroupService(mockGroupRepo)
	ctx := context.Background()

	mockGroupRepo.On("CreateGroup", ctx, mock.AnythingOfType("*domain.Group")).
		Return(repository.ErrDuplicateEntry).Once()

	// Act
	_, err := groupService.CreateGroup(ctx, &domain.Group{ID: "taken", Name: "x", CreatedBy: "t"})

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrDuplicateEntry), "错误类型应为 ErrDuplicateEntry")

	// Verify
	mockGroupRepo.AssertExpectations(t)
}

// --- 测试 AddMember 方法 ---

func TestGroupService_AddMember_GroupNotFound(t *testing.T) {
	// Arrange
	mockGroupRepo := new(mocks.GroupRepository)
	groupService := service.NewGroupService(mockGroupRepo)
	ctx := context.Background()

	// 设置 Mock 预期: 存储层因悬空外键拒绝
	mockGroupRepo.On("CreateMember", ctx, mock.AnythingOfType("*domain.GroupMember")).
		Return(repository.ErrInvalidReference).Once()

	// Act
	_, err := groupService.AddMember(ctx, &domain.GroupMember{GroupID: "missing", Username: "x"})

	// Assert: 悬空外键对调用方来说就是小队不存在
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrGroupNotFound))

	// Verify
	mockGroupRepo.AssertExpectations(t)
}

func TestGroupService_AddMember_GroupFull(t *testing.T) {
	// Arrange
	mockGroupRepo := new(mocks.GroupRepository)
	groupService := service.NewGroupService(mockGroupRepo)
	ctx := context.Background()

	mockGroupRepo.On("CreateMember", ctx, mock.AnythingOfType("*domain.GroupMember")).
		Return(repository.ErrGroupFull).Once()

	// Act
	_, err := groupService.AddMember(ctx, &domain.GroupMember{GroupID: "g1", Username: "sixth"})

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrGroupFull))

	// Verify
	mockGroupRepo.AssertExpectations(t)
}

// --- 测试 GetMember / UpdateMember / RemoveMember 方法 ---

func TestGroupService_GetMember_NotFound(t *testing.T) {
	// Arrange
	mockGroupRepo := new(mocks.GroupRepository)
	groupService := service.NewGroupService(mockGroupRepo)
	ctx := context.Background()

	mockGroupRepo.On("FindMemberByID", ctx, "missing").
		Return(nil, repository.ErrNotFound).Once()

	// Act
	_, err := groupService.GetMember(ctx, "missing")

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrMemberNotFound))

	// Verify
	mockGroupRepo.AssertExpectations(t)
}

func TestGroupService_UpdateMember_Success(t *testing.T) {
	// Arrange
	mockGroupRepo := new(mocks.GroupRepository)
	groupService := service.NewGroupService(mockGroupRepo)
	ctx := context.Background()

	level := 43
	patch := domain.GroupMemberPatch{Level: &level}
	merged := &domain.GroupMember{ID: "m1", GroupID: "g1", Username: "MattyDev", Level: 43, IsOnline: true}

	mockGroupRepo.On("UpdateMember", ctx, "m1", patch).Return(merged, nil).Once()

	// Act
	updated, err := groupService.UpdateMember(ctx, "m1", patch)

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 43, updated.Level)
	assert.Equal(t, "MattyDev", updated.Username)

	// Verify
	mockGroupRepo.AssertExpectations(t)
}

func TestGroupService_RemoveMember_Idempotent(t *testing.T) {
	// Arrange
	mockGroupRepo := new(mocks.GroupRepository)
	groupService := service.NewGroupService(mockGroupRepo)
	ctx := context.Background()

	// 存储层对不存在的 ID 也返回成功
	mockGroupRepo.On("DeleteMember", ctx, "whatever").Return(nil).Twice()

	// Act & Assert
	assert.NoError(t, groupService.RemoveMember(ctx, "whatever"))
	assert.NoError(t, groupService.RemoveMember(ctx, "whatever"), "重复删除不应报错")

	// Verify
	mockGroupRepo.AssertExpectations(t)
}

// --- 构造函数防御 ---

func TestNewGroupService_NilRepoPanics(t *testing.T) {
	assert.Panics(t, func() { _ = service.NewGroupService(nil) }, "空仓库应触发 panic")
}
