package service_test // 测试包

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tarkov-squad-board/internal/domain"
	"tarkov-squad-board/internal/infra/persistence/memory"
	"tarkov-squad-board/internal/service"
)

func TestSeedDefaults_PopulatesEmptyStore(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	require.NoError(t, service.SeedDefaults(ctx, store))

	groups, err := store.ListGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Moja Grupa", groups[0].Name)

	members, err := store.ListMembersByGroup(ctx, groups[0].ID)
	require.NoError(t, err)
	assert.Len(t, members, 3, "缺省应创建三名成员")
}

func TestSeedDefaults_SkipsNonEmptyStore(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	existing := &domain.Group{Name: "already here", CreatedBy: "user"}
	require.NoError(t, store.CreateGroup(ctx, existing))

	require.NoError(t, service.SeedDefaults(ctx, store))

	groups, err := store.ListGroups(ctx)
	require.NoError(t, err)
	assert.Len(t, groups, 1, "已有数据时种子应为空操作")
	assert.Equal(t, "already here", groups[0].Name)
}

func TestSeedDefaults_Idempotent(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	require.NoError(t, service.SeedDefaults(ctx, store))
	require.NoError(t, service.SeedDefaults(ctx, store))

	groups, err := store.ListGroups(ctx)
	require.NoError(t, err)
	assert.Len(t, groups, 1, "重复播种不应产生重复数据")
}
