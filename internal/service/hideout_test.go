package service_test // 测试包

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tarkov-squad-board/internal/domain"
	"tarkov-squad-board/internal/infra/persistence/memory"
	"tarkov-squad-board/internal/service"
)

// setupHideout 准备一个带成员、模块和一条建造进度的存储。
func setupHideout(t *testing.T, levels []domain.HideoutLevel, currentLevel int) (*service.HideoutService, *domain.PlayerHideout) {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()

	group := &domain.Group{Name: "g", CreatedBy: "t"}
	require.NoError(t, store.CreateGroup(ctx, group))
	member := &domain.GroupMember{GroupID: group.ID, Username: "builder"}
	require.NoError(t, store.CreateMember(ctx, member))

	module := &domain.HideoutModule{ID: "generator", Name: "Generator", Levels: levels}
	require.NoError(t, store.CreateModule(ctx, module))

	hideoutService := service.NewHideoutService(store)
	ph, err := hideoutService.TrackModule(ctx, &domain.PlayerHideout{
		GroupMemberID: member.ID,
		ModuleID:      module.ID,
		CurrentLevel:  currentLevel,
	})
	require.NoError(t, err)

	return hideoutService, ph
}

func TestHideoutService_UpdateProgress_EstimatesConstructionEnd(t *testing.T) {
	levels := []domain.HideoutLevel{
		{Level: 1, ConstructionTime: 3600},
		{Level: 2, ConstructionTime: 7200},
	}
	hideoutService, ph := setupHideout(t, levels, 1)
	ctx := context.Background()

	constructing := true
	before := time.Now()
	updated, err := hideoutService.UpdateProgress(ctx, ph.ID, domain.PlayerHideoutPatch{IsConstructing: &constructing})

	require.NoError(t, err)
	assert.True(t, updated.IsConstructing)
	require.NotNil(t, updated.ConstructionEndTime, "未显式给出完成时间时应按下一级耗时推算")

	// 等级 1 → 2 的建造耗时为 7200 秒
	expected := before.Add(7200 * time.Second)
	assert.WithinDuration(t, expected, *updated.ConstructionEndTime, 5*time.Second)
}

func TestHideoutService_UpdateProgress_MaxLevelNoEstimate(t *testing.T) {
	levels := []domain.HideoutLevel{
		{Level: 1, ConstructionTime: 3600},
	}
	hideoutService, ph := setupHideout(t, levels, 1)
	ctx := context.Background()

	constructing := true
	updated, err := hideoutService.UpdateProgress(ctx, ph.ID, domain.PlayerHideoutPatch{IsConstructing: &constructing})

	require.NoError(t, err)
	assert.True(t, updated.IsConstructing)
	assert.Nil(t, updated.ConstructionEndTime, "已是最高等级时不应推算完成时间")
}

func TestHideoutService_UpdateProgress_ExplicitEndTimeWins(t *testing.T) {
	levels := []domain.HideoutLevel{
		{Level: 1, ConstructionTime: 3600},
		{Level: 2, ConstructionTime: 7200},
	}
	hideoutService, ph := setupHideout(t, levels, 1)
	ctx := context.Background()

	constructing := true
	explicit := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	updated, err := hideoutService.UpdateProgress(ctx, ph.ID, domain.PlayerHideoutPatch{
		IsConstructing:      &constructing,
		ConstructionEndTime: &explicit,
	})

	require.NoError(t, err)
	require.NotNil(t, updated.ConstructionEndTime)
	assert.True(t, updated.ConstructionEndTime.Equal(explicit), "调用方显式给出的完成时间应被保留")
}
