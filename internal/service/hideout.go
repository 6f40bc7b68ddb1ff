package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"tarkov-squad-board/internal/domain"
	"tarkov-squad-board/internal/repository"
)

// HideoutService 负责藏身处模块目录与玩家建造进度的业务逻辑。
type HideoutService struct {
	hideoutRepo repository.HideoutRepository
}

// NewHideoutService 创建 HideoutService 实例。
func NewHideoutService(hideoutRepo repository.HideoutRepository) *HideoutService {
	if hideoutRepo == nil {
		panic("HideoutRepository cannot be nil for HideoutService")
	}
	return &HideoutService{hideoutRepo: hideoutRepo}
}

// CreateModule 插入一个模块目录条目 (种子数据或手动录入)。
func (s *HideoutService) CreateModule(ctx context.Context, module *domain.HideoutModule) (*domain.HideoutModule, error) {
	logCtx := logrus.WithFields(logrus.Fields{"module_id": module.ID, "name": module.Name})

	if err := s.hideoutRepo.CreateModule(ctx, module); err != nil {
		logCtx.WithError(err).Warn("Failed to create hideout module")
		return nil, mapRepoError(err, ErrModuleNotFound)
	}

	logCtx.Info("Hideout module created")
	return module, nil
}

// GetModule 根据 ID 查找模块。
func (s *HideoutService) GetModule(ctx context.Context, id string) (*domain.HideoutModule, error) {
	module, err := s.hideoutRepo.FindModuleByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, ErrModuleNotFound)
	}
	return module, nil
}

// ListModules 返回全部模块目录。
func (s *HideoutService) ListModules(ctx context.Context) ([]domain.HideoutModule, error) {
	modules, err := s.hideoutRepo.ListModules(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to list hideout modules")
		return nil, ErrInternalServer
	}
	return modules, nil
}

// TrackModule 为某个成员开始跟踪一个模块的建造进度。
func (s *HideoutService) TrackModule(ctx context.Context, ph *domain.PlayerHideout) (*domain.PlayerHideout, error) {
	logCtx := logrus.WithFields(logrus.Fields{
		"member_id": ph.GroupMemberID,
		"module_id": ph.ModuleID,
	})

	if err := s.hideoutRepo.CreatePlayerHideout(ctx, ph); err != nil {
		logCtx.WithError(err).Warn("Failed to track hideout module for member")
		return nil, mapRepoError(err, ErrRecordNotFound)
	}

	logCtx.WithField("player_hideout_id", ph.ID).Info("Player hideout progress tracked")
	return ph, nil
}

// ListMemberHideout 返回指定成员的全部建造进度。
func (s *HideoutService) ListMemberHideout(ctx context.Context, memberID string) ([]domain.PlayerHideout, error) {
	progress, err := s.hideoutRepo.ListPlayerHideoutByMember(ctx, memberID)
	if err != nil {
		logrus.WithError(err).WithField("member_id", memberID).Error("Failed to list player hideout progress")
		return nil, ErrInternalServer
	}
	return progress, nil
}

// UpdateProgress 对建造进度做部分更新。
// 调用方把 isConstructing 置为 true 而未给出完成时间时，按模块下一级的
// 建造耗时推算 constructionEndTime。
func (s *HideoutService) UpdateProgress(ctx context.Context, id string, patch domain.PlayerHideoutPatch) (*domain.PlayerHideout, error) {
	if patch.IsConstructing != nil && *patch.IsConstructing && patch.ConstructionEndTime == nil {
		if end, ok := s.estimateConstructionEnd(ctx, id); ok {
			patch.ConstructionEndTime = &end
		}
	}

	ph, err := s.hideoutRepo.UpdatePlayerHideout(ctx, id, patch)
	if err != nil {
		logrus.WithError(err).WithField("player_hideout_id", id).Warn("Failed to update player hideout progress")
		return nil, mapRepoError(err, ErrRecordNotFound)
	}

	logrus.WithFields(logrus.Fields{
		"player_hideout_id": id,
		"current_level":     ph.CurrentLevel,
		"is_constructing":   ph.IsConstructing,
	}).Debug("Player hideout progress updated")
	return ph, nil
}

// estimateConstructionEnd 根据模块下一级的建造耗时推算完成时间。
// 记录或模块缺失、或已是最高等级时返回 ok=false，交由更新路径正常处理。
func (s *HideoutService) estimateConstructionEnd(ctx context.Context, id string) (time.Time, bool) {
	ph, err := s.hideoutRepo.FindPlayerHideoutByID(ctx, id)
	if err != nil {
		return time.Time{}, false
	}
	module, err := s.hideoutRepo.FindModuleByID(ctx, ph.ModuleID)
	if err != nil {
		return time.Time{}, false
	}
	next := module.NextLevel(ph.CurrentLevel)
	if next == nil {
		return time.Time{}, false
	}
	return time.Now().Add(time.Duration(next.ConstructionTime) * time.Second), true
}
