package repository

import (
	"context"

	"tarkov-squad-board/internal/domain"
)

// HideoutRepository 定义了藏身处模块目录与玩家建造进度的存储操作。
type HideoutRepository interface {
	// CreateModule 保存一个模块目录条目。ID 由调用方提供，
	// 已存在时返回 ErrDuplicateEntry。
	CreateModule(ctx context.Context, module *domain.HideoutModule) error

	// FindModuleByID 根据 ID 查找模块，不存在时返回 ErrNotFound。
	FindModuleByID(ctx context.Context, id string) (*domain.HideoutModule, error)

	// ListModules 按插入顺序返回全部模块。
	ListModules(ctx context.Context) ([]domain.HideoutModule, error)

	// CreatePlayerHideout 保存一条建造进度。校验成员与模块外键；
	// CurrentLevel 缺省为 0，ConstructionEndTime 创建时恒为空。
	CreatePlayerHideout(ctx context.Context, ph *domain.PlayerHideout) error

	// FindPlayerHideoutByID 根据 ID 查找建造进度，不存在时返回 ErrNotFound。
	FindPlayerHideoutByID(ctx context.Context, id string) (*domain.PlayerHideout, error)

	// ListPlayerHideoutByMember 按插入顺序返回指定成员的全部建造进度。
	ListPlayerHideoutByMember(ctx context.Context, memberID string) ([]domain.PlayerHideout, error)

	// UpdatePlayerHideout 对建造进度做部分更新并返回合并后的记录。
	UpdatePlayerHideout(ctx context.Context, id string, patch domain.PlayerHideoutPatch) (*domain.PlayerHideout, error)
}
