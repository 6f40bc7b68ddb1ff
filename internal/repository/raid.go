package repository

import (
	"context"

	"tarkov-squad-board/internal/domain"
)

// RaidRepository 定义了突袭计划与报名记录的存储操作。
type RaidRepository interface {
	// CreateRaid 保存一次新突袭。校验 GroupID 外键；Status 缺省为
	// planned，MaxPlayers 缺省为 5，CreatedAt 由存储层填充。
	CreateRaid(ctx context.Context, raid *domain.Raid) error

	// FindRaidByID 根据 ID 查找突袭，不存在时返回 ErrNotFound。
	FindRaidByID(ctx context.Context, id string) (*domain.Raid, error)

	// ListRaidsByGroup 按插入顺序返回指定小队的全部突袭。
	ListRaidsByGroup(ctx context.Context, groupID string) ([]domain.Raid, error)

	// UpdateRaid 对突袭做部分更新并返回合并后的记录。
	UpdateRaid(ctx context.Context, id string, patch domain.RaidPatch) (*domain.Raid, error)

	// CreateParticipant 保存一条报名记录。校验突袭与成员外键；
	// Status 缺省为 pending，JoinedAt 由存储层填充。
	CreateParticipant(ctx context.Context, participant *domain.RaidParticipant) error

	// ListParticipantsByRaid 按插入顺序返回指定突袭的全部报名记录。
	ListParticipantsByRaid(ctx context.Context, raidID string) ([]domain.RaidParticipant, error)

	// UpdateParticipant 对报名记录做部分更新并返回合并后的记录。
	UpdateParticipant(ctx context.Context, id string, patch domain.RaidParticipantPatch) (*domain.RaidParticipant, error)
}
