package repository

import (
	"context"

	"tarkov-squad-board/internal/domain"
)

// QuestRepository 定义了任务定义与玩家任务的存储操作。
type QuestRepository interface {
	// CreateQuest 保存一条任务定义。ID 必须由调用方提供 (外部标识)，
	// 已存在时返回 ErrDuplicateEntry，绝不覆盖本地记录。
	CreateQuest(ctx context.Context, quest *domain.Quest) error

	// FindQuestByID 根据 ID 查找任务定义，不存在时返回 ErrNotFound。
	FindQuestByID(ctx context.Context, id string) (*domain.Quest, error)

	// QuestExists 报告指定 ID 的任务定义是否已存在，供同步流程去重。
	QuestExists(ctx context.Context, id string) (bool, error)

	// ListQuests 按插入顺序返回全部任务定义。
	ListQuests(ctx context.Context) ([]domain.Quest, error)

	// CreatePlayerQuest 保存一条玩家任务。校验成员与任务外键，
	// Status 缺省为 available，CompletedAt 创建时恒为空。
	CreatePlayerQuest(ctx context.Context, pq *domain.PlayerQuest) error

	// FindPlayerQuestByID 根据 ID 查找玩家任务，不存在时返回 ErrNotFound。
	FindPlayerQuestByID(ctx context.Context, id string) (*domain.PlayerQuest, error)

	// ListPlayerQuestsByMember 按插入顺序返回指定成员的全部玩家任务。
	ListPlayerQuestsByMember(ctx context.Context, memberID string) ([]domain.PlayerQuest, error)

	// ListActiveGroupQuests 两跳联查：先解析小队成员，再筛选出
	// 属于这些成员且状态为 active 的玩家任务。
	ListActiveGroupQuests(ctx context.Context, groupID string) ([]domain.PlayerQuest, error)

	// UpdatePlayerQuest 对玩家任务做部分更新并返回合并后的记录。
	UpdatePlayerQuest(ctx context.Context, id string, patch domain.PlayerQuestPatch) (*domain.PlayerQuest, error)
}
