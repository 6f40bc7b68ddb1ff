package repository

import (
	"context"

	"tarkov-squad-board/internal/domain"
)

// GroupRepository 定义了小队及其成员的存储操作。
type GroupRepository interface {
	// CreateGroup 保存一个新小队。ID 为空时由存储层生成，
	// CreatedAt 由存储层填充。ID 冲突时返回 ErrDuplicateEntry。
	CreateGroup(ctx context.Context, group *domain.Group) error

	// FindGroupByID 根据 ID 查找小队，不存在时返回 ErrNotFound。
	FindGroupByID(ctx context.Context, id string) (*domain.Group, error)

	// ListGroups 按插入顺序返回全部小队。
	ListGroups(ctx context.Context) ([]domain.Group, error)

	// CreateMember 保存一名新成员。校验 GroupID 指向的小队存在
	// (否则 ErrInvalidReference)，并原子地检查成员数上限
	// (超出时 ErrGroupFull)。Level 缺省为 1，LastSeen 由存储层填充。
	CreateMember(ctx context.Context, member *domain.GroupMember) error

	// FindMemberByID 根据 ID 查找成员，不存在时返回 ErrNotFound。
	FindMemberByID(ctx context.Context, id string) (*domain.GroupMember, error)

	// ListMembersByGroup 按插入顺序返回指定小队的全部成员。
	ListMembersByGroup(ctx context.Context, groupID string) ([]domain.GroupMember, error)

	// UpdateMember 对成员做部分更新并返回合并后的记录，
	// 记录不存在时返回 ErrNotFound。合并要么整体成功要么不生效。
	UpdateMember(ctx context.Context, id string, patch domain.GroupMemberPatch) (*domain.GroupMember, error)

	// DeleteMember 删除成员。删除不存在的 ID 不返回错误。
	DeleteMember(ctx context.Context, id string) error
}
