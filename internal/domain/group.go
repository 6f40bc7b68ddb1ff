package domain

import "time"

// MaxGroupMembers 一个小队允许的最大成员数。
// 该上限在存储层的创建路径中原子地检查，避免并发加人时超员。
const MaxGroupMembers = 5

// Group 表示一个 Tarkov 小队。
type Group struct {
	ID          string    `json:"id"`          // 小队唯一标识符 (UUID)
	Name        string    `json:"name"`        // 小队名称
	Description *string   `json:"description"` // 可选描述，缺省时为 null
	CreatedBy   string    `json:"createdBy"`   // 创建者标识
	CreatedAt   time.Time `json:"createdAt"`   // 创建时间 (存储层填充)
}

// GroupMember 表示小队中的一名玩家。
type GroupMember struct {
	ID       string    `json:"id"`
	GroupID  string    `json:"groupId"`  // 所属小队 ID (外键，创建时校验)
	Username string    `json:"username"` // 游戏内用户名
	Level    int       `json:"level"`    // 玩家等级，缺省为 1
	IsOnline bool      `json:"isOnline"` // 在线状态，缺省为 false
	LastSeen time.Time `json:"lastSeen"` // 最后在线时间 (存储层填充)
}

// GroupMemberPatch 描述对成员的部分更新。
// 指针为 nil 表示该字段不变；非 nil 字段整体覆盖原值。
type GroupMemberPatch struct {
	Username *string    `json:"username"`
	Level    *int       `json:"level"`
	IsOnline *bool      `json:"isOnline"`
	LastSeen *time.Time `json:"lastSeen"`
}

// ApplyTo 将补丁合并到成员记录上 (浅合并)。
func (p GroupMemberPatch) ApplyTo(m *GroupMember) {
	if p.Username != nil {
		m.Username = *p.Username
	}
	if p.Level != nil {
		m.Level = *p.Level
	}
	if p.IsOnline != nil {
		m.IsOnline = *p.IsOnline
	}
	if p.LastSeen != nil {
		m.LastSeen = *p.LastSeen
	}
}
