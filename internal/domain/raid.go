package domain

import "time"

// RaidStatus 突袭计划状态枚举。
type RaidStatus string

const (
	RaidPlanned   RaidStatus = "planned"
	RaidActive    RaidStatus = "active"
	RaidCompleted RaidStatus = "completed"
	RaidCancelled RaidStatus = "cancelled"
)

// Valid 报告状态值是否属于枚举集合。
func (s RaidStatus) Valid() bool {
	switch s {
	case RaidPlanned, RaidActive, RaidCompleted, RaidCancelled:
		return true
	}
	return false
}

// Raid 表示一次预定的小队突袭。
type Raid struct {
	ID            string         `json:"id"`
	GroupID       string         `json:"groupId"` // 外键，创建时校验
	Title         string         `json:"title"`
	Description   *string        `json:"description"`
	Map           string         `json:"map"`
	ScheduledFor  time.Time      `json:"scheduledFor"`
	Duration      int            `json:"duration"`   // 预计时长 (分钟)
	MaxPlayers    int            `json:"maxPlayers"` // 缺省为 5
	Objectives    []string       `json:"objectives"`
	RequiredItems []RequiredItem `json:"requiredItems"`
	Status        RaidStatus     `json:"status"` // 缺省为 planned
	CreatedBy     string         `json:"createdBy"`
	CreatedAt     time.Time      `json:"createdAt"` // 存储层填充
}

// RequiredItem 突袭或藏身处建造所需的物品。
type RequiredItem struct {
	Name        string `json:"name"`
	Count       int    `json:"count"`
	FoundInRaid bool   `json:"foundInRaid,omitempty"`
}

// RaidPatch 突袭的部分更新。
type RaidPatch struct {
	Title         *string        `json:"title"`
	Description   *string        `json:"description"`
	Map           *string        `json:"map"`
	ScheduledFor  *time.Time     `json:"scheduledFor"`
	Duration      *int           `json:"duration"`
	MaxPlayers    *int           `json:"maxPlayers"`
	Objectives    []string       `json:"objectives"`
	RequiredItems []RequiredItem `json:"requiredItems"`
	Status        *RaidStatus    `json:"status"`
}

// ApplyTo 将补丁合并到突袭记录上 (浅合并)。
func (p RaidPatch) ApplyTo(r *Raid) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Description != nil {
		r.Description = p.Description
	}
	if p.Map != nil {
		r.Map = *p.Map
	}
	if p.ScheduledFor != nil {
		r.ScheduledFor = *p.ScheduledFor
	}
	if p.Duration != nil {
		r.Duration = *p.Duration
	}
	if p.MaxPlayers != nil {
		r.MaxPlayers = *p.MaxPlayers
	}
	if p.Objectives != nil {
		r.Objectives = p.Objectives
	}
	if p.RequiredItems != nil {
		r.RequiredItems = p.RequiredItems
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
}

// ParticipantStatus 突袭报名状态枚举。
type ParticipantStatus string

const (
	ParticipantPending   ParticipantStatus = "pending"
	ParticipantConfirmed ParticipantStatus = "confirmed"
	ParticipantDeclined  ParticipantStatus = "declined"
)

// Valid 报告状态值是否属于枚举集合。
func (s ParticipantStatus) Valid() bool {
	switch s {
	case ParticipantPending, ParticipantConfirmed, ParticipantDeclined:
		return true
	}
	return false
}

// RaidParticipant 关联突袭与小队成员。
type RaidParticipant struct {
	ID            string            `json:"id"`
	RaidID        string            `json:"raidId"`        // 外键，创建时校验
	GroupMemberID string            `json:"groupMemberId"` // 外键，创建时校验
	Status        ParticipantStatus `json:"status"`        // 缺省为 pending
	JoinedAt      time.Time         `json:"joinedAt"`      // 存储层填充
}

// RaidParticipantPatch 报名记录的部分更新。
type RaidParticipantPatch struct {
	Status *ParticipantStatus `json:"status"`
}

// ApplyTo 将补丁合并到报名记录上。
func (p RaidParticipantPatch) ApplyTo(rp *RaidParticipant) {
	if p.Status != nil {
		rp.Status = *p.Status
	}
}
