package domain

import "time"

// Quest 表示一条任务定义。ID 来自外部 (tarkov.dev) 或调用方，不由存储层生成。
// 任务定义一旦写入即不可覆盖：同步流程只插入本地不存在的任务。
type Quest struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Description  *string            `json:"description"`
	Trader       string             `json:"trader"` // 任务商人名称，同步时缺失则为 "Unknown"
	Map          *string            `json:"map"`
	Objectives   []QuestObjective   `json:"objectives"`
	Requirements []QuestRequirement `json:"requirements"`
	Rewards      []QuestReward      `json:"rewards"`
	WikiLink     *string            `json:"wikiLink"`
}

// QuestObjective 任务目标。
type QuestObjective struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Count       int    `json:"count,omitempty"`
	Target      string `json:"target,omitempty"`
	Location    string `json:"location,omitempty"`
	FoundInRaid bool   `json:"foundInRaid,omitempty"`
}

// QuestRequirement 任务前置条件。同步流程把外部 taskRequirements
// 映射为 type="task"、compareMethod="equals"、value=1 的固定形式。
type QuestRequirement struct {
	Type          string `json:"type"`
	Target        string `json:"target"`
	CompareMethod string `json:"compareMethod"`
	Value         int    `json:"value"`
}

// QuestReward 任务奖励。
type QuestReward struct {
	Type       string  `json:"type"`
	Item       string  `json:"item,omitempty"`
	Count      int     `json:"count,omitempty"`
	Trader     string  `json:"trader,omitempty"`
	Reputation float64 `json:"reputation,omitempty"`
	Experience int     `json:"experience,omitempty"`
}

// PlayerQuestStatus 玩家任务状态枚举。
type PlayerQuestStatus string

const (
	QuestAvailable PlayerQuestStatus = "available"
	QuestActive    PlayerQuestStatus = "active"
	QuestComplete  PlayerQuestStatus = "complete"
	QuestFailed    PlayerQuestStatus = "failed"
)

// Valid 报告状态值是否属于枚举集合。存储层拒绝持久化集合之外的值。
func (s PlayerQuestStatus) Valid() bool {
	switch s {
	case QuestAvailable, QuestActive, QuestComplete, QuestFailed:
		return true
	}
	return false
}

// PlayerQuest 关联成员与任务，记录该成员的任务进度。
type PlayerQuest struct {
	ID            string            `json:"id"`
	GroupMemberID string            `json:"groupMemberId"` // 外键，创建时校验
	QuestID       string            `json:"questId"`       // 外键，创建时校验
	Status        PlayerQuestStatus `json:"status"`        // 缺省为 available
	Progress      []QuestProgress   `json:"progress"`
	CompletedAt   *time.Time        `json:"completedAt"` // 完成时由服务层填充
}

// QuestProgress 单个任务目标的完成进度。
type QuestProgress struct {
	ObjectiveID string `json:"objectiveId"`
	Current     int    `json:"current"`
	Required    int    `json:"required"`
	Complete    bool   `json:"complete"`
}

// PlayerQuestPatch 玩家任务的部分更新。
type PlayerQuestPatch struct {
	Status      *PlayerQuestStatus `json:"status"`
	Progress    []QuestProgress    `json:"progress"`
	CompletedAt *time.Time         `json:"completedAt"`
}

// ApplyTo 将补丁合并到玩家任务记录上 (浅合并)。
func (p PlayerQuestPatch) ApplyTo(pq *PlayerQuest) {
	if p.Status != nil {
		pq.Status = *p.Status
	}
	if p.Progress != nil {
		pq.Progress = p.Progress
	}
	if p.CompletedAt != nil {
		pq.CompletedAt = p.CompletedAt
	}
}
