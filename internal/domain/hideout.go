package domain

import "time"

// HideoutModule 藏身处模块的静态目录条目。ID 由种子数据或调用方提供。
type HideoutModule struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	Levels      []HideoutLevel `json:"levels"`
}

// HideoutLevel 模块单个等级的建造需求。
type HideoutLevel struct {
	Level            int            `json:"level"`
	Requirements     []RequiredItem `json:"requirements"`
	ConstructionTime int            `json:"constructionTime"` // 建造耗时 (秒)
	Bonuses          []string       `json:"bonuses,omitempty"`
}

// NextLevel 返回当前等级之后的下一级定义，不存在时返回 nil。
func (m *HideoutModule) NextLevel(current int) *HideoutLevel {
	for i := range m.Levels {
		if m.Levels[i].Level == current+1 {
			return &m.Levels[i]
		}
	}
	return nil
}

// PlayerHideout 记录某成员对某个模块的建造进度。
type PlayerHideout struct {
	ID                  string     `json:"id"`
	GroupMemberID       string     `json:"groupMemberId"` // 外键，创建时校验
	ModuleID            string     `json:"moduleId"`      // 外键，创建时校验
	CurrentLevel        int        `json:"currentLevel"`  // 缺省为 0
	IsConstructing      bool       `json:"isConstructing"`
	ConstructionEndTime *time.Time `json:"constructionEndTime"`
}

// PlayerHideoutPatch 建造进度的部分更新。
type PlayerHideoutPatch struct {
	CurrentLevel        *int       `json:"currentLevel"`
	IsConstructing      *bool      `json:"isConstructing"`
	ConstructionEndTime *time.Time `json:"constructionEndTime"`
}

// ApplyTo 将补丁合并到建造进度记录上。
func (p PlayerHideoutPatch) ApplyTo(ph *PlayerHideout) {
	if p.CurrentLevel != nil {
		ph.CurrentLevel = *p.CurrentLevel
	}
	if p.IsConstructing != nil {
		ph.IsConstructing = *p.IsConstructing
	}
	if p.ConstructionEndTime != nil {
		ph.ConstructionEndTime = p.ConstructionEndTime
	}
}
