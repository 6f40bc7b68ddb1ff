package tasks

import "encoding/json"

// 定义任务类型常量
const (
	TypeQuestSync = "quest:sync" // 周期性外部任务同步
)

// QuestSyncPayload 定义了任务同步作业的数据结构。
// 同步当前不需要参数，保留结构体便于将来扩展 (例如只同步某个商人)。
type QuestSyncPayload struct {
	Trigger string `json:"trigger"` // "scheduler" 或 "manual"
}

// NewQuestSyncTask 创建一个任务同步作业的序列化 payload。
func NewQuestSyncTask(trigger string) ([]byte, error) {
	return json.Marshal(QuestSyncPayload{Trigger: trigger})
}
