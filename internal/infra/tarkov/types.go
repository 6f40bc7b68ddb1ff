package tarkov

// 本文件中的结构体对应 tarkov.dev GraphQL API 的查询结果。
// 查询只请求有限的字段子集，未请求的字段在本地投影时取空值。

// Task 是外部任务记录。
type Task struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Trader           *TaskTrader       `json:"trader"`
	WikiLink         *string           `json:"wikiLink"`
	TaskRequirements []TaskRequirement `json:"taskRequirements"`
}

// TaskTrader 任务所属商人。
type TaskTrader struct {
	Name string `json:"name"`
}

// TaskRequirement 外部任务的前置任务引用。
type TaskRequirement struct {
	Task   *TaskRef `json:"task"`
	Status []string `json:"status"`
}

// TaskRef 被引用任务的标识。
type TaskRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Map 是外部地图记录。
type Map struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	NormalizedName string   `json:"normalizedName"`
	Description    string   `json:"description"`
	Enemies        []string `json:"enemies"`
	RaidDuration   int      `json:"raidDuration"`
}

// Item 是外部物品记录。
type Item struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	ShortName   string      `json:"shortName"`
	Description string      `json:"description"`
	IconLink    string      `json:"iconLink"`
	Avg24hPrice int         `json:"avg24hPrice"`
	BasePrice   int         `json:"basePrice"`
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	Types       []string    `json:"types"`
	SellFor     []ItemPrice `json:"sellFor"`
}

// ItemPrice 物品在某个出售渠道的价格。
type ItemPrice struct {
	Source   string `json:"source"`
	Price    int    `json:"price"`
	Currency string `json:"currency"`
}
