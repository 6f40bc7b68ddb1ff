package memory

import (
	"sync"

	"github.com/google/uuid"

	"tarkov-squad-board/internal/domain"
	"tarkov-squad-board/internal/repository"
)

// Store 是实体存储的内存实现：进程内唯一事实来源，无磁盘和网络 I/O。
// 所有实体集合共享一把读写锁，外键校验、成员数上限检查与写入
// 处于同一个临界区内，保证检查和插入的原子性。
//
// Store 在 bootstrap 中构造一次并注入各 Service，测试中每个用例
// 各自构造全新实例，互不干扰。
type Store struct {
	mu sync.RWMutex

	groups        *collection[domain.Group]
	members       *collection[domain.GroupMember]
	quests        *collection[domain.Quest]
	playerQuests  *collection[domain.PlayerQuest]
	raids         *collection[domain.Raid]
	participants  *collection[domain.RaidParticipant]
	modules       *collection[domain.HideoutModule]
	playerHideout *collection[domain.PlayerHideout]
}

// NewStore 创建一个空的内存存储。
func NewStore() *Store {
	return &Store{
		groups:        newCollection[domain.Group](),
		members:       newCollection[domain.GroupMember](),
		quests:        newCollection[domain.Quest](),
		playerQuests:  newCollection[domain.PlayerQuest](),
		raids:         newCollection[domain.Raid](),
		participants:  newCollection[domain.RaidParticipant](),
		modules:       newCollection[domain.HideoutModule](),
		playerHideout: newCollection[domain.PlayerHideout](),
	}
}

// 编译期断言：Store 实现了全部仓库接口。
var (
	_ repository.GroupRepository   = (*Store)(nil)
	_ repository.QuestRepository   = (*Store)(nil)
	_ repository.RaidRepository    = (*Store)(nil)
	_ repository.HideoutRepository = (*Store)(nil)
)

// newID 生成一个新的 UUID 字符串标识符。
func newID() string {
	return uuid.NewString()
}
