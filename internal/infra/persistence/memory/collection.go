package memory

// collection 是一个按插入顺序记账的泛型键值集合。
// map 提供 O(1) 查找，order 切片保证过滤查询的返回顺序等于插入顺序。
// collection 本身不做加锁，并发控制由 Store 的互斥锁统一负责。
type collection[T any] struct {
	items map[string]*T
	order []string
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: make(map[string]*T)}
}

// get 返回指定 ID 的记录指针。
func (c *collection[T]) get(id string) (*T, bool) {
	item, ok := c.items[id]
	return item, ok
}

// insert 写入记录。ID 已存在时原地替换，不重复记录插入顺序。
func (c *collection[T]) insert(id string, item *T) {
	if _, ok := c.items[id]; !ok {
		c.order = append(c.order, id)
	}
	c.items[id] = item
}

// remove 删除记录，ID 不存在时为空操作。
func (c *collection[T]) remove(id string) {
	if _, ok := c.items[id]; !ok {
		return
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// list 按插入顺序返回满足 keep 条件的记录副本。keep 为 nil 表示全量。
func (c *collection[T]) list(keep func(*T) bool) []T {
	result := make([]T, 0, len(c.order))
	for _, id := range c.order {
		item := c.items[id]
		if keep == nil || keep(item) {
			result = append(result, *item)
		}
	}
	return result
}
