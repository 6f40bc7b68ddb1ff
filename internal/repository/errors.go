package repository

import "errors"

// 通用的存储库错误
var (
	// ErrNotFound 表示请求的记录未找到。查询与更新都可能返回该错误；
	// 删除不存在的记录不算错误 (幂等删除)。
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateEntry 表示调用方提供的 ID 已被占用。
	ErrDuplicateEntry = errors.New("repository: duplicate entry")
	// ErrInvalidReference 表示子记录引用的父记录不存在 (悬空外键)。
	ErrInvalidReference = errors.New("repository: referenced record does not exist")
	// ErrInvalidStatus 表示状态字段取值不在枚举集合内。
	ErrInvalidStatus = errors.New("repository: status value out of range")
	// ErrGroupFull 表示小队成员数已达上限 (domain.MaxGroupMembers)。
	ErrGroupFull = errors.New("repository: group member limit reached")
)
