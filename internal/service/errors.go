package service

import (
	"errors"

	"tarkov-squad-board/internal/repository"
)

var (
	ErrGroupNotFound    = errors.New("group not found")
	ErrMemberNotFound   = errors.New("group member not found")
	ErrQuestNotFound    = errors.New("quest not found")
	ErrRaidNotFound     = errors.New("raid not found")
	ErrModuleNotFound   = errors.New("hideout module not found")
	ErrRecordNotFound   = errors.New("record not found")
	ErrGroupFull        = errors.New("group already has the maximum number of members")
	ErrInvalidReference = errors.New("referenced record does not exist")
	ErrInvalidStatus    = errors.New("invalid status value")
	ErrDuplicateEntry   = errors.New("record with this id already exists")
	ErrSyncFailed       = errors.New("quest sync failed")
	ErrInternalServer   = errors.New("internal server error")
)

// mapRepoError 把仓库层错误映射为服务层错误。
// notFound 指定 ErrNotFound 对应的业务错误，便于各 Service 按实体定制。
func mapRepoError(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return notFound
	case errors.Is(err, repository.ErrDuplicateEntry):
		return ErrDuplicateEntry
	case errors.Is(err, repository.ErrInvalidReference):
		return ErrInvalidReference
	case errors.Is(err, repository.ErrInvalidStatus):
		return ErrInvalidStatus
	case errors.Is(err, repository.ErrGroupFull):
		return ErrGroupFull
	default:
		return ErrInternalServer
	}
}
