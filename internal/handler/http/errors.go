package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tarkov-squad-board/internal/service"
)

// mapServiceError 把服务层错误映射为 HTTP 状态码并写出响应。
// "未找到" 是正常的业务结果 (404)，只有未知错误才落到 500。
func mapServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGroupNotFound),
		errors.Is(err, service.ErrMemberNotFound),
		errors.Is(err, service.ErrQuestNotFound),
		errors.Is(err, service.ErrRaidNotFound),
		errors.Is(err, service.ErrModuleNotFound),
		errors.Is(err, service.ErrRecordNotFound):
		ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDuplicateEntry):
		ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrGroupFull):
		ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidReference),
		errors.Is(err, service.ErrInvalidStatus):
		ErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrSyncFailed):
		ErrorResponse(c, http.StatusBadGateway, err.Error())
	default:
		ErrorResponse(c, http.StatusInternalServerError, "internal server error")
	}
}
