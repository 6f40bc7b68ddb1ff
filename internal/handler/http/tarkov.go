package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tarkov-squad-board/internal/infra/tarkov"
)

// TarkovAPI 抽象对外部 tarkov.dev 数据的只读访问，便于在测试中替换。
type TarkovAPI interface {
	Quests(ctx context.Context) ([]tarkov.Task, error)
	Maps(ctx context.Context) ([]tarkov.Map, error)
	Items(ctx context.Context, name string) ([]tarkov.Item, error)
}

// TarkovHandler 把外部 API 数据原样透传给前端，不落库。
type TarkovHandler struct {
	api TarkovAPI
}

// NewTarkovHandler 创建 TarkovHandler 实例。
func NewTarkovHandler(api TarkovAPI) *TarkovHandler {
	return &TarkovHandler{api: api}
}

// Quests 透传外部任务列表。
func (h *TarkovHandler) Quests(c *gin.Context) {
	tasks, err := h.api.Quests(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Warn("Handler.TarkovQuests: upstream fetch failed")
		ErrorResponse(c, http.StatusBadGateway, "Failed to fetch quests from Tarkov API")
		return
	}
	SuccessResponse(c, http.StatusOK, tasks)
}

// Maps 透传外部地图列表。
func (h *TarkovHandler) Maps(c *gin.Context) {
	maps, err := h.api.Maps(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Warn("Handler.TarkovMaps: upstream fetch failed")
		ErrorResponse(c, http.StatusBadGateway, "Failed to fetch maps from Tarkov API")
		return
	}
	SuccessResponse(c, http.StatusOK, maps)
}

// Items 透传外部物品列表，支持 ?name= 按名称过滤。
func (h *TarkovHandler) Items(c *gin.Context) {
	items, err := h.api.Items(c.Request.Context(), c.Query("name"))
	if err != nil {
		logrus.WithError(err).Warn("Handler.TarkovItems: upstream fetch failed")
		ErrorResponse(c, http.StatusBadGateway, "Failed to fetch items from Tarkov API")
		return
	}
	SuccessResponse(c, http.StatusOK, items)
}
