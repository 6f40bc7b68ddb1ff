package http_test // 测试包

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tarkov-squad-board/internal/domain"
	httpHandler "tarkov-squad-board/internal/handler/http"
	"tarkov-squad-board/internal/infra/persistence/memory"
	"tarkov-squad-board/internal/service"
)

// setupRouter 组装一个带真实内存存储的最小路由，用于端到端验证错误码映射。
func setupRouter() (*gin.Engine, *memory.Store) {
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	groupHandler := httpHandler.NewGroupHandler(service.NewGroupService(store))
	questHandler := httpHandler.NewQuestHandler(service.NewQuestService(store))

	router := gin.New()
	api := router.Group("/api")
	{
		api.POST("/groups", groupHandler.CreateGroup)
		api.GET("/groups/:groupId", groupHandler.GetGroup)
		api.POST("/groups/:groupId/members", groupHandler.AddMember)
		api.PUT("/members/:memberId", groupHandler.UpdateMember)
		api.DELETE("/members/:memberId", groupHandler.RemoveMember)
		api.POST("/members/:memberId/quests", questHandler.TrackQuest)
		api.PUT("/player-quests/:playerQuestId", questHandler.UpdatePlayerQuest)
	}
	return router, store
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(method, path, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestGroupHandler_CreateGroup(t *testing.T) {
	router, _ := setupRouter()

	w := doJSON(t, router, "POST", "/api/groups", `{"name": "Moja Grupa", "createdBy": "system"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var created domain.Group
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID, "响应应包含生成的 ID")
	assert.Equal(t, "Moja Grupa", created.Name)
}

func TestGroupHandler_CreateGroup_MissingName(t *testing.T) {
	router, _ := setupRouter()

	w := doJSON(t, router, "POST", "/api/groups", `{"createdBy": "system"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code, "缺少必填字段应返回 400")
}

func TestGroupHandler_GetGroup_NotFound(t *testing.T) {
	router, _ := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/groups/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGroupHandler_AddMember_GroupNotFound(t *testing.T) {
	router, _ := setupRouter()

	w := doJSON(t, router, "POST", "/api/groups/missing/members", `{"username": "ghost"}`)

	assert.Equal(t, http.StatusNotFound, w.Code, "悬空外键应映射为 404")
}

func TestGroupHandler_AddMember_GroupFull(t *testing.T) {
	router, store := setupRouter()

	w := doJSON(t, router, "POST", "/api/groups", `{"name": "full", "createdBy": "t"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var group domain.Group
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &group))

	for i := 0; i < domain.MaxGroupMembers; i++ {
		resp := doJSON(t, router, "POST", "/api/groups/"+group.ID+"/members", `{"username": "m"}`)
		require.Equal(t, http.StatusOK, resp.Code)
	}

	resp := doJSON(t, router, "POST", "/api/groups/"+group.ID+"/members", `{"username": "overflow"}`)
	assert.Equal(t, http.StatusConflict, resp.Code, "满员小队应返回 409")

	members, err := store.ListMembersByGroup(context.Background(), group.ID)
	require.NoError(t, err)
	assert.Len(t, members, domain.MaxGroupMembers)
}

func TestGroupHandler_RemoveMember_Idempotent(t *testing.T) {
	router, _ := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/members/never-existed", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "删除不存在的成员应返回成功")
}

func TestQuestHandler_UpdatePlayerQuest_InvalidStatus(t *testing.T) {
	router, _ := setupRouter()

	// binding 的 oneof 校验在进入服务层之前就拦截非法状态
	w := doJSON(t, router, "PUT", "/api/player-quests/pq1", `{"status": "done"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuestHandler_TrackQuest_QuestMissing(t *testing.T) {
	router, _ := setupRouter()

	w := doJSON(t, router, "POST", "/api/groups", `{"name": "g", "createdBy": "t"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var group domain.Group
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &group))

	resp := doJSON(t, router, "POST", "/api/groups/"+group.ID+"/members", `{"username": "p1"}`)
	require.Equal(t, http.StatusOK, resp.Code)
	var member domain.GroupMember
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &member))

	// 任务定义不存在，外键校验应拒绝
	resp = doJSON(t, router, "POST", "/api/members/"+member.ID+"/quests", `{"questId": "missing"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code, "悬空的任务外键应映射为 422")
}
