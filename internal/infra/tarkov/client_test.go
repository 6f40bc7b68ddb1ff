package tarkov_test // 测试包

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tarkov-squad-board/internal/infra/tarkov"
)

func TestClient_Quests_Success(t *testing.T) {
	// Arrange: 模拟 GraphQL 端点
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req struct {
			Query string `json:"query"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.Query, "tasks", "查询应请求 tasks 字段")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": {
				"tasks": [
					{"id": "t1", "name": "Debut", "trader": {"name": "Prapor"}},
					{"id": "t2", "name": "Shortage", "trader": {"name": "Therapist"},
					 "taskRequirements": [{"task": {"id": "t1", "name": "Debut"}, "status": ["complete"]}]}
				]
			}
		}`))
	}))
	defer server.Close()

	client := tarkov.NewClient(server.URL, time.Second)

	// Act
	tasks, err := client.Quests(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "t1", tasks[0].ID)
	require.NotNil(t, tasks[0].Trader)
	assert.Equal(t, "Prapor", tasks[0].Trader.Name)
	require.Len(t, tasks[1].TaskRequirements, 1)
	require.NotNil(t, tasks[1].TaskRequirements[0].Task)
	assert.Equal(t, "t1", tasks[1].TaskRequirements[0].Task.ID)
}

func TestClient_Quests_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer server.Close()

	client := tarkov.NewClient(server.URL, time.Second)

	_, err := client.Quests(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502", "错误应包含状态码")
}

func TestClient_Quests_GraphQLErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": null, "errors": [{"message": "rate limited"}]}`))
	}))
	defer server.Close()

	client := tarkov.NewClient(server.URL, time.Second)

	_, err := client.Quests(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited", "GraphQL errors 载荷应视为失败")
}

func TestClient_Quests_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := tarkov.NewClient(server.URL, time.Second)

	_, err := client.Quests(context.Background())
	assert.Error(t, err, "非 JSON 响应体应视为失败")
}

func TestClient_Items_NameFilterSendsVariables(t *testing.T) {
	// Arrange: 捕获请求体，确认按名称过滤时带上了变量
	var captured struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": {"items": [{"id": "i1", "name": "Salewa", "shortName": "Salewa"}]}}`))
	}))
	defer server.Close()

	client := tarkov.NewClient(server.URL, time.Second)

	// Act
	items, err := client.Items(context.Background(), "Salewa")

	// Assert
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Salewa", items[0].Name)
	assert.Contains(t, captured.Query, "$name", "按名称过滤时应使用带变量的查询")
	assert.Equal(t, "Salewa", captured.Variables["name"])
}

func TestClient_Maps_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": {"maps": [{"id": "m1", "name": "Customs", "normalizedName": "customs", "raidDuration": 40}]}}`))
	}))
	defer server.Close()

	client := tarkov.NewClient(server.URL, time.Second)

	maps, err := client.Maps(context.Background())
	require.NoError(t, err)
	require.Len(t, maps, 1)
	assert.Equal(t, "Customs", maps[0].Name)
	assert.Equal(t, 40, maps[0].RaidDuration)
}

func TestClient_Timeout(t *testing.T) {
	// 上游挂起时必须有界地失败
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := tarkov.NewClient(server.URL, 50*time.Millisecond)

	start := time.Now()
	_, err := client.Quests(context.Background())
	assert.Error(t, err)
	assert.Less(t, time.Since(start), time.Second, "超时应在配置的时限附近触发")
}
