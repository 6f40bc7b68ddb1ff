package tarkov

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultEndpoint 是 tarkov.dev 的公共 GraphQL 端点。
const DefaultEndpoint = "https://api.tarkov.dev/graphql"

// DefaultTimeout 是单次外部请求的缺省超时。
// 外部源挂起时必须有界地失败，而不是无限期阻塞同步调用。
const DefaultTimeout = 15 * time.Second

// Client 是 tarkov.dev GraphQL API 的只读客户端。
// 每次调用发出一个 POST 请求，不做重试；非 2xx 状态、非 JSON 响应体
// 或 GraphQL errors 载荷都视为该次调用整体失败。
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient 创建客户端。endpoint 为空时使用 DefaultEndpoint，
// timeout 非正时使用 DefaultTimeout。
func NewClient(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// graphqlRequest 是发往端点的请求体。
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// graphqlError 是响应中的单条 GraphQL 错误。
type graphqlError struct {
	Message string `json:"message"`
}

// graphqlEnvelope 是响应外层结构，Data 延迟到调用方类型再解码。
type graphqlEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

// do 执行一次 GraphQL 查询并把 data 解码到 out。
func (c *Client) do(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("tarkov: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("tarkov: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "tarkov-squad-board/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tarkov: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// 读取一小段响应体帮助定位问题，避免把整个错误页写进日志
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logrus.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(snippet),
		}).Warn("Tarkov API returned non-OK status")
		return fmt.Errorf("tarkov: unexpected status %d", resp.StatusCode)
	}

	var envelope graphqlEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("tarkov: decode response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("tarkov: graphql error: %s", envelope.Errors[0].Message)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("tarkov: decode data: %w", err)
	}
	return nil
}

const questsQuery = `
query {
  tasks {
    id
    name
    trader {
      name
    }
    wikiLink
    taskRequirements {
      task {
        id
        name
      }
      status
    }
  }
}`

// Quests 批量拉取全部任务定义。
func (c *Client) Quests(ctx context.Context) ([]Task, error) {
	var data struct {
		Tasks []Task `json:"tasks"`
	}
	if err := c.do(ctx, questsQuery, nil, &data); err != nil {
		return nil, err
	}
	logrus.WithField("count", len(data.Tasks)).Debug("Fetched tasks from Tarkov API")
	return data.Tasks, nil
}

const mapsQuery = `
query {
  maps {
    id
    name
    normalizedName
    description
    enemies
    raidDuration
  }
}`

// Maps 拉取全部地图信息。
func (c *Client) Maps(ctx context.Context) ([]Map, error) {
	var data struct {
		Maps []Map `json:"maps"`
	}
	if err := c.do(ctx, mapsQuery, nil, &data); err != nil {
		return nil, err
	}
	return data.Maps, nil
}

const itemsQuery = `
query {
  items {
    id
    name
    shortName
    description
    iconLink
    avg24hPrice
    basePrice
    width
    height
    types
    sellFor {
      source
      price
      currency
    }
  }
}`

const itemsByNameQuery = `
query ($name: String!) {
  items(name: $name) {
    id
    name
    shortName
    description
    iconLink
    avg24hPrice
    basePrice
    width
    height
    types
    sellFor {
      source
      price
      currency
    }
  }
}`

// Items 拉取物品信息，name 非空时按名称过滤。
func (c *Client) Items(ctx context.Context, name string) ([]Item, error) {
	query := itemsQuery
	var variables map[string]any
	if name != "" {
		query = itemsByNameQuery
		variables = map[string]any{"name": name}
	}

	var data struct {
		Items []Item `json:"items"`
	}
	if err := c.do(ctx, query, variables, &data); err != nil {
		return nil, err
	}
	return data.Items, nil
}
