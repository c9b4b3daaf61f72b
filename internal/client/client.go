// Package client 班次日志 HTTP API 的类型化客户端。
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/RyanW84/ShiftsLogger-sub001/internal/dto"
)

// Config 客户端配置，读取 SHIFTCTL_ 前缀的环境变量
type Config struct {
	BaseURL string        `env:"BASE_URL" envDefault:"http://localhost:8080"`
	Token   string        `env:"TOKEN"`
	Output  string        `env:"OUTPUT"   envDefault:"table"`
	Timeout time.Duration `env:"TIMEOUT"  envDefault:"10s"`
}

// LoadConfig 从环境变量解析配置
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: "SHIFTCTL_"})
	if err != nil {
		return Config{}, fmt.Errorf("解析客户端配置失败: %w", err)
	}
	if cfg.Output != "table" && cfg.Output != "yaml" {
		return Config{}, fmt.Errorf("SHIFTCTL_OUTPUT 仅支持 table 或 yaml，实际为 %q", cfg.Output)
	}
	return cfg, nil
}

// Reply 服务端统一信封。调用方依据 RequestFailed 分支。
type Reply[T any] struct {
	RequestFailed   bool   `json:"requestFailed"`
	ResponseCode    int    `json:"responseCode"`
	Message         string `json:"message"`
	Data            T      `json:"data"`
	TotalCount      int64  `json:"totalCount"`
	PageNumber      int    `json:"pageNumber"`
	PageSize        int    `json:"pageSize"`
	TotalPages      int    `json:"totalPages"`
	HasNextPage     bool   `json:"hasNextPage"`
	HasPreviousPage bool   `json:"hasPreviousPage"`
}

// File 下载的导出文件
type File struct {
	Name    string
	Content []byte
}

// Client API 客户端
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New 创建客户端
func New(cfg Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// ── 员工 ──

func (c *Client) ListWorkers(ctx context.Context, query url.Values) (*Reply[[]dto.WorkerResponse], error) {
	return do[[]dto.WorkerResponse](ctx, c, http.MethodGet, "/workers", query, nil)
}

func (c *Client) GetWorker(ctx context.Context, id int64) (*Reply[*dto.WorkerResponse], error) {
	return do[*dto.WorkerResponse](ctx, c, http.MethodGet, fmt.Sprintf("/workers/%d", id), nil, nil)
}

func (c *Client) CreateWorker(ctx context.Context, req *dto.CreateWorkerRequest) (*Reply[*dto.WorkerResponse], error) {
	return do[*dto.WorkerResponse](ctx, c, http.MethodPost, "/workers", nil, req)
}

func (c *Client) UpdateWorker(ctx context.Context, id int64, req *dto.UpdateWorkerRequest) (*Reply[*dto.WorkerResponse], error) {
	return do[*dto.WorkerResponse](ctx, c, http.MethodPut, fmt.Sprintf("/workers/%d", id), nil, req)
}

func (c *Client) DeleteWorker(ctx context.Context, id int64) (*Reply[any], error) {
	return do[any](ctx, c, http.MethodDelete, fmt.Sprintf("/workers/%d", id), nil, nil)
}

// ── 地点 ──

func (c *Client) ListLocations(ctx context.Context, query url.Values) (*Reply[[]dto.LocationResponse], error) {
	return do[[]dto.LocationResponse](ctx, c, http.MethodGet, "/locations", query, nil)
}

func (c *Client) GetLocation(ctx context.Context, id int64) (*Reply[*dto.LocationResponse], error) {
	return do[*dto.LocationResponse](ctx, c, http.MethodGet, fmt.Sprintf("/locations/%d", id), nil, nil)
}

func (c *Client) CreateLocation(ctx context.Context, req *dto.CreateLocationRequest) (*Reply[*dto.LocationResponse], error) {
	return do[*dto.LocationResponse](ctx, c, http.MethodPost, "/locations", nil, req)
}

func (c *Client) UpdateLocation(ctx context.Context, id int64, req *dto.UpdateLocationRequest) (*Reply[*dto.LocationResponse], error) {
	return do[*dto.LocationResponse](ctx, c, http.MethodPut, fmt.Sprintf("/locations/%d", id), nil, req)
}

func (c *Client) DeleteLocation(ctx context.Context, id int64) (*Reply[any], error) {
	return do[any](ctx, c, http.MethodDelete, fmt.Sprintf("/locations/%d", id), nil, nil)
}

// ── 班次 ──

func (c *Client) ListShifts(ctx context.Context, query url.Values) (*Reply[[]dto.ShiftResponse], error) {
	return do[[]dto.ShiftResponse](ctx, c, http.MethodGet, "/shifts", query, nil)
}

func (c *Client) GetShift(ctx context.Context, id int64) (*Reply[*dto.ShiftResponse], error) {
	return do[*dto.ShiftResponse](ctx, c, http.MethodGet, fmt.Sprintf("/shifts/%d", id), nil, nil)
}

func (c *Client) CreateShift(ctx context.Context, req *dto.CreateShiftRequest) (*Reply[*dto.ShiftResponse], error) {
	return do[*dto.ShiftResponse](ctx, c, http.MethodPost, "/shifts", nil, req)
}

func (c *Client) UpdateShift(ctx context.Context, id int64, req *dto.UpdateShiftRequest) (*Reply[*dto.ShiftResponse], error) {
	return do[*dto.ShiftResponse](ctx, c, http.MethodPut, fmt.Sprintf("/shifts/%d", id), nil, req)
}

func (c *Client) DeleteShift(ctx context.Context, id int64) (*Reply[any], error) {
	return do[any](ctx, c, http.MethodDelete, fmt.Sprintf("/shifts/%d", id), nil, nil)
}

// ── 导出 ──

// ExportTimesheet 下载工时表；失败时返回服务端信封
func (c *Client) ExportTimesheet(ctx context.Context, query url.Values) (*File, *Reply[any], error) {
	return c.download(ctx, "/shifts/export.xlsx", query)
}

// ExportWorkerCalendar 下载员工日历
func (c *Client) ExportWorkerCalendar(ctx context.Context, workerID int64) (*File, *Reply[any], error) {
	return c.download(ctx, fmt.Sprintf("/workers/%d/shifts.ics", workerID), nil)
}

// ── 内部辅助方法 ──

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body interface{}) (*http.Request, error) {
	u := c.baseURL + "/api/v1" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("序列化请求体失败: %w", err)
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, fmt.Errorf("构造请求失败: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// do 发送请求并解码信封。业务失败通过 Reply.RequestFailed 返回，
// 只有传输失败或响应不是信封时才返回 error。
func do[T any](ctx context.Context, c *Client, method, path string, query url.Values, body interface{}) (*Reply[T], error) {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s 请求失败: %w", method, path, err)
	}
	defer resp.Body.Close()

	return decode[T](resp)
}

func decode[T any](resp *http.Response) (*Reply[T], error) {
	var reply Reply[T]
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("无法解析响应（HTTP %d）: %w", resp.StatusCode, err)
	}
	if reply.ResponseCode == 0 {
		reply.ResponseCode = resp.StatusCode
	}
	return &reply, nil
}

func (c *Client) download(ctx context.Context, path string, query url.Values) (*File, *Reply[any], error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Del("Accept")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("下载 %s 失败: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK || strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		reply, err := decode[any](resp)
		return nil, reply, err
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("读取 %s 失败: %w", path, err)
	}
	return &File{Name: attachmentName(resp.Header.Get("Content-Disposition"), path), Content: content}, nil, nil
}

// attachmentName 取 Content-Disposition 中的文件名，缺失时退回路径末段
func attachmentName(disposition, path string) string {
	if _, params, err := mime.ParseMediaType(disposition); err == nil {
		if name := params["filename*"]; name != "" {
			return name
		}
		if name := params["filename"]; name != "" {
			return name
		}
	}
	return path[strings.LastIndex(path, "/")+1:]
}
