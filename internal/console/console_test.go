package console

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/RyanW84/ShiftsLogger-sub001/internal/client"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/dto"
)

// ── 脚本化输入 ──

type scriptReader struct {
	lines   []string
	prompts []string
}

func (r *scriptReader) SetPrompt(p string) { r.prompts = append(r.prompts, p) }

func (r *scriptReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

// ── Mock API ──

type mockAPI struct {
	workers map[int64]dto.WorkerResponse

	lastQuery   url.Values
	lastCreateW *dto.CreateWorkerRequest
	lastUpdateW *dto.UpdateWorkerRequest
	lastCreateS *dto.CreateShiftRequest
	deleted     []int64
}

func newMockAPI() *mockAPI {
	email := "alice@example.com"
	return &mockAPI{workers: map[int64]dto.WorkerResponse{
		1: {ID: 1, Name: "Alice", Email: &email},
	}}
}

func notFound[T any](entity string, id int64) *client.Reply[T] {
	return &client.Reply[T]{RequestFailed: true, ResponseCode: 404, Message: fmt.Sprintf("%s with ID %d not found", entity, id)}
}

func (m *mockAPI) ListWorkers(_ context.Context, q url.Values) (*client.Reply[[]dto.WorkerResponse], error) {
	m.lastQuery = q
	items := make([]dto.WorkerResponse, 0, len(m.workers))
	for _, w := range m.workers {
		items = append(items, w)
	}
	return &client.Reply[[]dto.WorkerResponse]{
		ResponseCode: 200, Message: fmt.Sprintf("Found %d worker(s)", len(items)), Data: items,
		TotalCount: int64(len(items)), PageNumber: 1, PageSize: 50, TotalPages: 1,
	}, nil
}

func (m *mockAPI) GetWorker(_ context.Context, id int64) (*client.Reply[*dto.WorkerResponse], error) {
	w, ok := m.workers[id]
	if !ok {
		return notFound[*dto.WorkerResponse]("Worker", id), nil
	}
	return &client.Reply[*dto.WorkerResponse]{ResponseCode: 200, Message: "Worker retrieved successfully", Data: &w}, nil
}

func (m *mockAPI) CreateWorker(_ context.Context, req *dto.CreateWorkerRequest) (*client.Reply[*dto.WorkerResponse], error) {
	m.lastCreateW = req
	w := dto.WorkerResponse{ID: 2, Name: req.Name, Email: req.Email, Phone: req.Phone}
	return &client.Reply[*dto.WorkerResponse]{ResponseCode: 201, Message: "Worker created successfully", Data: &w}, nil
}

func (m *mockAPI) UpdateWorker(_ context.Context, id int64, req *dto.UpdateWorkerRequest) (*client.Reply[*dto.WorkerResponse], error) {
	m.lastUpdateW = req
	w := dto.WorkerResponse{ID: id, Name: req.Name, Email: req.Email, Phone: req.Phone}
	return &client.Reply[*dto.WorkerResponse]{ResponseCode: 200, Message: "Worker updated successfully", Data: &w}, nil
}

func (m *mockAPI) DeleteWorker(_ context.Context, id int64) (*client.Reply[any], error) {
	m.deleted = append(m.deleted, id)
	return &client.Reply[any]{ResponseCode: 204, Message: "Worker deleted successfully"}, nil
}

func (m *mockAPI) ListLocations(context.Context, url.Values) (*client.Reply[[]dto.LocationResponse], error) {
	return &client.Reply[[]dto.LocationResponse]{ResponseCode: 200, Message: "No locations found", Data: []dto.LocationResponse{}}, nil
}

func (m *mockAPI) GetLocation(_ context.Context, id int64) (*client.Reply[*dto.LocationResponse], error) {
	return notFound[*dto.LocationResponse]("Location", id), nil
}

func (m *mockAPI) CreateLocation(_ context.Context, req *dto.CreateLocationRequest) (*client.Reply[*dto.LocationResponse], error) {
	l := dto.LocationResponse{ID: 1, Name: req.Name, Town: req.Town, Postcode: req.Postcode}
	return &client.Reply[*dto.LocationResponse]{ResponseCode: 201, Message: "Location created successfully", Data: &l}, nil
}

func (m *mockAPI) UpdateLocation(_ context.Context, id int64, _ *dto.UpdateLocationRequest) (*client.Reply[*dto.LocationResponse], error) {
	return notFound[*dto.LocationResponse]("Location", id), nil
}

func (m *mockAPI) DeleteLocation(_ context.Context, id int64) (*client.Reply[any], error) {
	return notFound[any]("Location", id), nil
}

func (m *mockAPI) ListShifts(_ context.Context, q url.Values) (*client.Reply[[]dto.ShiftResponse], error) {
	m.lastQuery = q
	return &client.Reply[[]dto.ShiftResponse]{ResponseCode: 200, Message: "No shifts found", Data: []dto.ShiftResponse{}}, nil
}

func (m *mockAPI) GetShift(_ context.Context, id int64) (*client.Reply[*dto.ShiftResponse], error) {
	return notFound[*dto.ShiftResponse]("Shift", id), nil
}

func (m *mockAPI) CreateShift(_ context.Context, req *dto.CreateShiftRequest) (*client.Reply[*dto.ShiftResponse], error) {
	m.lastCreateS = req
	s := dto.ShiftResponse{
		ID: 7, WorkerID: req.WorkerID, LocationID: req.LocationID,
		StartTime: req.StartTime.Format(time.RFC3339), EndTime: req.EndTime.Format(time.RFC3339),
		DurationMinutes: int(req.EndTime.Sub(req.StartTime).Minutes()),
	}
	return &client.Reply[*dto.ShiftResponse]{ResponseCode: 201, Message: "Shift created successfully", Data: &s}, nil
}

func (m *mockAPI) UpdateShift(_ context.Context, id int64, _ *dto.UpdateShiftRequest) (*client.Reply[*dto.ShiftResponse], error) {
	return notFound[*dto.ShiftResponse]("Shift", id), nil
}

func (m *mockAPI) DeleteShift(_ context.Context, id int64) (*client.Reply[any], error) {
	return notFound[any]("Shift", id), nil
}

func (m *mockAPI) ExportTimesheet(_ context.Context, q url.Values) (*client.File, *client.Reply[any], error) {
	m.lastQuery = q
	return &client.File{Name: "timesheet_20260302.xlsx", Content: []byte("PK")}, nil, nil
}

func (m *mockAPI) ExportWorkerCalendar(_ context.Context, id int64) (*client.File, *client.Reply[any], error) {
	return nil, notFound[any]("Worker", id), nil
}

func newTestConsole(lines ...string) (*Console, *mockAPI, *scriptReader, *bytes.Buffer) {
	api := newMockAPI()
	rl := &scriptReader{lines: lines}
	out := &bytes.Buffer{}
	return New(api, rl, out, "table"), api, rl, out
}

// ── 测试 ──

func TestRun_HelpUnknownAndExit(t *testing.T) {
	c, _, _, out := newTestConsole("help", "", "frobnicate", "exit", "workers list")

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run 不应返回错误: %v", err)
	}
	if !strings.Contains(out.String(), "Commands:") {
		t.Error("help 应输出命令列表")
	}
	if !strings.Contains(out.String(), `Error: unknown command "frobnicate"`) {
		t.Errorf("未知命令应提示错误，实际输出:\n%s", out.String())
	}
	if strings.Contains(out.String(), "Found") {
		t.Error("exit 之后的命令不应执行")
	}
}

func TestRun_EOFEnds(t *testing.T) {
	c, _, _, _ := newTestConsole()
	if err := c.Run(context.Background()); err != nil {
		t.Errorf("EOF 应正常结束: %v", err)
	}
}

func TestWorkersList_TableAndFilter(t *testing.T) {
	c, api, _, out := newTestConsole()

	if err := c.Execute(context.Background(), []string{"workers", "list", "search=ali", "page_size=5"}); err != nil {
		t.Fatalf("list 失败: %v", err)
	}
	if api.lastQuery.Get("search") != "ali" || api.lastQuery.Get("page_size") != "5" {
		t.Errorf("过滤参数未透传: %v", api.lastQuery)
	}
	got := out.String()
	for _, want := range []string{"Found 1 worker(s)", "NAME", "Alice", "alice@example.com", "Page 1 of 1 (1 total)"} {
		if !strings.Contains(got, want) {
			t.Errorf("输出缺少 %q:\n%s", want, got)
		}
	}
}

func TestWorkersList_InvalidFilter(t *testing.T) {
	c, api, _, _ := newTestConsole()

	err := c.Execute(context.Background(), []string{"workers", "list", "page_size=lots"})
	if err == nil || !strings.Contains(err.Error(), "invalid filter") {
		t.Errorf("期望 invalid filter 错误，实际: %v", err)
	}
	if api.lastQuery != nil {
		t.Error("非法过滤参数不应发出请求")
	}

	if err := c.Execute(context.Background(), []string{"workers", "list", "search"}); err == nil {
		t.Error("缺少 = 的参数应报错")
	}
}

func TestWorkersAdd_Prompts(t *testing.T) {
	c, api, rl, out := newTestConsole("  Bob  ", "bob@example.com", "")

	if err := c.Execute(context.Background(), []string{"workers", "add"}); err != nil {
		t.Fatalf("add 失败: %v", err)
	}
	req := api.lastCreateW
	if req == nil || req.Name != "Bob" || deref(req.Email) != "bob@example.com" || req.Phone != nil {
		t.Errorf("创建请求不符: %+v", req)
	}
	if len(rl.prompts) != 3 || rl.prompts[0] != "Name: " {
		t.Errorf("提示不符: %q", rl.prompts)
	}
	if !strings.Contains(out.String(), "Worker created successfully") {
		t.Errorf("输出缺少成功消息:\n%s", out.String())
	}
}

func TestWorkersUpdate_DefaultsAndClear(t *testing.T) {
	c, api, rl, _ := newTestConsole("", "-", "+447700900123")

	if err := c.Execute(context.Background(), []string{"workers", "update", "1"}); err != nil {
		t.Fatalf("update 失败: %v", err)
	}
	req := api.lastUpdateW
	if req == nil || req.Name != "Alice" {
		t.Fatalf("空输入应保留原姓名: %+v", req)
	}
	if req.Email != nil {
		t.Errorf("'-' 应清空邮箱，实际 %q", deref(req.Email))
	}
	if deref(req.Phone) != "+447700900123" {
		t.Errorf("电话不符: %q", deref(req.Phone))
	}
	if rl.prompts[0] != "Name [Alice]: " {
		t.Errorf("应显示当前值作为默认: %q", rl.prompts[0])
	}
}

func TestWorkersUpdate_NotFoundSkipsPrompts(t *testing.T) {
	c, api, rl, out := newTestConsole()

	if err := c.Execute(context.Background(), []string{"workers", "update", "9"}); err != nil {
		t.Fatalf("业务失败不应返回 error: %v", err)
	}
	if api.lastUpdateW != nil || len(rl.prompts) != 0 {
		t.Error("记录不存在时不应提示或提交")
	}
	if !strings.Contains(out.String(), "Failed (404): Worker with ID 9 not found") {
		t.Errorf("输出不符:\n%s", out.String())
	}
}

func TestWorkersDelete_Confirm(t *testing.T) {
	c, api, _, out := newTestConsole("n", "y")

	_ = c.Execute(context.Background(), []string{"workers", "delete", "1"})
	if len(api.deleted) != 0 || !strings.Contains(out.String(), "Cancelled") {
		t.Error("未确认不应删除")
	}

	_ = c.Execute(context.Background(), []string{"workers", "delete", "1"})
	if len(api.deleted) != 1 || api.deleted[0] != 1 {
		t.Errorf("确认后应删除: %v", api.deleted)
	}

	if err := c.Execute(context.Background(), []string{"workers", "delete", "abc"}); err == nil {
		t.Error("非整数 ID 应报错")
	}
}

func TestShiftsAdd_ParsesTimes(t *testing.T) {
	c, api, _, out := newTestConsole("3", "1", "2026-03-02 09:00", "2026-03-02T17:30:00+01:00")

	if err := c.Execute(context.Background(), []string{"shifts", "add"}); err != nil {
		t.Fatalf("add 失败: %v", err)
	}
	req := api.lastCreateS
	wantStart := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2026, 3, 2, 16, 30, 0, 0, time.UTC)
	if !req.StartTime.Equal(wantStart) || !req.EndTime.Equal(wantEnd) {
		t.Errorf("时间解析不符: %v - %v", req.StartTime, req.EndTime)
	}
	if req.WorkerID != 3 || req.LocationID != 1 {
		t.Errorf("ID 不符: %+v", req)
	}
	if !strings.Contains(out.String(), "Shift created successfully") {
		t.Errorf("输出不符:\n%s", out.String())
	}
}

func TestShiftsAdd_BadWorkerID(t *testing.T) {
	c, api, _, _ := newTestConsole("three")

	if err := c.Execute(context.Background(), []string{"shifts", "add"}); err == nil {
		t.Error("非整数员工 ID 应报错")
	}
	if api.lastCreateS != nil {
		t.Error("输入错误时不应提交")
	}
}

func TestOutputYAML(t *testing.T) {
	c, _, _, out := newTestConsole()

	if err := c.Execute(context.Background(), []string{"output", "yaml"}); err != nil {
		t.Fatalf("切换输出失败: %v", err)
	}
	if err := c.Execute(context.Background(), []string{"workers", "get", "1"}); err != nil {
		t.Fatalf("get 失败: %v", err)
	}
	if !strings.Contains(out.String(), "name: Alice") {
		t.Errorf("期望 yaml 输出，实际:\n%s", out.String())
	}

	if err := c.Execute(context.Background(), []string{"output", "xml"}); err == nil {
		t.Error("未知格式应报错")
	}
}

func TestExport_WritesFileOrReportsFailure(t *testing.T) {
	c, api, _, out := newTestConsole()
	c.exportDir = t.TempDir()

	if err := c.Execute(context.Background(), []string{"export", "timesheet", "worker_id=3"}); err != nil {
		t.Fatalf("导出失败: %v", err)
	}
	if api.lastQuery.Get("worker_id") != "3" {
		t.Errorf("过滤参数未透传: %v", api.lastQuery)
	}
	content, err := os.ReadFile(filepath.Join(c.exportDir, "timesheet_20260302.xlsx"))
	if err != nil || string(content) != "PK" {
		t.Errorf("文件未写出: %v", err)
	}

	if err := c.Execute(context.Background(), []string{"export", "calendar", "9"}); err != nil {
		t.Fatalf("业务失败不应返回 error: %v", err)
	}
	if !strings.Contains(out.String(), "Failed (404): Worker with ID 9 not found") {
		t.Errorf("输出不符:\n%s", out.String())
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"2026-03-02 09:00", time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), false},
		{"2026-03-02T09:00:00Z", time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), false},
		{"2026-03-02T10:00:00+01:00", time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), false},
		{"tomorrow", time.Time{}, true},
	}
	for _, tt := range tests {
		got, err := parseTime(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseTime(%q) err=%v", tt.in, err)
			continue
		}
		if !tt.wantErr && !got.Equal(tt.want) {
			t.Errorf("parseTime(%q)=%v，期望 %v", tt.in, got, tt.want)
		}
	}
}
