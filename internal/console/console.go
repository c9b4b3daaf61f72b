// Package console shiftctl 交互式命令行：逐行读取命令，调用 HTTP API 并渲染结果。
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/gin-gonic/gin/binding"

	"github.com/RyanW84/ShiftsLogger-sub001/internal/client"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/dto"
)

const defaultPrompt = "shifts> "

// API 控制台依赖的远端操作（*client.Client 实现）
type API interface {
	ListWorkers(ctx context.Context, query url.Values) (*client.Reply[[]dto.WorkerResponse], error)
	GetWorker(ctx context.Context, id int64) (*client.Reply[*dto.WorkerResponse], error)
	CreateWorker(ctx context.Context, req *dto.CreateWorkerRequest) (*client.Reply[*dto.WorkerResponse], error)
	UpdateWorker(ctx context.Context, id int64, req *dto.UpdateWorkerRequest) (*client.Reply[*dto.WorkerResponse], error)
	DeleteWorker(ctx context.Context, id int64) (*client.Reply[any], error)

	ListLocations(ctx context.Context, query url.Values) (*client.Reply[[]dto.LocationResponse], error)
	GetLocation(ctx context.Context, id int64) (*client.Reply[*dto.LocationResponse], error)
	CreateLocation(ctx context.Context, req *dto.CreateLocationRequest) (*client.Reply[*dto.LocationResponse], error)
	UpdateLocation(ctx context.Context, id int64, req *dto.UpdateLocationRequest) (*client.Reply[*dto.LocationResponse], error)
	DeleteLocation(ctx context.Context, id int64) (*client.Reply[any], error)

	ListShifts(ctx context.Context, query url.Values) (*client.Reply[[]dto.ShiftResponse], error)
	GetShift(ctx context.Context, id int64) (*client.Reply[*dto.ShiftResponse], error)
	CreateShift(ctx context.Context, req *dto.CreateShiftRequest) (*client.Reply[*dto.ShiftResponse], error)
	UpdateShift(ctx context.Context, id int64, req *dto.UpdateShiftRequest) (*client.Reply[*dto.ShiftResponse], error)
	DeleteShift(ctx context.Context, id int64) (*client.Reply[any], error)

	ExportTimesheet(ctx context.Context, query url.Values) (*client.File, *client.Reply[any], error)
	ExportWorkerCalendar(ctx context.Context, workerID int64) (*client.File, *client.Reply[any], error)
}

// LineReader 行输入源（*readline.Instance 实现）
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// Console 交互式会话
type Console struct {
	api       API
	rl        LineReader
	out       io.Writer
	format    string // table | yaml
	exportDir string
}

// New 创建控制台
func New(api API, rl LineReader, out io.Writer, format string) *Console {
	if format == "" {
		format = "table"
	}
	return &Console{api: api, rl: rl, out: out, format: format, exportDir: "."}
}

// Run 读取并执行命令，直到 exit、EOF 或 ctx 取消
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "Shifts Logger console. Type 'help' for commands.")
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		c.rl.SetPrompt(defaultPrompt)
		line, err := c.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" || args[0] == "quit" {
			return nil
		}
		if err := c.Execute(ctx, args); err != nil {
			fmt.Fprintf(c.out, "Error: %v\n", err)
		}
	}
}

// Execute 执行单条命令
func (c *Console) Execute(ctx context.Context, args []string) error {
	switch args[0] {
	case "help", "?":
		c.help()
		return nil
	case "output":
		if len(args) != 2 || (args[1] != "table" && args[1] != "yaml") {
			return errors.New("usage: output table|yaml")
		}
		c.format = args[1]
		return nil
	case "workers":
		return c.dispatch(ctx, args, workerCommands(c))
	case "locations":
		return c.dispatch(ctx, args, locationCommands(c))
	case "shifts":
		return c.dispatch(ctx, args, shiftCommands(c))
	case "export":
		return c.export(ctx, args[1:])
	default:
		return fmt.Errorf("unknown command %q, type 'help'", args[0])
	}
}

// commands 单个实体的五个操作
type commands struct {
	newFilter func() interface{}
	list      func(ctx context.Context, query url.Values) error
	get       func(ctx context.Context, id int64) error
	add       func(ctx context.Context) error
	update    func(ctx context.Context, id int64) error
	remove    func(ctx context.Context, id int64) error
}

func (c *Console) dispatch(ctx context.Context, args []string, cmds commands) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: %s list|get|add|update|delete", args[0])
	}

	switch args[1] {
	case "list":
		query, err := parseFilter(args[2:], cmds.newFilter())
		if err != nil {
			return err
		}
		return cmds.list(ctx, query)
	case "add":
		return cmds.add(ctx)
	case "get", "update", "delete":
		if len(args) != 3 {
			return fmt.Errorf("usage: %s %s <id>", args[0], args[1])
		}
		id, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("ID must be an integer, got %q", args[2])
		}
		switch args[1] {
		case "get":
			return cmds.get(ctx, id)
		case "update":
			return cmds.update(ctx, id)
		default:
			if !c.confirm(fmt.Sprintf("Delete %s %d?", strings.TrimSuffix(args[0], "s"), id)) {
				fmt.Fprintln(c.out, "Cancelled")
				return nil
			}
			return cmds.remove(ctx, id)
		}
	default:
		return fmt.Errorf("unknown action %q for %s", args[1], args[0])
	}
}

// ── 导出 ──

func (c *Console) export(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: export timesheet [key=value ...] | export calendar <worker id>")
	}

	var (
		file  *client.File
		reply *client.Reply[any]
		err   error
	)
	switch args[0] {
	case "timesheet":
		query, perr := parseFilter(args[1:], &dto.ShiftFilter{})
		if perr != nil {
			return perr
		}
		file, reply, err = c.api.ExportTimesheet(ctx, query)
	case "calendar":
		if len(args) != 2 {
			return errors.New("usage: export calendar <worker id>")
		}
		id, perr := strconv.ParseInt(args[1], 10, 64)
		if perr != nil {
			return fmt.Errorf("ID must be an integer, got %q", args[1])
		}
		file, reply, err = c.api.ExportWorkerCalendar(ctx, id)
	default:
		return fmt.Errorf("unknown export %q", args[0])
	}
	if err != nil {
		return err
	}
	if reply != nil {
		printFailure(c.out, reply.ResponseCode, reply.Message)
		return nil
	}

	path := filepath.Join(c.exportDir, filepath.Base(file.Name))
	if err := os.WriteFile(path, file.Content, 0o644); err != nil {
		return fmt.Errorf("写入 %s 失败: %w", path, err)
	}
	fmt.Fprintf(c.out, "Saved %s (%d bytes)\n", path, len(file.Content))
	return nil
}

// ── 输入辅助 ──

// parseFilter 解析 key=value 参数，并按服务端同样的绑定规则预先校验
func parseFilter(args []string, filter interface{}) (url.Values, error) {
	query := url.Values{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("filter %q must be key=value", arg)
		}
		query.Add(key, value)
	}

	req := &http.Request{URL: &url.URL{RawQuery: query.Encode()}}
	if err := binding.Query.Bind(req, filter); err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}
	return query, nil
}

// ask 提示输入；空输入返回 current
func (c *Console) ask(label, current string) (string, error) {
	prompt := label + ": "
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, current)
	}
	c.rl.SetPrompt(prompt)
	line, err := c.rl.Readline()
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return current, nil
	}
	return line, nil
}

// askOptional 可选字段："-" 清空，空输入保留当前值
func (c *Console) askOptional(label string, current *string) (*string, error) {
	cur := ""
	if current != nil {
		cur = *current
	}
	v, err := c.ask(label+" (- to clear)", cur)
	if err != nil {
		return nil, err
	}
	if v == "-" || v == "" {
		return nil, nil
	}
	return &v, nil
}

func (c *Console) askInt(label string, current int64) (int64, error) {
	cur := ""
	if current > 0 {
		cur = strconv.FormatInt(current, 10)
	}
	v, err := c.ask(label, cur)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", label, v)
	}
	return n, nil
}

func (c *Console) confirm(question string) bool {
	v, err := c.ask(question+" [y/N]", "")
	if err != nil {
		return false
	}
	v = strings.ToLower(v)
	return v == "y" || v == "yes"
}

func (c *Console) help() {
	fmt.Fprint(c.out, `Commands:
  workers|locations|shifts list [key=value ...]   list with filters, e.g. search=alice page_size=20
  workers|locations|shifts get <id>
  workers|locations|shifts add                    prompts for each field
  workers|locations|shifts update <id>            prompts with current values, enter keeps them
  workers|locations|shifts delete <id>
  export timesheet [key=value ...]                save an xlsx timesheet
  export calendar <worker id>                     save a worker's shifts as .ics
  output table|yaml
  exit
Times are entered as "2006-01-02 15:04" (UTC) or RFC3339.
`)
}
