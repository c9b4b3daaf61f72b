package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/RyanW84/ShiftsLogger-sub001/internal/client"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/dto"
)

// ── 结果渲染 ──

// table 把一组记录转为表头与行
type table func() ([]string, [][]string)

// renderReply 成功时按当前格式输出数据，失败时只输出状态与消息
func renderReply[T any](c *Console, reply *client.Reply[T], rows table) error {
	if reply.RequestFailed {
		printFailure(c.out, reply.ResponseCode, reply.Message)
		return nil
	}

	fmt.Fprintln(c.out, reply.Message)
	if rows == nil {
		return nil
	}

	if c.format == "yaml" {
		buf, err := yaml.Marshal(reply.Data)
		if err != nil {
			return fmt.Errorf("yaml 编码失败: %w", err)
		}
		_, err = c.out.Write(buf)
		return err
	}

	header, body := rows()
	if len(body) > 0 {
		printTable(c.out, header, body)
	}
	return nil
}

// renderPage 列表结果附加分页信息
func renderPage[T any](c *Console, reply *client.Reply[[]T], rows table) error {
	if err := renderReply(c, reply, rows); err != nil || reply.RequestFailed {
		return err
	}
	if reply.TotalCount > 0 {
		fmt.Fprintf(c.out, "Page %d of %d (%d total)\n", reply.PageNumber, reply.TotalPages, reply.TotalCount)
	}
	return nil
}

func printFailure(w io.Writer, code int, msg string) {
	fmt.Fprintf(w, "Failed (%d): %s\n", code, msg)
}

func printTable(w io.Writer, header []string, rows [][]string) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	_ = tw.Flush()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

// ── 各实体列定义 ──

func workerTable(items ...dto.WorkerResponse) table {
	return func() ([]string, [][]string) {
		rows := make([][]string, 0, len(items))
		for _, w := range items {
			rows = append(rows, []string{itoa(w.ID), w.Name, deref(w.Email), deref(w.Phone)})
		}
		return []string{"ID", "NAME", "EMAIL", "PHONE"}, rows
	}
}

func locationTable(items ...dto.LocationResponse) table {
	return func() ([]string, [][]string) {
		rows := make([][]string, 0, len(items))
		for _, l := range items {
			rows = append(rows, []string{itoa(l.ID), l.Name, l.Address, l.Town, l.County, l.Postcode, l.Country})
		}
		return []string{"ID", "NAME", "ADDRESS", "TOWN", "COUNTY", "POSTCODE", "COUNTRY"}, rows
	}
}

func shiftTable(items ...dto.ShiftResponse) table {
	return func() ([]string, [][]string) {
		rows := make([][]string, 0, len(items))
		for _, s := range items {
			rows = append(rows, []string{
				itoa(s.ID), s.WorkerName, s.LocationName, s.StartTime, s.EndTime,
				strconv.FormatFloat(s.DurationHours, 'f', 2, 64),
			})
		}
		return []string{"ID", "WORKER", "LOCATION", "START", "END", "HOURS"}, rows
	}
}
