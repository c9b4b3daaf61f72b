package console

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/RyanW84/ShiftsLogger-sub001/internal/dto"
)

// inputTimeLayout 交互输入的时间格式，按 UTC 解释
const inputTimeLayout = "2006-01-02 15:04"

func shiftCommands(c *Console) commands {
	return commands{
		newFilter: func() interface{} { return &dto.ShiftFilter{} },
		list: func(ctx context.Context, query url.Values) error {
			reply, err := c.api.ListShifts(ctx, query)
			if err != nil {
				return err
			}
			return renderPage(c, reply, shiftTable(reply.Data...))
		},
		get: func(ctx context.Context, id int64) error {
			reply, err := c.api.GetShift(ctx, id)
			if err != nil {
				return err
			}
			return renderReply(c, reply, shiftRow(reply.Data))
		},
		add: func(ctx context.Context) error {
			req, err := c.promptShift(nil)
			if err != nil {
				return err
			}
			reply, err := c.api.CreateShift(ctx, req)
			if err != nil {
				return err
			}
			return renderReply(c, reply, shiftRow(reply.Data))
		},
		update: func(ctx context.Context, id int64) error {
			current, err := c.api.GetShift(ctx, id)
			if err != nil {
				return err
			}
			if current.RequestFailed {
				return renderReply(c, current, nil)
			}
			req, err := c.promptShift(current.Data)
			if err != nil {
				return err
			}
			reply, err := c.api.UpdateShift(ctx, id, (*dto.UpdateShiftRequest)(req))
			if err != nil {
				return err
			}
			return renderReply(c, reply, shiftRow(reply.Data))
		},
		remove: func(ctx context.Context, id int64) error {
			reply, err := c.api.DeleteShift(ctx, id)
			if err != nil {
				return err
			}
			return renderReply(c, reply, nil)
		},
	}
}

func shiftRow(s *dto.ShiftResponse) table {
	if s == nil {
		return nil
	}
	return shiftTable(*s)
}

func (c *Console) promptShift(current *dto.ShiftResponse) (*dto.CreateShiftRequest, error) {
	if current == nil {
		current = &dto.ShiftResponse{}
	}

	req := &dto.CreateShiftRequest{}
	var err error
	if req.WorkerID, err = c.askInt("Worker ID", current.WorkerID); err != nil {
		return nil, err
	}
	if req.LocationID, err = c.askInt("Location ID", current.LocationID); err != nil {
		return nil, err
	}
	if req.StartTime, err = c.askTime("Start", current.StartTime); err != nil {
		return nil, err
	}
	if req.EndTime, err = c.askTime("End", current.EndTime); err != nil {
		return nil, err
	}
	return req, nil
}

func (c *Console) askTime(label, current string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, current); err == nil {
		current = t.UTC().Format(inputTimeLayout)
	}
	v, err := c.ask(label+" (UTC)", current)
	if err != nil {
		return time.Time{}, err
	}
	return parseTime(v)
}

// parseTime 接受 "2006-01-02 15:04"（UTC）或 RFC3339
func parseTime(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(inputTimeLayout, s, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("time %q must be %q or RFC3339", s, inputTimeLayout)
	}
	return t.UTC(), nil
}
