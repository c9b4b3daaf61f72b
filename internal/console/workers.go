package console

import (
	"context"
	"net/url"

	"github.com/RyanW84/ShiftsLogger-sub001/internal/dto"
)

func workerCommands(c *Console) commands {
	return commands{
		newFilter: func() interface{} { return &dto.WorkerFilter{} },
		list: func(ctx context.Context, query url.Values) error {
			reply, err := c.api.ListWorkers(ctx, query)
			if err != nil {
				return err
			}
			return renderPage(c, reply, workerTable(reply.Data...))
		},
		get: func(ctx context.Context, id int64) error {
			reply, err := c.api.GetWorker(ctx, id)
			if err != nil {
				return err
			}
			return renderReply(c, reply, workerRow(reply.Data))
		},
		add: func(ctx context.Context) error {
			req, err := c.promptWorker(nil)
			if err != nil {
				return err
			}
			reply, err := c.api.CreateWorker(ctx, req)
			if err != nil {
				return err
			}
			return renderReply(c, reply, workerRow(reply.Data))
		},
		update: func(ctx context.Context, id int64) error {
			current, err := c.api.GetWorker(ctx, id)
			if err != nil {
				return err
			}
			if current.RequestFailed {
				return renderReply(c, current, nil)
			}
			req, err := c.promptWorker(current.Data)
			if err != nil {
				return err
			}
			reply, err := c.api.UpdateWorker(ctx, id, (*dto.UpdateWorkerRequest)(req))
			if err != nil {
				return err
			}
			return renderReply(c, reply, workerRow(reply.Data))
		},
		remove: func(ctx context.Context, id int64) error {
			reply, err := c.api.DeleteWorker(ctx, id)
			if err != nil {
				return err
			}
			return renderReply(c, reply, nil)
		},
	}
}

func workerRow(w *dto.WorkerResponse) table {
	if w == nil {
		return nil
	}
	return workerTable(*w)
}

// promptWorker 逐项提示员工字段；current 非空时作为默认值
func (c *Console) promptWorker(current *dto.WorkerResponse) (*dto.CreateWorkerRequest, error) {
	if current == nil {
		current = &dto.WorkerResponse{}
	}

	req := &dto.CreateWorkerRequest{}
	var err error
	if req.Name, err = c.ask("Name", current.Name); err != nil {
		return nil, err
	}
	if req.Email, err = c.askOptional("Email", current.Email); err != nil {
		return nil, err
	}
	if req.Phone, err = c.askOptional("Phone", current.Phone); err != nil {
		return nil, err
	}
	return req, nil
}
