package console

import (
	"context"
	"net/url"

	"github.com/RyanW84/ShiftsLogger-sub001/internal/dto"
)

func locationCommands(c *Console) commands {
	return commands{
		newFilter: func() interface{} { return &dto.LocationFilter{} },
		list: func(ctx context.Context, query url.Values) error {
			reply, err := c.api.ListLocations(ctx, query)
			if err != nil {
				return err
			}
			return renderPage(c, reply, locationTable(reply.Data...))
		},
		get: func(ctx context.Context, id int64) error {
			reply, err := c.api.GetLocation(ctx, id)
			if err != nil {
				return err
			}
			return renderReply(c, reply, locationRow(reply.Data))
		},
		add: func(ctx context.Context) error {
			req, err := c.promptLocation(nil)
			if err != nil {
				return err
			}
			reply, err := c.api.CreateLocation(ctx, req)
			if err != nil {
				return err
			}
			return renderReply(c, reply, locationRow(reply.Data))
		},
		update: func(ctx context.Context, id int64) error {
			current, err := c.api.GetLocation(ctx, id)
			if err != nil {
				return err
			}
			if current.RequestFailed {
				return renderReply(c, current, nil)
			}
			req, err := c.promptLocation(current.Data)
			if err != nil {
				return err
			}
			reply, err := c.api.UpdateLocation(ctx, id, (*dto.UpdateLocationRequest)(req))
			if err != nil {
				return err
			}
			return renderReply(c, reply, locationRow(reply.Data))
		},
		remove: func(ctx context.Context, id int64) error {
			reply, err := c.api.DeleteLocation(ctx, id)
			if err != nil {
				return err
			}
			return renderReply(c, reply, nil)
		},
	}
}

func locationRow(l *dto.LocationResponse) table {
	if l == nil {
		return nil
	}
	return locationTable(*l)
}

func (c *Console) promptLocation(current *dto.LocationResponse) (*dto.CreateLocationRequest, error) {
	if current == nil {
		current = &dto.LocationResponse{}
	}

	req := &dto.CreateLocationRequest{}
	fields := []struct {
		label   string
		current string
		dst     *string
	}{
		{"Name", current.Name, &req.Name},
		{"Address", current.Address, &req.Address},
		{"Town", current.Town, &req.Town},
		{"County", current.County, &req.County},
		{"Postcode", current.Postcode, &req.Postcode},
		{"Country", current.Country, &req.Country},
	}
	for _, f := range fields {
		v, err := c.ask(f.label, f.current)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}
	return req, nil
}
