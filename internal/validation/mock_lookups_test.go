package validation

import (
	"context"
	"time"

	"github.com/RyanW84/ShiftsLogger-sub001/config"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/model"
)

// ── Mock Lookups ──

type mockLookups struct {
	workers   map[int64]*model.Worker
	locations map[int64]*model.Location
	shifts    map[int64]*model.Shift
	err       error

	overlapCalls int
}

func newMockLookups() *mockLookups {
	return &mockLookups{
		workers:   make(map[int64]*model.Worker),
		locations: make(map[int64]*model.Location),
		shifts:    make(map[int64]*model.Shift),
	}
}

func (m *mockLookups) WorkerExists(_ context.Context, id int64) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.workers[id]
	return ok, nil
}

func (m *mockLookups) EmailTaken(_ context.Context, email string, excludeID int64) (bool, error) {
	for id, w := range m.workers {
		if id != excludeID && w.Email != nil && *w.Email == email {
			return true, nil
		}
	}
	return false, m.err
}

func (m *mockLookups) PhoneTaken(_ context.Context, phone string, excludeID int64) (bool, error) {
	for id, w := range m.workers {
		if id != excludeID && w.Phone != nil && *w.Phone == phone {
			return true, nil
		}
	}
	return false, m.err
}

func (m *mockLookups) LocationExists(_ context.Context, id int64) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.locations[id]
	return ok, nil
}

func (m *mockLookups) LocationNameTaken(_ context.Context, name string, excludeID int64) (bool, error) {
	for id, l := range m.locations {
		if id != excludeID && l.Name == name {
			return true, nil
		}
	}
	return false, m.err
}

func (m *mockLookups) WorkerHasOverlap(_ context.Context, workerID int64, start, end time.Time, excludeID int64) (bool, error) {
	m.overlapCalls++
	for id, s := range m.shifts {
		if id != excludeID && s.WorkerID == workerID && model.Overlaps(s.StartTime, s.EndTime, start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockLookups) LocationHasOverlap(_ context.Context, locationID int64, start, end time.Time, excludeID int64) (bool, error) {
	m.overlapCalls++
	for id, s := range m.shifts {
		if id != excludeID && s.LocationID == locationID && model.Overlaps(s.StartTime, s.EndTime, start, end) {
			return true, nil
		}
	}
	return false, nil
}

// ── 测试辅助 ──

var testNow = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func setupTestValidator() (*Validator, *mockLookups) {
	m := newMockLookups()
	v := New(config.DefaultPolicy(), m, m, m).WithClock(func() time.Time { return testNow })
	return v, m
}

func strPtr(s string) *string { return &s }
