package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/RyanW84/ShiftsLogger-sub001/internal/dto"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/model"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/repository"
	"github.com/RyanW84/ShiftsLogger-sub001/pkg/outcome"
)

var testNow = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

// ── Mock WorkerRepository ──

type mockWorkerRepo struct {
	workers map[int64]*model.Worker
	nextID  int64
}

func newMockWorkerRepo() *mockWorkerRepo {
	return &mockWorkerRepo{workers: make(map[int64]*model.Worker), nextID: 1}
}

func (m *mockWorkerRepo) add(w *model.Worker) *model.Worker {
	if w.ID == 0 {
		w.ID = m.nextID
		m.nextID++
	}
	m.workers[w.ID] = w
	return w
}

func (m *mockWorkerRepo) GetAll(_ context.Context, filter *dto.WorkerFilter) outcome.Result[outcome.Page[model.Worker]] {
	filter.ValidatePagination()
	items := make([]model.Worker, 0, len(m.workers))
	for _, w := range m.workers {
		items = append(items, *w)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return outcome.Success(outcome.Page[model.Worker]{
		Items:      items,
		TotalCount: int64(len(items)),
		PageNumber: filter.PageNumber,
		PageSize:   filter.PageSize,
	}, fmt.Sprintf("Found %d worker(s)", len(items)))
}

func (m *mockWorkerRepo) GetByID(_ context.Context, id int64) outcome.Result[*model.Worker] {
	if w, ok := m.workers[id]; ok {
		return outcome.Success(w, "Worker retrieved successfully")
	}
	return outcome.NotFoundOf[*model.Worker](fmt.Sprintf("Worker with ID %d not found", id))
}

func (m *mockWorkerRepo) Create(_ context.Context, req *dto.CreateWorkerRequest) outcome.Result[*model.Worker] {
	w := m.add(&model.Worker{Name: req.Name, Email: req.Email, Phone: req.Phone})
	return outcome.Created(w, "Worker created successfully")
}

func (m *mockWorkerRepo) Update(_ context.Context, id int64, req *dto.UpdateWorkerRequest) outcome.Result[*model.Worker] {
	w, ok := m.workers[id]
	if !ok {
		return outcome.NotFoundOf[*model.Worker](fmt.Sprintf("Worker with ID %d not found", id))
	}
	w.Name, w.Email, w.Phone = req.Name, req.Email, req.Phone
	return outcome.Success(w, "Worker updated successfully")
}

func (m *mockWorkerRepo) Delete(_ context.Context, id int64) outcome.Outcome {
	if _, ok := m.workers[id]; !ok {
		return outcome.NotFound(fmt.Sprintf("Worker with ID %d not found", id))
	}
	delete(m.workers, id)
	return outcome.NoContent("Worker deleted successfully")
}

// ── Mock LocationRepository ──

type mockLocationRepo struct {
	locations map[int64]*model.Location
	nextID    int64
}

func newMockLocationRepo() *mockLocationRepo {
	return &mockLocationRepo{locations: make(map[int64]*model.Location), nextID: 1}
}

func (m *mockLocationRepo) add(loc *model.Location) *model.Location {
	if loc.ID == 0 {
		loc.ID = m.nextID
		m.nextID++
	}
	m.locations[loc.ID] = loc
	return loc
}

func (m *mockLocationRepo) GetAll(_ context.Context, filter *dto.LocationFilter) outcome.Result[outcome.Page[model.Location]] {
	filter.ValidatePagination()
	items := make([]model.Location, 0, len(m.locations))
	for _, loc := range m.locations {
		items = append(items, *loc)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return outcome.Success(outcome.Page[model.Location]{
		Items:      items,
		TotalCount: int64(len(items)),
		PageNumber: filter.PageNumber,
		PageSize:   filter.PageSize,
	}, "")
}

func (m *mockLocationRepo) GetByID(_ context.Context, id int64) outcome.Result[*model.Location] {
	if loc, ok := m.locations[id]; ok {
		return outcome.Success(loc, "Location retrieved successfully")
	}
	return outcome.NotFoundOf[*model.Location](fmt.Sprintf("Location with ID %d not found", id))
}

func (m *mockLocationRepo) Create(_ context.Context, req *dto.CreateLocationRequest) outcome.Result[*model.Location] {
	for _, loc := range m.locations {
		if loc.Name == req.Name {
			return outcome.FailFrom[*model.Location](outcome.Conflict(fmt.Sprintf("A location named %s already exists", req.Name)))
		}
	}
	loc := m.add(&model.Location{
		Name: req.Name, Address: req.Address, Town: req.Town,
		County: req.County, Postcode: req.Postcode, Country: req.Country,
	})
	return outcome.Created(loc, "Location created successfully")
}

func (m *mockLocationRepo) Update(_ context.Context, id int64, req *dto.UpdateLocationRequest) outcome.Result[*model.Location] {
	loc, ok := m.locations[id]
	if !ok {
		return outcome.NotFoundOf[*model.Location](fmt.Sprintf("Location with ID %d not found", id))
	}
	loc.Name, loc.Address, loc.Town = req.Name, req.Address, req.Town
	loc.County, loc.Postcode, loc.Country = req.County, req.Postcode, req.Country
	return outcome.Success(loc, "Location updated successfully")
}

func (m *mockLocationRepo) Delete(_ context.Context, id int64) outcome.Outcome {
	if _, ok := m.locations[id]; !ok {
		return outcome.NotFound(fmt.Sprintf("Location with ID %d not found", id))
	}
	delete(m.locations, id)
	return outcome.NoContent("Location deleted successfully")
}

// ── Mock ShiftRepository ──

type mockShiftRepo struct {
	shifts     map[int64]*model.Shift
	nextID     int64
	lastFilter *dto.ShiftFilter
	failWith   *outcome.Outcome
}

func newMockShiftRepo() *mockShiftRepo {
	return &mockShiftRepo{shifts: make(map[int64]*model.Shift), nextID: 1}
}

func (m *mockShiftRepo) add(s *model.Shift) *model.Shift {
	if s.ID == 0 {
		s.ID = m.nextID
		m.nextID++
	}
	s.DurationMinutes = int(s.EndTime.Sub(s.StartTime) / time.Minute)
	m.shifts[s.ID] = s
	return s
}

func (m *mockShiftRepo) GetAll(_ context.Context, filter *dto.ShiftFilter) outcome.Result[outcome.Page[model.Shift]] {
	m.lastFilter = filter
	if m.failWith != nil {
		return outcome.FailFrom[outcome.Page[model.Shift]](*m.failWith)
	}
	filter.ValidatePagination()
	items := make([]model.Shift, 0, len(m.shifts))
	for _, s := range m.shifts {
		if filter.WorkerID != 0 && s.WorkerID != filter.WorkerID {
			continue
		}
		items = append(items, *s)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].StartTime.Before(items[j].StartTime) })
	return outcome.Success(outcome.Page[model.Shift]{
		Items:      items,
		TotalCount: int64(len(items)),
		PageNumber: filter.PageNumber,
		PageSize:   filter.PageSize,
	}, "")
}

func (m *mockShiftRepo) GetByID(_ context.Context, id int64) outcome.Result[*model.Shift] {
	if s, ok := m.shifts[id]; ok {
		return outcome.Success(s, "Shift retrieved successfully")
	}
	return outcome.NotFoundOf[*model.Shift](fmt.Sprintf("Shift with ID %d not found", id))
}

func (m *mockShiftRepo) Create(_ context.Context, req *dto.CreateShiftRequest) outcome.Result[*model.Shift] {
	if !req.StartTime.Before(req.EndTime) {
		return outcome.FailFrom[*model.Shift](outcome.BadRequest("Start time must be before end time"))
	}
	s := m.add(&model.Shift{
		WorkerID: req.WorkerID, LocationID: req.LocationID,
		StartTime: req.StartTime, EndTime: req.EndTime,
	})
	return outcome.Created(s, "Shift created successfully")
}

func (m *mockShiftRepo) Update(_ context.Context, id int64, req *dto.UpdateShiftRequest) outcome.Result[*model.Shift] {
	s, ok := m.shifts[id]
	if !ok {
		return outcome.NotFoundOf[*model.Shift](fmt.Sprintf("Shift with ID %d not found", id))
	}
	s.WorkerID, s.LocationID, s.StartTime, s.EndTime = req.WorkerID, req.LocationID, req.StartTime, req.EndTime
	m.add(s)
	return outcome.Success(s, "Shift updated successfully")
}

func (m *mockShiftRepo) Delete(_ context.Context, id int64) outcome.Outcome {
	if _, ok := m.shifts[id]; !ok {
		return outcome.NotFound(fmt.Sprintf("Shift with ID %d not found", id))
	}
	delete(m.shifts, id)
	return outcome.NoContent("Shift deleted successfully")
}

// ── 测试辅助 ──

type mockRepos struct {
	worker   *mockWorkerRepo
	location *mockLocationRepo
	shift    *mockShiftRepo
}

func newMockRepository() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		worker:   newMockWorkerRepo(),
		location: newMockLocationRepo(),
		shift:    newMockShiftRepo(),
	}
	return &repository.Repository{
		Worker:   m.worker,
		Location: m.location,
		Shift:    m.shift,
	}, m
}

func strPtr(s string) *string { return &s }
