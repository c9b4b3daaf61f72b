package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/RyanW84/ShiftsLogger-sub001/internal/dto"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/model"
	"github.com/RyanW84/ShiftsLogger-sub001/internal/repository"
	"github.com/RyanW84/ShiftsLogger-sub001/pkg/outcome"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	icsContentType  = "text/calendar; charset=utf-8"
	icsProductID    = "-//shifts-logger//shift calendar//EN"
	timesheetSheet  = "Timesheet"
	excelTimeLayout = "2006-01-02 15:04"
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 导出至多一页（dto.MaxPageSize 条）班次
//   - 内容以字节返回，由 Handler 层设置 Content-Type 与 Content-Disposition
type ExportService interface {
	// ExportTimesheet 按过滤条件导出工时表 (.xlsx)，末行为合计
	ExportTimesheet(ctx context.Context, filter *dto.ShiftFilter) outcome.Result[*dto.ExportFile]
	// ExportWorkerCalendar 导出员工班次日历 (.ics)
	ExportWorkerCalendar(ctx context.Context, workerID int64) outcome.Result[*dto.ExportFile]
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger, now: time.Now}
}

// ═══════════════════════════════════════════════════════════
// ExportTimesheet 导出工时表为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - Sheet "Timesheet"
//   - 表头：Shift ID | Worker | Location | Start (UTC) | End (UTC) | Hours
//   - 末行：Total + 工时合计

func (s *exportService) ExportTimesheet(ctx context.Context, filter *dto.ShiftFilter) outcome.Result[*dto.ExportFile] {
	shifts := s.loadShifts(ctx, filter)
	if !shifts.IsSuccess {
		return outcome.FailFrom[*dto.ExportFile](shifts.Outcome)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", timesheetSheet); err != nil {
		return s.exportFailed("timesheet", err)
	}

	f.SetColWidth(timesheetSheet, "A", "A", 10)
	f.SetColWidth(timesheetSheet, "B", "C", 24)
	f.SetColWidth(timesheetSheet, "D", "E", 18)
	f.SetColWidth(timesheetSheet, "F", "F", 10)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	totalStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})

	// 表头
	header := []interface{}{"Shift ID", "Worker", "Location", "Start (UTC)", "End (UTC)", "Hours"}
	if err := f.SetSheetRow(timesheetSheet, "A1", &header); err != nil {
		return s.exportFailed("timesheet", err)
	}
	f.SetCellStyle(timesheetSheet, "A1", "F1", headerStyle)

	// 数据行
	row := 2
	totalMinutes := 0
	for _, sh := range shifts.Data {
		resp := toShiftResponse(sh)
		values := []interface{}{
			sh.ID,
			resp.WorkerName,
			resp.LocationName,
			sh.StartTime.UTC().Format(excelTimeLayout),
			sh.EndTime.UTC().Format(excelTimeLayout),
			resp.DurationHours,
		}
		if err := f.SetSheetRow(timesheetSheet, cell("A", row), &values); err != nil {
			return s.exportFailed("timesheet", err)
		}
		totalMinutes += sh.DurationMinutes
		row++
	}

	// 合计行
	f.SetCellValue(timesheetSheet, cell("A", row), "Total")
	f.SetCellValue(timesheetSheet, cell("F", row), durationHours(totalMinutes))
	f.SetCellStyle(timesheetSheet, cell("A", row), cell("F", row), totalStyle)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return s.exportFailed("timesheet", err)
	}

	return outcome.Success(&dto.ExportFile{
		Filename:    fmt.Sprintf("timesheet_%s.xlsx", s.now().UTC().Format("20060102")),
		ContentType: xlsxContentType,
		Content:     buf.Bytes(),
	}, fmt.Sprintf("Exported %d shift(s)", len(shifts.Data)))
}

// ═══════════════════════════════════════════════════════════
// ExportWorkerCalendar 导出员工班次日历
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportWorkerCalendar(ctx context.Context, workerID int64) outcome.Result[*dto.ExportFile] {
	worker := s.repo.Worker.GetByID(ctx, workerID)
	if !worker.IsSuccess {
		return outcome.FailFrom[*dto.ExportFile](worker.Outcome)
	}

	shifts := s.loadShifts(ctx, &dto.ShiftFilter{WorkerID: workerID})
	if !shifts.IsSuccess {
		return outcome.FailFrom[*dto.ExportFile](shifts.Outcome)
	}

	now := s.now().UTC()
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)
	cal.SetXWRCalName(fmt.Sprintf("Shifts: %s", worker.Data.Name))

	for _, sh := range shifts.Data {
		ev := cal.AddEvent(fmt.Sprintf("shift-%d@shifts-logger", sh.ID))
		ev.SetDtStampTime(now)
		ev.SetStartAt(sh.StartTime.UTC())
		ev.SetEndAt(sh.EndTime.UTC())
		ev.SetModifiedAt(sh.UpdatedAt.UTC())

		locationName := fmt.Sprintf("Location %d", sh.LocationID)
		if sh.Location != nil {
			locationName = sh.Location.Name
			ev.SetLocation(fmt.Sprintf("%s, %s, %s", sh.Location.Address, sh.Location.Town, sh.Location.Postcode))
		}
		ev.SetSummary(fmt.Sprintf("Shift at %s", locationName))
		ev.SetDescription(fmt.Sprintf("%s: %.2f hours", worker.Data.Name, durationHours(sh.DurationMinutes)))
	}

	return outcome.Success(&dto.ExportFile{
		Filename:    fmt.Sprintf("worker_%d_shifts.ics", workerID),
		ContentType: icsContentType,
		Content:     []byte(cal.Serialize()),
	}, fmt.Sprintf("Exported %d shift(s)", len(shifts.Data)))
}

// ── 内部辅助方法 ──

// loadShifts 取第一页（至多 MaxPageSize 条），默认按开始时间升序
func (s *exportService) loadShifts(ctx context.Context, filter *dto.ShiftFilter) outcome.Result[[]model.Shift] {
	f := *filter
	f.PageNumber = 1
	f.PageSize = dto.MaxPageSize
	if f.SortBy == "" {
		f.SortBy = "start_time"
	}

	res := s.repo.Shift.GetAll(ctx, &f)
	return outcome.Map(res, func(p outcome.Page[model.Shift]) []model.Shift {
		if p.TotalCount > int64(len(p.Items)) {
			s.logger.Warn("导出结果已截断",
				zap.Int64("total", p.TotalCount),
				zap.Int("exported", len(p.Items)),
			)
		}
		return p.Items
	})
}

func (s *exportService) exportFailed(kind string, err error) outcome.Result[*dto.ExportFile] {
	s.logger.Error("生成导出文件失败", zap.String("kind", kind), zap.Error(err))
	return outcome.Failure[*dto.ExportFile](fmt.Sprintf("Error exporting %s: %v", kind, err), outcome.StatusInternalError)
}

// cell 返回单元格坐标，如 cell("A", 3) → "A3"
func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
