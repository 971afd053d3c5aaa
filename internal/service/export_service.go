package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"brixia-rugby/backend/config"
	"brixia-rugby/backend/internal/dto"
	"brixia-rugby/backend/internal/model"
	"brixia-rugby/backend/internal/repository"
)

var (
	ErrExportNoPlayers    = errors.New("category has no active players")
	ErrExportGenerateFail = errors.New("failed to generate export file")
)

const (
	defaultSessionLength = 90 * time.Minute
	defaultEventLength   = 2 * time.Hour
)

// ExportService file exports. Each method returns the file body and a
// suggested filename; the handler sets the response headers.
type ExportService interface {
	AttendanceCSV(ctx context.Context, req *dto.ExportRequest) (*bytes.Buffer, string, error)
	RosterXLSX(ctx context.Context, categoryID string) (*bytes.Buffer, string, error)
	CalendarICS(ctx context.Context, req *dto.ExportRequest) (*bytes.Buffer, string, error)
}

type exportService struct {
	club   *config.ClubConfig
	repo   *repository.Repository
	logger *zap.Logger
	loc    *time.Location
	now    func() time.Time
}

// NewExportService creates an ExportService.
func NewExportService(club *config.ClubConfig, repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{
		club:   club,
		repo:   repo,
		logger: logger,
		loc:    club.Location(),
		now:    time.Now,
	}
}

// ═══════════════════════════════════════════════════════════
// AttendanceCSV: player × session register
// ═══════════════════════════════════════════════════════════
//
// One row per active player, one column per session date, then the present
// count and the presence rate over the sessions that have a mark.

func (s *exportService) AttendanceCSV(ctx context.Context, req *dto.ExportRequest) (*bytes.Buffer, string, error) {
	cat, err := s.category(ctx, req.CategoryID)
	if err != nil {
		return nil, "", err
	}
	from, to, err := parseDateRange(req.From, req.To)
	if err != nil {
		return nil, "", err
	}

	players, err := s.repo.Player.ListByCategory(ctx, cat.CategoryID)
	if err != nil {
		s.logger.Error("load roster failed", zap.Error(err))
		return nil, "", err
	}
	if len(players) == 0 {
		return nil, "", ErrExportNoPlayers
	}

	sessions, err := s.repo.Session.ListAll(ctx, repository.SessionFilter{CategoryID: cat.CategoryID, From: from, To: to})
	if err != nil {
		s.logger.Error("load sessions failed", zap.Error(err))
		return nil, "", err
	}
	marks, err := s.repo.Attendance.List(ctx, repository.AttendanceFilter{CategoryID: cat.CategoryID, From: from, To: to})
	if err != nil {
		s.logger.Error("load attendance failed", zap.Error(err))
		return nil, "", err
	}

	// "sessionID:playerID" → status
	index := make(map[string]string, len(marks))
	for _, m := range marks {
		index[m.SessionID+":"+m.PlayerID] = m.Status
	}

	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)

	header := []string{"player"}
	for _, sess := range sessions {
		header = append(header, formatDate(sess.SessionDate)+" "+sess.Location)
	}
	header = append(header, "present", "rate")
	if err := w.Write(header); err != nil {
		return nil, "", ErrExportGenerateFail
	}

	for _, p := range players {
		row := []string{p.FullName()}
		present, marked := 0, 0
		for _, sess := range sessions {
			status := index[sess.SessionID+":"+p.PlayerID]
			if status != "" {
				marked++
			}
			if status == model.AttendancePresent {
				present++
			}
			row = append(row, status)
		}
		rate := 0.0
		if marked > 0 {
			rate = float64(present) / float64(marked)
		}
		row = append(row, strconv.Itoa(present), strconv.FormatFloat(rate, 'f', 2, 64))
		if err := w.Write(row); err != nil {
			return nil, "", ErrExportGenerateFail
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		s.logger.Error("write csv failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, fmt.Sprintf("attendance_%s.csv", cat.Code), nil
}

// ═══════════════════════════════════════════════════════════
// RosterXLSX: category roster sheet
// ═══════════════════════════════════════════════════════════

func (s *exportService) RosterXLSX(ctx context.Context, categoryID string) (*bytes.Buffer, string, error) {
	cat, err := s.category(ctx, categoryID)
	if err != nil {
		return nil, "", err
	}
	players, err := s.repo.Player.ListByCategory(ctx, cat.CategoryID)
	if err != nil {
		s.logger.Error("load roster failed", zap.Error(err))
		return nil, "", err
	}
	if len(players) == 0 {
		return nil, "", ErrExportNoPlayers
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := cat.Code
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headers := []string{"#", "Last name", "First name", "Position", "Birth date", "Medical expiry", "Email", "Phone"}
	widths := []float64{6, 20, 20, 16, 14, 16, 28, 16}
	for i, w := range widths {
		f.SetColWidth(sheet, colName(i), colName(i), w)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	expiredStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "#C00000", Bold: true},
	})

	// title
	f.SetCellValue(sheet, "A1", fmt.Sprintf("%s · %s", s.club.Name, cat.Name))
	f.MergeCell(sheet, "A1", cell(colName(len(headers)-1), 1))
	f.SetCellStyle(sheet, "A1", "A1", headerStyle)

	row := 2
	for i, h := range headers {
		f.SetCellValue(sheet, cell(colName(i), row), h)
	}
	f.SetCellStyle(sheet, cell("A", row), cell(colName(len(headers)-1), row), headerStyle)

	today := toDate(s.now().In(s.loc))
	for _, p := range players {
		row++
		if p.JerseyNumber != nil {
			f.SetCellValue(sheet, cell("A", row), *p.JerseyNumber)
		}
		f.SetCellValue(sheet, cell("B", row), p.LastName)
		f.SetCellValue(sheet, cell("C", row), p.FirstName)
		f.SetCellValue(sheet, cell("D", row), p.Position)
		f.SetCellValue(sheet, cell("E", row), formatOptionalDate(p.BirthDate))
		f.SetCellValue(sheet, cell("F", row), formatOptionalDate(p.MedicalExpiry))
		f.SetCellValue(sheet, cell("G", row), p.Email)
		f.SetCellValue(sheet, cell("H", row), p.Phone)
		if p.MedicalExpiry == nil || time.Time(*p.MedicalExpiry).Before(time.Time(today)) {
			f.SetCellStyle(sheet, cell("F", row), cell("F", row), expiredStyle)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write xlsx failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	return buf, fmt.Sprintf("roster_%s.xlsx", cat.Code), nil
}

// ═══════════════════════════════════════════════════════════
// CalendarICS: sessions and events as an iCalendar feed
// ═══════════════════════════════════════════════════════════

func (s *exportService) CalendarICS(ctx context.Context, req *dto.ExportRequest) (*bytes.Buffer, string, error) {
	cat, err := s.category(ctx, req.CategoryID)
	if err != nil {
		return nil, "", err
	}
	from, to, err := parseDateRange(req.From, req.To)
	if err != nil {
		return nil, "", err
	}

	sessions, err := s.repo.Session.ListAll(ctx, repository.SessionFilter{CategoryID: cat.CategoryID, From: from, To: to})
	if err != nil {
		s.logger.Error("load sessions failed", zap.Error(err))
		return nil, "", err
	}
	events, err := s.repo.Event.List(ctx, repository.EventFilter{CategoryID: cat.CategoryID, From: from, To: to})
	if err != nil {
		s.logger.Error("load events failed", zap.Error(err))
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//" + s.club.Name + "//Calendar//EN")
	cal.SetXWRCalName(fmt.Sprintf("%s %s", s.club.Name, cat.Name))
	cal.SetXWRTimezone(s.loc.String())

	stamp := s.now().UTC()
	for _, sess := range sessions {
		evt := cal.AddEvent("session-" + sess.SessionID)
		evt.SetDtStampTime(stamp)
		evt.SetSummary(fmt.Sprintf("Training %s", cat.Name))
		evt.SetLocation(sessionPlace(sess.Location, sess.AwayPlace))
		if sess.Notes != "" {
			evt.SetDescription(sess.Notes)
		}
		s.setWhen(evt, sess.SessionDate, sess.StartTime, sess.EndTime, defaultSessionLength)
	}
	for _, e := range events {
		evt := cal.AddEvent("event-" + e.EventID)
		evt.SetDtStampTime(stamp)
		summary := e.Title
		if e.Opponent != "" && !strings.Contains(strings.ToLower(summary), strings.ToLower(e.Opponent)) {
			summary += " vs " + e.Opponent
		}
		evt.SetSummary(summary)
		if place := sessionPlace(e.Location, e.AwayPlace); place != "" {
			evt.SetLocation(place)
		}
		if e.Description != "" {
			evt.SetDescription(e.Description)
		}
		s.setWhen(evt, e.EventDate, e.StartTime, nil, defaultEventLength)
	}

	buf := bytes.NewBufferString(cal.Serialize())
	return buf, fmt.Sprintf("calendar_%s.ics", cat.Code), nil
}

// setWhen writes a timed event in the club timezone, or an all-day one when
// no start time is known.
func (s *exportService) setWhen(evt *ics.VEvent, day datatypes.Date, start, end *string, fallback time.Duration) {
	d := time.Time(day)
	if start == nil {
		allDay := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, s.loc)
		evt.SetAllDayStartAt(allDay)
		evt.SetAllDayEndAt(allDay.AddDate(0, 0, 1))
		return
	}

	begin := s.at(d, *start)
	finish := begin.Add(fallback)
	if end != nil {
		if t := s.at(d, *end); t.After(begin) {
			finish = t
		}
	}
	evt.SetStartAt(begin)
	evt.SetEndAt(finish)
}

// at combines a calendar day with a TIME column value in the club zone.
func (s *exportService) at(day time.Time, clock string) time.Time {
	c, err := time.Parse("15:04:05", clock)
	if err != nil {
		c, _ = time.Parse("15:04", clock)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour(), c.Minute(), 0, 0, s.loc)
}

func (s *exportService) category(ctx context.Context, id string) (*model.Category, error) {
	cat, err := s.repo.Category.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return cat, nil
}

// ── helpers ──

func sessionPlace(location string, away *string) string {
	if away != nil && *away != "" && *away != location {
		return location + " (" + *away + ")"
	}
	return location
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
