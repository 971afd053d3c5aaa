package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"brixia-rugby/backend/config"
	"brixia-rugby/backend/internal/dto"
	"brixia-rugby/backend/internal/model"
	"brixia-rugby/backend/internal/repository"
	"brixia-rugby/backend/internal/sessiongen"
)

var ErrEventNotFound = errors.New("event not found")

// EventService matches, tournaments and meetings
type EventService interface {
	Create(ctx context.Context, req *dto.CreateEventRequest, callerID string) (*dto.EventResponse, error)
	GetByID(ctx context.Context, id string) (*dto.EventResponse, error)
	List(ctx context.Context, req *dto.EventListRequest) ([]dto.EventResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateEventRequest, callerID string) (*dto.EventResponse, error)
	Delete(ctx context.Context, id string) error
	ImportICS(ctx context.Context, req *dto.ImportEventsRequest, content io.Reader, callerID string) (*dto.ImportEventsResponse, error)
}

type eventService struct {
	repo   *repository.Repository
	logger *zap.Logger
	loc    *time.Location
}

// NewEventService creates an EventService.
func NewEventService(club *config.ClubConfig, repo *repository.Repository, logger *zap.Logger) EventService {
	return &eventService{repo: repo, logger: logger, loc: club.Location()}
}

func (s *eventService) Create(ctx context.Context, req *dto.CreateEventRequest, callerID string) (*dto.EventResponse, error) {
	if req.CategoryID != "" {
		if _, err := s.repo.Category.GetByID(ctx, req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
	}

	date, err := parseDate(req.EventDate)
	if err != nil {
		return nil, err
	}
	start, err := parseOptionalClock(req.StartTime)
	if err != nil {
		return nil, err
	}

	eventType := req.EventType
	if eventType == "" {
		eventType = model.EventOther
	}

	e := &model.Event{
		CategoryID:  strPtr(req.CategoryID),
		Title:       strings.TrimSpace(req.Title),
		EventType:   eventType,
		EventDate:   toDate(date),
		StartTime:   start,
		Location:    normalizeEventLocation(req.Location),
		AwayPlace:   req.AwayPlace,
		Opponent:    req.Opponent,
		Description: req.Description,
	}
	e.CreatedBy = &callerID
	e.UpdatedBy = &callerID

	if err := s.repo.Event.Create(ctx, e); err != nil {
		s.logger.Error("create event failed", zap.Error(err))
		return nil, err
	}
	return toEventResponse(e), nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (*dto.EventResponse, error) {
	e, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEventResponse(e), nil
}

func (s *eventService) List(ctx context.Context, req *dto.EventListRequest) ([]dto.EventResponse, error) {
	from, to, err := parseDateRange(req.From, req.To)
	if err != nil {
		return nil, err
	}

	events, err := s.repo.Event.List(ctx, repository.EventFilter{
		CategoryID: req.CategoryID,
		EventType:  req.EventType,
		From:       from,
		To:         to,
	})
	if err != nil {
		s.logger.Error("list events failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		result = append(result, *toEventResponse(&events[i]))
	}
	return result, nil
}

func (s *eventService) Update(ctx context.Context, id string, req *dto.UpdateEventRequest, callerID string) (*dto.EventResponse, error) {
	e, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		e.Title = strings.TrimSpace(*req.Title)
	}
	if req.EventType != nil {
		e.EventType = *req.EventType
	}
	if req.EventDate != nil {
		d, err := parseDate(*req.EventDate)
		if err != nil {
			return nil, err
		}
		e.EventDate = toDate(d)
	}
	if req.StartTime != nil {
		if e.StartTime, err = parseOptionalClock(*req.StartTime); err != nil {
			return nil, err
		}
	}
	if req.Location != nil {
		e.Location = normalizeEventLocation(*req.Location)
	}
	if req.AwayPlace != nil {
		e.AwayPlace = strPtr(*req.AwayPlace)
	}
	if req.Opponent != nil {
		e.Opponent = *req.Opponent
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	e.UpdatedBy = &callerID

	if err := s.repo.Event.Update(ctx, e); err != nil {
		s.logger.Error("update event failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toEventResponse(e), nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Event.Delete(ctx, id); err != nil {
		s.logger.Error("delete event failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── ImportICS ──────────────────────

// ImportICS creates one event per VEVENT. Fixtures already present with the
// same date and title are skipped so a feed can be imported repeatedly.
func (s *eventService) ImportICS(ctx context.Context, req *dto.ImportEventsRequest, content io.Reader, callerID string) (*dto.ImportEventsResponse, error) {
	if req.CategoryID != "" {
		if _, err := s.repo.Category.GetByID(ctx, req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
	}

	fixtures, err := parseFixtures(content, s.loc)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.Event.List(ctx, repository.EventFilter{CategoryID: req.CategoryID})
	if err != nil {
		s.logger.Error("list events failed", zap.Error(err))
		return nil, err
	}
	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		seen[fixtureKey(time.Time(e.EventDate), e.Title)] = true
	}

	eventType := req.EventType
	if eventType == "" {
		eventType = model.EventMatch
	}

	resp := &dto.ImportEventsResponse{Parsed: len(fixtures), Events: []dto.EventResponse{}}
	for _, fx := range fixtures {
		key := fixtureKey(fx.Date, fx.Title)
		if seen[key] {
			resp.Skipped++
			continue
		}
		seen[key] = true

		location := normalizeEventLocation(fx.Location)
		e := &model.Event{
			CategoryID:  strPtr(req.CategoryID),
			Title:       fx.Title,
			EventType:   eventType,
			EventDate:   toDate(fx.Date),
			StartTime:   fx.StartTime,
			Location:    location,
			Opponent:    fx.Opponent,
			Description: fx.Description,
		}
		if location != "" && !sessiongen.IsHomeLocation(location) {
			e.AwayPlace = strPtr(location)
		}
		e.CreatedBy = &callerID
		e.UpdatedBy = &callerID

		if err := s.repo.Event.Create(ctx, e); err != nil {
			s.logger.Error("import event failed", zap.String("uid", fx.UID), zap.Error(err))
			return nil, err
		}
		resp.Imported++
		resp.Events = append(resp.Events, *toEventResponse(e))
	}

	s.logger.Info("fixtures imported",
		zap.String("category_id", req.CategoryID),
		zap.Int("parsed", resp.Parsed),
		zap.Int("imported", resp.Imported),
		zap.Int("skipped", resp.Skipped),
	)
	return resp, nil
}

func fixtureKey(day time.Time, title string) string {
	return day.Format(dateLayout) + "|" + strings.ToLower(strings.TrimSpace(title))
}

func (s *eventService) get(ctx context.Context, id string) (*model.Event, error) {
	e, err := s.repo.Event.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		s.logger.Error("lookup event failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return e, nil
}

func normalizeEventLocation(raw string) string {
	return sessiongen.NormalizeLocation(strings.TrimSpace(raw))
}

func toEventResponse(e *model.Event) *dto.EventResponse {
	return &dto.EventResponse{
		ID:          e.EventID,
		CategoryID:  e.CategoryID,
		Category:    toCategoryBrief(e.Category),
		Title:       e.Title,
		EventType:   e.EventType,
		EventDate:   formatDate(e.EventDate),
		StartTime:   formatOptionalClock(e.StartTime),
		Location:    e.Location,
		AwayPlace:   e.AwayPlace,
		Opponent:    e.Opponent,
		Description: e.Description,
	}
}
