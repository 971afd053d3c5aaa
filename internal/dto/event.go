package dto

// CreateEventRequest new event; empty category means club-wide
type CreateEventRequest struct {
	CategoryID  string  `json:"category_id" binding:"omitempty,uuid"`
	Title       string  `json:"title"       binding:"required,max=200"`
	EventType   string  `json:"event_type"  binding:"omitempty,oneof=match tournament meeting other"`
	EventDate   string  `json:"event_date"  binding:"required,datetime=2006-01-02"`
	StartTime   string  `json:"start_time"`
	Location    string  `json:"location"    binding:"omitempty,max=100"`
	AwayPlace   *string `json:"away_place"  binding:"omitempty,max=200"`
	Opponent    string  `json:"opponent"    binding:"omitempty,max=100"`
	Description string  `json:"description"`
}

// UpdateEventRequest partial update
type UpdateEventRequest struct {
	Title       *string `json:"title"       binding:"omitempty,max=200"`
	EventType   *string `json:"event_type"  binding:"omitempty,oneof=match tournament meeting other"`
	EventDate   *string `json:"event_date"  binding:"omitempty,datetime=2006-01-02"`
	StartTime   *string `json:"start_time"`
	Location    *string `json:"location"    binding:"omitempty,max=100"`
	AwayPlace   *string `json:"away_place"  binding:"omitempty,max=200"`
	Opponent    *string `json:"opponent"    binding:"omitempty,max=100"`
	Description *string `json:"description"`
}

// EventListRequest list query
type EventListRequest struct {
	CategoryID string `form:"category_id" binding:"omitempty,uuid"`
	EventType  string `form:"event_type"  binding:"omitempty,oneof=match tournament meeting other"`
	From       string `form:"from"        binding:"omitempty,datetime=2006-01-02"`
	To         string `form:"to"          binding:"omitempty,datetime=2006-01-02"`
}

// EventResponse event
type EventResponse struct {
	ID          string         `json:"id"`
	CategoryID  *string        `json:"category_id,omitempty"`
	Category    *CategoryBrief `json:"category,omitempty"`
	Title       string         `json:"title"`
	EventType   string         `json:"event_type"`
	EventDate   string         `json:"event_date"`
	StartTime   string         `json:"start_time,omitempty"`
	Location    string         `json:"location,omitempty"`
	AwayPlace   *string        `json:"away_place,omitempty"`
	Opponent    string         `json:"opponent,omitempty"`
	Description string         `json:"description,omitempty"`
}

// ImportEventsRequest fixture feed import; either url or an uploaded file
type ImportEventsRequest struct {
	CategoryID string `form:"category_id" binding:"omitempty,uuid"`
	EventType  string `form:"event_type"  binding:"omitempty,oneof=match tournament meeting other"`
	URL        string `form:"url"         binding:"omitempty,url"`
}

// ImportEventsResponse import outcome
type ImportEventsResponse struct {
	Parsed   int             `json:"parsed"`
	Imported int             `json:"imported"`
	Skipped  int             `json:"skipped"`
	Events   []EventResponse `json:"events"`
}
