package dto

// GenerateSessionsRequest bulk session creation from the category slots.
// Mode defaults to the club setting, reference_date to today.
type GenerateSessionsRequest struct {
	CategoryID    string `json:"category_id"    binding:"required,uuid"`
	Mode          string `json:"mode"           binding:"omitempty,oneof=single weekly biweekly monthly"`
	ReferenceDate string `json:"reference_date" binding:"omitempty,datetime=2006-01-02"`
}

// SessionDraftResponse one computed session
type SessionDraftResponse struct {
	CategoryID  string  `json:"category_id"`
	SessionDate string  `json:"session_date"`
	Location    string  `json:"location"`
	AwayPlace   *string `json:"away_place"`
	StartTime   string  `json:"start_time,omitempty"`
	EndTime     string  `json:"end_time,omitempty"`
}

// GenerateSessionsResponse generation outcome; skipped sessions already existed
type GenerateSessionsResponse struct {
	Mode      string                 `json:"mode"`
	Generated int                    `json:"generated"`
	Inserted  int                    `json:"inserted"`
	Skipped   int                    `json:"skipped"`
	Sessions  []SessionDraftResponse `json:"sessions"`
}

// CreateSessionRequest one manual session
type CreateSessionRequest struct {
	CategoryID  string  `json:"category_id"  binding:"required,uuid"`
	SessionDate string  `json:"session_date" binding:"required,datetime=2006-01-02"`
	Location    string  `json:"location"     binding:"required,max=100"`
	AwayPlace   *string `json:"away_place"   binding:"omitempty,max=200"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Notes       string  `json:"notes"`
}

// UpdateSessionRequest partial update guarded by version
type UpdateSessionRequest struct {
	SessionDate *string `json:"session_date" binding:"omitempty,datetime=2006-01-02"`
	Location    *string `json:"location"     binding:"omitempty,max=100"`
	AwayPlace   *string `json:"away_place"   binding:"omitempty,max=200"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Notes       *string `json:"notes"`
	Version     int     `json:"version"      binding:"required,min=1"`
}

// SessionListRequest list query, dates inclusive
type SessionListRequest struct {
	PaginationRequest
	CategoryID string `form:"category_id" binding:"omitempty,uuid"`
	From       string `form:"from"        binding:"omitempty,datetime=2006-01-02"`
	To         string `form:"to"          binding:"omitempty,datetime=2006-01-02"`
}

// SessionResponse session
type SessionResponse struct {
	ID          string         `json:"id"`
	CategoryID  string         `json:"category_id"`
	Category    *CategoryBrief `json:"category,omitempty"`
	SessionDate string         `json:"session_date"`
	Weekday     string         `json:"weekday"`
	Location    string         `json:"location"`
	AwayPlace   *string        `json:"away_place"`
	StartTime   string         `json:"start_time,omitempty"`
	EndTime     string         `json:"end_time,omitempty"`
	Notes       string         `json:"notes,omitempty"`
	Version     int            `json:"version"`
	CreatedAt   string         `json:"created_at"`
}
