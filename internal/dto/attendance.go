package dto

// AttendanceRecord one line of a register
type AttendanceRecord struct {
	PlayerID string `json:"player_id" binding:"required,uuid"`
	Status   string `json:"status"    binding:"required,oneof=present absent injured excused"`
	Note     string `json:"note"      binding:"omitempty,max=500"`
}

// RecordAttendanceRequest PUT /sessions/:id/attendance
type RecordAttendanceRequest struct {
	Records []AttendanceRecord `json:"records" binding:"required,min=1,dive"`
}

// AttendanceListRequest filter and sort
type AttendanceListRequest struct {
	CategoryID string `form:"category_id" binding:"omitempty,uuid"`
	PlayerID   string `form:"player_id"   binding:"omitempty,uuid"`
	Status     string `form:"status"      binding:"omitempty,oneof=present absent injured excused"`
	From       string `form:"from"        binding:"omitempty,datetime=2006-01-02"`
	To         string `form:"to"          binding:"omitempty,datetime=2006-01-02"`
	Sort       string `form:"sort"        binding:"omitempty,oneof=date player"`
	Order      string `form:"order"       binding:"omitempty,oneof=asc desc"`
}

// AttendanceSummaryRequest date window for a player summary
type AttendanceSummaryRequest struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to"   binding:"omitempty,datetime=2006-01-02"`
}

// AttendanceResponse register line
type AttendanceResponse struct {
	ID          string `json:"id"`
	SessionID   string `json:"session_id"`
	SessionDate string `json:"session_date,omitempty"`
	PlayerID    string `json:"player_id"`
	PlayerName  string `json:"player_name,omitempty"`
	Status      string `json:"status"`
	Note        string `json:"note,omitempty"`
}

// AttendanceSummaryResponse per-player counters
type AttendanceSummaryResponse struct {
	PlayerID     string  `json:"player_id"`
	PlayerName   string  `json:"player_name"`
	Total        int     `json:"total"`
	Present      int     `json:"present"`
	Absent       int     `json:"absent"`
	Injured      int     `json:"injured"`
	Excused      int     `json:"excused"`
	PresenceRate float64 `json:"presence_rate"` // present / total, 0..1
}
