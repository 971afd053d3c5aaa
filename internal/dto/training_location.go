package dto

// CreateTrainingLocationRequest weekly slot; weekday is the Italian name
// ("Martedì"), times are HH:MM.
type CreateTrainingLocationRequest struct {
	Location  string `json:"location"   binding:"required,max=100"`
	Weekday   string `json:"weekday"    binding:"required"`
	StartTime string `json:"start_time" binding:"omitempty"`
	EndTime   string `json:"end_time"   binding:"omitempty"`
}

// UpdateTrainingLocationRequest partial update
type UpdateTrainingLocationRequest struct {
	Location  *string `json:"location"   binding:"omitempty,max=100"`
	Weekday   *string `json:"weekday"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

// TrainingLocationResponse slot
type TrainingLocationResponse struct {
	ID           string `json:"id"`
	CategoryID   string `json:"category_id"`
	Location     string `json:"location"`
	Weekday      string `json:"weekday"`
	WeekdayIndex int    `json:"weekday_index"` // 0 = Monday
	StartTime    string `json:"start_time,omitempty"`
	EndTime      string `json:"end_time,omitempty"`
	IsHome       bool   `json:"is_home"`
}
