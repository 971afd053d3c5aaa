package dto

// CreateInjuryRequest new injury record
type CreateInjuryRequest struct {
	PlayerID       string `json:"player_id"       binding:"required,uuid"`
	InjuryDate     string `json:"injury_date"     binding:"required,datetime=2006-01-02"`
	BodyPart       string `json:"body_part"       binding:"required,max=100"`
	Description    string `json:"description"`
	Severity       string `json:"severity"        binding:"omitempty,oneof=minor moderate severe"`
	ExpectedReturn string `json:"expected_return" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateInjuryRequest partial update
type UpdateInjuryRequest struct {
	InjuryDate     *string `json:"injury_date"     binding:"omitempty,datetime=2006-01-02"`
	BodyPart       *string `json:"body_part"       binding:"omitempty,max=100"`
	Description    *string `json:"description"`
	Severity       *string `json:"severity"        binding:"omitempty,oneof=minor moderate severe"`
	ExpectedReturn *string `json:"expected_return" binding:"omitempty,datetime=2006-01-02"`
}

// MarkReturnedRequest clears a player; date defaults to today
type MarkReturnedRequest struct {
	ReturnedAt string `json:"returned_at" binding:"omitempty,datetime=2006-01-02"`
}

// InjuryListRequest list query
type InjuryListRequest struct {
	PlayerID   string `form:"player_id"   binding:"omitempty,uuid"`
	CategoryID string `form:"category_id" binding:"omitempty,uuid"`
	ActiveOnly bool   `form:"active_only"`
}

// InjuryResponse injury record
type InjuryResponse struct {
	ID             string `json:"id"`
	PlayerID       string `json:"player_id"`
	PlayerName     string `json:"player_name,omitempty"`
	InjuryDate     string `json:"injury_date"`
	BodyPart       string `json:"body_part"`
	Description    string `json:"description,omitempty"`
	Severity       string `json:"severity"`
	ExpectedReturn string `json:"expected_return,omitempty"`
	ReturnedAt     string `json:"returned_at,omitempty"`
	IsActive       bool   `json:"is_active"`
}
