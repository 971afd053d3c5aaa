package dto

// CreatePlayerRequest new player; dates are YYYY-MM-DD
type CreatePlayerRequest struct {
	CategoryID    string `json:"category_id"    binding:"required,uuid"`
	FirstName     string `json:"first_name"     binding:"required,max=100"`
	LastName      string `json:"last_name"      binding:"required,max=100"`
	BirthDate     string `json:"birth_date"     binding:"omitempty,datetime=2006-01-02"`
	Position      string `json:"position"       binding:"omitempty,max=50"`
	JerseyNumber  *int   `json:"jersey_number"  binding:"omitempty,min=1,max=99"`
	Email         string `json:"email"          binding:"omitempty,email"`
	Phone         string `json:"phone"          binding:"omitempty,max=30"`
	MedicalExpiry string `json:"medical_expiry" binding:"omitempty,datetime=2006-01-02"`
}

// UpdatePlayerRequest partial update guarded by version
type UpdatePlayerRequest struct {
	CategoryID    *string `json:"category_id"    binding:"omitempty,uuid"`
	FirstName     *string `json:"first_name"     binding:"omitempty,max=100"`
	LastName      *string `json:"last_name"      binding:"omitempty,max=100"`
	BirthDate     *string `json:"birth_date"     binding:"omitempty,datetime=2006-01-02"`
	Position      *string `json:"position"       binding:"omitempty,max=50"`
	JerseyNumber  *int    `json:"jersey_number"  binding:"omitempty,min=1,max=99"`
	Email         *string `json:"email"          binding:"omitempty,email"`
	Phone         *string `json:"phone"          binding:"omitempty,max=30"`
	MedicalExpiry *string `json:"medical_expiry" binding:"omitempty,datetime=2006-01-02"`
	IsActive      *bool   `json:"is_active"`
	Version       int     `json:"version"        binding:"required,min=1"`
}

// PlayerListRequest list query
type PlayerListRequest struct {
	PaginationRequest
	CategoryID string `form:"category_id" binding:"omitempty,uuid"`
	Keyword    string `form:"keyword"`
	ActiveOnly bool   `form:"active_only"`
}

// PlayerResponse player
type PlayerResponse struct {
	ID             string         `json:"id"`
	Category       *CategoryBrief `json:"category,omitempty"`
	CategoryID     string         `json:"category_id"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	BirthDate      string         `json:"birth_date,omitempty"`
	Position       string         `json:"position,omitempty"`
	JerseyNumber   *int           `json:"jersey_number,omitempty"`
	Email          string         `json:"email,omitempty"`
	Phone          string         `json:"phone,omitempty"`
	MedicalExpiry  string         `json:"medical_expiry,omitempty"`
	MedicalExpired bool           `json:"medical_expired"`
	IsActive       bool           `json:"is_active"`
	Version        int            `json:"version"`
	CreatedAt      string         `json:"created_at"`
}
