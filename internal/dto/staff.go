package dto

// CreateStaffRequest new staff member; empty category means club-wide
type CreateStaffRequest struct {
	CategoryID string `json:"category_id" binding:"omitempty,uuid"`
	FirstName  string `json:"first_name"  binding:"required,max=100"`
	LastName   string `json:"last_name"   binding:"required,max=100"`
	Role       string `json:"role"        binding:"required,oneof=coach assistant physio manager doctor"`
	Email      string `json:"email"       binding:"omitempty,email"`
	Phone      string `json:"phone"       binding:"omitempty,max=30"`
}

// UpdateStaffRequest partial update
type UpdateStaffRequest struct {
	CategoryID *string `json:"category_id" binding:"omitempty,uuid"`
	FirstName  *string `json:"first_name"  binding:"omitempty,max=100"`
	LastName   *string `json:"last_name"   binding:"omitempty,max=100"`
	Role       *string `json:"role"        binding:"omitempty,oneof=coach assistant physio manager doctor"`
	Email      *string `json:"email"       binding:"omitempty,email"`
	Phone      *string `json:"phone"       binding:"omitempty,max=30"`
}

// StaffListRequest list query
type StaffListRequest struct {
	CategoryID string `form:"category_id" binding:"omitempty,uuid"`
	Role       string `form:"role"`
}

// StaffResponse staff member
type StaffResponse struct {
	ID         string         `json:"id"`
	CategoryID *string        `json:"category_id,omitempty"`
	Category   *CategoryBrief `json:"category,omitempty"`
	FirstName  string         `json:"first_name"`
	LastName   string         `json:"last_name"`
	Role       string         `json:"role"`
	Email      string         `json:"email,omitempty"`
	Phone      string         `json:"phone,omitempty"`
}
