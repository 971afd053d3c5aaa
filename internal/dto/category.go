package dto

// CreateCategoryRequest new category
type CreateCategoryRequest struct {
	Name      string `json:"name"       binding:"required,min=2,max=100"`
	Code      string `json:"code"       binding:"required,min=1,max=20"`
	SortOrder int    `json:"sort_order"`
}

// UpdateCategoryRequest partial update
type UpdateCategoryRequest struct {
	Name      *string `json:"name"       binding:"omitempty,min=2,max=100"`
	Code      *string `json:"code"       binding:"omitempty,min=1,max=20"`
	SortOrder *int    `json:"sort_order"`
	IsActive  *bool   `json:"is_active"`
}

// CategoryListRequest list query
type CategoryListRequest struct {
	IncludeInactive bool `form:"include_inactive"`
}

// CategoryResponse category with its roster size
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	SortOrder   int    `json:"sort_order"`
	IsActive    bool   `json:"is_active"`
	PlayerCount int64  `json:"player_count"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
