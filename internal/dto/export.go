package dto

// ExportRequest export scope; dates inclusive
type ExportRequest struct {
	CategoryID string `form:"category_id" binding:"required,uuid"`
	From       string `form:"from"        binding:"omitempty,datetime=2006-01-02"`
	To         string `form:"to"          binding:"omitempty,datetime=2006-01-02"`
}
