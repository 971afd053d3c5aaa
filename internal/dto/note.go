package dto

// CreateNoteRequest new note; content is markdown
type CreateNoteRequest struct {
	PlayerID string `json:"player_id" binding:"required,uuid"`
	NoteType string `json:"note_type" binding:"omitempty,oneof=technical medical behavioral general"`
	Content  string `json:"content"   binding:"required,max=10000"`
}

// UpdateNoteRequest partial update
type UpdateNoteRequest struct {
	NoteType *string `json:"note_type" binding:"omitempty,oneof=technical medical behavioral general"`
	Content  *string `json:"content"   binding:"omitempty,max=10000"`
}

// NoteListRequest filter and sort over one player's notes
type NoteListRequest struct {
	PlayerID string `form:"player_id" binding:"required,uuid"`
	NoteType string `form:"note_type" binding:"omitempty,oneof=technical medical behavioral general"`
	AuthorID string `form:"author_id" binding:"omitempty,uuid"`
	Search   string `form:"search"`
	Sort     string `form:"sort"      binding:"omitempty,oneof=newest oldest type"`
}

// NoteResponse note with rendered HTML
type NoteResponse struct {
	ID          string `json:"id"`
	PlayerID    string `json:"player_id"`
	AuthorID    string `json:"author_id"`
	AuthorName  string `json:"author_name,omitempty"`
	NoteType    string `json:"note_type"`
	Content     string `json:"content"`
	ContentHTML string `json:"content_html"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
