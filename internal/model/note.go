package model

// Note types.
const (
	NoteTechnical  = "technical"
	NoteMedical    = "medical"
	NoteBehavioral = "behavioral"
	NoteGeneral    = "general"
)

// Note free-form staff note about a player (notes)
type Note struct {
	NoteID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"note_id"`
	PlayerID string `gorm:"type:uuid;not null;index"                       json:"player_id"`
	AuthorID string `gorm:"type:uuid;not null"                             json:"author_id"`
	NoteType string `gorm:"type:varchar(20);not null;default:'general'"    json:"note_type"`
	Content  string `gorm:"type:text;not null"                             json:"content"` // markdown
	BaseModel

	Player *Player `gorm:"foreignKey:PlayerID;references:PlayerID" json:"player,omitempty"`
	Author *User   `gorm:"foreignKey:AuthorID;references:UserID"   json:"author,omitempty"`
}

func (Note) TableName() string { return "notes" }
