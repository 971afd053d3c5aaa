package model

import "gorm.io/datatypes"

// Event types.
const (
	EventMatch      = "match"
	EventTournament = "tournament"
	EventMeeting    = "meeting"
	EventOther      = "other"
)

// Event match, tournament or club meeting (events)
type Event struct {
	EventID     string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"event_id"`
	CategoryID  *string        `gorm:"type:uuid;index"                                json:"category_id,omitempty"` // NULL: whole club
	Title       string         `gorm:"type:varchar(200);not null"                     json:"title"`
	EventType   string         `gorm:"type:varchar(20);not null;default:'other'"      json:"event_type"`
	EventDate   datatypes.Date `gorm:"type:date;not null;index"                       json:"event_date"`
	StartTime   *string        `gorm:"type:time"                                      json:"start_time,omitempty"`
	Location    string         `gorm:"type:varchar(100)"                              json:"location,omitempty"`
	AwayPlace   *string        `gorm:"type:varchar(200)"                              json:"away_place,omitempty"`
	Opponent    string         `gorm:"type:varchar(100)"                              json:"opponent,omitempty"`
	Description string         `gorm:"type:text"                                      json:"description,omitempty"`
	BaseModel

	Category *Category `gorm:"foreignKey:CategoryID;references:CategoryID" json:"category,omitempty"`
}

func (Event) TableName() string { return "events" }
