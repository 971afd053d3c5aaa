package model

import "gorm.io/datatypes"

// Session one dated training session (sessions)
// (category_id, session_date, location) is unique so regenerating a window
// never duplicates rows.
type Session struct {
	SessionID   string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"             json:"session_id"`
	CategoryID  string         `gorm:"type:uuid;not null;uniqueIndex:uq_session_slot,priority:1"  json:"category_id"`
	SessionDate datatypes.Date `gorm:"type:date;not null;uniqueIndex:uq_session_slot,priority:2"  json:"session_date"`
	Location    string         `gorm:"type:varchar(100);not null;uniqueIndex:uq_session_slot,priority:3" json:"location"`
	AwayPlace   *string        `gorm:"type:varchar(200)"                                          json:"away_place,omitempty"`
	StartTime   *string        `gorm:"type:time"                                                  json:"start_time,omitempty"`
	EndTime     *string        `gorm:"type:time"                                                  json:"end_time,omitempty"`
	Notes       string         `gorm:"type:text"                                                  json:"notes,omitempty"`
	Version     int            `gorm:"not null;default:1"                                         json:"version"`
	BaseModel

	Category *Category `gorm:"foreignKey:CategoryID;references:CategoryID" json:"category,omitempty"`
}

func (Session) TableName() string { return "sessions" }
