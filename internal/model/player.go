package model

import "gorm.io/datatypes"

// Player rostered athlete (players)
type Player struct {
	PlayerID       string          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"player_id"`
	CategoryID     string          `gorm:"type:uuid;not null;index"                       json:"category_id"`
	FirstName      string          `gorm:"type:varchar(100);not null"                     json:"first_name"`
	LastName       string          `gorm:"type:varchar(100);not null"                     json:"last_name"`
	BirthDate      *datatypes.Date `gorm:"type:date"                                      json:"birth_date,omitempty"`
	Position       string          `gorm:"type:varchar(50)"                               json:"position,omitempty"`
	JerseyNumber   *int            `gorm:"type:smallint"                                  json:"jersey_number,omitempty"`
	Email          string          `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	Phone          string          `gorm:"type:varchar(30)"                               json:"phone,omitempty"`
	MedicalExpiry  *datatypes.Date `gorm:"type:date"                                      json:"medical_expiry,omitempty"` // certificato medico
	IsActive       bool            `gorm:"not null;default:true"                          json:"is_active"`
	VersionedModel

	Category *Category `gorm:"foreignKey:CategoryID;references:CategoryID" json:"category,omitempty"`
}

// TableName returns the table name
func (Player) TableName() string { return "players" }

// FullName "Last First", the order rosters are printed in.
func (p *Player) FullName() string {
	return p.LastName + " " + p.FirstName
}
