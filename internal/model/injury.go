package model

import "gorm.io/datatypes"

// Injury severities.
const (
	SeverityMinor    = "minor"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

// Injury medical record of a player (injuries)
type Injury struct {
	InjuryID       string          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"injury_id"`
	PlayerID       string          `gorm:"type:uuid;not null;index"                       json:"player_id"`
	InjuryDate     datatypes.Date  `gorm:"type:date;not null"                             json:"injury_date"`
	BodyPart       string          `gorm:"type:varchar(100);not null"                     json:"body_part"`
	Description    string          `gorm:"type:text"                                      json:"description,omitempty"`
	Severity       string          `gorm:"type:varchar(20);not null;default:'minor'"      json:"severity"`
	ExpectedReturn *datatypes.Date `gorm:"type:date"                                      json:"expected_return,omitempty"`
	ReturnedAt     *datatypes.Date `gorm:"type:date"                                      json:"returned_at,omitempty"`
	BaseModel

	Player *Player `gorm:"foreignKey:PlayerID;references:PlayerID" json:"player,omitempty"`
}

func (Injury) TableName() string { return "injuries" }

// IsActive the player has not been cleared to return yet.
func (i *Injury) IsActive() bool {
	return i.ReturnedAt == nil
}
