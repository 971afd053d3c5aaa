package model

// TrainingLocation weekly training slot of a category (training_locations)
type TrainingLocation struct {
	TrainingLocationID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"training_location_id"`
	CategoryID         string `gorm:"type:uuid;not null;index"                       json:"category_id"`
	Location           string `gorm:"type:varchar(100);not null"                     json:"location"`
	Weekday            string `gorm:"type:varchar(20);not null"                      json:"weekday"` // Lunedì … Domenica
	StartTime          string `gorm:"type:time;not null"                             json:"start_time"`
	EndTime            string `gorm:"type:time;not null"                             json:"end_time"`
	BaseModel

	Category *Category `gorm:"foreignKey:CategoryID;references:CategoryID" json:"category,omitempty"`
}

func (TrainingLocation) TableName() string { return "training_locations" }
