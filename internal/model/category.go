package model

// Category age group / team (U14, U16, Seniores …) (categories)
type Category struct {
	CategoryID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"category_id"`
	Name       string `gorm:"type:varchar(100);not null"                     json:"name"`
	Code       string `gorm:"type:varchar(20);not null;uniqueIndex"          json:"code"`
	SortOrder  int    `gorm:"not null;default:0"                             json:"sort_order"`
	IsActive   bool   `gorm:"not null;default:true"                          json:"is_active"`
	SoftDeleteModel

	TrainingLocations []TrainingLocation `gorm:"foreignKey:CategoryID;references:CategoryID" json:"training_locations,omitempty"`
}

func (Category) TableName() string { return "categories" }
