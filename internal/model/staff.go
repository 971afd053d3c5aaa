package model

// Staff roles.
const (
	StaffCoach     = "coach"
	StaffAssistant = "assistant"
	StaffPhysio    = "physio"
	StaffManager   = "manager"
	StaffDoctor    = "doctor"
)

// Staff coaching and support staff (staff)
type Staff struct {
	StaffID    string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"staff_id"`
	CategoryID *string `gorm:"type:uuid;index"                                json:"category_id,omitempty"` // NULL: club-wide
	FirstName  string  `gorm:"type:varchar(100);not null"                     json:"first_name"`
	LastName   string  `gorm:"type:varchar(100);not null"                     json:"last_name"`
	Role       string  `gorm:"type:varchar(20);not null"                      json:"role"`
	Email      string  `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	Phone      string  `gorm:"type:varchar(30)"                               json:"phone,omitempty"`
	SoftDeleteModel

	Category *Category `gorm:"foreignKey:CategoryID;references:CategoryID" json:"category,omitempty"`
}

func (Staff) TableName() string { return "staff" }
