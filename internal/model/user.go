package model

// User roles.
const (
	RoleAdmin = "admin"
	RoleCoach = "coach"
	RoleStaff = "staff"
)

// IsValidRole reports whether role is one of the account roles.
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleCoach, RoleStaff:
		return true
	}
	return false
}

// User login account (users)
type User struct {
	UserID             string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name               string `gorm:"type:varchar(100);not null"                     json:"name"`
	Email              string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash       string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role               string `gorm:"type:varchar(20);not null;default:'staff'"      json:"role"`
	MustChangePassword bool   `gorm:"not null;default:false"                         json:"must_change_password"`
	SoftDeleteModel
}

// TableName returns the table name
func (User) TableName() string { return "users" }
