package model

// Attendance statuses.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceInjured = "injured"
	AttendanceExcused = "excused"
)

// Attendance one player's presence at one session (attendance)
type Attendance struct {
	AttendanceID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"               json:"attendance_id"`
	SessionID    string `gorm:"type:uuid;not null;uniqueIndex:uq_attendance,priority:1"      json:"session_id"`
	PlayerID     string `gorm:"type:uuid;not null;uniqueIndex:uq_attendance,priority:2;index" json:"player_id"`
	Status       string `gorm:"type:varchar(20);not null"                                    json:"status"`
	Note         string `gorm:"type:varchar(500)"                                            json:"note,omitempty"`
	BaseModel

	Session *Session `gorm:"foreignKey:SessionID;references:SessionID" json:"session,omitempty"`
	Player  *Player  `gorm:"foreignKey:PlayerID;references:PlayerID"   json:"player,omitempty"`
}

func (Attendance) TableName() string { return "attendance" }
