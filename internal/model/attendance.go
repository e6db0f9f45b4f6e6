package model

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)

// swagger:model Attendance
type Attendance struct {
	ID        string           `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ClassID   string           `gorm:"index;type:varchar(36)" json:"classId"`
	StudentID string           `gorm:"index;type:varchar(36)" json:"studentId"`
	Date      string           `gorm:"size:16" json:"date"`
	Status    AttendanceStatus `gorm:"size:16" json:"status"`
}

func (Attendance) TableName() string {
	return "attendance"
}
