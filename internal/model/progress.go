package model

// Progress 以 (student_id, class_id) 为主键的学习进度快照
// swagger:model Progress
type Progress struct {
	StudentID            string `gorm:"primaryKey;type:varchar(36)" json:"studentId"`
	ClassID              string `gorm:"primaryKey;type:varchar(36)" json:"classId"`
	CompletedAssignments int    `json:"completedAssignments"`
	TotalAssignments     int    `json:"totalAssignments"`
	AverageGrade         int    `json:"averageGrade"`
	Attendance           int    `json:"attendance"`
	LastActive           string `gorm:"size:32" json:"lastActive"`
}

func (Progress) TableName() string {
	return "progress"
}
