package model

// swagger:model Submission
type Submission struct {
	ID            string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	AssignmentID  string `gorm:"index;type:varchar(36)" json:"assignmentId"`
	StudentID     string `gorm:"index;type:varchar(36)" json:"studentId"`
	StudentName   string `gorm:"size:100" json:"studentName"`
	StudentAvatar string `gorm:"size:255" json:"studentAvatar"`
	SubmittedAt   string `gorm:"size:32" json:"submittedAt"`
	Content       string `gorm:"type:text" json:"content"`
	// 未批改的提交没有分数
	Grade    *int   `json:"grade,omitempty"`
	Feedback string `gorm:"type:text" json:"feedback,omitempty"`
}

func (Submission) TableName() string {
	return "submissions"
}
