package model

type AssignmentType string

const (
	AssignmentWork     AssignmentType = "assignment"
	AssignmentMaterial AssignmentType = "material"
	AssignmentQuiz     AssignmentType = "quiz"
)

// swagger:model Assignment
type Assignment struct {
	ID          string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ClassID     string         `gorm:"index;type:varchar(36)" json:"classId"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	DueDate     string         `gorm:"size:32" json:"dueDate"`
	Points      int            `json:"points"`
	Type        AssignmentType `gorm:"type:enum('assignment','material','quiz');default:'assignment'" json:"type"`
	Submitted   *bool          `json:"submitted,omitempty"`
	Grade       *int           `json:"grade,omitempty"`
}

func (Assignment) TableName() string {
	return "assignments"
}
