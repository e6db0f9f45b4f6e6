package model

import "encoding/json"

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionTrueFalse      QuestionType = "true-false"
	QuestionShortAnswer    QuestionType = "short-answer"
)

// swagger:model Quiz
type Quiz struct {
	ID          string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ClassID     string         `gorm:"index;type:varchar(36)" json:"classId"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	DueDate     string         `gorm:"size:32" json:"dueDate"`
	Duration    int            `json:"duration"` // 分钟
	Points      int            `json:"points"`
	Attempts    int            `json:"attempts"`
	Questions   []QuizQuestion `gorm:"foreignKey:QuizID" json:"questions"`
}

// QuizQuestion 题目 id 只在所属测验内唯一，主键取 (quiz_id, id)
// swagger:model QuizQuestion
type QuizQuestion struct {
	QuizID   string       `gorm:"primaryKey;type:varchar(36)" json:"-"`
	ID       string       `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Question string       `gorm:"type:text" json:"question"`
	Type     QuestionType `gorm:"size:20" json:"type"`
	Options  []string     `gorm:"serializer:json" json:"options,omitempty"`
	// 选择/判断题是选项下标，简答题是字符串，原样透传
	CorrectAnswer json.RawMessage `gorm:"serializer:json" json:"correctAnswer"`
	Points        int             `json:"points"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// TotalPoints 题目分值合计
func (q Quiz) TotalPoints() int {
	total := 0
	for _, question := range q.Questions {
		total += question.Points
	}
	return total
}
