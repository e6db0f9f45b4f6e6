package service

import (
	"math"

	"classboard_backend/internal/model"
	"classboard_backend/internal/repository"
	"classboard_backend/internal/util"
)

// GradeService 教师成绩册。成绩全部来自提交记录，
// 同一份数据集两次生成的成绩册完全一致。
type GradeService struct {
	Repos *repository.Repositories
}

func NewGradeService(repos *repository.Repositories) *GradeService {
	return &GradeService{Repos: repos}
}

// GradeCell 某学生在某次作业上的格子；没提交或没批改时 Grade 为空
type GradeCell struct {
	AssignmentID string `json:"assignmentId"`
	Grade        *int   `json:"grade"`
	Points       int    `json:"points"`
}

// StudentGrades 成绩册的一行。Average 是已批改作业的百分比均值，
// 一门都没批改时为空。
type StudentGrades struct {
	Student model.Student `json:"student"`
	Grades  []GradeCell   `json:"grades"`
	Average *int          `json:"average"`
}

// Gradebook 列是计分作业，行是学生
type Gradebook struct {
	ClassID     string             `json:"classId"`
	Assignments []model.Assignment `json:"assignments"`
	Rows        []StudentGrades    `json:"rows"`
}

func (s *GradeService) Gradebook(classID string) (*Gradebook, error) {
	if _, err := s.Repos.Classes.FindByID(classID); err != nil {
		if err == repository.ErrNotFound {
			return nil, util.ErrClassNotFound
		}
		return nil, err
	}

	assignments, err := s.Repos.Assignments.ForClass(classID)
	if err != nil {
		return nil, err
	}

	// 材料类条目不计分，不进成绩册
	graded := make([]model.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if a.Points > 0 {
			graded = append(graded, a)
		}
	}

	students, err := s.Repos.Students.All()
	if err != nil {
		return nil, err
	}

	rows := make([]StudentGrades, 0, len(students))
	for _, student := range students {
		cells := make([]GradeCell, 0, len(graded))
		var percentSum float64
		gradedCount := 0

		for _, assignment := range graded {
			cell := GradeCell{
				AssignmentID: assignment.ID,
				Points:       assignment.Points,
			}

			submission, err := s.Repos.Submissions.FindByAssignmentAndStudent(assignment.ID, student.ID)
			if err == nil && submission.Grade != nil {
				cell.Grade = submission.Grade
				percentSum += float64(*submission.Grade) / float64(assignment.Points) * 100
				gradedCount++
			} else if err != nil && err != repository.ErrNotFound {
				return nil, err
			}

			cells = append(cells, cell)
		}

		row := StudentGrades{
			Student: student,
			Grades:  cells,
		}
		if gradedCount > 0 {
			avg := int(math.Round(percentSum / float64(gradedCount)))
			row.Average = &avg
		}
		rows = append(rows, row)
	}

	return &Gradebook{
		ClassID:     classID,
		Assignments: graded,
		Rows:        rows,
	}, nil
}
