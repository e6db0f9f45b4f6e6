package service

import (
	"math"
	"sort"

	"classboard_backend/internal/model"
	"classboard_backend/internal/repository"
	"classboard_backend/internal/util"
)

// AnalyticsService 班级分析页的聚合计算，全部由提交、出勤、进度记录推导
type AnalyticsService struct {
	Repos *repository.Repositories
}

func NewAnalyticsService(repos *repository.Repositories) *AnalyticsService {
	return &AnalyticsService{Repos: repos}
}

// AssignmentStat 单次作业的提交率与已批改均分
type AssignmentStat struct {
	AssignmentID string `json:"assignmentId"`
	Title        string `json:"title"`
	Submitted    int    `json:"submitted"`
	Total        int    `json:"total"`
	Rate         int    `json:"rate"`
	AvgGrade     *int   `json:"avgGrade"`
}

// GradeBand 成绩分布的一档
type GradeBand struct {
	Label   string `json:"label"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

// TopPerformer 进度快照按均分排序后的条目
type TopPerformer struct {
	model.Progress
	StudentName string `json:"studentName"`
	Status      string `json:"status"`
}

type ClassAnalytics struct {
	ClassID           string           `json:"classId"`
	TotalStudents     int              `json:"totalStudents"`
	AvgAttendance     *int             `json:"avgAttendance"`
	AssignmentsPosted int              `json:"assignmentsPosted"`
	ClassAverage      *int             `json:"classAverage"`
	SubmissionRates   []AssignmentStat `json:"submissionRates"`
	GradeDistribution []GradeBand      `json:"gradeDistribution"`
	TopPerformers     []TopPerformer   `json:"topPerformers"`
}

func roundPercent(numerator, denominator float64) int {
	return int(math.Round(numerator / denominator * 100))
}

func (s *AnalyticsService) Analytics(classID string) (*ClassAnalytics, error) {
	if _, err := s.Repos.Classes.FindByID(classID); err != nil {
		if err == repository.ErrNotFound {
			return nil, util.ErrClassNotFound
		}
		return nil, err
	}

	students, err := s.Repos.Students.All()
	if err != nil {
		return nil, err
	}
	studentNames := make(map[string]string, len(students))
	for _, st := range students {
		studentNames[st.ID] = st.Name
	}

	result := &ClassAnalytics{
		ClassID:       classID,
		TotalStudents: len(students),
	}

	// 出勤率：present 记录占全部记录的比例
	attendance, err := s.Repos.Attendance.ForClass(classID)
	if err != nil {
		return nil, err
	}
	if len(attendance) > 0 {
		present := 0
		for _, record := range attendance {
			if record.Status == model.AttendancePresent {
				present++
			}
		}
		avg := roundPercent(float64(present), float64(len(attendance)))
		result.AvgAttendance = &avg
	}

	assignments, err := s.Repos.Assignments.ForClass(classID)
	if err != nil {
		return nil, err
	}
	result.AssignmentsPosted = len(assignments)

	// 逐作业统计提交率，同时累计全班已批改百分比
	var classPercentSum float64
	classGradedCount := 0
	var allPercents []float64

	stats := make([]AssignmentStat, 0, len(assignments))
	for _, assignment := range assignments {
		submissions, err := s.Repos.Submissions.ForAssignment(assignment.ID)
		if err != nil {
			return nil, err
		}

		stat := AssignmentStat{
			AssignmentID: assignment.ID,
			Title:        assignment.Title,
			Submitted:    len(submissions),
			Total:        len(students),
		}
		if len(students) > 0 {
			stat.Rate = roundPercent(float64(len(submissions)), float64(len(students)))
		}

		if assignment.Points > 0 {
			var sum float64
			count := 0
			for _, submission := range submissions {
				if submission.Grade == nil {
					continue
				}
				percent := float64(*submission.Grade) / float64(assignment.Points) * 100
				sum += percent
				count++
				classPercentSum += percent
				classGradedCount++
				allPercents = append(allPercents, percent)
			}
			if count > 0 {
				avg := int(math.Round(sum / float64(count)))
				stat.AvgGrade = &avg
			}
		}

		stats = append(stats, stat)
	}
	result.SubmissionRates = stats

	if classGradedCount > 0 {
		avg := int(math.Round(classPercentSum / float64(classGradedCount)))
		result.ClassAverage = &avg
	}

	result.GradeDistribution = distributeGrades(allPercents)

	progress, err := s.Repos.Progress.ForClass(classID)
	if err != nil {
		return nil, err
	}
	performers := make([]TopPerformer, 0, len(progress))
	for _, p := range progress {
		performers = append(performers, TopPerformer{
			Progress:    p,
			StudentName: studentNames[p.StudentID],
			Status:      performanceStatus(p.AverageGrade),
		})
	}
	sort.SliceStable(performers, func(i, j int) bool {
		return performers[i].AverageGrade > performers[j].AverageGrade
	})
	result.TopPerformers = performers

	return result, nil
}

// distributeGrades 按字母档位统计已批改百分比的占比
func distributeGrades(percents []float64) []GradeBand {
	bands := []GradeBand{
		{Label: "A (90-100%)"},
		{Label: "B (80-89%)"},
		{Label: "C (70-79%)"},
		{Label: "D (60-69%)"},
		{Label: "F (<60%)"},
	}

	for _, p := range percents {
		switch {
		case p >= 90:
			bands[0].Count++
		case p >= 80:
			bands[1].Count++
		case p >= 70:
			bands[2].Count++
		case p >= 60:
			bands[3].Count++
		default:
			bands[4].Count++
		}
	}

	if len(percents) > 0 {
		for i := range bands {
			bands[i].Percent = roundPercent(float64(bands[i].Count), float64(len(percents)))
		}
	}
	return bands
}

func performanceStatus(averageGrade int) string {
	switch {
	case averageGrade >= 90:
		return "Excellent"
	case averageGrade >= 80:
		return "Good"
	default:
		return "Needs Support"
	}
}
