package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"classboard_backend/internal/model"
	"classboard_backend/internal/repository"
	"classboard_backend/internal/util"
)

// DashboardService 三种角色各自的首页数据
type DashboardService struct {
	Repos *repository.Repositories

	Now func() time.Time
}

func NewDashboardService(repos *repository.Repositories) *DashboardService {
	return &DashboardService{
		Repos: repos,
		Now:   time.Now,
	}
}

// UpcomingItem 学生首页的待办作业
type UpcomingItem struct {
	model.Assignment
	ClassName string `json:"className"`
	DueLabel  string `json:"dueLabel"`
}

type StudentDashboard struct {
	Classes  []model.Class  `json:"classes"`
	Upcoming []UpcomingItem `json:"upcoming"`
}

type TeacherDashboard struct {
	Classes        []model.Class `json:"classes"`
	TotalStudents  int           `json:"totalStudents"`
	PendingGrading int           `json:"pendingGrading"`
}

type AdminDashboard struct {
	TotalClasses     int `json:"totalClasses"`
	TotalStudents    int `json:"totalStudents"`
	TotalTeachers    int `json:"totalTeachers"`
	TotalAssignments int `json:"totalAssignments"`
	TotalQuizzes     int `json:"totalQuizzes"`
	TotalResources   int `json:"totalResources"`
}

// StudentDashboard 课程卡片加按截止时间排好序的未过期作业
func (s *DashboardService) StudentDashboard() (*StudentDashboard, error) {
	classes, err := s.Repos.Classes.All()
	if err != nil {
		return nil, err
	}

	now := s.Now()
	var upcoming []UpcomingItem
	for _, class := range classes {
		assignments, err := s.Repos.Assignments.ForClass(class.ID)
		if err != nil {
			return nil, err
		}
		for _, a := range assignments {
			if a.Type == model.AssignmentMaterial || util.IsOverdue(a.DueDate, now) {
				continue
			}
			label, _ := util.DueLabel(a.DueDate, now)
			upcoming = append(upcoming, UpcomingItem{
				Assignment: a,
				ClassName:  class.Name,
				DueLabel:   label,
			})
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate < upcoming[j].DueDate
	})

	return &StudentDashboard{
		Classes:  classes,
		Upcoming: upcoming,
	}, nil
}

// TeacherDashboard 只列该教师名下的课。目录里的教师名带头衔，
// 按用户全名做包含匹配。
func (s *DashboardService) TeacherDashboard(user *model.User) (*TeacherDashboard, error) {
	classes, err := s.Repos.Classes.All()
	if err != nil {
		return nil, err
	}

	fullName := fmt.Sprintf("%s %s", user.FirstName, user.LastName)
	var owned []model.Class
	for _, class := range classes {
		if strings.Contains(class.Teacher, fullName) {
			owned = append(owned, class)
		}
	}

	students, err := s.Repos.Students.All()
	if err != nil {
		return nil, err
	}

	// 待批改数：名下各课计分作业的未评分提交合计
	pending := 0
	for _, class := range owned {
		assignments, err := s.Repos.Assignments.ForClass(class.ID)
		if err != nil {
			return nil, err
		}
		for _, a := range assignments {
			if a.Points == 0 {
				continue
			}
			submissions, err := s.Repos.Submissions.ForAssignment(a.ID)
			if err != nil {
				return nil, err
			}
			for _, submission := range submissions {
				if submission.Grade == nil {
					pending++
				}
			}
		}
	}

	return &TeacherDashboard{
		Classes:        owned,
		TotalStudents:  len(students),
		PendingGrading: pending,
	}, nil
}

// AdminDashboard 全目录计数
func (s *DashboardService) AdminDashboard() (*AdminDashboard, error) {
	classes, err := s.Repos.Classes.All()
	if err != nil {
		return nil, err
	}
	students, err := s.Repos.Students.All()
	if err != nil {
		return nil, err
	}

	teachers := make(map[string]struct{})
	totalAssignments := 0
	totalQuizzes := 0
	totalResources := 0
	for _, class := range classes {
		teachers[class.Teacher] = struct{}{}

		assignments, err := s.Repos.Assignments.ForClass(class.ID)
		if err != nil {
			return nil, err
		}
		totalAssignments += len(assignments)

		quizzes, err := s.Repos.Quizzes.ForClass(class.ID)
		if err != nil {
			return nil, err
		}
		totalQuizzes += len(quizzes)

		resources, err := s.Repos.Resources.ForClass(class.ID)
		if err != nil {
			return nil, err
		}
		totalResources += len(resources)
	}

	return &AdminDashboard{
		TotalClasses:     len(classes),
		TotalStudents:    len(students),
		TotalTeachers:    len(teachers),
		TotalAssignments: totalAssignments,
		TotalQuizzes:     totalQuizzes,
		TotalResources:   totalResources,
	}, nil
}
