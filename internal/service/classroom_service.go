package service

import (
	"time"

	"classboard_backend/internal/model"
	"classboard_backend/internal/repository"
	"classboard_backend/internal/util"
)

// ClassroomService 课堂详情页六个标签的只读视图
type ClassroomService struct {
	Repos *repository.Repositories

	// 测试里注入固定时间
	Now func() time.Time
}

func NewClassroomService(repos *repository.Repositories) *ClassroomService {
	return &ClassroomService{
		Repos: repos,
		Now:   time.Now,
	}
}

// StreamItem 公告加相对时间标签
type StreamItem struct {
	model.Announcement
	TimeAgo string `json:"timeAgo"`
}

// ClassworkItem 作业加截止标签与过期标记
type ClassworkItem struct {
	model.Assignment
	DueLabel string `json:"dueLabel"`
	Overdue  bool   `json:"overdue"`
}

// QuizOverview 测验列表项，总分按题目分值合计
type QuizOverview struct {
	model.Quiz
	TotalPoints   int    `json:"totalPoints"`
	QuestionCount int    `json:"questionCount"`
	DueLabel      string `json:"dueLabel"`
	Overdue       bool   `json:"overdue"`
}

type DiscussionReplyView struct {
	model.DiscussionReply
	TimeAgo string `json:"timeAgo"`
}

type DiscussionView struct {
	model.Discussion
	TimeAgo string                `json:"timeAgo"`
	Replies []DiscussionReplyView `json:"replies"`
}

// PeopleView 成员标签：班级教师在前，学生名单在后
type PeopleView struct {
	Teacher  string          `json:"teacher"`
	Students []model.Student `json:"students"`
}

func (s *ClassroomService) ensureClass(classID string) (*model.Class, error) {
	class, err := s.Repos.Classes.FindByID(classID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, util.ErrClassNotFound
		}
		return nil, err
	}
	return class, nil
}

// GetClass 课堂详情，不存在返回 ErrClassNotFound
func (s *ClassroomService) GetClass(classID string) (*model.Class, error) {
	return s.ensureClass(classID)
}

func (s *ClassroomService) ListClasses() ([]model.Class, error) {
	return s.Repos.Classes.All()
}

// Stream 公告流，数据自带的顺序就是展示顺序
func (s *ClassroomService) Stream(classID string) ([]StreamItem, error) {
	if _, err := s.ensureClass(classID); err != nil {
		return nil, err
	}

	announcements, err := s.Repos.Announcements.ForClass(classID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	items := make([]StreamItem, 0, len(announcements))
	for _, a := range announcements {
		items = append(items, StreamItem{
			Announcement: a,
			TimeAgo:      util.RelativeTime(a.Timestamp, now),
		})
	}
	return items, nil
}

func (s *ClassroomService) Classwork(classID string) ([]ClassworkItem, error) {
	if _, err := s.ensureClass(classID); err != nil {
		return nil, err
	}

	assignments, err := s.Repos.Assignments.ForClass(classID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	items := make([]ClassworkItem, 0, len(assignments))
	for _, a := range assignments {
		label, overdue := util.DueLabel(a.DueDate, now)
		items = append(items, ClassworkItem{
			Assignment: a,
			DueLabel:   label,
			Overdue:    overdue,
		})
	}
	return items, nil
}

func (s *ClassroomService) Quizzes(classID string) ([]QuizOverview, error) {
	if _, err := s.ensureClass(classID); err != nil {
		return nil, err
	}

	quizzes, err := s.Repos.Quizzes.ForClass(classID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	items := make([]QuizOverview, 0, len(quizzes))
	for _, q := range quizzes {
		label, overdue := util.DueLabelWithTime(q.DueDate, now)
		items = append(items, QuizOverview{
			Quiz:          q,
			TotalPoints:   q.TotalPoints(),
			QuestionCount: len(q.Questions),
			DueLabel:      label,
			Overdue:       overdue,
		})
	}
	return items, nil
}

func (s *ClassroomService) Discussions(classID string) ([]DiscussionView, error) {
	if _, err := s.ensureClass(classID); err != nil {
		return nil, err
	}

	discussions, err := s.Repos.Discussions.ForClass(classID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	views := make([]DiscussionView, 0, len(discussions))
	for _, d := range discussions {
		replies := make([]DiscussionReplyView, 0, len(d.Replies))
		for _, r := range d.Replies {
			replies = append(replies, DiscussionReplyView{
				DiscussionReply: r,
				TimeAgo:         util.RelativeTime(r.Timestamp, now),
			})
		}
		views = append(views, DiscussionView{
			Discussion: d,
			TimeAgo:    util.RelativeTime(d.Timestamp, now),
			Replies:    replies,
		})
	}
	return views, nil
}

func (s *ClassroomService) Resources(classID string) ([]model.Resource, error) {
	if _, err := s.ensureClass(classID); err != nil {
		return nil, err
	}
	return s.Repos.Resources.ForClass(classID)
}

// People 当前数据集没有按班分班名册，名单即全体学生
func (s *ClassroomService) People(classID string) (*PeopleView, error) {
	class, err := s.ensureClass(classID)
	if err != nil {
		return nil, err
	}

	students, err := s.Repos.Students.All()
	if err != nil {
		return nil, err
	}

	return &PeopleView{
		Teacher:  class.Teacher,
		Students: students,
	}, nil
}
