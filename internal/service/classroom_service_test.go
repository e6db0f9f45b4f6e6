package service

import (
	"testing"
	"time"

	"classboard_backend/internal/fixture"
	"classboard_backend/internal/repository/memdb"
	"classboard_backend/internal/util"

	"github.com/stretchr/testify/assert"
)

func newClassroomService() *ClassroomService {
	svc := NewClassroomService(memdb.New(fixture.Load()))
	svc.Now = func() time.Time {
		return time.Date(2025, 12, 5, 10, 0, 0, 0, time.Local)
	}
	return svc
}

func TestGetClass(t *testing.T) {
	svc := newClassroomService()

	class, err := svc.GetClass("1")
	assert.NoError(t, err)
	assert.Equal(t, "Mathematics", class.Name)
	assert.Equal(t, "Dr. Sarah Johnson", class.Teacher)

	_, err = svc.GetClass("999")
	assert.ErrorIs(t, err, util.ErrClassNotFound)
}

func TestStream(t *testing.T) {
	svc := newClassroomService()

	items, err := svc.Stream("1")
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "4d ago", items[0].TimeAgo)
	assert.Equal(t, "2d ago", items[1].TimeAgo)

	_, err = svc.Stream("999")
	assert.ErrorIs(t, err, util.ErrClassNotFound)
}

func TestClasswork(t *testing.T) {
	svc := newClassroomService()

	items, err := svc.Classwork("1")
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "Dec 10", items[0].DueLabel)
	assert.False(t, items[0].Overdue)
	assert.Equal(t, "Dec 8", items[1].DueLabel)
	assert.False(t, items[1].Overdue)
}

func TestQuizzes(t *testing.T) {
	svc := newClassroomService()

	items, err := svc.Quizzes("1")
	assert.NoError(t, err)
	assert.Len(t, items, 1)

	quiz := items[0]
	assert.Equal(t, "Calculus Fundamentals", quiz.Title)
	// 总分按题目分值合计，不看测验自带的 points 字段
	assert.Equal(t, 20, quiz.TotalPoints)
	assert.Equal(t, 2, quiz.QuestionCount)
	assert.Equal(t, "Dec 15, 11:59 PM", quiz.DueLabel)
	assert.False(t, quiz.Overdue)
}

func TestDiscussions(t *testing.T) {
	svc := newClassroomService()

	views, err := svc.Discussions("1")
	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, "2d ago", views[0].TimeAgo)
	assert.Len(t, views[0].Replies, 2)
	assert.Equal(t, "Dr. Sarah Johnson", views[0].Replies[0].Author)
}

func TestPeople(t *testing.T) {
	svc := newClassroomService()

	people, err := svc.People("1")
	assert.NoError(t, err)
	assert.Equal(t, "Dr. Sarah Johnson", people.Teacher)
	assert.Len(t, people.Students, 5)
}
