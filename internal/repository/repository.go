// Package repository 是课堂目录的唯一访问边界。
// 视图层只依赖这些接口；memdb 提供种子数据实现，gormdb 提供 MySQL 实现，
// 切换数据来源不需要动任何业务代码。
package repository

import (
	"errors"

	"classboard_backend/internal/model"
)

var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	FindByEmail(email string) (*model.User, error)
	FindByID(id uint) (*model.User, error)
}

type ClassRepository interface {
	All() ([]model.Class, error)
	FindByID(id string) (*model.Class, error)
	FindByTeacher(teacher string) ([]model.Class, error)
}

type AssignmentRepository interface {
	ForClass(classID string) ([]model.Assignment, error)
}

type QuizRepository interface {
	ForClass(classID string) ([]model.Quiz, error)
}

type DiscussionRepository interface {
	ForClass(classID string) ([]model.Discussion, error)
}

type ResourceRepository interface {
	ForClass(classID string) ([]model.Resource, error)
	// Append 留给教师上传资源用，目录其余部分只读
	Append(resource *model.Resource) error
}

type AnnouncementRepository interface {
	ForClass(classID string) ([]model.Announcement, error)
}

type StudentRepository interface {
	All() ([]model.Student, error)
	FindByID(id string) (*model.Student, error)
}

type SubmissionRepository interface {
	ForAssignment(assignmentID string) ([]model.Submission, error)
	FindByAssignmentAndStudent(assignmentID, studentID string) (*model.Submission, error)
}

type AttendanceRepository interface {
	ForClass(classID string) ([]model.Attendance, error)
}

type ProgressRepository interface {
	ForClass(classID string) ([]model.Progress, error)
}

// Repositories 打包全部目录接口，方便一次性注入
type Repositories struct {
	Users         UserRepository
	Classes       ClassRepository
	Assignments   AssignmentRepository
	Quizzes       QuizRepository
	Discussions   DiscussionRepository
	Resources     ResourceRepository
	Announcements AnnouncementRepository
	Students      StudentRepository
	Submissions   SubmissionRepository
	Attendance    AttendanceRepository
	Progress      ProgressRepository
}
