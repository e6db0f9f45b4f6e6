// Package gormdb 是目录接口的 MySQL 实现，catalog.driver=mysql 时启用。
package gormdb

import (
	"errors"

	"classboard_backend/internal/model"
	"classboard_backend/internal/repository"

	"gorm.io/gorm"
)

// New 用同一个 gorm 连接构造全套目录仓库
func New(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Users:         &userRepo{db},
		Classes:       &classRepo{db},
		Assignments:   &assignmentRepo{db},
		Quizzes:       &quizRepo{db},
		Discussions:   &discussionRepo{db},
		Resources:     &resourceRepo{db},
		Announcements: &announcementRepo{db},
		Students:      &studentRepo{db},
		Submissions:   &submissionRepo{db},
		Attendance:    &attendanceRepo{db},
		Progress:      &progressRepo{db},
	}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}
	return err
}

type userRepo struct{ db *gorm.DB }

func (r *userRepo) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepo) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

type classRepo struct{ db *gorm.DB }

func (r *classRepo) All() ([]model.Class, error) {
	var classes []model.Class
	err := r.db.Find(&classes).Error
	return classes, err
}

func (r *classRepo) FindByID(id string) (*model.Class, error) {
	var class model.Class
	if err := r.db.First(&class, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &class, nil
}

func (r *classRepo) FindByTeacher(teacher string) ([]model.Class, error) {
	var classes []model.Class
	err := r.db.Where("teacher = ?", teacher).Find(&classes).Error
	return classes, err
}

type assignmentRepo struct{ db *gorm.DB }

func (r *assignmentRepo) ForClass(classID string) ([]model.Assignment, error) {
	var items []model.Assignment
	err := r.db.Where("class_id = ?", classID).Find(&items).Error
	return items, err
}

type quizRepo struct{ db *gorm.DB }

func (r *quizRepo) ForClass(classID string) ([]model.Quiz, error) {
	var items []model.Quiz
	err := r.db.Preload("Questions").Where("class_id = ?", classID).Find(&items).Error
	return items, err
}

type discussionRepo struct{ db *gorm.DB }

func (r *discussionRepo) ForClass(classID string) ([]model.Discussion, error) {
	var items []model.Discussion
	err := r.db.Preload("Replies").Where("class_id = ?", classID).Find(&items).Error
	return items, err
}

type resourceRepo struct{ db *gorm.DB }

func (r *resourceRepo) ForClass(classID string) ([]model.Resource, error) {
	var items []model.Resource
	err := r.db.Where("class_id = ?", classID).Find(&items).Error
	return items, err
}

func (r *resourceRepo) Append(resource *model.Resource) error {
	return r.db.Create(resource).Error
}

type studentRepo struct{ db *gorm.DB }

func (r *studentRepo) All() ([]model.Student, error) {
	var students []model.Student
	err := r.db.Find(&students).Error
	return students, err
}

func (r *studentRepo) FindByID(id string) (*model.Student, error) {
	var student model.Student
	if err := r.db.First(&student, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &student, nil
}

type announcementRepo struct{ db *gorm.DB }

func (r *announcementRepo) ForClass(classID string) ([]model.Announcement, error) {
	var items []model.Announcement
	err := r.db.Where("class_id = ?", classID).Find(&items).Error
	return items, err
}

type submissionRepo struct{ db *gorm.DB }

func (r *submissionRepo) ForAssignment(assignmentID string) ([]model.Submission, error) {
	var items []model.Submission
	err := r.db.Where("assignment_id = ?", assignmentID).Find(&items).Error
	return items, err
}

func (r *submissionRepo) FindByAssignmentAndStudent(assignmentID, studentID string) (*model.Submission, error) {
	var submission model.Submission
	err := r.db.Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).First(&submission).Error
	if err != nil {
		return nil, translate(err)
	}
	return &submission, nil
}

type attendanceRepo struct{ db *gorm.DB }

func (r *attendanceRepo) ForClass(classID string) ([]model.Attendance, error) {
	var items []model.Attendance
	err := r.db.Where("class_id = ?", classID).Find(&items).Error
	return items, err
}

type progressRepo struct{ db *gorm.DB }

func (r *progressRepo) ForClass(classID string) ([]model.Progress, error) {
	var items []model.Progress
	err := r.db.Where("class_id = ?", classID).Find(&items).Error
	return items, err
}
