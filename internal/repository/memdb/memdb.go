// Package memdb 用种子数据实现目录接口。
// 列表查询保持插入顺序原样返回，同样的入参永远得到同样的结果。
package memdb

import (
	"sync"

	"classboard_backend/internal/fixture"
	"classboard_backend/internal/model"
	"classboard_backend/internal/repository"
)

type store struct {
	data *fixture.Dataset
	// 只有资源表支持追加（教师上传），其余都是只读的
	mu sync.RWMutex
}

// New 把同一份数据集包装成全套目录仓库
func New(data *fixture.Dataset) *repository.Repositories {
	s := &store{data: data}
	return &repository.Repositories{
		Users:         (*userRepo)(s),
		Classes:       (*classRepo)(s),
		Assignments:   (*assignmentRepo)(s),
		Quizzes:       (*quizRepo)(s),
		Discussions:   (*discussionRepo)(s),
		Resources:     (*resourceRepo)(s),
		Announcements: (*announcementRepo)(s),
		Students:      (*studentRepo)(s),
		Submissions:   (*submissionRepo)(s),
		Attendance:    (*attendanceRepo)(s),
		Progress:      (*progressRepo)(s),
	}
}

type userRepo store

func (r *userRepo) FindByEmail(email string) (*model.User, error) {
	for i := range r.data.Users {
		if r.data.Users[i].Email == email {
			user := r.data.Users[i]
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepo) FindByID(id uint) (*model.User, error) {
	for i := range r.data.Users {
		if r.data.Users[i].ID == id {
			user := r.data.Users[i]
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

type classRepo store

func (r *classRepo) All() ([]model.Class, error) {
	return r.data.Classes, nil
}

func (r *classRepo) FindByID(id string) (*model.Class, error) {
	for i := range r.data.Classes {
		if r.data.Classes[i].ID == id {
			class := r.data.Classes[i]
			return &class, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *classRepo) FindByTeacher(teacher string) ([]model.Class, error) {
	classes := []model.Class{}
	for _, class := range r.data.Classes {
		if class.Teacher == teacher {
			classes = append(classes, class)
		}
	}
	return classes, nil
}

type assignmentRepo store

func (r *assignmentRepo) ForClass(classID string) ([]model.Assignment, error) {
	items := []model.Assignment{}
	for _, a := range r.data.Assignments {
		if a.ClassID == classID {
			items = append(items, a)
		}
	}
	return items, nil
}

type quizRepo store

func (r *quizRepo) ForClass(classID string) ([]model.Quiz, error) {
	items := []model.Quiz{}
	for _, q := range r.data.Quizzes {
		if q.ClassID == classID {
			items = append(items, q)
		}
	}
	return items, nil
}

type discussionRepo store

func (r *discussionRepo) ForClass(classID string) ([]model.Discussion, error) {
	items := []model.Discussion{}
	for _, d := range r.data.Discussions {
		if d.ClassID == classID {
			items = append(items, d)
		}
	}
	return items, nil
}

type resourceRepo store

func (r *resourceRepo) ForClass(classID string) ([]model.Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := []model.Resource{}
	for _, res := range r.data.Resources {
		if res.ClassID == classID {
			items = append(items, res)
		}
	}
	return items, nil
}

func (r *resourceRepo) Append(resource *model.Resource) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data.Resources = append(r.data.Resources, *resource)
	return nil
}

type announcementRepo store

func (r *announcementRepo) ForClass(classID string) ([]model.Announcement, error) {
	items := []model.Announcement{}
	for _, a := range r.data.Announcements {
		if a.ClassID == classID {
			items = append(items, a)
		}
	}
	return items, nil
}

type studentRepo store

func (r *studentRepo) All() ([]model.Student, error) {
	return r.data.Students, nil
}

func (r *studentRepo) FindByID(id string) (*model.Student, error) {
	for i := range r.data.Students {
		if r.data.Students[i].ID == id {
			student := r.data.Students[i]
			return &student, nil
		}
	}
	return nil, repository.ErrNotFound
}

type submissionRepo store

func (r *submissionRepo) ForAssignment(assignmentID string) ([]model.Submission, error) {
	items := []model.Submission{}
	for _, s := range r.data.Submissions {
		if s.AssignmentID == assignmentID {
			items = append(items, s)
		}
	}
	return items, nil
}

func (r *submissionRepo) FindByAssignmentAndStudent(assignmentID, studentID string) (*model.Submission, error) {
	for i := range r.data.Submissions {
		s := r.data.Submissions[i]
		if s.AssignmentID == assignmentID && s.StudentID == studentID {
			return &s, nil
		}
	}
	return nil, repository.ErrNotFound
}

type attendanceRepo store

func (r *attendanceRepo) ForClass(classID string) ([]model.Attendance, error) {
	items := []model.Attendance{}
	for _, a := range r.data.Attendance {
		if a.ClassID == classID {
			items = append(items, a)
		}
	}
	return items, nil
}

type progressRepo store

func (r *progressRepo) ForClass(classID string) ([]model.Progress, error) {
	items := []model.Progress{}
	for _, p := range r.data.Progress {
		if p.ClassID == classID {
			items = append(items, p)
		}
	}
	return items, nil
}
