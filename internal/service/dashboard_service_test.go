package service

import (
	"testing"
	"time"

	"classboard_backend/internal/fixture"
	"classboard_backend/internal/model"
	"classboard_backend/internal/repository/memdb"

	"github.com/stretchr/testify/assert"
)

func newDashboardService() *DashboardService {
	svc := NewDashboardService(memdb.New(fixture.Load()))
	svc.Now = func() time.Time {
		return time.Date(2025, 12, 5, 10, 0, 0, 0, time.Local)
	}
	return svc
}

func TestStudentDashboard(t *testing.T) {
	svc := newDashboardService()

	dashboard, err := svc.StudentDashboard()
	assert.NoError(t, err)
	assert.Len(t, dashboard.Classes, 6)

	// 材料类和已过期的条目不出现在待办里
	assert.Len(t, dashboard.Upcoming, 4)
	for i := 1; i < len(dashboard.Upcoming); i++ {
		assert.LessOrEqual(t, dashboard.Upcoming[i-1].DueDate, dashboard.Upcoming[i].DueDate)
	}
	assert.Equal(t, "Integration Techniques Quiz", dashboard.Upcoming[0].Title)
	assert.Equal(t, "Mathematics", dashboard.Upcoming[0].ClassName)
}

func TestTeacherDashboard(t *testing.T) {
	svc := newDashboardService()

	sarah := &model.User{FirstName: "Sarah", LastName: "Johnson", Role: model.RoleRecord{RoleName: "teacher"}}
	dashboard, err := svc.TeacherDashboard(sarah)
	assert.NoError(t, err)

	// 目录里的教师名带头衔，按全名包含匹配
	assert.Len(t, dashboard.Classes, 1)
	assert.Equal(t, "Mathematics", dashboard.Classes[0].Name)
	assert.Equal(t, 5, dashboard.TotalStudents)

	// 数学课只有 Jane 的提交还没批改
	assert.Equal(t, 1, dashboard.PendingGrading)
}

func TestTeacherDashboardNoClasses(t *testing.T) {
	svc := newDashboardService()

	stranger := &model.User{FirstName: "No", LastName: "Body"}
	dashboard, err := svc.TeacherDashboard(stranger)
	assert.NoError(t, err)
	assert.Empty(t, dashboard.Classes)
	assert.Equal(t, 0, dashboard.PendingGrading)
}

func TestAdminDashboard(t *testing.T) {
	svc := newDashboardService()

	dashboard, err := svc.AdminDashboard()
	assert.NoError(t, err)
	assert.Equal(t, 6, dashboard.TotalClasses)
	assert.Equal(t, 5, dashboard.TotalStudents)
	assert.Equal(t, 6, dashboard.TotalTeachers)
	assert.Equal(t, 5, dashboard.TotalAssignments)
	assert.Equal(t, 2, dashboard.TotalQuizzes)
	assert.Equal(t, 4, dashboard.TotalResources)
}
