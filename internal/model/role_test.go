package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Role
	}{
		{name: "admin", in: "admin", want: RoleAdmin},
		{name: "teacher", in: "teacher", want: RoleTeacher},
		{name: "student", in: "student", want: RoleStudent},
		{name: "unknown degrades to anonymous", in: "superuser", want: RoleAnonymous},
		{name: "empty degrades to anonymous", in: "", want: RoleAnonymous},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRole(tt.in))
		})
	}
}

func TestResolveRole(t *testing.T) {
	tests := []struct {
		name     string
		userJSON string
		want     Role
	}{
		{name: "teacher record", userJSON: `{"id":2,"role":{"role_name":"teacher"}}`, want: RoleTeacher},
		{name: "admin record", userJSON: `{"id":1,"role":{"role_name":"admin"}}`, want: RoleAdmin},
		{name: "missing role object", userJSON: `{"id":3}`, want: RoleAnonymous},
		{name: "malformed JSON degrades silently", userJSON: `{"id":3,"role":`, want: RoleAnonymous},
		{name: "empty payload", userJSON: ``, want: RoleAnonymous},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveRole([]byte(tt.userJSON)))
		})
	}
}

func TestDashboardPath(t *testing.T) {
	assert.Equal(t, "/admin-dashboard", RoleAdmin.DashboardPath())
	assert.Equal(t, "/teacher-dashboard", RoleTeacher.DashboardPath())
	assert.Equal(t, "/student-dashboard", RoleStudent.DashboardPath())
	// 未知角色按学生首页处理
	assert.Equal(t, "/student-dashboard", RoleAnonymous.DashboardPath())
}
