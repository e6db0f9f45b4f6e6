package model

import (
	"encoding/json"

	"classboard_backend/pkg/logger"

	"go.uber.org/zap"
)

// Role 封闭的角色变体，会话加载时解析一次后向下传递，
// 避免各处重复比较 role.role_name 字符串
type Role int

const (
	RoleAnonymous Role = iota
	RoleStudent
	RoleTeacher
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleTeacher:
		return "teacher"
	case RoleStudent:
		return "student"
	default:
		return ""
	}
}

// ParseRole 未知的角色名退化为 Anonymous（等同学生可见范围）
func ParseRole(name string) Role {
	switch name {
	case "admin":
		return RoleAdmin
	case "teacher":
		return RoleTeacher
	case "student":
		return RoleStudent
	default:
		return RoleAnonymous
	}
}

// DashboardPath 登录后按角色跳转的目标路径
func (r Role) DashboardPath() string {
	switch r {
	case RoleAdmin:
		return "/admin-dashboard"
	case RoleTeacher:
		return "/teacher-dashboard"
	default:
		return "/student-dashboard"
	}
}

// ResolveRole 从会话里存的用户 JSON 中取 role.role_name。
// 解析失败只记日志并退化为 Anonymous，不向用户暴露错误。
func ResolveRole(userJSON []byte) Role {
	var record struct {
		Role struct {
			RoleName string `json:"role_name"`
		} `json:"role"`
	}
	if err := json.Unmarshal(userJSON, &record); err != nil {
		logger.Log.Warn("failed to parse stored user record, degrading to anonymous", zap.Error(err))
		return RoleAnonymous
	}
	return ParseRole(record.Role.RoleName)
}
