package middleware

import (
	"encoding/json"
	"strings"

	"classboard_backend/internal/model"
	"classboard_backend/internal/session"
	"classboard_backend/internal/util"
	"classboard_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func extractToken(c *gin.Context) string {
	tokenString := ""
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
	}

	if tokenString == "" {
		tokenString = c.Query("token")
	}

	return tokenString
}

// attachIdentity 按会话里存的用户 JSON 解析身份。
// JSON 损坏时角色退化为 Anonymous，请求照常放行（受保护页面按最低权限渲染）。
func attachIdentity(c *gin.Context, store session.Store, token string) {
	c.Set("token", token)

	userJSON, err := store.Get(c.Request.Context(), token)
	if err != nil {
		c.Set("role", model.RoleAnonymous)
		return
	}

	c.Set("role", model.ResolveRole(userJSON))

	var user model.User
	if err := json.Unmarshal(userJSON, &user); err != nil {
		logger.Log.Warn("stored user record is not valid JSON", zap.Error(err))
		return
	}
	c.Set("user", &user)
}

// AuthMiddleware 认证门：策略同步判定，无网络往返。
// 只有 authorized / unauthorized 两种终态。
func AuthMiddleware(policy session.Policy, store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)

		if !policy.IsValid(c.Request.Context(), token) {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		attachIdentity(c, store, token)
		c.Next()
	}
}

// TryAuthMiddleware 带上身份但从不拦截，登出接口用
func TryAuthMiddleware(policy session.Policy, store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token != "" && policy.IsValid(c.Request.Context(), token) {
			attachIdentity(c, store, token)
		} else if token != "" {
			c.Set("token", token)
		}
		c.Next()
	}
}

// RoleMiddleware 角色门。管理员直接放行所有受角色保护的接口。
func RoleMiddleware(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := util.GetRoleFromContext(c)

		if role == model.RoleAdmin {
			c.Next()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		util.Forbidden(c)
		c.Abort()
	}
}
