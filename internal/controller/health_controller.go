package controller

import (
	"net/http"

	"classboard_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthController 目录走内置数据时 DB 为空，只报进程状态
type HealthController struct {
	DB             *gorm.DB
	CatalogDriver  string
	SessionBackend string
}

func NewHealthController(db *gorm.DB, catalogDriver, sessionBackend string) *HealthController {
	return &HealthController{DB: db, CatalogDriver: catalogDriver, SessionBackend: sessionBackend}
}

// @Summary 健康检查
// @Description 检查服务与目录后端状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	components := gin.H{
		"catalog": c.CatalogDriver,
		"session": c.SessionBackend,
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			util.InternalServerError(ctx)
			return
		}
		if err := sqlDB.Ping(); err != nil {
			util.Error(ctx, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		components["database"] = "up"
	}

	util.Success(ctx, gin.H{
		"status":     "ok",
		"components": components,
	})
}
