/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-26 09:52:32
 * @LastEditTime: 2026-10-14 10:40:26
 * @LastEditors: 安知鱼
 */
package version

import (
	"github.com/anzhiyu-c/anheyu-post/internal/pkg/version"
	"github.com/anzhiyu-c/anheyu-post/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler 版本信息处理器
type Handler struct{}

// NewHandler 创建版本信息处理器实例
func NewHandler() *Handler {
	return &Handler{}
}

// GetVersion 获取版本信息 (GET /api/version)
func (h *Handler) GetVersion(c *gin.Context) {
	info := version.GetBuildInfo()
	response.Success(c, gin.H{
		"build":   info,
		"version": info.String(),
	}, "获取版本信息成功")
}
