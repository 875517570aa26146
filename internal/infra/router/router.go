/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-06-15 11:30:55
 * @LastEditTime: 2026-10-14 16:02:48
 * @LastEditors: 安知鱼
 */
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/anheyu-post/internal/app/middleware"
	"github.com/anzhiyu-c/anheyu-post/pkg/constant"
	post_handler "github.com/anzhiyu-c/anheyu-post/pkg/handler/post"
	version_handler "github.com/anzhiyu-c/anheyu-post/pkg/handler/version"
)

// Router 封装了应用的所有路由和其依赖的处理器。
type Router struct {
	postHandler    *post_handler.Handler
	versionHandler *version_handler.Handler
	maxUploadSize  int64
}

// NewRouter 是 Router 的构造函数，通过依赖注入接收所有处理器。
// maxUploadSize 为 /submit 请求体的字节上限，<= 0 表示不限制。
func NewRouter(
	postHandler *post_handler.Handler,
	versionHandler *version_handler.Handler,
	maxUploadSize int64,
) *Router {
	return &Router{
		postHandler:    postHandler,
		versionHandler: versionHandler,
		maxUploadSize:  maxUploadSize,
	}
}

// Setup 将所有路由注册到 Gin 引擎
func (r *Router) Setup(engine *gin.Engine) {
	r.registerPageRoutes(engine)

	// 创建 /api 分组
	apiGroup := engine.Group("/api")
	// 应用全局反缓存中间件
	apiGroup.Use(middleware.NoCache())

	r.registerPostRoutes(apiGroup)
	r.registerVersionRoutes(apiGroup)
}

// registerPageRoutes 注册表单页面相关路由
func (r *Router) registerPageRoutes(engine *gin.Engine) {
	// 首页包含一次性错误提示，禁止缓存
	engine.GET("/", middleware.NoCache(), r.postHandler.Index)

	// 提交文章: POST /submit (multipart/form-data)
	engine.POST("/submit",
		middleware.SingleImageUpload(constant.FormFieldImage, r.maxUploadSize),
		r.postHandler.Submit,
	)

	// 删除文章: POST /delete (blogId)
	engine.POST("/delete", r.postHandler.Delete)
}

// registerPostRoutes 注册文章 JSON 接口
func (r *Router) registerPostRoutes(api *gin.RouterGroup) {
	posts := api.Group("/posts")
	{
		// 获取文章列表: GET /api/posts
		posts.GET("", r.postHandler.ListAPI)

		// 获取单篇文章: GET /api/posts/:id
		posts.GET("/:id", r.postHandler.GetAPI)

		// 删除文章: DELETE /api/posts/:id
		posts.DELETE("/:id", r.postHandler.DeleteAPI)
	}
}

// registerVersionRoutes 注册版本信息路由
func (r *Router) registerVersionRoutes(api *gin.RouterGroup) {
	// 获取版本信息: GET /api/version
	api.GET("/version", r.versionHandler.GetVersion)
}
