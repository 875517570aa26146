/*
 * @Description: 文章提交、删除与首页展示
 * @Author: 安知鱼
 * @Date: 2026-10-13 18:22:07
 * @LastEditTime: 2026-10-14 15:08:31
 * @LastEditors: 安知鱼
 */
package post

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/anzhiyu-c/anheyu-post/internal/app/middleware"
	"github.com/anzhiyu-c/anheyu-post/pkg/constant"
	"github.com/anzhiyu-c/anheyu-post/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-post/pkg/idgen"
	"github.com/anzhiyu-c/anheyu-post/pkg/response"
	"github.com/anzhiyu-c/anheyu-post/pkg/service/flash"
	post_service "github.com/anzhiyu-c/anheyu-post/pkg/service/post"
	"github.com/gin-gonic/gin"
)

// Handler 封装文章相关的控制器方法
type Handler struct {
	postSvc  post_service.Service
	flashSvc flash.Service
	flashTTL time.Duration
}

// NewHandler 是 Handler 的构造函数
func NewHandler(postSvc post_service.Service, flashSvc flash.Service, flashTTL time.Duration) *Handler {
	if flashTTL <= 0 {
		flashTTL = flash.DefaultTTL
	}
	return &Handler{
		postSvc:  postSvc,
		flashSvc: flashSvc,
		flashTTL: flashTTL,
	}
}

// Index 渲染首页：文章列表以及当前客户端上一次提交留下的错误（只显示一次）
func (h *Handler) Index(c *gin.Context) {
	ctx := c.Request.Context()
	page := IndexPage{}

	if token, err := c.Cookie(constant.FlashCookieName); err == nil && token != "" {
		blogErr, err := h.flashSvc.Take(ctx, token)
		if err != nil {
			log.Printf("[PostHandler] 读取错误提示失败: %v", err)
		}
		page.Error = blogErr
		h.clearFlashCookie(c)
	}

	posts, err := h.postSvc.List(ctx)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "获取文章列表失败: "+err.Error())
		return
	}
	page.Posts = make([]PostView, 0, len(posts))
	for _, p := range posts {
		page.Posts = append(page.Posts, newPostView(p))
	}
	page.Count = len(posts)

	c.HTML(http.StatusOK, "index.html", page)
}

// Submit 处理 POST /submit。
// 上传结构错误返回 500；字段或图片错误写入一次性提示并重定向回首页；成功返回 201。
func (h *Handler) Submit(c *gin.Context) {
	result := middleware.GetUploadResult(c)
	if result == nil {
		response.Fail(c, http.StatusInternalServerError, "上传中间件未配置")
		return
	}
	if result.Err != nil {
		h.handleSubmitError(c, result.Err)
		return
	}

	params := post_service.SubmitParams{
		Title:   c.PostForm(constant.FormFieldTitle),
		Author:  c.PostForm(constant.FormFieldAuthor),
		Content: c.PostForm(constant.FormFieldContent),
		Image:   result.Image,
	}
	if _, err := h.postSvc.Submit(c.Request.Context(), params); err != nil {
		h.handleSubmitError(c, err)
		return
	}

	h.clearFlashCookie(c)
	c.Status(http.StatusCreated)
}

func (h *Handler) handleSubmitError(c *gin.Context, err error) {
	var blogErr *model.BlogError
	if errors.As(err, &blogErr) && !errors.Is(err, constant.ErrUploadFault) {
		h.redirectWithError(c, blogErr)
		return
	}
	log.Printf("[PostHandler] 请求 %s 提交失败: %v", middleware.GetRequestID(c), err)
	response.Fail(c, http.StatusInternalServerError, "上传失败: "+err.Error())
}

// Delete 处理 POST /delete，表单字段 blogId
func (h *Handler) Delete(c *gin.Context) {
	raw := c.PostForm(constant.FormFieldID)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		blogErr := model.NewBlogErrorWrap(model.ErrorLocationID, "A valid blog post ID must be specified!", constant.ErrBadRequest)
		response.FailWithData(c, http.StatusBadRequest, blogErr, blogErr.Message)
		return
	}

	if !h.deleteByID(c, id) {
		return
	}
	c.Status(http.StatusCreated)
}

// deleteByID 删除文章并在失败时写出响应，返回是否成功
func (h *Handler) deleteByID(c *gin.Context, id uint64) bool {
	err := h.postSvc.Delete(c.Request.Context(), id)
	if err == nil {
		return true
	}

	var blogErr *model.BlogError
	if errors.Is(err, constant.ErrNotFound) && errors.As(err, &blogErr) {
		response.FailWithData(c, http.StatusNotFound, blogErr, blogErr.Message)
		return false
	}
	response.Fail(c, http.StatusInternalServerError, "删除文章失败: "+err.Error())
	return false
}

// ListAPI 处理 GET /api/posts
func (h *Handler) ListAPI(c *gin.Context) {
	posts, err := h.postSvc.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "获取文章列表失败: "+err.Error())
		return
	}

	list := make([]model.PostDTO, 0, len(posts))
	for _, p := range posts {
		dto, err := newPostDTO(p)
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, "生成文章公共ID失败: "+err.Error())
			return
		}
		list = append(list, dto)
	}

	response.Success(c, gin.H{
		"list":  list,
		"total": len(list),
	}, "获取文章列表成功")
}

// GetAPI 处理 GET /api/posts/:id，id 为公共ID
func (h *Handler) GetAPI(c *gin.Context) {
	id, ok := parsePublicID(c)
	if !ok {
		return
	}

	p, err := h.postSvc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "文章不存在")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "获取文章失败: "+err.Error())
		return
	}

	dto, err := newPostDTO(p)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "生成文章公共ID失败: "+err.Error())
		return
	}
	response.Success(c, dto, "获取文章成功")
}

// DeleteAPI 处理 DELETE /api/posts/:id，id 为公共ID
func (h *Handler) DeleteAPI(c *gin.Context) {
	id, ok := parsePublicID(c)
	if !ok {
		return
	}
	if !h.deleteByID(c, id) {
		return
	}
	response.Success(c, nil, "删除文章成功")
}

func parsePublicID(c *gin.Context) (uint64, bool) {
	id, entityType, err := idgen.DecodePublicID(c.Param("id"))
	if err != nil || entityType != idgen.EntityTypePost {
		response.Fail(c, http.StatusBadRequest, constant.ErrInvalidPublicID.Error())
		return 0, false
	}
	return id, true
}

func (h *Handler) redirectWithError(c *gin.Context, blogErr *model.BlogError) {
	token, err := h.flashSvc.Put(c.Request.Context(), blogErr)
	if err != nil {
		log.Printf("[PostHandler] 保存错误提示失败: %v", err)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(constant.FlashCookieName, token, int(h.flashTTL/time.Second), "/", "", false, true)
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) clearFlashCookie(c *gin.Context) {
	if _, err := c.Cookie(constant.FlashCookieName); err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constant.FlashCookieName, "", -1, "/", "", false, true)
}
