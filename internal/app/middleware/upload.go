/*
 * @Description: 单图片上传中间件：解析 multipart、按扩展名过滤、整体读入内存
 * @Author: 安知鱼
 * @Date: 2026-10-13 17:05:19
 * @LastEditTime: 2026-10-14 11:32:45
 * @LastEditors: 安知鱼
 */
package middleware

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/anzhiyu-c/anheyu-post/pkg/constant"
	"github.com/anzhiyu-c/anheyu-post/pkg/service/upload"
	"github.com/gin-gonic/gin"
)

const uploadResultKey = "upload_result"

// multipartMemory 是 multipart 解析时保存在内存中的上限，超出部分落到临时文件
const multipartMemory = 32 << 20

// UploadResult 是上传阶段的结果，由后续 Handler 决定如何响应。
// Err 可能是 image 类的 *model.BlogError，也可能包装了 constant.ErrUploadFault。
type UploadResult struct {
	Image *upload.Image
	Err   error
}

// SingleImageUpload 处理名为 field 的单个图片字段。maxBytes <= 0 表示不限制请求体大小。
// 中间件不会中断请求链，结果通过 GetUploadResult 读取。
func SingleImageUpload(field string, maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := parseSingleImage(c, field, maxBytes)
		if result.Err != nil && errors.Is(result.Err, constant.ErrUploadFault) {
			log.Printf("[Upload] 请求 %s 上传结构错误: %v", GetRequestID(c), result.Err)
		}
		c.Set(uploadResultKey, result)
		c.Next()
	}
}

// GetUploadResult 读取上传结果；未经过 SingleImageUpload 时返回 nil
func GetUploadResult(c *gin.Context) *UploadResult {
	v, ok := c.Get(uploadResultKey)
	if !ok {
		return nil
	}
	result, _ := v.(*UploadResult)
	return result
}

func parseSingleImage(c *gin.Context, field string, maxBytes int64) *UploadResult {
	if maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	}

	if err := c.Request.ParseMultipartForm(multipartMemory); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			// 普通表单提交，不可能带文件
			return &UploadResult{Err: upload.ErrNoFile()}
		}
		return &UploadResult{Err: fmt.Errorf("解析 multipart 请求失败: %v: %w", err, constant.ErrUploadFault)}
	}

	form := c.Request.MultipartForm
	for name, headers := range form.File {
		if name != field {
			return &UploadResult{Err: fmt.Errorf("意外的文件字段 %q: %w", name, constant.ErrUploadFault)}
		}
		if len(headers) > 1 {
			return &UploadResult{Err: fmt.Errorf("字段 %q 包含 %d 个文件: %w", name, len(headers), constant.ErrUploadFault)}
		}
	}

	headers := form.File[field]
	if len(headers) == 0 {
		return &UploadResult{Err: upload.ErrNoFile()}
	}
	header := headers[0]

	if err := upload.CheckFileName(header.Filename); err != nil {
		return &UploadResult{Err: err}
	}

	f, err := header.Open()
	if err != nil {
		return &UploadResult{Err: fmt.Errorf("打开上传文件失败: %v: %w", err, constant.ErrUploadFault)}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return &UploadResult{Err: fmt.Errorf("读取上传文件失败: %v: %w", err, constant.ErrUploadFault)}
	}

	return &UploadResult{Image: &upload.Image{
		Filename: header.Filename,
		MimeType: upload.ResolveMimeType(header.Header.Get("Content-Type"), header.Filename),
		Data:     data,
	}}
}
