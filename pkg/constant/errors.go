/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-06-27 12:08:15
 * @LastEditTime: 2026-10-12 10:41:07
 * @LastEditors: 安知鱼
 */
package constant

import "errors"

// 定义业务逻辑相关的标准错误
var (
	// ErrNotFound 表示资源未找到，可以由 Handler 转换为 404
	ErrNotFound = errors.New("资源未找到")

	// ErrBadRequest 表示请求参数错误，由表单流程转换为错误提示并重定向
	ErrBadRequest = errors.New("错误的请求")

	// ErrUploadFault 表示上传请求本身结构错误（超出大小、multipart 损坏），不可由用户在表单内修正，转换为 500
	ErrUploadFault = errors.New("上传请求结构错误")

	// ErrInvalidPublicID 表示无效的公共ID，可以由 Handler 转换为 400
	ErrInvalidPublicID = errors.New("无效的公共ID")
)
