/*
 * @Description: 表单提交流程中的带位置错误
 * @Author: 安知鱼
 * @Date: 2026-10-12 11:05:43
 * @LastEditTime: 2026-10-13 09:12:30
 * @LastEditors: 安知鱼
 */
package model

// ErrorLocation 标识出错的表单字段
type ErrorLocation string

const (
	ErrorLocationTitle   ErrorLocation = "title"
	ErrorLocationContent ErrorLocation = "content"
	ErrorLocationImage   ErrorLocation = "image"
	ErrorLocationAuthor  ErrorLocation = "author"
	ErrorLocationID      ErrorLocation = "id"
)

// BlogError 携带出错字段和面向用户的提示信息。
// Err 为 pkg/constant 中的哨兵错误，便于 Handler 使用 errors.Is 映射状态码。
type BlogError struct {
	Location ErrorLocation `json:"location"`
	Message  string        `json:"message"`
	Err      error         `json:"-"`
}

// NewBlogError 创建一个不包装哨兵错误的 BlogError
func NewBlogError(location ErrorLocation, message string) *BlogError {
	return &BlogError{Location: location, Message: message}
}

// NewBlogErrorWrap 创建一个包装了哨兵错误的 BlogError
func NewBlogErrorWrap(location ErrorLocation, message string, err error) *BlogError {
	return &BlogError{Location: location, Message: message, Err: err}
}

func (e *BlogError) Error() string {
	return e.Message
}

func (e *BlogError) Unwrap() error {
	return e.Err
}
