package post

import (
	"github.com/anzhiyu-c/anheyu-post/pkg/constant"
	"github.com/anzhiyu-c/anheyu-post/pkg/domain/model"
)

const (
	MessageTitleRequired   = "A title must be specified!"
	MessageAuthorRequired  = "An author must be specified!"
	MessageContentRequired = "There must be some content to the blog post!"
)

// ValidateFields 按 title -> author -> content 的固定顺序检查必填字段，
// 返回遇到的第一个缺失字段错误；图片由上传过滤器提前校验，这里不检查。
func ValidateFields(params SubmitParams) *model.BlogError {
	switch {
	case params.Title == "":
		return model.NewBlogErrorWrap(model.ErrorLocationTitle, MessageTitleRequired, constant.ErrBadRequest)
	case params.Author == "":
		return model.NewBlogErrorWrap(model.ErrorLocationAuthor, MessageAuthorRequired, constant.ErrBadRequest)
	case params.Content == "":
		return model.NewBlogErrorWrap(model.ErrorLocationContent, MessageContentRequired, constant.ErrBadRequest)
	}
	return nil
}
