package constant

// 表单字段名，与 web/templates/index.html 保持一致
const (
	FormFieldTitle   = "blogTitle"
	FormFieldAuthor  = "blogAuthor"
	FormFieldContent = "blogContent"
	FormFieldImage   = "blogImg"
	FormFieldID      = "blogId"
)

// FlashCookieName 是携带本次提交错误令牌的 Cookie 名
const FlashCookieName = "blog_flash"
