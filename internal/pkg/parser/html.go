/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-08 16:10:36
 * @LastEditTime: 2026-10-13 15:12:20
 * @LastEditors: 安知鱼
 */
package parser

import (
	"html"
	"strings"

	"github.com/anzhiyu-c/anheyu-post/internal/pkg/strutil"
	"github.com/microcosm-cc/bluemonday"
)

var stripTagsPolicy *bluemonday.Policy

func init() {
	// StripTagsPolicy 会移除所有的HTML标签
	stripTagsPolicy = bluemonday.StripTagsPolicy()
}

// StripHTML 接受一个HTML字符串，返回一个去除了所有标签的纯文本字符串。
func StripHTML(htmlContent string) string {
	return stripTagsPolicy.Sanitize(htmlContent)
}

// Excerpt 返回 Markdown 正文的纯文本摘要
func Excerpt(mdContent string, maxLength int) string {
	rendered, err := MarkdownToHTML(mdContent)
	if err != nil {
		rendered = mdContent
	}
	return ExcerptFromHTML(rendered, maxLength)
}

// ExcerptFromHTML 从已渲染的 HTML 生成纯文本摘要，连续空白折叠为一个空格
func ExcerptFromHTML(htmlContent string, maxLength int) string {
	text := html.UnescapeString(StripHTML(htmlContent))
	text = strings.Join(strings.Fields(text), " ")
	return strutil.Truncate(text, maxLength)
}
