/*
 * @Description: 文章正文渲染，Markdown 转安全 HTML
 * @Author: 安知鱼
 * @Date: 2025-08-08 15:57:23
 * @LastEditTime: 2026-10-13 15:10:44
 * @LastEditors: 安知鱼
 */
package parser

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var mdParser goldmark.Markdown
var policy *bluemonday.Policy

func init() {
	// 投稿正文来自匿名表单，只开启 GFM，不生成标题锚点
	mdParser = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // 表单里的换行按原样保留
			html.WithUnsafe(),    // 原始 HTML 交给 bluemonday 清理
		),
	)

	policy = bluemonday.UGCPolicy()
	// GFM 表格
	policy.AllowElements("table", "thead", "tbody", "tr", "th", "td")
}

// MarkdownToHTML 将 Markdown 字符串转换为安全的 HTML 字符串
func MarkdownToHTML(mdContent string) (string, error) {
	var buf bytes.Buffer
	if err := mdParser.Convert([]byte(mdContent), &buf); err != nil {
		return "", fmt.Errorf("渲染 Markdown 失败: %w", err)
	}
	return policy.Sanitize(buf.String()), nil
}
