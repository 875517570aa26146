// Package web 内嵌首页模板与静态资源
package web

import "embed"

// Content 包含 templates/ 与 static/ 两个目录
//
//go:embed templates static
var Content embed.FS
