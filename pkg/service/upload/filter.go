/*
 * @Description: 上传文件过滤器，按扩展名放行图片
 * @Author: 安知鱼
 * @Date: 2026-10-12 13:40:27
 * @LastEditTime: 2026-10-13 10:18:55
 * @LastEditors: 安知鱼
 */
package upload

import (
	"path/filepath"
	"strings"

	"github.com/anzhiyu-c/anheyu-post/pkg/constant"
	"github.com/anzhiyu-c/anheyu-post/pkg/domain/model"
)

const (
	MessageOnlyImages   = "Only images are allowed!"
	MessageFileRequired = "A file must be selected!"
)

// allowedExts 区分大小写，"photo.PNG" 会被拒绝
var allowedExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// fileExt 返回文件名的扩展名；以点开头且没有其他点的文件名（如 ".png"）视为没有扩展名
func fileExt(name string) string {
	base := filepath.Base(name)
	if strings.LastIndex(base, ".") <= 0 {
		return ""
	}
	return filepath.Ext(base)
}

// CheckFileName 根据声明的文件名检查扩展名，非图片返回 image 类错误
func CheckFileName(name string) error {
	if !allowedExts[fileExt(name)] {
		return model.NewBlogErrorWrap(model.ErrorLocationImage, MessageOnlyImages, constant.ErrBadRequest)
	}
	return nil
}

// ErrNoFile 返回未选择文件时的 image 类错误
func ErrNoFile() error {
	return model.NewBlogErrorWrap(model.ErrorLocationImage, MessageFileRequired, constant.ErrBadRequest)
}
