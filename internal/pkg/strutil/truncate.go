/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-08 16:10:53
 * @LastEditTime: 2026-10-13 14:02:31
 * @LastEditors: 安知鱼
 */
package strutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Ellipsis 是截断后追加的后缀
const Ellipsis = "..."

// Truncate 按字符（rune）截断字符串，超出 maxLength 时去掉尾部空白并追加省略号。
// maxLength <= 0 时返回空字符串。
func Truncate(s string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}

	runes := []rune(s)
	cut := strings.TrimRightFunc(string(runes[:maxLength]), unicode.IsSpace)
	return cut + Ellipsis
}
