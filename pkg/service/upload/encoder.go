/*
 * @Description: 将上传图片编码为可直接内联的 data URI
 * @Author: 安知鱼
 * @Date: 2026-10-12 13:52:10
 * @LastEditTime: 2026-10-12 13:52:10
 * @LastEditors: 安知鱼
 */
package upload

import (
	"encoding/base64"
	"mime"
	"path/filepath"
	"strings"
)

const octetStream = "application/octet-stream"

// Image 是完整读入内存的上传图片
type Image struct {
	Filename string
	MimeType string
	Data     []byte
}

// DataURI 返回图片的 data URI 形式
func (img *Image) DataURI() string {
	return ToDataURI(img.Data, img.MimeType)
}

// ToDataURI 生成 data:<mime>;base64,<payload>，不做压缩和大小限制
func ToDataURI(data []byte, mimeType string) string {
	var b strings.Builder
	b.Grow(len("data:;base64,") + len(mimeType) + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString("data:")
	b.WriteString(mimeType)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}

// ResolveMimeType 优先使用客户端声明的类型；
// 未声明或为 application/octet-stream 时按扩展名推断
func ResolveMimeType(declared, filename string) string {
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != octetStream {
		return declared
	}
	if byExt := mime.TypeByExtension(filepath.Ext(filename)); byExt != "" {
		// TypeByExtension 可能带参数，例如 "text/plain; charset=utf-8"
		if mediaType, _, err := mime.ParseMediaType(byExt); err == nil {
			return mediaType
		}
		return byExt
	}
	return octetStream
}
