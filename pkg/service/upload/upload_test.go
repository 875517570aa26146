package upload

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/anzhiyu-c/anheyu-post/pkg/constant"
	"github.com/anzhiyu-c/anheyu-post/pkg/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFileName(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		allowed bool
	}{
		{name: "png", file: "cat.png", allowed: true},
		{name: "jpg", file: "cat.jpg", allowed: true},
		{name: "jpeg", file: "cat.jpeg", allowed: true},
		{name: "多个点", file: "my.holiday.photo.jpeg", allowed: true},
		{name: "gif", file: "photo.gif", allowed: false},
		{name: "无扩展名", file: "photo", allowed: false},
		{name: "大写扩展名", file: "photo.PNG", allowed: false},
		{name: "伪装扩展名", file: "photo.png.exe", allowed: false},
		{name: "空文件名", file: "", allowed: false},
		{name: "只有扩展名 png", file: ".png", allowed: false},
		{name: "只有扩展名 jpg", file: ".jpg", allowed: false},
		{name: "只有扩展名 jpeg", file: ".jpeg", allowed: false},
		{name: "隐藏文件带扩展名", file: ".hidden.png", allowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckFileName(tt.file)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			var blogErr *model.BlogError
			require.True(t, errors.As(err, &blogErr))
			assert.Equal(t, model.ErrorLocationImage, blogErr.Location)
			assert.Equal(t, MessageOnlyImages, blogErr.Message)
			assert.ErrorIs(t, err, constant.ErrBadRequest)
		})
	}
}

func TestErrNoFile(t *testing.T) {
	var blogErr *model.BlogError
	require.True(t, errors.As(ErrNoFile(), &blogErr))
	assert.Equal(t, model.ErrorLocationImage, blogErr.Location)
	assert.Equal(t, MessageFileRequired, blogErr.Message)
}

func TestToDataURIRoundTrip(t *testing.T) {
	payloads := [][]byte{
		{},
		[]byte("0123456789"),
		{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0xff},
		make([]byte, 4097),
	}
	for i := range payloads[3] {
		payloads[3][i] = byte(i * 7)
	}

	for _, mimeType := range []string{"image/png", "image/jpeg"} {
		for _, data := range payloads {
			uri := ToDataURI(data, mimeType)
			prefix := "data:" + mimeType + ";base64,"
			require.True(t, strings.HasPrefix(uri, prefix), uri)

			decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
			require.NoError(t, err)
			assert.Equal(t, len(data), len(decoded))
			assert.True(t, string(data) == string(decoded))
		}
	}
}

func TestImageDataURI(t *testing.T) {
	img := &Image{Filename: "a.jpg", MimeType: "image/jpeg", Data: []byte("abc")}
	assert.Equal(t, "data:image/jpeg;base64,YWJj", img.DataURI())
}

func TestResolveMimeType(t *testing.T) {
	tests := []struct {
		name     string
		declared string
		filename string
		want     string
	}{
		{name: "使用声明类型", declared: "image/png", filename: "a.jpg", want: "image/png"},
		{name: "octet-stream 按扩展名推断", declared: "application/octet-stream", filename: "a.jpg", want: "image/jpeg"},
		{name: "未声明 jpeg", declared: "", filename: "a.jpeg", want: "image/jpeg"},
		{name: "未声明 png", declared: "", filename: "a.png", want: "image/png"},
		{name: "无法推断", declared: "", filename: "a", want: "application/octet-stream"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveMimeType(tt.declared, tt.filename))
		})
	}
}
