package middleware

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anzhiyu-c/anheyu-post/pkg/constant"
	"github.com/anzhiyu-c/anheyu-post/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-post/pkg/service/upload"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type filePart struct {
	field    string
	filename string
	data     []byte
}

func newMultipartRequest(t *testing.T, fields map[string]string, files ...filePart) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.field, f.filename)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/submit", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func runUpload(t *testing.T, req *http.Request, maxBytes int64) *UploadResult {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var got *UploadResult
	engine := gin.New()
	engine.POST("/submit", SingleImageUpload(constant.FormFieldImage, maxBytes), func(c *gin.Context) {
		got = GetUploadResult(c)
		c.Status(http.StatusNoContent)
	})
	engine.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got)
	return got
}

func imageErrorMessage(t *testing.T, err error) string {
	t.Helper()
	var blogErr *model.BlogError
	require.True(t, errors.As(err, &blogErr), "expected *model.BlogError, got %v", err)
	assert.Equal(t, model.ErrorLocationImage, blogErr.Location)
	return blogErr.Message
}

func TestSingleImageUploadAcceptsJPEG(t *testing.T) {
	data := []byte("0123456789")
	req := newMultipartRequest(t, map[string]string{constant.FormFieldTitle: "T"},
		filePart{field: constant.FormFieldImage, filename: "photo.jpg", data: data})

	result := runUpload(t, req, 1<<20)

	require.NoError(t, result.Err)
	require.NotNil(t, result.Image)
	assert.Equal(t, "photo.jpg", result.Image.Filename)
	assert.Equal(t, "image/jpeg", result.Image.MimeType)
	assert.Equal(t, data, result.Image.Data)
}

func TestSingleImageUploadRejectsUnsupportedExtension(t *testing.T) {
	for _, name := range []string{"photo.gif", "photo", "photo.JPG", ".png"} {
		t.Run(name, func(t *testing.T) {
			req := newMultipartRequest(t, nil,
				filePart{field: constant.FormFieldImage, filename: name, data: []byte("gif")})

			result := runUpload(t, req, 1<<20)

			assert.Nil(t, result.Image)
			assert.Equal(t, upload.MessageOnlyImages, imageErrorMessage(t, result.Err))
		})
	}
}

func TestSingleImageUploadMissingFile(t *testing.T) {
	req := newMultipartRequest(t, map[string]string{constant.FormFieldTitle: "T"})

	result := runUpload(t, req, 1<<20)

	assert.Equal(t, upload.MessageFileRequired, imageErrorMessage(t, result.Err))
}

func TestSingleImageUploadNonMultipartBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader("blogTitle=T"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	result := runUpload(t, req, 1<<20)

	assert.Equal(t, upload.MessageFileRequired, imageErrorMessage(t, result.Err))
}

func TestSingleImageUploadStructuralFaults(t *testing.T) {
	tests := []struct {
		name     string
		maxBytes int64
		files    []filePart
	}{
		{
			name:     "body too large",
			maxBytes: 64,
			files:    []filePart{{field: constant.FormFieldImage, filename: "big.png", data: bytes.Repeat([]byte("x"), 4096)}},
		},
		{
			name:     "unexpected file field",
			maxBytes: 1 << 20,
			files: []filePart{
				{field: constant.FormFieldImage, filename: "a.png", data: []byte("a")},
				{field: "other", filename: "b.png", data: []byte("b")},
			},
		},
		{
			name:     "two files in one field",
			maxBytes: 1 << 20,
			files: []filePart{
				{field: constant.FormFieldImage, filename: "a.png", data: []byte("a")},
				{field: constant.FormFieldImage, filename: "b.png", data: []byte("b")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newMultipartRequest(t, nil, tt.files...)

			result := runUpload(t, req, tt.maxBytes)

			assert.Nil(t, result.Image)
			assert.ErrorIs(t, result.Err, constant.ErrUploadFault)
		})
	}
}

func TestGetUploadResultWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, GetUploadResult(c))
}

func TestRequestIDReusesValidHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestID())
	var seen string
	engine.GET("/", func(c *gin.Context) {
		seen = GetRequestID(c)
	})

	const id = "3b241101-e2bb-4255-8caf-4136c566a962"
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, id)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, id, seen)
	assert.Equal(t, id, w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "bogus")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.NotEqual(t, "bogus", seen)
	assert.Len(t, seen, 36)
}
