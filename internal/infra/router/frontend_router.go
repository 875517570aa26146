package router

import (
	"crypto/md5"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/anzhiyu-c/anheyu-post/pkg/config"
	"github.com/anzhiyu-c/anheyu-post/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

type CustomHTMLRender struct{ Templates *template.Template }

func (r CustomHTMLRender) Instance(name string, data interface{}) render.Render {
	return render.HTML{Template: r.Templates, Name: name, Data: data}
}

// 全局 Debug 标志
var isDebugMode bool

// debugLog 根据 Debug 配置条件性地打印日志
func debugLog(format string, v ...interface{}) {
	if isDebugMode {
		log.Printf(format, v...)
	}
}

// SetupFrontend 配置首页模板渲染与 /static 静态资源。
// content 需包含 templates/index.html 与 static/ 目录；配置了 Static.Dir 时静态资源从该目录读取。
func SetupFrontend(engine *gin.Engine, content fs.FS, cfg *config.Config) error {
	isDebugMode = cfg.GetBool(config.KeyServerDebug)

	templatesFS, err := fs.Sub(content, "templates")
	if err != nil {
		return fmt.Errorf("无法创建 'templates' 子文件系统: %w", err)
	}
	funcMap := template.FuncMap{
		"year": func() int { return time.Now().Year() },
	}
	templates, err := template.New("index.html").Funcs(funcMap).ParseFS(templatesFS, "index.html")
	if err != nil {
		return fmt.Errorf("解析HTML模板失败: %w", err)
	}
	engine.HTMLRender = CustomHTMLRender{Templates: templates}

	staticFS, source, err := resolveStaticFS(content, cfg.GetString(config.KeyStaticDir))
	if err != nil {
		return err
	}
	log.Printf("🎨 静态资源来源: %s", source)

	engine.GET("/static/*filepath", func(c *gin.Context) {
		serveStaticFile(c, staticFS, c.Param("filepath"))
	})

	engine.NoRoute(func(c *gin.Context) {
		debugLog("未匹配的路由: %s %s", c.Request.Method, c.Request.URL.Path)
		response.Fail(c, http.StatusNotFound, "资源不存在")
	})
	return nil
}

// resolveStaticFS 优先使用外部目录，目录不存在时回退到内嵌资源
func resolveStaticFS(content fs.FS, dir string) (fs.FS, string, error) {
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return os.DirFS(dir), "外部目录 " + dir, nil
		}
		log.Printf("⚠️ 静态资源目录 %s 不存在，回退到内嵌资源", dir)
	}
	sub, err := fs.Sub(content, "static")
	if err != nil {
		return nil, "", fmt.Errorf("无法创建 'static' 子文件系统: %w", err)
	}
	return sub, "内嵌资源 (embed)", nil
}

// serveStaticFile 从 fsys 中读取文件并处理协商缓存
func serveStaticFile(c *gin.Context, fsys fs.FS, requestPath string) {
	name := strings.TrimPrefix(path.Clean("/"+requestPath), "/")
	if name == "" || !fs.ValidPath(name) {
		c.Status(http.StatusNotFound)
		return
	}

	info, err := fs.Stat(fsys, name)
	if err != nil || info.IsDir() {
		debugLog("静态资源不存在: %s", name)
		c.Status(http.StatusNotFound)
		return
	}

	etag := generateFileETag(name, info.ModTime(), info.Size())
	if handleStaticFileConditionalRequest(c, etag) {
		return
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		log.Printf("读取静态资源 %s 失败: %v", name, err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("ETag", etag)
	c.Header("Cache-Control", "public, max-age=31536000, must-revalidate")
	c.Data(http.StatusOK, getContentType(name), data)
}

// generateFileETag 使用文件路径、修改时间和大小生成ETag，避免对内容做哈希
func generateFileETag(filePath string, modTime time.Time, size int64) string {
	data := fmt.Sprintf("%s-%d-%d", filePath, modTime.Unix(), size)
	hash := md5.Sum([]byte(data))
	return fmt.Sprintf(`"static-%x"`, hash)
}

// handleStaticFileConditionalRequest 处理静态文件的条件请求
func handleStaticFileConditionalRequest(c *gin.Context, etag string) bool {
	ifNoneMatch := c.GetHeader("If-None-Match")
	if ifNoneMatch != "" && ifNoneMatch == etag {
		// 内容未修改，返回304
		c.Header("ETag", etag)
		c.Header("Cache-Control", "public, max-age=31536000, must-revalidate")
		c.Status(http.StatusNotModified)
		return true
	}
	return false
}

// getContentType 根据文件扩展名获取MIME类型
func getContentType(filePath string) string {
	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".js":
		return "application/javascript; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	case ".html":
		return "text/html; charset=utf-8"
	case ".json":
		return "application/json; charset=utf-8"
	case ".svg":
		return "image/svg+xml"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".ico":
		return "image/x-icon"
	case ".woff2":
		return "font/woff2"
	default:
		return "application/octet-stream"
	}
}
