package post

import (
	"html/template"
	"log"
	"time"

	"github.com/anzhiyu-c/anheyu-post/internal/pkg/parser"
	"github.com/anzhiyu-c/anheyu-post/pkg/domain/model"
	"github.com/anzhiyu-c/anheyu-post/pkg/idgen"
)

// excerptLength 是列表中摘要的最大字符数
const excerptLength = 120

// PostView 是首页模板使用的文章结构
type PostView struct {
	ID        uint64
	PublicID  string
	Title     string
	Author    string
	Photo     template.URL // 由服务端生成的 data URI，可直接放入 src
	Content   template.HTML
	Excerpt   string
	CreatedAt time.Time
}

// IndexPage 是 index.html 的模板数据
type IndexPage struct {
	Posts []PostView
	Error *model.BlogError
	Count int
}

func newPostView(p model.Post) PostView {
	view := PostView{
		ID:        p.ID,
		Title:     p.Title,
		Author:    p.Author,
		Photo:     template.URL(p.Photo),
		CreatedAt: p.CreatedAt,
	}

	publicID, err := idgen.GeneratePublicID(p.ID, idgen.EntityTypePost)
	if err != nil {
		log.Printf("[PostHandler] 生成文章 %d 的公共ID失败: %v", p.ID, err)
	}
	view.PublicID = publicID

	contentHTML, err := parser.MarkdownToHTML(p.Content)
	if err != nil {
		log.Printf("[PostHandler] 渲染文章 %d 内容失败，回退为纯文本: %v", p.ID, err)
		contentHTML = template.HTMLEscapeString(p.Content)
	}
	view.Content = template.HTML(contentHTML)
	view.Excerpt = parser.ExcerptFromHTML(contentHTML, excerptLength)
	return view
}

func newPostDTO(p model.Post) (model.PostDTO, error) {
	publicID, err := idgen.GeneratePublicID(p.ID, idgen.EntityTypePost)
	if err != nil {
		return model.PostDTO{}, err
	}
	return model.PostDTO{
		ID:        publicID,
		Title:     p.Title,
		Content:   p.Content,
		Photo:     p.Photo,
		Author:    p.Author,
		CreatedAt: p.CreatedAt,
	}, nil
}
