package handler

import (
	"html/template"
	"net/url"
	"strconv"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/microcosm-cc/bluemonday"

	"yatube/domain"
	"yatube/pager"
)

type PostDTO struct {
	ID         int64
	Title      string
	Excerpt    string
	Content    template.HTML
	Author     string
	GroupTitle string
	GroupSlug  string
	CreatedAt  string
}

func toPostDTO(p domain.Post) PostDTO {
	dto := PostDTO{
		ID:        p.ID,
		Title:     p.Text,
		Excerpt:   p.String(),
		Content:   safeMd(p.Text),
		Author:    p.Author.Username,
		CreatedAt: p.CreatedAt.Format(time.DateOnly),
	}
	if p.Group != nil {
		dto.GroupTitle = p.Group.Title
		dto.GroupSlug = p.Group.Slug
	}
	return dto
}

// PageDTO is a page of rendered posts with its navigation.
type PageDTO struct {
	Posts         []PostDTO
	Number        int
	NumPages      int
	Count         int
	HasNext       bool
	HasPrevious   bool
	HasOtherPages bool
	Next          int
	Previous      int
	StartIndex    int
	EndIndex      int
	PageRange     []int
}

func toPageDTO(p pager.Page[domain.Post]) PageDTO {
	dto := PageDTO{
		Posts:         make([]PostDTO, 0, len(p.Items)),
		Number:        p.Number,
		NumPages:      p.NumPages,
		Count:         p.Count,
		HasNext:       p.HasNext(),
		HasPrevious:   p.HasPrevious(),
		HasOtherPages: p.HasOtherPages(),
		Next:          p.NextPageNumber(),
		Previous:      p.PreviousPageNumber(),
		StartIndex:    p.StartIndex(),
		EndIndex:      p.EndIndex(),
		PageRange:     p.PageRange(),
	}
	for _, post := range p.Items {
		dto.Posts = append(dto.Posts, toPostDTO(post))
	}
	return dto
}

// Layout carries what every page template needs.
type Layout struct {
	Title string
	Actor *domain.Actor
	CSRF  string
}

func layout(c echo.Context, title string) Layout {
	csrf, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	return Layout{
		Title: title,
		Actor: actor(c),
		CSRF:  csrf,
	}
}

func postPath(id int64) string {
	return "/posts/" + strconv.FormatInt(id, 10) + "/"
}

func profilePath(username string) string {
	return "/profile/" + url.PathEscape(username) + "/"
}

func mdToHTML(md string) []byte {
	// create markdown parser with extensions
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs | parser.NoEmptyLineBeforeBlock
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(md))

	// create HTML renderer with extensions
	htmlFlags := html.CommonFlags | html.HrefTargetBlank
	opts := html.RendererOptions{Flags: htmlFlags}
	renderer := html.NewRenderer(opts)

	return markdown.Render(doc, renderer)
}

func safeMd(content string) template.HTML {
	return template.HTML(bluemonday.UGCPolicy().SanitizeBytes(mdToHTML(content)))
}
