package entity

// Article status values.
const (
	StatusDraft   = "draft"
	StatusPublish = "publish"
)

// Article type values. A "page" is a standalone article addressed by
// title (about, links, ...) rather than listed in the post stream.
const (
	TypePost = "post"
	TypePage = "page"
)

// Article represents a piece of authored content: a blog post or a
// standalone page. Content is stored as markdown source; rendering to
// HTML happens on the read path. Hits is the persisted, authoritative
// view count; pending increments live in the hit aggregator until
// flushed. Tags and Category are stored as delimited text.
type Article struct {
	Record
	Title        string
	Content      string
	AuthorID     int64
	Hits         int64
	Tags         string
	Category     string
	Status       string
	Type         string
	AllowComment bool
	CommentCount int64
}

// IsPublished reports whether the article is visible to readers.
func (a *Article) IsPublished() bool {
	return a.Status == StatusPublish
}
