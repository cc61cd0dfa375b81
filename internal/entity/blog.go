package entity

import "time"

const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
)

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

const (
	MediaPlacementHeader = "header"
	MediaPlacementInline = "inline"
	MediaPlacementFooter = "footer"
)

var BlogCategories = []string{
	"technology",
	"lifestyle",
	"travel",
	"food",
	"business",
	"health",
	"education",
	"other",
}

func IsValidCategory(category string) bool {
	for _, c := range BlogCategories {
		if c == category {
			return true
		}
	}
	return false
}

type Blog struct {
	ID          string     `db:"id"`
	Title       string     `db:"title"`
	Content     string     `db:"content"`
	Excerpt     string     `db:"excerpt"`
	Category    string     `db:"category"`
	Tags        []string   `db:"tags"`
	Status      string     `db:"status"`
	MediaType   string     `db:"media_type"`
	MediaURL    string     `db:"media_url"`
	AuthorID    string     `db:"author_id"`
	Views       int        `db:"views"`
	ReadTime    int        `db:"read_time"`
	PublishedAt *time.Time `db:"published_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`

	// Denormalized per-request annotations, never stored.
	Author    User
	IsLiked   bool
	LikeCount int
	Gallery   []MediaItem
}

// MediaItem is one entry of a blog's media gallery.
type MediaItem struct {
	ID        string `db:"id"`
	BlogID    string `db:"blog_id"`
	Type      string `db:"type"`
	URL       string `db:"url"`
	Placement string `db:"placement"`
	Position  int    `db:"position"`
}

type Comment struct {
	ID        string    `db:"id"`
	BlogID    string    `db:"blog_id"`
	UserID    string    `db:"user_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`

	Author User
}
