package corpus

import "time"

// Difficulty is the editorial difficulty rating of an article.
type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

// Author identifies the writer of an article.
type Author struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Article is a single entry in the content library. Articles are
// immutable after the corpus is loaded.
type Article struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Excerpt         string     `json:"excerpt"`
	Content         string     `json:"content"`
	Category        string     `json:"category"`
	Tags            []string   `json:"tags"`
	Author          Author     `json:"author"`
	Difficulty      Difficulty `json:"difficulty"`
	Date            string     `json:"date"`
	ReadTime        string     `json:"readTime"`
	HasCodeExamples bool       `json:"hasCodeExamples"`
	HasDownloads    bool       `json:"hasDownloads"`
	Path            string     `json:"path"`
}

// Category is a browsable article grouping. Icon is an opaque UI
// reference and is never interpreted by the engines.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

var dateLayouts = []string{
	"2006-01-02",
	"Jan 2, 2006",
	"January 2, 2006",
}

// PublishedTime parses the article's display date. A date that matches
// none of the accepted layouts yields the zero time.
func (a Article) PublishedTime() time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, a.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}
