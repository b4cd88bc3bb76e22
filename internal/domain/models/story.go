// internal/domain/models/story.go
package models

// Story is a published content record rendered as a card on the home and
// stories pages. Rows are read-only from this site's point of view.
type Story struct {
	Title     string       `json:"title" bson:"title"`
	Content   string       `json:"content" bson:"content"`
	StoryDate *Date        `json:"story_date" bson:"story_date"`
	Tag       *string      `json:"tag" bson:"tag"`
	MediaPath *string      `json:"media_path" bson:"media_path"` // absolute URL or path in the stories bucket
	Status    *StoryStatus `json:"status" bson:"status"`
	CreatedAt *Date        `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

// StoryStatus is the publication state of a story. A nil status counts as
// published.
type StoryStatus string

const (
	StoryStatusPublished StoryStatus = "published"
	StoryStatusDraft     StoryStatus = "draft"
)

// Table and column names for stories.
const (
	StoriesTable  = "stories"
	StoriesBucket = "stories"
)

// StoryColumns are the columns selected for story cards.
var StoryColumns = []string{"title", "content", "story_date", "tag", "media_path", "status", "created_at"}
