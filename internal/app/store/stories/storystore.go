// internal/app/store/stories/storystore.go
package storystore

import (
	"context"

	"github.com/dalemusser/lwandasite/internal/app/system/pagination"
	"github.com/dalemusser/lwandasite/internal/app/system/remote"
	"github.com/dalemusser/lwandasite/internal/domain/models"
)

// PageSize is the number of stories on one page of the stories index.
const PageSize = 9

// HomeCount is the number of stories shown on the home page.
const HomeCount = 3

// Store reads published stories from the backend.
type Store struct {
	provider *remote.Provider
}

// New creates a story store.
func New(p *remote.Provider) *Store {
	return &Store{provider: p}
}

// baseQuery selects published stories (status null or "published"), newest
// story_date first with undated stories last, ties broken by created_at.
func baseQuery() remote.Query {
	return remote.Query{
		Table:   models.StoriesTable,
		Columns: models.StoryColumns,
		Filters: []remote.Filter{
			remote.Or(
				remote.IsNull("status"),
				remote.Eq("status", string(models.StoryStatusPublished)),
			),
		},
		Order: []remote.Order{
			remote.Desc("story_date"),
			remote.Desc("created_at"),
		},
	}
}

// Latest returns the n most recent published stories.
func (s *Store) Latest(ctx context.Context, n int) ([]models.Story, error) {
	c, err := s.provider.Client()
	if err != nil {
		return nil, err
	}
	q := baseQuery()
	q.Limit = n

	var out []models.Story
	if err := c.Select(ctx, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Page returns page p (1-indexed) of published stories, size rows per page.
// A page past the end returns no rows and no error.
func (s *Store) Page(ctx context.Context, page, size int) ([]models.Story, error) {
	c, err := s.provider.Client()
	if err != nil {
		return nil, err
	}
	from, to := pagination.Range(page, size)
	q := baseQuery()
	q.Range = &remote.Range{From: from, To: to}

	var out []models.Story
	if err := c.Select(ctx, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PublicURL resolves a path in a bucket, or "" when the backend is not
// configured.
func (s *Store) PublicURL(bucket, path string) string {
	c, err := s.provider.Client()
	if err != nil {
		return ""
	}
	return c.PublicURL(bucket, path)
}
