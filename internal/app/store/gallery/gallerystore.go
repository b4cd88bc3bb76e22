// internal/app/store/gallery/gallerystore.go
package gallerystore

import (
	"context"
	"regexp"

	"github.com/dalemusser/lwandasite/internal/app/system/remote"
	"github.com/dalemusser/lwandasite/internal/domain/models"
)

// ListLimit caps how many entries one category listing returns.
const ListLimit = 100

var imageName = regexp.MustCompile(`(?i)\.(png|jpe?g|webp|gif|svg)$`)

// IsImage reports whether name has one of the recognized image extensions.
func IsImage(name string) bool {
	return imageName.MatchString(name)
}

// Store lists gallery images from the backend's storage.
type Store struct {
	provider *remote.Provider
}

// New creates a gallery store.
func New(p *remote.Provider) *Store {
	return &Store{provider: p}
}

// List returns the images in cat's folder, sorted by name descending.
// Entries that are not images (folders, documents) are dropped.
func (s *Store) List(ctx context.Context, cat models.GalleryCategory) ([]models.GalleryItem, error) {
	c, err := s.provider.Client()
	if err != nil {
		return nil, err
	}
	objs, err := c.ListObjects(ctx, models.GalleryBucket, cat.Folder, remote.ListOptions{
		Limit:      ListLimit,
		Descending: true,
	})
	if err != nil {
		return nil, err
	}

	items := make([]models.GalleryItem, 0, len(objs))
	for _, o := range objs {
		if o.Name == "" || !IsImage(o.Name) {
			continue
		}
		p := cat.Folder + "/" + o.Name
		items = append(items, models.GalleryItem{
			Name: o.Name,
			Path: p,
			URL:  c.PublicURL(models.GalleryBucket, p),
			Alt:  cat.Label + " - " + o.Name,
		})
	}
	return items, nil
}
