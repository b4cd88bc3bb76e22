// internal/domain/models/gallery.go
package models

// GalleryBucket is the storage bucket holding gallery images, one folder
// per category.
const GalleryBucket = "gallery"

// GalleryCategory is a tab on the gallery page backed by one bucket folder.
type GalleryCategory struct {
	Key    string // URL key: ?category=<Key>
	Label  string // tab label and alt-text prefix
	Folder string // folder inside the gallery bucket
}

// GalleryCategories lists the tabs in display order. The first one is
// selected when the request names none.
var GalleryCategories = []GalleryCategory{
	{Key: "education", Label: "Education", Folder: "education"},
	{Key: "sponsorship", Label: "Sponsorship", Folder: "sponsorship"},
	{Key: "communitywork", Label: "Community Work", Folder: "community_work"},
	{Key: "celebration", Label: "Celebrations", Folder: "celebration"},
}

// DefaultGalleryCategory returns the category shown first.
func DefaultGalleryCategory() GalleryCategory {
	return GalleryCategories[0]
}

// GalleryCategoryByKey looks up a category by its URL key.
func GalleryCategoryByKey(key string) (GalleryCategory, bool) {
	for _, c := range GalleryCategories {
		if c.Key == key {
			return c, true
		}
	}
	return GalleryCategory{}, false
}

// GalleryItem is one image in a category listing.
type GalleryItem struct {
	Name string // file name inside the folder
	Path string // folder/name, the object path in the bucket
	URL  string // public URL
	Alt  string // "<category label> - <name>"
}
