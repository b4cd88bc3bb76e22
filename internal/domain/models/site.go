// internal/domain/models/site.go
package models

// Site-wide defaults shown in the header, footer, and contact details.
const (
	DefaultSiteName  = "KE 258 Lwanda CDC"
	DefaultSiteTitle = "KE 258 FGCK Lwanda Child Development Centre"

	ContactLocation    = "Lwanda, Kenya"
	ContactEmail       = "ke258fgcklwandacdc@gmail.com"
	ContactPhone       = "+254 723 783 472"
	ContactPhoneHref   = "tel:+254723783472"
	ContactOfficeHours = "Mon - Fri: 8:00 AM - 5:00 PM"
	ContactMapEmbedURL = "https://www.google.com/maps?q=David%20Obonyo%2C%20Lwanda%2C%20Kenya&output=embed"
	ContactMapLinkURL  = "https://www.google.com/maps/search/?api=1&query=David+Obonyo+Lwanda+Kenya"
)

// HeroBucket holds per-page hero images named after the page key
// (about.jpg, contact.png, ...).
const HeroBucket = "hero"

// HomeHeroObject is the home page hero inside HeroBucket, used when no
// explicit home hero URL is configured.
const HomeHeroObject = "hero_image.jpg"

// Page keys used for hero image lookup and navigation highlighting.
const (
	PageHome    = "home"
	PageAbout   = "about"
	PageStories = "stories"
	PageGallery = "gallery"
	PageContact = "contact"
)

// Bundled fallback hero images, served from /static.
const (
	FallbackHeroHome    = "/static/images/children-and-families-in-lwanda-kenya-community.png"
	FallbackHeroAbout   = "/static/images/children-and-families-in-lwanda-kenya-community.png"
	FallbackHeroContact = "/static/images/children-playing-in-kenya-community-center.png"
	FallbackHeroStories = "/static/images/graduation-ceremony-kenya-children.png"
	FallbackHeroGallery = "/static/images/children-performing-at-kenya-community-event.png"
)

// NavItem is one link in the site header.
type NavItem struct {
	Key   string
	Label string
	Href  string
}

// NavItems is the site header navigation in display order.
var NavItems = []NavItem{
	{Key: PageHome, Label: "Home", Href: "/"},
	{Key: PageAbout, Label: "About", Href: "/about"},
	{Key: PageStories, Label: "Stories", Href: "/stories"},
	{Key: PageGallery, Label: "Gallery", Href: "/gallery"},
	{Key: PageContact, Label: "Contact", Href: "/contact"},
}
