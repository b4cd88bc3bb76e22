// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"time"

	"github.com/dalemusser/lwandasite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// NavLink is one header navigation entry.
type NavLink struct {
	Label  string
	Href   string
	Active bool
}

// ContactInfo is shown in the footer and on the contact page.
type ContactInfo struct {
	Location  string
	Email     string
	Phone     string
	PhoneHref string
	Hours     string
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.New(r, "Page Title", models.PageAbout),
//	}
type BaseVM struct {
	// Site chrome
	SiteName  string
	SiteTitle string
	Nav       []NavLink
	Contact   ContactInfo
	Year      int

	// Page context
	Title       string
	ActivePage  string
	CurrentPath string

	// Security
	CSRFToken string // CSRF token for forms (use in hidden input field)
}

var siteName = models.DefaultSiteName

// Init sets the site name shown in the header and footer.
// Call this once at startup from bootstrap.
func Init(name string) {
	if name != "" {
		siteName = name
	}
}

// SiteName returns the configured site name.
func SiteName() string {
	return siteName
}

// New creates a BaseVM for a page. page is one of the models.Page* keys
// and selects the highlighted navigation entry.
func New(r *http.Request, title, page string) BaseVM {
	nav := make([]NavLink, 0, len(models.NavItems))
	for _, it := range models.NavItems {
		nav = append(nav, NavLink{Label: it.Label, Href: it.Href, Active: it.Key == page})
	}

	vm := BaseVM{
		SiteName:  siteName,
		SiteTitle: models.DefaultSiteTitle,
		Nav:       nav,
		Contact: ContactInfo{
			Location:  models.ContactLocation,
			Email:     models.ContactEmail,
			Phone:     models.ContactPhone,
			PhoneHref: models.ContactPhoneHref,
			Hours:     models.ContactOfficeHours,
		},
		Year:        time.Now().Year(),
		Title:       title,
		ActivePage:  page,
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
	}
	return vm
}

// PageTitle returns "<title> | <site>" or just the site title.
func (vm BaseVM) PageTitle() string {
	if vm.Title == "" {
		return vm.SiteTitle
	}
	return vm.Title + " | " + vm.SiteName
}

// Link is a call-to-action button.
type Link struct {
	Text string
	Href string
}

// Hero is the full-width banner at the top of a page.
type Hero struct {
	Title       string
	Subtitle    string
	Description string
	Image       string // background image URL; empty renders the gradient only
	Primary     *Link
	Secondary   *Link
}

// CTA is the call-to-action banner near the bottom of a page.
type CTA struct {
	Title       string
	Description string
	Primary     Link
	Secondary   Link
}

// JoinUsCTA is the banner shared by the home and stories pages.
func JoinUsCTA() CTA {
	return CTA{
		Title:       "Join Us in Making a Difference",
		Description: "Your support can change a child's life forever. Partner with us today.",
		Primary:     Link{Text: "Donate Now", Href: "/contact?subject=sponsorship"},
		Secondary:   Link{Text: "Get Involved", Href: "/contact?subject=volunteer"},
	}
}
