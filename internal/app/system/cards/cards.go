// Package cards maps story rows to the display shape used by the story card
// template.
package cards

import (
	"net/http"
	"strings"

	"github.com/dalemusser/lwandasite/internal/domain/models"
	"golang.org/x/text/language"
)

// ExcerptLength is the number of characters kept from a story's content.
const ExcerptLength = 160

// StoriesHref is where every story card links.
const StoriesHref = "/stories"

// Card is a story ready for rendering. Empty strings mean "absent".
type Card struct {
	Title    string
	Excerpt  string
	Date     string
	ImageURL string
	Category string
	Href     string
}

// URLResolver derives a public URL for an object in a bucket.
type URLResolver interface {
	PublicURL(bucket, path string) string
}

// Excerpt returns the first ExcerptLength characters of content. It is a
// hard cut with no trimming.
func Excerpt(content string) string {
	n := 0
	for i := range content {
		if n == ExcerptLength {
			return content[:i]
		}
		n++
	}
	return content
}

// ImageURL returns mediaPath unchanged when it is already an http(s) URL,
// the public URL in the stories bucket when it is a storage path, and ""
// when there is no media. A nil resolver leaves storage paths unresolved.
func ImageURL(mediaPath *string, resolver URLResolver) string {
	if mediaPath == nil {
		return ""
	}
	p := strings.TrimSpace(*mediaPath)
	if p == "" {
		return ""
	}
	if hasHTTPScheme(p) {
		return p
	}
	if resolver == nil {
		return ""
	}
	return resolver.PublicURL(models.StoriesBucket, p)
}

func hasHTTPScheme(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// FromStory builds the card for s.
func FromStory(s models.Story, loc Locale, resolver URLResolver) Card {
	c := Card{
		Title:    s.Title,
		Excerpt:  Excerpt(s.Content),
		Date:     loc.FormatDate(s.StoryDate),
		ImageURL: ImageURL(s.MediaPath, resolver),
		Href:     StoriesHref,
	}
	if s.Tag != nil {
		c.Category = strings.TrimSpace(*s.Tag)
	}
	return c
}

// FromStories maps rows in order.
func FromStories(rows []models.Story, loc Locale, resolver URLResolver) []Card {
	out := make([]Card, 0, len(rows))
	for _, s := range rows {
		out = append(out, FromStory(s, loc, resolver))
	}
	return out
}

// Locale formats dates for one negotiated language.
type Locale struct {
	Tag    language.Tag
	layout string
}

type localeFormat struct {
	tag    language.Tag
	layout string
}

// The first entry is the fallback.
var localeFormats = []localeFormat{
	{language.AmericanEnglish, "1/2/2006"},
	{language.BritishEnglish, "02/01/2006"},
	{language.MustParse("en-KE"), "02/01/2006"},
	{language.MustParse("sw-KE"), "2/1/2006"},
	{language.French, "02/01/2006"},
	{language.German, "2.1.2006"},
}

var matcher = language.NewMatcher(func() []language.Tag {
	tags := make([]language.Tag, len(localeFormats))
	for i, f := range localeFormats {
		tags[i] = f.tag
	}
	return tags
}())

// DefaultLocale is used when a request expresses no usable preference.
func DefaultLocale() Locale {
	return Locale{Tag: localeFormats[0].tag, layout: localeFormats[0].layout}
}

// NegotiateLocale picks a Locale from an Accept-Language header value.
func NegotiateLocale(acceptLanguage string) Locale {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale()
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLocale()
	}
	f := localeFormats[idx]
	return Locale{Tag: f.tag, layout: f.layout}
}

// LocaleFromRequest negotiates from r's Accept-Language header.
func LocaleFromRequest(r *http.Request) Locale {
	return NegotiateLocale(r.Header.Get("Accept-Language"))
}

// FormatDate renders d, or "" when d is absent.
func (l Locale) FormatDate(d *models.Date) string {
	if d == nil || d.IsZero() {
		return ""
	}
	layout := l.layout
	if layout == "" {
		layout = localeFormats[0].layout
	}
	return d.Time.Format(layout)
}
