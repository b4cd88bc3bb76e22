package cards

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/dalemusser/lwandasite/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

type fakeResolver struct{}

func (fakeResolver) PublicURL(bucket, path string) string {
	return "https://cdn.example.org/" + bucket + "/" + path
}

func strPtr(s string) *string { return &s }

func TestExcerpt(t *testing.T) {
	long := strings.Repeat("abcdefghij", 20) // 200 chars
	assert.Equal(t, long[:160], Excerpt(long))

	short := "A short story."
	assert.Equal(t, short, Excerpt(short))

	exact := strings.Repeat("x", 160)
	assert.Equal(t, exact, Excerpt(exact))

	assert.Equal(t, "", Excerpt(""))
}

func TestExcerpt_NoTrimming(t *testing.T) {
	content := strings.Repeat("word ", 40) // cut lands right after a space
	got := Excerpt(content)
	assert.Equal(t, 160, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, " "), "trailing space kept")
}

func TestExcerpt_CountsCharactersNotBytes(t *testing.T) {
	content := strings.Repeat("é", 200)
	got := Excerpt(content)
	assert.Equal(t, 160, utf8.RuneCountInString(got))
	assert.True(t, utf8.ValidString(got))
}

func TestImageURL(t *testing.T) {
	r := fakeResolver{}
	tests := []struct {
		name string
		in   *string
		want string
	}{
		{"absent", nil, ""},
		{"empty", strPtr("  "), ""},
		{"https verbatim", strPtr("https://img.example.com/a.jpg"), "https://img.example.com/a.jpg"},
		{"http verbatim", strPtr("http://img.example.com/a.jpg"), "http://img.example.com/a.jpg"},
		{"uppercase scheme", strPtr("HTTPS://img.example.com/a.jpg"), "HTTPS://img.example.com/a.jpg"},
		{"storage path", strPtr("2024/graduation.jpg"), "https://cdn.example.org/stories/2024/graduation.jpg"},
		{"httpfoo is a path", strPtr("httpfoo/a.jpg"), "https://cdn.example.org/stories/httpfoo/a.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ImageURL(tt.in, r))
		})
	}
}

func TestImageURL_NoResolver(t *testing.T) {
	assert.Equal(t, "", ImageURL(strPtr("a.jpg"), nil))
	assert.Equal(t, "https://x/a.jpg", ImageURL(strPtr("https://x/a.jpg"), nil))
}

func TestNegotiateLocale(t *testing.T) {
	tests := []struct {
		header string
		want   language.Tag
	}{
		{"", language.AmericanEnglish},
		{"en-US,en;q=0.9", language.AmericanEnglish},
		{"en-GB,en;q=0.8", language.BritishEnglish},
		{"fr-FR,fr;q=0.9", language.French},
		{"!!not a header", language.AmericanEnglish},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, NegotiateLocale(tt.header).Tag)
		})
	}
}

func TestFormatDate(t *testing.T) {
	d := models.NewDate(time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "6/3/2024", NegotiateLocale("en-US").FormatDate(d))
	assert.Equal(t, "03/06/2024", NegotiateLocale("en-GB").FormatDate(d))
	assert.Equal(t, "", DefaultLocale().FormatDate(nil))
	assert.Equal(t, "6/3/2024", Locale{}.FormatDate(d), "zero locale uses fallback layout")
}

func TestFromStory(t *testing.T) {
	d := models.NewDate(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	s := models.Story{
		Title:     "Graduation Day",
		Content:   "Twelve students graduated.",
		StoryDate: d,
		Tag:       strPtr("Education"),
		MediaPath: strPtr("grad.jpg"),
	}

	c := FromStory(s, DefaultLocale(), fakeResolver{})
	assert.Equal(t, Card{
		Title:    "Graduation Day",
		Excerpt:  "Twelve students graduated.",
		Date:     "1/15/2024",
		ImageURL: "https://cdn.example.org/stories/grad.jpg",
		Category: "Education",
		Href:     "/stories",
	}, c)

	bare := FromStory(models.Story{Title: "Untitled"}, DefaultLocale(), fakeResolver{})
	assert.Empty(t, bare.Date)
	assert.Empty(t, bare.ImageURL)
	assert.Empty(t, bare.Category)
	assert.Equal(t, "/stories", bare.Href)
}

func TestFromStories_PreservesOrder(t *testing.T) {
	rows := []models.Story{{Title: "b"}, {Title: "a"}, {Title: "c"}}
	got := FromStories(rows, DefaultLocale(), nil)
	assert.Len(t, got, 3)
	assert.Equal(t, "b", got[0].Title)
	assert.Equal(t, "c", got[2].Title)
}
