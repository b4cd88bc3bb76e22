package home

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	errorsfeature "github.com/dalemusser/lwandasite/internal/app/features/errors"
	herostore "github.com/dalemusser/lwandasite/internal/app/store/hero"
	"github.com/dalemusser/lwandasite/internal/app/system/remote"
	"github.com/dalemusser/lwandasite/internal/testutil"
	"go.uber.org/zap"
)

func newHandler(p *remote.Provider, homeHero string) *Handler {
	logger := zap.NewNop()
	return NewHandler(p, herostore.New(p, 0), homeHero, errorsfeature.NewErrorLogger(logger), logger)
}

func TestRoutes(t *testing.T) {
	h := newHandler(remote.Unconfigured("test"), "")
	if Routes(h) == nil {
		t.Fatal("Routes() returned nil")
	}
}

func TestIndex_RendersLatestThreeStories(t *testing.T) {
	testutil.MustBootTemplates(t)

	f := testutil.NewFakeRemote()
	for i := 0; i < 5; i++ {
		f.AddRows("stories", map[string]any{
			"title":      fmt.Sprintf("Story number %d", i),
			"content":    "A short story.",
			"story_date": "2024-05-01",
			"tag":        "Education",
			"media_path": fmt.Sprintf("img-%d.jpg", i),
			"status":     "published",
		})
	}
	h := newHandler(f.Provider(), "")

	req := testutil.NewRequestWithCSRF(http.MethodGet, "/", nil)
	rec := testutil.NewRecorder()
	h.Index(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Story number 0")
	rec.AssertContains(t, "Story number 2")
	rec.AssertNotContains(t, "Story number 3")
	rec.AssertContains(t, "https://storage.test/stories/img-0.jpg")
	rec.AssertContains(t, "5/1/2024")
	rec.AssertContains(t, "Education")
	rec.AssertNotContains(t, "No stories yet.")

	qs := f.Selects()
	if len(qs) != 1 || qs[0].Limit != 3 {
		t.Fatalf("expected one select with limit 3, got %+v", qs)
	}
}

func TestIndex_DateFollowsAcceptLanguage(t *testing.T) {
	testutil.MustBootTemplates(t)

	f := testutil.NewFakeRemote()
	f.AddRows("stories", map[string]any{"title": "Dated", "content": "", "story_date": "2024-05-01"})
	h := newHandler(f.Provider(), "")

	req := testutil.NewRequestWithCSRF(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "en-GB,en;q=0.8")
	rec := testutil.NewRecorder()
	h.Index(rec, req)

	rec.AssertContains(t, "01/05/2024")
}

func TestIndex_EmptyAndFailureRenderEmptyState(t *testing.T) {
	testutil.MustBootTemplates(t)

	failing := testutil.NewFakeRemote()
	failing.SelectErr = errors.New("connection refused")

	cases := map[string]*remote.Provider{
		"empty":        testutil.NewFakeRemote().Provider(),
		"query failed": failing.Provider(),
		"unconfigured": remote.Unconfigured("supabase_url is empty"),
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			h := newHandler(p, "")
			rec := testutil.NewRecorder()
			h.Index(rec, testutil.NewRequestWithCSRF(http.MethodGet, "/", nil))

			rec.AssertStatus(t, http.StatusOK)
			rec.AssertContains(t, "No stories yet.")
			rec.AssertContains(t, "Our Impact Since 2015")
		})
	}
}

func TestIndex_HeroImage(t *testing.T) {
	testutil.MustBootTemplates(t)

	h := newHandler(testutil.NewFakeRemote().Provider(), "https://cdn.example.org/hero.jpg")
	rec := testutil.NewRecorder()
	h.Index(rec, testutil.NewRequestWithCSRF(http.MethodGet, "/", nil))
	rec.AssertContains(t, "https://cdn.example.org/hero.jpg")

	h = newHandler(testutil.NewFakeRemote().Provider(), "")
	rec = testutil.NewRecorder()
	h.Index(rec, testutil.NewRequestWithCSRF(http.MethodGet, "/", nil))
	rec.AssertContains(t, "https://storage.test/hero/hero_image.jpg")
}
