// internal/app/features/gallery/gallery.go
package gallery

import (
	"net/http"
	"net/url"

	"github.com/dalemusser/lwandasite/internal/app/system/metrics"
	"github.com/dalemusser/lwandasite/internal/app/system/normalize"
	"github.com/dalemusser/lwandasite/internal/app/system/remote"
	"github.com/dalemusser/lwandasite/internal/app/system/viewdata"
	"github.com/dalemusser/lwandasite/internal/app/system/viewstate"
	"github.com/dalemusser/lwandasite/internal/app/system/visitor"
	"github.com/dalemusser/lwandasite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Handler serves the gallery page and its grid snippet.
type Handler struct {
	lister   Lister
	sessions *Sessions
	group    singleflight.Group
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewHandler creates a new gallery Handler. sessions is shared with the
// pruning job; m may be nil.
func NewHandler(lister Lister, sessions *Sessions, m *metrics.Metrics, logger *zap.Logger) *Handler {
	if sessions == nil {
		sessions = NewSessions()
	}
	return &Handler{
		lister:   lister,
		sessions: sessions,
		metrics:  m,
		logger:   logger,
	}
}

// Tab is one category selector.
type Tab struct {
	Key      string
	Label    string
	Href     string
	GridHref string
	Active   bool
}

// Tile is one image in the grid.
type Tile struct {
	models.GalleryItem
	Href string // opens the overlay
}

// GridVM is the category region: tiles, the empty panel, or the error
// panel, plus the overlay when an item is selected.
type GridVM struct {
	Category  models.GalleryCategory
	Status    string // success or error
	Tiles     []Tile
	Message   string
	RetryHref string
	Selected  *models.GalleryItem
	CloseHref string
}

// Empty reports whether the no-images panel is shown. A configuration
// failure renders as empty.
func (g GridVM) Empty() bool {
	return g.Status != viewstate.Error.String() && len(g.Tiles) == 0
}

// Failed reports whether the error panel is shown.
func (g GridVM) Failed() bool {
	return g.Status == viewstate.Error.String()
}

// PageVM is the view model for the gallery page.
type PageVM struct {
	viewdata.BaseVM
	Hero viewdata.Hero
	Tabs []Tab
	Grid GridVM
}

// Routes returns a chi.Router with gallery routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Show)
	r.Get("/grid", h.Grid)
	return r
}

// Show renders the gallery page for the category named by ?category=,
// defaulting to the first category.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	cat := categoryFromRequest(r)

	vm := PageVM{
		BaseVM: viewdata.New(r, "Gallery", models.PageGallery),
		Hero: viewdata.Hero{
			Title:    "Our Gallery",
			Subtitle: "Explore moments captured from our various programs and community activities.",
			Image:    models.FallbackHeroGallery,
		},
		Tabs: tabs(cat),
		Grid: h.grid(r, cat),
	}

	templates.Render(w, r, "gallery/show", vm)
}

// Grid renders only the category region for HTMX tab switches. Plain
// requests are redirected to the full page.
func (h *Handler) Grid(w http.ResponseWriter, r *http.Request) {
	cat := categoryFromRequest(r)
	if r.Header.Get("HX-Request") != "true" {
		http.Redirect(w, r, pageHref(cat, ""), http.StatusSeeOther)
		return
	}
	templates.RenderSnippet(w, "gallery/grid", h.grid(r, cat))
}

func (h *Handler) grid(r *http.Request, cat models.GalleryCategory) GridVM {
	st := h.load(r.Context(), visitor.ID(r), cat)

	g := GridVM{
		Category:  cat,
		Status:    st.Status.String(),
		Message:   st.Message,
		RetryHref: pageHref(cat, ""),
		CloseHref: pageHref(cat, ""),
	}
	if st.Status == viewstate.Error && remote.IsConfigurationUnavailable(st.Err) {
		// Rendered as the no-data panel; the slot keeps the error kind.
		g.Status = viewstate.Success.String()
		g.Message = ""
	}

	selected := normalize.QueryParam(r.URL.Query().Get("item"))
	for i, it := range st.Data {
		g.Tiles = append(g.Tiles, Tile{GalleryItem: it, Href: pageHref(cat, it.Name)})
		if selected != "" && it.Name == selected {
			g.Selected = &st.Data[i]
		}
	}
	return g
}

func categoryFromRequest(r *http.Request) models.GalleryCategory {
	if cat, ok := models.GalleryCategoryByKey(normalize.QueryParam(r.URL.Query().Get("category"))); ok {
		return cat
	}
	return models.DefaultGalleryCategory()
}

func tabs(active models.GalleryCategory) []Tab {
	out := make([]Tab, 0, len(models.GalleryCategories))
	for _, c := range models.GalleryCategories {
		out = append(out, Tab{
			Key:      c.Key,
			Label:    c.Label,
			Href:     pageHref(c, ""),
			GridHref: "/gallery/grid?category=" + url.QueryEscape(c.Key),
			Active:   c.Key == active.Key,
		})
	}
	return out
}

// pageHref links to a category, with the overlay open on item when set.
func pageHref(cat models.GalleryCategory, item string) string {
	q := url.Values{}
	q.Set("category", cat.Key)
	if item != "" {
		q.Set("item", item)
	}
	return "/gallery?" + q.Encode()
}
