// internal/app/features/stories/stories.go
package stories

import (
	"net/http"

	errorsfeature "github.com/dalemusser/lwandasite/internal/app/features/errors"
	storystore "github.com/dalemusser/lwandasite/internal/app/store/stories"
	"github.com/dalemusser/lwandasite/internal/app/system/cards"
	"github.com/dalemusser/lwandasite/internal/app/system/pagination"
	"github.com/dalemusser/lwandasite/internal/app/system/remote"
	"github.com/dalemusser/lwandasite/internal/app/system/timeouts"
	"github.com/dalemusser/lwandasite/internal/app/system/viewdata"
	"github.com/dalemusser/lwandasite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the paginated stories index.
type Handler struct {
	stories *storystore.Store
	errLog  *errorsfeature.ErrorLogger
	logger  *zap.Logger
}

// NewHandler creates a new stories Handler.
func NewHandler(p *remote.Provider, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		stories: storystore.New(p),
		errLog:  errLog,
		logger:  logger,
	}
}

// ListVM is the view model for the stories index.
type ListVM struct {
	viewdata.BaseVM
	Hero    viewdata.Hero
	Stories []cards.Card
	Page    pagination.Page
	CTA     viewdata.CTA
}

// Routes returns a chi.Router with stories routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.List)
	return r
}

// List renders one page of stories, selected by the page query parameter.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.ParsePage(r.URL.Query().Get("page"))

	vm := ListVM{
		BaseVM: viewdata.New(r, "Stories", models.PageStories),
		Hero: viewdata.Hero{
			Title:    "Stories of Transformation",
			Subtitle: "Witness how God is working through our programs to transform lives, build hope, and create lasting change in our community. Each story represents a life touched by love and empowered for the future.",
			Image:    models.FallbackHeroStories,
		},
		CTA: viewdata.JoinUsCTA(),
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Remote(), h.logger, "stories page")
	defer cancel()

	rows, err := h.stories.Page(ctx, page, storystore.PageSize)
	if err != nil {
		h.errLog.LogWithFields(r, "failed to load stories", err,
			zap.Int("page", page),
			zap.String("kind", remote.KindOf(err).String()))
		rows = nil
	}

	vm.Stories = cards.FromStories(rows, cards.LocaleFromRequest(r), h.stories)
	vm.Page = pagination.Build("/stories", page, len(rows), storystore.PageSize)

	templates.Render(w, r, "stories/list", vm)
}
