// internal/app/features/home/home.go
package home

import (
	"net/http"

	errorsfeature "github.com/dalemusser/lwandasite/internal/app/features/errors"
	herostore "github.com/dalemusser/lwandasite/internal/app/store/hero"
	storystore "github.com/dalemusser/lwandasite/internal/app/store/stories"
	"github.com/dalemusser/lwandasite/internal/app/system/cards"
	"github.com/dalemusser/lwandasite/internal/app/system/remote"
	"github.com/dalemusser/lwandasite/internal/app/system/timeouts"
	"github.com/dalemusser/lwandasite/internal/app/system/viewdata"
	"github.com/dalemusser/lwandasite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler provides home page handlers.
type Handler struct {
	stories  *storystore.Store
	heroes   *herostore.Store
	homeHero string
	errLog   *errorsfeature.ErrorLogger
	logger   *zap.Logger
}

// NewHandler creates a new home Handler. homeHero is the configured hero
// image URL; empty uses the hero bucket.
func NewHandler(p *remote.Provider, heroes *herostore.Store, homeHero string, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		stories:  storystore.New(p),
		heroes:   heroes,
		homeHero: homeHero,
		errLog:   errLog,
		logger:   logger,
	}
}

// Stat is one figure in the impact section.
type Stat struct {
	Value       string
	Label       string
	Description string
}

// Program is one core program card.
type Program struct {
	Title       string
	Description string
	ImageURL    string
	Href        string
}

var impactStats = []Stat{
	{Value: "497", Label: "Children Supported", Description: "Through our three core programs"},
	{Value: "28", Label: "Mothers & Babies", Description: "In our Child Survival Program"},
	{Value: "12", Label: "University Students", Description: "Currently pursuing higher education"},
	{Value: "15", Label: "Youth Leaders", Description: "Mentoring the next generation"},
}

var corePrograms = []Program{
	{
		Title:       "Child Survival",
		Description: "Providing critical prenatal and postnatal care, nutrition, and support for mothers and babies.",
		ImageURL:    "/static/images/mother-and-child-at-health-clinic-in-kenya.png",
		Href:        "/about#programs",
	},
	{
		Title:       "Child Sponsorship",
		Description: "Holistic development for children ages 3-18 through education, health care, and discipleship.",
		ImageURL:    "/static/images/children-learning-in-classroom-lwanda-kenya.png",
		Href:        "/about#programs",
	},
	{
		Title:       "Youth Development",
		Description: "Empowering young adults with leadership skills, vocational training, and higher education.",
		ImageURL:    "/static/images/young-adults-leading-community-meeting-in-kenya.png",
		Href:        "/about#programs",
	},
}

// HomeVM is the view model for the home page.
type HomeVM struct {
	viewdata.BaseVM
	Hero     viewdata.Hero
	Stats    []Stat
	Programs []Program
	Stories  []cards.Card
	CTA      viewdata.CTA
}

// Routes returns a chi.Router with home routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	return r
}

// Index renders the home page with the latest published stories. A backend
// failure is logged and renders the empty stories state.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	vm := HomeVM{
		BaseVM: viewdata.New(r, "Home", models.PageHome),
		Hero: viewdata.Hero{
			Title:       "Empowering Children, Transforming Communities",
			Subtitle:    "Building hope and opportunity for vulnerable children in Lwanda, Kenya",
			Description: "Through faith-based programs in partnership with Compassion International and FGCK, we're raising a God-fearing generation equipped to break the cycle of poverty.",
			Image:       h.heroes.Home(h.homeHero, models.FallbackHeroHome),
			Primary:     &viewdata.Link{Text: "Sponsor a Child", Href: "/contact?subject=sponsorship"},
			Secondary:   &viewdata.Link{Text: "Learn Our Story", Href: "/about"},
		},
		Stats:    impactStats,
		Programs: corePrograms,
		CTA:      viewdata.JoinUsCTA(),
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Remote(), h.logger, "home latest stories")
	defer cancel()

	rows, err := h.stories.Latest(ctx, storystore.HomeCount)
	if err != nil {
		h.errLog.LogWithFields(r, "failed to load latest stories", err,
			zap.String("kind", remote.KindOf(err).String()))
	} else {
		vm.Stories = cards.FromStories(rows, cards.LocaleFromRequest(r), h.stories)
	}

	templates.Render(w, r, "home/index", vm)
}
