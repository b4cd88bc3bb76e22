// internal/app/features/pages/pages.go
package pages

import (
	"net/http"

	herostore "github.com/dalemusser/lwandasite/internal/app/store/hero"
	"github.com/dalemusser/lwandasite/internal/app/system/timeouts"
	"github.com/dalemusser/lwandasite/internal/app/system/viewdata"
	"github.com/dalemusser/lwandasite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler provides static content page handlers.
type Handler struct {
	heroes *herostore.Store
	logger *zap.Logger
}

// NewHandler creates a new pages Handler.
func NewHandler(heroes *herostore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		heroes: heroes,
		logger: logger,
	}
}

// Leader is one member of the leadership team.
type Leader struct {
	Name string
	Role string
}

// Ministry is one core program described on the about page.
type Ministry struct {
	Title       string
	Description string
}

// AboutVM is the view model for the about page.
type AboutVM struct {
	viewdata.BaseVM
	Hero       viewdata.Hero
	Story      []string
	Mission    string
	Vision     string
	Values     []string
	Ministries []Ministry
	Leaders    []Leader
}

var aboutStory = []string{
	"KE 258 FGCK Lwanda Child Development Centre started in 2015 under FGCK Lwanda Local Church Assembly in partnership with Compassion International. What began as a vision to serve vulnerable children in our community has grown into a comprehensive ministry touching hundreds of lives.",
	"We began with the Child Development through Sponsorship Program and have since expanded to include three core ministries that address the holistic needs of children and families from pregnancy through young adulthood.",
	"Our work is rooted in faith, driven by love, and sustained by the generous support of sponsors, partners, and community members who believe every child deserves hope and opportunity.",
}

var ministries = []Ministry{
	{Title: "Child Survival", Description: "Providing critical prenatal and postnatal care, nutrition, and support for mothers and babies."},
	{Title: "Child Sponsorship", Description: "Holistic development for children ages 3-18 through education, health care, and discipleship."},
	{Title: "Youth Development", Description: "Empowering young adults with leadership skills, vocational training, and higher education."},
}

var leaders = []Leader{
	{Name: "Fredrick Odiwuor Mwenje", Role: "Project Director"},
	{Name: "Moses Ojwang'", Role: "Project Accountant"},
	{Name: "Rev. Samson Otare", Role: "Project Patron/Pastor"},
	{Name: "Magaret Christine", Role: "Project Social Worker"},
}

// AboutRouter returns a router for the about page.
func (h *Handler) AboutRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.showAbout)
	return r
}

// showAbout renders the about page. The hero comes from the hero bucket
// when it has an about image.
func (h *Handler) showAbout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Remote(), h.logger, "about hero")
	defer cancel()
	hero, err := h.heroes.Resolve(ctx, models.PageAbout, models.FallbackHeroAbout)
	if err != nil {
		h.logger.Warn("about hero lookup failed", zap.Error(err))
	}

	vm := AboutVM{
		BaseVM: viewdata.New(r, "About", models.PageAbout),
		Hero: viewdata.Hero{
			Title:       "Our Story",
			Subtitle:    "Empowering vulnerable children in Lwanda, Kenya since 2015",
			Description: "KE 258 Lwanda Child Development Centre exists to see that vulnerable needy children in the community are empowered socially, economically and physically to release them from poverty in Jesus' name.",
			Image:       hero,
		},
		Story:      aboutStory,
		Mission:    "KE258 exists to see that vulnerable needy children in the community are empowered socially, economically and physically to release them from poverty in Jesus' name and are raised to be a God-fearing generation.",
		Vision:     "A community with morally and spiritually upright generation.",
		Values:     []string{"Integrity", "Teamwork", "Excellence", "Servant Leadership", "Commitment"},
		Ministries: ministries,
		Leaders:    leaders,
	}

	templates.Render(w, r, "pages/about", vm)
}
