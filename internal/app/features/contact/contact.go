// internal/app/features/contact/contact.go
package contact

import (
	"context"
	"fmt"
	"net/http"

	errorsfeature "github.com/dalemusser/lwandasite/internal/app/features/errors"
	herostore "github.com/dalemusser/lwandasite/internal/app/store/hero"
	"github.com/dalemusser/lwandasite/internal/app/system/formutil"
	"github.com/dalemusser/lwandasite/internal/app/system/inputval"
	"github.com/dalemusser/lwandasite/internal/app/system/metrics"
	"github.com/dalemusser/lwandasite/internal/app/system/network"
	"github.com/dalemusser/lwandasite/internal/app/system/normalize"
	"github.com/dalemusser/lwandasite/internal/app/system/remote"
	"github.com/dalemusser/lwandasite/internal/app/system/throttle"
	"github.com/dalemusser/lwandasite/internal/app/system/timeouts"
	"github.com/dalemusser/lwandasite/internal/app/system/viewdata"
	"github.com/dalemusser/lwandasite/internal/app/system/viewstate"
	"github.com/dalemusser/lwandasite/internal/app/system/visitor"
	"github.com/dalemusser/lwandasite/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Messages shown after a submission.
const (
	MsgSent        = "Message sent successfully."
	MsgConfigError = "Configuration error. Please try again later."
	MsgSendFailed  = "Failed to send. Please try again."
	MsgInFlight    = "Your message is already being sent. Please wait."
	MsgThrottled   = "Too many messages. Please try again in a few minutes."
)

// Outcome labels for submission metrics.
const (
	outcomeSent         = "sent"
	outcomeUnconfigured = "unconfigured"
	outcomeFailed       = "failed"
	outcomeInvalid      = "invalid"
	outcomeThrottled    = "throttled"
	outcomeDuplicate    = "duplicate"
)

// Creator stores one contact message.
type Creator interface {
	Create(ctx context.Context, msg models.ContactMessage) error
}

// Submissions tracks each visitor's submission state.
type Submissions = viewstate.Registry[*viewstate.Slot[struct{}]]

// NewSubmissions returns an empty submission registry.
func NewSubmissions() *Submissions {
	return viewstate.NewRegistry(func() *viewstate.Slot[struct{}] { return &viewstate.Slot[struct{}]{} })
}

// Handler serves the contact page and form.
type Handler struct {
	store       Creator
	heroes      *herostore.Store
	limiter     *throttle.Limiter
	submissions *Submissions
	metrics     *metrics.Metrics
	errLog      *errorsfeature.ErrorLogger
	logger      *zap.Logger
}

// NewHandler creates a new contact Handler. limiter and m may be nil.
func NewHandler(store Creator, heroes *herostore.Store, limiter *throttle.Limiter, submissions *Submissions, m *metrics.Metrics, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	if submissions == nil {
		submissions = NewSubmissions()
	}
	return &Handler{
		store:       store,
		heroes:      heroes,
		limiter:     limiter,
		submissions: submissions,
		metrics:     m,
		errLog:      errLog,
		logger:      logger,
	}
}

// contactInput is the validated form.
type contactInput struct {
	Name    string `validate:"required,max=200" label:"Name"`
	Email   string `validate:"required,email,max=254" label:"Email"`
	Subject string `validate:"required,subject" label:"Subject"`
	Message string `validate:"required,max=5000" label:"Message"`
}

// PageVM is the view model for the contact page.
type PageVM struct {
	formutil.Base
	Hero     viewdata.Hero
	Subjects []models.ContactSubjectOption
	MapEmbed string
	MapLink  string

	Name    string
	Email   string
	Subject string
	Message string
}

// Routes returns a chi.Router with contact routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Show)
	r.Post("/", h.Submit)
	return r
}

func (h *Handler) newVM(r *http.Request) PageVM {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Remote(), h.logger, "contact hero")
	defer cancel()
	hero, err := h.heroes.Resolve(ctx, models.PageContact, models.FallbackHeroContact)
	if err != nil {
		h.logger.Warn("contact hero lookup failed", zap.Error(err))
	}
	return PageVM{
		Base: formutil.NewBase(r, "Contact", models.PageContact),
		Hero: viewdata.Hero{
			Title:       "Contact Us",
			Subtitle:    "We'd love to hear from you",
			Description: "Have questions about our programs, want to volunteer, or need more information? Get in touch with our team.",
			Image:       hero,
		},
		Subjects: models.ContactSubjectOptions,
		MapEmbed: models.ContactMapEmbedURL,
		MapLink:  models.ContactMapLinkURL,
	}
}

// Show renders the empty form. A valid ?subject= preselects the topic.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	vm := h.newVM(r)
	if s := normalize.Subject(r.URL.Query().Get("subject")); models.IsValidContactSubject(s) {
		vm.Subject = s
	}
	templates.Render(w, r, "contact/show", vm)
}

// Submit handles the form post: idle -> submitting -> success | failure.
// Failures keep the entered values; success clears them.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	vm := h.newVM(r)
	vm.Name = r.PostFormValue("name")
	vm.Email = r.PostFormValue("email")
	vm.Subject = r.PostFormValue("subject")
	vm.Message = r.PostFormValue("message")

	if !h.limiter.Allow(network.GetClientIP(r)) {
		h.metrics.ContactOutcome(outcomeThrottled)
		vm.SetError(MsgThrottled)
		h.render(w, r, http.StatusTooManyRequests, vm)
		return
	}

	input := contactInput{
		Name:    normalize.Name(vm.Name),
		Email:   normalize.Email(vm.Email),
		Subject: normalize.Subject(vm.Subject),
		Message: normalize.Message(vm.Message),
	}
	if res := inputval.Validate(input); res.HasErrors() {
		h.metrics.ContactOutcome(outcomeInvalid)
		vm.SetError(res.First())
		h.render(w, r, http.StatusBadRequest, vm)
		return
	}

	slot := h.slot(r)
	tok, ok := slot.TryBegin()
	if !ok {
		h.metrics.ContactOutcome(outcomeDuplicate)
		vm.SetError(MsgInFlight)
		h.render(w, r, http.StatusConflict, vm)
		return
	}

	err := h.create(r.Context(), slot, tok, models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Subject: models.ContactSubject(input.Subject),
		Message: input.Message,
	})
	switch {
	case err == nil:
		slot.Finish(tok, struct{}{})
		h.metrics.ContactOutcome(outcomeSent)
		vm.Name, vm.Email, vm.Subject, vm.Message = "", "", "", ""
		vm.SetSuccess(MsgSent)
	case remote.IsConfigurationUnavailable(err):
		slot.Fail(tok, err, MsgConfigError)
		h.metrics.ContactOutcome(outcomeUnconfigured)
		h.logger.Warn("contact submit: backend not configured", zap.Error(err))
		vm.SetError(MsgConfigError)
	default:
		slot.Fail(tok, err, MsgSendFailed)
		h.metrics.ContactOutcome(outcomeFailed)
		h.errLog.LogWithFields(r, "contact submit failed", err,
			zap.String("kind", remote.KindOf(err).String()))
		vm.SetError(MsgSendFailed)
	}

	h.render(w, r, http.StatusOK, vm)
}

// create stores msg. A panic in the store settles tok as failed before it
// propagates, so the visitor is not left in flight.
func (h *Handler) create(ctx context.Context, slot *viewstate.Slot[struct{}], tok viewstate.Token, msg models.ContactMessage) error {
	defer func() {
		if rec := recover(); rec != nil {
			slot.Fail(tok, fmt.Errorf("contact submit panicked: %v", rec), MsgSendFailed)
			panic(rec)
		}
	}()

	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Submit(), h.logger, "contact submit")
	defer cancel()
	return h.store.Create(ctx, msg)
}

// slot returns the visitor's submission slot. Requests without a visitor id
// get a fresh slot, so the in-flight guard does not apply to them.
func (h *Handler) slot(r *http.Request) *viewstate.Slot[struct{}] {
	id := visitor.ID(r)
	if id == "" {
		return &viewstate.Slot[struct{}]{}
	}
	return h.submissions.Get(id)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, vm PageVM) {
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	templates.Render(w, r, "contact/show", vm)
}
