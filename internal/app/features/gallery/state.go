// internal/app/features/gallery/state.go
package gallery

import (
	"context"

	"github.com/dalemusser/lwandasite/internal/app/system/remote"
	"github.com/dalemusser/lwandasite/internal/app/system/timeouts"
	"github.com/dalemusser/lwandasite/internal/app/system/viewstate"
	"github.com/dalemusser/lwandasite/internal/domain/models"
	"go.uber.org/zap"
)

// DefaultErrorMessage is shown when a category listing fails.
const DefaultErrorMessage = "Failed to load images"

// CategoryState is the load state of one category for one visitor.
type CategoryState = viewstate.State[[]models.GalleryItem]

// Tracker holds one visitor's category states, keyed by category key.
type Tracker = viewstate.Tracker[string, []models.GalleryItem]

// Sessions maps visitor ids to their Trackers.
type Sessions = viewstate.Registry[*Tracker]

// NewSessions returns an empty visitor registry.
func NewSessions() *Sessions {
	return viewstate.NewRegistry(viewstate.NewTracker[string, []models.GalleryItem])
}

// Lister lists the images of one category.
type Lister interface {
	List(ctx context.Context, cat models.GalleryCategory) ([]models.GalleryItem, error)
}

// Outcome labels for gallery load metrics.
const (
	outcomeCached       = "cached"
	outcomeLoaded       = "loaded"
	outcomeEmpty        = "empty"
	outcomeFailed       = "failed"
	outcomeUnconfigured = "unconfigured"
)

// tracker returns the visitor's Tracker. Requests without a visitor id get
// a throwaway Tracker, so nothing is cached for them.
func (h *Handler) tracker(visitorID string) *Tracker {
	if visitorID == "" {
		return viewstate.NewTracker[string, []models.GalleryItem]()
	}
	return h.sessions.Get(visitorID)
}

// load returns the state of cat for the visitor, fetching unless the slot
// already holds a non-empty Success. Concurrent loads of the same visitor
// and category share one fetch.
func (h *Handler) load(ctx context.Context, visitorID string, cat models.GalleryCategory) CategoryState {
	slot := h.tracker(visitorID).Slot(cat.Key)

	if snap := slot.Snapshot(); snap.Status == viewstate.Success && len(snap.Data) > 0 {
		h.metrics.GalleryOutcome(cat.Key, outcomeCached)
		return snap
	}

	if visitorID == "" {
		return h.fetch(ctx, slot, cat)
	}

	v, _, _ := h.group.Do(visitorID+"|"+cat.Key, func() (any, error) {
		// The fetch outlives any one waiter's request.
		return h.fetch(context.WithoutCancel(ctx), slot, cat), nil
	})
	return v.(CategoryState)
}

// fetch runs one listing against slot. When a newer load has already
// settled the slot, its state wins over this one.
func (h *Handler) fetch(ctx context.Context, slot *viewstate.Slot[[]models.GalleryItem], cat models.GalleryCategory) CategoryState {
	tok := slot.Begin()

	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Remote(), h.logger, "gallery list "+cat.Key)
	defer cancel()

	var own CategoryState
	var current bool

	items, err := h.lister.List(ctx, cat)
	if err != nil {
		kind := remote.KindOf(err)
		own = CategoryState{Status: viewstate.Error, Err: err, Message: DefaultErrorMessage}
		outcome := outcomeFailed
		if kind == remote.KindConfigurationUnavailable {
			own.Message = ""
			outcome = outcomeUnconfigured
		} else {
			h.logger.Warn("gallery listing failed",
				zap.String("category", cat.Key),
				zap.String("kind", kind.String()),
				zap.Error(err))
		}
		current = slot.Fail(tok, err, own.Message)
		h.metrics.GalleryOutcome(cat.Key, outcome)
	} else {
		own = CategoryState{Status: viewstate.Success, Data: items}
		current = slot.Finish(tok, items)
		if len(items) == 0 {
			h.metrics.GalleryOutcome(cat.Key, outcomeEmpty)
		} else {
			h.metrics.GalleryOutcome(cat.Key, outcomeLoaded)
		}
	}

	if !current {
		h.logger.Debug("discarding stale gallery result", zap.String("category", cat.Key))
		if snap := slot.Snapshot(); snap.Status == viewstate.Success || snap.Status == viewstate.Error {
			return snap
		}
	}
	return own
}
