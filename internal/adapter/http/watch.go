package httpadapter

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"adrelay/internal/core/domain"
	"adrelay/internal/metrics"
)

const noCampaignMessage = "No matching campaign found"

// handleWatchAd runs the auction for the adType, category and minBid query
// parameters and redirects the viewer to the winning campaign. When no
// campaign can be served it responds 404 with a JSON message. Invalid
// parameters produce HTTP 400 and storage failures HTTP 500; a storage
// failure never results in a redirect.
func (h *Handler) handleWatchAd(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	filter, err := parseAdFilter(r)
	if err != nil {
		h.metrics.RecordWatch(metrics.OutcomeInvalid, 0, time.Since(start))
		h.writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	redirect, err := h.svc.WatchAd(r.Context(), filter, viewerFromRequest(r))
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.metrics.RecordWatch(metrics.OutcomeNoCampaign, 0, time.Since(start))
		h.writeMessage(w, http.StatusNotFound, noCampaignMessage)
		return
	case errors.Is(err, domain.ErrBudgetExhausted):
		h.metrics.RecordWatch(metrics.OutcomeBudgetExhausted, 0, time.Since(start))
		h.writeMessage(w, http.StatusNotFound, noCampaignMessage)
		return
	case errors.Is(err, domain.ErrInvalidRequest):
		h.metrics.RecordWatch(metrics.OutcomeInvalid, 0, time.Since(start))
		h.writeMessage(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		h.metrics.RecordWatch(metrics.OutcomeError, 0, time.Since(start))
		h.logger.Error("watch ad error", slog.Any("error", err))
		h.writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	outcome := metrics.OutcomeRepeat
	if redirect.Billed {
		outcome = metrics.OutcomeBilled
	}
	h.metrics.RecordWatch(outcome, redirect.Amount, time.Since(start))

	// Browsers must come back through the service on every visit.
	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, redirect.DestinationURL, http.StatusFound)
}

func parseAdFilter(r *http.Request) (domain.AdFilter, error) {
	q := r.URL.Query()
	filter := domain.AdFilter{
		AdType:   domain.AdType(q.Get("adType")),
		Category: domain.Category(q.Get("category")),
	}
	if raw := q.Get("minBid"); raw != "" {
		minBid, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.AdFilter{}, fmt.Errorf("%w: minBid must be an integer", domain.ErrInvalidRequest)
		}
		filter.MinBid = minBid
	}
	if err := filter.Validate(); err != nil {
		return domain.AdFilter{}, err
	}
	return filter, nil
}
