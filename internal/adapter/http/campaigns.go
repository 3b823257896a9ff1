package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"

	"adrelay/internal/core/domain"
)

const maxCampaignBody = 1 << 20

// handleCreateCampaign decodes a campaign from the JSON body and stores it.
// It responds 201 with the stored campaign, 400 on malformed or invalid
// input and 500 on storage failures.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req domain.NewCampaign
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCampaignBody)).Decode(&req); err != nil {
		h.writeMessage(w, http.StatusBadRequest, decodeErrorMessage(err))
		return
	}
	campaign, err := h.svc.CreateCampaign(r.Context(), req)
	if errors.Is(err, domain.ErrInvalidCampaign) {
		h.writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("create campaign error", slog.Any("error", err))
		h.writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	h.logger.Info("campaign created",
		slog.String("campaign_id", campaign.ID),
		slog.String("ad_type", string(campaign.AdType)),
		slog.Int64("bid_value", campaign.BidValue))
	h.writeJSON(w, http.StatusCreated, campaign)
}

// decodeErrorMessage explains type mismatches, most often a fractional
// amount where whole minor units are expected.
func decodeErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Field == "" {
		return "invalid JSON"
	}
	if typeErr.Type.Kind() == reflect.Int64 {
		return fmt.Sprintf("%s must be a whole number of minor currency units (e.g. cents), got %s", typeErr.Field, typeErr.Value)
	}
	return fmt.Sprintf("%s must be a %s, got %s", typeErr.Field, typeErr.Type.Kind(), typeErr.Value)
}
