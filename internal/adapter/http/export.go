package httpadapter

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
)

// handleExportCampaigns downloads every campaign as Campaign.json.
func (h *Handler) handleExportCampaigns(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "Campaign.json", h.svc.ExportCampaigns)
}

// handleExportViewers downloads every viewer record as
// CampaignAnalytics.json.
func (h *Handler) handleExportViewers(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "CampaignAnalytics.json", h.svc.ExportViewers)
}

// export renders the whole document before writing headers so a failure
// half way through still yields a clean 500.
func (h *Handler) export(w http.ResponseWriter, r *http.Request, filename string, write func(context.Context, io.Writer) error) {
	var buf bytes.Buffer
	if err := write(r.Context(), &buf); err != nil {
		h.logger.Error("export error", slog.String("file", filename), slog.Any("error", err))
		http.Error(w, "Error fetching documents", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("export write error", slog.String("file", filename), slog.Any("error", err))
	}
}
