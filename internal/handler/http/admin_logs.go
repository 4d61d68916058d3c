// SPDX-License-Identifier: Apache-2.0

package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/scies/greenchem/internal/logger"
	"github.com/scies/greenchem/internal/utils"
)

// logDateLayout is the format of the start/end query parameters on the
// admin log endpoints.
const logDateLayout = "2006-01-02"

func (h *Handler) listLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	start, end, err := logDateRange(r)
	if err != nil {
		log.Err(err).Msg("invalid date range")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := h.services.AuditService.List(ctx, start, end)
	if err != nil {
		log.Err(err).Msg("query log listing failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) exportLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	start, end, err := logDateRange(r)
	if err != nil {
		log.Err(err).Msg("invalid date range")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	filename := fmt.Sprintf("query_logs_%s.csv", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.services.AuditService.ExportCSV(ctx, w, start, end); err != nil {
		// headers are already sent, the download comes out truncated
		log.Err(err).Msg("query log export failed")
		return
	}
}

func (h *Handler) logStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	start, end, err := logDateRange(r)
	if err != nil {
		log.Err(err).Msg("invalid date range")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stats, err := h.services.AuditService.Stats(ctx, start, end)
	if err != nil {
		log.Err(err).Msg("query log stats failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

// logDateRange parses the optional "start" and "end" query parameters.
// Missing parameters leave the corresponding bound open (zero time).
func logDateRange(r *http.Request) (start, end time.Time, err error) {
	if raw := r.URL.Query().Get("start"); raw != "" {
		start, err = time.ParseInLocation(logDateLayout, raw, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q, expected YYYY-MM-DD", raw)
		}
	}
	if raw := r.URL.Query().Get("end"); raw != "" {
		end, err = time.ParseInLocation(logDateLayout, raw, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q, expected YYYY-MM-DD", raw)
		}
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date is before start date")
	}

	return start, end, nil
}
