package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/scies/greenchem/internal/app"
	"github.com/scies/greenchem/internal/logger"
	"github.com/scies/greenchem/internal/service"
	"github.com/scies/greenchem/internal/utils"
	"github.com/scies/greenchem/models"
)

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		log.Error().Msg("no username in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	record, found, err := h.services.LookupService.Search(ctx, username, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, app.MsgSearchFieldsRequired, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrSearchUnavailable):
			log.Err(err).Msg("dataset not loaded")
			http.Error(w, app.MsgSearchUnavailable, http.StatusServiceUnavailable)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during search")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	response := models.SearchResponse{Found: found}
	if found {
		response.Record = &record
		response.TierDescription = record.Tier.Description()
		response.TierColor = record.Tier.Color()
		response.TierGauge = record.Tier.GaugeValue()
	} else {
		response.ContactEmail = h.services.AppInfoService.GetContactEmail(ctx)
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
