package handlers

import (
	"net/http"

	"github.com/pratik-mahalle/calendrical/internal/api/dto"
	"github.com/pratik-mahalle/calendrical/internal/api/middleware"
	"github.com/pratik-mahalle/calendrical/internal/domain/calendar"
	"github.com/pratik-mahalle/calendrical/internal/pkg/errors"
	"github.com/pratik-mahalle/calendrical/internal/pkg/logger"
	"github.com/pratik-mahalle/calendrical/internal/pkg/utils"
	"github.com/pratik-mahalle/calendrical/internal/pkg/validator"
)

// ZoneHandler serves the zone database
type ZoneHandler struct {
	service   calendar.Service
	logger    *logger.Logger
	validator *validator.Validator
}

func NewZoneHandler(service calendar.Service, log *logger.Logger, val *validator.Validator) *ZoneHandler {
	return &ZoneHandler{service: service, logger: log, validator: val}
}

// List returns the available zone ids
// @Summary List zones
// @Description Available zone ids, sorted, always including UTC
// @Tags Zones
// @Produce json
// @Param prefix query string false "Case-insensitive id prefix, e.g. europe/"
// @Param page query int false "Page number (default: 1)"
// @Param page_size query int false "Page size (default: 100, max: 1000)"
// @Success 200 {object} utils.SuccessResponse{data=utils.PaginatedResponse{data=[]string}} "Zone ids"
// @Failure 500 {object} utils.ErrorResponse "Zone database unavailable"
// @Router /zones [get]
func (h *ZoneHandler) List(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	if err := h.validator.ValidateVar(prefix, "max=64"); err != nil {
		utils.WriteError(w, errors.BadRequest("prefix is too long"))
		return
	}

	ids, err := h.service.Zones(r.Context(), prefix)
	if err != nil {
		utils.WriteDomainError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, utils.Paginate(ids, utils.ParsePaginationParams(r)))
}

// System returns the host zone
// @Summary System zone
// @Description The zone of the host, read afresh on every call
// @Tags Zones
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.SystemZoneResponse} "System zone"
// @Failure 500 {object} utils.ErrorResponse "Zone database unavailable"
// @Router /zones/system [get]
func (h *ZoneHandler) System(w http.ResponseWriter, r *http.Request) {
	zone, err := h.service.SystemZone(r.Context())
	if err != nil {
		utils.WriteDomainError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, dto.SystemZoneResponse{Zone: zone})
}

// Offset returns the offset of a zone at an instant
// @Summary Zone offset
// @Tags Zones
// @Produce json
// @Param zone query string false "Zone id, system zone if empty"
// @Param instant query string false "ISO-8601 instant, now if empty"
// @Success 200 {object} utils.SuccessResponse{data=calendar.Offset} "Offset"
// @Failure 400 {object} utils.ErrorResponse "Invalid instant or zone"
// @Router /offset [get]
func (h *ZoneHandler) Offset(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := calendar.InstantQuery{Instant: q.Get("instant"), Zone: q.Get("zone")}
	if query.Instant != "" {
		if err := h.validator.ValidateVar(query.Instant, "instant"); err != nil {
			utils.WriteError(w, errors.ValidationError("Validation failed", []validator.ValidationError{{
				Field: "instant", Tag: "instant", Value: query.Instant, Message: "instant must be an ISO-8601 instant with an offset",
			}}))
			return
		}
	}
	middleware.AddLogField(r, "zone", query.Zone)

	res, err := h.service.Offset(r.Context(), query)
	if err != nil {
		utils.WriteDomainError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, res)
}
