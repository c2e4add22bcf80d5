package handlers

import (
	"net/http"

	"github.com/pratik-mahalle/calendrical/internal/api/dto"
	"github.com/pratik-mahalle/calendrical/internal/api/middleware"
	"github.com/pratik-mahalle/calendrical/internal/domain/calendar"
	"github.com/pratik-mahalle/calendrical/internal/pkg/logger"
	"github.com/pratik-mahalle/calendrical/internal/pkg/utils"
	"github.com/pratik-mahalle/calendrical/internal/pkg/validator"
)

// CalendarHandler serves conversions and calendar arithmetic
type CalendarHandler struct {
	service   calendar.Service
	logger    *logger.Logger
	validator *validator.Validator
}

func NewCalendarHandler(service calendar.Service, log *logger.Logger, val *validator.Validator) *CalendarHandler {
	return &CalendarHandler{service: service, logger: log, validator: val}
}

// LocalToInstant resolves a local date-time in a zone
// @Summary Local date-time to instant
// @Description Resolve a local date-time in a zone. Readings in a gap move forward by the gap length; in an overlap the preferred offset wins, else the earlier instant.
// @Tags Convert
// @Accept json
// @Produce json
// @Param request body dto.LocalToInstantRequest true "Local date-time and zone"
// @Success 200 {object} utils.SuccessResponse{data=calendar.Zoned} "Resolved instant"
// @Failure 400 {object} utils.ErrorResponse "Invalid date-time or zone"
// @Failure 422 {object} utils.ErrorResponse "Result out of range"
// @Router /convert/local [post]
func (h *CalendarHandler) LocalToInstant(w http.ResponseWriter, r *http.Request) {
	var req dto.LocalToInstantRequest
	if !decode(w, r, h.validator, &req) {
		return
	}
	middleware.AddLogField(r, "zone", req.Zone)

	res, err := h.service.ToInstant(r.Context(), calendar.LocalQuery{
		DateTime:        req.DateTime,
		Zone:            req.Zone,
		PreferredOffset: req.PreferredOffset,
	})
	if err != nil {
		utils.WriteDomainError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, res)
}

// InstantToLocal reads an instant in a zone
// @Summary Instant to local date-time
// @Tags Convert
// @Accept json
// @Produce json
// @Param request body dto.InstantToLocalRequest true "Instant and zone"
// @Success 200 {object} utils.SuccessResponse{data=calendar.Zoned} "Local reading"
// @Failure 400 {object} utils.ErrorResponse "Invalid instant or zone"
// @Failure 422 {object} utils.ErrorResponse "Result out of range"
// @Router /convert/instant [post]
func (h *CalendarHandler) InstantToLocal(w http.ResponseWriter, r *http.Request) {
	var req dto.InstantToLocalRequest
	if !decode(w, r, h.validator, &req) {
		return
	}
	middleware.AddLogField(r, "zone", req.Zone)

	res, err := h.service.ToLocal(r.Context(), calendar.InstantQuery{Instant: req.Instant, Zone: req.Zone})
	if err != nil {
		utils.WriteDomainError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, res)
}

// Plus adds units or a period to an instant
// @Summary Add to an instant
// @Description Add amount units (time-based units are exact, date-based units follow the zone's calendar) or an ISO-8601 period. Exactly one of unit and period is required.
// @Tags Arithmetic
// @Accept json
// @Produce json
// @Param request body dto.PlusRequest true "Instant, amount and unit or period"
// @Success 200 {object} utils.SuccessResponse{data=calendar.Zoned} "Resulting instant"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 422 {object} utils.ErrorResponse "Result out of range"
// @Router /arithmetic/plus [post]
func (h *CalendarHandler) Plus(w http.ResponseWriter, r *http.Request) {
	var req dto.PlusRequest
	if !decode(w, r, h.validator, &req) {
		return
	}
	middleware.AddLogField(r, "zone", req.Zone)

	res, err := h.service.Plus(r.Context(), calendar.PlusQuery{
		Instant: req.Instant,
		Amount:  req.Amount,
		Unit:    req.Unit,
		Period:  req.Period,
		Zone:    req.Zone,
	})
	if err != nil {
		utils.WriteDomainError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, res)
}

// Until counts whole units between two instants
// @Summary Units between instants
// @Tags Arithmetic
// @Accept json
// @Produce json
// @Param request body dto.UntilRequest true "Start, end and unit"
// @Success 200 {object} utils.SuccessResponse{data=calendar.Amount} "Whole units, truncated toward zero"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 422 {object} utils.ErrorResponse "Result out of range"
// @Router /arithmetic/until [post]
func (h *CalendarHandler) Until(w http.ResponseWriter, r *http.Request) {
	var req dto.UntilRequest
	if !decode(w, r, h.validator, &req) {
		return
	}

	res, err := h.service.Until(r.Context(), calendar.UntilQuery{Start: req.Start, End: req.End, Unit: req.Unit, Zone: req.Zone})
	if err != nil {
		utils.WriteDomainError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, res)
}

// Period splits the distance between two instants
// @Summary Period between instants
// @Description Months, then days, then the remaining time, such that start plus the period is end.
// @Tags Arithmetic
// @Accept json
// @Produce json
// @Param request body dto.PeriodRequest true "Start, end and zone"
// @Success 200 {object} utils.SuccessResponse{data=calendar.Period} "Period"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 422 {object} utils.ErrorResponse "Result out of range"
// @Router /arithmetic/period [post]
func (h *CalendarHandler) Period(w http.ResponseWriter, r *http.Request) {
	var req dto.PeriodRequest
	if !decode(w, r, h.validator, &req) {
		return
	}

	res, err := h.service.Period(r.Context(), calendar.PeriodQuery{Start: req.Start, End: req.End, Zone: req.Zone})
	if err != nil {
		utils.WriteDomainError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, res)
}

// DatePlus adds date units or a date period to a date
// @Summary Add to a date
// @Description Month-based additions clamp to the end of the month.
// @Tags Dates
// @Accept json
// @Produce json
// @Param request body dto.DatePlusRequest true "Date, amount and unit or period"
// @Success 200 {object} utils.SuccessResponse{data=calendar.Date} "Resulting date"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 422 {object} utils.ErrorResponse "Result out of range"
// @Router /dates/plus [post]
func (h *CalendarHandler) DatePlus(w http.ResponseWriter, r *http.Request) {
	var req dto.DatePlusRequest
	if !decode(w, r, h.validator, &req) {
		return
	}

	res, err := h.service.DatePlus(r.Context(), calendar.DatePlusQuery{
		Date:   req.Date,
		Amount: req.Amount,
		Unit:   req.Unit,
		Period: req.Period,
	})
	if err != nil {
		utils.WriteDomainError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, res)
}

// DatePeriod is the calendar distance between two dates
// @Summary Period between dates
// @Tags Dates
// @Accept json
// @Produce json
// @Param request body dto.DatePeriodRequest true "Start and end dates"
// @Success 200 {object} utils.SuccessResponse{data=calendar.Period} "Period"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Router /dates/period [post]
func (h *CalendarHandler) DatePeriod(w http.ResponseWriter, r *http.Request) {
	var req dto.DatePeriodRequest
	if !decode(w, r, h.validator, &req) {
		return
	}

	res, err := h.service.DatePeriod(r.Context(), calendar.DatePeriodQuery{Start: req.Start, End: req.End})
	if err != nil {
		utils.WriteDomainError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, res)
}
