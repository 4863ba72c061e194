package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harborlane/storefront-api/internal/dto"
	"github.com/harborlane/storefront-api/internal/models"
	"github.com/harborlane/storefront-api/internal/repository"
	"github.com/harborlane/storefront-api/internal/service"
	"github.com/harborlane/storefront-api/pkg/response"
)

// StatusHandler answers "is the store open right now" with the greeting
// banner for the viewer's active timezone.
type StatusHandler struct {
	snapshot     *service.SnapshotProvider
	schedule     *service.ScheduleService
	presentation *service.PresentationService
	cache        *repository.CacheRepository
	now          func() time.Time
}

// NewStatusHandler constructs the handler.
func NewStatusHandler(snapshot *service.SnapshotProvider, schedule *service.ScheduleService, presentation *service.PresentationService, cache *repository.CacheRepository) *StatusHandler {
	return &StatusHandler{
		snapshot:     snapshot,
		schedule:     schedule,
		presentation: presentation,
		cache:        cache,
		now:          time.Now,
	}
}

// Status godoc
// @Summary Current open/closed status and greeting
// @Tags Storefront
// @Produce json
// @Param tz query string false "Viewer IANA timezone (defaults to store timezone)"
// @Param lat query number false "Viewer latitude for alternate-city selection"
// @Param lng query number false "Viewer longitude for alternate-city selection"
// @Param device query string false "Device id whose timezone preference applies"
// @Success 200 {object} response.Envelope
// @Router /status [get]
func (h *StatusHandler) Status(c *gin.Context) {
	cfg := h.snapshot.Current()

	ownName := c.DefaultQuery("tz", cfg.Timezone())
	own, err := h.presentation.ResolveTimezone(ownName)
	if err != nil {
		response.Error(c, err)
		return
	}

	lat, _ := strconv.ParseFloat(c.Query("lat"), 64)
	lng, _ := strconv.ParseFloat(c.Query("lng"), 64)
	alternateCity := h.presentation.AlternateCity(lat, lng)
	alternate, err := h.presentation.ResolveTimezone(alternateCity.Timezone)
	if err != nil {
		response.Error(c, err)
		return
	}

	useAlternate := false
	if device := c.Query("device"); device != "" {
		if pref, err := h.cache.GetPreference(c.Request.Context(), device); err == nil {
			useAlternate = pref
		}
	}

	active := h.presentation.ActiveTimezone(own, alternate, useAlternate)
	now := h.now()
	localNow := now.In(active)

	city := h.presentation.CityLabel(ownName)
	if useAlternate {
		city = alternateCity.Label
	}

	open, day, err := h.schedule.IsOpenAt(cfg, now)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.StatusResponse{
		IsOpen:         open,
		Date:           day.Date.ISO(),
		StoreTimezone:  cfg.Timezone(),
		ActiveTimezone: active.String(),
		LocalTime:      localNow.Format("3:04 PM"),
		Greeting:       h.presentation.Greeting(localNow, city),
		AlternateCity:  alternateCity.Label,
	}
	if day.IsOpen {
		resp.OpenTime = day.Open.String()
		resp.CloseTime = day.Close.String()
	}

	response.JSON(c, http.StatusOK, resp)
}

// Day godoc
// @Summary Resolved open/closed decision for one date
// @Tags Storefront
// @Produce json
// @Param date path string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /days/{date} [get]
func (h *StatusHandler) Day(c *gin.Context) {
	date, err := parseDateParam(c.Param("date"))
	if err != nil {
		response.Error(c, err)
		return
	}

	cfg := h.snapshot.Current()
	day, err := h.schedule.ResolveDay(cfg, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.ResolvedDayResponse{Date: day.Date.ISO(), IsOpen: day.IsOpen}
	if day.IsOpen {
		resp.OpenTime = day.Open.String()
		resp.CloseTime = day.Close.String()
	}
	response.JSON(c, http.StatusOK, resp)
}

func parseDateParam(raw string) (models.Date, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return models.Date{}, invalidDateError(raw, err)
	}
	return models.DateOf(t), nil
}
