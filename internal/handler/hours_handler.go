package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harborlane/storefront-api/internal/dto"
	"github.com/harborlane/storefront-api/internal/service"
	appErrors "github.com/harborlane/storefront-api/pkg/errors"
	"github.com/harborlane/storefront-api/pkg/response"
)

// HoursHandler manages the schedule read view and the admin write surface.
type HoursHandler struct {
	snapshot *service.SnapshotProvider
	hours    *service.HoursService
	metrics  *service.MetricsService
}

// NewHoursHandler constructs the handler.
func NewHoursHandler(snapshot *service.SnapshotProvider, hours *service.HoursService, metrics *service.MetricsService) *HoursHandler {
	return &HoursHandler{snapshot: snapshot, hours: hours, metrics: metrics}
}

type weeklyView struct {
	Weekday   string `json:"weekday"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

type overrideView struct {
	Date      string `json:"date"`
	IsOpen    bool   `json:"is_open"`
	OpenTime  string `json:"open_time,omitempty"`
	CloseTime string `json:"close_time,omitempty"`
}

type scheduleView struct {
	Timezone  string         `json:"timezone"`
	Weekly    []weeklyView   `json:"weekly"`
	Overrides []overrideView `json:"overrides"`
}

// Schedule godoc
// @Summary Current schedule snapshot
// @Tags Hours
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedule [get]
func (h *HoursHandler) Schedule(c *gin.Context) {
	cfg := h.snapshot.Current()

	view := scheduleView{Timezone: cfg.Timezone()}
	for _, entry := range cfg.WeeklyEntries() {
		view.Weekly = append(view.Weekly, weeklyView{
			Weekday:   entry.Weekday.String(),
			OpenTime:  entry.Open.String(),
			CloseTime: entry.Close.String(),
		})
	}
	for _, ov := range cfg.OverrideEntries() {
		item := overrideView{Date: ov.Date.ISO(), IsOpen: ov.IsOpen}
		if ov.IsOpen {
			item.OpenTime = ov.Open.String()
			item.CloseTime = ov.Close.String()
		}
		view.Overrides = append(view.Overrides, item)
	}

	response.JSON(c, http.StatusOK, view)
}

// ReplaceWeekly godoc
// @Summary Replace the weekly hours table
// @Tags Hours
// @Accept json
// @Produce json
// @Param body body dto.ReplaceHoursRequest true "Weekly hours"
// @Success 204
// @Security BearerAuth
// @Router /admin/hours [put]
func (h *HoursHandler) ReplaceWeekly(c *gin.Context) {
	var req dto.ReplaceHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid weekly hours payload"))
		return
	}

	if err := h.hours.ReplaceWeekly(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// UpsertOverride godoc
// @Summary Create or replace a date override
// @Tags Hours
// @Accept json
// @Produce json
// @Param body body dto.OverrideRecord true "Override"
// @Success 204
// @Security BearerAuth
// @Router /admin/overrides [put]
func (h *HoursHandler) UpsertOverride(c *gin.Context) {
	var record dto.OverrideRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid override payload"))
		return
	}

	if err := h.hours.UpsertOverride(c.Request.Context(), record); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// DeleteOverride godoc
// @Summary Remove a date override
// @Tags Hours
// @Produce json
// @Param date path string true "Calendar date (YYYY-MM-DD)"
// @Success 204
// @Security BearerAuth
// @Router /admin/overrides/{date} [delete]
func (h *HoursHandler) DeleteOverride(c *gin.Context) {
	date, err := parseDateParam(c.Param("date"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.hours.DeleteOverride(c.Request.Context(), date); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Refresh godoc
// @Summary Rebuild the schedule snapshot from storage
// @Tags Hours
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /admin/refresh [post]
func (h *HoursHandler) Refresh(c *gin.Context) {
	fromStorage := h.snapshot.Refresh(c.Request.Context())
	h.metrics.ObserveRefresh(fromStorage)
	response.JSON(c, http.StatusOK, gin.H{
		"from_storage": fromStorage,
		"version":      h.snapshot.Version(),
	})
}
