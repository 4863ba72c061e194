package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harborlane/storefront-api/internal/models"
	"github.com/harborlane/storefront-api/internal/repository"
	"github.com/harborlane/storefront-api/internal/service"
	appErrors "github.com/harborlane/storefront-api/pkg/errors"
	"github.com/harborlane/storefront-api/pkg/export"
	"github.com/harborlane/storefront-api/pkg/response"
)

// SlotsHandler serves the bookable slot grid and its CSV/PDF exports.
type SlotsHandler struct {
	snapshot     *service.SnapshotProvider
	slots        *service.SlotService
	presentation *service.PresentationService
	cache        *repository.CacheRepository
	metrics      *service.MetricsService
	csv          *export.CSVExporter
	pdf          *export.PDFExporter
}

// NewSlotsHandler constructs the handler.
func NewSlotsHandler(snapshot *service.SnapshotProvider, slots *service.SlotService, presentation *service.PresentationService, cache *repository.CacheRepository, metrics *service.MetricsService) *SlotsHandler {
	return &SlotsHandler{
		snapshot:     snapshot,
		slots:        slots,
		presentation: presentation,
		cache:        cache,
		metrics:      metrics,
		csv:          export.NewCSVExporter(),
		pdf:          export.NewPDFExporter(),
	}
}

// List godoc
// @Summary Bookable slots for a date
// @Tags Slots
// @Produce json
// @Param date query string true "Calendar date (YYYY-MM-DD), interpreted in the store timezone"
// @Param tz query string false "Display timezone for slot labels (defaults to store timezone)"
// @Param selected query string false "Slot id to flag as selected"
// @Success 200 {object} response.Envelope
// @Router /slots [get]
func (h *SlotsHandler) List(c *gin.Context) {
	date, displayName, slots, err := h.generate(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if selected := c.Query("selected"); selected != "" {
		slots = h.slots.MarkSelected(slots, selected)
	}

	response.JSON(c, http.StatusOK, slots, map[string]interface{}{
		"date":             date.ISO(),
		"display_timezone": displayName,
		"count":            len(slots),
	})
}

// Export godoc
// @Summary Slot sheet download
// @Tags Slots
// @Produce text/csv
// @Produce application/pdf
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Param tz query string false "Display timezone for slot labels"
// @Param format query string false "csv or pdf (default csv)"
// @Success 200 {file} file
// @Router /slots/export [get]
func (h *SlotsHandler) Export(c *gin.Context) {
	date, displayName, slots, err := h.generate(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sheet := h.slots.ExportSheet(date, displayName, slots)
	filename := "slots-" + date.ISO()

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		payload, err := h.csv.Render(sheet)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".csv"))
		c.Data(http.StatusOK, "text/csv", payload)
	case "pdf":
		payload, err := h.pdf.Render(sheet)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".pdf"))
		c.Data(http.StatusOK, "application/pdf", payload)
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf"))
	}
}

func (h *SlotsHandler) generate(c *gin.Context) (models.Date, string, []models.TimeSlot, error) {
	raw := c.Query("date")
	if raw == "" {
		return models.Date{}, "", nil, appErrors.Clone(appErrors.ErrValidation, "date is required")
	}
	date, err := parseDateParam(raw)
	if err != nil {
		return models.Date{}, "", nil, err
	}

	cfg := h.snapshot.Current()
	displayName := c.DefaultQuery("tz", cfg.Timezone())
	displayLoc, err := h.presentation.ResolveTimezone(displayName)
	if err != nil {
		return models.Date{}, "", nil, err
	}

	ctx := c.Request.Context()
	version := h.snapshot.Version()
	if cached, hit, err := h.cache.GetSlots(ctx, version, date.ISO(), displayName); err == nil && hit {
		h.metrics.ObserveCache(true)
		return date, displayName, cached, nil
	}
	h.metrics.ObserveCache(false)

	slots, err := h.slots.GenerateSlots(cfg, date, displayLoc)
	if err != nil {
		return models.Date{}, "", nil, err
	}
	h.metrics.ObserveSlotGeneration(len(slots))

	// Best effort; a cache write failure never blocks the response.
	_ = h.cache.SetSlots(ctx, version, date.ISO(), displayName, slots)

	return date, displayName, slots, nil
}

func invalidDateError(raw string, err error) error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", raw))
}
