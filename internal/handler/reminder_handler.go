package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harborlane/storefront-api/internal/dto"
	"github.com/harborlane/storefront-api/internal/service"
	"github.com/harborlane/storefront-api/pkg/response"
)

// ReminderHandler exposes the next-opening scan and the derived pre-opening
// reminder instant.
type ReminderHandler struct {
	snapshot *service.SnapshotProvider
	reminder *service.ReminderService
	now      func() time.Time
}

// NewReminderHandler constructs the handler.
func NewReminderHandler(snapshot *service.SnapshotProvider, reminder *service.ReminderService) *ReminderHandler {
	return &ReminderHandler{snapshot: snapshot, reminder: reminder, now: time.Now}
}

// NextOpening godoc
// @Summary Next open window and reminder instant
// @Tags Storefront
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /next-opening [get]
func (h *ReminderHandler) NextOpening(c *gin.Context) {
	cfg := h.snapshot.Current()
	now := h.now()

	opening, err := h.reminder.NextOpening(cfg, now)
	if err != nil {
		response.Error(c, err)
		return
	}
	if opening == nil {
		// No open day within the scan horizon. Valid outcome, empty data.
		response.JSON(c, http.StatusOK, nil, map[string]interface{}{"found": false})
		return
	}

	reminderAt := h.reminder.ReminderTime(cfg, *opening)
	response.JSON(c, http.StatusOK, dto.NextOpeningResponse{
		Date:        opening.Date.ISO(),
		OpenTime:    opening.Open.String(),
		CloseTime:   opening.Close.String(),
		ReminderAt:  reminderAt,
		Schedulable: h.reminder.Schedulable(reminderAt, now),
	}, map[string]interface{}{"found": true})
}
