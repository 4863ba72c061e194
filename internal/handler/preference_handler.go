package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harborlane/storefront-api/internal/dto"
	"github.com/harborlane/storefront-api/internal/repository"
	appErrors "github.com/harborlane/storefront-api/pkg/errors"
	"github.com/harborlane/storefront-api/pkg/response"
)

// PreferenceHandler persists the per-device alternate-timezone toggle.
type PreferenceHandler struct {
	cache *repository.CacheRepository
}

// NewPreferenceHandler constructs the handler.
func NewPreferenceHandler(cache *repository.CacheRepository) *PreferenceHandler {
	return &PreferenceHandler{cache: cache}
}

// Get godoc
// @Summary Read the device timezone preference
// @Tags Preferences
// @Produce json
// @Param device path string true "Device id"
// @Success 200 {object} response.Envelope
// @Router /preferences/{device} [get]
func (h *PreferenceHandler) Get(c *gin.Context) {
	device := c.Param("device")
	useAlternate, err := h.cache.GetPreference(c.Request.Context(), device)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read preference"))
		return
	}
	response.JSON(c, http.StatusOK, dto.PreferenceResponse{DeviceID: device, UseAlternateTimezone: useAlternate})
}

// Put godoc
// @Summary Update the device timezone preference
// @Tags Preferences
// @Accept json
// @Produce json
// @Param device path string true "Device id"
// @Param body body dto.PreferenceRequest true "Preference"
// @Success 200 {object} response.Envelope
// @Router /preferences/{device} [put]
func (h *PreferenceHandler) Put(c *gin.Context) {
	device := c.Param("device")

	var req dto.PreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid preference payload"))
		return
	}

	if err := h.cache.SetPreference(c.Request.Context(), device, req.UseAlternateTimezone); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store preference"))
		return
	}
	response.JSON(c, http.StatusOK, dto.PreferenceResponse{DeviceID: device, UseAlternateTimezone: req.UseAlternateTimezone})
}
