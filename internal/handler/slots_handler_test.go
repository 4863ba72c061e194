package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/harborlane/storefront-api/internal/models"
	"github.com/harborlane/storefront-api/internal/repository"
	"github.com/harborlane/storefront-api/internal/service"
	"github.com/harborlane/storefront-api/pkg/config"
	appErrors "github.com/harborlane/storefront-api/pkg/errors"
)

type slotsEnvelope struct {
	Data  []models.TimeSlot      `json:"data"`
	Error *appErrors.Error       `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}

func newSlotsRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	schedule := service.NewScheduleService(service.SystemLocationResolver{}, validator.New(), zap.NewNop())
	snapshot := service.NewSnapshotProvider(nil, nil, schedule, "America/New_York", zap.NewNop())
	slots := service.NewSlotService(schedule, 0, zap.NewNop())
	presentation := service.NewPresentationService(config.CitiesConfig{
		Primary:   config.CityConfig{Label: "New York", Timezone: "America/New_York"},
		Secondary: config.CityConfig{Label: "Los Angeles", Timezone: "America/Los_Angeles"},
	}, service.SystemLocationResolver{}, zap.NewNop())
	cache := repository.NewCacheRepository(nil, 0)

	h := NewSlotsHandler(snapshot, slots, presentation, cache, service.NewMetricsService())
	router := gin.New()
	router.GET("/slots", h.List)
	router.GET("/slots/export", h.Export)
	return router
}

func TestSlotsListOpenMonday(t *testing.T) {
	router := newSlotsRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/slots?date=2025-12-01", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body slotsEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	// Default Monday hours 09:00-17:00 yield 32 quarter-hour slots.
	require.Len(t, body.Data, 32)
	assert.Equal(t, "2025-12-01T09:00", body.Data[0].ID)
	assert.Equal(t, "9:00 AM", body.Data[0].DisplayLabel)
	assert.Equal(t, "2025-12-01T16:45", body.Data[31].ID)
	assert.Equal(t, float64(32), body.Meta["count"])
	assert.Equal(t, "America/New_York", body.Meta["display_timezone"])
}

func TestSlotsListMarksSelected(t *testing.T) {
	router := newSlotsRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/slots?date=2025-12-01&selected=2025-12-01T10:30", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body slotsEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	selected := 0
	for _, slot := range body.Data {
		if slot.IsSelected {
			selected++
			assert.Equal(t, "2025-12-01T10:30", slot.ID)
		}
	}
	assert.Equal(t, 1, selected)
}

func TestSlotsListAlternateDisplayTimezone(t *testing.T) {
	router := newSlotsRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/slots?date=2025-12-01&tz=America/Los_Angeles", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body slotsEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	// Labels shift three hours west; start times stay store-local.
	require.NotEmpty(t, body.Data)
	assert.Equal(t, "09:00", body.Data[0].StartTime)
	assert.Equal(t, "6:00 AM", body.Data[0].DisplayLabel)
}

func TestSlotsListRejectsMissingDate(t *testing.T) {
	router := newSlotsRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/slots", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body slotsEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, appErrors.ErrValidation.Code, body.Error.Code)
}

func TestSlotsListRejectsMalformedDate(t *testing.T) {
	router := newSlotsRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/slots?date=12-01-2025", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSlotsExportCSV(t *testing.T) {
	router := newSlotsRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/slots/export?date=2025-12-01", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "slots-2025-12-01.csv")
	assert.Contains(t, w.Body.String(), "Slot,Starts,Label,Available")
	assert.Contains(t, w.Body.String(), "2025-12-01T09:00,09:00,9:00 AM,yes")
}

func TestSlotsExportRejectsUnknownFormat(t *testing.T) {
	router := newSlotsRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/slots/export?date=2025-12-01&format=xlsx", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
