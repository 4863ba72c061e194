package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSheet() SlotSheet {
	return SlotSheet{
		Date:     "2025-12-01",
		Timezone: "America/New_York",
		Rows: []SlotRow{
			{ID: "2025-12-01T09:00", StartTime: "09:00", Label: "9:00 AM", Available: true},
			{ID: "2025-12-01T09:15", StartTime: "09:15", Label: "9:15 AM", Available: false},
		},
	}
}

func TestCSVRenderSlotSheet(t *testing.T) {
	payload, err := NewCSVExporter().Render(testSheet())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(payload)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Slot,Starts,Label,Available", lines[0])
	assert.Equal(t, "2025-12-01T09:00,09:00,9:00 AM,yes", lines[1])
	assert.Equal(t, "2025-12-01T09:15,09:15,9:15 AM,no", lines[2])
}

func TestCSVRenderEmptySheetKeepsHeader(t *testing.T) {
	payload, err := NewCSVExporter().Render(SlotSheet{Date: "2025-12-02"})
	require.NoError(t, err)
	assert.Equal(t, "Slot,Starts,Label,Available", strings.TrimSpace(string(payload)))
}

func TestPDFRenderSlotSheet(t *testing.T) {
	payload, err := NewPDFExporter().Render(testSheet())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(payload, []byte("%PDF")))
}

func TestPDFRenderEmptySheet(t *testing.T) {
	payload, err := NewPDFExporter().Render(SlotSheet{Date: "2025-12-02"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(payload, []byte("%PDF")))
}
