package journal

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"bloom/core/cycle"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	svc, _ := newTestService(t)
	app := fiber.New()
	NewHandler(svc, zap.NewNop()).RegisterRoutes(app)
	return app
}

func TestHandler_PutGetDeleteEntry(t *testing.T) {
	app := newTestApp(t)

	put := httptest.NewRequest("PUT", "/journal/2025-03-01",
		strings.NewReader(`{"marker":"start","symptoms":["cramps"],"mood":"tired"}`))
	put.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(put)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/journal/2025-03-01", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(raw, &entry))
	assert.Equal(t, "start", entry["marker"])
	assert.Equal(t, "tired", entry["mood"])

	// An empty body deletes the entry.
	put = httptest.NewRequest("PUT", "/journal/2025-03-01", strings.NewReader(`{}`))
	put.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(put)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/journal/2025-03-01", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandler_PutEntryRejectsBadMarker(t *testing.T) {
	app := newTestApp(t)

	put := httptest.NewRequest("PUT", "/journal/2025-03-01", strings.NewReader(`{"marker":"heavy"}`))
	put.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(put)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandler_GetPhase(t *testing.T) {
	app := newTestApp(t)

	put := httptest.NewRequest("PUT", "/journal/2025-03-01", strings.NewReader(`{"marker":"start"}`))
	put.Header.Set("Content-Type", "application/json")
	_, err := app.Test(put)
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/journal/2025-03-10/phase", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var info cycle.PhaseInfo
	require.NoError(t, json.Unmarshal(raw, &info))
	assert.Equal(t, cycle.PhaseFollicular, info.Phase)
	assert.Equal(t, 10, info.DayOfCycle)

	resp, err = app.Test(httptest.NewRequest("GET", "/journal/not-a-date/phase", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandler_ConfigRoundTrip(t *testing.T) {
	app := newTestApp(t)

	put := httptest.NewRequest("PUT", "/journal/config",
		strings.NewReader(`{"cycle_length_days":30,"period_length_days":6}`))
	put.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(put)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/journal/config", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var cfg cycle.Config
	require.NoError(t, json.Unmarshal(raw, &cfg))
	assert.Equal(t, 30, cfg.CycleLengthDays)
	assert.Equal(t, 6, cfg.PeriodLengthDays)
}
