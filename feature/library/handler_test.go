package library

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"bloom/core/database"
	"bloom/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) (*fiber.App, *mocks.Client) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)

	client := new(mocks.Client)
	svc, err := NewService(db, client, testBucket, zap.NewNop())
	require.NoError(t, err)

	app := fiber.New()
	NewHandler(svc, zap.NewNop()).RegisterRoutes(app)
	return app, client
}

func TestHandler_ListWorkouts(t *testing.T) {
	app, client := newTestApp(t)
	client.On("GetObject", mock.Anything, testBucket, WorkoutsObject, mock.Anything).
		Return(catalogReader(workoutsDoc), nil).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/library/workouts", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "w_sunrise_flow")
}

func TestHandler_FavoriteRejectsUnknownKind(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodPut, "/library/favorites/playlist/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandler_FavoriteRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodPut, "/library/favorites/workout/w_sunrise_flow", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/library/favorites/workout/w_sunrise_flow", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
