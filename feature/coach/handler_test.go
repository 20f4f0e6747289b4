package coach

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newChatApp(t *testing.T, gen Generator) *fiber.App {
	t.Helper()
	svc := NewService(newJournal(t), gen, zap.NewNop())
	app := fiber.New()
	NewHandler(svc, zap.NewNop()).RegisterRoutes(app)
	return app
}

func postChat(t *testing.T, app *fiber.App, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/coach/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestHandler_Chat(t *testing.T) {
	app := newChatApp(t, &fakeGenerator{reply: "Stay hydrated."})

	resp := postChat(t, app, ChatRequest{Message: "any tips?"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var reply ChatReply
	require.NoError(t, json.Unmarshal(body, &reply))
	assert.Equal(t, "Stay hydrated.", reply.Reply)
	assert.True(t, reply.Configured)
}

func TestHandler_ChatRejectsEmptyMessage(t *testing.T) {
	app := newChatApp(t, &fakeGenerator{reply: "ok"})

	resp := postChat(t, app, ChatRequest{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandler_ChatFallbackWhenUnconfigured(t *testing.T) {
	app := newChatApp(t, nil)

	resp := postChat(t, app, ChatRequest{Message: "hi"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var reply ChatReply
	require.NoError(t, json.Unmarshal(body, &reply))
	assert.False(t, reply.Configured)
	assert.Equal(t, NotConfiguredReply, reply.Reply)
}
