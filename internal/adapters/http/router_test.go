package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"huddle/internal/app"
	"huddle/internal/config"
)

func newRouter(t *testing.T) (*gin.Engine, *app.Coordinator) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Mode:       "release",
		StaticPath: t.TempDir(),
		ReadLimit:  32768,
		PingPeriod: 54 * time.Second,
		Secret:     "test-secret",
	}
	coord := app.NewCoordinator(app.NewRegistry(), app.NewMessageLog(), app.NewSessionTable())
	return SetupRouter(context.Background(), cfg, coord), coord
}

func TestRouter_Health(t *testing.T) {
	req := require.New(t)
	r, _ := newRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	req.Equal(http.StatusOK, w.Code)

	var body map[string]any
	req.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	req.Equal("ok", body["status"])
	req.EqualValues(0, body["connections"])
}

func TestRouter_PresenceAndMessagesSnapshots(t *testing.T) {
	req := require.New(t)
	r, coord := newRouter(t)

	coord.Identify("conn-1", "alice")
	coord.Chat("alice", "hi")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/presence", nil))
	req.Equal(http.StatusOK, w.Code)

	var presence struct {
		Users []struct {
			Name   string `json:"name"`
			Status string `json:"status"`
		} `json:"users"`
	}
	req.NoError(json.Unmarshal(w.Body.Bytes(), &presence))
	req.Len(presence.Users, 1)
	req.Equal("alice", presence.Users[0].Name)
	req.Equal("online", presence.Users[0].Status)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/messages", nil))
	req.Equal(http.StatusOK, w.Code)

	var msgs struct {
		Messages []struct {
			Author string `json:"author"`
			Text   string `json:"text"`
		} `json:"messages"`
	}
	req.NoError(json.Unmarshal(w.Body.Bytes(), &msgs))
	req.Len(msgs.Messages, 1)
	req.Equal("hi", msgs.Messages[0].Text)
}

func TestRouter_ClientTokenCookieSet(t *testing.T) {
	req := require.New(t)
	r, _ := newRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	var found bool
	for _, c := range w.Result().Cookies() {
		if c.Name == "ct" && c.Value != "" {
			found = true
		}
	}
	req.True(found)
}
