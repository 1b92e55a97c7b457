package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetingroom/internal/config"
	"meetingroom/internal/reservation"
)

func newTestServer() *Server {
	gin.SetMode(gin.TestMode)
	repo := reservation.NewMemoryRepository(
		reservation.Reservation{MeetingRoomID: 1, UserID: 2, FromReserve: time.Now().Add(time.Hour), ToReserve: time.Now().Add(2 * time.Hour)},
	)
	cfg := &config.Config{RateLimitRPS: 100, RateLimitBurst: 100}
	return New(repo, cfg)
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer()

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestServer_Metrics(t *testing.T) {
	srv := newTestServer()

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "meetingroom_http_requests_total")
}

func TestServer_ReservationRoutes(t *testing.T) {
	srv := newTestServer()

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/users/2/reservations", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var list []reservation.Reservation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/meeting_rooms/1/reservations", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestServer_ShutdownBeforeStart(t *testing.T) {
	srv := newTestServer()
	assert.NoError(t, srv.Shutdown(context.Background()))
}
