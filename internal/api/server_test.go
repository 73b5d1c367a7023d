package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graceworks/steeple/internal/config"
	"github.com/graceworks/steeple/internal/engine"
	"github.com/graceworks/steeple/internal/entropy"
	"github.com/graceworks/steeple/internal/persistence"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	db, err := persistence.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := config.Default().API
	cfg.AdminToken = "secret"

	g := engine.New(engine.DefaultSetup(), entropy.New(1))
	newRand := func() *entropy.Rand { return entropy.New(1) }
	return NewServer(g, db, cfg, "default", newRand)
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestStatusEndpoint(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv.Router(), http.MethodGet, "/api/v1/status", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		ChurchName string `json:"churchName"`
		Week       int    `json:"week"`
		Stats      struct {
			Attendance int `json:"attendance"`
			Budget     int `json:"budget"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Grace Community Church", got.ChurchName)
	assert.Equal(t, 1, got.Week)
	assert.Equal(t, 50, got.Stats.Attendance)
	assert.Equal(t, 5000, got.Stats.Budget)
}

func TestReadEndpointsArePublic(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Router()

	for _, path := range []string{
		"/api/v1/congregation",
		"/api/v1/members",
		"/api/v1/staff",
		"/api/v1/candidates",
		"/api/v1/positions",
		"/api/v1/policies",
		"/api/v1/finances",
		"/api/v1/finances/projection",
		"/api/v1/events",
		"/api/v1/news",
		"/api/v1/history",
		"/api/v1/saves",
	} {
		rec := doJSON(t, router, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestAdminEndpointsRequireToken(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Router()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/week", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/week", "wrong", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/week", "secret", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminDisabledWithoutToken(t *testing.T) {
	srv := newTestServer(t)
	srv.Cfg.AdminToken = ""

	rec := doJSON(t, srv.Router(), http.MethodPost, "/api/v1/week", "anything", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestProcessWeekEndpoint(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Router()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/week", "secret", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res engine.WeekResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 1, res.Week)
	assert.Equal(t, 2, srv.Game().CurrentWeek())

	// The tick landed in the weekly history table.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/history", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var hist struct {
		History []persistence.HistoryRow `json:"history"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hist))
	require.Len(t, hist.History, 1)
	assert.Equal(t, 1, hist.History[0].Week)
}

func TestSetPolicyEndpoint(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Router()

	body := map[string]string{"category": "worshipStyle", "option": "contemporary"}
	rec := doJSON(t, router, http.MethodPost, "/api/v1/policy", "secret", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var res engine.PolicyResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Changed)
	assert.Equal(t, 5, res.MoralePenalty)

	// Unknown option maps to a 400.
	body = map[string]string{"category": "worshipStyle", "option": "nosuch"}
	rec = doJSON(t, router, http.MethodPost, "/api/v1/policy", "secret", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown category maps to a 404.
	body = map[string]string{"category": "nosuch", "option": "blended"}
	rec = doJSON(t, router, http.MethodPost, "/api/v1/policy", "secret", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHireRejectionsOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Router()

	body := map[string]string{"candidateId": "nosuch"}
	rec := doJSON(t, router, http.MethodPost, "/api/v1/staff/hire", "secret", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChoiceWithoutPendingEvent(t *testing.T) {
	srv := newTestServer(t)

	body := map[string]string{"eventId": "buildingRental", "choiceId": "accept"}
	rec := doJSON(t, srv.Router(), http.MethodPost, "/api/v1/event/choice", "secret", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaveAndLoadOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Router()

	// Advance, save, advance again, load: the loaded game rolls back.
	doJSON(t, router, http.MethodPost, "/api/v1/week", "secret", nil)
	savedWeek := srv.Game().CurrentWeek()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/save", "secret", map[string]string{"slot": "checkpoint"})
	require.Equal(t, http.StatusOK, rec.Code)

	doJSON(t, router, http.MethodPost, "/api/v1/week", "secret", nil)
	require.Equal(t, savedWeek+1, srv.Game().CurrentWeek())

	rec = doJSON(t, router, http.MethodPost, "/api/v1/load", "secret", map[string]string{"slot": "checkpoint"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, savedWeek, srv.Game().CurrentWeek())

	// Loading a missing slot is a 404.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/load", "secret", map[string]string{"slot": "nosuch"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv.Router(), http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "steeple_weeks_processed_total")
}
