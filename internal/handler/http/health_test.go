package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPingableDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestHealthHandler_Healthy(t *testing.T) {
	db, mock := newPingableDB(t)
	mock.ExpectPing()
	db.SetMaxOpenConns(10)

	handler := &HealthHandler{DB: db, Version: "1.4.0"}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "1.4.0", resp.Version)
	assert.NotEmpty(t, resp.Timestamp)

	dbCheck := resp.Checks["database"]
	assert.Equal(t, "healthy", dbCheck.Status)
	assert.Equal(t, float64(10), dbCheck.Details["max_open_connections"])
	assert.Contains(t, dbCheck.Details, "utilization_percent")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthHandler_PingFails(t *testing.T) {
	db, mock := newPingableDB(t)
	mock.ExpectPing().WillReturnError(sql.ErrConnDone)

	handler := &HealthHandler{DB: db, Version: "1.4.0"}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "unhealthy", resp.Checks["database"].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthHandler_NilDB(t *testing.T) {
	handler := &HealthHandler{Version: "1.4.0"}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "not configured", resp.Checks["database"].Message)
}

func TestHealthHandler_UnlimitedPoolIsDegraded(t *testing.T) {
	db, mock := newPingableDB(t)
	mock.ExpectPing()
	db.SetMaxOpenConns(0)

	handler := &HealthHandler{DB: db, Version: "1.4.0"}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	// degraded is a warning, the endpoint still answers 200
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp.Status)

	dbCheck := resp.Checks["database"]
	assert.Equal(t, "degraded", dbCheck.Status)
	assert.Equal(t, "connection pool max connections not configured", dbCheck.Message)
	assert.NotContains(t, dbCheck.Details, "utilization_percent")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReadyHandler(t *testing.T) {
	t.Run("database answers", func(t *testing.T) {
		db, mock := newPingableDB(t)
		mock.ExpectPing()

		rec := httptest.NewRecorder()
		(&ReadyHandler{DB: db}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ready", rec.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database down", func(t *testing.T) {
		db, mock := newPingableDB(t)
		mock.ExpectPing().WillReturnError(sql.ErrConnDone)

		rec := httptest.NewRecorder()
		(&ReadyHandler{DB: db}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("slow ping times out", func(t *testing.T) {
		db, mock := newPingableDB(t)
		mock.ExpectPing().WillDelayFor(3 * time.Second)

		rec := httptest.NewRecorder()
		(&ReadyHandler{DB: db}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("nil database", func(t *testing.T) {
		rec := httptest.NewRecorder()
		(&ReadyHandler{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "database not configured")
	})
}

func TestLiveHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	(&LiveHandler{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alive", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}
