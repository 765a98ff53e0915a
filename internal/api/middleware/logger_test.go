package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := middleware.RequestID(StructuredLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	})))

	req := httptest.NewRequest(http.MethodPost, "/savingsbankaccounts", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Served request", entry["msg"])
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/savingsbankaccounts", entry["path"])
	assert.Equal(t, float64(http.StatusInternalServerError), entry["status"])
	assert.Equal(t, float64(4), entry["bytes_written"])
	assert.NotEmpty(t, entry["request_id"])
}
