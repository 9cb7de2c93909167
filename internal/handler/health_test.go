package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"essencia/internal/handler"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestHealthReportsUnavailableWithoutPostgres(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// A gorm.DB with no connection pool fails the ping; nil redis means the
	// cache is simply not configured.
	r.GET("/health", handler.Health(&gorm.DB{Config: &gorm.Config{}}, nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body struct {
		Service string            `json:"service"`
		Status  string            `json:"status"`
		Checks  map[string]string `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "essencia", body.Service)
	assert.Equal(t, "unavailable", body.Status)
	assert.Equal(t, "down", body.Checks["postgres"])
	assert.Equal(t, "disabled", body.Checks["redis"])
}
