package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/anyulbade/travel-budget-estimator/internal/service"
)

func setupUsageRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewUsageHandler(service.NewUsageService())
	router.POST("/api/v1/usage", h.Record)
	return router
}

func TestUsageHandler_Record(t *testing.T) {
	router := setupUsageRouter()

	t.Run("happy: valid event", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/usage", map[string]interface{}{
			"eventType": "page_view",
			"eventPage": "/selection",
			"sessionId": "session-1",
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("happy: malformed payload still succeeds", func(t *testing.T) {
		// Tracking must never surface a failure to the client.
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/usage", bytes.NewBufferString(`{"eventType":"bogus"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
