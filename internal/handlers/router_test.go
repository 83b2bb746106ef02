package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupRouter(t *testing.T) {
	h, _ := setupTestHandler()
	r := setupTestRouter(h)

	t.Run("Health endpoint", func(t *testing.T) {
		w := doJSON(r, "GET", "/health", nil, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
	})

	t.Run("Unknown API route", func(t *testing.T) {
		w := doJSON(r, "GET", "/api/nope/nope", nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
