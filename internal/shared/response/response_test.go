package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaginationMeta(t *testing.T) {
	meta := response.NewPaginationMeta(12, 10, 5)

	assert.Equal(t, int64(12), meta.Total)
	assert.Equal(t, 3, meta.CurrentPage)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 10, meta.Skip)
	assert.Equal(t, 5, meta.Limit)
}

func TestEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Success(c, http.StatusCreated, "Admin created successfully", gin.H{"id": "1"})

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, float64(http.StatusCreated), body["statusCode"])
		assert.Equal(t, "SUCCESS", body["status"])
		assert.Equal(t, "Admin created successfully", body["message"])
		assert.NotNil(t, body["data"])
	})

	t.Run("failure", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", map[string]string{"email": "Email is required"})

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "FAILURE", body["status"])
		assert.Equal(t, float64(http.StatusBadRequest), body["statusCode"])
		assert.NotContains(t, body, "data")
		assert.Equal(t, map[string]any{"email": "Email is required"}, body["errors"])
	})
}
