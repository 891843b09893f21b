package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plateRequest struct {
	Plate string `json:"plate" binding:"required,plate"`
	Kind  string `json:"kind" binding:"omitempty,oneof=car motorcycle"`
}

func setupRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterValidators())

	r := gin.New()
	r.POST("/check", func(c *gin.Context) {
		var req plateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			FailBinding(c, err)
			return
		}
		c.JSON(http.StatusOK, MessageResponse{Message: "ok"})
	})
	return r
}

func TestFailBinding(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantField  string
		wantTag    string
	}{
		{"valid plate", `{"plate":"ab 123 cd"}`, http.StatusOK, "", ""},
		{"missing plate", `{}`, http.StatusBadRequest, "Plate", "required"},
		{"bad characters", `{"plate":"AB_123"}`, http.StatusBadRequest, "Plate", "plate"},
		{"too long", `{"plate":"ABCDEFGHIJKLMNOPQ"}`, http.StatusBadRequest, "Plate", "plate"},
		{"bad kind", `{"plate":"AB123","kind":"truck"}`, http.StatusBadRequest, "Kind", "oneof"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				return
			}

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, CodeValidation, resp.Code)
			require.Len(t, resp.Details, 1)
			assert.Equal(t, tt.wantField, resp.Details[0].Field)
			assert.Equal(t, tt.wantTag, resp.Details[0].Tag)
		})
	}
}

func TestFailBinding_MalformedJSON(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(`{"plate":`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, CodeValidation, resp.Code)
	assert.Empty(t, resp.Details)
}
