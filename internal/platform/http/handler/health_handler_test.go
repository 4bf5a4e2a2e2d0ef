package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newHealthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/healthz", Health)
	r.HEAD("/healthz", Health)
	r.OPTIONS("/healthz", Health)
	return r
}

func TestHealth(t *testing.T) {
	tests := []struct {
		method   string
		wantCode int
		wantBody string
	}{
		{method: http.MethodGet, wantCode: http.StatusOK, wantBody: `{"status":"ok"}`},
		{method: http.MethodHead, wantCode: http.StatusOK},
		{method: http.MethodOptions, wantCode: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			r := newHealthRouter()

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, "/healthz", nil))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}
