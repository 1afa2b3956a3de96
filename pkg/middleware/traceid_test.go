package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newTraceRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestTraceIDGeneratedWhenAbsent(t *testing.T) {
	w := httptest.NewRecorder()
	newTraceRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	got := w.Header().Get(TraceIDHeader)
	if got == "" {
		t.Fatal("no trace id on response")
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Errorf("trace id %q is not a uuid: %v", got, err)
	}
}

func TestTraceIDPropagatedFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "upstream-trace")

	w := httptest.NewRecorder()
	newTraceRouter().ServeHTTP(w, req)

	if got := w.Header().Get(TraceIDHeader); got != "upstream-trace" {
		t.Errorf("trace id = %q, want the caller's id echoed back", got)
	}
}
