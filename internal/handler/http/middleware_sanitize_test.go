package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithSanitizedQuery_StripsMarkup(t *testing.T) {
	h := newTestHandler(t, &testDeps{})

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.URL.Query().Get("name")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/login?name=%20%3Cb%3EAda%3C%2Fb%3E%20", nil)
	h.withSanitizedQuery(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "Ada", seen)
}

func TestWithSanitizedQuery_EmptyQueryUntouched(t *testing.T) {
	h := newTestHandler(t, &testDeps{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/login", nil)
	h.withSanitizedQuery(next).ServeHTTP(httptest.NewRecorder(), req)
}
